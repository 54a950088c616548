package entities

import "github.com/shopspring/decimal"

// Item is a budget line item. ValorTotal and QuantidadeAcumulada are computed
// by the backend; QuantidadeAcumulada grows as measurements are recorded.
type Item struct {
	ID                  int64           `json:"id"`
	Descricao           string          `json:"descricao"`
	Quantidade          decimal.Decimal `json:"quantidade"`
	ValorUnitario       decimal.Decimal `json:"valorUnitario"`
	ValorTotal          decimal.Decimal `json:"valorTotal"`
	QuantidadeAcumulada decimal.Decimal `json:"quantidadeAcumulada"`
	OrcamentoID         int64           `json:"orcamentoId"`
}

// Restante is the quantity still available for measurement, never negative.
func (i Item) Restante() decimal.Decimal {
	r := i.Quantidade.Sub(i.QuantidadeAcumulada)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

func (i Item) TotalmenteMedido() bool {
	return !i.Restante().IsPositive()
}

func SumItemTotals(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.ValorTotal)
	}
	return sum
}

func FindItem(items []Item, id int64) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
