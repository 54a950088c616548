package entities

import "github.com/shopspring/decimal"

// MedicaoStatus represents the lifecycle of a measurement (medição).
type MedicaoStatus string

const (
	MedicaoStatusAberta   MedicaoStatus = "ABERTA"
	MedicaoStatusValidada MedicaoStatus = "VALIDADA"
)

// DataMedicaoLayout is the date format the backend expects for DataMedicao.
const DataMedicaoLayout = "2006-01-02"

// Medicao is a periodic measurement against the items of a budget.
type Medicao struct {
	ID          int64           `json:"id"`
	Numero      string          `json:"numero"`
	DataMedicao string          `json:"dataMedicao"`
	ValorTotal  decimal.Decimal `json:"valorTotal"`
	Status      MedicaoStatus   `json:"status"`
	Observacao  string          `json:"observacao,omitempty"`
	OrcamentoID int64           `json:"orcamentoId"`
}

func (m Medicao) IsAberta() bool {
	return m.Status == MedicaoStatusAberta
}

// ItemMedicao is the quantity measured for one budget item inside a measurement.
type ItemMedicao struct {
	ID                    int64           `json:"id"`
	MedicaoID             int64           `json:"medicaoId"`
	ItemID                int64           `json:"itemId"`
	QuantidadeMedida      decimal.Decimal `json:"quantidadeMedida"`
	ValorUnitarioAplicado decimal.Decimal `json:"valorUnitarioAplicado"`
	ValorTotalMedido      decimal.Decimal `json:"valorTotalMedido"`
}

// FindMedicaoAberta returns the first open measurement; the backend allows at
// most one per budget.
func FindMedicaoAberta(list []Medicao) (Medicao, bool) {
	for _, m := range list {
		if m.IsAberta() {
			return m, true
		}
	}
	return Medicao{}, false
}

func SumMeasuredTotals(items []ItemMedicao) decimal.Decimal {
	sum := decimal.Zero
	for _, im := range items {
		sum = sum.Add(im.ValorTotalMedido)
	}
	return sum
}

// IndexByItemID maps budget item ids to the measurement entry recorded for them.
func IndexByItemID(items []ItemMedicao) map[int64]ItemMedicao {
	out := make(map[int64]ItemMedicao, len(items))
	for _, im := range items {
		out[im.ItemID] = im
	}
	return out
}
