package entities

import "github.com/shopspring/decimal"

// OrcamentoStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - The backend is the source of truth for status transitions.
//   - This layer only mirrors the value and gates the finalize action.
type OrcamentoStatus string

const (
	OrcamentoStatusAberto     OrcamentoStatus = "ABERTO"
	OrcamentoStatusFinalizado OrcamentoStatus = "FINALIZADO"
)

// OrcamentoTipo is the kind of work a budget covers.
type OrcamentoTipo string

const (
	OrcamentoTipoObraEdificacao OrcamentoTipo = "OBRA_EDIFICACAO"
	OrcamentoTipoObraRodovias   OrcamentoTipo = "OBRA_RODOVIAS"
	OrcamentoTipoOutros         OrcamentoTipo = "OUTROS"
)

// OrcamentoTipos lists the budget types in the order the form offers them.
var OrcamentoTipos = []OrcamentoTipo{
	OrcamentoTipoObraEdificacao,
	OrcamentoTipoObraRodovias,
	OrcamentoTipoOutros,
}

func (t OrcamentoTipo) Valid() bool {
	switch t {
	case OrcamentoTipoObraEdificacao, OrcamentoTipoObraRodovias, OrcamentoTipoOutros:
		return true
	}
	return false
}

func (t OrcamentoTipo) Label() string {
	switch t {
	case OrcamentoTipoObraEdificacao:
		return "Obra de Edificação"
	case OrcamentoTipoObraRodovias:
		return "Obra de Rodovias"
	case OrcamentoTipoOutros:
		return "Outros"
	}
	return string(t)
}

// Orcamento is the budget as returned by the backend.
//
// Monetary representation:
//   - ValorTotal is the declared total, entered when the budget is created.
//   - DataCriacao is kept as the backend formats it.
type Orcamento struct {
	ID              int64           `json:"id"`
	NumeroProtocolo string          `json:"numeroProtocolo"`
	Tipo            OrcamentoTipo   `json:"tipo"`
	ValorTotal      decimal.Decimal `json:"valorTotal"`
	DataCriacao     string          `json:"dataCriacao"`
	Status          OrcamentoStatus `json:"status"`
}

func (o Orcamento) IsAberto() bool {
	return o.Status == OrcamentoStatusAberto
}

func (o Orcamento) IsFinalizado() bool {
	return o.Status == OrcamentoStatusFinalizado
}

// PodeFinalizar reports whether the finalize action should be offered: the
// budget is still open and its items add up exactly to the declared total.
func (o Orcamento) PodeFinalizar(somaItens decimal.Decimal) bool {
	return o.IsAberto() && o.ValorTotal.Equal(somaItens)
}

// StatusCount holds the counters shown above the budget list.
type StatusCount struct {
	Abertos     int
	Finalizados int
}

func CountByStatus(list []Orcamento) StatusCount {
	var c StatusCount
	for _, o := range list {
		switch o.Status {
		case OrcamentoStatusAberto:
			c.Abertos++
		case OrcamentoStatusFinalizado:
			c.Finalizados++
		}
	}
	return c
}
