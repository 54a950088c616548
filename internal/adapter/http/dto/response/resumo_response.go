package response

import (
	"gestao_orcamentos/internal/usecase"
	"time"

	"github.com/shopspring/decimal"
)

// ResumoListaResponse summarizes the cached budget list.
type ResumoListaResponse struct {
	Abertos      int        `json:"abertos"`
	Finalizados  int        `json:"finalizados"`
	Total        int        `json:"total"`
	AtualizadoEm *time.Time `json:"atualizadoEm"`
	Erro         string     `json:"erro,omitempty"`
}

func FromResumoLista(r usecase.ResumoLista) ResumoListaResponse {
	resp := ResumoListaResponse{
		Abertos:     r.Abertos,
		Finalizados: r.Finalizados,
		Total:       r.Total,
		Erro:        r.Erro,
	}
	if !r.AtualizadoEm.IsZero() {
		t := r.AtualizadoEm.UTC()
		resp.AtualizadoEm = &t
	}
	return resp
}

// OrcamentoResumoResponse is the finalize gate state of one budget.
type OrcamentoResumoResponse struct {
	ID              int64           `json:"id"`
	NumeroProtocolo string          `json:"numeroProtocolo"`
	Status          string          `json:"status"`
	ValorTotal      decimal.Decimal `json:"valorTotal" swaggertype:"number"`
	SomaItens       decimal.Decimal `json:"somaItens" swaggertype:"number"`
	Diferenca       decimal.Decimal `json:"diferenca" swaggertype:"number"`
	PodeFinalizar   bool            `json:"podeFinalizar"`
	QuantidadeItens int             `json:"quantidadeItens"`
	MedicaoAbertaID *int64          `json:"medicaoAbertaId"`
}

func FromOrcamentoResumo(d usecase.OrcamentoDetalhe, p usecase.MedicoesPainel) OrcamentoResumoResponse {
	resp := OrcamentoResumoResponse{
		ID:              d.Orcamento.ID,
		NumeroProtocolo: d.Orcamento.NumeroProtocolo,
		Status:          string(d.Orcamento.Status),
		ValorTotal:      d.Orcamento.ValorTotal,
		SomaItens:       d.SomaItens,
		Diferenca:       d.Diferenca,
		PodeFinalizar:   d.PodeFinalizar,
		QuantidadeItens: len(d.Itens),
	}
	if p.Aberta != nil {
		id := p.Aberta.ID
		resp.MedicaoAbertaID = &id
	}
	return resp
}
