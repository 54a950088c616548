package request

import (
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase"
	"strings"
)

// OrcamentoRequest is the new budget form. Fields keep the raw typed values
// so the form can be shown again after a failed submit.
type OrcamentoRequest struct {
	NumeroProtocolo string `form:"numeroProtocolo"`
	Tipo            string `form:"tipo"`
	ValorTotal      string `form:"valorTotal"`
}

func (r OrcamentoRequest) ToCommand() usecase.CreateOrcamentoCommand {
	return usecase.CreateOrcamentoCommand{
		NumeroProtocolo: r.NumeroProtocolo,
		Tipo:            entities.OrcamentoTipo(strings.TrimSpace(r.Tipo)),
		ValorTotal:      ParseDecimal(r.ValorTotal),
	}
}
