package request

import (
	"gestao_orcamentos/internal/usecase"
	"strconv"
	"strings"
)

type MedicaoRequest struct {
	Numero      string `form:"numero"`
	DataMedicao string `form:"dataMedicao"`
	Observacao  string `form:"observacao"`
}

func (r MedicaoRequest) ToCommand() usecase.MedicaoCommand {
	return usecase.MedicaoCommand{
		Numero:      r.Numero,
		DataMedicao: r.DataMedicao,
		Observacao:  r.Observacao,
	}
}

// ItemMedicaoRequest is one row of the open measurement editor.
type ItemMedicaoRequest struct {
	ItemID           string `form:"itemId"`
	QuantidadeMedida string `form:"quantidadeMedida"`
}

// ResolveItemID returns 0 when itemId is missing or not a positive integer.
func (r ItemMedicaoRequest) ResolveItemID() int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(r.ItemID), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

func (r ItemMedicaoRequest) ToCommand() usecase.ItemMedicaoCommand {
	return usecase.ItemMedicaoCommand{
		ItemID:           r.ResolveItemID(),
		QuantidadeMedida: ParseDecimal(r.QuantidadeMedida),
	}
}
