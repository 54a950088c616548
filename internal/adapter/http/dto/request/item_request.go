package request

import (
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase"
)

// ItemRequest is the add and edit item form.
type ItemRequest struct {
	Descricao     string `form:"descricao"`
	Quantidade    string `form:"quantidade"`
	ValorUnitario string `form:"valorUnitario"`
}

func (r ItemRequest) ToCommand() usecase.ItemCommand {
	return usecase.ItemCommand{
		Descricao:     r.Descricao,
		Quantidade:    ParseDecimal(r.Quantidade),
		ValorUnitario: ParseDecimal(r.ValorUnitario),
	}
}

// ItemRequestFrom prefills the edit form with the stored values.
func ItemRequestFrom(it entities.Item) ItemRequest {
	return ItemRequest{
		Descricao:     it.Descricao,
		Quantidade:    FormatDecimal(it.Quantidade),
		ValorUnitario: FormatDecimal(it.ValorUnitario),
	}
}
