package usecase

import (
	"context"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"
	"log"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	msgIncluirItemFinalizado = "Não é permitido incluir item em orçamento FINALIZADO."
	msgEditarItemFinalizado  = "Não é permitido editar item em orçamento FINALIZADO."
	msgDescricaoObrigatoria  = "Informe a descrição do item."
	msgQuantidadeInvalida    = "Informe uma quantidade válida."
	msgValorUnitarioInvalido = "Informe um valor unitário válido."
)

// ItemCommand is the user input of the add/edit item forms. Numeric fields
// are invalid (Valid=false) when they could not be parsed.
type ItemCommand struct {
	Descricao     string
	Quantidade    decimal.NullDecimal
	ValorUnitario decimal.NullDecimal
}

// IItemUseCase exposes the budget item forms.
type IItemUseCase interface {
	CreateItem(ctx context.Context, orcamentoID int64, cmd ItemCommand) (entities.Item, error)
	UpdateItem(ctx context.Context, orcamentoID, itemID int64, cmd ItemCommand) (entities.Item, error)
	GetItem(ctx context.Context, orcamentoID, itemID int64) (entities.Orcamento, entities.Item, error)
}

type ItemUseCase struct {
	orcamentos interfaces.IOrcamentoGateway
	itens      interfaces.IItemGateway
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(orcamentos interfaces.IOrcamentoGateway, itens interfaces.IItemGateway) *ItemUseCase {
	return &ItemUseCase{orcamentos: orcamentos, itens: itens}
}

func (u *ItemUseCase) CreateItem(ctx context.Context, orcamentoID int64, cmd ItemCommand) (entities.Item, error) {
	o, err := u.loadOrcamento(ctx, orcamentoID)
	if err != nil {
		return entities.Item{}, err
	}
	if o.IsFinalizado() {
		return entities.Item{}, invalid(msgIncluirItemFinalizado)
	}
	in, err := validateItem(cmd)
	if err != nil {
		return entities.Item{}, err
	}
	in.OrcamentoID = orcamentoID

	created, err := u.itens.Create(ctx, in)
	if err != nil {
		log.Printf("[item][usecase] create failed orcamento_id=%d err=%v", orcamentoID, err)
		return entities.Item{}, err
	}
	log.Printf("[item][usecase] create success orcamento_id=%d item_id=%d", orcamentoID, created.ID)
	return created, nil
}

func (u *ItemUseCase) UpdateItem(ctx context.Context, orcamentoID, itemID int64, cmd ItemCommand) (entities.Item, error) {
	o, _, err := u.GetItem(ctx, orcamentoID, itemID)
	if err != nil {
		return entities.Item{}, err
	}
	if o.IsFinalizado() {
		return entities.Item{}, invalid(msgEditarItemFinalizado)
	}
	in, err := validateItem(cmd)
	if err != nil {
		return entities.Item{}, err
	}

	updated, err := u.itens.Update(ctx, itemID, in)
	if err != nil {
		log.Printf("[item][usecase] update failed orcamento_id=%d item_id=%d err=%v", orcamentoID, itemID, err)
		return entities.Item{}, mapNotFound(err, ErrItemNotFound)
	}
	log.Printf("[item][usecase] update success orcamento_id=%d item_id=%d", orcamentoID, updated.ID)
	return updated, nil
}

// GetItem returns an item together with its budget. The item must belong to
// the budget.
func (u *ItemUseCase) GetItem(ctx context.Context, orcamentoID, itemID int64) (entities.Orcamento, entities.Item, error) {
	o, err := u.loadOrcamento(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, entities.Item{}, err
	}
	itens, err := u.itens.ListByOrcamento(ctx, orcamentoID)
	if err != nil {
		return entities.Orcamento{}, entities.Item{}, err
	}
	it, ok := entities.FindItem(itens, itemID)
	if !ok {
		return entities.Orcamento{}, entities.Item{}, ErrItemNotFound
	}
	return o, it, nil
}

func (u *ItemUseCase) loadOrcamento(ctx context.Context, id int64) (entities.Orcamento, error) {
	if id <= 0 {
		return entities.Orcamento{}, ErrInvalidOrcamentoID
	}
	o, err := u.orcamentos.GetByID(ctx, id)
	if err != nil {
		return entities.Orcamento{}, mapNotFound(err, ErrOrcamentoNotFound)
	}
	return o, nil
}

func validateItem(cmd ItemCommand) (interfaces.ItemInput, error) {
	descricao := strings.TrimSpace(cmd.Descricao)
	if descricao == "" {
		return interfaces.ItemInput{}, invalid(msgDescricaoObrigatoria)
	}
	if !cmd.Quantidade.Valid || !cmd.Quantidade.Decimal.IsPositive() {
		return interfaces.ItemInput{}, invalid(msgQuantidadeInvalida)
	}
	if !cmd.ValorUnitario.Valid || cmd.ValorUnitario.Decimal.IsNegative() {
		return interfaces.ItemInput{}, invalid(msgValorUnitarioInvalido)
	}
	return interfaces.ItemInput{
		Descricao:     descricao,
		Quantidade:    cmd.Quantidade.Decimal,
		ValorUnitario: cmd.ValorUnitario.Decimal,
	}, nil
}
