package interfaces

import (
	"context"
	"gestao_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ItemInput carries the editable fields of a budget item. OrcamentoID is only
// sent on creation.
type ItemInput struct {
	Descricao     string          `json:"descricao"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valorUnitario"`
	OrcamentoID   int64           `json:"orcamentoId,omitempty"`
}

// IItemGateway abstracts the backend item endpoints.
type IItemGateway interface {
	ListByOrcamento(ctx context.Context, orcamentoID int64) ([]entities.Item, error)
	Create(ctx context.Context, in ItemInput) (entities.Item, error)
	Update(ctx context.Context, id int64, in ItemInput) (entities.Item, error)
}
