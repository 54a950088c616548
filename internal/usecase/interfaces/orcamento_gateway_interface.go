package interfaces

import (
	"context"
	"gestao_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// NovoOrcamento is the payload sent to create a budget.
type NovoOrcamento struct {
	NumeroProtocolo string                 `json:"numeroProtocolo"`
	Tipo            entities.OrcamentoTipo `json:"tipo"`
	ValorTotal      decimal.Decimal        `json:"valorTotal"`
}

// IOrcamentoGateway abstracts the backend budget endpoints.
//
// The backend owns validation and status transitions; callers only forward
// user input and mirror the returned budget.
type IOrcamentoGateway interface {
	List(ctx context.Context) ([]entities.Orcamento, error)
	Create(ctx context.Context, in NovoOrcamento) (entities.Orcamento, error)
	GetByID(ctx context.Context, id int64) (entities.Orcamento, error)
	Finalize(ctx context.Context, id int64) (entities.Orcamento, error)
}
