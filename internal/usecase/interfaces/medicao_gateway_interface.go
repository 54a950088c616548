package interfaces

import (
	"context"
	"gestao_orcamentos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type NovaMedicao struct {
	Numero      string `json:"numero"`
	DataMedicao string `json:"dataMedicao"`
	OrcamentoID int64  `json:"orcamentoId"`
	Observacao  string `json:"observacao,omitempty"`
}

// ItemMedicaoInput adds an item to a measurement or replaces its quantity.
type ItemMedicaoInput struct {
	ItemID           int64           `json:"itemId"`
	QuantidadeMedida decimal.Decimal `json:"quantidadeMedida"`
}

// IMedicaoGateway abstracts the backend measurement endpoints.
type IMedicaoGateway interface {
	ListByOrcamento(ctx context.Context, orcamentoID int64) ([]entities.Medicao, error)
	Create(ctx context.Context, in NovaMedicao) (entities.Medicao, error)
	Validate(ctx context.Context, medicaoID int64) (entities.Medicao, error)
	ListItems(ctx context.Context, medicaoID int64) ([]entities.ItemMedicao, error)
	UpsertItem(ctx context.Context, medicaoID int64, in ItemMedicaoInput) (entities.ItemMedicao, error)
}
