package backend

import (
	"context"
	"fmt"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"
	"net/http"
)

type MedicaoGateway struct {
	client *Client
}

var _ interfaces.IMedicaoGateway = (*MedicaoGateway)(nil)

func NewMedicaoGateway(client *Client) *MedicaoGateway {
	return &MedicaoGateway{client: client}
}

func (g *MedicaoGateway) ListByOrcamento(ctx context.Context, orcamentoID int64) ([]entities.Medicao, error) {
	var out []entities.Medicao
	if err := g.client.do(ctx, "medicoes.list", http.MethodGet, fmt.Sprintf("/medicoes/orcamento/%d", orcamentoID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *MedicaoGateway) Create(ctx context.Context, in interfaces.NovaMedicao) (entities.Medicao, error) {
	var out entities.Medicao
	if err := g.client.do(ctx, "medicoes.create", http.MethodPost, "/medicoes", in, &out); err != nil {
		return entities.Medicao{}, err
	}
	return out, nil
}

func (g *MedicaoGateway) Validate(ctx context.Context, medicaoID int64) (entities.Medicao, error) {
	var out entities.Medicao
	if err := g.client.do(ctx, "medicoes.validate", http.MethodPost, fmt.Sprintf("/medicoes/%d/validar", medicaoID), nil, &out); err != nil {
		return entities.Medicao{}, err
	}
	return out, nil
}

func (g *MedicaoGateway) ListItems(ctx context.Context, medicaoID int64) ([]entities.ItemMedicao, error) {
	var out []entities.ItemMedicao
	if err := g.client.do(ctx, "medicoes.items", http.MethodGet, fmt.Sprintf("/medicoes/%d/itens", medicaoID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *MedicaoGateway) UpsertItem(ctx context.Context, medicaoID int64, in interfaces.ItemMedicaoInput) (entities.ItemMedicao, error) {
	var out entities.ItemMedicao
	if err := g.client.do(ctx, "medicoes.upsert_item", http.MethodPost, fmt.Sprintf("/medicoes/%d/itens", medicaoID), in, &out); err != nil {
		return entities.ItemMedicao{}, err
	}
	return out, nil
}
