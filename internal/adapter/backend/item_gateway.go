package backend

import (
	"context"
	"fmt"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"
	"net/http"
)

type ItemGateway struct {
	client *Client
}

var _ interfaces.IItemGateway = (*ItemGateway)(nil)

func NewItemGateway(client *Client) *ItemGateway {
	return &ItemGateway{client: client}
}

func (g *ItemGateway) ListByOrcamento(ctx context.Context, orcamentoID int64) ([]entities.Item, error) {
	var out []entities.Item
	if err := g.client.do(ctx, "itens.list", http.MethodGet, fmt.Sprintf("/itens/orcamento/%d", orcamentoID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *ItemGateway) Create(ctx context.Context, in interfaces.ItemInput) (entities.Item, error) {
	var out entities.Item
	if err := g.client.do(ctx, "itens.create", http.MethodPost, "/itens", in, &out); err != nil {
		return entities.Item{}, err
	}
	return out, nil
}

func (g *ItemGateway) Update(ctx context.Context, id int64, in interfaces.ItemInput) (entities.Item, error) {
	in.OrcamentoID = 0
	var out entities.Item
	if err := g.client.do(ctx, "itens.update", http.MethodPut, fmt.Sprintf("/itens/%d", id), in, &out); err != nil {
		return entities.Item{}, err
	}
	return out, nil
}
