package backend

import (
	"context"
	"fmt"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"
	"net/http"
)

type OrcamentoGateway struct {
	client *Client
}

var _ interfaces.IOrcamentoGateway = (*OrcamentoGateway)(nil)

func NewOrcamentoGateway(client *Client) *OrcamentoGateway {
	return &OrcamentoGateway{client: client}
}

func (g *OrcamentoGateway) List(ctx context.Context) ([]entities.Orcamento, error) {
	var out []entities.Orcamento
	if err := g.client.do(ctx, "orcamentos.list", http.MethodGet, "/orcamentos/listar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *OrcamentoGateway) Create(ctx context.Context, in interfaces.NovoOrcamento) (entities.Orcamento, error) {
	var out entities.Orcamento
	if err := g.client.do(ctx, "orcamentos.create", http.MethodPost, "/orcamentos", in, &out); err != nil {
		return entities.Orcamento{}, err
	}
	return out, nil
}

func (g *OrcamentoGateway) GetByID(ctx context.Context, id int64) (entities.Orcamento, error) {
	var out entities.Orcamento
	if err := g.client.do(ctx, "orcamentos.get", http.MethodGet, fmt.Sprintf("/orcamentos/%d", id), nil, &out); err != nil {
		return entities.Orcamento{}, err
	}
	return out, nil
}

func (g *OrcamentoGateway) Finalize(ctx context.Context, id int64) (entities.Orcamento, error) {
	var out entities.Orcamento
	if err := g.client.do(ctx, "orcamentos.finalize", http.MethodPost, fmt.Sprintf("/orcamentos/%d/finalizar", id), nil, &out); err != nil {
		return entities.Orcamento{}, err
	}
	return out, nil
}
