package usecase

import (
	"context"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	msgProtocoloObrigatorio = "Informe o número do protocolo."
	msgTipoInvalido         = "Informe um tipo de orçamento válido."
	msgValorTotalInvalido   = "Informe um valor total válido."
	msgNaoFinalizavel       = "Para finalizar, a soma dos itens deve ser igual ao valor total do orçamento."
	msgErroBuscarOrcamentos = "Erro ao buscar orçamentos."
)

// CreateOrcamentoCommand is the user input of the new budget form.
// ValorTotal is invalid (Valid=false) when the field could not be parsed.
type CreateOrcamentoCommand struct {
	NumeroProtocolo string
	Tipo            entities.OrcamentoTipo
	ValorTotal      decimal.NullDecimal
}

// OrcamentoDetalhe is a budget with its items and the values derived from
// them for display.
type OrcamentoDetalhe struct {
	Orcamento     entities.Orcamento
	Itens         []entities.Item
	SomaItens     decimal.Decimal
	Diferenca     decimal.Decimal
	PodeFinalizar bool
}

func newOrcamentoDetalhe(o entities.Orcamento, itens []entities.Item) OrcamentoDetalhe {
	soma := entities.SumItemTotals(itens)
	return OrcamentoDetalhe{
		Orcamento:     o,
		Itens:         itens,
		SomaItens:     soma,
		Diferenca:     o.ValorTotal.Sub(soma),
		PodeFinalizar: o.PodeFinalizar(soma),
	}
}

// ResumoLista summarizes the cached budget list.
type ResumoLista struct {
	entities.StatusCount
	Total        int
	AtualizadoEm time.Time
	Erro         string
}

// IOrcamentoUseCase exposes the budget screens' operations:
//   - list page (fetch on every visit, refreshes the shared cache)
//   - new budget form
//   - detail page (budget + items) and the finalize action
//
// ListOrcamentos returns the last cached list together with the error when
// the backend call fails.
type IOrcamentoUseCase interface {
	ListOrcamentos(ctx context.Context) ([]entities.Orcamento, error)
	CreateOrcamento(ctx context.Context, cmd CreateOrcamentoCommand) (entities.Orcamento, error)
	GetDetalhe(ctx context.Context, id int64) (OrcamentoDetalhe, error)
	FinalizeOrcamento(ctx context.Context, id int64) (entities.Orcamento, error)
	Resumo(ctx context.Context) (ResumoLista, error)
}

type OrcamentoUseCase struct {
	orcamentos interfaces.IOrcamentoGateway
	itens      interfaces.IItemGateway
	cache      interfaces.IOrcamentoListCache
}

var _ IOrcamentoUseCase = (*OrcamentoUseCase)(nil)

func NewOrcamentoUseCase(orcamentos interfaces.IOrcamentoGateway, itens interfaces.IItemGateway, cache interfaces.IOrcamentoListCache) *OrcamentoUseCase {
	return &OrcamentoUseCase{orcamentos: orcamentos, itens: itens, cache: cache}
}

func (u *OrcamentoUseCase) ListOrcamentos(ctx context.Context) ([]entities.Orcamento, error) {
	list, err := u.orcamentos.List(ctx)
	if err != nil {
		log.Printf("[orcamento][usecase] list failed err=%v", err)
		u.cache.Fail(gatewayMessage(err, msgErroBuscarOrcamentos))
		return u.cache.Snapshot().Data, err
	}
	u.cache.Store(list)
	return list, nil
}

func (u *OrcamentoUseCase) CreateOrcamento(ctx context.Context, cmd CreateOrcamentoCommand) (entities.Orcamento, error) {
	protocolo := strings.TrimSpace(cmd.NumeroProtocolo)
	if protocolo == "" {
		return entities.Orcamento{}, invalid(msgProtocoloObrigatorio)
	}
	if !cmd.Tipo.Valid() {
		return entities.Orcamento{}, invalid(msgTipoInvalido)
	}
	if !cmd.ValorTotal.Valid || cmd.ValorTotal.Decimal.IsNegative() {
		return entities.Orcamento{}, invalid(msgValorTotalInvalido)
	}

	created, err := u.orcamentos.Create(ctx, interfaces.NovoOrcamento{
		NumeroProtocolo: protocolo,
		Tipo:            cmd.Tipo,
		ValorTotal:      cmd.ValorTotal.Decimal,
	})
	if err != nil {
		log.Printf("[orcamento][usecase] create failed protocolo=%s err=%v", protocolo, err)
		return entities.Orcamento{}, err
	}
	u.cache.Invalidate()
	log.Printf("[orcamento][usecase] create success id=%d protocolo=%s", created.ID, created.NumeroProtocolo)
	return created, nil
}

func (u *OrcamentoUseCase) GetDetalhe(ctx context.Context, id int64) (OrcamentoDetalhe, error) {
	if id <= 0 {
		return OrcamentoDetalhe{}, ErrInvalidOrcamentoID
	}

	o, err := u.orcamentos.GetByID(ctx, id)
	if err != nil {
		return OrcamentoDetalhe{}, mapNotFound(err, ErrOrcamentoNotFound)
	}
	itens, err := u.itens.ListByOrcamento(ctx, id)
	if err != nil {
		return OrcamentoDetalhe{}, err
	}
	return newOrcamentoDetalhe(o, itens), nil
}

func (u *OrcamentoUseCase) FinalizeOrcamento(ctx context.Context, id int64) (entities.Orcamento, error) {
	detalhe, err := u.GetDetalhe(ctx, id)
	if err != nil {
		return entities.Orcamento{}, err
	}
	if !detalhe.PodeFinalizar {
		log.Printf("[orcamento][usecase] finalize blocked id=%d valor_total=%s soma_itens=%s status=%s",
			id, detalhe.Orcamento.ValorTotal, detalhe.SomaItens, detalhe.Orcamento.Status)
		return entities.Orcamento{}, ErrOrcamentoNaoFinalizavel
	}

	updated, err := u.orcamentos.Finalize(ctx, id)
	if err != nil {
		log.Printf("[orcamento][usecase] finalize failed id=%d err=%v", id, err)
		return entities.Orcamento{}, mapNotFound(err, ErrOrcamentoNotFound)
	}
	u.cache.Invalidate()
	log.Printf("[orcamento][usecase] finalize success id=%d status=%s", updated.ID, updated.Status)
	return updated, nil
}

// Resumo reads the counters from the shared cache, loading it first when
// nothing has been fetched yet. Erro carries the message of the last failed
// refresh while older data is still being served.
func (u *OrcamentoUseCase) Resumo(ctx context.Context) (ResumoLista, error) {
	snap := u.cache.Snapshot()
	if !snap.Loaded() {
		if _, err := u.ListOrcamentos(ctx); err != nil {
			return ResumoLista{}, err
		}
		snap = u.cache.Snapshot()
	}
	return ResumoLista{
		StatusCount:  entities.CountByStatus(snap.Data),
		Total:        len(snap.Data),
		AtualizadoEm: snap.FetchedAt,
		Erro:         snap.Error,
	}, nil
}
