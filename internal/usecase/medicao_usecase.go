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
	msgMedicaoOrcamentoFinalizado = "Não é permitido criar medição para orçamento FINALIZADO."
	msgMedicaoAbertaExistente     = "Já existe uma medição ABERTA para este orçamento."
	msgNumeroMedicaoObrigatorio   = "Informe o número da medição."
	msgDataMedicaoInvalida        = "Informe a data da medição (YYYY-MM-DD)."
	msgNenhumaMedicaoAberta       = "Nenhuma medição aberta encontrada."
	msgQuantidadeMedidaInvalida   = "Informe uma quantidade medida válida."
	msgItemTotalmenteMedido       = "Item já totalmente medido."
	msgErroItensMedicao           = "Erro ao carregar itens da medição."
)

type MedicaoCommand struct {
	Numero      string
	DataMedicao string
	Observacao  string
}

type ItemMedicaoCommand struct {
	ItemID           int64
	QuantidadeMedida decimal.NullDecimal
}

// MedicoesPainel is the measurements section of a budget: every measurement
// plus the open one (if any) with the items already entered in it.
// ItensErro is set when the open measurement's items could not be loaded;
// the rest of the panel is still usable.
type MedicoesPainel struct {
	Medicoes    []entities.Medicao
	Aberta      *entities.Medicao
	ItensAberta []entities.ItemMedicao
	ItensErro   string
	Subtotal    decimal.Decimal
}

// IMedicaoUseCase exposes the measurements section of the budget detail page.
type IMedicaoUseCase interface {
	ListMedicoes(ctx context.Context, orcamentoID int64) (MedicoesPainel, error)
	CreateMedicao(ctx context.Context, orcamentoID int64, cmd MedicaoCommand) (entities.Medicao, error)
	ValidateMedicao(ctx context.Context, orcamentoID, medicaoID int64) (entities.Medicao, error)
	UpsertItemMedicao(ctx context.Context, orcamentoID, medicaoID int64, cmd ItemMedicaoCommand) (entities.ItemMedicao, error)
}

type MedicaoUseCase struct {
	orcamentos interfaces.IOrcamentoGateway
	itens      interfaces.IItemGateway
	medicoes   interfaces.IMedicaoGateway
}

var _ IMedicaoUseCase = (*MedicaoUseCase)(nil)

func NewMedicaoUseCase(orcamentos interfaces.IOrcamentoGateway, itens interfaces.IItemGateway, medicoes interfaces.IMedicaoGateway) *MedicaoUseCase {
	return &MedicaoUseCase{orcamentos: orcamentos, itens: itens, medicoes: medicoes}
}

func (u *MedicaoUseCase) ListMedicoes(ctx context.Context, orcamentoID int64) (MedicoesPainel, error) {
	if orcamentoID <= 0 {
		return MedicoesPainel{}, ErrInvalidOrcamentoID
	}
	list, err := u.medicoes.ListByOrcamento(ctx, orcamentoID)
	if err != nil {
		return MedicoesPainel{}, err
	}

	painel := MedicoesPainel{Medicoes: list, Subtotal: decimal.Zero}
	aberta, ok := entities.FindMedicaoAberta(list)
	if !ok {
		return painel, nil
	}
	painel.Aberta = &aberta
	itens, err := u.medicoes.ListItems(ctx, aberta.ID)
	if err != nil {
		log.Printf("[medicao][usecase] list items failed medicao_id=%d err=%v", aberta.ID, err)
		painel.ItensErro = gatewayMessage(err, msgErroItensMedicao)
		return painel, nil
	}
	painel.ItensAberta = itens
	painel.Subtotal = entities.SumMeasuredTotals(itens)
	return painel, nil
}

func (u *MedicaoUseCase) CreateMedicao(ctx context.Context, orcamentoID int64, cmd MedicaoCommand) (entities.Medicao, error) {
	if orcamentoID <= 0 {
		return entities.Medicao{}, ErrInvalidOrcamentoID
	}
	o, err := u.orcamentos.GetByID(ctx, orcamentoID)
	if err != nil {
		return entities.Medicao{}, mapNotFound(err, ErrOrcamentoNotFound)
	}
	if o.IsFinalizado() {
		return entities.Medicao{}, invalid(msgMedicaoOrcamentoFinalizado)
	}
	list, err := u.medicoes.ListByOrcamento(ctx, orcamentoID)
	if err != nil {
		return entities.Medicao{}, err
	}
	if _, ok := entities.FindMedicaoAberta(list); ok {
		return entities.Medicao{}, invalid(msgMedicaoAbertaExistente)
	}

	numero := strings.TrimSpace(cmd.Numero)
	if numero == "" {
		return entities.Medicao{}, invalid(msgNumeroMedicaoObrigatorio)
	}
	data := strings.TrimSpace(cmd.DataMedicao)
	if data == "" {
		return entities.Medicao{}, invalid(msgDataMedicaoInvalida)
	}
	if _, err := time.Parse(entities.DataMedicaoLayout, data); err != nil {
		return entities.Medicao{}, invalid(msgDataMedicaoInvalida)
	}

	created, err := u.medicoes.Create(ctx, interfaces.NovaMedicao{
		Numero:      numero,
		DataMedicao: data,
		OrcamentoID: orcamentoID,
		Observacao:  strings.TrimSpace(cmd.Observacao),
	})
	if err != nil {
		log.Printf("[medicao][usecase] create failed orcamento_id=%d err=%v", orcamentoID, err)
		return entities.Medicao{}, err
	}
	log.Printf("[medicao][usecase] create success orcamento_id=%d medicao_id=%d numero=%s", orcamentoID, created.ID, created.Numero)
	return created, nil
}

// ValidateMedicao validates the budget's open measurement. medicaoID must be
// that measurement.
func (u *MedicaoUseCase) ValidateMedicao(ctx context.Context, orcamentoID, medicaoID int64) (entities.Medicao, error) {
	if orcamentoID <= 0 {
		return entities.Medicao{}, ErrInvalidOrcamentoID
	}
	list, err := u.medicoes.ListByOrcamento(ctx, orcamentoID)
	if err != nil {
		return entities.Medicao{}, err
	}
	aberta, ok := entities.FindMedicaoAberta(list)
	if !ok || aberta.ID != medicaoID {
		return entities.Medicao{}, invalid(msgNenhumaMedicaoAberta)
	}

	validated, err := u.medicoes.Validate(ctx, aberta.ID)
	if err != nil {
		log.Printf("[medicao][usecase] validate failed orcamento_id=%d medicao_id=%d err=%v", orcamentoID, aberta.ID, err)
		return entities.Medicao{}, err
	}
	log.Printf("[medicao][usecase] validate success orcamento_id=%d medicao_id=%d status=%s", orcamentoID, validated.ID, validated.Status)
	return validated, nil
}

// UpsertItemMedicao records a measured quantity in the budget's open
// measurement. medicaoID must be that measurement.
func (u *MedicaoUseCase) UpsertItemMedicao(ctx context.Context, orcamentoID, medicaoID int64, cmd ItemMedicaoCommand) (entities.ItemMedicao, error) {
	if orcamentoID <= 0 {
		return entities.ItemMedicao{}, ErrInvalidOrcamentoID
	}
	if !cmd.QuantidadeMedida.Valid || !cmd.QuantidadeMedida.Decimal.IsPositive() {
		return entities.ItemMedicao{}, invalid(msgQuantidadeMedidaInvalida)
	}
	medicoes, err := u.medicoes.ListByOrcamento(ctx, orcamentoID)
	if err != nil {
		return entities.ItemMedicao{}, err
	}
	aberta, ok := entities.FindMedicaoAberta(medicoes)
	if !ok || aberta.ID != medicaoID {
		return entities.ItemMedicao{}, invalid(msgNenhumaMedicaoAberta)
	}
	itens, err := u.itens.ListByOrcamento(ctx, orcamentoID)
	if err != nil {
		return entities.ItemMedicao{}, err
	}
	it, ok := entities.FindItem(itens, cmd.ItemID)
	if !ok {
		return entities.ItemMedicao{}, ErrItemNotFound
	}
	if it.TotalmenteMedido() {
		return entities.ItemMedicao{}, invalid(msgItemTotalmenteMedido)
	}

	saved, err := u.medicoes.UpsertItem(ctx, aberta.ID, interfaces.ItemMedicaoInput{
		ItemID:           it.ID,
		QuantidadeMedida: cmd.QuantidadeMedida.Decimal,
	})
	if err != nil {
		log.Printf("[medicao][usecase] upsert item failed medicao_id=%d item_id=%d err=%v", medicaoID, it.ID, err)
		return entities.ItemMedicao{}, err
	}
	log.Printf("[medicao][usecase] upsert item success medicao_id=%d item_id=%d quantidade=%s", medicaoID, it.ID, saved.QuantidadeMedida)
	return saved, nil
}
