package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"
	mock_interfaces "gestao_orcamentos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMedicaoUseCase_ListMedicoes(t *testing.T) {
	t.Run("without open measurement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, nil, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{{ID: 1, Status: entities.MedicaoStatusValidada}}, nil)

		p, err := uc.ListMedicoes(context.Background(), 4)
		if err != nil || p.Aberta != nil || len(p.Medicoes) != 1 || !p.Subtotal.IsZero() {
			t.Fatalf("unexpected panel: %+v err=%v", p, err)
		}
	})

	t.Run("with open measurement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, nil, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{
			{ID: 1, Status: entities.MedicaoStatusValidada},
			{ID: 2, Status: entities.MedicaoStatusAberta},
		}, nil)
		med.EXPECT().ListItems(gomock.Any(), int64(2)).Return([]entities.ItemMedicao{
			{ItemID: 10, ValorTotalMedido: dec("25.50")},
			{ItemID: 11, ValorTotalMedido: dec("4.50")},
		}, nil)

		p, err := uc.ListMedicoes(context.Background(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Aberta == nil || p.Aberta.ID != 2 || len(p.ItensAberta) != 2 || !p.Subtotal.Equal(dec("30")) {
			t.Fatalf("unexpected panel: %+v", p)
		}
	})

	t.Run("items failure keeps the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, nil, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{
			{ID: 1, Status: entities.MedicaoStatusValidada},
			{ID: 2, Status: entities.MedicaoStatusAberta},
		}, nil)
		med.EXPECT().ListItems(gomock.Any(), int64(2)).Return(nil, errors.New("timeout"))

		p, err := uc.ListMedicoes(context.Background(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p.Medicoes) != 2 || p.Aberta == nil || p.Aberta.ID != 2 {
			t.Fatalf("expected list and open measurement, got %+v", p)
		}
		if p.ItensErro != "Erro ao carregar itens da medição." || len(p.ItensAberta) != 0 {
			t.Fatalf("unexpected items state: %+v", p)
		}
	})
}

func TestMedicaoUseCase_CreateMedicao(t *testing.T) {
	aberto := entities.Orcamento{ID: 4, Status: entities.OrcamentoStatusAberto}

	t.Run("finalized budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orc := mock_interfaces.NewMockIOrcamentoGateway(ctrl)
		uc := NewMedicaoUseCase(orc, nil, nil)

		orc.EXPECT().GetByID(gomock.Any(), int64(4)).Return(entities.Orcamento{ID: 4, Status: entities.OrcamentoStatusFinalizado}, nil)

		_, err := uc.CreateMedicao(context.Background(), 4, MedicaoCommand{Numero: "1", DataMedicao: "2026-01-10"})
		assertValidation(t, err, "Não é permitido criar medição para orçamento FINALIZADO.")
	})

	t.Run("open measurement exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orc := mock_interfaces.NewMockIOrcamentoGateway(ctrl)
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(orc, nil, med)

		orc.EXPECT().GetByID(gomock.Any(), int64(4)).Return(aberto, nil)
		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{{ID: 2, Status: entities.MedicaoStatusAberta}}, nil)

		_, err := uc.CreateMedicao(context.Background(), 4, MedicaoCommand{Numero: "2", DataMedicao: "2026-01-10"})
		assertValidation(t, err, "Já existe uma medição ABERTA para este orçamento.")
	})

	fieldCases := []struct {
		name string
		cmd  MedicaoCommand
		msg  string
	}{
		{name: "missing number", cmd: MedicaoCommand{Numero: " ", DataMedicao: "2026-01-10"}, msg: "Informe o número da medição."},
		{name: "missing date", cmd: MedicaoCommand{Numero: "1", DataMedicao: ""}, msg: "Informe a data da medição (YYYY-MM-DD)."},
		{name: "malformed date", cmd: MedicaoCommand{Numero: "1", DataMedicao: "10/01/2026"}, msg: "Informe a data da medição (YYYY-MM-DD)."},
	}
	for _, tc := range fieldCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orc := mock_interfaces.NewMockIOrcamentoGateway(ctrl)
			med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
			uc := NewMedicaoUseCase(orc, nil, med)

			orc.EXPECT().GetByID(gomock.Any(), int64(4)).Return(aberto, nil)
			med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return(nil, nil)

			_, err := uc.CreateMedicao(context.Background(), 4, tc.cmd)
			assertValidation(t, err, tc.msg)
		})
	}

	t.Run("success omits blank note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orc := mock_interfaces.NewMockIOrcamentoGateway(ctrl)
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(orc, nil, med)

		orc.EXPECT().GetByID(gomock.Any(), int64(4)).Return(aberto, nil)
		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{{ID: 1, Status: entities.MedicaoStatusValidada}}, nil)
		med.EXPECT().Create(gomock.Any(), interfaces.NovaMedicao{Numero: "02", DataMedicao: "2026-02-01", OrcamentoID: 4}).
			Return(entities.Medicao{ID: 3, Numero: "02", Status: entities.MedicaoStatusAberta}, nil)

		got, err := uc.CreateMedicao(context.Background(), 4, MedicaoCommand{Numero: " 02 ", DataMedicao: "2026-02-01", Observacao: "   "})
		if err != nil || got.ID != 3 {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestMedicaoUseCase_ValidateMedicao(t *testing.T) {
	t.Run("no open measurement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, nil, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{{ID: 1, Status: entities.MedicaoStatusValidada}}, nil)

		_, err := uc.ValidateMedicao(context.Background(), 4, 1)
		assertValidation(t, err, "Nenhuma medição aberta encontrada.")
	})

	t.Run("stale measurement id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, nil, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{{ID: 2, Status: entities.MedicaoStatusAberta}}, nil)

		_, err := uc.ValidateMedicao(context.Background(), 4, 1)
		assertValidation(t, err, "Nenhuma medição aberta encontrada.")
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, nil, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{{ID: 2, Status: entities.MedicaoStatusAberta}}, nil)
		med.EXPECT().Validate(gomock.Any(), int64(2)).Return(entities.Medicao{ID: 2, Status: entities.MedicaoStatusValidada}, nil)

		got, err := uc.ValidateMedicao(context.Background(), 4, 2)
		if err != nil || got.Status != entities.MedicaoStatusValidada {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}

func TestMedicaoUseCase_UpsertItemMedicao(t *testing.T) {
	itens := []entities.Item{
		{ID: 10, Quantidade: dec("10"), QuantidadeAcumulada: dec("4")},
		{ID: 11, Quantidade: dec("5"), QuantidadeAcumulada: dec("5")},
	}
	medicoes := []entities.Medicao{
		{ID: 1, Status: entities.MedicaoStatusValidada},
		{ID: 2, Status: entities.MedicaoStatusAberta},
	}

	t.Run("invalid quantity", func(t *testing.T) {
		uc := NewMedicaoUseCase(nil, nil, nil)
		_, err := uc.UpsertItemMedicao(context.Background(), 4, 2, ItemMedicaoCommand{ItemID: 10, QuantidadeMedida: validDec("0")})
		assertValidation(t, err, "Informe uma quantidade medida válida.")
	})

	t.Run("fully measured item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ig := mock_interfaces.NewMockIItemGateway(ctrl)
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, ig, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return(medicoes, nil)
		ig.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return(itens, nil)

		_, err := uc.UpsertItemMedicao(context.Background(), 4, 2, ItemMedicaoCommand{ItemID: 11, QuantidadeMedida: validDec("1")})
		assertValidation(t, err, "Item já totalmente medido.")
	})

	t.Run("unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ig := mock_interfaces.NewMockIItemGateway(ctrl)
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, ig, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return(medicoes, nil)
		ig.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return(itens, nil)

		_, err := uc.UpsertItemMedicao(context.Background(), 4, 2, ItemMedicaoCommand{ItemID: 99, QuantidadeMedida: validDec("1")})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("stale measurement id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, nil, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return(medicoes, nil)

		_, err := uc.UpsertItemMedicao(context.Background(), 4, 1, ItemMedicaoCommand{ItemID: 10, QuantidadeMedida: validDec("1")})
		assertValidation(t, err, "Nenhuma medição aberta encontrada.")
	})

	t.Run("no open measurement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, nil, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return([]entities.Medicao{{ID: 2, Status: entities.MedicaoStatusValidada}}, nil)

		_, err := uc.UpsertItemMedicao(context.Background(), 4, 2, ItemMedicaoCommand{ItemID: 10, QuantidadeMedida: validDec("1")})
		assertValidation(t, err, "Nenhuma medição aberta encontrada.")
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ig := mock_interfaces.NewMockIItemGateway(ctrl)
		med := mock_interfaces.NewMockIMedicaoGateway(ctrl)
		uc := NewMedicaoUseCase(nil, ig, med)

		med.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return(medicoes, nil)
		ig.EXPECT().ListByOrcamento(gomock.Any(), int64(4)).Return(itens, nil)
		med.EXPECT().UpsertItem(gomock.Any(), int64(2), interfaces.ItemMedicaoInput{ItemID: 10, QuantidadeMedida: dec("2.5")}).
			Return(entities.ItemMedicao{ID: 1, ItemID: 10, QuantidadeMedida: dec("2.5")}, nil)

		got, err := uc.UpsertItemMedicao(context.Background(), 4, 2, ItemMedicaoCommand{ItemID: 10, QuantidadeMedida: validDec("2.5")})
		if err != nil || got.ItemID != 10 {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}
