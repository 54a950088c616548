package export

import (
	"bytes"
	"testing"

	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	r := interfaces.RelatorioOrcamento{
		Orcamento: entities.Orcamento{
			ID:              1,
			NumeroProtocolo: "43022.123456/2026-01",
			Tipo:            entities.OrcamentoTipoObraRodovias,
			ValorTotal:      decimal.RequireFromString("1500"),
			Status:          entities.OrcamentoStatusAberto,
		},
		Itens: []entities.Item{
			{Descricao: "Asfalto", Quantidade: decimal.RequireFromString("10"), ValorUnitario: decimal.RequireFromString("100"), ValorTotal: decimal.RequireFromString("1000"), QuantidadeAcumulada: decimal.RequireFromString("4")},
		},
		Medicoes: []entities.Medicao{
			{Numero: "01", DataMedicao: "2026-02-01", Status: entities.MedicaoStatusValidada, ValorTotal: decimal.RequireFromString("400")},
		},
	}

	content, err := NewXLSXExporter().Export(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("expected a readable workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	if got := f.GetSheetList(); len(got) != 3 || got[0] != SheetResumo || got[1] != SheetItens || got[2] != SheetMedicoes {
		t.Fatalf("unexpected sheets: %v", got)
	}

	rows, err := f.GetRows(SheetItens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "Asfalto" || rows[1][5] != "6" {
		t.Fatalf("unexpected item rows: %v", rows)
	}

	protocolo, _ := f.GetCellValue(SheetResumo, "B1")
	if protocolo != "43022.123456/2026-01" {
		t.Fatalf("unexpected protocol cell: %q", protocolo)
	}
	diferenca, _ := f.GetCellValue(SheetResumo, "B7")
	if diferenca != "500" {
		t.Fatalf("unexpected difference cell: %q", diferenca)
	}

	medicoes, _ := f.GetRows(SheetMedicoes)
	if len(medicoes) != 2 || medicoes[1][2] != "VALIDADA" {
		t.Fatalf("unexpected measurement rows: %v", medicoes)
	}
}
