package export

import (
	"bytes"
	"fmt"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetResumo   = "Resumo"
	SheetItens    = "Itens"
	SheetMedicoes = "Medicoes"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// XLSXExporter writes a budget report as an Excel workbook with a summary
// sheet, the items and the measurements.
type XLSXExporter struct{}

var _ interfaces.IRelatorioExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) ContentType() string   { return xlsxContentType }
func (e *XLSXExporter) FileExtension() string { return "xlsx" }

func (e *XLSXExporter) Export(r interfaces.RelatorioOrcamento) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetResumo); err != nil {
		return nil, err
	}
	soma := entities.SumItemTotals(r.Itens)
	resumo := [][]interface{}{
		{"Protocolo", r.Orcamento.NumeroProtocolo},
		{"Tipo", r.Orcamento.Tipo.Label()},
		{"Status", string(r.Orcamento.Status)},
		{"Data de criação", r.Orcamento.DataCriacao},
		{"Valor total", num(r.Orcamento.ValorTotal)},
		{"Soma dos itens", num(soma)},
		{"Diferença", num(r.Orcamento.ValorTotal.Sub(soma))},
	}
	if err := writeRows(f, SheetResumo, resumo); err != nil {
		return nil, err
	}

	itens := [][]interface{}{
		{"Descrição", "Quantidade", "Valor unitário", "Valor total", "Quantidade acumulada", "Restante"},
	}
	for _, it := range r.Itens {
		itens = append(itens, []interface{}{
			it.Descricao,
			num(it.Quantidade),
			num(it.ValorUnitario),
			num(it.ValorTotal),
			num(it.QuantidadeAcumulada),
			num(it.Restante()),
		})
	}
	if _, err := f.NewSheet(SheetItens); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetItens, itens); err != nil {
		return nil, err
	}

	medicoes := [][]interface{}{
		{"Número", "Data", "Status", "Valor total", "Observação"},
	}
	for _, m := range r.Medicoes {
		medicoes = append(medicoes, []interface{}{
			m.Numero,
			m.DataMedicao,
			string(m.Status),
			num(m.ValorTotal),
			m.Observacao,
		})
	}
	if _, err := f.NewSheet(SheetMedicoes); err != nil {
		return nil, err
	}
	if err := writeRows(f, SheetMedicoes, medicoes); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// num converts to float64 so spreadsheet cells stay numeric.
func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
