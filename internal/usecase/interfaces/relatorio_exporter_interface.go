package interfaces

import "gestao_orcamentos/internal/domain/entities"

// RelatorioOrcamento is everything exported for one budget.
type RelatorioOrcamento struct {
	Orcamento entities.Orcamento
	Itens     []entities.Item
	Medicoes  []entities.Medicao
}

// IRelatorioExporter renders a budget report into a downloadable file.
type IRelatorioExporter interface {
	Export(r RelatorioOrcamento) ([]byte, error)
	ContentType() string
	FileExtension() string
}
