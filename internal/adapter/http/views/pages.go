package views

import (
	request "gestao_orcamentos/internal/adapter/http/dto/request"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase"

	"github.com/shopspring/decimal"
)

// ListPage is the budget list with the status counters.
type ListPage struct {
	Orcamentos []entities.Orcamento
	Contagem   entities.StatusCount
	Erro       string
}

type NovoOrcamentoPage struct {
	Form  request.OrcamentoRequest
	Tipos []entities.OrcamentoTipo
	Erro  string
}

// LinhaMedicao is one budget item row of the open measurement editor.
// Quantidade pre-fills the input and must parse back to the stored value.
type LinhaMedicao struct {
	Item       entities.Item
	Medido     *entities.ItemMedicao
	Quantidade string
	Bloqueado  bool
}

// DetalhePage is the budget detail. Each form has its own error slot so the
// message shows next to the form that produced it.
type DetalhePage struct {
	Detalhe          usecase.OrcamentoDetalhe
	Painel           usecase.MedicoesPainel
	Linhas           []LinhaMedicao
	ItemForm         request.ItemRequest
	MedicaoForm      request.MedicaoRequest
	PodeCriarMedicao bool
	Aviso            string
	Erro             string
	ItemErro         string
	MedicaoErro      string
	MedicaoItemErro  string
	MedicoesErro     string
}

// NewDetalhePage derives the display state of the detail page.
func NewDetalhePage(d usecase.OrcamentoDetalhe, p usecase.MedicoesPainel) DetalhePage {
	page := DetalhePage{
		Detalhe:          d,
		Painel:           p,
		PodeCriarMedicao: d.Orcamento.IsAberto() && p.Aberta == nil,
	}
	if p.Aberta != nil && p.ItensErro == "" {
		medidos := entities.IndexByItemID(p.ItensAberta)
		for _, it := range d.Itens {
			linha := LinhaMedicao{Item: it, Bloqueado: it.TotalmenteMedido()}
			if m, ok := medidos[it.ID]; ok {
				linha.Medido = &m
				linha.Quantidade = request.FormatDecimal(m.QuantidadeMedida)
			}
			page.Linhas = append(page.Linhas, linha)
		}
	}
	return page
}

// Hint is the message under the finalize button.
func (p DetalhePage) Hint() string {
	o := p.Detalhe.Orcamento
	switch {
	case o.IsFinalizado():
		return "Orçamento finalizado. Itens e medições não podem mais ser alterados."
	case p.Detalhe.PodeFinalizar:
		return "A soma dos itens confere com o valor total. O orçamento pode ser finalizado."
	default:
		return "Para finalizar, a soma dos itens deve ser igual ao valor total do orçamento."
	}
}

// DiferencaAbs is the absolute gap between the declared total and the items.
func (p DetalhePage) DiferencaAbs() decimal.Decimal {
	return p.Detalhe.Diferenca.Abs()
}

type EditItemPage struct {
	Orcamento entities.Orcamento
	Item      entities.Item
	Form      request.ItemRequest
	Erro      string
}

// ErrorPage is shown when a page could not be loaded.
type ErrorPage struct {
	Titulo    string
	Mensagem  string
	VoltarURL string
}
