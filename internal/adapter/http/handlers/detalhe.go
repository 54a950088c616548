package handlers

import (
	"gestao_orcamentos/internal/adapter/http/views"
	"gestao_orcamentos/internal/usecase"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Flash codes carried in the "ok" query string after a successful submit.
const (
	okCriado     = "criado"
	okFinalizado = "finalizado"
	okItem       = "item"
	okMedicao    = "medicao"
	okValidada   = "validada"
	okMedido     = "medido"
)

var avisos = map[string]string{
	okCriado:     "Orçamento criado.",
	okFinalizado: "Orçamento finalizado.",
	okItem:       "Item salvo.",
	okMedicao:    "Medição criada.",
	okValidada:   "Medição validada.",
	okMedido:     "Quantidade medida salva.",
}

// detalheLoader renders the budget detail page. Form handlers use it to show
// their errors inline on the page that hosts the form.
type detalheLoader struct {
	orcamentos usecase.IOrcamentoUseCase
	medicoes   usecase.IMedicaoUseCase
}

func (l detalheLoader) render(c *gin.Context, id int64, status int, fill func(*views.DetalhePage)) {
	ctx := c.Request.Context()
	detalhe, err := l.orcamentos.GetDetalhe(ctx, id)
	if err != nil {
		renderLoadError(c, err, msgErroCarregarOrcamento)
		return
	}

	painel, err := l.medicoes.ListMedicoes(ctx, id)
	page := views.NewDetalhePage(detalhe, painel)
	if err != nil {
		page = views.NewDetalhePage(detalhe, usecase.MedicoesPainel{})
		page.PodeCriarMedicao = false
		page.MedicoesErro = errorMessage(err, msgErroCarregarMedicoes)
	}
	if fill != nil {
		fill(&page)
	}
	c.HTML(status, views.PageDetalhe, page)
}

func redirectDetalhe(c *gin.Context, id int64, ok string) {
	c.Redirect(http.StatusSeeOther, detalheURL(id, ok))
}

func detalheURL(id int64, ok string) string {
	u := "/orcamentos/" + strconv.FormatInt(id, 10)
	if ok != "" {
		u += "?ok=" + ok
	}
	return u
}
