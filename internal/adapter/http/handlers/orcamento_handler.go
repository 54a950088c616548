package handlers

import (
	"errors"
	request "gestao_orcamentos/internal/adapter/http/dto/request"
	"gestao_orcamentos/internal/adapter/http/views"
	"gestao_orcamentos/internal/domain/entities"
	"gestao_orcamentos/internal/usecase"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgErroBuscarOrcamentos = "Erro ao buscar orçamentos."

// OrcamentoHandler serves the budget list, the new budget form and the
// budget detail page.
type OrcamentoHandler struct {
	orcamentos usecase.IOrcamentoUseCase
	detalhe    detalheLoader
}

func NewOrcamentoHandler(orcamentos usecase.IOrcamentoUseCase, medicoes usecase.IMedicaoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{
		orcamentos: orcamentos,
		detalhe:    detalheLoader{orcamentos: orcamentos, medicoes: medicoes},
	}
}

func (h *OrcamentoHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/orcamentos")
}

// List fetches the budgets on every visit.
func (h *OrcamentoHandler) List(c *gin.Context) {
	list, err := h.orcamentos.ListOrcamentos(c.Request.Context())
	if err != nil {
		c.HTML(http.StatusBadGateway, views.PageOrcamentos, views.ListPage{
			Orcamentos: list,
			Contagem:   entities.CountByStatus(list),
			Erro:       errorMessage(err, msgErroBuscarOrcamentos),
		})
		return
	}
	c.HTML(http.StatusOK, views.PageOrcamentos, views.ListPage{
		Orcamentos: list,
		Contagem:   entities.CountByStatus(list),
	})
}

func (h *OrcamentoHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, views.PageNovoOrcamento, views.NovoOrcamentoPage{
		Tipos: entities.OrcamentoTipos,
	})
}

func (h *OrcamentoHandler) Create(c *gin.Context) {
	var form request.OrcamentoRequest
	_ = c.ShouldBind(&form)

	created, err := h.orcamentos.CreateOrcamento(c.Request.Context(), form.ToCommand())
	if err != nil {
		c.HTML(formErrorStatus(err), views.PageNovoOrcamento, views.NovoOrcamentoPage{
			Form:  form,
			Tipos: entities.OrcamentoTipos,
			Erro:  errorMessage(err, msgErroInesperado),
		})
		return
	}
	redirectDetalhe(c, created.ID, okCriado)
}

func (h *OrcamentoHandler) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}
	aviso := avisos[c.Query("ok")]
	h.detalhe.render(c, id, http.StatusOK, func(p *views.DetalhePage) {
		p.Aviso = aviso
	})
}

// Finalize closes the budget. The detail page is shown again with the error
// when the backend or the finalize gate refuses it.
func (h *OrcamentoHandler) Finalize(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	_, err := h.orcamentos.FinalizeOrcamento(c.Request.Context(), id)
	if err != nil {
		if isOrcamentoNotFound(err) {
			renderNotFound(c)
			return
		}
		status := formErrorStatus(err)
		if errors.Is(err, usecase.ErrOrcamentoNaoFinalizavel) {
			status = http.StatusConflict
		}
		log.Printf("[orcamento][handler] finalize rejected id=%d err=%v", id, err)
		h.detalhe.render(c, id, status, func(p *views.DetalhePage) {
			p.Erro = errorMessage(err, msgErroInesperado)
		})
		return
	}
	redirectDetalhe(c, id, okFinalizado)
}
