package handlers

import (
	response "gestao_orcamentos/internal/adapter/http/dto/response"
	"gestao_orcamentos/internal/usecase"
	"gestao_orcamentos/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidOrcamentoID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid orcamento id", http.StatusBadRequest)

// ResumoHandler exposes JSON summaries of the budgets.
type ResumoHandler struct {
	orcamentos usecase.IOrcamentoUseCase
	medicoes   usecase.IMedicaoUseCase
}

func NewResumoHandler(orcamentos usecase.IOrcamentoUseCase, medicoes usecase.IMedicaoUseCase) *ResumoHandler {
	return &ResumoHandler{orcamentos: orcamentos, medicoes: medicoes}
}

// ResumoLista godoc
// @Summary      Budget list summary
// @Description  Counters of the cached budget list. The list is fetched when nothing is cached yet.
// @Tags         orcamentos
// @Produce      json
// @Success      200  {object}  response.ResumoListaResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orcamentos/resumo [get]
func (h *ResumoHandler) ResumoLista(c *gin.Context) {
	resumo, err := h.orcamentos.Resumo(c.Request.Context())
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResumoLista(resumo))
}

// ResumoOrcamento godoc
// @Summary      Budget summary
// @Description  Items sum, finalize gate and open measurement of one budget.
// @Tags         orcamentos
// @Produce      json
// @Param        id   path      int  true  "Orcamento ID"
// @Success      200  {object}  response.OrcamentoResumoResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orcamentos/{id}/resumo [get]
func (h *ResumoHandler) ResumoOrcamento(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		c.JSON(errInvalidOrcamentoID.HTTPStatus, errInvalidOrcamentoID.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	detalhe, err := h.orcamentos.GetDetalhe(ctx, id)
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	painel, err := h.medicoes.ListMedicoes(ctx, id)
	if err != nil {
		appErr := mapOrcamentoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrcamentoResumo(detalhe, painel))
}
