package handlers

import (
	"fmt"
	"gestao_orcamentos/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RelatorioHandler struct {
	relatorios usecase.IRelatorioUseCase
}

func NewRelatorioHandler(relatorios usecase.IRelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{relatorios: relatorios}
}

// Export downloads the budget, its items and measurements as a spreadsheet.
func (h *RelatorioHandler) Export(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		renderNotFound(c)
		return
	}

	rel, err := h.relatorios.ExportOrcamento(c.Request.Context(), id)
	if err != nil {
		renderLoadError(c, err, msgErroCarregarOrcamento)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, rel.FileName))
	c.Data(http.StatusOK, rel.ContentType, rel.Content)
}
