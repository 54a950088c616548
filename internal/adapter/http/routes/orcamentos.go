package routes

import (
	"gestao_orcamentos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrcamentos = "/orcamentos"
)

func addOrcamentoRoutes(
	router *gin.Engine,
	orcamentoHandler *handlers.OrcamentoHandler,
	itemHandler *handlers.ItemHandler,
	medicaoHandler *handlers.MedicaoHandler,
	relatorioHandler *handlers.RelatorioHandler,
) {
	router.GET("/", orcamentoHandler.Home)

	orcamentos := router.Group(PathOrcamentos)
	{
		orcamentos.GET("", orcamentoHandler.List)
		orcamentos.GET("/novo", orcamentoHandler.New)
		orcamentos.POST("", orcamentoHandler.Create)
		orcamentos.GET("/:id", orcamentoHandler.Detail)
		orcamentos.POST("/:id/finalizar", orcamentoHandler.Finalize)
		orcamentos.GET("/:id/exportar", relatorioHandler.Export)

		orcamentos.POST("/:id/itens", itemHandler.Create)
		orcamentos.GET("/:id/itens/:itemId/editar", itemHandler.Edit)
		orcamentos.POST("/:id/itens/:itemId", itemHandler.Update)

		orcamentos.POST("/:id/medicoes", medicaoHandler.Create)
		orcamentos.POST("/:id/medicoes/:medicaoId/validar", medicaoHandler.Validate)
		orcamentos.POST("/:id/medicoes/:medicaoId/itens", medicaoHandler.UpsertItem)
	}
}

// addResumoRoutes registers the JSON summaries under /v1.
func addResumoRoutes(rg *gin.RouterGroup, resumoHandler *handlers.ResumoHandler) {
	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.GET("/resumo", resumoHandler.ResumoLista)
		orcamentos.GET("/:id/resumo", resumoHandler.ResumoOrcamento)
	}
}
