package routes

import (
	"context"
	"errors"
	_ "gestao_orcamentos/docs"
	"gestao_orcamentos/internal/adapter/backend"
	"gestao_orcamentos/internal/adapter/http/handlers"
	"gestao_orcamentos/internal/adapter/http/middleware"
	"gestao_orcamentos/internal/adapter/http/views"
	"gestao_orcamentos/internal/config"
	"gestao_orcamentos/internal/infrastructure/cache"
	"gestao_orcamentos/internal/infrastructure/export"
	"gestao_orcamentos/internal/infrastructure/metrics"
	"gestao_orcamentos/internal/usecase"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server and block until ctx is cancelled, then shut it
// down gracefully.
func Run(ctx context.Context, cfg config.Config) error {
	router, err := NewRouter(cfg, metrics.New())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[web][server] listening addr=%s backend=%s env=%s", cfg.HTTP.Addr, cfg.Backend.BaseURL, cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Printf("[web][server] graceful shutdown complete")
	return nil
}

// NewRouter wires the backend client, use cases and handlers into a gin
// engine.
func NewRouter(cfg config.Config, m *metrics.Metrics) (*gin.Engine, error) {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, m)

	renderer, err := views.New()
	if err != nil {
		return nil, err
	}
	router.HTMLRender = renderer
	router.StaticFS("/static", views.Static())

	client, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, m)
	if err != nil {
		return nil, err
	}
	orcamentoGateway := backend.NewOrcamentoGateway(client)
	itemGateway := backend.NewItemGateway(client)
	medicaoGateway := backend.NewMedicaoGateway(client)

	orcamentoUseCase := usecase.NewOrcamentoUseCase(orcamentoGateway, itemGateway, cache.NewOrcamentoListCache())
	itemUseCase := usecase.NewItemUseCase(orcamentoGateway, itemGateway)
	medicaoUseCase := usecase.NewMedicaoUseCase(orcamentoGateway, itemGateway, medicaoGateway)
	relatorioUseCase := usecase.NewRelatorioUseCase(orcamentoUseCase, medicaoGateway, export.NewXLSXExporter())

	router.GET("/health", handlers.Health)
	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	if cfg.Swagger.Enabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addOrcamentoRoutes(router,
		handlers.NewOrcamentoHandler(orcamentoUseCase, medicaoUseCase),
		handlers.NewItemHandler(itemUseCase, orcamentoUseCase, medicaoUseCase),
		handlers.NewMedicaoHandler(medicaoUseCase, orcamentoUseCase),
		handlers.NewRelatorioHandler(relatorioUseCase),
	)

	v1 := router.Group("/v1")
	addResumoRoutes(v1, handlers.NewResumoHandler(orcamentoUseCase, medicaoUseCase))

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, views.PageNaoEncontrado, views.ErrorPage{Mensagem: "Página não encontrada."})
	})
	return router, nil
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[web][server] recovered from panic request_id=%s err=%v", c.GetString(middleware.ContextKeyRequestID), recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.Metrics(m))
}
