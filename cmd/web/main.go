package main

import (
	"context"
	_ "gestao_orcamentos/docs"
	"gestao_orcamentos/internal/adapter/http/routes"
	"gestao_orcamentos/internal/config"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
)

// @title           Gestão de Orçamentos API
// @version         1.0
// @description     JSON summaries of the budgets admin (orçamentos, itens e medições).

// @host localhost:8080

// @BasePath  /v1

func main() {
	// Money travels as JSON numbers, both to the backend and on /v1.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load(os.Getenv("ORCAMENTOS_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
