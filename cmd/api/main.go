package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"catering_backoffice/internal/adapter/http/routes"
	"catering_backoffice/internal/app"
	"catering_backoffice/internal/config"
	"catering_backoffice/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Catering Back-Office Billing API
// @version         1.0
// @description     Quotes, estimates, invoices, payment milestones and change requests backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := app.NewContainer(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("bootstrap failed", zap.Error(err))
	}
	defer c.Close()

	router := routes.NewRouter(routes.NewHandlers(c), zl, c.Metrics)
	if err := routes.Run(ctx, router, cfg.Port, zl); err != nil {
		zl.Error("http server stopped", zap.Error(err))
	}
}
