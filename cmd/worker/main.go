package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"catering_backoffice/internal/app"
	"catering_backoffice/internal/config"
	"catering_backoffice/internal/infrastructure/jobs"
	"catering_backoffice/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

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

	if cfg.Redis.Addr == "" {
		zl.Fatal("worker requires REDIS_ADDR")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := app.NewContainer(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("bootstrap failed", zap.Error(err))
	}
	defer c.Close()

	redisOpts := jobs.RedisOpts(cfg.Redis)
	client := jobs.NewClient(redisOpts)
	defer func() { _ = client.Close() }()

	tasks := jobs.NewBillingTasks(c.Invoices, c.Milestones, client, zl)

	var cron []jobs.CronRegistration
	if cfg.Billing.OverdueSweepCron != "" {
		cron = append(cron, jobs.CronRegistration{
			Spec: cfg.Billing.OverdueSweepCron,
			Task: jobs.NewOverdueSweepTask(),
		})
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   redisOpts,
		Concurrency: cfg.Billing.WorkerConcurrency,
		Logger:      zl,
		Handlers:    tasks.Handlers(),
		Cron:        cron,
	})
	if err != nil {
		zl.Fatal("worker setup failed", zap.Error(err))
	}

	zl.Info("worker started", zap.Int("concurrency", cfg.Billing.WorkerConcurrency))
	if err := worker.Run(ctx); err != nil {
		zl.Error("worker stopped", zap.Error(err))
	}
}
