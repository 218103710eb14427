// Package app wires configuration, infrastructure and use cases for the API
// and worker binaries.
package app

import (
	"context"
	"fmt"

	"catering_backoffice/internal/adapter/persistence/repository"
	"catering_backoffice/internal/config"
	"catering_backoffice/internal/domain/pricing"
	"catering_backoffice/internal/infrastructure/cache"
	"catering_backoffice/internal/infrastructure/database"
	"catering_backoffice/internal/infrastructure/export"
	"catering_backoffice/internal/infrastructure/metrics"
	"catering_backoffice/internal/infrastructure/notifications"
	"catering_backoffice/internal/infrastructure/payments"
	"catering_backoffice/internal/infrastructure/scheduler"
	"catering_backoffice/internal/usecase"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds the process-wide dependencies.
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *metrics.Recorder
	Calculator pricing.Calculator

	DynamoDB  *dynamodb.Client
	Redis     *redis.Client
	Debouncer *scheduler.Debouncer

	Quotes         *usecase.QuoteRequestUseCase
	Invoices       *usecase.InvoiceUseCase
	Milestones     *usecase.MilestoneUseCase
	ChangeRequests *usecase.ChangeRequestUseCase
	Payments       *usecase.BillingPaymentUseCase
}

// NewContainer connects to DynamoDB and Redis and builds every use case. Redis
// is optional for the API: without it payments run without the idempotency guard.
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("app: dynamodb: %w", err)
	}
	if cfg.AWS.DynamoDBEndpoint != "" {
		if err := database.EnsureTables(ctx, ddb, database.Tables(cfg.Tables), logger); err != nil {
			return nil, fmt.Errorf("app: ensure tables: %w", err)
		}
	}

	c := &Container{
		Config:     cfg,
		Logger:     logger,
		Metrics:    metrics.NewRecorder(),
		Calculator: pricing.NewCalculator(cfg.Tax.HospitalityBPS, cfg.Tax.ServiceBPS),
		DynamoDB:   ddb,
		Debouncer:  scheduler.NewDebouncer(cfg.Billing.RegenerationDebounce),
	}

	var guard interfaces.IIdempotencyGuard
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logger.Warn("[app] redis unavailable, payment idempotency guard disabled", zap.Error(err))
		} else {
			c.Redis = rdb
			guard = cache.NewIdempotencyGuard(rdb, cfg.Payments.IdempotencyTTL)
		}
	}

	quoteRepo := repository.NewQuoteRequestDynamoRepository(ddb, cfg.Tables.QuoteRequests)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices)
	milestoneRepo := repository.NewPaymentMilestoneDynamoRepository(ddb, cfg.Tables.PaymentMilestones)
	changeRepo := repository.NewChangeRequestDynamoRepository(ddb, cfg.Tables.ChangeRequests, cfg.Tables.Invoices, cfg.Tables.QuoteRequests)
	paymentRepo := repository.NewBillingPaymentDynamoRepository(ddb, cfg.Tables.Payments)

	c.Quotes = usecase.NewQuoteRequestUseCase(quoteRepo, c.Metrics, logger)
	c.Milestones = usecase.NewMilestoneUseCase(invoiceRepo, milestoneRepo, c.Debouncer, c.Metrics, logger)

	var sms interfaces.ISMSSender
	if s := notifications.NewTwilioSMS(cfg.SMS, cfg.Email.BusinessName, logger); s != nil {
		sms = s
	}

	c.Invoices = usecase.NewInvoiceUseCase(usecase.InvoiceDeps{
		Invoices:      invoiceRepo,
		Quotes:        quoteRepo,
		Milestones:    milestoneRepo,
		Regenerator:   c.Milestones,
		Mailer:        notifications.NewResendMailer(cfg.Email, logger),
		SMS:           sms,
		Renderer:      export.NewInvoicePDFRenderer(cfg.Email.BusinessName),
		Calculator:    c.Calculator,
		PublicBaseURL: cfg.Email.PublicBaseURL,
		Metrics:       c.Metrics,
		Logger:        logger,
	})

	c.ChangeRequests = usecase.NewChangeRequestUseCase(changeRepo, invoiceRepo, quoteRepo, c.Milestones, c.Calculator, c.Metrics, logger)

	var gateway interfaces.IPaymentGateway
	if mp, err := payments.NewMercadoPagoGateway(cfg.Payments, logger); err != nil {
		logger.Warn("[app] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		logger.Info("[app] Mercado Pago gateway ready", zap.Bool("mock", mp.IsMock()))
		gateway = mp
	}

	c.Payments = usecase.NewBillingPaymentUseCase(usecase.BillingPaymentDeps{
		Payments:   paymentRepo,
		Milestones: milestoneRepo,
		Invoices:   invoiceRepo,
		Gateway:    gateway,
		Guard:      guard,
		MockMode:   cfg.Payments.MockMode,
		Metrics:    c.Metrics,
		Logger:     logger,
	})

	return c, nil
}

// Close stops pending regenerations and releases connections.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Debouncer != nil {
		c.Debouncer.Stop()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("[app] redis close", zap.Error(err))
		}
	}
}
