package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "catering_backoffice/docs"
	"catering_backoffice/internal/adapter/http/handlers"
	"catering_backoffice/internal/app"
	"catering_backoffice/internal/infrastructure/logger"
	"catering_backoffice/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Quotes         *handlers.QuoteRequestHandler
	Invoices       *handlers.InvoiceHandler
	Milestones     *handlers.MilestoneHandler
	ChangeRequests *handlers.ChangeRequestHandler
	Payments       *handlers.BillingPaymentHandler
	Workflow       *handlers.WorkflowHandler
}

// NewHandlers builds the handlers on top of the container's use cases.
func NewHandlers(c *app.Container) Handlers {
	return Handlers{
		Quotes:         handlers.NewQuoteRequestHandler(c.Quotes, c.Logger),
		Invoices:       handlers.NewInvoiceHandler(c.Invoices, c.Logger),
		Milestones:     handlers.NewMilestoneHandler(c.Milestones, c.Logger),
		ChangeRequests: handlers.NewChangeRequestHandler(c.ChangeRequests, c.Logger),
		Payments:       handlers.NewBillingPaymentHandler(c.Payments, c.Config.Payments.MockMode, c.Logger),
		Workflow:       handlers.NewWorkflowHandler(c.Calculator, c.Logger),
	}
}

// NewRouter builds the gin engine with middlewares, docs, metrics and the
// versioned API.
func NewRouter(h Handlers, log *zap.Logger, rec *metrics.Recorder) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log, rec)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(rec.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, h.Quotes)
	addInvoiceRoutes(v1, h.Invoices, h.Milestones, h.ChangeRequests)
	addBillingRoutes(v1, h.Milestones, h.Payments)
	addChangeRequestRoutes(v1, h.ChangeRequests)
	addWorkflowRoutes(v1, h.Workflow)

	return router
}

// Run serves the router until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, router http.Handler, port int, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("http server shutting down")
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, log *zap.Logger, rec *metrics.Recorder) {
	router.Use(logger.Recovery(log))
	router.Use(logger.GinMiddleware(log))
	router.Use(rec.Middleware())
}
