package jobs

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"catering_backoffice/internal/usecase"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const inlineRefreshLimit = 4

// OverdueSweeper is the slice of the invoice use case the sweep task needs.
type OverdueSweeper interface {
	SweepOverdue(ctx context.Context, now time.Time) (usecase.SweepResult, error)
}

// MilestoneRefresher is the slice of the milestone use case the refresh task needs.
type MilestoneRefresher interface {
	RefreshStatuses(ctx context.Context, invoiceID string, now time.Time) (int, error)
}

// RefreshEnqueuer schedules a milestone refresh for one invoice.
type RefreshEnqueuer interface {
	EnqueueMilestoneRefresh(ctx context.Context, invoiceID string) error
}

// BillingTasks holds the handlers for the periodic billing tasks.
type BillingTasks struct {
	invoices   OverdueSweeper
	milestones MilestoneRefresher
	enqueuer   RefreshEnqueuer
	logger     *zap.Logger
	now        func() time.Time
}

// NewBillingTasks builds the task handlers. Without an enqueuer the sweep
// refreshes milestones inline.
func NewBillingTasks(invoices OverdueSweeper, milestones MilestoneRefresher, enqueuer RefreshEnqueuer, logger *zap.Logger) *BillingTasks {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BillingTasks{
		invoices:   invoices,
		milestones: milestones,
		enqueuer:   enqueuer,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handlers lists the task handlers to register on the worker.
func (b *BillingTasks) Handlers() []TaskHandler {
	return []TaskHandler{
		{Type: TaskOverdueSweep, Handler: b.HandleOverdueSweep},
		{Type: TaskMilestoneRefresh, Handler: b.HandleMilestoneRefresh},
	}
}

func (b *BillingTasks) HandleOverdueSweep(ctx context.Context, _ *asynq.Task) error {
	now := b.now()
	res, err := b.invoices.SweepOverdue(ctx, now)
	if err != nil {
		b.logger.Error("[jobs][sweep] overdue sweep failed", zap.Error(err))
		return err
	}

	var failed atomic.Int64
	if b.enqueuer != nil {
		for _, id := range res.OpenInvoices {
			if err := b.enqueuer.EnqueueMilestoneRefresh(ctx, id); err != nil {
				b.logger.Warn("[jobs][sweep] enqueue milestone refresh", zap.String("invoice_id", id), zap.Error(err))
				failed.Add(1)
			}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(inlineRefreshLimit)
		for _, id := range res.OpenInvoices {
			g.Go(func() error {
				if _, err := b.milestones.RefreshStatuses(ctx, id, now); err != nil {
					b.logger.Warn("[jobs][sweep] milestone refresh", zap.String("invoice_id", id), zap.Error(err))
					failed.Add(1)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	b.logger.Info("[jobs][sweep] done",
		zap.Int("scanned", res.Scanned),
		zap.Int("marked_overdue", res.MarkedOverdue),
		zap.Int64("refresh_failures", failed.Load()),
	)
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("jobs: %d milestone refreshes failed", n)
	}
	return nil
}

func (b *BillingTasks) HandleMilestoneRefresh(ctx context.Context, t *asynq.Task) error {
	p, err := parseMilestoneRefresh(t)
	if err != nil {
		b.logger.Warn("[jobs][refresh] bad payload", zap.Error(err))
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	changed, err := b.milestones.RefreshStatuses(ctx, p.InvoiceID, b.now())
	if err != nil {
		b.logger.Error("[jobs][refresh] failed", zap.String("invoice_id", p.InvoiceID), zap.Error(err))
		return err
	}
	if changed > 0 {
		b.logger.Info("[jobs][refresh] milestones now due", zap.String("invoice_id", p.InvoiceID), zap.Int("changed", changed))
	}
	return nil
}
