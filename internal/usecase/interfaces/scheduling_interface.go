package interfaces

import (
	"context"

	"catering_backoffice/internal/domain/entities"
)

// IRegenerationScheduler coalesces work per key.
type IRegenerationScheduler interface {
	Schedule(key string, fn func())
	Cancel(key string) bool
}

// IMilestoneRegenerator rebuilds an invoice's payment schedule, either now or
// after the debounce window.
type IMilestoneRegenerator interface {
	RegenerateMilestones(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error)
	ScheduleRegeneration(invoiceID string)
}

// IIdempotencyGuard holds a short-lived lock per key.
type IIdempotencyGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// IMetricsRecorder counts workflow outcomes.
type IMetricsRecorder interface {
	Transition(entity, to string, ok bool)
	Regeneration(ok bool)
	Payment(ok bool)
}

// IInvoiceRenderer renders an invoice document (PDF).
type IInvoiceRenderer interface {
	Render(inv entities.Invoice, milestones []entities.PaymentMilestone) ([]byte, error)
}
