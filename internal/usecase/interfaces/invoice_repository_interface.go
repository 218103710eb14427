package interfaces

import (
	"context"
	"time"

	"catering_backoffice/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice (line items are
// stored inside the invoice item).
//
// UpdateStatus is conditioned on the current status so a concurrent change
// surfaces as ErrConditionFailed instead of being overwritten.
type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.InvoiceStatus, at time.Time) (entities.Invoice, error)
	ListByStatuses(ctx context.Context, statuses []entities.InvoiceStatus) ([]entities.Invoice, error)
}
