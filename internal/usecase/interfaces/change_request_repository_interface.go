package interfaces

import (
	"context"
	"time"

	"catering_backoffice/internal/domain/entities"
)

// ChangeRequestResolution is everything an approve or reject writes.
//
// Invoice and Quote are optional: a zero ID leaves that record untouched.
type ChangeRequestResolution struct {
	Request                entities.ChangeRequest
	Invoice                entities.Invoice
	PreviousInvoiceUpdated time.Time
	Quote                  entities.QuoteRequest
}

// IChangeRequestRepository abstracts DynamoDB persistence for ChangeRequest.
type IChangeRequestRepository interface {
	// Submit stores the request and moves its invoice from invoiceFrom to
	// under_review in one transaction.
	Submit(ctx context.Context, cr entities.ChangeRequest, invoiceFrom entities.InvoiceStatus) (entities.ChangeRequest, error)
	GetByID(ctx context.Context, id string) (entities.ChangeRequest, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.ChangeRequest, error)
	// ApplyResolution persists the request, invoice and quote in one
	// transaction. The request must still be pending and the invoice must not
	// have changed since PreviousInvoiceUpdated.
	ApplyResolution(ctx context.Context, res ChangeRequestResolution) error
}
