package interfaces

import (
	"context"
	"time"

	"catering_backoffice/internal/domain/entities"
)

// IPaymentMilestoneRepository abstracts DynamoDB persistence for PaymentMilestone.
type IPaymentMilestoneRepository interface {
	GetByID(ctx context.Context, id string) (entities.PaymentMilestone, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error)
	// ReplaceForInvoice writes next and deletes every row of previous that is not
	// in next, in one transaction. Paid rows are never deleted or overwritten.
	ReplaceForInvoice(ctx context.Context, invoiceID string, previous, next []entities.PaymentMilestone) error
	UpdateStatus(ctx context.Context, milestone entities.PaymentMilestone, from entities.MilestoneStatus) (entities.PaymentMilestone, error)
	// MarkPaid fails with ErrConditionFailed unless the stored milestone is
	// pending or due and its amount equals milestone.Amount.
	MarkPaid(ctx context.Context, milestone entities.PaymentMilestone, paidAt time.Time) (entities.PaymentMilestone, error)
}
