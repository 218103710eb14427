package interfaces

import (
	"context"

	"catering_backoffice/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.BillingPayment, error)
}
