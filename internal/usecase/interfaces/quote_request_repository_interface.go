package interfaces

import (
	"context"

	"catering_backoffice/internal/domain/entities"
)

// IQuoteRequestRepository abstracts DynamoDB persistence for QuoteRequest.
//
// A zero-value QuoteRequest with a nil error means "not found".
type IQuoteRequestRepository interface {
	Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus) (entities.QuoteRequest, error)
}
