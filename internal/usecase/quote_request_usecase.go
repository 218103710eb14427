package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/workflow"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteRequestNotFound = errors.New("quote request not found")
	ErrInvalidQuoteID       = errors.New("invalid quote request id")
	ErrInvalidQuoteRequest  = errors.New("invalid quote request")
)

// IQuoteRequestUseCase covers intake and status tracking of customer inquiries.
type IQuoteRequestUseCase interface {
	Submit(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRequest, error)
	ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id string, to entities.QuoteStatus) (entities.QuoteRequest, error)
}

type QuoteRequestUseCase struct {
	repo    interfaces.IQuoteRequestRepository
	metrics interfaces.IMetricsRecorder
	logger  *zap.Logger
}

var _ IQuoteRequestUseCase = (*QuoteRequestUseCase)(nil)

func NewQuoteRequestUseCase(repo interfaces.IQuoteRequestRepository, metrics interfaces.IMetricsRecorder, logger *zap.Logger) *QuoteRequestUseCase {
	return &QuoteRequestUseCase{repo: repo, metrics: orNoopMetrics(metrics), logger: orNop(logger)}
}

func (u *QuoteRequestUseCase) Submit(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	q.ContactName = strings.TrimSpace(q.ContactName)
	q.Email = strings.TrimSpace(q.Email)
	if q.ContactName == "" || q.Email == "" {
		return entities.QuoteRequest{}, fmt.Errorf("%w: contact name and email are required", ErrInvalidQuoteRequest)
	}
	if q.GuestCount < 1 {
		return entities.QuoteRequest{}, fmt.Errorf("%w: guest count must be at least 1", ErrInvalidQuoteRequest)
	}
	if q.EventDate.IsZero() {
		return entities.QuoteRequest{}, fmt.Errorf("%w: event date is required", ErrInvalidQuoteRequest)
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.WorkflowStatus = entities.QuoteStatusPending
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.logger.Error("[quote][usecase] create failed", zap.Error(err))
		return entities.QuoteRequest{}, err
	}
	u.logger.Info("[quote][usecase] quote request submitted", zap.String("quote_id", created.ID), zap.Int("guest_count", created.GuestCount))
	return created, nil
}

func (u *QuoteRequestUseCase) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuoteRequest{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if q.ID == "" {
		return entities.QuoteRequest{}, ErrQuoteRequestNotFound
	}
	return q, nil
}

func (u *QuoteRequestUseCase) ListByStatus(ctx context.Context, status entities.QuoteStatus) ([]entities.QuoteRequest, error) {
	if !workflow.IsKnownStatus(workflow.EntityQuote, string(status)) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidQuoteRequest, status)
	}
	return u.repo.ListByStatus(ctx, status)
}

// UpdateStatus persists the new status only when the transition is legal and
// the stored status has not moved since it was read.
func (u *QuoteRequestUseCase) UpdateStatus(ctx context.Context, id string, to entities.QuoteStatus) (entities.QuoteRequest, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	if err := workflow.ValidateTransition(workflow.EntityQuote, string(q.WorkflowStatus), string(to)); err != nil {
		u.metrics.Transition(string(workflow.EntityQuote), string(to), false)
		u.logger.Warn("[quote][usecase] rejected transition", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.QuoteRequest{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, q.ID, q.WorkflowStatus, to)
	if err != nil {
		u.metrics.Transition(string(workflow.EntityQuote), string(to), false)
		return entities.QuoteRequest{}, err
	}
	u.metrics.Transition(string(workflow.EntityQuote), string(to), true)
	u.logger.Info("[quote][usecase] status updated", zap.String("quote_id", q.ID), zap.String("from", string(q.WorkflowStatus)), zap.String("to", string(to)))
	return updated, nil
}
