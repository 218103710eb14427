package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/pricing"
	"catering_backoffice/internal/domain/workflow"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrChangeRequestNotFound    = errors.New("change request not found")
	ErrInvalidChangeRequestID   = errors.New("invalid change request id")
	ErrInvalidChangeRequest     = errors.New("invalid change request")
	ErrInvoiceNotOpenForChanges = errors.New("invoice does not accept change requests in its current status")
	ErrChangeRequestConflict    = errors.New("change request or invoice changed concurrently")
)

// SubmitChangeRequestInput is a customer's proposed modification.
type SubmitChangeRequestInput struct {
	InvoiceID        string
	Changes          entities.RequestedChanges
	CustomerComments string
	Priority         entities.ChangeRequestPriority
}

// IChangeRequestUseCase submits and resolves change requests.
type IChangeRequestUseCase interface {
	Submit(ctx context.Context, in SubmitChangeRequestInput) (entities.ChangeRequest, error)
	GetByID(ctx context.Context, id string) (entities.ChangeRequest, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.ChangeRequest, error)
	Approve(ctx context.Context, id, adminResponse string, finalCostChange int64) (entities.ChangeRequest, error)
	Reject(ctx context.Context, id, adminResponse string) (entities.ChangeRequest, error)
}

type ChangeRequestUseCase struct {
	repo        interfaces.IChangeRequestRepository
	invoices    interfaces.IInvoiceRepository
	quotes      interfaces.IQuoteRequestRepository
	regenerator interfaces.IMilestoneRegenerator
	calc        pricing.Calculator
	metrics     interfaces.IMetricsRecorder
	logger      *zap.Logger
	now         func() time.Time
}

var _ IChangeRequestUseCase = (*ChangeRequestUseCase)(nil)

func NewChangeRequestUseCase(repo interfaces.IChangeRequestRepository, invoices interfaces.IInvoiceRepository, quotes interfaces.IQuoteRequestRepository, regenerator interfaces.IMilestoneRegenerator, calc pricing.Calculator, metrics interfaces.IMetricsRecorder, logger *zap.Logger) *ChangeRequestUseCase {
	if calc.HospitalityBPS == 0 && calc.ServiceBPS == 0 {
		calc = pricing.NewCalculator(0, 0)
	}
	return &ChangeRequestUseCase{
		repo:        repo,
		invoices:    invoices,
		quotes:      quotes,
		regenerator: regenerator,
		calc:        calc,
		metrics:     orNoopMetrics(metrics),
		logger:      orNop(logger),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit records a pending request and moves the invoice to under_review.
func (u *ChangeRequestUseCase) Submit(ctx context.Context, in SubmitChangeRequestInput) (entities.ChangeRequest, error) {
	invoiceID := strings.TrimSpace(in.InvoiceID)
	if invoiceID == "" {
		return entities.ChangeRequest{}, ErrInvalidInvoiceID
	}
	if err := validateRequestedChanges(in); err != nil {
		return entities.ChangeRequest{}, err
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if inv.ID == "" {
		return entities.ChangeRequest{}, ErrInvoiceNotFound
	}
	switch inv.WorkflowStatus {
	case entities.InvoiceStatusSent, entities.InvoiceStatusViewed, entities.InvoiceStatusApproved:
	default:
		return entities.ChangeRequest{}, ErrInvoiceNotOpenForChanges
	}

	priority := in.Priority
	if priority == "" {
		priority = entities.ChangeRequestPriorityNormal
	}

	now := u.now()
	cr := entities.ChangeRequest{
		ID:               uuid.NewString(),
		InvoiceID:        inv.ID,
		QuoteRequestID:   inv.QuoteRequestID,
		RequestedChanges: in.Changes,
		CustomerComments: strings.TrimSpace(in.CustomerComments),
		Priority:         priority,
		WorkflowStatus:   entities.ChangeRequestStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Submit(ctx, cr, inv.WorkflowStatus)
	if err != nil {
		u.metrics.Transition(string(workflow.EntityInvoice), string(entities.InvoiceStatusUnderReview), false)
		u.logger.Error("[change-request][usecase] submit failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		return entities.ChangeRequest{}, err
	}
	u.metrics.Transition(string(workflow.EntityInvoice), string(entities.InvoiceStatusUnderReview), true)

	u.logger.Info("[change-request][usecase] submitted",
		zap.String("change_request_id", created.ID),
		zap.String("invoice_id", inv.ID),
		zap.String("priority", string(created.Priority)),
	)
	return created, nil
}

func (u *ChangeRequestUseCase) GetByID(ctx context.Context, id string) (entities.ChangeRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ChangeRequest{}, ErrInvalidChangeRequestID
	}
	cr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeRequest{}, err
	}
	if cr.ID == "" {
		return entities.ChangeRequest{}, ErrChangeRequestNotFound
	}
	return cr, nil
}

func (u *ChangeRequestUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.ChangeRequest, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

// Approve applies the requested diff to the quote and invoice, posts
// finalCostChange as a tax-exempt adjustment line, recomputes totals, returns
// the invoice to sent and resolves the request, all in one transaction.
func (u *ChangeRequestUseCase) Approve(ctx context.Context, id, adminResponse string, finalCostChange int64) (entities.ChangeRequest, error) {
	cr, inv, err := u.loadForResolution(ctx, id, entities.ChangeRequestStatusApproved)
	if err != nil {
		return entities.ChangeRequest{}, err
	}

	var quote entities.QuoteRequest
	if inv.QuoteRequestID != "" && u.quotes != nil {
		quote, err = u.quotes.GetByID(ctx, inv.QuoteRequestID)
		if err != nil {
			return entities.ChangeRequest{}, err
		}
	}

	now := u.now()
	previousUpdated := inv.UpdatedAt
	previousTotal := inv.TotalAmount
	applyChanges(&inv, &quote, cr.RequestedChanges, now)

	if finalCostChange != 0 {
		inv.LineItems = append(inv.LineItems, pricing.AdjustmentLine(
			uuid.NewString(),
			"Change request adjustment",
			finalCostChange,
		))
	}
	u.calc.Recalculate(&inv)
	inv.WorkflowStatus = entities.InvoiceStatusSent
	inv.UpdatedAt = now

	cr.WorkflowStatus = entities.ChangeRequestStatusApproved
	cr.AdminResponse = strings.TrimSpace(adminResponse)
	cr.FinalCostChange = finalCostChange
	cr.ResolvedAt = &now
	cr.UpdatedAt = now

	if err := u.persist(ctx, cr, inv, previousUpdated, quote); err != nil {
		return entities.ChangeRequest{}, err
	}

	u.logger.Info("[change-request][usecase] approved",
		zap.String("change_request_id", cr.ID),
		zap.String("invoice_id", inv.ID),
		zap.Int64("final_cost_change", finalCostChange),
		zap.Int64("previous_total", previousTotal),
		zap.Int64("total", inv.TotalAmount),
	)

	if u.regenerator != nil {
		u.regenerator.ScheduleRegeneration(inv.ID)
	}
	return cr, nil
}

// Reject resolves the request and returns the invoice to sent without touching
// any other data.
func (u *ChangeRequestUseCase) Reject(ctx context.Context, id, adminResponse string) (entities.ChangeRequest, error) {
	cr, inv, err := u.loadForResolution(ctx, id, entities.ChangeRequestStatusRejected)
	if err != nil {
		return entities.ChangeRequest{}, err
	}

	now := u.now()
	previousUpdated := inv.UpdatedAt
	inv.WorkflowStatus = entities.InvoiceStatusSent
	inv.UpdatedAt = now

	cr.WorkflowStatus = entities.ChangeRequestStatusRejected
	cr.AdminResponse = strings.TrimSpace(adminResponse)
	cr.ResolvedAt = &now
	cr.UpdatedAt = now

	if err := u.persist(ctx, cr, inv, previousUpdated, entities.QuoteRequest{}); err != nil {
		return entities.ChangeRequest{}, err
	}

	u.logger.Info("[change-request][usecase] rejected", zap.String("change_request_id", cr.ID), zap.String("invoice_id", inv.ID))
	return cr, nil
}

func (u *ChangeRequestUseCase) loadForResolution(ctx context.Context, id string, to entities.ChangeRequestStatus) (entities.ChangeRequest, entities.Invoice, error) {
	cr, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ChangeRequest{}, entities.Invoice{}, err
	}
	if err := workflow.ValidateTransition(workflow.EntityChangeRequest, string(cr.WorkflowStatus), string(to)); err != nil {
		u.metrics.Transition(string(workflow.EntityChangeRequest), string(to), false)
		return entities.ChangeRequest{}, entities.Invoice{}, err
	}

	inv, err := u.invoices.GetByID(ctx, cr.InvoiceID)
	if err != nil {
		return entities.ChangeRequest{}, entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.ChangeRequest{}, entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.WorkflowStatus != entities.InvoiceStatusUnderReview {
		u.metrics.Transition(string(workflow.EntityChangeRequest), string(to), false)
		return entities.ChangeRequest{}, entities.Invoice{}, fmt.Errorf("%w: invoice %s is %q", ErrInvoiceNotOpenForChanges, inv.ID, inv.WorkflowStatus)
	}
	return cr, inv, nil
}

func (u *ChangeRequestUseCase) persist(ctx context.Context, cr entities.ChangeRequest, inv entities.Invoice, previousUpdated time.Time, quote entities.QuoteRequest) error {
	err := u.repo.ApplyResolution(ctx, interfaces.ChangeRequestResolution{
		Request:                cr,
		Invoice:                inv,
		PreviousInvoiceUpdated: previousUpdated,
		Quote:                  quote,
	})
	if err != nil {
		u.metrics.Transition(string(workflow.EntityChangeRequest), string(cr.WorkflowStatus), false)
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return errors.Join(ErrChangeRequestConflict, err)
		}
		return err
	}
	u.metrics.Transition(string(workflow.EntityChangeRequest), string(cr.WorkflowStatus), true)
	u.metrics.Transition(string(workflow.EntityInvoice), string(entities.InvoiceStatusSent), true)
	return nil
}

// applyChanges copies the requested diff onto the invoice and, when loaded,
// the quote request.
func applyChanges(inv *entities.Invoice, quote *entities.QuoteRequest, ch entities.RequestedChanges, now time.Time) {
	if ch.GuestCount != nil {
		inv.GuestCount = *ch.GuestCount
		pricing.ApplyGuestCount(inv.LineItems, inv.GuestCount)
	}
	if ch.EventDate != nil {
		inv.EventDate = *ch.EventDate
	}

	if quote.ID == "" {
		return
	}
	if ch.GuestCount != nil {
		quote.GuestCount = *ch.GuestCount
	}
	if len(ch.MenuItems) > 0 {
		quote.MenuSelections = append([]string(nil), ch.MenuItems...)
	}
	if ch.EventDate != nil {
		quote.EventDate = *ch.EventDate
	}
	if notes := strings.TrimSpace(ch.Notes); notes != "" {
		if quote.Notes != "" {
			quote.Notes += "\n"
		}
		quote.Notes += notes
	}
	quote.UpdatedAt = now
}

func validateRequestedChanges(in SubmitChangeRequestInput) error {
	ch := in.Changes
	if ch.GuestCount == nil && len(ch.MenuItems) == 0 && ch.EventDate == nil && strings.TrimSpace(ch.Notes) == "" && strings.TrimSpace(in.CustomerComments) == "" {
		return fmt.Errorf("%w: no changes requested", ErrInvalidChangeRequest)
	}
	if ch.GuestCount != nil && *ch.GuestCount < 1 {
		return fmt.Errorf("%w: guest count must be at least 1", ErrInvalidChangeRequest)
	}
	switch in.Priority {
	case "", entities.ChangeRequestPriorityLow, entities.ChangeRequestPriorityNormal,
		entities.ChangeRequestPriorityHigh, entities.ChangeRequestPriorityUrgent:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidChangeRequest, in.Priority)
	}
	return nil
}
