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
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvalidInvoiceID    = errors.New("invalid invoice id")
	ErrInvalidInvoice      = errors.New("invalid invoice")
	ErrInvoiceLocked       = errors.New("invoice can no longer be edited")
	ErrNotAnEstimate       = errors.New("document is not an estimate")
	ErrEstimateNotApproved = errors.New("estimate not approved")
	ErrNotificationFailed  = errors.New("invoice notification failed")
	ErrRendererUnavailable = errors.New("invoice renderer not configured")
)

// CreateInvoiceInput describes a new estimate or invoice. Empty customer and
// event fields are filled from the linked quote request.
type CreateInvoiceInput struct {
	QuoteRequestID       string
	DocumentType         entities.DocumentType
	CustomerName         string
	CustomerEmail        string
	CustomerPhone        string
	EventDate            time.Time
	GuestCount           int
	IsGovernmentContract bool
	LineItems            []entities.LineItem
	DueDate              time.Time
}

// SweepResult summarizes one overdue sweep.
type SweepResult struct {
	Scanned       int
	MarkedOverdue int
	OpenInvoices  []string
}

// IInvoiceUseCase covers the estimate/invoice lifecycle.
type IInvoiceUseCase interface {
	Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, to entities.InvoiceStatus) (entities.Invoice, error)
	ReplaceLineItems(ctx context.Context, id string, items []entities.LineItem) (entities.Invoice, error)
	SetGovernmentContract(ctx context.Context, id string, isGovernment bool) (entities.Invoice, error)
	Send(ctx context.Context, id string) (entities.Invoice, error)
	MarkViewed(ctx context.Context, id string) error
	ConvertToInvoice(ctx context.Context, id string) (entities.Invoice, error)
	RenderPDF(ctx context.Context, id string) ([]byte, entities.Invoice, error)
	SweepOverdue(ctx context.Context, now time.Time) (SweepResult, error)
}

// InvoiceDeps groups the collaborators of InvoiceUseCase. Mailer, SMS and
// Renderer are optional.
type InvoiceDeps struct {
	Invoices      interfaces.IInvoiceRepository
	Quotes        interfaces.IQuoteRequestRepository
	Milestones    interfaces.IPaymentMilestoneRepository
	Regenerator   interfaces.IMilestoneRegenerator
	Mailer        interfaces.IInvoiceMailer
	SMS           interfaces.ISMSSender
	Renderer      interfaces.IInvoiceRenderer
	Calculator    pricing.Calculator
	PublicBaseURL string
	Metrics       interfaces.IMetricsRecorder
	Logger        *zap.Logger
}

type InvoiceUseCase struct {
	repo        interfaces.IInvoiceRepository
	quotes      interfaces.IQuoteRequestRepository
	milestones  interfaces.IPaymentMilestoneRepository
	regenerator interfaces.IMilestoneRegenerator
	mailer      interfaces.IInvoiceMailer
	sms         interfaces.ISMSSender
	renderer    interfaces.IInvoiceRenderer
	calc        pricing.Calculator
	baseURL     string
	metrics     interfaces.IMetricsRecorder
	logger      *zap.Logger
	now         func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(d InvoiceDeps) *InvoiceUseCase {
	calc := d.Calculator
	if calc.HospitalityBPS == 0 && calc.ServiceBPS == 0 {
		calc = pricing.NewCalculator(0, 0)
	}
	return &InvoiceUseCase{
		repo:        d.Invoices,
		quotes:      d.Quotes,
		milestones:  d.Milestones,
		regenerator: d.Regenerator,
		mailer:      d.Mailer,
		sms:         d.SMS,
		renderer:    d.Renderer,
		calc:        calc,
		baseURL:     strings.TrimRight(d.PublicBaseURL, "/"),
		metrics:     orNoopMetrics(d.Metrics),
		logger:      orNop(d.Logger),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *InvoiceUseCase) Create(ctx context.Context, in CreateInvoiceInput) (entities.Invoice, error) {
	var quote entities.QuoteRequest
	if id := strings.TrimSpace(in.QuoteRequestID); id != "" {
		q, err := u.quotes.GetByID(ctx, id)
		if err != nil {
			return entities.Invoice{}, err
		}
		if q.ID == "" {
			return entities.Invoice{}, ErrQuoteRequestNotFound
		}
		quote = q
	}

	now := u.now()
	inv := entities.Invoice{
		ID:                   uuid.NewString(),
		QuoteRequestID:       quote.ID,
		DocumentType:         in.DocumentType,
		WorkflowStatus:       entities.InvoiceStatusDraft,
		CustomerName:         firstNonEmpty(in.CustomerName, quote.ContactName),
		CustomerEmail:        firstNonEmpty(in.CustomerEmail, quote.Email),
		CustomerPhone:        firstNonEmpty(in.CustomerPhone, quote.Phone),
		EventDate:            in.EventDate,
		GuestCount:           in.GuestCount,
		IsGovernmentContract: in.IsGovernmentContract,
		DueDate:              in.DueDate,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if inv.DocumentType == "" {
		inv.DocumentType = entities.DocumentTypeEstimate
	}
	if inv.EventDate.IsZero() {
		inv.EventDate = quote.EventDate
	}
	if inv.GuestCount == 0 {
		inv.GuestCount = quote.GuestCount
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = defaultDueDate(now, inv.EventDate)
	}
	inv.InvoiceNumber = invoiceNumber(inv.DocumentType, now, inv.ID)

	if err := validateInvoice(inv); err != nil {
		return entities.Invoice{}, err
	}
	items, err := normalizeLineItems(in.LineItems)
	if err != nil {
		return entities.Invoice{}, err
	}
	inv.LineItems = items
	pricing.ApplyGuestCount(inv.LineItems, inv.GuestCount)
	u.calc.Recalculate(&inv)

	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		u.logger.Error("[invoice][usecase] create failed", zap.Error(err))
		return entities.Invoice{}, err
	}
	u.logger.Info("[invoice][usecase] invoice created",
		zap.String("invoice_id", created.ID),
		zap.String("document_type", string(created.DocumentType)),
		zap.Int64("total", created.TotalAmount),
	)

	if u.regenerator != nil {
		if _, err := u.regenerator.RegenerateMilestones(ctx, created.ID); err != nil {
			u.logger.Error("[invoice][usecase] initial milestones failed", zap.String("invoice_id", created.ID), zap.Error(err))
		}
	}

	if quote.ID != "" {
		u.markQuoteEstimated(ctx, quote)
	}

	return created, nil
}

// markQuoteEstimated moves the quote to estimated, passing through
// under_review when it is still pending. Failures are logged only.
func (u *InvoiceUseCase) markQuoteEstimated(ctx context.Context, quote entities.QuoteRequest) {
	steps := []entities.QuoteStatus{entities.QuoteStatusEstimated}
	if quote.WorkflowStatus == entities.QuoteStatusPending {
		steps = []entities.QuoteStatus{entities.QuoteStatusUnderReview, entities.QuoteStatusEstimated}
	}

	from := quote.WorkflowStatus
	for _, to := range steps {
		if !workflow.IsValidTransition(workflow.EntityQuote, string(from), string(to)) {
			return
		}
		if _, err := u.quotes.UpdateStatus(ctx, quote.ID, from, to); err != nil {
			u.metrics.Transition(string(workflow.EntityQuote), string(to), false)
			u.logger.Warn("[invoice][usecase] quote status not advanced", zap.String("quote_id", quote.ID), zap.String("to", string(to)), zap.Error(err))
			return
		}
		u.metrics.Transition(string(workflow.EntityQuote), string(to), true)
		from = to
	}
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// UpdateStatus validates the transition before writing; a rejected transition
// leaves the stored invoice untouched.
func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, to entities.InvoiceStatus) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.transition(ctx, inv, to)
}

func (u *InvoiceUseCase) transition(ctx context.Context, inv entities.Invoice, to entities.InvoiceStatus) (entities.Invoice, error) {
	now := u.now()

	err := workflow.ValidateTransition(workflow.EntityInvoice, string(inv.WorkflowStatus), string(to))
	if err == nil && to == entities.InvoiceStatusOverdue && !workflow.CanMarkOverdue(inv.WorkflowStatus, inv.DueDate, now) {
		err = fmt.Errorf("%w: invoice %s is not past due", workflow.ErrInvalidTransition, inv.ID)
	}
	if err != nil {
		u.metrics.Transition(string(workflow.EntityInvoice), string(to), false)
		u.logger.Warn("[invoice][usecase] rejected transition", zap.String("invoice_id", inv.ID), zap.Error(err))
		return entities.Invoice{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, inv.ID, inv.WorkflowStatus, to, now)
	if err != nil {
		u.metrics.Transition(string(workflow.EntityInvoice), string(to), false)
		u.logger.Warn("[invoice][usecase] status update failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		return entities.Invoice{}, err
	}

	u.metrics.Transition(string(workflow.EntityInvoice), string(to), true)
	u.logger.Info("[invoice][usecase] status updated", zap.String("invoice_id", inv.ID), zap.String("from", string(inv.WorkflowStatus)), zap.String("to", string(to)))
	return updated, nil
}

// ReplaceLineItems swaps the line items, recomputes totals and schedules a
// milestone regeneration when the total moved.
func (u *InvoiceUseCase) ReplaceLineItems(ctx context.Context, id string, items []entities.LineItem) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !editable(inv) {
		return entities.Invoice{}, ErrInvoiceLocked
	}

	// Adjustment lines come from approved change requests and are not
	// editable: submitted ones are ignored and the stored ones carried over.
	editableItems := make([]entities.LineItem, 0, len(items))
	for _, li := range items {
		if li.Category != entities.LineCategoryAdjustment {
			editableItems = append(editableItems, li)
		}
	}
	normalized, err := normalizeLineItems(editableItems)
	if err != nil {
		return entities.Invoice{}, err
	}
	for _, li := range inv.LineItems {
		if li.Category == entities.LineCategoryAdjustment {
			normalized = append(normalized, li)
		}
	}

	previousTotal := inv.TotalAmount
	inv.LineItems = normalized
	pricing.ApplyGuestCount(inv.LineItems, inv.GuestCount)
	return u.saveRecalculated(ctx, inv, previousTotal != recalculatedTotal(u.calc, inv))
}

// SetGovernmentContract toggles the exemption, recomputes tax and schedules a
// milestone regeneration when the flag changed.
func (u *InvoiceUseCase) SetGovernmentContract(ctx context.Context, id string, isGovernment bool) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.IsGovernmentContract == isGovernment {
		return inv, nil
	}
	if !editable(inv) {
		return entities.Invoice{}, ErrInvoiceLocked
	}

	inv.IsGovernmentContract = isGovernment
	return u.saveRecalculated(ctx, inv, true)
}

func (u *InvoiceUseCase) saveRecalculated(ctx context.Context, inv entities.Invoice, regenerate bool) (entities.Invoice, error) {
	u.calc.Recalculate(&inv)
	inv.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.logger.Info("[invoice][usecase] totals recalculated",
		zap.String("invoice_id", updated.ID),
		zap.Int64("subtotal", updated.Subtotal),
		zap.Int64("tax", updated.TaxAmount),
		zap.Int64("total", updated.TotalAmount),
	)

	if regenerate && u.regenerator != nil {
		u.regenerator.ScheduleRegeneration(updated.ID)
	}
	return updated, nil
}

// Send delivers the invoice by email (and SMS when configured). A draft moves
// to sent only after the email went out; a failed send changes nothing.
func (u *InvoiceUseCase) Send(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	switch inv.WorkflowStatus {
	case entities.InvoiceStatusDraft, entities.InvoiceStatusSent, entities.InvoiceStatusViewed,
		entities.InvoiceStatusApproved, entities.InvoiceStatusOverdue:
	default:
		return entities.Invoice{}, fmt.Errorf("%w: cannot send invoice in status %q", workflow.ErrInvalidTransition, inv.WorkflowStatus)
	}
	if u.mailer == nil {
		return entities.Invoice{}, fmt.Errorf("%w: mailer not configured", ErrNotificationFailed)
	}

	links := u.links(inv.ID)
	messageID, err := u.mailer.SendInvoice(ctx, inv, links)
	if err != nil {
		u.logger.Error("[invoice][usecase] email send failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		return entities.Invoice{}, errors.Join(ErrNotificationFailed, err)
	}
	u.logger.Info("[invoice][usecase] email sent", zap.String("invoice_id", inv.ID), zap.String("message_id", messageID))

	if u.sms != nil && inv.CustomerPhone != "" {
		if _, err := u.sms.SendInvoiceNotice(ctx, inv, links.ViewURL); err != nil {
			u.logger.Warn("[invoice][usecase] sms send failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		}
	}

	if inv.WorkflowStatus != entities.InvoiceStatusDraft {
		return inv, nil
	}
	return u.transition(ctx, inv, entities.InvoiceStatusSent)
}

// MarkViewed records an email open. Only a sent invoice changes.
func (u *InvoiceUseCase) MarkViewed(ctx context.Context, id string) error {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inv.WorkflowStatus != entities.InvoiceStatusSent {
		return nil
	}
	_, err = u.transition(ctx, inv, entities.InvoiceStatusViewed)
	return err
}

// ConvertToInvoice turns an approved estimate into an invoice.
func (u *InvoiceUseCase) ConvertToInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.DocumentType != entities.DocumentTypeEstimate {
		return entities.Invoice{}, ErrNotAnEstimate
	}
	if inv.WorkflowStatus != entities.InvoiceStatusApproved {
		return entities.Invoice{}, ErrEstimateNotApproved
	}

	inv.DocumentType = entities.DocumentTypeInvoice
	inv.InvoiceNumber = strings.Replace(inv.InvoiceNumber, "EST-", "INV-", 1)
	inv.UpdatedAt = u.now()

	updated, err := u.repo.Update(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	u.logger.Info("[invoice][usecase] estimate converted", zap.String("invoice_id", updated.ID), zap.String("number", updated.InvoiceNumber))
	return updated, nil
}

func (u *InvoiceUseCase) RenderPDF(ctx context.Context, id string) ([]byte, entities.Invoice, error) {
	if u.renderer == nil {
		return nil, entities.Invoice{}, ErrRendererUnavailable
	}
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, entities.Invoice{}, err
	}

	var ms []entities.PaymentMilestone
	if u.milestones != nil {
		ms, err = u.milestones.ListByInvoiceID(ctx, inv.ID)
		if err != nil {
			return nil, entities.Invoice{}, err
		}
		sortBySequence(ms)
	}

	out, err := u.renderer.Render(inv, ms)
	if err != nil {
		return nil, entities.Invoice{}, err
	}
	return out, inv, nil
}

// SweepOverdue moves open invoices whose due date lapsed to overdue. Invoices
// changed concurrently are skipped.
func (u *InvoiceUseCase) SweepOverdue(ctx context.Context, now time.Time) (SweepResult, error) {
	open, err := u.repo.ListByStatuses(ctx, []entities.InvoiceStatus{
		entities.InvoiceStatusSent,
		entities.InvoiceStatusViewed,
		entities.InvoiceStatusApproved,
		entities.InvoiceStatusOverdue,
	})
	if err != nil {
		return SweepResult{}, err
	}

	res := SweepResult{Scanned: len(open)}
	for _, inv := range open {
		res.OpenInvoices = append(res.OpenInvoices, inv.ID)
		if !workflow.CanMarkOverdue(inv.WorkflowStatus, inv.DueDate, now) {
			continue
		}
		if _, err := u.repo.UpdateStatus(ctx, inv.ID, inv.WorkflowStatus, entities.InvoiceStatusOverdue, now); err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				u.logger.Info("[invoice][sweep] invoice changed, skipped", zap.String("invoice_id", inv.ID))
				continue
			}
			return res, err
		}
		u.metrics.Transition(string(workflow.EntityInvoice), string(entities.InvoiceStatusOverdue), true)
		res.MarkedOverdue++
	}

	u.logger.Info("[invoice][sweep] overdue sweep done", zap.Int("scanned", res.Scanned), zap.Int("marked_overdue", res.MarkedOverdue))
	return res, nil
}

func (u *InvoiceUseCase) links(invoiceID string) interfaces.InvoiceLinks {
	if u.baseURL == "" {
		return interfaces.InvoiceLinks{}
	}
	return interfaces.InvoiceLinks{
		ViewURL:          u.baseURL + "/v1/invoices/" + invoiceID,
		PDFURL:           u.baseURL + "/v1/invoices/" + invoiceID + "/pdf",
		TrackingPixelURL: u.baseURL + "/v1/track/open/" + invoiceID,
	}
}

func editable(inv entities.Invoice) bool {
	switch inv.WorkflowStatus {
	case entities.InvoiceStatusPaid, entities.InvoiceStatusCancelled:
		return false
	default:
		return true
	}
}

func recalculatedTotal(calc pricing.Calculator, inv entities.Invoice) int64 {
	items := make([]entities.LineItem, len(inv.LineItems))
	copy(items, inv.LineItems)
	inv.LineItems = items
	return calc.Recalculate(&inv).TotalAmount
}

func validateInvoice(inv entities.Invoice) error {
	if strings.TrimSpace(inv.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInvoice)
	}
	switch inv.DocumentType {
	case entities.DocumentTypeEstimate, entities.DocumentTypeInvoice:
	default:
		return fmt.Errorf("%w: unknown document type %q", ErrInvalidInvoice, inv.DocumentType)
	}
	if inv.GuestCount < 0 {
		return fmt.Errorf("%w: guest count cannot be negative", ErrInvalidInvoice)
	}
	return nil
}

func normalizeLineItems(items []entities.LineItem) ([]entities.LineItem, error) {
	out := make([]entities.LineItem, 0, len(items))
	for i, it := range items {
		it.Description = strings.TrimSpace(it.Description)
		if it.Description == "" {
			return nil, fmt.Errorf("%w: line item %d has no description", ErrInvalidInvoice, i+1)
		}
		if it.Unit == "" {
			it.Unit = entities.LineUnitEach
		}
		switch it.Unit {
		case entities.LineUnitEach, entities.LineUnitPerGuest, entities.LineUnitFlat:
		default:
			return nil, fmt.Errorf("%w: line item %d has unknown unit %q", ErrInvalidInvoice, i+1, it.Unit)
		}
		if it.Unit == entities.LineUnitFlat && it.Quantity == 0 {
			it.Quantity = 1
		}
		if it.Quantity < 0 {
			return nil, fmt.Errorf("%w: line item %d has a negative quantity", ErrInvalidInvoice, i+1)
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		it.TotalPrice = pricing.LineTotal(it.Quantity, it.UnitPrice)
		out = append(out, it)
	}
	return out, nil
}

// defaultDueDate is one week before the event, or two weeks after issue when
// the event is unknown or too close.
func defaultDueDate(now, event time.Time) time.Time {
	fallback := truncateDay(now).AddDate(0, 0, 14)
	if event.IsZero() {
		return fallback
	}
	due := truncateDay(event).AddDate(0, 0, -7)
	if due.Before(truncateDay(now)) {
		return truncateDay(now)
	}
	return due
}

func invoiceNumber(docType entities.DocumentType, now time.Time, id string) string {
	prefix := "INV"
	if docType == entities.DocumentTypeEstimate {
		prefix = "EST"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
