package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/milestone"
	"catering_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrMilestoneNotFound  = errors.New("payment milestone not found")
	ErrInvalidMilestoneID = errors.New("invalid milestone id")
	ErrMilestoneConflict  = errors.New("payment milestones changed concurrently")
)

const (
	regenerationAttempts = 2
	regenerationTimeout  = 10 * time.Second
)

// IMilestoneUseCase manages an invoice's payment schedule.
type IMilestoneUseCase interface {
	interfaces.IMilestoneRegenerator
	GetByID(ctx context.Context, id string) (entities.PaymentMilestone, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error)
	RefreshStatuses(ctx context.Context, invoiceID string, now time.Time) (int, error)
}

type MilestoneUseCase struct {
	invoices   interfaces.IInvoiceRepository
	milestones interfaces.IPaymentMilestoneRepository
	scheduler  interfaces.IRegenerationScheduler
	generator  milestone.Generator
	metrics    interfaces.IMetricsRecorder
	logger     *zap.Logger
}

var _ IMilestoneUseCase = (*MilestoneUseCase)(nil)

// NewMilestoneUseCase wires the use case. A nil scheduler makes
// ScheduleRegeneration run synchronously.
func NewMilestoneUseCase(invoices interfaces.IInvoiceRepository, milestones interfaces.IPaymentMilestoneRepository, scheduler interfaces.IRegenerationScheduler, metrics interfaces.IMetricsRecorder, logger *zap.Logger) *MilestoneUseCase {
	return &MilestoneUseCase{
		invoices:   invoices,
		milestones: milestones,
		scheduler:  scheduler,
		metrics:    orNoopMetrics(metrics),
		logger:     orNop(logger),
	}
}

func (u *MilestoneUseCase) GetByID(ctx context.Context, id string) (entities.PaymentMilestone, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentMilestone{}, ErrInvalidMilestoneID
	}
	m, err := u.milestones.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentMilestone{}, err
	}
	if m.ID == "" {
		return entities.PaymentMilestone{}, ErrMilestoneNotFound
	}
	return m, nil
}

func (u *MilestoneUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	ms, err := u.milestones.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	sortBySequence(ms)
	return ms, nil
}

// ScheduleRegeneration coalesces bursts of edits on one invoice into a single
// regeneration. Failures are logged and leave the stored schedule in place.
func (u *MilestoneUseCase) ScheduleRegeneration(invoiceID string) {
	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), regenerationTimeout)
		defer cancel()
		if _, err := u.RegenerateMilestones(ctx, invoiceID); err != nil {
			u.logger.Error("[milestone][usecase] scheduled regeneration failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		}
	}

	if u.scheduler == nil {
		run()
		return
	}
	u.scheduler.Schedule(invoiceID, run)
}

// RegenerateMilestones rebuilds the schedule from the invoice's current total
// and government flag. Paid milestones are kept; if one is paid while the new
// set is being written the replace is retried against fresh data.
func (u *MilestoneUseCase) RegenerateMilestones(ctx context.Context, invoiceID string) ([]entities.PaymentMilestone, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.ID == "" {
		return nil, ErrInvoiceNotFound
	}

	var lastErr error
	for attempt := 1; attempt <= regenerationAttempts; attempt++ {
		existing, err := u.ListByInvoiceID(ctx, inv.ID)
		if err != nil {
			u.metrics.Regeneration(false)
			return nil, err
		}

		if inv.WorkflowStatus == entities.InvoiceStatusCancelled || inv.WorkflowStatus == entities.InvoiceStatusPaid {
			return existing, nil
		}

		next, err := u.generator.RegenerateFor(inv.ID, existing, inv.TotalAmount, inv.IsGovernmentContract, anchorsFor(inv))
		if err != nil {
			u.metrics.Regeneration(false)
			u.logger.Warn("[milestone][usecase] regeneration refused", zap.String("invoice_id", inv.ID), zap.Int64("total", inv.TotalAmount), zap.Error(err))
			return nil, err
		}

		if !milestone.Changed(existing, next) {
			return existing, nil
		}

		err = u.milestones.ReplaceForInvoice(ctx, inv.ID, existing, next)
		if err == nil {
			u.metrics.Regeneration(true)
			u.logger.Info("[milestone][usecase] milestones regenerated",
				zap.String("invoice_id", inv.ID),
				zap.Int64("total", inv.TotalAmount),
				zap.Bool("government", inv.IsGovernmentContract),
				zap.Int("count", len(next)),
			)
			return next, nil
		}
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			u.metrics.Regeneration(false)
			return nil, err
		}
		u.logger.Warn("[milestone][usecase] milestones changed during regeneration", zap.String("invoice_id", inv.ID), zap.Int("attempt", attempt))
		lastErr = err
	}

	u.metrics.Regeneration(false)
	return nil, errors.Join(ErrMilestoneConflict, lastErr)
}

// RefreshStatuses marks pending milestones of the invoice as due once their due
// date has passed. It returns how many changed.
func (u *MilestoneUseCase) RefreshStatuses(ctx context.Context, invoiceID string, now time.Time) (int, error) {
	ms, err := u.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return 0, err
	}

	changed := milestone.RefreshStatuses(ms, now)
	updated := 0
	for _, m := range changed {
		if _, err := u.milestones.UpdateStatus(ctx, m, entities.MilestoneStatusPending); err != nil {
			if errors.Is(err, interfaces.ErrConditionFailed) {
				continue
			}
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func anchorsFor(inv entities.Invoice) milestone.Anchors {
	return milestone.Anchors{
		IssueDate: truncateDay(inv.CreatedAt),
		EventDate: truncateDay(inv.EventDate),
	}
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortBySequence(ms []entities.PaymentMilestone) {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Sequence < ms[j].Sequence })
}
