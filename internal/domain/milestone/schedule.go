// Package milestone derives payment schedules from an invoice total and keeps
// paid milestones intact when the schedule is rebuilt.
package milestone

import (
	"errors"
	"sort"
	"time"

	"catering_backoffice/internal/domain/entities"

	"github.com/google/uuid"
)

var ErrTotalBelowPaid = errors.New("invoice total is below the amount already paid")

const bpsDenominator int64 = 10000

// Anchors are the dates due offsets are counted from.
type Anchors struct {
	IssueDate time.Time
	EventDate time.Time
}

// PlanEntry is one row of a payment plan.
type PlanEntry struct {
	Kind        entities.MilestoneKind
	Description string
	Percentage  int64
	Anchor      entities.DueAnchor
	OffsetDays  int
}

var standardPlan = []PlanEntry{
	{Kind: entities.MilestoneKindDeposit, Description: "Deposit", Percentage: 5000, Anchor: entities.DueAnchorIssue, OffsetDays: 0},
	{Kind: entities.MilestoneKindBalance, Description: "Balance", Percentage: 5000, Anchor: entities.DueAnchorEvent, OffsetDays: -7},
}

var governmentPlan = []PlanEntry{
	{Kind: entities.MilestoneKindFull, Description: "Payment in full", Percentage: 10000, Anchor: entities.DueAnchorEvent, OffsetDays: 30},
}

var supplementEntry = PlanEntry{
	Kind:        entities.MilestoneKindSupplement,
	Description: "Additional balance",
	Percentage:  0,
	Anchor:      entities.DueAnchorIssue,
	OffsetDays:  0,
}

// Plan returns the payment plan for the contract type: a 50/50 deposit and
// balance, or a single net-30 milestone for government contracts.
func Plan(isGovernment bool) []PlanEntry {
	src := standardPlan
	if isGovernment {
		src = governmentPlan
	}
	out := make([]PlanEntry, len(src))
	copy(out, src)
	return out
}

// Generator builds milestone sets. Zero values use uuid and the wall clock.
type Generator struct {
	NewID func() string
	Now   func() time.Time
}

func (g Generator) id() string {
	if g.NewID != nil {
		return g.NewID()
	}
	return uuid.NewString()
}

func (g Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now().UTC()
}

// Generate builds a fresh schedule whose amounts sum to total.
func Generate(invoiceID string, total int64, isGovernment bool, anchors Anchors) []entities.PaymentMilestone {
	return Generator{}.Generate(invoiceID, total, isGovernment, anchors)
}

// Regenerate rebuilds the schedule around the paid milestones of existing.
func Regenerate(existing []entities.PaymentMilestone, total int64, isGovernment bool, anchors Anchors) ([]entities.PaymentMilestone, error) {
	return Generator{}.Regenerate(existing, total, isGovernment, anchors)
}

func (g Generator) Generate(invoiceID string, total int64, isGovernment bool, anchors Anchors) []entities.PaymentMilestone {
	out, _ := g.RegenerateFor(invoiceID, nil, total, isGovernment, anchors)
	return out
}

// Regenerate keeps paid milestones by identity, amount and status, and spreads
// total minus the paid sum over the plan entries whose kind is not paid yet.
// Unpaid milestones keep their ID when their kind is still in the plan.
func (g Generator) Regenerate(existing []entities.PaymentMilestone, total int64, isGovernment bool, anchors Anchors) ([]entities.PaymentMilestone, error) {
	invoiceID := ""
	if len(existing) > 0 {
		invoiceID = existing[0].InvoiceID
	}
	return g.RegenerateFor(invoiceID, existing, total, isGovernment, anchors)
}

// RegenerateFor is Regenerate for an invoice that may have no milestones yet.
func (g Generator) RegenerateFor(invoiceID string, existing []entities.PaymentMilestone, total int64, isGovernment bool, anchors Anchors) ([]entities.PaymentMilestone, error) {
	now := g.now()

	paid := make([]entities.PaymentMilestone, 0, len(existing))
	unpaidByKind := make(map[entities.MilestoneKind]entities.PaymentMilestone)
	paidKinds := make(map[entities.MilestoneKind]bool)
	var paidSum int64

	for _, m := range existing {
		if m.Status == entities.MilestoneStatusPaid {
			paid = append(paid, m)
			paidKinds[m.Kind] = true
			paidSum += m.Amount
			continue
		}
		if _, dup := unpaidByKind[m.Kind]; !dup {
			unpaidByKind[m.Kind] = m
		}
	}

	if total < paidSum {
		return nil, ErrTotalBelowPaid
	}

	sort.SliceStable(paid, func(i, j int) bool { return paid[i].Sequence < paid[j].Sequence })

	remaining := make([]PlanEntry, 0, 2)
	for _, e := range Plan(isGovernment) {
		if !paidKinds[e.Kind] {
			remaining = append(remaining, e)
		}
	}

	remainder := total - paidSum
	if remainder > 0 && len(remaining) == 0 {
		remaining = append(remaining, supplementEntry)
	}

	out := make([]entities.PaymentMilestone, 0, len(paid)+len(remaining))
	out = append(out, paid...)

	if remainder == 0 {
		return renumber(out), nil
	}

	amounts := split(remainder, remaining)
	for i, e := range remaining {
		m := entities.PaymentMilestone{
			ID:          g.id(),
			InvoiceID:   invoiceID,
			Kind:        e.Kind,
			Description: e.Description,
			Percentage:  e.Percentage,
			Amount:      amounts[i],
			DueAnchor:   e.Anchor,
			OffsetDays:  e.OffsetDays,
			DueDate:     DueDate(e.Anchor, e.OffsetDays, anchors),
			Status:      entities.MilestoneStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if prev, ok := unpaidByKind[e.Kind]; ok {
			m.ID = prev.ID
			m.CreatedAt = prev.CreatedAt
		}
		if m.Percentage == 0 && total > 0 {
			m.Percentage = m.Amount * bpsDenominator / total
		}
		out = append(out, m)
	}

	out = renumber(out)
	RefreshStatuses(out, now)
	return out, nil
}

// split distributes amount over entries by percentage; the last entry absorbs
// rounding so the parts always sum to amount.
func split(amount int64, entries []PlanEntry) []int64 {
	parts := make([]int64, len(entries))
	if len(entries) == 0 {
		return parts
	}

	var weight int64
	for _, e := range entries {
		weight += e.Percentage
	}

	var assigned int64
	for i, e := range entries {
		if i == len(entries)-1 {
			parts[i] = amount - assigned
			break
		}
		if weight > 0 {
			parts[i] = amount * e.Percentage / weight
		}
		assigned += parts[i]
	}
	return parts
}

func renumber(ms []entities.PaymentMilestone) []entities.PaymentMilestone {
	for i := range ms {
		ms[i].Sequence = i + 1
	}
	return ms
}

// DueDate resolves an anchor plus offset. A missing event date falls back to
// the issue date, and a due date never precedes the issue date.
func DueDate(anchor entities.DueAnchor, offsetDays int, anchors Anchors) time.Time {
	base := anchors.IssueDate
	if anchor == entities.DueAnchorEvent && !anchors.EventDate.IsZero() {
		base = anchors.EventDate
	}
	due := base.AddDate(0, 0, offsetDays)
	if !anchors.IssueDate.IsZero() && due.Before(anchors.IssueDate) {
		return anchors.IssueDate
	}
	return due
}

// RefreshStatuses moves pending milestones whose due date has passed to due.
// It returns the milestones that changed.
func RefreshStatuses(ms []entities.PaymentMilestone, now time.Time) []entities.PaymentMilestone {
	var changed []entities.PaymentMilestone
	for i := range ms {
		if ms[i].Status != entities.MilestoneStatusPending || ms[i].DueDate.IsZero() {
			continue
		}
		if now.After(ms[i].DueDate) {
			ms[i].Status = entities.MilestoneStatusDue
			ms[i].UpdatedAt = now
			changed = append(changed, ms[i])
		}
	}
	return changed
}

func PaidTotal(ms []entities.PaymentMilestone) int64 {
	var sum int64
	for _, m := range ms {
		if m.Status == entities.MilestoneStatusPaid {
			sum += m.Amount
		}
	}
	return sum
}

// AllPaid reports whether a non-empty schedule is fully paid.
func AllPaid(ms []entities.PaymentMilestone) bool {
	if len(ms) == 0 {
		return false
	}
	for _, m := range ms {
		if m.Status != entities.MilestoneStatusPaid {
			return false
		}
	}
	return true
}

// Changed reports whether two schedules differ in identity, amount, due date or status.
func Changed(a, b []entities.PaymentMilestone) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Amount != b[i].Amount || a[i].Status != b[i].Status || !a[i].DueDate.Equal(b[i].DueDate) {
			return true
		}
	}
	return false
}
