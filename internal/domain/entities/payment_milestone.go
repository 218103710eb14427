package entities

import "time"

type MilestoneStatus string

const (
	MilestoneStatusPending MilestoneStatus = "pending"
	MilestoneStatusDue     MilestoneStatus = "due"
	MilestoneStatusPaid    MilestoneStatus = "paid"
)

// MilestoneKind names the role of a milestone inside a payment plan.
type MilestoneKind string

const (
	MilestoneKindDeposit MilestoneKind = "deposit"
	MilestoneKindBalance MilestoneKind = "balance"
	MilestoneKindFull    MilestoneKind = "full"
	// MilestoneKindSupplement collects an increase after every planned milestone was paid.
	MilestoneKindSupplement MilestoneKind = "supplement"
)

// DueAnchor is the date a milestone's due offset is counted from.
type DueAnchor string

const (
	DueAnchorIssue DueAnchor = "issue_date"
	DueAnchorEvent DueAnchor = "event_date"
)

// PaymentMilestone is a scheduled partial payment against an invoice total.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (invoice_id-index): invoice_id
//
// Percentage is expressed in basis points of the invoice total (5000 = 50%).
type PaymentMilestone struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	Sequence    int             `json:"sequence"`
	Kind        MilestoneKind   `json:"kind"`
	Description string          `json:"description"`
	Percentage  int64           `json:"percentage"`
	Amount      int64           `json:"amount"`
	DueAnchor   DueAnchor       `json:"due_anchor"`
	OffsetDays  int             `json:"offset_days"`
	DueDate     time.Time       `json:"due_date"`
	Status      MilestoneStatus `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
