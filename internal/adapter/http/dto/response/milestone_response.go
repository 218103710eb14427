package response

import (
	"time"

	"catering_backoffice/internal/domain/entities"
)

type MilestoneResponse struct {
	ID          string     `json:"id"`
	InvoiceID   string     `json:"invoice_id"`
	Sequence    int        `json:"sequence"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Percentage  int64      `json:"percentage_bps"`
	Amount      int64      `json:"amount"`
	DueDate     time.Time  `json:"due_date"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func FromMilestone(m entities.PaymentMilestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		Sequence:    m.Sequence,
		Kind:        string(m.Kind),
		Description: m.Description,
		Percentage:  m.Percentage,
		Amount:      m.Amount,
		DueDate:     m.DueDate,
		Status:      string(m.Status),
		PaidAt:      m.PaidAt,
	}
}

func FromMilestones(ms []entities.PaymentMilestone) []MilestoneResponse {
	out := make([]MilestoneResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMilestone(m))
	}
	return out
}
