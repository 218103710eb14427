package entities

import "time"

// QuoteStatus is the workflow status of a customer inquiry.
//
// Quote requests are never hard-deleted; cancellation is a status.
type QuoteStatus string

const (
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusUnderReview QuoteStatus = "under_review"
	QuoteStatusEstimated   QuoteStatus = "estimated"
	QuoteStatusApproved    QuoteStatus = "approved"
	QuoteStatusConfirmed   QuoteStatus = "confirmed"
	QuoteStatusCompleted   QuoteStatus = "completed"
	QuoteStatusCancelled   QuoteStatus = "cancelled"
)

// QuoteRequest is the customer-submitted event inquiry.
//
// Storage model (DynamoDB):
//   - PK: id
type QuoteRequest struct {
	ID             string      `json:"id"`
	ContactName    string      `json:"contact_name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	EventType      string      `json:"event_type"`
	EventDate      time.Time   `json:"event_date"`
	EventTime      string      `json:"event_time"`
	Location       string      `json:"location"`
	GuestCount     int         `json:"guest_count"`
	MenuSelections []string    `json:"menu_selections"`
	Notes          string      `json:"notes,omitempty"`
	WorkflowStatus QuoteStatus `json:"workflow_status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
