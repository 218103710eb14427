package entities

import "time"

type ChangeRequestStatus string

const (
	ChangeRequestStatusPending  ChangeRequestStatus = "pending"
	ChangeRequestStatusApproved ChangeRequestStatus = "approved"
	ChangeRequestStatusRejected ChangeRequestStatus = "rejected"
)

type ChangeRequestPriority string

const (
	ChangeRequestPriorityLow    ChangeRequestPriority = "low"
	ChangeRequestPriorityNormal ChangeRequestPriority = "normal"
	ChangeRequestPriorityHigh   ChangeRequestPriority = "high"
	ChangeRequestPriorityUrgent ChangeRequestPriority = "urgent"
)

// RequestedChanges is the customer's proposed diff. Nil/empty fields are left
// untouched when the request is approved.
type RequestedChanges struct {
	GuestCount *int       `json:"guest_count,omitempty"`
	MenuItems  []string   `json:"menu_items,omitempty"`
	EventDate  *time.Time `json:"event_date,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// ChangeRequest is a customer-submitted modification proposal against an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (invoice_id-index): invoice_id
type ChangeRequest struct {
	ID               string                `json:"id"`
	InvoiceID        string                `json:"invoice_id"`
	QuoteRequestID   string                `json:"quote_request_id,omitempty"`
	RequestedChanges RequestedChanges      `json:"requested_changes"`
	CustomerComments string                `json:"customer_comments,omitempty"`
	Priority         ChangeRequestPriority `json:"priority"`
	WorkflowStatus   ChangeRequestStatus   `json:"workflow_status"`
	AdminResponse    string                `json:"admin_response,omitempty"`
	FinalCostChange  int64                 `json:"final_cost_change"`
	ResolvedAt       *time.Time            `json:"resolved_at,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}
