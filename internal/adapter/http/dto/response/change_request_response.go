package response

import (
	"time"

	"catering_backoffice/internal/domain/entities"
)

type ChangeRequestResponse struct {
	ID               string                    `json:"id"`
	InvoiceID        string                    `json:"invoice_id"`
	QuoteRequestID   string                    `json:"quote_request_id,omitempty"`
	RequestedChanges entities.RequestedChanges `json:"requested_changes"`
	CustomerComments string                    `json:"customer_comments,omitempty"`
	Priority         string                    `json:"priority"`
	WorkflowStatus   string                    `json:"workflow_status"`
	AdminResponse    string                    `json:"admin_response,omitempty"`
	FinalCostChange  int64                     `json:"final_cost_change"`
	ResolvedAt       *time.Time                `json:"resolved_at,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

func FromChangeRequest(cr entities.ChangeRequest) ChangeRequestResponse {
	return ChangeRequestResponse{
		ID:               cr.ID,
		InvoiceID:        cr.InvoiceID,
		QuoteRequestID:   cr.QuoteRequestID,
		RequestedChanges: cr.RequestedChanges,
		CustomerComments: cr.CustomerComments,
		Priority:         string(cr.Priority),
		WorkflowStatus:   string(cr.WorkflowStatus),
		AdminResponse:    cr.AdminResponse,
		FinalCostChange:  cr.FinalCostChange,
		ResolvedAt:       cr.ResolvedAt,
		CreatedAt:        cr.CreatedAt,
		UpdatedAt:        cr.UpdatedAt,
	}
}

func FromChangeRequests(crs []entities.ChangeRequest) []ChangeRequestResponse {
	out := make([]ChangeRequestResponse, 0, len(crs))
	for _, cr := range crs {
		out = append(out, FromChangeRequest(cr))
	}
	return out
}
