package response

import (
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/workflow"
)

type QuoteRequestResponse struct {
	ID                 string    `json:"id"`
	ContactName        string    `json:"contact_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone,omitempty"`
	EventType          string    `json:"event_type"`
	EventDate          string    `json:"event_date"`
	EventTime          string    `json:"event_time,omitempty"`
	Location           string    `json:"location"`
	GuestCount         int       `json:"guest_count"`
	MenuSelections     []string  `json:"menu_selections"`
	Notes              string    `json:"notes,omitempty"`
	WorkflowStatus     string    `json:"workflow_status"`
	AllowedTransitions []string  `json:"allowed_transitions"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromQuoteRequest(q entities.QuoteRequest) QuoteRequestResponse {
	menu := q.MenuSelections
	if menu == nil {
		menu = []string{}
	}
	eventDate := ""
	if !q.EventDate.IsZero() {
		eventDate = q.EventDate.Format("2006-01-02")
	}
	return QuoteRequestResponse{
		ID:                 q.ID,
		ContactName:        q.ContactName,
		Email:              q.Email,
		Phone:              q.Phone,
		EventType:          q.EventType,
		EventDate:          eventDate,
		EventTime:          q.EventTime,
		Location:           q.Location,
		GuestCount:         q.GuestCount,
		MenuSelections:     menu,
		Notes:              q.Notes,
		WorkflowStatus:     string(q.WorkflowStatus),
		AllowedTransitions: workflow.AllowedTransitions(workflow.EntityQuote, string(q.WorkflowStatus)),
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

func FromQuoteRequests(qs []entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuoteRequest(q))
	}
	return out
}
