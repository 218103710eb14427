package request

import (
	"strings"

	"catering_backoffice/internal/domain/entities"
)

// QuoteRequestCreateRequest is the public inquiry form.
type QuoteRequestCreateRequest struct {
	ContactName    string   `json:"contact_name" validate:"required,max=200"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"omitempty,max=40"`
	EventType      string   `json:"event_type" validate:"required,max=100"`
	EventDate      string   `json:"event_date" validate:"required,date" example:"2026-06-20"`
	EventTime      string   `json:"event_time" validate:"omitempty,max=20" example:"18:30"`
	Location       string   `json:"location" validate:"required,max=300"`
	GuestCount     int      `json:"guest_count" validate:"required,min=1"`
	MenuSelections []string `json:"menu_selections" validate:"dive,required"`
	Notes          string   `json:"notes" validate:"omitempty,max=2000"`
}

func (r QuoteRequestCreateRequest) Validate() error {
	return validateStruct(r)
}

func (r QuoteRequestCreateRequest) ToEntity() (entities.QuoteRequest, error) {
	eventDate, err := parseDate(r.EventDate)
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return entities.QuoteRequest{
		ContactName:    strings.TrimSpace(r.ContactName),
		Email:          strings.TrimSpace(r.Email),
		Phone:          strings.TrimSpace(r.Phone),
		EventType:      strings.TrimSpace(r.EventType),
		EventDate:      eventDate,
		EventTime:      strings.TrimSpace(r.EventTime),
		Location:       strings.TrimSpace(r.Location),
		GuestCount:     r.GuestCount,
		MenuSelections: r.MenuSelections,
		Notes:          r.Notes,
	}, nil
}

// StatusUpdateRequest moves a quote or invoice to another workflow status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r StatusUpdateRequest) Validate() error {
	return validateStruct(r)
}
