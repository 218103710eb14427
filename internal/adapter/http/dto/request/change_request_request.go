package request

import (
	"strings"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase"
)

type RequestedChangesRequest struct {
	GuestCount *int     `json:"guest_count" validate:"omitempty,min=1"`
	MenuItems  []string `json:"menu_items" validate:"dive,required"`
	EventDate  string   `json:"event_date" validate:"omitempty,date" example:"2026-06-27"`
	Notes      string   `json:"notes" validate:"omitempty,max=2000"`
}

type ChangeRequestCreateRequest struct {
	RequestedChanges RequestedChangesRequest `json:"requested_changes"`
	CustomerComments string                  `json:"customer_comments" validate:"omitempty,max=2000"`
	Priority         string                  `json:"priority" validate:"omitempty,oneof=low normal high urgent"`
}

func (r ChangeRequestCreateRequest) Validate() error {
	return validateStruct(r)
}

func (r ChangeRequestCreateRequest) ToInput(invoiceID string) (usecase.SubmitChangeRequestInput, error) {
	changes := entities.RequestedChanges{
		GuestCount: r.RequestedChanges.GuestCount,
		MenuItems:  r.RequestedChanges.MenuItems,
		Notes:      strings.TrimSpace(r.RequestedChanges.Notes),
	}
	eventDate, err := parseDate(r.RequestedChanges.EventDate)
	if err != nil {
		return usecase.SubmitChangeRequestInput{}, err
	}
	if !eventDate.IsZero() {
		changes.EventDate = &eventDate
	}
	return usecase.SubmitChangeRequestInput{
		InvoiceID:        invoiceID,
		Changes:          changes,
		CustomerComments: strings.TrimSpace(r.CustomerComments),
		Priority:         entities.ChangeRequestPriority(r.Priority),
	}, nil
}

// ChangeRequestApproveRequest resolves a pending request. FinalCostChange is in
// cents and may be negative.
type ChangeRequestApproveRequest struct {
	AdminResponse   string `json:"admin_response" validate:"omitempty,max=2000"`
	FinalCostChange int64  `json:"final_cost_change"`
}

func (r ChangeRequestApproveRequest) Validate() error {
	return validateStruct(r)
}

type ChangeRequestRejectRequest struct {
	AdminResponse string `json:"admin_response" validate:"omitempty,max=2000"`
}

func (r ChangeRequestRejectRequest) Validate() error {
	return validateStruct(r)
}
