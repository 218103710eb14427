package request

import (
	"strings"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase"
)

// LineItemRequest is one billable line. Amounts are integer cents.
type LineItemRequest struct {
	Description string `json:"description" validate:"required,max=300"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Unit        string `json:"unit" validate:"omitempty,oneof=each per_guest flat"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
	UnitPrice   int64  `json:"unit_price" validate:"min=0"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	unit := entities.LineUnit(r.Unit)
	if unit == "" {
		unit = entities.LineUnitEach
	}
	return entities.LineItem{
		Description: strings.TrimSpace(r.Description),
		Category:    strings.TrimSpace(r.Category),
		Unit:        unit,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
	}
}

func lineItems(in []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, it.ToEntity())
	}
	return out
}

// InvoiceCreateRequest creates an estimate (default) or an invoice.
type InvoiceCreateRequest struct {
	QuoteRequestID       string            `json:"quote_request_id"`
	DocumentType         string            `json:"document_type" validate:"omitempty,oneof=estimate invoice"`
	CustomerName         string            `json:"customer_name" validate:"omitempty,max=200"`
	CustomerEmail        string            `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone        string            `json:"customer_phone" validate:"omitempty,max=40"`
	EventDate            string            `json:"event_date" validate:"omitempty,date" example:"2026-06-20"`
	GuestCount           int               `json:"guest_count" validate:"min=0"`
	IsGovernmentContract bool              `json:"is_government_contract"`
	DueDate              string            `json:"due_date" validate:"omitempty,date" example:"2026-05-20"`
	LineItems            []LineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

func (r InvoiceCreateRequest) Validate() error {
	return validateStruct(r)
}

func (r InvoiceCreateRequest) ToInput() (usecase.CreateInvoiceInput, error) {
	eventDate, err := parseDate(r.EventDate)
	if err != nil {
		return usecase.CreateInvoiceInput{}, err
	}
	dueDate, err := parseDate(r.DueDate)
	if err != nil {
		return usecase.CreateInvoiceInput{}, err
	}
	docType := entities.DocumentType(r.DocumentType)
	if docType == "" {
		docType = entities.DocumentTypeEstimate
	}
	return usecase.CreateInvoiceInput{
		QuoteRequestID:       strings.TrimSpace(r.QuoteRequestID),
		DocumentType:         docType,
		CustomerName:         strings.TrimSpace(r.CustomerName),
		CustomerEmail:        strings.TrimSpace(r.CustomerEmail),
		CustomerPhone:        strings.TrimSpace(r.CustomerPhone),
		EventDate:            eventDate,
		GuestCount:           r.GuestCount,
		IsGovernmentContract: r.IsGovernmentContract,
		LineItems:            lineItems(r.LineItems),
		DueDate:              dueDate,
	}, nil
}

type LineItemsReplaceRequest struct {
	LineItems []LineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

func (r LineItemsReplaceRequest) Validate() error {
	return validateStruct(r)
}

func (r LineItemsReplaceRequest) ToEntities() []entities.LineItem {
	return lineItems(r.LineItems)
}

type GovernmentContractRequest struct {
	IsGovernmentContract *bool `json:"is_government_contract" validate:"required"`
}

func (r GovernmentContractRequest) Validate() error {
	return validateStruct(r)
}

// TaxPreviewRequest prices a subtotal without touching any invoice.
type TaxPreviewRequest struct {
	Subtotal             int64 `json:"subtotal" validate:"min=0"`
	IsGovernmentContract bool  `json:"is_government_contract"`
}

func (r TaxPreviewRequest) Validate() error {
	return validateStruct(r)
}
