package response

import (
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/pricing"
	"catering_backoffice/internal/domain/workflow"
)

type LineItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Unit        string `json:"unit"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	TotalPrice  int64  `json:"total_price"`
	TaxExempt   bool   `json:"tax_exempt,omitempty"`
}

// InvoiceResponse carries amounts in cents plus a display string for the total.
type InvoiceResponse struct {
	ID                   string             `json:"id"`
	QuoteRequestID       string             `json:"quote_request_id,omitempty"`
	InvoiceNumber        string             `json:"invoice_number"`
	DocumentType         string             `json:"document_type"`
	WorkflowStatus       string             `json:"workflow_status"`
	AllowedTransitions   []string           `json:"allowed_transitions"`
	CustomerName         string             `json:"customer_name"`
	CustomerEmail        string             `json:"customer_email"`
	CustomerPhone        string             `json:"customer_phone,omitempty"`
	EventDate            *time.Time         `json:"event_date,omitempty"`
	GuestCount           int                `json:"guest_count"`
	IsGovernmentContract bool               `json:"is_government_contract"`
	LineItems            []LineItemResponse `json:"line_items"`
	Subtotal             int64              `json:"subtotal"`
	HospitalityTax       int64              `json:"hospitality_tax"`
	ServiceTax           int64              `json:"service_tax"`
	TaxAmount            int64              `json:"tax_amount"`
	TotalAmount          int64              `json:"total_amount"`
	TotalDisplay         string             `json:"total_display"`
	DueDate              *time.Time         `json:"due_date,omitempty"`
	SentAt               *time.Time         `json:"sent_at,omitempty"`
	ViewedAt             *time.Time         `json:"viewed_at,omitempty"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.LineItems))
	for _, it := range inv.LineItems {
		items = append(items, LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Category:    it.Category,
			Unit:        string(it.Unit),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			TaxExempt:   it.TaxExempt,
		})
	}
	return InvoiceResponse{
		ID:                   inv.ID,
		QuoteRequestID:       inv.QuoteRequestID,
		InvoiceNumber:        inv.InvoiceNumber,
		DocumentType:         string(inv.DocumentType),
		WorkflowStatus:       string(inv.WorkflowStatus),
		AllowedTransitions:   workflow.AllowedTransitions(workflow.EntityInvoice, string(inv.WorkflowStatus)),
		CustomerName:         inv.CustomerName,
		CustomerEmail:        inv.CustomerEmail,
		CustomerPhone:        inv.CustomerPhone,
		EventDate:            optionalTime(inv.EventDate),
		GuestCount:           inv.GuestCount,
		IsGovernmentContract: inv.IsGovernmentContract,
		LineItems:            items,
		Subtotal:             inv.Subtotal,
		HospitalityTax:       inv.HospitalityTax,
		ServiceTax:           inv.ServiceTax,
		TaxAmount:            inv.TaxAmount,
		TotalAmount:          inv.TotalAmount,
		TotalDisplay:         pricing.FormatCents(inv.TotalAmount),
		DueDate:              optionalTime(inv.DueDate),
		SentAt:               inv.SentAt,
		ViewedAt:             inv.ViewedAt,
		CreatedAt:            inv.CreatedAt,
		UpdatedAt:            inv.UpdatedAt,
	}
}

type SweepResponse struct {
	Scanned       int      `json:"scanned"`
	MarkedOverdue int      `json:"marked_overdue"`
	OpenInvoices  []string `json:"open_invoices"`
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
