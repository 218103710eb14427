package entities

import "time"

// InvoiceStatus represents the lifecycle of an estimate or invoice.
//
// Transitions are validated by the workflow package; the persisted status only
// changes after a legal transition.
type InvoiceStatus string

const (
	InvoiceStatusDraft       InvoiceStatus = "draft"
	InvoiceStatusSent        InvoiceStatus = "sent"
	InvoiceStatusViewed      InvoiceStatus = "viewed"
	InvoiceStatusUnderReview InvoiceStatus = "under_review"
	InvoiceStatusApproved    InvoiceStatus = "approved"
	InvoiceStatusPaid        InvoiceStatus = "paid"
	InvoiceStatusOverdue     InvoiceStatus = "overdue"
	InvoiceStatusCancelled   InvoiceStatus = "cancelled"
)

type DocumentType string

const (
	DocumentTypeEstimate DocumentType = "estimate"
	DocumentTypeInvoice  DocumentType = "invoice"
)

// Invoice is the billing document (estimate or invoice) tied to a quote request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - line items are embedded in the item
//
// Monetary representation:
//   - all amounts are integer cents
//   - TotalAmount = Subtotal + TaxAmount, TaxAmount is always recomputed
type Invoice struct {
	ID                   string        `json:"id"`
	QuoteRequestID       string        `json:"quote_request_id,omitempty"`
	InvoiceNumber        string        `json:"invoice_number"`
	DocumentType         DocumentType  `json:"document_type"`
	WorkflowStatus       InvoiceStatus `json:"workflow_status"`
	CustomerName         string        `json:"customer_name"`
	CustomerEmail        string        `json:"customer_email"`
	CustomerPhone        string        `json:"customer_phone,omitempty"`
	EventDate            time.Time     `json:"event_date"`
	GuestCount           int           `json:"guest_count"`
	IsGovernmentContract bool          `json:"is_government_contract"`
	LineItems            []LineItem    `json:"line_items"`
	Subtotal             int64         `json:"subtotal"`
	HospitalityTax       int64         `json:"hospitality_tax"`
	ServiceTax           int64         `json:"service_tax"`
	TaxAmount            int64         `json:"tax_amount"`
	TotalAmount          int64         `json:"total_amount"`
	DueDate              time.Time     `json:"due_date"`
	SentAt               *time.Time    `json:"sent_at,omitempty"`
	ViewedAt             *time.Time    `json:"viewed_at,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// LineUnit describes how a line item's quantity is derived.
type LineUnit string

const (
	LineUnitEach     LineUnit = "each"
	LineUnitPerGuest LineUnit = "per_guest"
	LineUnitFlat     LineUnit = "flat"
)

// LineCategoryAdjustment marks lines posted by change-request approval.
const LineCategoryAdjustment = "adjustment"

// LineItem belongs to exactly one invoice; TotalPrice = Quantity * UnitPrice.
// TaxExempt lines count toward the subtotal but not toward the taxable base.
type LineItem struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Unit        LineUnit `json:"unit"`
	Quantity    int64    `json:"quantity"`
	UnitPrice   int64    `json:"unit_price"`
	TotalPrice  int64    `json:"total_price"`
	TaxExempt   bool     `json:"tax_exempt,omitempty"`
}
