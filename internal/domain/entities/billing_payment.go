package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the provider outcome for a milestone payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment is a payment collected against one payment milestone.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI (milestone_id-index): milestone_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider response body for traceability.
//   - MPPayload is the parsed form of the same body.
type BillingPayment struct {
	ID          string        `json:"id"`
	InvoiceID   string        `json:"invoice_id"`
	MilestoneID string        `json:"milestone_id"`
	Amount      int64         `json:"amount"`
	Date        time.Time     `json:"date"`
	Status      PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
