package interfaces

import (
	"context"

	"catering_backoffice/internal/domain/entities"
)

// InvoiceLinks are the public URLs embedded in an invoice notification.
type InvoiceLinks struct {
	ViewURL          string
	PDFURL           string
	TrackingPixelURL string
}

// IInvoiceMailer delivers an invoice by email (Resend).
type IInvoiceMailer interface {
	SendInvoice(ctx context.Context, inv entities.Invoice, links InvoiceLinks) (messageID string, err error)
}

// ISMSSender delivers a short invoice notice by SMS (Twilio).
type ISMSSender interface {
	SendInvoiceNotice(ctx context.Context, inv entities.Invoice, viewURL string) (messageID string, err error)
}
