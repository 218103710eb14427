package export

import (
	"bytes"
	"testing"
	"time"

	"catering_backoffice/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestInvoicePDFRenderer_Render(t *testing.T) {
	r := NewInvoicePDFRenderer("Catering Co.")
	inv := entities.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-2026-0001",
		DocumentType:  entities.DocumentTypeInvoice,
		CustomerName:  "Ada",
		EventDate:     time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		GuestCount:    40,
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Buffet", Unit: entities.LineUnitPerGuest, Quantity: 40, UnitPrice: 2500, TotalPrice: 100000},
		},
		Subtotal:    100000,
		TaxAmount:   16000,
		TotalAmount: 116000,
	}
	ms := []entities.PaymentMilestone{
		{Sequence: 1, Description: "Deposit", Amount: 58000, Status: entities.MilestoneStatusPending},
	}

	out, err := r.Render(inv, ms)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestInvoicePDFRenderer_RequiresInvoice(t *testing.T) {
	_, err := NewInvoicePDFRenderer("x").Render(entities.Invoice{}, nil)
	require.Error(t, err)
}

func TestDocumentTitle(t *testing.T) {
	require.Equal(t, "Estimate EST-1", documentTitle(entities.Invoice{DocumentType: entities.DocumentTypeEstimate, InvoiceNumber: "EST-1"}))
	require.Equal(t, "Invoice", documentTitle(entities.Invoice{DocumentType: entities.DocumentTypeInvoice}))
}
