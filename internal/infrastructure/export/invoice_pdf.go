package export

import (
	"bytes"
	"fmt"
	"strings"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/pricing"

	"github.com/jung-kurt/gofpdf"
)

// InvoicePDFRenderer renders an invoice or estimate with its line items, tax
// breakdown and payment schedule.
type InvoicePDFRenderer struct {
	businessName string
}

func NewInvoicePDFRenderer(businessName string) *InvoicePDFRenderer {
	return &InvoicePDFRenderer{businessName: businessName}
}

func (r *InvoicePDFRenderer) Render(inv entities.Invoice, milestones []entities.PaymentMilestone) ([]byte, error) {
	if inv.ID == "" {
		return nil, fmt.Errorf("pdf requires an invoice")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetTitle(documentTitle(inv), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, r.businessName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, documentTitle(inv), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Customer: "+inv.CustomerName, "", 1, "L", false, 0, "")
	if inv.CustomerEmail != "" {
		pdf.CellFormat(0, 6, "Email: "+inv.CustomerEmail, "", 1, "L", false, 0, "")
	}
	if !inv.EventDate.IsZero() {
		pdf.CellFormat(0, 6, "Event date: "+inv.EventDate.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	}
	if inv.GuestCount > 0 {
		pdf.CellFormat(0, 6, fmt.Sprintf("Guests: %d", inv.GuestCount), "", 1, "L", false, 0, "")
	}
	if !inv.DueDate.IsZero() {
		pdf.CellFormat(0, 6, "Due: "+inv.DueDate.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{90, 25, 35, 40}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Description", "Qty", "Unit price", "Total"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, li := range inv.LineItems {
		pdf.CellFormat(widths[0], 7, li.Description, "1", 0, "", false, 0, "")
		pdf.CellFormat(widths[1], 7, fmt.Sprintf("%d", li.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, pricing.FormatCents(li.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, pricing.FormatCents(li.TotalPrice), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(3)

	totals := [][2]string{{"Subtotal", pricing.FormatCents(inv.Subtotal)}}
	if inv.IsGovernmentContract {
		totals = append(totals, [2]string{"Tax (government exempt)", pricing.FormatCents(0)})
	} else {
		totals = append(totals,
			[2]string{"Hospitality tax", pricing.FormatCents(inv.HospitalityTax)},
			[2]string{"Service tax", pricing.FormatCents(inv.ServiceTax)},
		)
	}
	totals = append(totals, [2]string{"Total", pricing.FormatCents(inv.TotalAmount)})

	for i, row := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Arial", "B", 10)
		}
		pdf.CellFormat(150, 7, row[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, row[1], "", 1, "R", false, 0, "")
	}

	if len(milestones) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Payment schedule", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, m := range milestones {
			line := fmt.Sprintf("%d. %s  %s  due %s  (%s)",
				m.Sequence, m.Description, pricing.FormatCents(m.Amount), m.DueDate.Format("2006-01-02"), m.Status)
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func documentTitle(inv entities.Invoice) string {
	kind := "Invoice"
	if inv.DocumentType == entities.DocumentTypeEstimate {
		kind = "Estimate"
	}
	if inv.InvoiceNumber == "" {
		return kind
	}
	return strings.TrimSpace(kind + " " + inv.InvoiceNumber)
}
