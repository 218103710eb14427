package notifications

import (
	"bytes"
	"html/template"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/pricing"
	"catering_backoffice/internal/usecase/interfaces"
)

var invoiceEmailTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": pricing.FormatCents,
	"date": func(inv entities.Invoice) string {
		if inv.EventDate.IsZero() {
			return ""
		}
		return inv.EventDate.Format("January 2, 2006")
	},
}).Parse(`<!doctype html>
<html>
<body style="font-family:Arial,sans-serif;color:#222">
<p>Hello {{.Invoice.CustomerName}},</p>
<p>{{.Business}} has sent you {{if eq .Invoice.DocumentType "estimate"}}an estimate{{else}}an invoice{{end}}{{with .Invoice.InvoiceNumber}} ({{.}}){{end}}{{with date .Invoice}} for your event on {{.}}{{end}}.</p>
<table cellpadding="4">
<tr><td>Subtotal</td><td align="right">{{money .Invoice.Subtotal}}</td></tr>
<tr><td>Tax</td><td align="right">{{money .Invoice.TaxAmount}}</td></tr>
<tr><td><strong>Total</strong></td><td align="right"><strong>{{money .Invoice.TotalAmount}}</strong></td></tr>
</table>
{{if .Links.ViewURL}}<p><a href="{{.Links.ViewURL}}">View online</a></p>{{end}}
{{if .Links.PDFURL}}<p><a href="{{.Links.PDFURL}}">Download PDF</a></p>{{end}}
<p>Thank you,<br>{{.Business}}</p>
{{if .Links.TrackingPixelURL}}<img src="{{.Links.TrackingPixelURL}}" width="1" height="1" alt="" style="display:none">{{end}}
</body>
</html>`))

type invoiceEmailData struct {
	Business string
	Invoice  entities.Invoice
	Links    interfaces.InvoiceLinks
}

func renderInvoiceEmail(business string, inv entities.Invoice, links interfaces.InvoiceLinks) (string, error) {
	var buf bytes.Buffer
	if err := invoiceEmailTemplate.Execute(&buf, invoiceEmailData{Business: business, Invoice: inv, Links: links}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func invoiceSubject(business string, inv entities.Invoice) string {
	kind := "Invoice"
	if inv.DocumentType == entities.DocumentTypeEstimate {
		kind = "Estimate"
	}
	if inv.InvoiceNumber != "" {
		kind += " " + inv.InvoiceNumber
	}
	return kind + " from " + business
}
