package notifications

import (
	"context"
	"errors"
	"fmt"

	"catering_backoffice/internal/config"
	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

var ErrMissingRecipient = errors.New("invoice has no customer email")

// ResendMailer delivers invoice emails through Resend. With sending disabled,
// or without an API key, it renders the message and only logs it.
type ResendMailer struct {
	client   *resend.Client
	from     string
	business string
	dryRun   bool
	logger   *zap.Logger
}

var _ interfaces.IInvoiceMailer = (*ResendMailer)(nil)

func NewResendMailer(cfg config.EmailConfig, logger *zap.Logger) *ResendMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &ResendMailer{
		from:     cfg.From,
		business: cfg.BusinessName,
		dryRun:   cfg.DisableSending || cfg.ResendAPIKey == "",
		logger:   logger.Named("resend"),
	}
	if !m.dryRun {
		m.client = resend.NewClient(cfg.ResendAPIKey)
	}
	return m
}

func (m *ResendMailer) SendInvoice(ctx context.Context, inv entities.Invoice, links interfaces.InvoiceLinks) (string, error) {
	if inv.CustomerEmail == "" {
		return "", ErrMissingRecipient
	}

	html, err := renderInvoiceEmail(m.business, inv, links)
	if err != nil {
		return "", fmt.Errorf("render invoice email: %w", err)
	}
	subject := invoiceSubject(m.business, inv)

	if m.dryRun {
		m.logger.Info("[invoice][mailer] sending disabled, email not delivered",
			zap.String("invoice_id", inv.ID),
			zap.String("to", inv.CustomerEmail),
			zap.String("subject", subject),
		)
		return "dry-run", nil
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{inv.CustomerEmail},
		Subject: subject,
		Html:    html,
		Tags:    []resend.Tag{{Name: "invoice_id", Value: inv.ID}},
	})
	if err != nil {
		m.logger.Warn("[invoice][mailer] resend send failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		return "", err
	}

	m.logger.Info("[invoice][mailer] email sent", zap.String("invoice_id", inv.ID), zap.String("message_id", sent.Id))
	return sent.Id, nil
}
