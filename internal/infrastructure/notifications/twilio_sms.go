package notifications

import (
	"context"
	"errors"
	"fmt"

	"catering_backoffice/internal/config"
	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/pricing"
	"catering_backoffice/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

var ErrSMSNotConfigured = errors.New("twilio sms not configured")

// TwilioSMS sends a short invoice notice by text message.
type TwilioSMS struct {
	client   *twilio.RestClient
	from     string
	business string
	logger   *zap.Logger
}

var _ interfaces.ISMSSender = (*TwilioSMS)(nil)

// NewTwilioSMS returns nil when Twilio credentials are absent; callers treat a
// nil sender as SMS disabled.
func NewTwilioSMS(cfg config.SMSConfig, business string, logger *zap.Logger) *TwilioSMS {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.From == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TwilioSMS{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		from:     cfg.From,
		business: business,
		logger:   logger.Named("twilio"),
	}
}

func (s *TwilioSMS) SendInvoiceNotice(ctx context.Context, inv entities.Invoice, viewURL string) (string, error) {
	if s == nil || s.client == nil {
		return "", ErrSMSNotConfigured
	}
	if inv.CustomerPhone == "" {
		return "", nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(inv.CustomerPhone)
	params.SetFrom(s.from)
	params.SetBody(smsBody(s.business, inv, viewURL))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.logger.Warn("[invoice][sms] twilio send failed", zap.String("invoice_id", inv.ID), zap.Error(err))
		return "", err
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	s.logger.Info("[invoice][sms] message sent", zap.String("invoice_id", inv.ID), zap.String("sid", sid))
	return sid, nil
}

func smsBody(business string, inv entities.Invoice, viewURL string) string {
	body := fmt.Sprintf("%s: your %s for %s is ready.", business, inv.DocumentType, pricing.FormatCents(inv.TotalAmount))
	if viewURL != "" {
		body += " " + viewURL
	}
	return body
}
