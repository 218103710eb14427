package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/domain/milestone"
	"catering_backoffice/internal/domain/pricing"
	"catering_backoffice/internal/domain/workflow"
	"catering_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrInvoiceNotPayable              = errors.New("invoice is not approved for payment")
	ErrMilestoneAlreadyPaid           = errors.New("milestone already paid")
	ErrPaymentInProgress              = errors.New("a payment for this milestone is already in progress")
	ErrPaymentNeedsReconciliation     = errors.New("payment collected but the milestone changed before it was settled")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillingPaymentUseCase collects payments against payment milestones.
type IBillingPaymentUseCase interface {
	PayMilestone(ctx context.Context, milestoneID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.BillingPayment, error)
}

// BillingPaymentDeps groups the collaborators of BillingPaymentUseCase.
type BillingPaymentDeps struct {
	Payments   interfaces.IBillingPaymentRepository
	Milestones interfaces.IPaymentMilestoneRepository
	Invoices   interfaces.IInvoiceRepository
	Gateway    interfaces.IPaymentGateway
	Guard      interfaces.IIdempotencyGuard
	MockMode   bool
	Metrics    interfaces.IMetricsRecorder
	Logger     *zap.Logger
}

type BillingPaymentUseCase struct {
	repo       interfaces.IBillingPaymentRepository
	milestones interfaces.IPaymentMilestoneRepository
	invoices   interfaces.IInvoiceRepository
	gateway    interfaces.IPaymentGateway
	guard      interfaces.IIdempotencyGuard
	mockMode   bool
	metrics    interfaces.IMetricsRecorder
	logger     *zap.Logger
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(d BillingPaymentDeps) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:       d.Payments,
		milestones: d.Milestones,
		invoices:   d.Invoices,
		gateway:    d.Gateway,
		guard:      d.Guard,
		mockMode:   d.MockMode,
		metrics:    orNoopMetrics(d.Metrics),
		logger:     orNop(d.Logger),
	}
}

// PayMilestone charges one milestone through the gateway. The amount always
// comes from the stored milestone; the caller only supplies payer and method.
// An approved payment marks the milestone paid and, once every milestone is
// paid, the invoice too.
func (u *BillingPaymentUseCase) PayMilestone(ctx context.Context, milestoneID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	u.logger.Debug("[payment][usecase] pay-milestone start", zap.String("milestone_id", milestoneID), zap.Int("payload_len", len(mpPayload)))
	if milestoneID == "" {
		return entities.BillingPayment{}, ErrInvalidMilestoneID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BillingPayment{}, errors.New("payment gateway not configured")
	}

	ms, err := u.milestones.GetByID(ctx, milestoneID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if ms.ID == "" {
		return entities.BillingPayment{}, ErrMilestoneNotFound
	}
	if ms.Status == entities.MilestoneStatusPaid {
		return entities.BillingPayment{}, ErrMilestoneAlreadyPaid
	}

	inv, err := u.invoices.GetByID(ctx, ms.InvoiceID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if inv.ID == "" {
		return entities.BillingPayment{}, ErrInvoiceNotFound
	}
	if inv.WorkflowStatus != entities.InvoiceStatusApproved && inv.WorkflowStatus != entities.InvoiceStatusOverdue {
		u.logger.Warn("[payment][usecase] invoice not payable", zap.String("invoice_id", inv.ID), zap.String("status", string(inv.WorkflowStatus)))
		return entities.BillingPayment{}, ErrInvoiceNotPayable
	}

	if u.guard != nil {
		ok, err := u.guard.Acquire(ctx, ms.ID)
		if err != nil {
			return entities.BillingPayment{}, err
		}
		if !ok {
			return entities.BillingPayment{}, ErrPaymentInProgress
		}
		defer func() {
			if err := u.guard.Release(context.WithoutCancel(ctx), ms.ID); err != nil {
				u.logger.Warn("[payment][usecase] idempotency release failed", zap.String("milestone_id", ms.ID), zap.Error(err))
			}
		}()
	}

	payload, err := u.buildGatewayPayload(mpPayload, inv, ms)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.metrics.Payment(false)
		u.logger.Warn("[payment][usecase] payment gateway failed", zap.String("milestone_id", ms.ID), zap.Error(err))
		return entities.BillingPayment{}, mapGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("[payment][usecase] provider response unmarshal failed", zap.String("milestone_id", ms.ID), zap.Error(err))
	}

	now := time.Now().UTC()
	p := entities.BillingPayment{
		ID:           providerPaymentID,
		InvoiceID:    inv.ID,
		MilestoneID:  ms.ID,
		Amount:       ms.Amount,
		Date:         now,
		Status:       paymentStatus(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("[payment][usecase] payment repository create failed", zap.String("milestone_id", ms.ID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.BillingPayment{}, err
	}

	if created.Status != entities.PaymentStatusApproved {
		u.metrics.Payment(false)
		u.logger.Info("[payment][usecase] payment not approved", zap.String("milestone_id", ms.ID), zap.String("provider_status", providerStatus))
		return created, nil
	}

	if err := u.settle(ctx, inv, ms, created, now); err != nil {
		return entities.BillingPayment{}, err
	}

	u.metrics.Payment(true)
	u.logger.Info("[payment][usecase] milestone paid",
		zap.String("milestone_id", ms.ID),
		zap.String("invoice_id", inv.ID),
		zap.String("payment_id", created.ID),
		zap.Int64("amount", created.Amount),
	)
	return created, nil
}

// settle marks the milestone paid only if it still holds the charged amount.
// When the schedule moved under the charge, the stored payment is left for
// reconciliation instead.
func (u *BillingPaymentUseCase) settle(ctx context.Context, inv entities.Invoice, ms entities.PaymentMilestone, p entities.BillingPayment, now time.Time) error {
	if _, err := u.milestones.MarkPaid(ctx, ms, now); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			u.metrics.Payment(false)
			u.logger.Error("[payment][usecase] milestone changed during charge, reconcile payment",
				zap.String("milestone_id", ms.ID),
				zap.String("invoice_id", inv.ID),
				zap.String("payment_id", p.ID),
				zap.Int64("charged_amount", p.Amount),
			)
			return fmt.Errorf("%w: payment %s", ErrPaymentNeedsReconciliation, p.ID)
		}
		u.logger.Error("[payment][usecase] milestone not marked paid", zap.String("milestone_id", ms.ID), zap.Error(err))
		return err
	}

	all, err := u.milestones.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return err
	}
	if !milestone.AllPaid(all) {
		return nil
	}

	if err := workflow.ValidateTransition(workflow.EntityInvoice, string(inv.WorkflowStatus), string(entities.InvoiceStatusPaid)); err != nil {
		return err
	}
	if _, err := u.invoices.UpdateStatus(ctx, inv.ID, inv.WorkflowStatus, entities.InvoiceStatusPaid, now); err != nil {
		u.metrics.Transition(string(workflow.EntityInvoice), string(entities.InvoiceStatusPaid), false)
		return err
	}
	u.metrics.Transition(string(workflow.EntityInvoice), string(entities.InvoiceStatusPaid), true)
	u.logger.Info("[payment][usecase] invoice fully paid", zap.String("invoice_id", inv.ID))
	return nil
}

// buildGatewayPayload fills the fields owned by the back office: amount,
// external_reference and description. The payer defaults to the invoice's
// customer email.
func (u *BillingPaymentUseCase) buildGatewayPayload(mpPayload json.RawMessage, inv entities.Invoice, ms entities.PaymentMilestone) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.mockMode {
			return nil, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}

	if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		u.logger.Warn("[payment][usecase] missing payment_method_id", zap.String("milestone_id", ms.ID))
		return nil, ErrInvalidMPPayload
	}
	ensurePayerDefaults(reqMap, inv.CustomerEmail)
	if !u.mockMode && !hasPayer(reqMap) {
		return nil, ErrInvalidMPPayload
	}

	reqMap["external_reference"] = ms.ID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s %s - %s", inv.DocumentType, inv.InvoiceNumber, ms.Description)
	}
	reqMap["transaction_amount"] = pricing.CentsToUnits(ms.Amount)

	return json.Marshal(reqMap)
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByMilestoneID(ctx context.Context, milestoneID string) ([]entities.BillingPayment, error) {
	milestoneID = strings.TrimSpace(milestoneID)
	if milestoneID == "" {
		return nil, ErrInvalidMilestoneID
	}
	return u.repo.ListByMilestoneID(ctx, milestoneID)
}

func paymentStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any, email string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && email != "" {
		payer["email"] = email
	}
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
