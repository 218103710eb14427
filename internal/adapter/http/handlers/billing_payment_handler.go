package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "catering_backoffice/internal/adapter/http/dto/response"
	"catering_backoffice/internal/usecase"
	"catering_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingPaymentHandler handles HTTP requests for milestone payments.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool, logger *zap.Logger) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode, logger: orNop(logger)}
}

// PayMilestone godoc
// @Summary  Pay a milestone through Mercado Pago
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    milestone_id path string true "Milestone id"
// @Param    body body request.BillingPaymentCreateRequest true "Mercado Pago payload"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /milestones/{milestone_id}/payments [post]
func (h *BillingPaymentHandler) PayMilestone(c *gin.Context) {
	milestoneID := c.Param("milestone_id")
	h.logger.Info("[payment][handler] create start", zap.String("milestone_id", milestoneID))
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.logger.Info("[payment][handler] invalid payload", zap.String("milestone_id", milestoneID), zap.Error(err))
			respondError(c, h.logger, errInvalidRequest)
			return
		}
		h.logger.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.String("milestone_id", milestoneID), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.PayMilestone(c.Request.Context(), milestoneID, mpPayload)
	if err != nil {
		h.logger.Warn("[payment][handler] create failed", zap.String("milestone_id", milestoneID), zap.Error(err))
		respondError(c, h.logger, mapBillingPaymentError(err))
		return
	}
	h.logger.Info("[payment][handler] create success",
		zap.String("milestone_id", milestoneID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// ListByMilestone godoc
// @Summary  List payments of a milestone
// @Tags     payments
// @Produce  json
// @Param    milestone_id path string true "Milestone id"
// @Success  200 {array} response.BillingPaymentResponse
// @Router   /milestones/{milestone_id}/payments [get]
func (h *BillingPaymentHandler) ListByMilestone(c *gin.Context) {
	payments, err := h.usecase.ListByMilestoneID(c.Request.Context(), c.Param("milestone_id"))
	if err != nil {
		respondError(c, h.logger, mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayments(payments))
}

// GetLatestByMilestone godoc
// @Summary  Latest payment of a milestone
// @Tags     payments
// @Produce  json
// @Param    milestone_id path string true "Milestone id"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /milestones/{milestone_id}/payments/latest [get]
func (h *BillingPaymentHandler) GetLatestByMilestone(c *gin.Context) {
	milestoneID := c.Param("milestone_id")

	payments, err := h.usecase.ListByMilestoneID(c.Request.Context(), milestoneID)
	if err != nil {
		respondError(c, h.logger, mapBillingPaymentError(err))
		return
	}
	if len(payments) == 0 {
		h.logger.Debug("[payment][handler] get-latest not-found", zap.String("milestone_id", milestoneID))
		respondError(c, h.logger, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// GetByID godoc
// @Summary  Get a payment
// @Tags     payments
// @Produce  json
// @Param    payment_id path string true "Payment id"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{payment_id} [get]
func (h *BillingPaymentHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		respondError(c, h.logger, mapBillingPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare Mercado Pago body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMilestoneID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Payment milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice is not approved for payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrMilestoneAlreadyPaid):
		return pkg.NewDomainErrorSimple("MILESTONE_ALREADY_PAID", "Milestone already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "A payment for this milestone is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNeedsReconciliation):
		return pkg.NewDomainErrorSimple("PAYMENT_NEEDS_RECONCILIATION", "Payment was collected but the milestone changed; it will be reconciled", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	}
	if appErr := mapWorkflowError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
