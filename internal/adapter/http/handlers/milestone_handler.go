package handlers

import (
	"errors"
	"net/http"
	"time"

	response "catering_backoffice/internal/adapter/http/dto/response"
	"catering_backoffice/internal/usecase"
	"catering_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MilestoneHandler exposes an invoice's payment schedule.
type MilestoneHandler struct {
	usecase usecase.IMilestoneUseCase
	logger  *zap.Logger
	now     func() time.Time
}

func NewMilestoneHandler(uc usecase.IMilestoneUseCase, logger *zap.Logger) *MilestoneHandler {
	return &MilestoneHandler{
		usecase: uc,
		logger:  orNop(logger),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ListByInvoice godoc
// @Summary  List an invoice's payment milestones
// @Tags     milestones
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {array} response.MilestoneResponse
// @Router   /invoices/{invoice_id}/milestones [get]
func (h *MilestoneHandler) ListByInvoice(c *gin.Context) {
	ms, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondError(c, h.logger, mapMilestoneError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMilestones(ms))
}

// GetByID godoc
// @Summary  Get a payment milestone
// @Tags     milestones
// @Produce  json
// @Param    milestone_id path string true "Milestone id"
// @Success  200 {object} response.MilestoneResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /milestones/{milestone_id} [get]
func (h *MilestoneHandler) GetByID(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("milestone_id"))
	if err != nil {
		respondError(c, h.logger, mapMilestoneError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMilestone(m))
}

// Regenerate godoc
// @Summary  Rebuild the payment schedule now
// @Tags     milestones
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {array} response.MilestoneResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /invoices/{invoice_id}/milestones/regenerate [post]
func (h *MilestoneHandler) Regenerate(c *gin.Context) {
	ms, err := h.usecase.RegenerateMilestones(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondError(c, h.logger, mapMilestoneError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMilestones(ms))
}

// Refresh godoc
// @Summary  Mark lapsed milestones as due
// @Tags     milestones
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {array} response.MilestoneResponse
// @Router   /invoices/{invoice_id}/milestones/refresh [post]
func (h *MilestoneHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	invoiceID := c.Param("invoice_id")

	changed, err := h.usecase.RefreshStatuses(ctx, invoiceID, h.now())
	if err != nil {
		respondError(c, h.logger, mapMilestoneError(err))
		return
	}
	h.logger.Debug("[milestone][handler] statuses refreshed", zap.String("invoice_id", invoiceID), zap.Int("changed", changed))

	ms, err := h.usecase.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		respondError(c, h.logger, mapMilestoneError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMilestones(ms))
}

func mapMilestoneError(err error) *pkg.AppError {
	if appErr := mapWorkflowError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidMilestoneID), errors.Is(err, usecase.ErrInvalidInvoiceID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrMilestoneNotFound):
		return pkg.NewDomainErrorSimple("MILESTONE_NOT_FOUND", "Payment milestone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMilestoneConflict):
		return errConflict
	default:
		return internalError(err)
	}
}
