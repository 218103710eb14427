package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	request "catering_backoffice/internal/adapter/http/dto/request"
	response "catering_backoffice/internal/adapter/http/dto/response"
	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase"
	"catering_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// transparentGIF is a 1x1 transparent GIF.
var transparentGIF, _ = base64.StdEncoding.DecodeString("R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7")

// InvoiceHandler serves estimates and invoices.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	logger  *zap.Logger
	now     func() time.Time
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		usecase: uc,
		logger:  orNop(logger),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create godoc
// @Summary  Create an estimate or invoice
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    body body request.InvoiceCreateRequest true "Invoice"
// @Success  201 {object} response.InvoiceResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload request.InvoiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}

	inv, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// GetByID godoc
// @Summary  Get an invoice
// @Tags     invoices
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {object} response.InvoiceResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /invoices/{invoice_id} [get]
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondError(c, h.logger, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// UpdateStatus godoc
// @Summary  Move an invoice to another status
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Param    body body request.StatusUpdateRequest true "Target status"
// @Success  200 {object} response.InvoiceResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /invoices/{invoice_id}/status [patch]
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}

	inv, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("invoice_id"), entities.InvoiceStatus(payload.Status))
	if err != nil {
		h.logger.Info("[invoice][handler] status update refused",
			zap.String("invoice_id", c.Param("invoice_id")),
			zap.String("to", payload.Status),
			zap.Error(err),
		)
		respondError(c, h.logger, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// ReplaceLineItems godoc
// @Summary  Replace an invoice's line items
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Param    body body request.LineItemsReplaceRequest true "Line items"
// @Success  200 {object} response.InvoiceResponse
// @Router   /invoices/{invoice_id}/line-items [put]
func (h *InvoiceHandler) ReplaceLineItems(c *gin.Context) {
	var payload request.LineItemsReplaceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}

	inv, err := h.usecase.ReplaceLineItems(c.Request.Context(), c.Param("invoice_id"), payload.ToEntities())
	if err != nil {
		respondError(c, h.logger, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// SetGovernmentContract godoc
// @Summary  Toggle the government contract flag
// @Tags     invoices
// @Accept   json
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Param    body body request.GovernmentContractRequest true "Flag"
// @Success  200 {object} response.InvoiceResponse
// @Router   /invoices/{invoice_id}/government-contract [patch]
func (h *InvoiceHandler) SetGovernmentContract(c *gin.Context) {
	var payload request.GovernmentContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}

	inv, err := h.usecase.SetGovernmentContract(c.Request.Context(), c.Param("invoice_id"), *payload.IsGovernmentContract)
	if err != nil {
		respondError(c, h.logger, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// Send godoc
// @Summary  Email the invoice to the customer
// @Tags     invoices
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {object} response.InvoiceResponse
// @Failure  502 {object} pkg.HTTPError
// @Router   /invoices/{invoice_id}/send [post]
func (h *InvoiceHandler) Send(c *gin.Context) {
	inv, err := h.usecase.Send(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondError(c, h.logger, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// Convert godoc
// @Summary  Convert an approved estimate into an invoice
// @Tags     invoices
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {object} response.InvoiceResponse
// @Router   /invoices/{invoice_id}/convert [post]
func (h *InvoiceHandler) Convert(c *gin.Context) {
	inv, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondError(c, h.logger, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// DownloadPDF godoc
// @Summary  Download the invoice as PDF
// @Tags     invoices
// @Produce  application/pdf
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {file} binary
// @Router   /invoices/{invoice_id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *gin.Context) {
	out, inv, err := h.usecase.RenderPDF(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondError(c, h.logger, mapInvoiceError(err))
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+inv.InvoiceNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

// SweepOverdue godoc
// @Summary  Mark lapsed invoices overdue now
// @Tags     invoices
// @Produce  json
// @Success  200 {object} response.SweepResponse
// @Router   /invoices/sweep-overdue [post]
func (h *InvoiceHandler) SweepOverdue(c *gin.Context) {
	res, err := h.usecase.SweepOverdue(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, h.logger, internalError(err))
		return
	}
	open := res.OpenInvoices
	if open == nil {
		open = []string{}
	}
	c.JSON(http.StatusOK, response.SweepResponse{Scanned: res.Scanned, MarkedOverdue: res.MarkedOverdue, OpenInvoices: open})
}

// TrackOpen godoc
// @Summary  Email open tracking pixel
// @Tags     tracking
// @Produce  image/gif
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {file} binary
// @Router   /track/open/{invoice_id} [get]
func (h *InvoiceHandler) TrackOpen(c *gin.Context) {
	id := c.Param("invoice_id")
	if err := h.usecase.MarkViewed(c.Request.Context(), id); err != nil {
		h.logger.Warn("[invoice][handler] open tracking failed", zap.String("invoice_id", id), zap.Error(err))
	}
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Data(http.StatusOK, "image/gif", transparentGIF)
}

func mapInvoiceError(err error) *pkg.AppError {
	if appErr := mapWorkflowError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoice):
		return invalidRequest(err.Error())
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceLocked):
		return pkg.NewDomainErrorSimple("INVOICE_LOCKED", "Invoice can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAnEstimate):
		return pkg.NewDomainErrorSimple("NOT_AN_ESTIMATE", "Document is not an estimate", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotApproved):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotificationFailed):
		return pkg.NewDomainError("NOTIFICATION_FAILED", "Invoice could not be delivered", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrMilestoneConflict):
		return errConflict
	case errors.Is(err, usecase.ErrRendererUnavailable):
		return pkg.NewDomainError("RENDERER_UNAVAILABLE", "PDF export is not available", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
