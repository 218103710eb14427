package handlers

import (
	"errors"
	"net/http"

	request "catering_backoffice/internal/adapter/http/dto/request"
	response "catering_backoffice/internal/adapter/http/dto/response"
	"catering_backoffice/internal/usecase"
	"catering_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChangeRequestHandler serves customer change requests and their review.
type ChangeRequestHandler struct {
	usecase usecase.IChangeRequestUseCase
	logger  *zap.Logger
}

func NewChangeRequestHandler(uc usecase.IChangeRequestUseCase, logger *zap.Logger) *ChangeRequestHandler {
	return &ChangeRequestHandler{usecase: uc, logger: orNop(logger)}
}

// Submit godoc
// @Summary  Submit a change request for an invoice
// @Tags     change-requests
// @Accept   json
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Param    body body request.ChangeRequestCreateRequest true "Requested changes"
// @Success  201 {object} response.ChangeRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /invoices/{invoice_id}/change-requests [post]
func (h *ChangeRequestHandler) Submit(c *gin.Context) {
	var payload request.ChangeRequestCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}
	in, err := payload.ToInput(c.Param("invoice_id"))
	if err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}

	cr, err := h.usecase.Submit(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.logger, mapChangeRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromChangeRequest(cr))
}

// ListByInvoice godoc
// @Summary  List an invoice's change requests
// @Tags     change-requests
// @Produce  json
// @Param    invoice_id path string true "Invoice id"
// @Success  200 {array} response.ChangeRequestResponse
// @Router   /invoices/{invoice_id}/change-requests [get]
func (h *ChangeRequestHandler) ListByInvoice(c *gin.Context) {
	crs, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		respondError(c, h.logger, mapChangeRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChangeRequests(crs))
}

// GetByID godoc
// @Summary  Get a change request
// @Tags     change-requests
// @Produce  json
// @Param    change_request_id path string true "Change request id"
// @Success  200 {object} response.ChangeRequestResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /change-requests/{change_request_id} [get]
func (h *ChangeRequestHandler) GetByID(c *gin.Context) {
	cr, err := h.usecase.GetByID(c.Request.Context(), c.Param("change_request_id"))
	if err != nil {
		respondError(c, h.logger, mapChangeRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChangeRequest(cr))
}

// Approve godoc
// @Summary  Approve a change request and apply it to the invoice
// @Tags     change-requests
// @Accept   json
// @Produce  json
// @Param    change_request_id path string true "Change request id"
// @Param    body body request.ChangeRequestApproveRequest true "Resolution"
// @Success  200 {object} response.ChangeRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /change-requests/{change_request_id}/approve [post]
func (h *ChangeRequestHandler) Approve(c *gin.Context) {
	var payload request.ChangeRequestApproveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}

	cr, err := h.usecase.Approve(c.Request.Context(), c.Param("change_request_id"), payload.AdminResponse, payload.FinalCostChange)
	if err != nil {
		respondError(c, h.logger, mapChangeRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChangeRequest(cr))
}

// Reject godoc
// @Summary  Reject a change request
// @Tags     change-requests
// @Accept   json
// @Produce  json
// @Param    change_request_id path string true "Change request id"
// @Param    body body request.ChangeRequestRejectRequest true "Resolution"
// @Success  200 {object} response.ChangeRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /change-requests/{change_request_id}/reject [post]
func (h *ChangeRequestHandler) Reject(c *gin.Context) {
	var payload request.ChangeRequestRejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}

	cr, err := h.usecase.Reject(c.Request.Context(), c.Param("change_request_id"), payload.AdminResponse)
	if err != nil {
		respondError(c, h.logger, mapChangeRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChangeRequest(cr))
}

func mapChangeRequestError(err error) *pkg.AppError {
	if appErr := mapWorkflowError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidChangeRequestID), errors.Is(err, usecase.ErrInvalidInvoiceID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidChangeRequest):
		return invalidRequest(err.Error())
	case errors.Is(err, usecase.ErrChangeRequestNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_REQUEST_NOT_FOUND", "Change request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotOpenForChanges):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_OPEN_FOR_CHANGES", "Invoice does not accept change requests in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeRequestConflict):
		return errConflict
	default:
		return internalError(err)
	}
}
