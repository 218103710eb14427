package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "catering_backoffice/internal/adapter/http/dto/request"
	response "catering_backoffice/internal/adapter/http/dto/response"
	"catering_backoffice/internal/domain/entities"
	"catering_backoffice/internal/usecase"
	"catering_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteRequestHandler serves customer inquiries.
type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
	logger  *zap.Logger
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase, logger *zap.Logger) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc, logger: orNop(logger)}
}

// Submit godoc
// @Summary  Submit a quote request
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    body body request.QuoteRequestCreateRequest true "Inquiry"
// @Success  201 {object} response.QuoteRequestResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *QuoteRequestHandler) Submit(c *gin.Context) {
	var payload request.QuoteRequestCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}
	q, err := payload.ToEntity()
	if err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.logger, mapQuoteRequestError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteRequest(created))
}

// GetByID godoc
// @Summary  Get a quote request
// @Tags     quotes
// @Produce  json
// @Param    quote_id path string true "Quote request id"
// @Success  200 {object} response.QuoteRequestResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{quote_id} [get]
func (h *QuoteRequestHandler) GetByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		respondError(c, h.logger, mapQuoteRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

// List godoc
// @Summary  List quote requests by status
// @Tags     quotes
// @Produce  json
// @Param    status query string false "Workflow status" default(pending)
// @Success  200 {array} response.QuoteRequestResponse
// @Router   /quotes [get]
func (h *QuoteRequestHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.DefaultQuery("status", string(entities.QuoteStatusPending)))
	qs, err := h.usecase.ListByStatus(c.Request.Context(), entities.QuoteStatus(status))
	if err != nil {
		respondError(c, h.logger, mapQuoteRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequests(qs))
}

// UpdateStatus godoc
// @Summary  Move a quote request to another status
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    quote_id path string true "Quote request id"
// @Param    body body request.StatusUpdateRequest true "Target status"
// @Success  200 {object} response.QuoteRequestResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /quotes/{quote_id}/status [patch]
func (h *QuoteRequestHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("quote_id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		h.logger.Info("[quote][handler] status update refused",
			zap.String("quote_id", c.Param("quote_id")),
			zap.String("to", payload.Status),
			zap.Error(err),
		)
		respondError(c, h.logger, mapQuoteRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRequest(q))
}

func mapQuoteRequestError(err error) *pkg.AppError {
	if appErr := mapWorkflowError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrQuoteRequestNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
