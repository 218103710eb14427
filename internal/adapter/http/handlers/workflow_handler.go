package handlers

import (
	"net/http"

	request "catering_backoffice/internal/adapter/http/dto/request"
	response "catering_backoffice/internal/adapter/http/dto/response"
	"catering_backoffice/internal/domain/pricing"
	"catering_backoffice/internal/domain/workflow"
	"catering_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WorkflowHandler answers read-only questions about statuses and pricing.
type WorkflowHandler struct {
	calc   pricing.Calculator
	logger *zap.Logger
}

func NewWorkflowHandler(calc pricing.Calculator, logger *zap.Logger) *WorkflowHandler {
	if calc.HospitalityBPS == 0 && calc.ServiceBPS == 0 {
		calc = pricing.NewCalculator(0, 0)
	}
	return &WorkflowHandler{calc: calc, logger: orNop(logger)}
}

// AllowedTransitions godoc
// @Summary  Statuses reachable from a status
// @Tags     workflow
// @Produce  json
// @Param    entity path string true "quote, invoice or change_request"
// @Param    status path string true "Current status"
// @Success  200 {object} response.TransitionsResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /workflow/{entity}/{status}/transitions [get]
func (h *WorkflowHandler) AllowedTransitions(c *gin.Context) {
	entity := workflow.EntityType(c.Param("entity"))
	status := c.Param("status")
	if !workflow.IsKnownStatus(entity, status) {
		respondError(c, h.logger, pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown entity or status", http.StatusBadRequest))
		return
	}
	c.JSON(http.StatusOK, response.TransitionsResponse{
		Entity:   string(entity),
		Status:   status,
		Allowed:  workflow.AllowedTransitions(entity, status),
		Terminal: workflow.IsTerminal(entity, status),
	})
}

// CheckTransition godoc
// @Summary  Validate a single transition
// @Tags     workflow
// @Produce  json
// @Param    entity path string true "quote, invoice or change_request"
// @Param    from query string true "Current status"
// @Param    to query string true "Target status"
// @Success  200 {object} response.TransitionCheckResponse
// @Router   /workflow/{entity}/check [get]
func (h *WorkflowHandler) CheckTransition(c *gin.Context) {
	entity := c.Param("entity")
	from, to := c.Query("from"), c.Query("to")
	c.JSON(http.StatusOK, response.TransitionCheckResponse{
		Entity: entity,
		From:   from,
		To:     to,
		Valid:  workflow.IsValidTransition(workflow.EntityType(entity), from, to),
	})
}

// TaxPreview godoc
// @Summary  Tax breakdown for a subtotal
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    body body request.TaxPreviewRequest true "Subtotal in cents"
// @Success  200 {object} pricing.TaxBreakdown
// @Router   /pricing/tax [post]
func (h *WorkflowHandler) TaxPreview(c *gin.Context) {
	var payload request.TaxPreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, h.logger, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		respondError(c, h.logger, invalidRequest(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.calc.Calculate(payload.Subtotal, payload.IsGovernmentContract))
}
