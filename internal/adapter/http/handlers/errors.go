package handlers

import (
	"errors"
	"net/http"

	"catering_backoffice/internal/domain/milestone"
	"catering_backoffice/internal/domain/workflow"
	"catering_backoffice/internal/usecase/interfaces"
	"catering_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUpdateFailed   = pkg.NewDomainErrorSimple("UPDATE_FAILED", "Update Failed", http.StatusConflict)
	errConflict       = pkg.NewDomainErrorSimple("CONFLICT", "Record changed concurrently, reload and retry", http.StatusConflict)
)

func invalidRequest(msg string) *pkg.AppError {
	if msg == "" {
		return errInvalidRequest
	}
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", msg, http.StatusBadRequest)
}

// mapWorkflowError covers the errors every workflow endpoint can hit. It
// returns nil when err needs a handler-specific mapping.
func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, workflow.ErrInvalidTransition):
		return errUpdateFailed
	case errors.Is(err, interfaces.ErrConditionFailed):
		return errConflict
	case errors.Is(err, milestone.ErrTotalBelowPaid):
		return pkg.NewDomainErrorSimple("TOTAL_BELOW_PAID", "Invoice total cannot drop below the amount already paid", http.StatusConflict)
	default:
		return nil
	}
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func respondError(c *gin.Context, logger *zap.Logger, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("[http][handler] request failed",
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
