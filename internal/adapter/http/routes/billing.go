package routes

import (
	"catering_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes         = "/quotes"
	PathInvoices       = "/invoices"
	PathMilestones     = "/milestones"
	PathPayments       = "/payments"
	PathChangeRequests = "/change-requests"
	PathTracking       = "/track"
	PathWorkflow       = "/workflow"
	PathPricing        = "/pricing"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteRequestHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", h.Submit)
		quotes.GET("", h.List)
		quotes.GET("/:quote_id", h.GetByID)
		quotes.PATCH("/:quote_id/status", h.UpdateStatus)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler, milestones *handlers.MilestoneHandler, changes *handlers.ChangeRequestHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.Create)
		invoices.POST("/sweep-overdue", h.SweepOverdue)
		invoices.GET("/:invoice_id", h.GetByID)
		invoices.PATCH("/:invoice_id/status", h.UpdateStatus)
		invoices.PUT("/:invoice_id/line-items", h.ReplaceLineItems)
		invoices.PATCH("/:invoice_id/government-contract", h.SetGovernmentContract)
		invoices.POST("/:invoice_id/send", h.Send)
		invoices.POST("/:invoice_id/convert", h.Convert)
		invoices.GET("/:invoice_id/pdf", h.DownloadPDF)

		invoices.GET("/:invoice_id/milestones", milestones.ListByInvoice)
		invoices.POST("/:invoice_id/milestones/regenerate", milestones.Regenerate)
		invoices.POST("/:invoice_id/milestones/refresh", milestones.Refresh)

		invoices.POST("/:invoice_id/change-requests", changes.Submit)
		invoices.GET("/:invoice_id/change-requests", changes.ListByInvoice)
	}

	tracking := rg.Group(PathTracking)
	{
		tracking.GET("/open/:invoice_id", h.TrackOpen)
	}
}

func addBillingRoutes(rg *gin.RouterGroup, milestones *handlers.MilestoneHandler, paymentHandler *handlers.BillingPaymentHandler) {
	ms := rg.Group(PathMilestones)
	{
		ms.GET("/:milestone_id", milestones.GetByID)
		ms.POST("/:milestone_id/payments", paymentHandler.PayMilestone)
		ms.GET("/:milestone_id/payments", paymentHandler.ListByMilestone)
		ms.GET("/:milestone_id/payments/latest", paymentHandler.GetLatestByMilestone)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetByID)
	}
}

func addChangeRequestRoutes(rg *gin.RouterGroup, h *handlers.ChangeRequestHandler) {
	changes := rg.Group(PathChangeRequests)
	{
		changes.GET("/:change_request_id", h.GetByID)
		changes.POST("/:change_request_id/approve", h.Approve)
		changes.POST("/:change_request_id/reject", h.Reject)
	}
}

func addWorkflowRoutes(rg *gin.RouterGroup, h *handlers.WorkflowHandler) {
	wf := rg.Group(PathWorkflow)
	{
		wf.GET("/:entity/check", h.CheckTransition)
		wf.GET("/:entity/:status/transitions", h.AllowedTransitions)
	}
	rg.POST(PathPricing+"/tax", h.TaxPreview)
}
