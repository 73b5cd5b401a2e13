package routes

import (
	"frota_cobranca/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRuns     = "/collection/runs"
	PathInvoices = "/invoices"
)

func addCollectionRoutes(rg *gin.RouterGroup, collectionHandler *handlers.CollectionHandler, promiseHandler *handlers.PaymentPromiseHandler) {
	runs := rg.Group(PathRuns)
	{
		// On-demand equivalents of the cron passes.
		runs.POST("/block", collectionHandler.RunBlockPass)
		runs.POST("/unblock", collectionHandler.RunUnblockPass)
		runs.POST("/reminders", collectionHandler.RunReminderSweep)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_id/decision", collectionHandler.EvaluateInvoice)
		invoices.POST("/:invoice_id/payment-promise", promiseHandler.CreatePromise)
	}
}
