package handlers

import (
	"errors"
	"log"
	"net/http"

	response "frota_cobranca/internal/adapter/http/dto/response"
	"frota_cobranca/internal/usecase"
	"frota_cobranca/pkg"

	"github.com/gin-gonic/gin"
)

// CollectionHandler exposes the scheduled passes as on-demand endpoints and
// lets operators preview the decision for a single invoice. The cron
// scheduler drives the same use cases; these routes exist for support
// tooling and incident recovery.

type CollectionHandler struct {
	blocker   usecase.IBlockDecisionUseCase
	unblocker usecase.IUnblockUseCase
	escalator usecase.INotificationEscalator
}

func NewCollectionHandler(
	blocker usecase.IBlockDecisionUseCase,
	unblocker usecase.IUnblockUseCase,
	escalator usecase.INotificationEscalator,
) *CollectionHandler {
	return &CollectionHandler{blocker: blocker, unblocker: unblocker, escalator: escalator}
}

// RunBlockPass triggers a block pass immediately.
func (h *CollectionHandler) RunBlockPass(c *gin.Context) {
	log.Printf("[collection][handler] block pass requested")
	report, err := h.blocker.RunBlockPass(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatchReport(report))
}

// RunUnblockPass triggers an unblock pass immediately.
func (h *CollectionHandler) RunUnblockPass(c *gin.Context) {
	log.Printf("[collection][handler] unblock pass requested")
	report, err := h.unblocker.RunUnblockPass(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatchReport(report))
}

// RunReminderSweep triggers the notification sweep immediately.
func (h *CollectionHandler) RunReminderSweep(c *gin.Context) {
	log.Printf("[collection][handler] reminder sweep requested")
	report, err := h.escalator.RunReminderSweep(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatchReport(report))
}

// EvaluateInvoice returns the decision the engine would take for one invoice
// right now, without issuing any tracker command.
func (h *CollectionHandler) EvaluateInvoice(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	decision, err := h.blocker.EvaluateInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		appErr := mapEvaluateError(err)
		log.Printf("[collection][handler] evaluate failed invoice_id=%s err=%v", invoiceID, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDecision(decision))
}

func mapEvaluateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
