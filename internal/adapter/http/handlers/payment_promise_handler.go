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

// PaymentPromiseHandler handles HTTP requests for payment promises.

type PaymentPromiseHandler struct {
	usecase usecase.IPaymentPromiseUseCase
}

func NewPaymentPromiseHandler(uc usecase.IPaymentPromiseUseCase) *PaymentPromiseHandler {
	return &PaymentPromiseHandler{usecase: uc}
}

// CreatePromise registers a payment promise for the invoice in the path.
// The grace period is fixed server side so operators cannot hand out
// arbitrary extensions.
func (h *PaymentPromiseHandler) CreatePromise(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[promise][handler] create start invoice_id=%s", invoiceID)

	invoice, err := h.usecase.CreatePromise(c.Request.Context(), invoiceID)
	if err != nil {
		appErr := mapPromiseError(err)
		log.Printf("[promise][handler] create failed invoice_id=%s err=%v", invoiceID, err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[promise][handler] create ok invoice_id=%s promise=%v", invoiceID, invoice.PaymentPromise)
	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func mapPromiseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPosted):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_POSTED", "Invoice is not posted", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice is already paid", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
