package response

import (
	"time"

	"frota_cobranca/internal/domain/entities"
)

type InvoiceResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	Type           string     `json:"type"`
	State          string     `json:"state"`
	PaymentState   string     `json:"payment_state"`
	DueDate        string     `json:"due_date"`
	Amount         float64    `json:"amount"`
	PaymentPromise *time.Time `json:"payment_promise,omitempty"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		CustomerID:     i.CustomerID,
		Type:           string(i.Type),
		State:          string(i.State),
		PaymentState:   string(i.PaymentState),
		DueDate:        i.DueDate.Format("2006-01-02"),
		Amount:         i.Amount,
		PaymentPromise: i.PaymentPromise,
	}
}
