package interfaces

import (
	"context"
	"time"

	"frota_cobranca/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// The collection engine must be able to:
//   - enumerate posted, unpaid customer invoices already past due
//   - read a customer's invoice history for the recidivism window
//   - read a customer's open invoices for the unblock re-evaluation
//   - write the payment-promise timestamp and append audit notes
//
// The accounting platform owns every other invoice mutation.

type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	// ListOverdueUnpaid returns posted, unpaid customer invoices with due
	// date on or before the day preceding asOf.
	ListOverdueUnpaid(ctx context.Context, asOf time.Time) ([]entities.Invoice, error)
	// ListPostedByCustomerDueBetween returns the customer's posted invoices
	// with due date in [from, to).
	ListPostedByCustomerDueBetween(ctx context.Context, customerID string, from, to time.Time) ([]entities.Invoice, error)
	ListUnpaidByCustomer(ctx context.Context, customerID string) ([]entities.Invoice, error)
	// ListUnpaidDueBetween returns posted, unpaid customer invoices with due
	// date in [from, to]; the reminder sweep uses it to key templates off
	// due-date offsets.
	ListUnpaidDueBetween(ctx context.Context, from, to time.Time) ([]entities.Invoice, error)
	SetPaymentPromise(ctx context.Context, id string, promise time.Time) (entities.Invoice, error)
	AppendNote(ctx context.Context, id string, note entities.Note) error
}
