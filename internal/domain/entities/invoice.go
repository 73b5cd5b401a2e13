package entities

import "time"

// InvoiceState represents the accounting lifecycle of an invoice.
//
// Domain notes:
//   - The accounting platform is the source of truth for invoice state.
//   - The collection engine only reads these values; it never moves an
//     invoice through its lifecycle.

type InvoiceState string

const (
	InvoiceStateDraft     InvoiceState = "draft"
	InvoiceStatePosted    InvoiceState = "posted"
	InvoiceStateCancelled InvoiceState = "cancelled"
)

// InvoiceType distinguishes customer invoices from the other document kinds
// the accounting platform emits. Collection only acts on customer invoices.

type InvoiceType string

const (
	InvoiceTypeCustomer InvoiceType = "out_invoice"
	InvoiceTypeRefund   InvoiceType = "out_refund"
)

// PaymentState is the invoice-level payment status.

type PaymentState string

const (
	PaymentStateNotPaid PaymentState = "not_paid"
	PaymentStatePaid    PaymentState = "paid"
)

// Invoice is the billing obligation the collection rules evaluate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (payment_state-index): payment_state / due_date
//   - GSI2 (customer_id-index): customer_id / due_date
//
// SettlementDates carries the settlement date of every reconciled payment on
// the invoice; the latest one is what the recidivism rule compares against
// the legal due date.
type Invoice struct {
	ID              string       `json:"id"`
	CustomerID      string       `json:"customer_id"`
	Type            InvoiceType  `json:"type"`
	State           InvoiceState `json:"state"`
	PaymentState    PaymentState `json:"payment_state"`
	DueDate         time.Time    `json:"due_date"`
	Amount          float64      `json:"amount"`
	PaymentPromise  *time.Time   `json:"payment_promise,omitempty"`
	SettlementDates []time.Time  `json:"settlement_dates,omitempty"`
	Notes           []Note       `json:"notes,omitempty"`
}

// ActivePaymentPromise reports whether the customer holds a live payment
// promise. Staleness is derived, never stored: a promise in the past simply
// stops counting.
func (i Invoice) ActivePaymentPromise(now time.Time) bool {
	if i.PaymentPromise == nil {
		return false
	}
	return i.PaymentPromise.After(now)
}

// LatestSettlementDate returns the most recent reconciled settlement date,
// if any payment was reconciled at all.
func (i Invoice) LatestSettlementDate() (time.Time, bool) {
	if len(i.SettlementDates) == 0 {
		return time.Time{}, false
	}
	latest := i.SettlementDates[0]
	for _, d := range i.SettlementDates[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	return latest, true
}

// Collectible reports whether the invoice is even a candidate for collection
// rules: posted customer invoice, still unpaid.
func (i Invoice) Collectible() bool {
	return i.Type == InvoiceTypeCustomer &&
		i.State == InvoiceStatePosted &&
		i.PaymentState == PaymentStateNotPaid
}

// Note is an audit annotation appended to invoices and vehicles whenever the
// engine issues a tracker command.
type Note struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
