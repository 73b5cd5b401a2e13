package entities

import (
	"strings"
	"time"
)

// TransactionStatus is the payment gateway's view of a payment attempt,
// independent of the invoice's own payment state. It is a closed enumeration;
// loose provider strings are normalized at the boundary with
// ParseTransactionStatus.

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusOverdue   TransactionStatus = "overdue"
	TransactionStatusDone      TransactionStatus = "done"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusError     TransactionStatus = "error"
)

// ParseTransactionStatus normalizes a raw status string coming from storage
// or an external provider. Unrecognized values map to error so they can never
// silently pass a status gate.
func ParseTransactionStatus(raw string) (TransactionStatus, bool) {
	switch TransactionStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case TransactionStatusPending:
		return TransactionStatusPending, true
	case TransactionStatusOverdue:
		return TransactionStatusOverdue, true
	case TransactionStatusDone:
		return TransactionStatusDone, true
	case TransactionStatusCancelled:
		return TransactionStatusCancelled, true
	}
	return TransactionStatusError, false
}

// Open reports whether the gateway still considers the attempt in flight,
// i.e. worth a synchronous re-verification.
func (s TransactionStatus) Open() bool {
	return s == TransactionStatusPending || s == TransactionStatusOverdue || s == TransactionStatusError
}

// GatewayTransaction is a payment attempt linked to an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
type GatewayTransaction struct {
	ID                string            `json:"id"`
	InvoiceID         string            `json:"invoice_id"`
	Provider          string            `json:"provider"`
	ProviderPaymentID string            `json:"provider_payment_id"`
	Status            TransactionStatus `json:"status"`
	Amount            float64           `json:"amount"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// BlockableByTransactions applies the transaction gate: an invoice with at
// least one non-cancelled gateway transaction is only "really overdue" when
// one of those transactions itself reports an overdue status. A transaction
// in good standing suppresses blocking even past the due date. Invoices with
// no transactions at all are not suppressed.
func BlockableByTransactions(txs []GatewayTransaction) bool {
	active := 0
	for _, tx := range txs {
		if tx.Status == TransactionStatusCancelled {
			continue
		}
		active++
		if tx.Status == TransactionStatusOverdue {
			return true
		}
	}
	return active == 0
}
