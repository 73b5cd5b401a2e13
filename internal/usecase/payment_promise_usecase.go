package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/usecase/interfaces"
)

const promiseGracePeriod = 24 * time.Hour

var (
	ErrInvoiceNotPosted   = errors.New("invoice is not posted")
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")
)

type IPaymentPromiseUseCase interface {
	CreatePromise(ctx context.Context, invoiceID string) (entities.Invoice, error)
}

// PaymentPromiseUseCase registers a customer's promise to pay, suppressing
// blocks on the invoice for the grace period.
type PaymentPromiseUseCase struct {
	invoices interfaces.IInvoiceRepository

	Now func() time.Time
}

var _ IPaymentPromiseUseCase = (*PaymentPromiseUseCase)(nil)

func NewPaymentPromiseUseCase(invoices interfaces.IInvoiceRepository) *PaymentPromiseUseCase {
	return &PaymentPromiseUseCase{invoices: invoices, Now: time.Now}
}

func (u *PaymentPromiseUseCase) CreatePromise(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	if inv.State != entities.InvoiceStatePosted {
		return entities.Invoice{}, ErrInvoiceNotPosted
	}
	if inv.PaymentState == entities.PaymentStatePaid {
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	}

	promise := u.Now().Add(promiseGracePeriod)
	updated, err := u.invoices.SetPaymentPromise(ctx, invoiceID, promise)
	if err != nil {
		return entities.Invoice{}, err
	}

	log.Printf("[collection][usecase] payment promise registered invoice_id=%s until=%s", invoiceID, promise.Format(time.RFC3339))
	return updated, nil
}
