package usecase

import (
	"context"
	"log"

	"frota_cobranca/internal/domain/calendar"
	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/domain/policy"
	"frota_cobranca/internal/usecase/interfaces"
)

// IRecidivismClassifier decides whether the customer behind an invoice has a
// history of late payment inside the configured lookback window. The policy
// config and business calendar are resolved once per batch by the caller and
// passed in; the classifier keeps no per-run state.

type IRecidivismClassifier interface {
	IsRecidivist(ctx context.Context, inv entities.Invoice, cal *calendar.BusinessCalendar, cfg policy.Config) (bool, error)
}

// RecidivismClassifier inspects the customer's other posted invoices with
// due date in [dueDate - windowDays, dueDate). A prior invoice flags the
// customer when it is still unpaid, or when it was settled strictly after its
// legal due date (the nominal due date advanced to the next working day when
// it fell on a non-working day). One pass, early exit on the first hit.
type RecidivismClassifier struct {
	invoices interfaces.IInvoiceRepository
}

var _ IRecidivismClassifier = (*RecidivismClassifier)(nil)

func NewRecidivismClassifier(invoices interfaces.IInvoiceRepository) *RecidivismClassifier {
	return &RecidivismClassifier{invoices: invoices}
}

func (c *RecidivismClassifier) IsRecidivist(ctx context.Context, inv entities.Invoice, cal *calendar.BusinessCalendar, cfg policy.Config) (bool, error) {
	due := calendar.DateOnly(inv.DueDate)
	from := due.AddDate(0, 0, -cfg.RecidivismWindowDays)

	priors, err := c.invoices.ListPostedByCustomerDueBetween(ctx, inv.CustomerID, from, due)
	if err != nil {
		return false, err
	}

	for _, prior := range priors {
		if prior.ID == inv.ID {
			continue
		}

		if prior.PaymentState != entities.PaymentStatePaid {
			log.Printf("[recidivism][usecase] customer flagged by unpaid prior customer_id=%s prior_invoice_id=%s", inv.CustomerID, prior.ID)
			return true, nil
		}

		settled, ok := prior.LatestSettlementDate()
		if !ok {
			// Paid with no reconciled settlement recorded: the facts are
			// incomplete, so the invoice cannot prove lateness.
			log.Printf("[recidivism][usecase] paid prior without settlement dates customer_id=%s prior_invoice_id=%s", inv.CustomerID, prior.ID)
			continue
		}

		legalDue := cal.NextWorkingDay(prior.DueDate)
		if calendar.DateOnly(settled).After(legalDue) {
			log.Printf("[recidivism][usecase] customer flagged by late settlement customer_id=%s prior_invoice_id=%s settled=%s legal_due=%s",
				inv.CustomerID, prior.ID, settled.Format("2006-01-02"), legalDue.Format("2006-01-02"))
			return true, nil
		}
	}
	return false, nil
}
