package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"frota_cobranca/internal/domain/calendar"
	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/domain/policy"
	"frota_cobranca/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrInvalidInvoiceID = errors.New("invalid invoice id")
)

// EvaluateBlockWorthiness is the pure decision function: (invoice, linked
// transactions, recidivism class, calendar, config, now) in, decision out.
// There is no hidden mutable state; the engine re-derives every decision
// from current facts on every run, which is what keeps re-runs idempotent.
func EvaluateBlockWorthiness(inv entities.Invoice, txs []entities.GatewayTransaction, recidivist bool, cal *calendar.BusinessCalendar, cfg policy.Config, now time.Time) entities.Decision {
	d := entities.Decision{
		InvoiceID:  inv.ID,
		CustomerID: inv.CustomerID,
		Outcome:    entities.DecisionSkip,
		Recidivist: recidivist,
	}

	if !inv.Collectible() {
		d.Reason = "not a posted unpaid customer invoice"
		return d
	}
	if inv.ActivePaymentPromise(now) {
		d.Reason = "active payment promise"
		return d
	}
	if !entities.BlockableByTransactions(txs) {
		d.Reason = "gateway transaction in good standing"
		return d
	}

	d.ToleranceDays = policy.ToleranceDays(cfg, recidivist)
	d.DaysOverdue = cal.BusinessDaysOverdue(inv.DueDate, now)

	if policy.CompensationDeferral(cfg, d.ToleranceDays, d.DaysOverdue, now) {
		d.Outcome = entities.DecisionDefer
		d.Reason = "bank compensation window"
		return d
	}
	if d.DaysOverdue > d.ToleranceDays {
		d.Outcome = entities.DecisionBlock
		d.Reason = fmt.Sprintf("%d business days overdue exceeds tolerance of %d", d.DaysOverdue, d.ToleranceDays)
		return d
	}

	d.Reason = "within tolerance"
	return d
}

// IBlockDecisionUseCase runs the block pass and exposes decision previews.

type IBlockDecisionUseCase interface {
	RunBlockPass(ctx context.Context) (entities.BatchReport, error)
	EvaluateInvoice(ctx context.Context, invoiceID string) (entities.Decision, error)
}

// BlockDecisionUseCase orchestrates the block pass: enumerate overdue
// invoices, evaluate each one against the rules and command the trackers of
// block-worthy customers. Every external call inside the loop is caught at
// the smallest scope and recorded in the report; one failing record never
// aborts its siblings.
type BlockDecisionUseCase struct {
	invoices     interfaces.IInvoiceRepository
	transactions interfaces.ITransactionRepository
	vehicles     interfaces.IVehicleRepository
	tracker      interfaces.ITrackerClient
	policies     interfaces.IPolicyStore
	classifier   IRecidivismClassifier
	escalator    INotificationEscalator

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

var _ IBlockDecisionUseCase = (*BlockDecisionUseCase)(nil)

func NewBlockDecisionUseCase(
	invoices interfaces.IInvoiceRepository,
	transactions interfaces.ITransactionRepository,
	vehicles interfaces.IVehicleRepository,
	tracker interfaces.ITrackerClient,
	policies interfaces.IPolicyStore,
	classifier IRecidivismClassifier,
	escalator INotificationEscalator,
) *BlockDecisionUseCase {
	return &BlockDecisionUseCase{
		invoices:     invoices,
		transactions: transactions,
		vehicles:     vehicles,
		tracker:      tracker,
		policies:     policies,
		classifier:   classifier,
		escalator:    escalator,
		Now:          time.Now,
	}
}

func (u *BlockDecisionUseCase) RunBlockPass(ctx context.Context) (entities.BatchReport, error) {
	report := entities.BatchReport{RunID: uuid.NewString(), Kind: "block", StartedAt: u.Now()}

	cfg, err := u.policies.Load()
	if err != nil {
		return report, err
	}
	now := u.Now().In(cfg.Location())

	if !policy.WithinBlockWindow(cfg, now) {
		log.Printf("[collection][usecase] block pass outside window run_id=%s hour=%d window=%02d-%02d",
			report.RunID, now.Hour(), cfg.BlockWindowStartHour, cfg.BlockWindowEndHour)
		report.FinishedAt = u.Now()
		return report, nil
	}

	cal := calendar.NewBrazil()
	today := calendar.DateOnly(now)

	log.Printf("[collection][usecase] block pass start run_id=%s today=%s", report.RunID, today.Format("2006-01-02"))

	overdue, err := u.invoices.ListOverdueUnpaid(ctx, today)
	if err != nil {
		return report, err
	}

	for _, inv := range overdue {
		report.Processed++

		decision, err := u.decide(ctx, inv, cal, cfg, now)
		if err != nil {
			log.Printf("[collection][usecase] decision failed invoice_id=%s err=%v", inv.ID, err)
			report.Fail(entities.BatchFailure{InvoiceID: inv.ID, Err: err.Error()})
			continue
		}

		switch decision.Outcome {
		case entities.DecisionDefer:
			log.Printf("[collection][usecase] block deferred invoice_id=%s reason=%q", inv.ID, decision.Reason)
			report.Deferred++
		case entities.DecisionBlock:
			report.Blocked += u.executeBlock(ctx, inv, decision, &report)
		default:
			report.Skipped++
		}
	}

	report.FinishedAt = u.Now()
	log.Printf("[collection][usecase] block pass done run_id=%s processed=%d blocked=%d deferred=%d skipped=%d failures=%d",
		report.RunID, report.Processed, report.Blocked, report.Deferred, report.Skipped, len(report.Failures))
	return report, nil
}

// EvaluateInvoice is the read-only decision preview: it runs the full rule
// set for one invoice without commanding anything.
func (u *BlockDecisionUseCase) EvaluateInvoice(ctx context.Context, invoiceID string) (entities.Decision, error) {
	if invoiceID == "" {
		return entities.Decision{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Decision{}, err
	}
	if inv.ID == "" {
		return entities.Decision{}, ErrInvoiceNotFound
	}

	cfg, err := u.policies.Load()
	if err != nil {
		return entities.Decision{}, err
	}
	now := u.Now().In(cfg.Location())
	return u.decide(ctx, inv, calendar.NewBrazil(), cfg, now)
}

func (u *BlockDecisionUseCase) decide(ctx context.Context, inv entities.Invoice, cal *calendar.BusinessCalendar, cfg policy.Config, now time.Time) (entities.Decision, error) {
	txs, err := u.transactions.ListByInvoiceID(ctx, inv.ID)
	if err != nil {
		return entities.Decision{}, err
	}

	recidivist, err := u.classifier.IsRecidivist(ctx, inv, cal, cfg)
	if err != nil {
		return entities.Decision{}, err
	}

	return EvaluateBlockWorthiness(inv, txs, recidivist, cal, cfg, now), nil
}

// executeBlock stops the engine of every trackable vehicle the customer has
// that is not already blocked. Returns the number of vehicles blocked.
func (u *BlockDecisionUseCase) executeBlock(ctx context.Context, inv entities.Invoice, decision entities.Decision, report *entities.BatchReport) int {
	vehicles, err := u.vehicles.ListByCustomerID(ctx, inv.CustomerID)
	if err != nil {
		log.Printf("[collection][usecase] vehicle lookup failed invoice_id=%s customer_id=%s err=%v", inv.ID, inv.CustomerID, err)
		report.Fail(entities.BatchFailure{InvoiceID: inv.ID, Err: err.Error()})
		return 0
	}
	if len(vehicles) == 0 {
		log.Printf("[collection][usecase] block expected but customer has no vehicles invoice_id=%s customer_id=%s", inv.ID, inv.CustomerID)
		return 0
	}

	blocked := 0
	for _, v := range vehicles {
		if !v.HasTracker() {
			log.Printf("[collection][usecase] vehicle without tracker vehicle_id=%s customer_id=%s", v.ID, v.CustomerID)
			continue
		}

		state := v.TrackerState
		if live, err := u.tracker.LastCommandState(ctx, v.TrackerDeviceID); err != nil {
			log.Printf("[collection][usecase] tracker state read failed vehicle_id=%s err=%v", v.ID, err)
		} else {
			state = live
		}

		if state == entities.TrackerStateBlocked {
			log.Printf("[collection][usecase] vehicle already blocked vehicle_id=%s invoice_id=%s", v.ID, inv.ID)
			if v.TrackerState != entities.TrackerStateBlocked {
				if err := u.vehicles.UpdateTrackerState(ctx, v.ID, entities.TrackerStateBlocked); err != nil {
					log.Printf("[collection][usecase] tracker state sync failed vehicle_id=%s err=%v", v.ID, err)
				}
			}
			continue
		}

		if err := u.tracker.StopEngine(ctx, v.TrackerDeviceID); err != nil {
			log.Printf("[collection][usecase] stop engine failed vehicle_id=%s invoice_id=%s err=%v", v.ID, inv.ID, err)
			report.Fail(entities.BatchFailure{InvoiceID: inv.ID, VehicleID: v.ID, Err: err.Error()})
			continue
		}
		blocked++
		log.Printf("[collection][usecase] engine stopped vehicle_id=%s plate=%s invoice_id=%s days_overdue=%d",
			v.ID, v.Plate, inv.ID, decision.DaysOverdue)

		if err := u.vehicles.UpdateTrackerState(ctx, v.ID, entities.TrackerStateBlocked); err != nil {
			log.Printf("[collection][usecase] tracker state update failed vehicle_id=%s err=%v", v.ID, err)
		}

		noteAt := u.Now()
		vehicleNote := entities.Note{
			ID:        uuid.NewString(),
			Body:      fmt.Sprintf("Bloqueio de motor: fatura %s com %d dias uteis de atraso (tolerancia %d)", inv.ID, decision.DaysOverdue, decision.ToleranceDays),
			CreatedAt: noteAt,
		}
		if err := u.vehicles.AppendNote(ctx, v.ID, vehicleNote); err != nil {
			log.Printf("[collection][usecase] vehicle note failed vehicle_id=%s err=%v", v.ID, err)
		}
		invoiceNote := entities.Note{
			ID:        uuid.NewString(),
			Body:      fmt.Sprintf("Veiculo %s (%s) bloqueado por inadimplencia", v.ID, v.Plate),
			CreatedAt: noteAt,
		}
		if err := u.invoices.AppendNote(ctx, inv.ID, invoiceNote); err != nil {
			log.Printf("[collection][usecase] invoice note failed invoice_id=%s err=%v", inv.ID, err)
		}
	}

	if blocked > 0 {
		if err := u.escalator.Notify(ctx, inv, TemplateBlockedSettleNow); err != nil {
			log.Printf("[collection][usecase] block notification failed invoice_id=%s err=%v", inv.ID, err)
			report.Fail(entities.BatchFailure{InvoiceID: inv.ID, Err: err.Error()})
		}
	}
	return blocked
}
