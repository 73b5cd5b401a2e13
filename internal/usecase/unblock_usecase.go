package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"frota_cobranca/internal/domain/calendar"
	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/domain/policy"
	"frota_cobranca/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type IUnblockUseCase interface {
	RunUnblockPass(ctx context.Context) (entities.BatchReport, error)
}

// UnblockUseCase releases blocked vehicles once their owner no longer has any
// block-worthy invoice. Before deciding it re-verifies every open gateway
// transaction so a boleto settled minutes ago counts immediately.
type UnblockUseCase struct {
	invoices     interfaces.IInvoiceRepository
	transactions interfaces.ITransactionRepository
	vehicles     interfaces.IVehicleRepository
	customers    interfaces.ICustomerRepository
	gateway      interfaces.IPaymentGateway
	tracker      interfaces.ITrackerClient
	policies     interfaces.IPolicyStore
	classifier   IRecidivismClassifier
	escalator    INotificationEscalator

	Now func() time.Time
}

var _ IUnblockUseCase = (*UnblockUseCase)(nil)

func NewUnblockUseCase(
	invoices interfaces.IInvoiceRepository,
	transactions interfaces.ITransactionRepository,
	vehicles interfaces.IVehicleRepository,
	customers interfaces.ICustomerRepository,
	gateway interfaces.IPaymentGateway,
	tracker interfaces.ITrackerClient,
	policies interfaces.IPolicyStore,
	classifier IRecidivismClassifier,
	escalator INotificationEscalator,
) *UnblockUseCase {
	return &UnblockUseCase{
		invoices:     invoices,
		transactions: transactions,
		vehicles:     vehicles,
		customers:    customers,
		gateway:      gateway,
		tracker:      tracker,
		policies:     policies,
		classifier:   classifier,
		escalator:    escalator,
		Now:          time.Now,
	}
}

func (u *UnblockUseCase) RunUnblockPass(ctx context.Context) (entities.BatchReport, error) {
	report := entities.BatchReport{RunID: uuid.NewString(), Kind: "unblock", StartedAt: u.Now()}

	cfg, err := u.policies.Load()
	if err != nil {
		return report, err
	}
	now := u.Now().In(cfg.Location())
	cal := calendar.NewBrazil()

	blockedVehicles, err := u.vehicles.ListByTrackerState(ctx, entities.TrackerStateBlocked)
	if err != nil {
		return report, err
	}

	log.Printf("[collection][usecase] unblock pass start run_id=%s blocked_vehicles=%d", report.RunID, len(blockedVehicles))

	byCustomer := make(map[string][]entities.Vehicle)
	for _, v := range blockedVehicles {
		byCustomer[v.CustomerID] = append(byCustomer[v.CustomerID], v)
	}

	for customerID, vehicles := range byCustomer {
		report.Processed++

		worthy, err := u.customerStillBlockWorthy(ctx, customerID, cal, cfg, now)
		if err != nil {
			log.Printf("[collection][usecase] unblock evaluation failed customer_id=%s err=%v", customerID, err)
			report.Fail(entities.BatchFailure{InvoiceID: "", Err: fmt.Sprintf("customer %s: %v", customerID, err)})
			continue
		}
		if worthy {
			report.Skipped++
			continue
		}

		released := 0
		for _, v := range vehicles {
			if u.releaseVehicle(ctx, v, &report) {
				released++
			}
		}
		report.Unblocked += released

		if released > 0 {
			if err := u.escalator.NotifyUnblocked(ctx, customerID); err != nil {
				log.Printf("[collection][usecase] unblock notification failed customer_id=%s err=%v", customerID, err)
			}
		}
	}

	report.FinishedAt = u.Now()
	log.Printf("[collection][usecase] unblock pass done run_id=%s processed=%d unblocked=%d skipped=%d failures=%d",
		report.RunID, report.Processed, report.Unblocked, report.Skipped, len(report.Failures))
	return report, nil
}

// customerStillBlockWorthy re-runs the full decision for every unpaid invoice
// of the customer. A Defer outcome keeps the customer blocked: deferral only
// postpones a pending block, it never releases one. Verification or decision
// errors also keep the customer blocked; releasing on partial information is
// the one mistake this pass must not make.
func (u *UnblockUseCase) customerStillBlockWorthy(ctx context.Context, customerID string, cal *calendar.BusinessCalendar, cfg policy.Config, now time.Time) (bool, error) {
	unpaid, err := u.invoices.ListUnpaidByCustomer(ctx, customerID)
	if err != nil {
		return true, err
	}

	for _, inv := range unpaid {
		txs, err := u.refreshTransactions(ctx, inv.ID)
		if err != nil {
			return true, err
		}

		recidivist, err := u.classifier.IsRecidivist(ctx, inv, cal, cfg)
		if err != nil {
			return true, err
		}

		decision := EvaluateBlockWorthiness(inv, txs, recidivist, cal, cfg, now)
		if decision.Outcome == entities.DecisionBlock || decision.Outcome == entities.DecisionDefer {
			log.Printf("[collection][usecase] customer still block-worthy customer_id=%s invoice_id=%s reason=%q",
				customerID, inv.ID, decision.Reason)
			return true, nil
		}
	}
	return false, nil
}

// refreshTransactions re-verifies every open transaction against the gateway
// and persists status changes. A single transaction failing verification
// keeps its stored status rather than failing the whole invoice.
func (u *UnblockUseCase) refreshTransactions(ctx context.Context, invoiceID string) ([]entities.GatewayTransaction, error) {
	txs, err := u.transactions.ListByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if u.gateway == nil {
		// No gateway configured; decide on stored statuses.
		return txs, nil
	}

	for i, tx := range txs {
		if !tx.Status.Open() {
			continue
		}
		status, err := u.gateway.VerifyTransaction(ctx, tx)
		if err != nil {
			log.Printf("[collection][usecase] transaction verify failed tx_id=%s invoice_id=%s err=%v", tx.ID, invoiceID, err)
			continue
		}
		if status == tx.Status {
			continue
		}
		log.Printf("[collection][usecase] transaction status changed tx_id=%s invoice_id=%s from=%s to=%s",
			tx.ID, invoiceID, tx.Status, status)
		if err := u.transactions.UpdateStatus(ctx, tx.ID, status); err != nil {
			log.Printf("[collection][usecase] transaction update failed tx_id=%s err=%v", tx.ID, err)
			continue
		}
		txs[i].Status = status
	}
	return txs, nil
}

func (u *UnblockUseCase) releaseVehicle(ctx context.Context, v entities.Vehicle, report *entities.BatchReport) bool {
	if !v.HasTracker() {
		log.Printf("[collection][usecase] blocked vehicle without tracker vehicle_id=%s", v.ID)
		return false
	}

	if live, err := u.tracker.LastCommandState(ctx, v.TrackerDeviceID); err != nil {
		log.Printf("[collection][usecase] tracker state read failed vehicle_id=%s err=%v", v.ID, err)
	} else if live == entities.TrackerStateNormal {
		log.Printf("[collection][usecase] vehicle already released vehicle_id=%s", v.ID)
		if err := u.vehicles.UpdateTrackerState(ctx, v.ID, entities.TrackerStateNormal); err != nil {
			log.Printf("[collection][usecase] tracker state sync failed vehicle_id=%s err=%v", v.ID, err)
		}
		return false
	}

	if err := u.tracker.ResumeEngine(ctx, v.TrackerDeviceID); err != nil {
		log.Printf("[collection][usecase] resume engine failed vehicle_id=%s err=%v", v.ID, err)
		report.Fail(entities.BatchFailure{VehicleID: v.ID, Err: err.Error()})
		return false
	}
	log.Printf("[collection][usecase] engine released vehicle_id=%s plate=%s customer_id=%s", v.ID, v.Plate, v.CustomerID)

	if err := u.vehicles.UpdateTrackerState(ctx, v.ID, entities.TrackerStateNormal); err != nil {
		log.Printf("[collection][usecase] tracker state update failed vehicle_id=%s err=%v", v.ID, err)
	}

	note := entities.Note{
		ID:        uuid.NewString(),
		Body:      "Bloqueio de motor removido: pendencias regularizadas",
		CreatedAt: u.Now(),
	}
	if err := u.vehicles.AppendNote(ctx, v.ID, note); err != nil {
		log.Printf("[collection][usecase] vehicle note failed vehicle_id=%s err=%v", v.ID, err)
	}
	return true
}
