package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frota_cobranca/internal/domain/calendar"
	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/domain/policy"
	"frota_cobranca/internal/usecase"
	mock_interfaces "frota_cobranca/internal/usecase/interfaces/mocks"
	mock_usecase "frota_cobranca/internal/usecase/mocks"

	"go.uber.org/mock/gomock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func utcConfig() policy.Config {
	cfg := policy.Default()
	cfg.Timezone = "UTC"
	return cfg
}

func collectibleInvoice(id, customerID string, due time.Time) entities.Invoice {
	return entities.Invoice{
		ID:           id,
		CustomerID:   customerID,
		Type:         entities.InvoiceTypeCustomer,
		State:        entities.InvoiceStatePosted,
		PaymentState: entities.PaymentStateNotPaid,
		DueDate:      due,
		Amount:       450,
	}
}

func TestEvaluateBlockWorthiness(t *testing.T) {
	cal := calendar.NewBrazil()
	cfg := utcConfig()
	// Monday mid-morning.
	now := time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)

	t.Run("draft invoice is skipped", func(t *testing.T) {
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		inv.State = entities.InvoiceStateDraft

		d := usecase.EvaluateBlockWorthiness(inv, nil, false, cal, cfg, now)
		if d.Outcome != entities.DecisionSkip {
			t.Fatalf("expected skip, got %s (%s)", d.Outcome, d.Reason)
		}
	})

	t.Run("active payment promise suppresses the block", func(t *testing.T) {
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		promise := now.Add(2 * time.Hour)
		inv.PaymentPromise = &promise

		d := usecase.EvaluateBlockWorthiness(inv, nil, false, cal, cfg, now)
		if d.Outcome != entities.DecisionSkip {
			t.Fatalf("expected skip, got %s (%s)", d.Outcome, d.Reason)
		}
	})

	t.Run("expired payment promise does not suppress", func(t *testing.T) {
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		promise := now.Add(-time.Hour)
		inv.PaymentPromise = &promise

		d := usecase.EvaluateBlockWorthiness(inv, nil, false, cal, cfg, now)
		if d.Outcome != entities.DecisionBlock {
			t.Fatalf("expected block, got %s (%s)", d.Outcome, d.Reason)
		}
	})

	t.Run("pending transaction is good standing", func(t *testing.T) {
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		txs := []entities.GatewayTransaction{{ID: "tx-1", Status: entities.TransactionStatusPending}}

		d := usecase.EvaluateBlockWorthiness(inv, txs, false, cal, cfg, now)
		if d.Outcome != entities.DecisionSkip {
			t.Fatalf("expected skip, got %s (%s)", d.Outcome, d.Reason)
		}
	})

	t.Run("overdue transaction removes the shield", func(t *testing.T) {
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		txs := []entities.GatewayTransaction{
			{ID: "tx-1", Status: entities.TransactionStatusPending},
			{ID: "tx-2", Status: entities.TransactionStatusOverdue},
		}

		d := usecase.EvaluateBlockWorthiness(inv, txs, false, cal, cfg, now)
		if d.Outcome != entities.DecisionBlock {
			t.Fatalf("expected block, got %s (%s)", d.Outcome, d.Reason)
		}
	})

	t.Run("within tolerance", func(t *testing.T) {
		// Due Thursday: Friday and Monday make 2 business days overdue.
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 6))

		d := usecase.EvaluateBlockWorthiness(inv, nil, false, cal, cfg, now)
		if d.Outcome != entities.DecisionSkip {
			t.Fatalf("expected skip, got %s (%s)", d.Outcome, d.Reason)
		}
		if d.DaysOverdue != 2 || d.ToleranceDays != 2 {
			t.Fatalf("unexpected counters: %+v", d)
		}
	})

	t.Run("past tolerance blocks", func(t *testing.T) {
		// Due Wednesday: Thursday, Friday and Monday make 3 business days.
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))

		d := usecase.EvaluateBlockWorthiness(inv, nil, false, cal, cfg, now)
		if d.Outcome != entities.DecisionBlock {
			t.Fatalf("expected block, got %s (%s)", d.Outcome, d.Reason)
		}
		if d.DaysOverdue != 3 {
			t.Fatalf("expected 3 days overdue, got %d", d.DaysOverdue)
		}
	})

	t.Run("recidivist day one defers before the compensation cutoff", func(t *testing.T) {
		// Due Friday, evaluated Monday: 1 business day overdue, tolerance 0.
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 7))

		d := usecase.EvaluateBlockWorthiness(inv, nil, true, cal, cfg, now)
		if d.Outcome != entities.DecisionDefer {
			t.Fatalf("expected defer, got %s (%s)", d.Outcome, d.Reason)
		}
		if d.ToleranceDays != 0 || !d.Recidivist {
			t.Fatalf("unexpected decision: %+v", d)
		}
	})

	t.Run("recidivist day one blocks after the cutoff", func(t *testing.T) {
		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 7))
		afternoon := time.Date(2024, time.June, 10, 13, 0, 0, 0, time.UTC)

		d := usecase.EvaluateBlockWorthiness(inv, nil, true, cal, cfg, afternoon)
		if d.Outcome != entities.DecisionBlock {
			t.Fatalf("expected block, got %s (%s)", d.Outcome, d.Reason)
		}
	})
}

func TestBlockDecisionUseCase_RunBlockPass(t *testing.T) {
	monday10h := time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)

	newUC := func(ctrl *gomock.Controller) (*usecase.BlockDecisionUseCase, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockITransactionRepository, *mock_interfaces.MockIVehicleRepository, *mock_interfaces.MockITrackerClient, *mock_interfaces.MockIPolicyStore, *mock_usecase.MockIRecidivismClassifier, *mock_usecase.MockINotificationEscalator) {
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		vehicles := mock_interfaces.NewMockIVehicleRepository(ctrl)
		tracker := mock_interfaces.NewMockITrackerClient(ctrl)
		policies := mock_interfaces.NewMockIPolicyStore(ctrl)
		classifier := mock_usecase.NewMockIRecidivismClassifier(ctrl)
		escalator := mock_usecase.NewMockINotificationEscalator(ctrl)

		uc := usecase.NewBlockDecisionUseCase(invoices, transactions, vehicles, tracker, policies, classifier, escalator)
		uc.Now = func() time.Time { return monday10h }
		return uc, invoices, transactions, vehicles, tracker, policies, classifier, escalator
	}

	t.Run("policy load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, policies, _, _ := newUC(ctrl)

		policies.EXPECT().Load().Return(policy.Config{}, errors.New("config"))

		_, err := uc.RunBlockPass(context.Background())
		if err == nil || err.Error() != "config" {
			t.Fatalf("expected config error, got %v", err)
		}
	})

	t.Run("outside the block window is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _, policies, _, _ := newUC(ctrl)

		policies.EXPECT().Load().Return(utcConfig(), nil)
		uc.Now = func() time.Time { return time.Date(2024, time.June, 10, 5, 0, 0, 0, time.UTC) }

		report, err := uc.RunBlockPass(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Processed != 0 || report.Blocked != 0 {
			t.Fatalf("expected empty report, got %+v", report)
		}
	})

	t.Run("blocks a vehicle past tolerance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, invoices, transactions, vehicles, tracker, policies, classifier, escalator := newUC(ctrl)

		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		vehicle := entities.Vehicle{
			ID:              "veh-1",
			CustomerID:      "cust-1",
			Plate:           "ABC1D23",
			TrackerDeviceID: "dev-1",
			TrackerState:    entities.TrackerStateNormal,
		}

		policies.EXPECT().Load().Return(utcConfig(), nil)
		invoices.EXPECT().ListOverdueUnpaid(gomock.Any(), date(2024, time.June, 10)).Return([]entities.Invoice{inv}, nil)
		transactions.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		classifier.EXPECT().IsRecidivist(gomock.Any(), inv, gomock.Any(), gomock.Any()).Return(false, nil)
		vehicles.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Vehicle{vehicle}, nil)
		tracker.EXPECT().LastCommandState(gomock.Any(), "dev-1").Return(entities.TrackerStateNormal, nil)
		tracker.EXPECT().StopEngine(gomock.Any(), "dev-1").Return(nil)
		vehicles.EXPECT().UpdateTrackerState(gomock.Any(), "veh-1", entities.TrackerStateBlocked).Return(nil)
		vehicles.EXPECT().AppendNote(gomock.Any(), "veh-1", gomock.Any()).Return(nil)
		invoices.EXPECT().AppendNote(gomock.Any(), "inv-1", gomock.Any()).Return(nil)
		escalator.EXPECT().Notify(gomock.Any(), inv, usecase.TemplateBlockedSettleNow).Return(nil)

		report, err := uc.RunBlockPass(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Processed != 1 || report.Blocked != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if len(report.Failures) != 0 {
			t.Fatalf("unexpected failures: %+v", report.Failures)
		}
	})

	t.Run("already blocked vehicle is not commanded again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, invoices, transactions, vehicles, tracker, policies, classifier, _ := newUC(ctrl)

		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		vehicle := entities.Vehicle{
			ID:              "veh-1",
			CustomerID:      "cust-1",
			TrackerDeviceID: "dev-1",
			TrackerState:    entities.TrackerStateNormal,
		}

		policies.EXPECT().Load().Return(utcConfig(), nil)
		invoices.EXPECT().ListOverdueUnpaid(gomock.Any(), gomock.Any()).Return([]entities.Invoice{inv}, nil)
		transactions.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		classifier.EXPECT().IsRecidivist(gomock.Any(), inv, gomock.Any(), gomock.Any()).Return(false, nil)
		vehicles.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Vehicle{vehicle}, nil)
		// Live tracker state wins over the stale cache; the cache is synced.
		tracker.EXPECT().LastCommandState(gomock.Any(), "dev-1").Return(entities.TrackerStateBlocked, nil)
		vehicles.EXPECT().UpdateTrackerState(gomock.Any(), "veh-1", entities.TrackerStateBlocked).Return(nil)

		report, err := uc.RunBlockPass(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Blocked != 0 {
			t.Fatalf("expected no new blocks, got %+v", report)
		}
	})

	t.Run("deferred invoice only counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, invoices, transactions, _, _, policies, classifier, _ := newUC(ctrl)

		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 7))

		policies.EXPECT().Load().Return(utcConfig(), nil)
		invoices.EXPECT().ListOverdueUnpaid(gomock.Any(), gomock.Any()).Return([]entities.Invoice{inv}, nil)
		transactions.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		classifier.EXPECT().IsRecidivist(gomock.Any(), inv, gomock.Any(), gomock.Any()).Return(true, nil)

		report, err := uc.RunBlockPass(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Deferred != 1 || report.Blocked != 0 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("one failing record does not abort its siblings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, invoices, transactions, _, _, policies, classifier, _ := newUC(ctrl)

		bad := collectibleInvoice("inv-bad", "cust-1", date(2024, time.June, 5))
		good := collectibleInvoice("inv-good", "cust-2", date(2024, time.June, 6))

		policies.EXPECT().Load().Return(utcConfig(), nil)
		invoices.EXPECT().ListOverdueUnpaid(gomock.Any(), gomock.Any()).Return([]entities.Invoice{bad, good}, nil)
		transactions.EXPECT().ListByInvoiceID(gomock.Any(), "inv-bad").Return(nil, errors.New("db"))
		transactions.EXPECT().ListByInvoiceID(gomock.Any(), "inv-good").Return(nil, nil)
		classifier.EXPECT().IsRecidivist(gomock.Any(), good, gomock.Any(), gomock.Any()).Return(false, nil)

		report, err := uc.RunBlockPass(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Processed != 2 || report.Skipped != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if len(report.Failures) != 1 || report.Failures[0].InvoiceID != "inv-bad" {
			t.Fatalf("unexpected failures: %+v", report.Failures)
		}
	})

	t.Run("stop engine failure is isolated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, invoices, transactions, vehicles, tracker, policies, classifier, _ := newUC(ctrl)

		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		vehicle := entities.Vehicle{ID: "veh-1", CustomerID: "cust-1", TrackerDeviceID: "dev-1"}

		policies.EXPECT().Load().Return(utcConfig(), nil)
		invoices.EXPECT().ListOverdueUnpaid(gomock.Any(), gomock.Any()).Return([]entities.Invoice{inv}, nil)
		transactions.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		classifier.EXPECT().IsRecidivist(gomock.Any(), inv, gomock.Any(), gomock.Any()).Return(false, nil)
		vehicles.EXPECT().ListByCustomerID(gomock.Any(), "cust-1").Return([]entities.Vehicle{vehicle}, nil)
		tracker.EXPECT().LastCommandState(gomock.Any(), "dev-1").Return(entities.TrackerStateNormal, nil)
		tracker.EXPECT().StopEngine(gomock.Any(), "dev-1").Return(errors.New("timeout"))

		report, err := uc.RunBlockPass(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Blocked != 0 || len(report.Failures) != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if report.Failures[0].VehicleID != "veh-1" {
			t.Fatalf("unexpected failure: %+v", report.Failures[0])
		}
	})
}

func TestBlockDecisionUseCase_EvaluateInvoice(t *testing.T) {
	monday10h := time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)

	t.Run("invalid id", func(t *testing.T) {
		uc := usecase.NewBlockDecisionUseCase(nil, nil, nil, nil, nil, nil, nil)
		_, err := uc.EvaluateInvoice(context.Background(), "")
		if !errors.Is(err, usecase.ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := usecase.NewBlockDecisionUseCase(invoices, nil, nil, nil, nil, nil, nil)

		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, nil)

		_, err := uc.EvaluateInvoice(context.Background(), "inv-1")
		if !errors.Is(err, usecase.ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("preview does not command anything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		transactions := mock_interfaces.NewMockITransactionRepository(ctrl)
		policies := mock_interfaces.NewMockIPolicyStore(ctrl)
		classifier := mock_usecase.NewMockIRecidivismClassifier(ctrl)

		uc := usecase.NewBlockDecisionUseCase(invoices, transactions, nil, nil, policies, classifier, nil)
		uc.Now = func() time.Time { return monday10h }

		inv := collectibleInvoice("inv-1", "cust-1", date(2024, time.June, 5))
		invoices.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)
		policies.EXPECT().Load().Return(utcConfig(), nil)
		transactions.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, nil)
		classifier.EXPECT().IsRecidivist(gomock.Any(), inv, gomock.Any(), gomock.Any()).Return(false, nil)

		d, err := uc.EvaluateInvoice(context.Background(), "inv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Outcome != entities.DecisionBlock || d.DaysOverdue != 3 {
			t.Fatalf("unexpected decision: %+v", d)
		}
	})
}
