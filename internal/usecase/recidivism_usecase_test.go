package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"frota_cobranca/internal/domain/calendar"
	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/domain/policy"
	mock_interfaces "frota_cobranca/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecidivismClassifier_IsRecidivist(t *testing.T) {
	cal := calendar.NewBrazil()
	cfg := policy.Default()

	current := entities.Invoice{
		ID:           "inv-current",
		CustomerID:   "cust-1",
		Type:         entities.InvoiceTypeCustomer,
		State:        entities.InvoiceStatePosted,
		PaymentState: entities.PaymentStateNotPaid,
		DueDate:      day(2024, time.July, 1),
	}

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		c := NewRecidivismClassifier(repo)

		repo.EXPECT().
			ListPostedByCustomerDueBetween(gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db"))

		_, err := c.IsRecidivist(context.Background(), current, cal, cfg)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("lookback window bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		c := NewRecidivismClassifier(repo)

		from := day(2024, time.July, 1).AddDate(0, 0, -cfg.RecidivismWindowDays)
		repo.EXPECT().
			ListPostedByCustomerDueBetween(gomock.Any(), "cust-1", from, day(2024, time.July, 1)).
			Return(nil, nil)

		got, err := c.IsRecidivist(context.Background(), current, cal, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Fatalf("expected non-recidivist with empty history")
		}
	})

	t.Run("unpaid prior flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		c := NewRecidivismClassifier(repo)

		repo.EXPECT().
			ListPostedByCustomerDueBetween(gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).
			Return([]entities.Invoice{{
				ID:           "inv-prior",
				CustomerID:   "cust-1",
				PaymentState: entities.PaymentStateNotPaid,
				DueDate:      day(2024, time.June, 10),
			}}, nil)

		got, err := c.IsRecidivist(context.Background(), current, cal, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Fatalf("expected recidivist with unpaid prior")
		}
	})

	t.Run("settled on legal due date does not flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		c := NewRecidivismClassifier(repo)

		// Due Saturday 2024-06-01; legal due date rolls to Monday 2024-06-03.
		repo.EXPECT().
			ListPostedByCustomerDueBetween(gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).
			Return([]entities.Invoice{{
				ID:              "inv-prior",
				CustomerID:      "cust-1",
				PaymentState:    entities.PaymentStatePaid,
				DueDate:         day(2024, time.June, 1),
				SettlementDates: []time.Time{day(2024, time.June, 3)},
			}}, nil)

		got, err := c.IsRecidivist(context.Background(), current, cal, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Fatalf("settlement on the next working day must not flag")
		}
	})

	t.Run("settled after legal due date flags", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		c := NewRecidivismClassifier(repo)

		repo.EXPECT().
			ListPostedByCustomerDueBetween(gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).
			Return([]entities.Invoice{{
				ID:              "inv-prior",
				CustomerID:      "cust-1",
				PaymentState:    entities.PaymentStatePaid,
				DueDate:         day(2024, time.June, 1),
				SettlementDates: []time.Time{day(2024, time.June, 4)},
			}}, nil)

		got, err := c.IsRecidivist(context.Background(), current, cal, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Fatalf("expected recidivist for settlement past the legal due date")
		}
	})

	t.Run("latest settlement wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		c := NewRecidivismClassifier(repo)

		// Partial payment on time, remainder late.
		repo.EXPECT().
			ListPostedByCustomerDueBetween(gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).
			Return([]entities.Invoice{{
				ID:              "inv-prior",
				CustomerID:      "cust-1",
				PaymentState:    entities.PaymentStatePaid,
				DueDate:         day(2024, time.June, 10),
				SettlementDates: []time.Time{day(2024, time.June, 10), day(2024, time.June, 14)},
			}}, nil)

		got, err := c.IsRecidivist(context.Background(), current, cal, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got {
			t.Fatalf("expected recidivist when the last settlement is late")
		}
	})

	t.Run("paid without settlement dates is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		c := NewRecidivismClassifier(repo)

		repo.EXPECT().
			ListPostedByCustomerDueBetween(gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).
			Return([]entities.Invoice{{
				ID:           "inv-prior",
				CustomerID:   "cust-1",
				PaymentState: entities.PaymentStatePaid,
				DueDate:      day(2024, time.June, 10),
			}}, nil)

		got, err := c.IsRecidivist(context.Background(), current, cal, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Fatalf("paid prior without settlement facts must not flag")
		}
	})

	t.Run("the invoice under evaluation is excluded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		c := NewRecidivismClassifier(repo)

		repo.EXPECT().
			ListPostedByCustomerDueBetween(gomock.Any(), "cust-1", gomock.Any(), gomock.Any()).
			Return([]entities.Invoice{{
				ID:           "inv-current",
				CustomerID:   "cust-1",
				PaymentState: entities.PaymentStateNotPaid,
				DueDate:      day(2024, time.July, 1),
			}}, nil)

		got, err := c.IsRecidivist(context.Background(), current, cal, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got {
			t.Fatalf("an invoice must not classify its own customer by itself")
		}
	})
}
