package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/usecase"
	"frota_cobranca/internal/usecase/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentPromiseHandler_CreatePromise(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IPaymentPromiseUseCase) *gin.Engine {
		h := NewPaymentPromiseHandler(uc)
		r := gin.New()
		r.POST("/v1/invoices/:invoice_id/payment-promise", h.CreatePromise)
		return r
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPromiseUseCase(ctrl)
		r := build(uc)

		promise := time.Date(2024, 6, 11, 9, 30, 0, 0, time.UTC)
		uc.EXPECT().CreatePromise(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID:             "inv-1",
			CustomerID:     "cust-1",
			Type:           entities.InvoiceTypeCustomer,
			State:          entities.InvoiceStatePosted,
			PaymentState:   entities.PaymentStateNotPaid,
			DueDate:        time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
			Amount:         450,
			PaymentPromise: &promise,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payment-promise", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "inv-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["payment_promise"] == nil {
			t.Fatalf("expected payment_promise in response body: %s", w.Body.String())
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPromiseUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().CreatePromise(gomock.Any(), "inv-missing").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-missing/payment-promise", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("already paid maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentPromiseUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().CreatePromise(gomock.Any(), "inv-1").Return(entities.Invoice{}, usecase.ErrInvoiceAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payment-promise", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapPromiseError(t *testing.T) {
	if got := mapPromiseError(usecase.ErrInvalidInvoiceID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPromiseError(usecase.ErrInvoiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPromiseError(usecase.ErrInvoiceNotPosted); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapPromiseError(usecase.ErrInvoiceAlreadyPaid); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPromiseError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
