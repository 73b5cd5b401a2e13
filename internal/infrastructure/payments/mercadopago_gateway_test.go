package payments

import (
	"context"
	"testing"

	"frota_cobranca/internal/domain/entities"
)

func TestMapProviderStatus(t *testing.T) {
	cases := []struct {
		provider string
		want     entities.TransactionStatus
	}{
		{"approved", entities.TransactionStatusDone},
		{"APPROVED", entities.TransactionStatusDone},
		{"pending", entities.TransactionStatusPending},
		{"in_process", entities.TransactionStatusPending},
		{"authorized", entities.TransactionStatusPending},
		{"in_mediation", entities.TransactionStatusPending},
		{"rejected", entities.TransactionStatusOverdue},
		{"cancelled", entities.TransactionStatusCancelled},
		{"refunded", entities.TransactionStatusCancelled},
		{"charged_back", entities.TransactionStatusCancelled},
		{"something_new", entities.TransactionStatusError},
		{"", entities.TransactionStatusError},
	}

	for _, tc := range cases {
		if got := mapProviderStatus(tc.provider); got != tc.want {
			t.Fatalf("mapProviderStatus(%q) = %s, want %s", tc.provider, got, tc.want)
		}
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	g, err := NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := g.VerifyTransaction(context.Background(), entities.GatewayTransaction{ID: "tx-1", ProviderPaymentID: "123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.TransactionStatusDone {
		t.Fatalf("mock mode must settle transactions, got %s", status)
	}
}

func TestMercadoPagoGateway_MissingToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway(""); err != ErrMissingMercadoPagoAccessToken {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}
