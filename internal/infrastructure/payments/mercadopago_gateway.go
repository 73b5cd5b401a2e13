package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"frota_cobranca/internal/domain/entities"
	"frota_cobranca/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway re-verifies payment attempts against Mercado Pago. The
// unblock pass calls it for every open transaction so a boleto settled
// minutes ago is seen before the release decision.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) VerifyTransaction(ctx context.Context, tx entities.GatewayTransaction) (entities.TransactionStatus, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock verify tx_id=%s provider_payment_id=%s status=done", tx.ID, tx.ProviderPaymentID)
		return entities.TransactionStatusDone, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.TransactionStatusError, ErrMercadoPagoGatewayNotConfigured
	}

	providerID, err := strconv.Atoi(tx.ProviderPaymentID)
	if err != nil {
		return entities.TransactionStatusError, fmt.Errorf("invalid provider payment id %q: %w", tx.ProviderPaymentID, err)
	}

	resp, err := g.client.Get(ctx, providerID)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed tx_id=%s provider_payment_id=%d err=%v", tx.ID, providerID, err)
		return entities.TransactionStatusError, err
	}

	status := mapProviderStatus(resp.Status)
	log.Printf("[payment][gateway] verify done tx_id=%s provider_status=%s status=%s", tx.ID, resp.Status, status)
	return status, nil
}

// mapProviderStatus folds Mercado Pago's payment statuses into the closed
// transaction enumeration the rules understand.
func mapProviderStatus(provider string) entities.TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "approved":
		return entities.TransactionStatusDone
	case "pending", "in_process", "authorized", "in_mediation":
		return entities.TransactionStatusPending
	case "rejected":
		return entities.TransactionStatusOverdue
	case "cancelled", "refunded", "charged_back":
		return entities.TransactionStatusCancelled
	}
	return entities.TransactionStatusError
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
