package interfaces

import (
	"context"

	"frota_cobranca/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (e.g. Mercado Pago).
//
// The collection engine uses it for one thing only: forcing a synchronous
// status re-verification of a payment attempt before deciding whether a
// blocked customer may be unblocked.
type IPaymentGateway interface {
	VerifyTransaction(ctx context.Context, tx entities.GatewayTransaction) (entities.TransactionStatus, error)
}
