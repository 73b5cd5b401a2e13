package interfaces

import (
	"context"

	"frota_cobranca/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for GatewayTransaction.

type ITransactionRepository interface {
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.GatewayTransaction, error)
	UpdateStatus(ctx context.Context, id string, status entities.TransactionStatus) error
}
