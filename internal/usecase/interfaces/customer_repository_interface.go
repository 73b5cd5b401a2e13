package interfaces

import (
	"context"

	"frota_cobranca/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
}
