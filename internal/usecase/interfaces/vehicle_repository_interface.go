package interfaces

import (
	"context"

	"frota_cobranca/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// TrackerState here is the last-known command state cache; it is updated
// only after a tracker command succeeds.

type IVehicleRepository interface {
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Vehicle, error)
	ListByTrackerState(ctx context.Context, state entities.TrackerState) ([]entities.Vehicle, error)
	UpdateTrackerState(ctx context.Context, id string, state entities.TrackerState) error
	AppendNote(ctx context.Context, id string, note entities.Note) error
}
