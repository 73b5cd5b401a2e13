package interfaces

import (
	"context"

	"frota_cobranca/internal/domain/entities"
)

// ITrackerClient abstracts the vehicle telematics platform (e.g. Traccar).
//
// Commands are synchronous and blocking; callers catch and log failures and
// carry on with sibling vehicles.
type ITrackerClient interface {
	StopEngine(ctx context.Context, deviceID string) error
	ResumeEngine(ctx context.Context, deviceID string) error
	LastCommandState(ctx context.Context, deviceID string) (entities.TrackerState, error)
}
