package entities

import "strings"

// TrackerState is the last-known engine command state reported by the
// telematics tracker fitted to a vehicle.

type TrackerState string

const (
	TrackerStateNormal  TrackerState = "normal"
	TrackerStateBlocked TrackerState = "blocked"
)

// ParseTrackerState normalizes a raw tracker state string at the boundary.
func ParseTrackerState(raw string) (TrackerState, bool) {
	switch TrackerState(strings.ToLower(strings.TrimSpace(raw))) {
	case TrackerStateNormal:
		return TrackerStateNormal, true
	case TrackerStateBlocked:
		return TrackerStateBlocked, true
	}
	return TrackerStateNormal, false
}

// Vehicle is a leased vehicle linked to at most one tracker device.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (tracker_state-index): tracker_state
//
// TrackerState is a cache of the last successful command outcome; the engine
// re-checks the live device before issuing a new command.
type Vehicle struct {
	ID              string       `json:"id"`
	CustomerID      string       `json:"customer_id"`
	Plate           string       `json:"plate"`
	TrackerDeviceID string       `json:"tracker_device_id"`
	TrackerState    TrackerState `json:"tracker_state"`
	Notes           []Note       `json:"notes,omitempty"`
}

// HasTracker reports whether the vehicle can receive engine commands at all.
func (v Vehicle) HasTracker() bool {
	return strings.TrimSpace(v.TrackerDeviceID) != ""
}
