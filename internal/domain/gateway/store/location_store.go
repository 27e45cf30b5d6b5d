package store

import (
	"context"

	"weather-app/internal/domain/model"
)

// LocationStore persists the two location documents: the saved-locations list
// and the currently selected location. Each operation is atomic from the
// caller's perspective. The store holds no cached copy of either document;
// the session's in-memory state is the effective truth, and a write failure
// here only means persisted state lags it until the next successful save.
type LocationStore interface {
	// SaveLocations replaces the persisted saved-locations list.
	SaveLocations(ctx context.Context, locations []model.Location) error

	// LoadLocations returns the persisted saved-locations list. An absent or
	// corrupt document yields an empty slice and no error.
	LoadLocations(ctx context.Context) ([]model.Location, error)

	// SaveCurrentLocation replaces the persisted current location.
	SaveCurrentLocation(ctx context.Context, location model.Location) error

	// LoadCurrentLocation returns the persisted current location, or nil when
	// the document is absent or corrupt.
	LoadCurrentLocation(ctx context.Context) (*model.Location, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
