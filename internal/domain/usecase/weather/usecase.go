package weather

import (
	"context"

	"weather-app/internal/domain/usecase/view"
)

// UseCase serves the data views from the session's current location and unit.
type UseCase interface {
	// Now returns the current-conditions view state.
	Now(ctx context.Context) view.State

	// Hourly returns the 3-hour forecast entries grouped by day.
	Hourly(ctx context.Context) view.State

	// TenDay returns the per-day forecast summaries.
	TenDay(ctx context.Context) view.State

	// MapPanel returns the small weather panel shown on the map view.
	MapPanel(ctx context.Context) view.State
}
