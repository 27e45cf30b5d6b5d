package api

import (
	"context"
	"errors"

	"weather-app/internal/domain/model"
)

// ErrUpstream marks transport or parse failures from the weather API. Callers
// that must surface an error state check for it with errors.Is.
var ErrUpstream = errors.New("weather upstream failure")

// WeatherGateway defines the interface for weather and geocoding external API calls.
// All operations are pure request/response: no retry, no caching, no de-duplication
// of in-flight identical requests.
type WeatherGateway interface {
	// SearchLocations searches for locations by free-text query.
	// It degrades to an empty slice on transport or parse failures, so callers
	// cannot distinguish "no matches" from a failed lookup.
	SearchLocations(ctx context.Context, query string, limit int) []model.Location

	// ReverseGeocode resolves a coordinate to the nearest known location.
	// It returns nil on an empty result set or on any failure.
	ReverseGeocode(ctx context.Context, lat, lon float64) *model.Location

	// CurrentWeather fetches current conditions for a location in the given unit.
	// Failures are propagated wrapped in ErrUpstream.
	CurrentWeather(ctx context.Context, loc model.Location, unit model.Unit) (*model.WeatherSnapshot, error)

	// Forecast fetches the 3-hour-interval forecast (5-day horizon, up to 40
	// entries) for a location in the given unit. Entry timestamps carry the
	// location's UTC offset. Failures are propagated wrapped in ErrUpstream.
	Forecast(ctx context.Context, loc model.Location, unit model.Unit) ([]model.ForecastEntry, error)
}
