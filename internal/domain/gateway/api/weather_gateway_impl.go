package api

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
	"weather-app/pkg/log"
)

const (
	directGeocodingPath  = "/geo/1.0/direct"
	reverseGeocodingPath = "/geo/1.0/reverse"
	currentWeatherPath   = "/data/2.5/weather"
	forecastPath         = "/data/2.5/forecast"
)

// weatherGatewayImpl implements the WeatherGateway interface against an
// OpenWeatherMap-shaped API. The API key travels as the appid query parameter
// on every request.
type weatherGatewayImpl struct {
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with an HTTP client.
func NewWeatherGateway(baseURL string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	if clientOptions.DefaultQueryParams == nil {
		clientOptions.DefaultQueryParams = map[string]string{}
	}
	clientOptions.DefaultQueryParams["appid"] = apiKey

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
	}
}

// SearchLocations searches for locations by free-text query.
func (w *weatherGatewayImpl) SearchLocations(ctx context.Context, query string, limit int) []model.Location {
	successResp, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(directGeocodingPath).
		WithQueryParams(map[string]string{
			"q":     query,
			"limit": strconv.Itoa(limit),
		}).
		WithSuccessResp(&[]external.GeocodingResult{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		// Fail soft: a failed lookup renders the same as no matches.
		log.Warnf("Location search for %q failed, returning no results: %v", query, err)
		return []model.Location{}
	}

	results := successResp.(*[]external.GeocodingResult)
	locations := make([]model.Location, 0, len(*results))
	for _, r := range *results {
		locations = append(locations, geocodingToLocation(r))
	}
	return locations
}

// ReverseGeocode resolves a coordinate to the nearest known location.
func (w *weatherGatewayImpl) ReverseGeocode(ctx context.Context, lat, lon float64) *model.Location {
	successResp, _, _, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(reverseGeocodingPath).
		WithQueryParams(map[string]string{
			"lat":   formatFloat(lat),
			"lon":   formatFloat(lon),
			"limit": "1",
		}).
		WithSuccessResp(&[]external.GeocodingResult{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		log.Warnf("Reverse geocoding for (%v, %v) failed: %v", lat, lon, err)
		return nil
	}

	results := successResp.(*[]external.GeocodingResult)
	if len(*results) == 0 {
		return nil
	}

	loc := geocodingToLocation((*results)[0])
	return &loc
}

// CurrentWeather fetches current conditions for a location in the given unit.
func (w *weatherGatewayImpl) CurrentWeather(ctx context.Context, loc model.Location, unit model.Unit) (*model.WeatherSnapshot, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(currentWeatherPath).
		WithQueryParams(map[string]string{
			"lat":   formatFloat(loc.Lat),
			"lon":   formatFloat(loc.Lon),
			"units": string(unit),
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError("current weather", status, errResp, err)
	}

	response := successResp.(*external.CurrentWeatherResponse)
	if err := response.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return currentToSnapshot(response), nil
}

// Forecast fetches the 3-hour-interval forecast for a location in the given unit.
func (w *weatherGatewayImpl) Forecast(ctx context.Context, loc model.Location, unit model.Unit) ([]model.ForecastEntry, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(map[string]string{
			"lat":   formatFloat(loc.Lat),
			"lon":   formatFloat(loc.Lon),
			"units": string(unit),
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, upstreamError("forecast", status, errResp, err)
	}

	response := successResp.(*external.ForecastResponse)
	if err := response.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	zone := time.FixedZone("forecast-local", response.City.Timezone)
	entries := make([]model.ForecastEntry, 0, len(response.List))
	for _, item := range response.List {
		entries = append(entries, forecastItemToEntry(item, zone))
	}
	return entries, nil
}

// upstreamError folds an API error body, when present, into the ErrUpstream kind.
func upstreamError(operation string, status int, errResp any, err error) error {
	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Message != "" {
		return fmt.Errorf("%w: %s request rejected (status %d): %s", ErrUpstream, operation, status, apiErr.Message)
	}
	return fmt.Errorf("%w: %s request failed: %v", ErrUpstream, operation, err)
}

func geocodingToLocation(r external.GeocodingResult) model.Location {
	return model.Location{
		Name:    r.Name,
		Lat:     r.Lat,
		Lon:     r.Lon,
		Country: r.Country,
		State:   r.State,
	}
}

func currentToSnapshot(r *external.CurrentWeatherResponse) *model.WeatherSnapshot {
	condition := r.Weather[0]
	return &model.WeatherSnapshot{
		Temperature:   r.Main.Temp,
		FeelsLike:     r.Main.FeelsLike,
		TempMin:       r.Main.TempMin,
		TempMax:       r.Main.TempMax,
		Humidity:      r.Main.Humidity,
		Pressure:      r.Main.Pressure,
		Visibility:    r.Visibility,
		WindSpeed:     r.Wind.Speed,
		WindDirection: r.Wind.Deg,
		ConditionCode: condition.ID,
		Description:   condition.Description,
		IconID:        condition.Icon,
		ObservedAt:    time.Unix(r.Dt, 0).UTC(),
	}
}

func forecastItemToEntry(item external.ForecastItemDTO, zone *time.Location) model.ForecastEntry {
	entry := model.ForecastEntry{
		Timestamp:   time.Unix(item.Dt, 0).In(zone),
		Temperature: item.Main.Temp,
		TempMin:     item.Main.TempMin,
		TempMax:     item.Main.TempMax,
	}
	if len(item.Weather) > 0 {
		entry.ConditionCode = item.Weather[0].ID
		entry.Description = item.Weather[0].Description
		entry.IconID = item.Weather[0].Icon
	}
	if item.Pop != nil {
		entry.PrecipitationProbability = *item.Pop
	}
	return entry
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
