package model

import "time"

// Unit is the measurement system used for weather fetches and display formatting.
type Unit string

const (
	UnitMetric   Unit = "metric"
	UnitImperial Unit = "imperial"
)

// Toggle flips between metric and imperial.
func (u Unit) Toggle() Unit {
	if u == UnitMetric {
		return UnitImperial
	}
	return UnitMetric
}

// TemperatureSymbol returns the display symbol for the unit's temperature scale.
func (u Unit) TemperatureSymbol() string {
	if u == UnitImperial {
		return "°F"
	}
	return "°C"
}

// WeatherSnapshot is a current-conditions reading. It is fetched fresh on every
// view refresh and never persisted.
type WeatherSnapshot struct {
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feelsLike"`
	TempMin       float64   `json:"tempMin"`
	TempMax       float64   `json:"tempMax"`
	Humidity      int       `json:"humidity"`
	Pressure      int       `json:"pressure"`
	Visibility    int       `json:"visibility"`
	WindSpeed     float64   `json:"windSpeed"`
	WindDirection int       `json:"windDirection"`
	ConditionCode int       `json:"conditionCode"`
	Description   string    `json:"description"`
	IconID        string    `json:"iconId"`
	ObservedAt    time.Time `json:"observedAt"`
}

// ForecastEntry is one 3-hour-resolution forecast record. Timestamps carry the
// forecast location's UTC offset so calendar grouping happens in local time.
type ForecastEntry struct {
	Timestamp                time.Time `json:"timestamp"`
	Temperature              float64   `json:"temperature"`
	TempMin                  float64   `json:"tempMin"`
	TempMax                  float64   `json:"tempMax"`
	ConditionCode            int       `json:"conditionCode"`
	Description              string    `json:"description"`
	IconID                   string    `json:"iconId"`
	PrecipitationProbability float64   `json:"precipitationProbability"`
}

// IconURL returns the image URL for a weather icon identifier.
func IconURL(iconID string) string {
	return "https://openweathermap.org/img/wn/" + iconID + "@2x.png"
}
