package model

// NowView is the payload rendered by the current-conditions view.
type NowView struct {
	Location Location        `json:"location"`
	Unit     Unit            `json:"unit"`
	Weather  WeatherSnapshot `json:"weather"`
	IconURL  string          `json:"iconUrl"`
}

// HourlyDay groups one calendar day of 3-hour entries for intraday display.
type HourlyDay struct {
	Date      string          `json:"date"`
	DayOfWeek string          `json:"dayOfWeek"`
	Entries   []ForecastEntry `json:"entries"`
}

// HourlyView is the payload rendered by the hourly forecast view.
type HourlyView struct {
	Location Location    `json:"location"`
	Unit     Unit        `json:"unit"`
	Days     []HourlyDay `json:"days"`
}

// TenDayView is the payload rendered by the multi-day forecast view.
// The upstream horizon is five days; the view keeps the app's tab name.
type TenDayView struct {
	Location Location       `json:"location"`
	Unit     Unit           `json:"unit"`
	Days     []DailySummary `json:"days"`
}

// MapWeatherPanel is the small current-conditions panel shown on the map view.
type MapWeatherPanel struct {
	Location    Location `json:"location"`
	Unit        Unit     `json:"unit"`
	Temperature float64  `json:"temperature"`
	Description string   `json:"description"`
	IconURL     string   `json:"iconUrl"`
}
