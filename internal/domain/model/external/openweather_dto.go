package external

import "errors"

// GeocodingResult represents one entry from the direct or reverse geocoding API.
type GeocodingResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// WeatherConditionDTO represents one weather condition block shared by the
// current-weather and forecast responses.
type WeatherConditionDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainReadingsDTO carries the temperature/humidity/pressure block.
type MainReadingsDTO struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

// WindDTO carries wind speed and direction.
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// CurrentWeatherResponse represents the response from the current weather API.
type CurrentWeatherResponse struct {
	Weather    []WeatherConditionDTO `json:"weather"`
	Main       MainReadingsDTO       `json:"main"`
	Visibility int                   `json:"visibility"`
	Wind       WindDTO               `json:"wind"`
	Dt         int64                 `json:"dt"`
	Name       string                `json:"name"`
}

// Validate rejects response shapes that cannot be rendered.
func (r *CurrentWeatherResponse) Validate() error {
	if len(r.Weather) == 0 {
		return errors.New("current weather response missing weather conditions")
	}
	if r.Dt <= 0 {
		return errors.New("current weather response missing observation time")
	}
	return nil
}

// ForecastItemDTO represents one 3-hour step of the forecast response.
// Pop (probability of precipitation) is optional; a missing value is treated as 0.
type ForecastItemDTO struct {
	Dt      int64                 `json:"dt"`
	Main    MainReadingsDTO       `json:"main"`
	Weather []WeatherConditionDTO `json:"weather"`
	Pop     *float64              `json:"pop,omitempty"`
	DtTxt   string                `json:"dt_txt"`
}

// ForecastCityDTO carries the city metadata returned alongside the forecast list.
type ForecastCityDTO struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// ForecastResponse represents the response from the 3-hour forecast API.
type ForecastResponse struct {
	List []ForecastItemDTO `json:"list"`
	City ForecastCityDTO   `json:"city"`
}

// Validate rejects a forecast payload missing its list.
func (r *ForecastResponse) Validate() error {
	if len(r.List) == 0 {
		return errors.New("forecast response missing list")
	}
	return nil
}

// APIErrorResponse represents error responses from the weather API.
// The cod field is a string on some endpoints and a number on others.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
