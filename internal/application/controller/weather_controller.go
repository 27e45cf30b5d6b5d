package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/usecase/view"
	"weather-app/internal/domain/usecase/weather"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes the data view routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/now", controller.Now)
	controller.api.GET("/weather/hourly", controller.Hourly)
	controller.api.GET("/weather/ten-day", controller.TenDay)
}

func (controller *WeatherController) Now(c echo.Context) error {
	return viewResponse(c, controller.useCase.Now(c.Request().Context()))
}

func (controller *WeatherController) Hourly(c echo.Context) error {
	return viewResponse(c, controller.useCase.Hourly(c.Request().Context()))
}

func (controller *WeatherController) TenDay(c echo.Context) error {
	return viewResponse(c, controller.useCase.TenDay(c.Request().Context()))
}

// viewResponse renders a view state; an error phase maps to 502 because the
// failure always originates upstream of this service.
func viewResponse(c echo.Context, state view.State) error {
	if state.Phase == view.PhaseError {
		return c.JSON(http.StatusBadGateway, state)
	}
	return c.JSON(http.StatusOK, state)
}
