package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/usecase/session"
)

type SettingsController struct {
	api     *echo.Group
	session *session.Session
}

func NewSettingsController(api *echo.Group, sess *session.Session) *SettingsController {
	return &SettingsController{api: api, session: sess}
}

// InitSettingsRoutes initializes the settings routes
func (controller *SettingsController) InitSettingsRoutes() {
	controller.api.GET("/settings", controller.GetSettings)
	controller.api.POST("/settings/unit/toggle", controller.ToggleUnit)
}

type settingsResponse struct {
	Unit              string `json:"unit"`
	TemperatureSymbol string `json:"temperatureSymbol"`
}

func (controller *SettingsController) GetSettings(c echo.Context) error {
	snap := controller.session.Snapshot()
	return c.JSON(http.StatusOK, settingsResponse{
		Unit:              string(snap.Unit),
		TemperatureSymbol: snap.Unit.TemperatureSymbol(),
	})
}

// ToggleUnit flips between metric and imperial for every view at once.
func (controller *SettingsController) ToggleUnit(c echo.Context) error {
	snap := controller.session.ToggleUnit()
	return c.JSON(http.StatusOK, settingsResponse{
		Unit:              string(snap.Unit),
		TemperatureSymbol: snap.Unit.TemperatureSymbol(),
	})
}
