package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/picker"
	"weather-app/internal/domain/usecase/weather"
	"weather-app/internal/domain/usecase/view"
)

type MapController struct {
	api     *echo.Group
	picker  *picker.Picker
	useCase weather.UseCase
}

func NewMapController(api *echo.Group, mapPicker *picker.Picker, useCase weather.UseCase) *MapController {
	return &MapController{api: api, picker: mapPicker, useCase: useCase}
}

// InitMapRoutes initializes the map view routes
func (controller *MapController) InitMapRoutes() {
	controller.api.GET("/map", controller.GetMap)
	controller.api.POST("/map/add-mode", controller.EnterAddMode)
	controller.api.POST("/map/tap", controller.Tap)
	controller.api.POST("/map/confirm", controller.Confirm)
	controller.api.POST("/map/cancel", controller.Cancel)
}

type mapResponse struct {
	picker.MapState
	Weather view.State `json:"weather"`
}

// GetMap returns the marker set, camera region and the weather panel for the
// current location.
func (controller *MapController) GetMap(c echo.Context) error {
	return c.JSON(http.StatusOK, mapResponse{
		MapState: controller.picker.State(),
		Weather:  controller.useCase.MapPanel(c.Request().Context()),
	})
}

func (controller *MapController) EnterAddMode(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.picker.EnterAddMode())
}

// Tap stages a reverse-geocoded candidate at the tapped coordinates while add
// mode is active.
func (controller *MapController) Tap(c echo.Context) error {
	var dto model.MapTapDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := validate.Struct(dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, controller.picker.Tap(c.Request().Context(), dto.Lat, dto.Lon))
}

// Confirm saves the staged candidate and tells the client where to navigate.
func (controller *MapController) Confirm(c echo.Context) error {
	result, _ := controller.picker.Confirm(c.Request().Context())
	return c.JSON(http.StatusOK, result)
}

func (controller *MapController) Cancel(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.picker.Cancel())
}
