package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/session"
	"weather-app/pkg/util/numberutils"
)

var validate = validator.New()

type LocationController struct {
	api     *echo.Group
	session *session.Session
	gateway api.WeatherGateway
	limit   int
}

// NewLocationController creates the saved-locations controller. The limit caps
// how many geocoding matches a search returns.
func NewLocationController(apiGroup *echo.Group, sess *session.Session, gateway api.WeatherGateway, searchLimit int) *LocationController {
	return &LocationController{api: apiGroup, session: sess, gateway: gateway, limit: searchLimit}
}

// InitLocationRoutes initializes the saved-locations routes
func (controller *LocationController) InitLocationRoutes() {
	controller.api.GET("/locations", controller.List)
	controller.api.GET("/locations/search", controller.Search)
	controller.api.POST("/locations", controller.Add)
	controller.api.PUT("/locations/current", controller.Select)
	controller.api.POST("/locations/refresh", controller.Refresh)
}

// List returns the session snapshot: saved list, current location and unit.
func (controller *LocationController) List(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.session.Snapshot())
}

// Search geocodes free text into location candidates. Geocoding is fail-soft:
// an upstream failure renders as an empty result, never an error.
func (controller *LocationController) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "q is required"})
	}
	limit := numberutils.ToIntWithDefault(c.QueryParam("limit"), controller.limit)

	results := controller.gateway.SearchLocations(c.Request().Context(), query, limit)
	if results == nil {
		results = []model.Location{}
	}
	return c.JSON(http.StatusOK, results)
}

// Add saves a location and makes it current.
func (controller *LocationController) Add(c echo.Context) error {
	var dto model.AddLocationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := validate.Struct(dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	snap := controller.session.AddLocation(c.Request().Context(), dto.ToLocation())
	return c.JSON(http.StatusCreated, snap)
}

// Select makes an already-saved location current.
func (controller *LocationController) Select(c echo.Context) error {
	var dto model.SelectLocationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := validate.Struct(dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	snap, err := controller.session.SelectLocation(c.Request().Context(), model.Location{Lat: dto.Lat, Lon: dto.Lon})
	if err != nil {
		if errors.Is(err, session.ErrNotSaved) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, snap)
}

// Refresh re-reads the persisted documents and reconciles, storage-wins. The
// client calls it when a view regains focus.
func (controller *LocationController) Refresh(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.session.RefreshFromStore(c.Request().Context()))
}
