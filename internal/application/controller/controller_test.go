package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/picker"
	"weather-app/internal/domain/usecase/session"
	"weather-app/internal/domain/usecase/view"
)

var (
	calgary = model.Location{Name: "Calgary", Lat: 51.0447, Lon: -114.0719, Country: "CA", State: "Alberta"}
	toronto = model.Location{Name: "Toronto", Lat: 43.6532, Lon: -79.3832, Country: "CA", State: "Ontario"}
)

// memoryStore backs the session in controller tests.
type memoryStore struct {
	locations []model.Location
	current   *model.Location
}

func (m *memoryStore) SaveLocations(_ context.Context, locations []model.Location) error {
	m.locations = append([]model.Location(nil), locations...)
	return nil
}

func (m *memoryStore) LoadLocations(_ context.Context) ([]model.Location, error) {
	return append([]model.Location(nil), m.locations...), nil
}

func (m *memoryStore) SaveCurrentLocation(_ context.Context, loc model.Location) error {
	current := loc
	m.current = &current
	return nil
}

func (m *memoryStore) LoadCurrentLocation(_ context.Context) (*model.Location, error) {
	return m.current, nil
}

func (m *memoryStore) Ping(_ context.Context) error { return nil }

// fakeGateway serves canned geocoding results.
type fakeGateway struct {
	searchResults []model.Location
	reverseResult *model.Location
}

func (f *fakeGateway) SearchLocations(_ context.Context, _ string, _ int) []model.Location {
	return f.searchResults
}

func (f *fakeGateway) ReverseGeocode(_ context.Context, _, _ float64) *model.Location {
	return f.reverseResult
}

func (f *fakeGateway) CurrentWeather(_ context.Context, _ model.Location, _ model.Unit) (*model.WeatherSnapshot, error) {
	return &model.WeatherSnapshot{}, nil
}

func (f *fakeGateway) Forecast(_ context.Context, _ model.Location, _ model.Unit) ([]model.ForecastEntry, error) {
	return nil, nil
}

// fakeViewUseCase returns a fixed state for every view.
type fakeViewUseCase struct {
	state view.State
}

func (f *fakeViewUseCase) Now(_ context.Context) view.State      { return f.state }
func (f *fakeViewUseCase) Hourly(_ context.Context) view.State   { return f.state }
func (f *fakeViewUseCase) TenDay(_ context.Context) view.State   { return f.state }
func (f *fakeViewUseCase) MapPanel(_ context.Context) view.State { return f.state }

func newReadySession(t *testing.T) *session.Session {
	t.Helper()
	sess := session.NewSession(&memoryStore{}, calgary)
	sess.Initialize(context.Background())
	return sess
}

func request(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWeatherRoutesRenderViewStates(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	controller := NewWeatherController(api, &fakeViewUseCase{state: view.State{Phase: view.PhaseData, Data: "payload"}})
	controller.InitWeatherRoutes()

	for _, target := range []string{"/weather/now", "/weather/hourly", "/weather/ten-day"} {
		rec := request(t, e, http.MethodGet, target, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", target, rec.Code)
		}
		var state view.State
		if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
			t.Fatalf("GET %s returned invalid JSON: %v", target, err)
		}
		if state.Phase != view.PhaseData {
			t.Fatalf("GET %s phase = %q, want data", target, state.Phase)
		}
	}
}

func TestWeatherRoutesMapErrorPhaseToBadGateway(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	controller := NewWeatherController(api, &fakeViewUseCase{state: view.State{Phase: view.PhaseError, Error: "upstream down"}})
	controller.InitWeatherRoutes()

	rec := request(t, e, http.MethodGet, "/weather/now", "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for an error-phase view, got %d", rec.Code)
	}
}

func TestLocationListAndAdd(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	sess := newReadySession(t)
	controller := NewLocationController(api, sess, &fakeGateway{}, 5)
	controller.InitLocationRoutes()

	rec := request(t, e, http.MethodPost, "/locations", `{"name":"Toronto","lat":43.6532,"lon":-79.3832,"country":"CA","state":"Ontario"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /locations = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	rec = request(t, e, http.MethodGet, "/locations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /locations = %d, want 200", rec.Code)
	}
	var snap session.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid snapshot JSON: %v", err)
	}
	if len(snap.Saved) != 2 {
		t.Fatalf("expected 2 saved locations, got %d", len(snap.Saved))
	}
	if snap.Current == nil || snap.Current.Name != "Toronto" {
		t.Fatalf("expected Toronto to be current, got %+v", snap.Current)
	}
}

func TestLocationAddRejectsInvalidBody(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	controller := NewLocationController(api, newReadySession(t), &fakeGateway{}, 5)
	controller.InitLocationRoutes()

	// Latitude outside [-90, 90].
	rec := request(t, e, http.MethodPost, "/locations", `{"name":"Nowhere","lat":123.0,"lon":0,"country":"CA"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an out-of-range latitude, got %d", rec.Code)
	}

	// Missing name.
	rec = request(t, e, http.MethodPost, "/locations", `{"lat":43.6532,"lon":-79.3832,"country":"CA"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing name, got %d", rec.Code)
	}
}

func TestSelectUnsavedLocationIsNotFound(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	controller := NewLocationController(api, newReadySession(t), &fakeGateway{}, 5)
	controller.InitLocationRoutes()

	rec := request(t, e, http.MethodPut, "/locations/current", `{"lat":43.6532,"lon":-79.3832}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unsaved location, got %d", rec.Code)
	}
}

func TestLocationSearch(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	gateway := &fakeGateway{searchResults: []model.Location{calgary, toronto}}
	controller := NewLocationController(api, newReadySession(t), gateway, 5)
	controller.InitLocationRoutes()

	rec := request(t, e, http.MethodGet, "/locations/search?q=ca", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /locations/search = %d, want 200", rec.Code)
	}
	var results []model.Location
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("invalid search JSON: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	rec = request(t, e, http.MethodGet, "/locations/search", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing query, got %d", rec.Code)
	}
}

func TestSettingsToggle(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	controller := NewSettingsController(api, newReadySession(t))
	controller.InitSettingsRoutes()

	rec := request(t, e, http.MethodGet, "/settings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /settings = %d, want 200", rec.Code)
	}
	var settings settingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("invalid settings JSON: %v", err)
	}
	if settings.Unit != "metric" || settings.TemperatureSymbol != "°C" {
		t.Fatalf("unexpected defaults: %+v", settings)
	}

	rec = request(t, e, http.MethodPost, "/settings/unit/toggle", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &settings); err != nil {
		t.Fatalf("invalid toggle JSON: %v", err)
	}
	if settings.Unit != "imperial" || settings.TemperatureSymbol != "°F" {
		t.Fatalf("expected imperial after toggle, got %+v", settings)
	}
}

func TestMapAddFlow(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	sess := newReadySession(t)
	mapPicker := picker.NewPicker(sess, &fakeGateway{reverseResult: &toronto})
	controller := NewMapController(api, mapPicker, &fakeViewUseCase{state: view.State{Phase: view.PhaseData}})
	controller.InitMapRoutes()

	rec := request(t, e, http.MethodGet, "/map", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /map = %d, want 200", rec.Code)
	}

	rec = request(t, e, http.MethodPost, "/map/add-mode", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /map/add-mode = %d, want 200", rec.Code)
	}

	rec = request(t, e, http.MethodPost, "/map/tap", `{"lat":43.6532,"lon":-79.3832}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /map/tap = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var state picker.MapState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("invalid map state JSON: %v", err)
	}
	if state.Candidate == nil || state.Candidate.Name != "Toronto" {
		t.Fatalf("expected a staged Toronto candidate, got %+v", state.Candidate)
	}

	rec = request(t, e, http.MethodPost, "/map/confirm", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /map/confirm = %d, want 200", rec.Code)
	}
	var result picker.ConfirmResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid confirm JSON: %v", err)
	}
	if result.NavigateTo != "now" {
		t.Fatalf("expected navigation to now, got %q", result.NavigateTo)
	}
	if len(sess.Snapshot().Saved) != 2 {
		t.Fatalf("expected the candidate to be saved")
	}
}

func TestMapCancelClearsCandidate(t *testing.T) {
	e := echo.New()
	api := e.Group("")
	mapPicker := picker.NewPicker(newReadySession(t), &fakeGateway{reverseResult: &toronto})
	controller := NewMapController(api, mapPicker, &fakeViewUseCase{state: view.State{Phase: view.PhaseData}})
	controller.InitMapRoutes()

	request(t, e, http.MethodPost, "/map/add-mode", "")
	request(t, e, http.MethodPost, "/map/tap", `{"lat":43.6532,"lon":-79.3832}`)

	rec := request(t, e, http.MethodPost, "/map/cancel", "")
	var state picker.MapState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("invalid cancel JSON: %v", err)
	}
	if state.AddMode || state.Candidate != nil {
		t.Fatalf("expected cancel to clear add mode and candidate, got %+v", state)
	}
}
