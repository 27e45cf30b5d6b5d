package weather

import (
	"context"
	"errors"
	"testing"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/session"
	"weather-app/internal/domain/usecase/view"
)

var (
	calgary = model.Location{Name: "Calgary", Lat: 51.0447, Lon: -114.0719, Country: "CA"}
	toronto = model.Location{Name: "Toronto", Lat: 43.6532, Lon: -79.3832, Country: "CA"}
)

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

// stubGateway labels every reading with the location it was fetched for.
type stubGateway struct {
	failWeather bool
}

func (s *stubGateway) SearchLocations(_ context.Context, _ string, _ int) []model.Location {
	return nil
}

func (s *stubGateway) ReverseGeocode(_ context.Context, _, _ float64) *model.Location {
	return nil
}

func (s *stubGateway) CurrentWeather(_ context.Context, loc model.Location, _ model.Unit) (*model.WeatherSnapshot, error) {
	if s.failWeather {
		return nil, errors.New("upstream down")
	}
	return &model.WeatherSnapshot{Description: "conditions for " + loc.Name, IconID: "01d"}, nil
}

func (s *stubGateway) Forecast(_ context.Context, loc model.Location, _ model.Unit) ([]model.ForecastEntry, error) {
	if s.failWeather {
		return nil, errors.New("upstream down")
	}
	return []model.ForecastEntry{{Description: "forecast for " + loc.Name, TempMax: 10, TempMin: 2}}, nil
}

func newUseCase(t *testing.T, gateway *stubGateway) (UseCase, *session.Session) {
	t.Helper()
	sess := session.NewSession(&memoryStore{}, calgary)
	useCase := NewViewUseCase(sess, gateway, view.NewRefresher())
	sess.Initialize(context.Background())
	return useCase, sess
}

func TestNowRendersDataForTheCurrentLocation(t *testing.T) {
	useCase, _ := newUseCase(t, &stubGateway{})

	state := useCase.Now(context.Background())
	if state.Phase != view.PhaseData {
		t.Fatalf("expected data phase, got %+v", state)
	}
	payload, ok := state.Data.(model.NowView)
	if !ok {
		t.Fatalf("unexpected payload type %T", state.Data)
	}
	if payload.Weather.Description != "conditions for Calgary" {
		t.Fatalf("expected Calgary conditions, got %q", payload.Weather.Description)
	}
	if payload.IconURL != model.IconURL("01d") {
		t.Fatalf("unexpected icon URL %q", payload.IconURL)
	}
}

func TestViewsFollowTheSessionLocation(t *testing.T) {
	useCase, sess := newUseCase(t, &stubGateway{})

	sess.AddLocation(context.Background(), toronto)

	state := useCase.Hourly(context.Background())
	if state.Phase != view.PhaseData {
		t.Fatalf("expected data phase, got %+v", state)
	}
	payload := state.Data.(model.HourlyView)
	if !model.SameLocation(payload.Location, toronto) {
		t.Fatalf("expected the view to follow the session to Toronto, got %+v", payload.Location)
	}
	if len(payload.Days) != 1 || payload.Days[0].Entries[0].Description != "forecast for Toronto" {
		t.Fatalf("unexpected hourly payload: %+v", payload.Days)
	}
}

func TestTenDaySummarizesForecast(t *testing.T) {
	useCase, _ := newUseCase(t, &stubGateway{})

	state := useCase.TenDay(context.Background())
	if state.Phase != view.PhaseData {
		t.Fatalf("expected data phase, got %+v", state)
	}
	payload := state.Data.(model.TenDayView)
	if len(payload.Days) != 1 {
		t.Fatalf("expected 1 summarized day, got %d", len(payload.Days))
	}
	if payload.Days[0].HighTemp != 10 || payload.Days[0].LowTemp != 2 {
		t.Fatalf("unexpected summary: %+v", payload.Days[0])
	}
}

func TestViewsRenderErrorPhaseOnUpstreamFailure(t *testing.T) {
	useCase, _ := newUseCase(t, &stubGateway{failWeather: true})

	for name, state := range map[string]view.State{
		"now":    useCase.Now(context.Background()),
		"hourly": useCase.Hourly(context.Background()),
		"tenday": useCase.TenDay(context.Background()),
		"map":    useCase.MapPanel(context.Background()),
	} {
		if state.Phase != view.PhaseError {
			t.Fatalf("expected error phase for %s view, got %+v", name, state)
		}
	}
}

func TestUnitChangeInvalidatesViewData(t *testing.T) {
	useCase, sess := newUseCase(t, &stubGateway{})

	metric := useCase.Now(context.Background())
	if metric.Unit != model.UnitMetric {
		t.Fatalf("expected metric state, got %+v", metric)
	}

	sess.ToggleUnit()
	imperial := useCase.Now(context.Background())
	if imperial.Unit != model.UnitImperial {
		t.Fatalf("expected the view to refetch in imperial, got %+v", imperial)
	}
}
