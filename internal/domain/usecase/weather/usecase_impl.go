package weather

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/forecast"
	"weather-app/internal/domain/usecase/session"
	"weather-app/internal/domain/usecase/view"
	"weather-app/pkg/log"
)

// errNoCurrentLocation is rendered when a view is requested before the session
// holds a current location. The session seeds a default on initialization, so
// this only happens if a view is hit before Initialize.
var errNoCurrentLocation = errors.New("no current location selected")

type viewUseCase struct {
	sess      *session.Session
	gateway   api.WeatherGateway
	refresher *view.Refresher
}

// NewViewUseCase wires the data views to the weather gateway and subscribes to
// session changes: every location or unit change broadcasts a refresh to all
// registered views, matching the app's behavior of refetching each mounted
// screen when its inputs change.
func NewViewUseCase(sess *session.Session, gateway api.WeatherGateway, refresher *view.Refresher) UseCase {
	uc := &viewUseCase{
		sess:      sess,
		gateway:   gateway,
		refresher: refresher,
	}

	refresher.Register(view.Now, uc.fetchNow)
	refresher.Register(view.Hourly, uc.fetchHourly)
	refresher.Register(view.TenDay, uc.fetchTenDay)
	refresher.Register(view.Map, uc.fetchMapPanel)

	sess.Subscribe(func(snap session.Snapshot) {
		if snap.Current == nil {
			return
		}
		triggerID := uuid.New().String()
		log.Infow("Session change, refreshing views",
			"trigger_id", triggerID,
			"location", snap.Current.Name,
			"unit", snap.Unit,
		)
		refresher.TriggerAll(*snap.Current, snap.Unit)
	})

	return uc
}

// Now returns the current-conditions view state.
func (uc *viewUseCase) Now(ctx context.Context) view.State {
	return uc.resolve(ctx, view.Now)
}

// Hourly returns the 3-hour forecast entries grouped by day.
func (uc *viewUseCase) Hourly(ctx context.Context) view.State {
	return uc.resolve(ctx, view.Hourly)
}

// TenDay returns the per-day forecast summaries.
func (uc *viewUseCase) TenDay(ctx context.Context) view.State {
	return uc.resolve(ctx, view.TenDay)
}

// MapPanel returns the small weather panel shown on the map view.
func (uc *viewUseCase) MapPanel(ctx context.Context) view.State {
	return uc.resolve(ctx, view.Map)
}

func (uc *viewUseCase) resolve(ctx context.Context, name view.Name) view.State {
	snap := uc.sess.Snapshot()
	if snap.Current == nil {
		return view.State{Phase: view.PhaseError, Error: errNoCurrentLocation.Error()}
	}
	return uc.refresher.Resolve(ctx, name, *snap.Current, snap.Unit)
}

func (uc *viewUseCase) fetchNow(ctx context.Context, loc model.Location, unit model.Unit) (any, error) {
	snapshot, err := uc.gateway.CurrentWeather(ctx, loc, unit)
	if err != nil {
		return nil, err
	}
	return model.NowView{
		Location: loc,
		Unit:     unit,
		Weather:  *snapshot,
		IconURL:  model.IconURL(snapshot.IconID),
	}, nil
}

func (uc *viewUseCase) fetchHourly(ctx context.Context, loc model.Location, unit model.Unit) (any, error) {
	entries, err := uc.gateway.Forecast(ctx, loc, unit)
	if err != nil {
		return nil, err
	}
	return model.HourlyView{
		Location: loc,
		Unit:     unit,
		Days:     forecast.HourlyDays(entries),
	}, nil
}

func (uc *viewUseCase) fetchTenDay(ctx context.Context, loc model.Location, unit model.Unit) (any, error) {
	entries, err := uc.gateway.Forecast(ctx, loc, unit)
	if err != nil {
		return nil, err
	}
	return model.TenDayView{
		Location: loc,
		Unit:     unit,
		Days:     forecast.DailySummaries(entries),
	}, nil
}

func (uc *viewUseCase) fetchMapPanel(ctx context.Context, loc model.Location, unit model.Unit) (any, error) {
	snapshot, err := uc.gateway.CurrentWeather(ctx, loc, unit)
	if err != nil {
		return nil, err
	}
	return model.MapWeatherPanel{
		Location:    loc,
		Unit:        unit,
		Temperature: snapshot.Temperature,
		Description: snapshot.Description,
		IconURL:     model.IconURL(snapshot.IconID),
	}, nil
}
