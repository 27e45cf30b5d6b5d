package view

import (
	"context"
	"sync"
	"time"

	"weather-app/internal/domain/model"
	"weather-app/pkg/log"
)

// Name identifies one of the data views.
type Name string

const (
	Now    Name = "now"
	Hourly Name = "hourly"
	TenDay Name = "tenday"
	Map    Name = "map"
)

// Phase is the visual state a view renders.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseData    Phase = "data"
)

// State is what a view renders: exactly one of {loading, error, data},
// stamped with the (location, unit) pair it was fetched for.
type State struct {
	Phase       Phase      `json:"state"`
	LocationKey string     `json:"locationKey"`
	Unit        model.Unit `json:"unit"`
	Data        any        `json:"data,omitempty"`
	Error       string     `json:"error,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FetchFunc produces a view's payload for a location and unit.
type FetchFunc func(ctx context.Context, loc model.Location, unit model.Unit) (any, error)

// Refresher runs the fetch task behind each view. Every trigger supersedes the
// view's previous task: the prior context is cancelled and the task's result is
// committed only if its generation is still current, so a slow stale fetch can
// never overwrite fresher data.
type Refresher struct {
	mu       sync.Mutex
	fetchers map[Name]FetchFunc
	tasks    map[Name]*task
}

type task struct {
	gen    uint64
	cancel context.CancelFunc
	state  State
}

// NewRefresher creates an empty refresher.
func NewRefresher() *Refresher {
	return &Refresher{
		fetchers: make(map[Name]FetchFunc),
		tasks:    make(map[Name]*task),
	}
}

// Register binds a fetch function to a view name.
func (r *Refresher) Register(name Name, fetch FetchFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchers[name] = fetch
	r.tasks[name] = &task{state: State{Phase: PhaseLoading}}
}

// TriggerAll starts a background refresh of every registered view for the
// given location and unit. Used when the session broadcasts a state change.
func (r *Refresher) TriggerAll(loc model.Location, unit model.Unit) {
	r.mu.Lock()
	names := make([]Name, 0, len(r.fetchers))
	for name := range r.fetchers {
		names = append(names, name)
	}
	r.mu.Unlock()

	for _, name := range names {
		r.trigger(name, loc, unit)
	}
}

// State returns the view's last committed state.
func (r *Refresher) State(name Name) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[name]; ok {
		return t.state
	}
	return State{Phase: PhaseLoading}
}

// Resolve returns the view's state for the given location and unit, fetching
// synchronously when the cached state is for different inputs or not yet data.
// The fetch participates in the same generation scheme as background triggers:
// if it is superseded while running, its result is returned to this caller but
// not committed to the shared view state.
func (r *Refresher) Resolve(ctx context.Context, name Name, loc model.Location, unit model.Unit) State {
	r.mu.Lock()
	fetch, ok := r.fetchers[name]
	if !ok {
		r.mu.Unlock()
		return State{Phase: PhaseError, Error: "view not registered"}
	}
	t := r.tasks[name]
	if t.state.Phase == PhaseData && t.state.LocationKey == loc.Key() && t.state.Unit == unit {
		state := t.state
		r.mu.Unlock()
		return state
	}

	t.gen++
	gen := t.gen
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.state = loadingState(loc, unit)
	r.mu.Unlock()

	data, err := fetch(ctx, loc, unit)
	state := resultState(loc, unit, data, err)
	r.commit(name, gen, state)
	return state
}

// trigger launches one background fetch for a view, superseding any in-flight one.
func (r *Refresher) trigger(name Name, loc model.Location, unit model.Unit) {
	r.mu.Lock()
	fetch, ok := r.fetchers[name]
	if !ok {
		r.mu.Unlock()
		return
	}
	t := r.tasks[name]
	t.gen++
	gen := t.gen
	if t.cancel != nil {
		t.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.state = loadingState(loc, unit)
	r.mu.Unlock()

	go func() {
		defer cancel()
		data, err := fetch(ctx, loc, unit)
		r.commit(name, gen, resultState(loc, unit, data, err))
	}()
}

// commit stores a task result unless a newer generation has superseded it.
func (r *Refresher) commit(name Name, gen uint64, state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[name]
	if !ok || t.gen != gen {
		log.Debugf("Discarding superseded %s view result", name)
		return
	}
	t.state = state
}

func loadingState(loc model.Location, unit model.Unit) State {
	return State{
		Phase:       PhaseLoading,
		LocationKey: loc.Key(),
		Unit:        unit,
		UpdatedAt:   time.Now().UTC(),
	}
}

func resultState(loc model.Location, unit model.Unit, data any, err error) State {
	state := State{
		LocationKey: loc.Key(),
		Unit:        unit,
		UpdatedAt:   time.Now().UTC(),
	}
	if err != nil {
		state.Phase = PhaseError
		state.Error = err.Error()
		return state
	}
	state.Phase = PhaseData
	state.Data = data
	return state
}
