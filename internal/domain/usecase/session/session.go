package session

import (
	"context"
	"sync"

	"weather-app/internal/domain/gateway/store"
	"weather-app/internal/domain/model"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

// Snapshot is an immutable view of the session state handed to readers and
// listeners. The saved slice is a copy; mutating it has no effect on the session.
type Snapshot struct {
	Ready   bool             `json:"ready"`
	Current *model.Location  `json:"current"`
	Saved   []model.Location `json:"saved"`
	Unit    model.Unit       `json:"unit"`
}

// Listener is notified with a snapshot after every state change.
type Listener func(Snapshot)

// Session owns the current location, the saved-locations list and the unit
// toggle shared by every view. It is the single writer for all of them: every
// mutation and the refresh-from-store reconcile run under one lock, so a
// focus-triggered refresh can never interleave with an in-flight AddLocation.
//
// Persistence failures are logged and absorbed; the in-memory state remains
// authoritative for the rest of the session and persisted state may silently
// lag it until the next successful save.
type Session struct {
	mu              sync.Mutex
	store           store.LocationStore
	defaultLocation model.Location

	ready     bool
	current   *model.Location
	saved     []model.Location
	unit      model.Unit
	listeners []Listener
}

// NewSession creates an uninitialized session. The default location seeds the
// saved list on first activation when nothing has been persisted yet.
func NewSession(locationStore store.LocationStore, defaultLocation model.Location) *Session {
	return &Session{
		store:           locationStore,
		defaultLocation: defaultLocation,
		unit:            model.UnitMetric,
	}
}

// Subscribe registers a listener for state-change notifications. Listeners are
// invoked outside the session lock, in registration order.
func (s *Session) Subscribe(listener Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Initialize moves the session from Uninitialized to Ready. With no persisted
// locations it seeds the hardcoded default and persists both documents;
// otherwise it adopts the persisted current location when it is still a member
// of the saved list, else the first saved location. Ready is terminal: calling
// Initialize again returns the current snapshot unchanged.
func (s *Session) Initialize(ctx context.Context) Snapshot {
	s.mu.Lock()
	if s.ready {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	saved, err := s.store.LoadLocations(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("session.persist-failed", "saved locations load", err.Error()))
		saved = nil
	}

	if len(saved) == 0 {
		log.Info(msg.GetMessage("session.seeded", s.defaultLocation.Name))
		seeded := s.defaultLocation
		s.saved = []model.Location{seeded}
		s.current = &seeded
		s.persistLocationsLocked(ctx)
		s.persistCurrentLocked(ctx)
	} else {
		s.saved = saved
		current, err := s.store.LoadCurrentLocation(ctx)
		if err != nil {
			log.Warn(msg.GetMessage("session.persist-failed", "current location load", err.Error()))
			current = nil
		}
		if current != nil && model.ContainsLocation(s.saved, *current) {
			s.current = current
		} else {
			first := s.saved[0]
			s.current = &first
		}
	}

	s.ready = true
	snap, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return snap
}

// Snapshot returns the current state without mutating it.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AddLocation appends the location to the saved list unless an entry with the
// same coordinates already exists, then unconditionally makes it current.
// Both documents are persisted. Calling it twice with the same location leaves
// the saved list identical to a single call.
func (s *Session) AddLocation(ctx context.Context, loc model.Location) Snapshot {
	s.mu.Lock()
	if !model.ContainsLocation(s.saved, loc) {
		s.saved = append(s.saved, loc)
		s.persistLocationsLocked(ctx)
	}
	current := loc
	s.current = &current
	s.persistCurrentLocked(ctx)

	log.Info(msg.GetMessage("session.location-added", loc.Name))
	snap, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return snap
}

// SelectLocation makes an already-saved location current and persists it. The
// saved list is not mutated. Selecting a location that is not a member returns
// ErrNotSaved.
func (s *Session) SelectLocation(ctx context.Context, loc model.Location) (Snapshot, error) {
	s.mu.Lock()
	member, ok := s.findLocked(loc)
	if !ok {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, ErrNotSaved
	}

	s.current = &member
	s.persistCurrentLocked(ctx)

	log.Info(msg.GetMessage("session.location-selected", member.Name))
	snap, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return snap, nil
}

// ToggleUnit flips the measurement unit. The change is in-memory only and
// resets to metric on process restart.
func (s *Session) ToggleUnit() Snapshot {
	s.mu.Lock()
	s.unit = s.unit.Toggle()
	snap, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return snap
}

// RefreshFromStore re-reads both persisted documents and reconciles,
// storage-wins, to pick up additions made through another path. It exists for
// view refocus and runs under the same lock as every mutation. A load failure
// or an empty persisted list leaves the in-memory state untouched: a Ready
// session always holds at least one saved location, so an empty read can only
// mean storage lag or loss.
func (s *Session) RefreshFromStore(ctx context.Context) Snapshot {
	s.mu.Lock()
	if !s.ready {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap
	}

	saved, err := s.store.LoadLocations(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("session.persist-failed", "saved locations load", err.Error()))
	} else if len(saved) > 0 {
		s.saved = saved
	}

	current, err := s.store.LoadCurrentLocation(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("session.persist-failed", "current location load", err.Error()))
	} else if current != nil && model.ContainsLocation(s.saved, *current) {
		s.current = current
	} else if s.current == nil || !model.ContainsLocation(s.saved, *s.current) {
		first := s.saved[0]
		s.current = &first
	}

	snap, listeners := s.snapshotAndListenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
	return snap
}

func (s *Session) findLocked(loc model.Location) (model.Location, bool) {
	for _, saved := range s.saved {
		if model.SameLocation(saved, loc) {
			return saved, true
		}
	}
	return model.Location{}, false
}

func (s *Session) persistLocationsLocked(ctx context.Context) {
	if err := s.store.SaveLocations(ctx, s.saved); err != nil {
		log.Warn(msg.GetMessage("session.persist-failed", "saved locations", err.Error()))
	}
}

func (s *Session) persistCurrentLocked(ctx context.Context) {
	if s.current == nil {
		return
	}
	if err := s.store.SaveCurrentLocation(ctx, *s.current); err != nil {
		log.Warn(msg.GetMessage("session.persist-failed", "current location", err.Error()))
	}
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Ready: s.ready,
		Saved: make([]model.Location, len(s.saved)),
		Unit:  s.unit,
	}
	copy(snap.Saved, s.saved)
	if s.current != nil {
		current := *s.current
		snap.Current = &current
	}
	return snap
}

func (s *Session) snapshotAndListenersLocked() (Snapshot, []Listener) {
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	return s.snapshotLocked(), listeners
}

func notify(listeners []Listener, snap Snapshot) {
	for _, listener := range listeners {
		listener(snap)
	}
}
