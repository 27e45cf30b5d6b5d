package picker

import (
	"context"
	"fmt"
	"sync"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/session"
	"weather-app/pkg/log"
)

// MapState is everything the map view renders: the marker set, the camera
// region, whether add mode is active and the staged candidate, if any.
type MapState struct {
	AddMode   bool            `json:"addMode"`
	Candidate *model.Location `json:"candidate,omitempty"`
	Markers   []model.Marker  `json:"markers"`
	Region    model.Region    `json:"region"`
}

// ConfirmResult is returned by Confirm: the session snapshot after the add
// plus the view the client should navigate to.
type ConfirmResult struct {
	Session    session.Snapshot `json:"session"`
	NavigateTo string           `json:"navigateTo"`
}

// Picker drives the map's add-location flow: enter add mode, tap to stage a
// reverse-geocoded candidate, then confirm to save it or cancel to discard it.
// A tap outside add mode is ignored. The candidate is picker-local state and
// never touches the session until Confirm.
type Picker struct {
	mu        sync.Mutex
	sess      *session.Session
	gateway   api.WeatherGateway
	addMode   bool
	candidate *model.Location
}

// NewPicker creates a picker bound to the session and the geocoding gateway.
func NewPicker(sess *session.Session, gateway api.WeatherGateway) *Picker {
	return &Picker{sess: sess, gateway: gateway}
}

// State returns the current map state.
func (p *Picker) State() MapState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

// EnterAddMode activates add mode. Re-entering while already active keeps any
// staged candidate.
func (p *Picker) EnterAddMode() MapState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.addMode = true
	return p.stateLocked()
}

// Tap stages a candidate at the tapped coordinates. The name, country and
// state come from reverse geocoding; when that fails or returns nothing the
// candidate keeps the raw coordinates with a placeholder name, so the flow
// still works offline from the geocoder.
func (p *Picker) Tap(ctx context.Context, lat, lon float64) MapState {
	p.mu.Lock()
	if !p.addMode {
		state := p.stateLocked()
		p.mu.Unlock()
		return state
	}
	p.mu.Unlock()

	candidate := p.gateway.ReverseGeocode(ctx, lat, lon)
	if candidate == nil {
		log.Debugf("Reverse geocoding returned nothing for (%v, %v), staging raw coordinates", lat, lon)
		candidate = &model.Location{
			Name: fmt.Sprintf("(%.4f, %.4f)", lat, lon),
			Lat:  lat,
			Lon:  lon,
		}
	} else {
		// Keep the tapped point, not the geocoder's snapped city center.
		candidate.Lat = lat
		candidate.Lon = lon
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.addMode {
		return p.stateLocked()
	}
	p.candidate = candidate
	return p.stateLocked()
}

// Confirm saves the staged candidate through the session, leaves add mode and
// tells the client to navigate to the current-conditions view. Confirming with
// no candidate staged is a no-op that stays on the map.
func (p *Picker) Confirm(ctx context.Context) (ConfirmResult, MapState) {
	p.mu.Lock()
	if p.candidate == nil {
		state := p.stateLocked()
		snap := p.sess.Snapshot()
		p.mu.Unlock()
		return ConfirmResult{Session: snap, NavigateTo: "map"}, state
	}
	candidate := *p.candidate
	p.candidate = nil
	p.addMode = false
	p.mu.Unlock()

	snap := p.sess.AddLocation(ctx, candidate)

	p.mu.Lock()
	defer p.mu.Unlock()
	return ConfirmResult{Session: snap, NavigateTo: "now"}, p.stateLocked()
}

// Cancel discards the staged candidate, leaves add mode and recenters the map
// on the current location.
func (p *Picker) Cancel() MapState {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.candidate = nil
	p.addMode = false
	return p.stateLocked()
}

// stateLocked assembles the marker set from the session snapshot plus the
// staged candidate. The current location always wins the color contest: a
// saved location that is also current renders red, not orange.
func (p *Picker) stateLocked() MapState {
	snap := p.sess.Snapshot()

	markers := make([]model.Marker, 0, len(snap.Saved)+1)
	for _, loc := range snap.Saved {
		color := model.MarkerColorSaved
		if snap.Current != nil && model.SameLocation(loc, *snap.Current) {
			color = model.MarkerColorCurrent
		}
		markers = append(markers, locationMarker(loc, color))
	}
	if p.candidate != nil {
		markers = append(markers, locationMarker(*p.candidate, model.MarkerColorCandidate))
	}

	state := MapState{
		AddMode: p.addMode,
		Markers: markers,
	}
	if p.candidate != nil {
		candidate := *p.candidate
		state.Candidate = &candidate
		state.Region = model.RegionAround(candidate)
	} else if snap.Current != nil {
		state.Region = model.RegionAround(*snap.Current)
	}
	return state
}

func locationMarker(loc model.Location, color string) model.Marker {
	return model.Marker{
		Coordinate: model.Coordinate{Lat: loc.Lat, Lon: loc.Lon},
		Title:      loc.Name,
		Subtitle:   model.LocationSubtitle(loc),
		Color:      color,
	}
}
