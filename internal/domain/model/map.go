package model

// Marker colors follow the map widget convention: the current location is red,
// a staged candidate is blue, other saved locations are orange.
const (
	MarkerColorCurrent   = "red"
	MarkerColorCandidate = "blue"
	MarkerColorSaved     = "orange"
)

// Coordinate is a latitude/longitude pair for the map widget.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker is one pin rendered by the map widget.
type Marker struct {
	Coordinate Coordinate `json:"coordinate"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle,omitempty"`
	Color      string     `json:"color"`
}

// Region is an "animate camera to region" command for the map widget.
type Region struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	LatDelta float64 `json:"latDelta"`
	LonDelta float64 `json:"lonDelta"`
}

// RegionAround centers a region on a location with the default zoom span.
func RegionAround(loc Location) Region {
	return Region{Lat: loc.Lat, Lon: loc.Lon, LatDelta: 10, LonDelta: 10}
}

// LocationSubtitle formats the "State, Country" line shown under a marker title.
func LocationSubtitle(loc Location) string {
	if loc.State != "" {
		return loc.State + ", " + loc.Country
	}
	return loc.Country
}
