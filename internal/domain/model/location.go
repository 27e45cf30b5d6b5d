package model

import (
	"math"
	"strconv"
)

// coordPrecision is the number of decimal places the geocoding API reports.
// Coordinates are rounded to it before any identity comparison.
const coordPrecision = 4

// Location represents a named geographic point with coordinates and country/state metadata.
// Identity is defined by the (lat, lon) pair, never by the name.
type Location struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

// Key returns a canonical identity key for the location, built from the
// rounded coordinate pair.
func (l Location) Key() string {
	return formatCoord(l.Lat) + ":" + formatCoord(l.Lon)
}

// SameLocation reports whether two locations refer to the same coordinates,
// independent of name, country or state.
func SameLocation(a, b Location) bool {
	return roundCoord(a.Lat) == roundCoord(b.Lat) && roundCoord(a.Lon) == roundCoord(b.Lon)
}

// ContainsLocation reports whether the list already has an entry with the same coordinates.
func ContainsLocation(list []Location, loc Location) bool {
	for _, l := range list {
		if SameLocation(l, loc) {
			return true
		}
	}
	return false
}

func roundCoord(v float64) float64 {
	factor := math.Pow10(coordPrecision)
	return math.Round(v*factor) / factor
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(roundCoord(v), 'f', -1, 64)
}
