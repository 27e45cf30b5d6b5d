package model

// AddLocationDTO is the request body for saving a new location.
type AddLocationDTO struct {
	Name    string  `json:"name" validate:"required"`
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"lon" validate:"gte=-180,lte=180"`
	Country string  `json:"country" validate:"required"`
	State   string  `json:"state"`
}

// ToLocation converts the request body into a Location.
func (d AddLocationDTO) ToLocation() Location {
	return Location{Name: d.Name, Lat: d.Lat, Lon: d.Lon, Country: d.Country, State: d.State}
}

// SelectLocationDTO identifies a saved location to make current.
type SelectLocationDTO struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// MapTapDTO is the coordinate emitted by a map tap event.
type MapTapDTO struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}
