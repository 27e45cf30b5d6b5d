package model

import "time"

// DailySummary aggregates one calendar day of forecast entries. It is derived
// on every fetch and never persisted.
type DailySummary struct {
	Date                         time.Time `json:"date"`
	DayOfWeek                    string    `json:"dayOfWeek"`
	HighTemp                     float64   `json:"highTemp"`
	LowTemp                      float64   `json:"lowTemp"`
	RepresentativeIcon           string    `json:"representativeIcon"`
	RepresentativeDescription    string    `json:"representativeDescription"`
	MeanPrecipitationProbability float64   `json:"meanPrecipitationProbability"`
}
