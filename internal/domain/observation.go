package domain

import "time"

// Location is a WGS84 point. Informational only; derivation never reads it.
type Location struct {
	Lat float64
	Lon float64
}

// Observation is one point-in-time crowd measurement for a named area of an
// event. Derived fields are computed once at ingest and never recomputed:
// classification is frozen at observation time even if thresholds change
// later.
type Observation struct {
	ID          string
	EventID     string
	AreaName    string
	Location    Location
	RadiusM     float64
	PersonCount int
	AreaM2      float64
	PeoplePerM2 float64
	Level       DensityLevel
	RecordedAt  time.Time
}

// ObservationFilter narrows observation listings. Zero values mean "any".
type ObservationFilter struct {
	EventID  string
	AreaName string
	Level    string
}
