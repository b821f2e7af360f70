package domain

import "time"

// DensityStatus is the coarse occupancy classification used for zones. It is
// a separate scale from DensityLevel: zones track a directly-set head count
// against a fixed capacity instead of a derived people-per-m2 figure.
type DensityStatus string

const (
	StatusLow      DensityStatus = "low"
	StatusModerate DensityStatus = "moderate"
	StatusCrowded  DensityStatus = "crowded"
)

// ValidDensityStatus reports whether s is an allowed zone status.
func ValidDensityStatus(s string) bool {
	switch DensityStatus(s) {
	case StatusLow, StatusModerate, StatusCrowded:
		return true
	}
	return false
}

// ClassifyOccupancy derives a zone status from the occupancy ratio
// currentDensity/capacity. Exactly 0.5 is moderate and exactly 0.8 is
// crowded. Callers must reject capacity <= 0 before calling.
func ClassifyOccupancy(currentDensity, capacity int) DensityStatus {
	ratio := float64(currentDensity) / float64(capacity)
	switch {
	case ratio >= 0.8:
		return StatusCrowded
	case ratio >= 0.5:
		return StatusModerate
	default:
		return StatusLow
	}
}

// Zone is a capacity-bounded sub-area whose occupancy is set directly.
// Updates are last-write-wins; no occupancy history is kept. CurrentDensity
// may exceed Capacity.
type Zone struct {
	ID             string
	EventID        string
	Name           string
	Capacity       int
	CurrentDensity int
	DensityStatus  DensityStatus
	CreatedAt      time.Time
	LastUpdated    time.Time
}
