package domain

import "math"

// DensityLevel classifies how tightly packed an observed area is.
type DensityLevel string

const (
	DensitySafe        DensityLevel = "Safe"
	DensityModerate    DensityLevel = "Moderate"
	DensityRisky       DensityLevel = "Risky"
	DensityOvercrowded DensityLevel = "Overcrowded"
)

// ValidDensityLevel reports whether s is one of the four classification bands.
func ValidDensityLevel(s string) bool {
	switch DensityLevel(s) {
	case DensitySafe, DensityModerate, DensityRisky, DensityOvercrowded:
		return true
	}
	return false
}

// Dashboard returns the lowercase vocabulary consumed by dashboards and
// alerting: safe, moderate, risky, critical.
func (l DensityLevel) Dashboard() string {
	switch l {
	case DensitySafe:
		return "safe"
	case DensityModerate:
		return "moderate"
	case DensityRisky:
		return "risky"
	case DensityOvercrowded:
		return "critical"
	}
	return "safe"
}

// DeriveDensity computes the area in square meters, the crowd density in
// people per square meter, and the classification band for a circular area.
// Density is computed against the already-rounded area so stored records stay
// reproducible from their own fields. Callers must reject radiusM <= 0 and
// personCount < 0 before calling.
func DeriveDensity(radiusM float64, personCount int) (areaM2, peoplePerM2 float64, level DensityLevel) {
	areaM2 = round2(math.Pi * radiusM * radiusM)
	peoplePerM2 = round3(float64(personCount) / areaM2)
	return areaM2, peoplePerM2, ClassifyDensity(peoplePerM2)
}

// ClassifyDensity maps people per square meter onto a density level. The
// upper boundary of each band is closed: exactly 0.5 is Safe, exactly 2 is
// Moderate, exactly 4 is Risky.
func ClassifyDensity(peoplePerM2 float64) DensityLevel {
	switch {
	case peoplePerM2 <= 0.5:
		return DensitySafe
	case peoplePerM2 <= 2:
		return DensityModerate
	case peoplePerM2 <= 4:
		return DensityRisky
	default:
		return DensityOvercrowded
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
