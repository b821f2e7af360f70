package domain

import "errors"

var (
	// Validation failures, rejected before any derivation or persistence.
	ErrInvalidRadius        = errors.New("radius_m must be greater than zero")
	ErrNegativePersonCount  = errors.New("person_count must not be negative")
	ErrInvalidCapacity      = errors.New("capacity must be greater than zero")
	ErrNegativeDensity      = errors.New("current_density must not be negative")
	ErrInvalidDensityStatus = errors.New("density_status must be low, moderate or crowded")
	ErrInvalidEventStatus   = errors.New("status must be upcoming, live or completed")
	ErrInvalidReportStatus  = errors.New("status must be reported, searching, found or resolved")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrEventNameRequired    = errors.New("event name required")
	ErrZoneNameRequired     = errors.New("zone name required")
	ErrAreaNameRequired     = errors.New("area name required")
	ErrPersonNameRequired   = errors.New("person name required")

	// Lookup failures.
	ErrEventNotFound       = errors.New("event not found")
	ErrZoneNotFound        = errors.New("zone not found")
	ErrObservationNotFound = errors.New("density record not found")
	ErrFeedbackNotFound    = errors.New("feedback not found")
	ErrReportNotFound      = errors.New("lost person report not found")

	// ErrInvalidID marks an identifier that does not conform to the store's
	// key format, as opposed to a well-formed id with no record behind it.
	ErrInvalidID = errors.New("invalid id")
)
