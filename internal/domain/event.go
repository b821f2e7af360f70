package domain

import "time"

// EventStatus is the lifecycle stage of an event.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventLive      EventStatus = "live"
	EventCompleted EventStatus = "completed"
)

// ValidEventStatus reports whether s is an allowed event status.
func ValidEventStatus(s string) bool {
	switch EventStatus(s) {
	case EventUpcoming, EventLive, EventCompleted:
		return true
	}
	return false
}

// Area is a named circular sub-region of an event, the grouping key for
// density observations. CapacityM is optional; when zero the event's total
// capacity is split evenly across its areas.
type Area struct {
	Name     string
	Location Location
	RadiusM  float64
	Capacity int
}

// Event is a venue event with predefined observation areas embedded.
type Event struct {
	ID          string
	Name        string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    int
	OrganizerID string
	Status      EventStatus
	Areas       []Area
	CreatedAt   time.Time
}

// AreaCapacity returns the capacity attributed to the area at index i: the
// area's own capacity when set, otherwise an even share of the event total.
func (e Event) AreaCapacity(i int) int {
	if i < 0 || i >= len(e.Areas) {
		return 0
	}
	if c := e.Areas[i].Capacity; c > 0 {
		return c
	}
	return e.Capacity / len(e.Areas)
}

// AreaState is the resolved current state of one area, in dashboard
// vocabulary (level is one of safe, moderate, risky, critical).
type AreaState struct {
	ID       string
	Name     string
	Count    int
	Capacity int
	Level    string
}
