package app

import (
	"context"
	"time"

	"github.com/darshita2110/Crowd-Management-System/internal/clock"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// EventRepository persists events with their embedded area definitions.
type EventRepository interface {
	CreateEvent(ctx context.Context, event domain.Event) error
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	ListEvents(ctx context.Context, status, organizerID string) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	SetEventStatus(ctx context.Context, id string, status domain.EventStatus) error
	DeleteEvent(ctx context.Context, id string) error
}

// EventService manages venue events and their area definitions.
type EventService struct {
	repo  EventRepository
	clock clock.Clock
}

func NewEventService(repo EventRepository, clk clock.Clock) *EventService {
	return &EventService{
		repo:  repo,
		clock: clk,
	}
}

type EventInput struct {
	Name        string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    int
	OrganizerID string
	Areas       []domain.Area
}

func (in EventInput) validate() error {
	if in.Name == "" {
		return domain.ErrEventNameRequired
	}
	if in.Capacity <= 0 {
		return domain.ErrInvalidCapacity
	}
	for _, area := range in.Areas {
		if area.Name == "" {
			return domain.ErrAreaNameRequired
		}
		if area.RadiusM <= 0 {
			return domain.ErrInvalidRadius
		}
	}
	return nil
}

// CreateEvent creates an event in the upcoming state.
func (s *EventService) CreateEvent(ctx context.Context, in EventInput) (domain.Event, error) {
	if err := in.validate(); err != nil {
		return domain.Event{}, err
	}

	event := domain.Event{
		ID:          newRecordID(eventIDPrefix),
		Name:        in.Name,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Capacity:    in.Capacity,
		OrganizerID: in.OrganizerID,
		Status:      domain.EventUpcoming,
		Areas:       in.Areas,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return domain.Event{}, err
	}
	return event, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, domain.ErrInvalidID
	}
	return s.repo.GetEvent(ctx, id)
}

// ListEvents returns events, optionally narrowed by status and organizer.
func (s *EventService) ListEvents(ctx context.Context, status, organizerID string) ([]domain.Event, error) {
	return s.repo.ListEvents(ctx, status, organizerID)
}

// UpdateEvent replaces an event's definition, keeping its id, status and
// creation time.
func (s *EventService) UpdateEvent(ctx context.Context, id string, in EventInput) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, domain.ErrInvalidID
	}
	if err := in.validate(); err != nil {
		return domain.Event{}, err
	}

	event := domain.Event{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Capacity:    in.Capacity,
		OrganizerID: in.OrganizerID,
		Areas:       in.Areas,
	}
	return s.repo.UpdateEvent(ctx, event)
}

// UpdateStatus moves an event between upcoming, live and completed.
func (s *EventService) UpdateStatus(ctx context.Context, id, status string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	if !domain.ValidEventStatus(status) {
		return domain.ErrInvalidEventStatus
	}
	return s.repo.SetEventStatus(ctx, id, domain.EventStatus(status))
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteEvent(ctx, id)
}
