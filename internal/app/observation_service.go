package app

import (
	"context"
	"fmt"

	"github.com/darshita2110/Crowd-Management-System/internal/clock"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// ObservationRepository persists derived crowd observations. Inserts are
// append-only; there is no update path.
type ObservationRepository interface {
	Insert(ctx context.Context, obs domain.Observation) error
	GetByID(ctx context.Context, id string) (domain.Observation, error)
	Find(ctx context.Context, filter domain.ObservationFilter, limit int) ([]domain.Observation, error)
	LatestByEvent(ctx context.Context, eventID string, limit int) ([]domain.Observation, error)
	LatestPerArea(ctx context.Context, eventID string) ([]domain.Observation, error)
	SumPersonCount(ctx context.Context, eventID string) (int, error)
}

// EventReader is the slice of the event store the resolver needs.
type EventReader interface {
	GetEvent(ctx context.Context, id string) (domain.Event, error)
}

// ObservationService ingests crowd observations and resolves current
// per-area density state.
type ObservationService struct {
	repo   ObservationRepository
	events EventReader
	clock  clock.Clock
}

func NewObservationService(repo ObservationRepository, events EventReader, clk clock.Clock) *ObservationService {
	return &ObservationService{
		repo:   repo,
		events: events,
		clock:  clk,
	}
}

type CreateObservationInput struct {
	EventID     string
	AreaName    string
	Location    domain.Location
	RadiusM     float64
	PersonCount int
}

// CreateObservation validates the measurement, derives area, density and
// level in memory, and persists the record with a single insert. Derived
// fields are frozen from this point on.
func (s *ObservationService) CreateObservation(ctx context.Context, in CreateObservationInput) (domain.Observation, error) {
	if in.EventID == "" {
		return domain.Observation{}, domain.ErrInvalidID
	}
	if in.AreaName == "" {
		return domain.Observation{}, domain.ErrAreaNameRequired
	}
	if in.RadiusM <= 0 {
		return domain.Observation{}, domain.ErrInvalidRadius
	}
	if in.PersonCount < 0 {
		return domain.Observation{}, domain.ErrNegativePersonCount
	}

	areaM2, peoplePerM2, level := domain.DeriveDensity(in.RadiusM, in.PersonCount)

	obs := domain.Observation{
		ID:          newRecordID(observationIDPrefix),
		EventID:     in.EventID,
		AreaName:    in.AreaName,
		Location:    in.Location,
		RadiusM:     in.RadiusM,
		PersonCount: in.PersonCount,
		AreaM2:      areaM2,
		PeoplePerM2: peoplePerM2,
		Level:       level,
		RecordedAt:  s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, obs); err != nil {
		return domain.Observation{}, err
	}
	return obs, nil
}

func (s *ObservationService) GetObservation(ctx context.Context, id string) (domain.Observation, error) {
	if id == "" {
		return domain.Observation{}, domain.ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

const defaultListLimit = 1000

// ListObservations returns matching records newest-first. An unknown level
// filter simply matches nothing.
func (s *ObservationService) ListObservations(ctx context.Context, filter domain.ObservationFilter) ([]domain.Observation, error) {
	return s.repo.Find(ctx, filter, defaultListLimit)
}

const defaultLatestLimit = 10

// LatestByEvent returns the newest observations for an event, capped at
// limit (default 10).
func (s *ObservationService) LatestByEvent(ctx context.Context, eventID string, limit int) ([]domain.Observation, error) {
	if eventID == "" {
		return nil, domain.ErrInvalidID
	}
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	return s.repo.LatestByEvent(ctx, eventID, limit)
}

// CurrentAreaState resolves the current density state for every defined area
// of an event: per area, the observation with the greatest timestamp wins
// (highest id among equal timestamps). Areas without observations report
// count 0 and level safe. An event with no areas collapses to a single
// synthetic summary over every observation ever recorded for it; that
// summary always reports safe.
func (s *ObservationService) CurrentAreaState(ctx context.Context, eventID string) ([]domain.AreaState, error) {
	if eventID == "" {
		return nil, domain.ErrInvalidID
	}

	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if len(event.Areas) == 0 {
		total, err := s.repo.SumPersonCount(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return []domain.AreaState{{
			ID:       fmt.Sprintf("%s-1", event.ID),
			Name:     event.Name,
			Count:    total,
			Capacity: event.Capacity,
			Level:    domain.DensitySafe.Dashboard(),
		}}, nil
	}

	latest, err := s.repo.LatestPerArea(ctx, eventID)
	if err != nil {
		return nil, err
	}
	byArea := make(map[string]domain.Observation, len(latest))
	for _, obs := range latest {
		byArea[obs.AreaName] = obs
	}

	states := make([]domain.AreaState, 0, len(event.Areas))
	for i, area := range event.Areas {
		state := domain.AreaState{
			ID:       fmt.Sprintf("%s-%d", event.ID, i+1),
			Name:     area.Name,
			Capacity: event.AreaCapacity(i),
			Level:    domain.DensitySafe.Dashboard(),
		}
		if obs, ok := byArea[area.Name]; ok {
			state.Count = obs.PersonCount
			state.Level = obs.Level.Dashboard()
		}
		states = append(states, state)
	}
	return states, nil
}
