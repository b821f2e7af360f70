package app

import (
	"context"
	"time"

	"github.com/darshita2110/Crowd-Management-System/internal/clock"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// ZoneRepository persists zones. SetDensity overwrites occupancy in place
// (last-write-wins) and returns the row as written.
type ZoneRepository interface {
	CreateZone(ctx context.Context, zone domain.Zone) error
	GetZone(ctx context.Context, id string) (domain.Zone, error)
	ListZones(ctx context.Context, eventID string) ([]domain.Zone, error)
	UpdateZone(ctx context.Context, zone domain.Zone) (domain.Zone, error)
	SetDensity(ctx context.Context, id string, density int, status domain.DensityStatus, at time.Time) (domain.Zone, error)
	DeleteZone(ctx context.Context, id string) error
}

// ZoneService manages capacity-bounded zones and their occupancy status.
type ZoneService struct {
	repo  ZoneRepository
	clock clock.Clock
}

func NewZoneService(repo ZoneRepository, clk clock.Clock) *ZoneService {
	return &ZoneService{
		repo:  repo,
		clock: clk,
	}
}

type ZoneInput struct {
	EventID        string
	Name           string
	Capacity       int
	CurrentDensity int
	DensityStatus  string
}

func (in ZoneInput) validate() error {
	if in.EventID == "" {
		return domain.ErrInvalidID
	}
	if in.Name == "" {
		return domain.ErrZoneNameRequired
	}
	if in.Capacity <= 0 {
		return domain.ErrInvalidCapacity
	}
	if in.CurrentDensity < 0 {
		return domain.ErrNegativeDensity
	}
	if in.DensityStatus != "" && !domain.ValidDensityStatus(in.DensityStatus) {
		return domain.ErrInvalidDensityStatus
	}
	return nil
}

// status returns the explicit status if supplied, otherwise the one derived
// from the occupancy ratio.
func (in ZoneInput) status() domain.DensityStatus {
	if in.DensityStatus != "" {
		return domain.DensityStatus(in.DensityStatus)
	}
	return domain.ClassifyOccupancy(in.CurrentDensity, in.Capacity)
}

func (s *ZoneService) CreateZone(ctx context.Context, in ZoneInput) (domain.Zone, error) {
	if err := in.validate(); err != nil {
		return domain.Zone{}, err
	}

	now := s.clock.Now()
	zone := domain.Zone{
		ID:             newZoneID(),
		EventID:        in.EventID,
		Name:           in.Name,
		Capacity:       in.Capacity,
		CurrentDensity: in.CurrentDensity,
		DensityStatus:  in.status(),
		CreatedAt:      now,
		LastUpdated:    now,
	}

	if err := s.repo.CreateZone(ctx, zone); err != nil {
		return domain.Zone{}, err
	}
	return zone, nil
}

func (s *ZoneService) GetZone(ctx context.Context, id string) (domain.Zone, error) {
	if id == "" {
		return domain.Zone{}, domain.ErrInvalidID
	}
	return s.repo.GetZone(ctx, id)
}

// ListZones returns every zone, or only an event's zones when eventID is set.
func (s *ZoneService) ListZones(ctx context.Context, eventID string) ([]domain.Zone, error) {
	return s.repo.ListZones(ctx, eventID)
}

// UpdateZone replaces a zone's definition wholesale, keeping its id and
// creation time.
func (s *ZoneService) UpdateZone(ctx context.Context, id string, in ZoneInput) (domain.Zone, error) {
	if id == "" {
		return domain.Zone{}, domain.ErrInvalidID
	}
	if err := in.validate(); err != nil {
		return domain.Zone{}, err
	}

	zone := domain.Zone{
		ID:             id,
		EventID:        in.EventID,
		Name:           in.Name,
		Capacity:       in.Capacity,
		CurrentDensity: in.CurrentDensity,
		DensityStatus:  in.status(),
		LastUpdated:    s.clock.Now(),
	}
	return s.repo.UpdateZone(ctx, zone)
}

type DensityUpdateInput struct {
	CurrentDensity int
	// DensityStatus, when non-empty, is stored as-is without checking it
	// against the occupancy ratio.
	DensityStatus string
}

// ApplyDensityUpdate overwrites a zone's occupancy. When no explicit status
// is given, one is derived from currentDensity/capacity: >=0.8 crowded,
// >=0.5 moderate, otherwise low. No history of prior occupancy is kept.
func (s *ZoneService) ApplyDensityUpdate(ctx context.Context, zoneID string, in DensityUpdateInput) (domain.Zone, error) {
	if zoneID == "" {
		return domain.Zone{}, domain.ErrInvalidID
	}
	if in.CurrentDensity < 0 {
		return domain.Zone{}, domain.ErrNegativeDensity
	}
	if in.DensityStatus != "" && !domain.ValidDensityStatus(in.DensityStatus) {
		return domain.Zone{}, domain.ErrInvalidDensityStatus
	}

	status := domain.DensityStatus(in.DensityStatus)
	if status == "" {
		zone, err := s.repo.GetZone(ctx, zoneID)
		if err != nil {
			return domain.Zone{}, err
		}
		status = domain.ClassifyOccupancy(in.CurrentDensity, zone.Capacity)
	}

	return s.repo.SetDensity(ctx, zoneID, in.CurrentDensity, status, s.clock.Now())
}

func (s *ZoneService) DeleteZone(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidID
	}
	return s.repo.DeleteZone(ctx, id)
}
