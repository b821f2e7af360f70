package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// ZoneRepository stores capacity-bounded zones. Zones are uuid-keyed, so a
// malformed id surfaces as domain.ErrInvalidID rather than a not-found.
type ZoneRepository struct {
	pool Pool
}

func NewZoneRepository(pool Pool) *ZoneRepository {
	return &ZoneRepository{pool: pool}
}

const zoneColumns = `id, event_id, name, capacity, current_density, density_status, created_at, last_updated`

func (r *ZoneRepository) CreateZone(ctx context.Context, zone domain.Zone) error {
	const stmt = `
INSERT INTO zones (id, event_id, name, capacity, current_density, density_status, created_at, last_updated)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, stmt,
		zone.ID,
		zone.EventID,
		zone.Name,
		zone.Capacity,
		zone.CurrentDensity,
		zone.DensityStatus,
		zone.CreatedAt,
		zone.LastUpdated,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrEventNotFound
		}
		return eris.Wrap(err, "postgres: create zone")
	}
	return nil
}

func (r *ZoneRepository) GetZone(ctx context.Context, id string) (domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE id = $1`

	zone, err := scanZone(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Zone{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Zone{}, domain.ErrZoneNotFound
		}
		return domain.Zone{}, eris.Wrap(err, "postgres: get zone")
	}
	return zone, nil
}

// ListZones returns all zones, or an event's zones when eventID is set,
// oldest-created first.
func (r *ZoneRepository) ListZones(ctx context.Context, eventID string) ([]domain.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones ORDER BY created_at ASC`
	args := []any{}
	if eventID != "" {
		query = `SELECT ` + zoneColumns + ` FROM zones WHERE event_id = $1 ORDER BY created_at ASC`
		args = append(args, eventID)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list zones")
	}
	defer rows.Close()

	var zones []domain.Zone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan zone")
		}
		zones = append(zones, zone)
	}
	if rows.Err() != nil {
		return nil, eris.Wrap(rows.Err(), "postgres: iterate zones")
	}
	return zones, nil
}

// UpdateZone replaces a zone's definition in place, keeping created_at.
func (r *ZoneRepository) UpdateZone(ctx context.Context, zone domain.Zone) (domain.Zone, error) {
	query := `
UPDATE zones
SET event_id = $2, name = $3, capacity = $4, current_density = $5, density_status = $6, last_updated = $7
WHERE id = $1
RETURNING ` + zoneColumns

	updated, err := scanZone(r.pool.QueryRow(ctx, query,
		zone.ID,
		zone.EventID,
		zone.Name,
		zone.Capacity,
		zone.CurrentDensity,
		zone.DensityStatus,
		zone.LastUpdated,
	))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Zone{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Zone{}, domain.ErrZoneNotFound
		}
		return domain.Zone{}, eris.Wrap(err, "postgres: update zone")
	}
	return updated, nil
}

// SetDensity overwrites occupancy and status. Last write wins; there is no
// optimistic concurrency check.
func (r *ZoneRepository) SetDensity(ctx context.Context, id string, density int, status domain.DensityStatus, at time.Time) (domain.Zone, error) {
	query := `
UPDATE zones
SET current_density = $2, density_status = $3, last_updated = $4
WHERE id = $1
RETURNING ` + zoneColumns

	zone, err := scanZone(r.pool.QueryRow(ctx, query, id, density, status, at))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Zone{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Zone{}, domain.ErrZoneNotFound
		}
		return domain.Zone{}, eris.Wrap(err, "postgres: set zone density")
	}
	return zone, nil
}

func (r *ZoneRepository) DeleteZone(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return eris.Wrap(err, "postgres: delete zone")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrZoneNotFound
	}
	return nil
}

func scanZone(row pgx.Row) (domain.Zone, error) {
	var zone domain.Zone
	err := row.Scan(
		&zone.ID,
		&zone.EventID,
		&zone.Name,
		&zone.Capacity,
		&zone.CurrentDensity,
		&zone.DensityStatus,
		&zone.CreatedAt,
		&zone.LastUpdated,
	)
	return zone, err
}
