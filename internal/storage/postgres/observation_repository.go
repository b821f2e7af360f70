package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// ObservationRepository is the append-only store adapter for derived crowd
// observations.
type ObservationRepository struct {
	pool Pool
}

func NewObservationRepository(pool Pool) *ObservationRepository {
	return &ObservationRepository{pool: pool}
}

const observationColumns = `id, event_id, area_name, lat, lon, radius_m, person_count, area_m2, people_per_m2, density_level, recorded_at`

// Insert persists one fully-derived observation. There is no update path;
// records are immutable once written.
func (r *ObservationRepository) Insert(ctx context.Context, obs domain.Observation) error {
	const stmt = `
INSERT INTO crowd_observations (id, event_id, area_name, lat, lon, radius_m, person_count, area_m2, people_per_m2, density_level, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, stmt,
		obs.ID,
		obs.EventID,
		obs.AreaName,
		obs.Location.Lat,
		obs.Location.Lon,
		obs.RadiusM,
		obs.PersonCount,
		obs.AreaM2,
		obs.PeoplePerM2,
		obs.Level,
		obs.RecordedAt,
	)
	if err != nil {
		return eris.Wrap(err, "postgres: insert observation")
	}
	return nil
}

func (r *ObservationRepository) GetByID(ctx context.Context, id string) (domain.Observation, error) {
	query := `SELECT ` + observationColumns + ` FROM crowd_observations WHERE id = $1`

	obs, err := scanObservation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Observation{}, domain.ErrObservationNotFound
		}
		return domain.Observation{}, eris.Wrap(err, "postgres: get observation")
	}
	return obs, nil
}

// Find returns matching observations newest-first, ids breaking timestamp
// ties so repeated reads see the same order.
func (r *ObservationRepository) Find(ctx context.Context, filter domain.ObservationFilter, limit int) ([]domain.Observation, error) {
	var (
		conds []string
		args  []any
	)
	if filter.EventID != "" {
		args = append(args, filter.EventID)
		conds = append(conds, "event_id = $"+strconv.Itoa(len(args)))
	}
	if filter.AreaName != "" {
		args = append(args, filter.AreaName)
		conds = append(conds, "area_name = $"+strconv.Itoa(len(args)))
	}
	if filter.Level != "" {
		args = append(args, filter.Level)
		conds = append(conds, "density_level = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + observationColumns + ` FROM crowd_observations`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY recorded_at DESC, id DESC LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: find observations")
	}
	defer rows.Close()

	return collectObservations(rows)
}

// LatestByEvent returns the newest observations for an event, capped at limit.
func (r *ObservationRepository) LatestByEvent(ctx context.Context, eventID string, limit int) ([]domain.Observation, error) {
	query := `
SELECT ` + observationColumns + `
FROM crowd_observations
WHERE event_id = $1
ORDER BY recorded_at DESC, id DESC
LIMIT $2`

	rows, err := r.pool.Query(ctx, query, eventID, limit)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: latest observations")
	}
	defer rows.Close()

	return collectObservations(rows)
}

// LatestPerArea resolves the single newest observation per distinct area
// name. DISTINCT ON with id as the secondary sort key makes the result
// deterministic when two observations share a timestamp: the highest id wins.
func (r *ObservationRepository) LatestPerArea(ctx context.Context, eventID string) ([]domain.Observation, error) {
	query := `
SELECT DISTINCT ON (area_name) ` + observationColumns + `
FROM crowd_observations
WHERE event_id = $1
ORDER BY area_name, recorded_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: latest per area")
	}
	defer rows.Close()

	return collectObservations(rows)
}

// SumPersonCount totals every observation ever recorded for an event.
func (r *ObservationRepository) SumPersonCount(ctx context.Context, eventID string) (int, error) {
	const query = `SELECT COALESCE(SUM(person_count), 0) FROM crowd_observations WHERE event_id = $1`

	var total int
	if err := r.pool.QueryRow(ctx, query, eventID).Scan(&total); err != nil {
		return 0, eris.Wrap(err, "postgres: sum person count")
	}
	return total, nil
}

func scanObservation(row pgx.Row) (domain.Observation, error) {
	var obs domain.Observation
	err := row.Scan(
		&obs.ID,
		&obs.EventID,
		&obs.AreaName,
		&obs.Location.Lat,
		&obs.Location.Lon,
		&obs.RadiusM,
		&obs.PersonCount,
		&obs.AreaM2,
		&obs.PeoplePerM2,
		&obs.Level,
		&obs.RecordedAt,
	)
	return obs, err
}

func collectObservations(rows pgx.Rows) ([]domain.Observation, error) {
	var out []domain.Observation
	for rows.Next() {
		obs, err := scanObservation(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan observation")
		}
		out = append(out, obs)
	}
	if rows.Err() != nil {
		return nil, eris.Wrap(rows.Err(), "postgres: iterate observations")
	}
	return out, nil
}
