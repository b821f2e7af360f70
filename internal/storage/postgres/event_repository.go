package postgres

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// EventRepository stores events with their area definitions embedded as a
// jsonb document, mirroring how areas travel with the event on the wire.
type EventRepository struct {
	pool Pool
}

func NewEventRepository(pool Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

const eventColumns = `id, name, description, start_time, end_time, capacity, organizer_id, status, areas, created_at`

// areaDoc is the jsonb shape of one embedded area.
type areaDoc struct {
	Name     string `json:"name"`
	Location struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"location"`
	RadiusM  float64 `json:"radius_m"`
	Capacity int     `json:"capacity,omitempty"`
}

func encodeAreas(areas []domain.Area) ([]byte, error) {
	docs := make([]areaDoc, 0, len(areas))
	for _, a := range areas {
		var doc areaDoc
		doc.Name = a.Name
		doc.Location.Lat = a.Location.Lat
		doc.Location.Lon = a.Location.Lon
		doc.RadiusM = a.RadiusM
		doc.Capacity = a.Capacity
		docs = append(docs, doc)
	}
	return json.Marshal(docs)
}

func decodeAreas(raw []byte) ([]domain.Area, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var docs []areaDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, err
	}
	areas := make([]domain.Area, 0, len(docs))
	for _, doc := range docs {
		areas = append(areas, domain.Area{
			Name:     doc.Name,
			Location: domain.Location{Lat: doc.Location.Lat, Lon: doc.Location.Lon},
			RadiusM:  doc.RadiusM,
			Capacity: doc.Capacity,
		})
	}
	return areas, nil
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) error {
	areas, err := encodeAreas(event.Areas)
	if err != nil {
		return eris.Wrap(err, "postgres: encode areas")
	}

	const stmt = `
INSERT INTO events (id, name, description, start_time, end_time, capacity, organizer_id, status, areas, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.pool.Exec(ctx, stmt,
		event.ID,
		event.Name,
		event.Description,
		event.StartTime,
		event.EndTime,
		event.Capacity,
		event.OrganizerID,
		event.Status,
		areas,
		event.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return eris.Wrap(err, "postgres: duplicate event id")
		}
		return eris.Wrap(err, "postgres: create event")
	}
	return nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, eris.Wrap(err, "postgres: get event")
	}
	return event, nil
}

// ListEvents returns events oldest-created first, optionally narrowed by
// status and organizer.
func (r *EventRepository) ListEvents(ctx context.Context, status, organizerID string) ([]domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	if status != "" {
		args = append(args, status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if organizerID != "" {
		args = append(args, organizerID)
		conds = append(conds, "organizer_id = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list events")
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan event")
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, eris.Wrap(rows.Err(), "postgres: iterate events")
	}
	return events, nil
}

// UpdateEvent replaces the event definition, leaving status and created_at
// untouched.
func (r *EventRepository) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	areas, err := encodeAreas(event.Areas)
	if err != nil {
		return domain.Event{}, eris.Wrap(err, "postgres: encode areas")
	}

	query := `
UPDATE events
SET name = $2, description = $3, start_time = $4, end_time = $5, capacity = $6, organizer_id = $7, areas = $8
WHERE id = $1
RETURNING ` + eventColumns

	updated, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.ID,
		event.Name,
		event.Description,
		event.StartTime,
		event.EndTime,
		event.Capacity,
		event.OrganizerID,
		areas,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, eris.Wrap(err, "postgres: update event")
	}
	return updated, nil
}

func (r *EventRepository) SetEventStatus(ctx context.Context, id string, status domain.EventStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE events SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return eris.Wrap(err, "postgres: set event status")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return eris.Wrap(err, "postgres: delete event")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		event domain.Event
		raw   []byte
	)
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.StartTime,
		&event.EndTime,
		&event.Capacity,
		&event.OrganizerID,
		&event.Status,
		&raw,
		&event.CreatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}
	areas, err := decodeAreas(raw)
	if err != nil {
		return domain.Event{}, err
	}
	event.Areas = areas
	return event, nil
}
