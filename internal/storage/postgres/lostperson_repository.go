package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// ReportRepository stores lost person reports.
type ReportRepository struct {
	pool Pool
}

func NewReportRepository(pool Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

const reportColumns = `id, event_id, reporter_id, person_name, age, gender, last_seen_lat, last_seen_lon, photo_url, status, priority, reported_at`

func (r *ReportRepository) CreateReport(ctx context.Context, report domain.LostPersonReport) error {
	const stmt = `
INSERT INTO lost_persons (id, event_id, reporter_id, person_name, age, gender, last_seen_lat, last_seen_lon, photo_url, status, priority, reported_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, stmt,
		report.ID,
		report.EventID,
		report.ReporterID,
		report.PersonName,
		report.Age,
		report.Gender,
		report.LastSeenLocation.Lat,
		report.LastSeenLocation.Lon,
		report.PhotoURL,
		report.Status,
		report.Priority,
		report.ReportedAt,
	)
	if err != nil {
		return eris.Wrap(err, "postgres: create report")
	}
	return nil
}

func (r *ReportRepository) GetReport(ctx context.Context, id string) (domain.LostPersonReport, error) {
	query := `SELECT ` + reportColumns + ` FROM lost_persons WHERE id = $1`

	report, err := scanReport(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.LostPersonReport{}, domain.ErrReportNotFound
		}
		return domain.LostPersonReport{}, eris.Wrap(err, "postgres: get report")
	}
	return report, nil
}

// ListReports returns matching reports newest-first.
func (r *ReportRepository) ListReports(ctx context.Context, filter domain.ReportFilter, limit int) ([]domain.LostPersonReport, error) {
	var (
		conds []string
		args  []any
	)
	if filter.EventID != "" {
		args = append(args, filter.EventID)
		conds = append(conds, "event_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		conds = append(conds, "priority = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + reportColumns + ` FROM lost_persons`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY reported_at DESC, id DESC LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list reports")
	}
	defer rows.Close()

	var out []domain.LostPersonReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan report")
		}
		out = append(out, report)
	}
	if rows.Err() != nil {
		return nil, eris.Wrap(rows.Err(), "postgres: iterate reports")
	}
	return out, nil
}

func (r *ReportRepository) SetReportStatus(ctx context.Context, id string, status domain.ReportStatus) (domain.LostPersonReport, error) {
	query := `
UPDATE lost_persons
SET status = $2
WHERE id = $1
RETURNING ` + reportColumns

	report, err := scanReport(r.pool.QueryRow(ctx, query, id, status))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.LostPersonReport{}, domain.ErrReportNotFound
		}
		return domain.LostPersonReport{}, eris.Wrap(err, "postgres: set report status")
	}
	return report, nil
}

func scanReport(row pgx.Row) (domain.LostPersonReport, error) {
	var report domain.LostPersonReport
	err := row.Scan(
		&report.ID,
		&report.EventID,
		&report.ReporterID,
		&report.PersonName,
		&report.Age,
		&report.Gender,
		&report.LastSeenLocation.Lat,
		&report.LastSeenLocation.Lon,
		&report.PhotoURL,
		&report.Status,
		&report.Priority,
		&report.ReportedAt,
	)
	return report, err
}
