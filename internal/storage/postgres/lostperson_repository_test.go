package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

var reportRowColumns = []string{
	"id", "event_id", "reporter_id", "person_name", "age", "gender",
	"last_seen_lat", "last_seen_lon", "photo_url", "status", "priority", "reported_at",
}

func TestReportRepository_CreateReport(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	reported := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO lost_persons").
		WithArgs("LPA1B2C3D4E5F6", "EVT1", "USR3", "Aarav", 9, "male",
			28.61, 77.2, "", domain.ReportReported, domain.PriorityCritical, reported).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewReportRepository(mock)
	err = repo.CreateReport(context.Background(), domain.LostPersonReport{
		ID:               "LPA1B2C3D4E5F6",
		EventID:          "EVT1",
		ReporterID:       "USR3",
		PersonName:       "Aarav",
		Age:              9,
		Gender:           "male",
		LastSeenLocation: domain.Location{Lat: 28.61, Lon: 77.2},
		Status:           domain.ReportReported,
		Priority:         domain.PriorityCritical,
		ReportedAt:       reported,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_SetReportStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	reported := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	mock.ExpectQuery("UPDATE lost_persons SET status").
		WithArgs("LPA1B2C3D4E5F6", domain.ReportFound).
		WillReturnRows(pgxmock.NewRows(reportRowColumns).
			AddRow("LPA1B2C3D4E5F6", "EVT1", "USR3", "Aarav", 9, "male",
				28.61, 77.2, "", domain.ReportFound, domain.PriorityCritical, reported))

	repo := NewReportRepository(mock)
	report, err := repo.SetReportStatus(context.Background(), "LPA1B2C3D4E5F6", domain.ReportFound)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportFound, report.Status)
	assert.Equal(t, domain.Location{Lat: 28.61, Lon: 77.2}, report.LastSeenLocation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_SetReportStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("UPDATE lost_persons SET status").
		WithArgs("LP404", domain.ReportResolved).
		WillReturnRows(pgxmock.NewRows(reportRowColumns))

	repo := NewReportRepository(mock)
	_, err = repo.SetReportStatus(context.Background(), "LP404", domain.ReportResolved)
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_ListReports_FilterPlaceholders(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`event_id = \$1 AND status = \$2 ORDER BY reported_at DESC, id DESC LIMIT \$3`).
		WithArgs("EVT1", "searching", 100).
		WillReturnRows(pgxmock.NewRows(reportRowColumns))

	repo := NewReportRepository(mock)
	out, err := repo.ListReports(context.Background(), domain.ReportFilter{
		EventID: "EVT1",
		Status:  "searching",
	}, 100)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}
