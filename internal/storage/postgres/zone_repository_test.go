package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

var zoneRowColumns = []string{
	"id", "event_id", "name", "capacity", "current_density",
	"density_status", "created_at", "last_updated",
}

func TestZoneRepository_GetZone_InvalidUUID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM zones WHERE id").
		WithArgs("not-a-uuid").
		WillReturnError(&pgconn.PgError{Code: pgInvalidTextRepr})

	repo := NewZoneRepository(mock)
	_, err = repo.GetZone(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneRepository_GetZone_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM zones WHERE id").
		WithArgs("5f0c23aa-93a7-4e1f-8f3d-6a34c0a1b2c3").
		WillReturnRows(pgxmock.NewRows(zoneRowColumns))

	repo := NewZoneRepository(mock)
	_, err = repo.GetZone(context.Background(), "5f0c23aa-93a7-4e1f-8f3d-6a34c0a1b2c3")
	assert.ErrorIs(t, err, domain.ErrZoneNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneRepository_SetDensity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := "5f0c23aa-93a7-4e1f-8f3d-6a34c0a1b2c3"
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	at := time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE zones").
		WithArgs(id, 850, domain.StatusCrowded, at).
		WillReturnRows(pgxmock.NewRows(zoneRowColumns).
			AddRow(id, "EVT1", "North Gate", 1000, 850, domain.StatusCrowded, created, at))

	repo := NewZoneRepository(mock)
	zone, err := repo.SetDensity(context.Background(), id, 850, domain.StatusCrowded, at)
	require.NoError(t, err)
	assert.Equal(t, 850, zone.CurrentDensity)
	assert.Equal(t, domain.StatusCrowded, zone.DensityStatus)
	assert.Equal(t, at, zone.LastUpdated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneRepository_CreateZone_UnknownEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	zone := domain.Zone{
		ID:            "5f0c23aa-93a7-4e1f-8f3d-6a34c0a1b2c3",
		EventID:       "EVT404",
		Name:          "North Gate",
		Capacity:      1000,
		DensityStatus: domain.StatusLow,
	}

	mock.ExpectExec("INSERT INTO zones").
		WithArgs(zone.ID, zone.EventID, zone.Name, zone.Capacity, zone.CurrentDensity,
			zone.DensityStatus, zone.CreatedAt, zone.LastUpdated).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	repo := NewZoneRepository(mock)
	err = repo.CreateZone(context.Background(), zone)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneRepository_DeleteZone(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := "5f0c23aa-93a7-4e1f-8f3d-6a34c0a1b2c3"

	t.Run("deletes existing zone", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM zones").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := NewZoneRepository(mock)
		assert.NoError(t, repo.DeleteZone(context.Background(), id))
	})

	t.Run("missing zone", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM zones").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := NewZoneRepository(mock)
		assert.ErrorIs(t, repo.DeleteZone(context.Background(), id), domain.ErrZoneNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
