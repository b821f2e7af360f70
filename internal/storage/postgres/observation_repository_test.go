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

var observationRowColumns = []string{
	"id", "event_id", "area_name", "lat", "lon", "radius_m",
	"person_count", "area_m2", "people_per_m2", "density_level", "recorded_at",
}

func observationRow(rows *pgxmock.Rows, obs domain.Observation) *pgxmock.Rows {
	return rows.AddRow(
		obs.ID, obs.EventID, obs.AreaName, obs.Location.Lat, obs.Location.Lon,
		obs.RadiusM, obs.PersonCount, obs.AreaM2, obs.PeoplePerM2,
		obs.Level, obs.RecordedAt,
	)
}

func TestObservationRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	obs := domain.Observation{
		ID:          "CDAABBCCDDEEFF",
		EventID:     "EVT1",
		AreaName:    "Main Entrance",
		Location:    domain.Location{Lat: 28.6139, Lon: 77.209},
		RadiusM:     10,
		PersonCount: 150,
		AreaM2:      314.16,
		PeoplePerM2: 0.477,
		Level:       domain.DensitySafe,
		RecordedAt:  time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO crowd_observations").
		WithArgs(obs.ID, obs.EventID, obs.AreaName, obs.Location.Lat, obs.Location.Lon,
			obs.RadiusM, obs.PersonCount, obs.AreaM2, obs.PeoplePerM2, obs.Level, obs.RecordedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewObservationRepository(mock)
	require.NoError(t, repo.Insert(context.Background(), obs))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestObservationRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM crowd_observations WHERE id").
		WithArgs("CD000000000000").
		WillReturnRows(pgxmock.NewRows(observationRowColumns))

	repo := NewObservationRepository(mock)
	_, err = repo.GetByID(context.Background(), "CD000000000000")
	assert.ErrorIs(t, err, domain.ErrObservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestObservationRepository_LatestPerArea(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	at := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows(observationRowColumns)
	rows = observationRow(rows, domain.Observation{
		ID: "CD000000000002", EventID: "EVT1", AreaName: "Food Court",
		RadiusM: 15, PersonCount: 90, AreaM2: 706.86, PeoplePerM2: 0.127,
		Level: domain.DensitySafe, RecordedAt: at,
	})
	rows = observationRow(rows, domain.Observation{
		ID: "CD000000000009", EventID: "EVT1", AreaName: "Main Stage",
		RadiusM: 25, PersonCount: 5000, AreaM2: 1963.5, PeoplePerM2: 2.546,
		Level: domain.DensityRisky, RecordedAt: at,
	})

	mock.ExpectQuery("SELECT DISTINCT ON \\(area_name\\)").
		WithArgs("EVT1").
		WillReturnRows(rows)

	repo := NewObservationRepository(mock)
	got, err := repo.LatestPerArea(context.Background(), "EVT1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Food Court", got[0].AreaName)
	assert.Equal(t, domain.DensityRisky, got[1].Level)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestObservationRepository_Find_BuildsFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM crowd_observations WHERE event_id = \\$1 AND density_level = \\$2").
		WithArgs("EVT1", "Overcrowded", 1000).
		WillReturnRows(pgxmock.NewRows(observationRowColumns))

	repo := NewObservationRepository(mock)
	got, err := repo.Find(context.Background(), domain.ObservationFilter{
		EventID: "EVT1",
		Level:   "Overcrowded",
	}, 1000)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestObservationRepository_SumPersonCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(person_count\\), 0\\) FROM crowd_observations").
		WithArgs("EVT2").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(6500))

	repo := NewObservationRepository(mock)
	total, err := repo.SumPersonCount(context.Background(), "EVT2")
	require.NoError(t, err)
	assert.Equal(t, 6500, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
