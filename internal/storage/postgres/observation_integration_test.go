package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
	"github.com/darshita2110/Crowd-Management-System/internal/storage/postgres"
	"github.com/darshita2110/Crowd-Management-System/internal/testutil"
)

func TestObservationRepository_LatestPerArea_Integration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()

	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateAll(t, ctx, pool)

	eventID := testutil.InsertEvent(t, ctx, pool, "EVT1", "Summer Festival", 3000)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	obs := func(id, area string, count int, at time.Time) domain.Observation {
		return domain.Observation{
			ID:          id,
			EventID:     eventID,
			AreaName:    area,
			Location:    domain.Location{Lat: 28.61, Lon: 77.2},
			RadiusM:     10,
			PersonCount: count,
			AreaM2:      314.16,
			PeoplePerM2: float64(count) / 314.16,
			Level:       domain.DensitySafe,
			RecordedAt:  at,
		}
	}

	// Main Stage has two observations; only the newer one should win.
	testutil.InsertObservation(t, ctx, pool, obs("CD000000000001", "Main Stage", 50, base))
	testutil.InsertObservation(t, ctx, pool, obs("CD000000000002", "Main Stage", 700, base.Add(5*time.Minute)))
	testutil.InsertObservation(t, ctx, pool, obs("CD000000000003", "Food Court", 30, base))
	// Equal timestamps resolve to the highest id.
	testutil.InsertObservation(t, ctx, pool, obs("CD000000000004", "Entrance", 10, base))
	testutil.InsertObservation(t, ctx, pool, obs("CD000000000005", "Entrance", 25, base))

	repo := postgres.NewObservationRepository(pool)
	latest, err := repo.LatestPerArea(ctx, eventID)
	require.NoError(t, err)

	byArea := make(map[string]domain.Observation, len(latest))
	for _, o := range latest {
		byArea[o.AreaName] = o
	}

	require.Len(t, byArea, 3)
	assert.Equal(t, "CD000000000002", byArea["Main Stage"].ID)
	assert.Equal(t, 700, byArea["Main Stage"].PersonCount)
	assert.Equal(t, "CD000000000003", byArea["Food Court"].ID)
	assert.Equal(t, "CD000000000005", byArea["Entrance"].ID)

	total, err := repo.SumPersonCount(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, 815, total)
}
