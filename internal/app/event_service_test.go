package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshita2110/Crowd-Management-System/internal/clock"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

func TestEventService_CreateEvent(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	valid := EventInput{
		Name:      "Summer Festival",
		StartTime: now.Add(24 * time.Hour),
		EndTime:   now.Add(30 * time.Hour),
		Capacity:  3000,
		Areas: []domain.Area{
			{Name: "Main Stage", Location: domain.Location{Lat: 28.61, Lon: 77.2}, RadiusM: 25},
		},
	}

	t.Run("creates upcoming event", func(t *testing.T) {
		repo := newFakeEventRepo()
		svc := NewEventService(repo, clock.NewFixed(now))

		event, err := svc.CreateEvent(context.Background(), valid)
		require.NoError(t, err)

		assert.NotEmpty(t, event.ID)
		assert.Equal(t, domain.EventUpcoming, event.Status)
		assert.Equal(t, now, event.CreatedAt)
		assert.Len(t, repo.events, 1)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), clock.NewFixed(now))

		in := valid
		in.Name = ""
		_, err := svc.CreateEvent(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrEventNameRequired)

		in = valid
		in.Capacity = 0
		_, err = svc.CreateEvent(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidCapacity)

		in = valid
		in.Areas = []domain.Area{{Name: "Main Stage", RadiusM: 0}}
		_, err = svc.CreateEvent(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidRadius)

		in = valid
		in.Areas = []domain.Area{{RadiusM: 5}}
		_, err = svc.CreateEvent(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrAreaNameRequired)
	})
}

func TestEventService_UpdateStatus(t *testing.T) {
	t.Parallel()

	seed := domain.Event{ID: "EVT1", Name: "Summer Festival", Status: domain.EventUpcoming}

	t.Run("valid transition", func(t *testing.T) {
		repo := newFakeEventRepo(seed)
		svc := NewEventService(repo, clock.NewSystem())

		require.NoError(t, svc.UpdateStatus(context.Background(), "EVT1", "live"))
		assert.Equal(t, domain.EventLive, repo.events["EVT1"].Status)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(seed), clock.NewSystem())

		err := svc.UpdateStatus(context.Background(), "EVT1", "cancelled")
		assert.ErrorIs(t, err, domain.ErrInvalidEventStatus)
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo(), clock.NewSystem())

		err := svc.UpdateStatus(context.Background(), "EVT404", "live")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}

// fakeEventRepo is an in-memory EventRepository.
type fakeEventRepo struct {
	events map[string]domain.Event
}

func newFakeEventRepo(events ...domain.Event) *fakeEventRepo {
	m := make(map[string]domain.Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}
	return &fakeEventRepo{events: m}
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event domain.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetEvent(_ context.Context, id string) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) ListEvents(_ context.Context, status, organizerID string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		if status != "" && string(e.Status) != status {
			continue
		}
		if organizerID != "" && e.OrganizerID != organizerID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) UpdateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	existing, ok := f.events[event.ID]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	event.Status = existing.Status
	event.CreatedAt = existing.CreatedAt
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) SetEventStatus(_ context.Context, id string, status domain.EventStatus) error {
	event, ok := f.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.Status = status
	f.events[id] = event
	return nil
}

func (f *fakeEventRepo) DeleteEvent(_ context.Context, id string) error {
	if _, ok := f.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}
