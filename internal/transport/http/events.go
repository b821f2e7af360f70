package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/darshita2110/Crowd-Management-System/internal/app"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// EventService is the slice of the application layer the event handlers need.
type EventService interface {
	CreateEvent(ctx context.Context, in app.EventInput) (domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	ListEvents(ctx context.Context, status, organizerID string) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, id string, in app.EventInput) (domain.Event, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteEvent(ctx context.Context, id string) error
}

type areaPayload struct {
	Name     string          `json:"name"`
	Location locationPayload `json:"location"`
	RadiusM  float64         `json:"radius_m"`
	Capacity int             `json:"capacity,omitempty"`
}

type eventResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Capacity    int           `json:"capacity"`
	OrganizerID string        `json:"organizer_id,omitempty"`
	Status      string        `json:"status"`
	Areas       []areaPayload `json:"areas"`
	CreatedAt   time.Time     `json:"created_at"`
}

func toEventResponse(e domain.Event) eventResponse {
	areas := make([]areaPayload, 0, len(e.Areas))
	for _, a := range e.Areas {
		areas = append(areas, areaPayload{
			Name:     a.Name,
			Location: locationPayload{Lat: a.Location.Lat, Lon: a.Location.Lon},
			RadiusM:  a.RadiusM,
			Capacity: a.Capacity,
		})
	}
	return eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Capacity:    e.Capacity,
		OrganizerID: e.OrganizerID,
		Status:      string(e.Status),
		Areas:       areas,
		CreatedAt:   e.CreatedAt,
	}
}

type eventRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Capacity    int           `json:"capacity"`
	OrganizerID string        `json:"organizer_id"`
	Areas       []areaPayload `json:"areas"`
}

func (r eventRequest) toInput() app.EventInput {
	areas := make([]domain.Area, 0, len(r.Areas))
	for _, a := range r.Areas {
		areas = append(areas, domain.Area{
			Name:     a.Name,
			Location: domain.Location{Lat: a.Location.Lat, Lon: a.Location.Lon},
			RadiusM:  a.RadiusM,
			Capacity: a.Capacity,
		})
	}
	return app.EventInput{
		Name:        r.Name,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Capacity:    r.Capacity,
		OrganizerID: r.OrganizerID,
		Areas:       areas,
	}
}

// HandleCreateEvent registers a new event with its monitored areas.
func HandleCreateEvent(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		event, err := svc.CreateEvent(r.Context(), req.toInput())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEventResponse(event))
	}
}

// HandleListEvents lists events oldest first, optionally filtered by status
// and organizer.
func HandleListEvents(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		events, err := svc.ListEvents(r.Context(), q.Get("status"), q.Get("organizer_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		resp := make([]eventResponse, 0, len(events))
		for _, e := range events {
			resp = append(resp, toEventResponse(e))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleGetEvent returns one event by id.
func HandleGetEvent(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := svc.GetEvent(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(event))
	}
}

// HandleUpdateEvent replaces an event's definition. Status and creation time
// are not touched; status changes go through the status endpoint.
func HandleUpdateEvent(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		event, err := svc.UpdateEvent(r.Context(), chi.URLParam(r, "id"), req.toInput())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEventResponse(event))
	}
}

type eventStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateEventStatus moves an event through its lifecycle.
func HandleUpdateEventStatus(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req eventStatusRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		if err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"id": chi.URLParam(r, "id"), "status": req.Status})
	}
}

// HandleDeleteEvent removes an event.
func HandleDeleteEvent(svc EventService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
