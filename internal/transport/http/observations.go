package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/darshita2110/Crowd-Management-System/internal/app"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// ObservationService is the slice of the application layer the crowd density
// handlers need.
type ObservationService interface {
	CreateObservation(ctx context.Context, in app.CreateObservationInput) (domain.Observation, error)
	GetObservation(ctx context.Context, id string) (domain.Observation, error)
	ListObservations(ctx context.Context, filter domain.ObservationFilter) ([]domain.Observation, error)
	LatestByEvent(ctx context.Context, eventID string, limit int) ([]domain.Observation, error)
	CurrentAreaState(ctx context.Context, eventID string) ([]domain.AreaState, error)
}

type locationPayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type observationResponse struct {
	ID           string          `json:"id"`
	EventID      string          `json:"event_id"`
	AreaName     string          `json:"area_name"`
	Location     locationPayload `json:"location"`
	RadiusM      float64         `json:"radius_m"`
	PersonCount  int             `json:"person_count"`
	AreaM2       float64         `json:"area_m2"`
	PeoplePerM2  float64         `json:"people_per_m2"`
	DensityLevel string          `json:"density_level"`
	RecordedAt   time.Time       `json:"recorded_at"`
}

func toObservationResponse(obs domain.Observation) observationResponse {
	return observationResponse{
		ID:           obs.ID,
		EventID:      obs.EventID,
		AreaName:     obs.AreaName,
		Location:     locationPayload{Lat: obs.Location.Lat, Lon: obs.Location.Lon},
		RadiusM:      obs.RadiusM,
		PersonCount:  obs.PersonCount,
		AreaM2:       obs.AreaM2,
		PeoplePerM2:  obs.PeoplePerM2,
		DensityLevel: string(obs.Level),
		RecordedAt:   obs.RecordedAt,
	}
}

type createObservationRequest struct {
	EventID     string          `json:"event_id"`
	AreaName    string          `json:"area_name"`
	Location    locationPayload `json:"location"`
	RadiusM     float64         `json:"radius_m"`
	PersonCount int             `json:"person_count"`
}

// HandleCreateObservation ingests one crowd measurement and returns the
// stored record with its derived density fields.
func HandleCreateObservation(svc ObservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createObservationRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		obs, err := svc.CreateObservation(r.Context(), app.CreateObservationInput{
			EventID:     req.EventID,
			AreaName:    req.AreaName,
			Location:    domain.Location{Lat: req.Location.Lat, Lon: req.Location.Lon},
			RadiusM:     req.RadiusM,
			PersonCount: req.PersonCount,
		})
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toObservationResponse(obs))
	}
}

// HandleListObservations lists observations newest-first, optionally
// filtered by event, area and density level.
func HandleListObservations(svc ObservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		out, err := svc.ListObservations(r.Context(), domain.ObservationFilter{
			EventID:  q.Get("event_id"),
			AreaName: q.Get("area_name"),
			Level:    q.Get("density_level"),
		})
		if err != nil {
			respondError(w, err)
			return
		}
		resp := make([]observationResponse, 0, len(out))
		for _, obs := range out {
			resp = append(resp, toObservationResponse(obs))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleGetObservation returns one observation by id.
func HandleGetObservation(svc ObservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		obs, err := svc.GetObservation(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toObservationResponse(obs))
	}
}

// HandleLatestByEvent returns the most recent observations for an event,
// newest first. The limit query parameter caps the result.
func HandleLatestByEvent(svc ObservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "limit must be a positive integer")
				return
			}
			limit = n
		}

		out, err := svc.LatestByEvent(r.Context(), chi.URLParam(r, "eventID"), limit)
		if err != nil {
			respondError(w, err)
			return
		}
		resp := make([]observationResponse, 0, len(out))
		for _, obs := range out {
			resp = append(resp, toObservationResponse(obs))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type areaStateResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Capacity int    `json:"capacity"`
	Level    string `json:"level"`
}

// HandleAreaStates reports the current dashboard state of every area of an
// event, one entry per area, resolved from each area's latest observation.
func HandleAreaStates(svc ObservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states, err := svc.CurrentAreaState(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			respondError(w, err)
			return
		}
		resp := make([]areaStateResponse, 0, len(states))
		for _, st := range states {
			resp = append(resp, areaStateResponse{
				ID:       st.ID,
				Name:     st.Name,
				Count:    st.Count,
				Capacity: st.Capacity,
				Level:    st.Level,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
