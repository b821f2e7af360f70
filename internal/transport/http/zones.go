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

// ZoneService is the slice of the application layer the zone handlers need.
type ZoneService interface {
	CreateZone(ctx context.Context, in app.ZoneInput) (domain.Zone, error)
	GetZone(ctx context.Context, id string) (domain.Zone, error)
	ListZones(ctx context.Context, eventID string) ([]domain.Zone, error)
	UpdateZone(ctx context.Context, id string, in app.ZoneInput) (domain.Zone, error)
	ApplyDensityUpdate(ctx context.Context, zoneID string, in app.DensityUpdateInput) (domain.Zone, error)
	DeleteZone(ctx context.Context, id string) error
}

type zoneResponse struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	Name           string    `json:"name"`
	Capacity       int       `json:"capacity"`
	CurrentDensity int       `json:"current_density"`
	DensityStatus  string    `json:"density_status"`
	CreatedAt      time.Time `json:"created_at"`
	LastUpdated    time.Time `json:"last_updated"`
}

func toZoneResponse(z domain.Zone) zoneResponse {
	return zoneResponse{
		ID:             z.ID,
		EventID:        z.EventID,
		Name:           z.Name,
		Capacity:       z.Capacity,
		CurrentDensity: z.CurrentDensity,
		DensityStatus:  string(z.DensityStatus),
		CreatedAt:      z.CreatedAt,
		LastUpdated:    z.LastUpdated,
	}
}

type zoneRequest struct {
	EventID        string `json:"event_id"`
	Name           string `json:"name"`
	Capacity       int    `json:"capacity"`
	CurrentDensity int    `json:"current_density"`
	DensityStatus  string `json:"density_status"`
}

func (r zoneRequest) toInput() app.ZoneInput {
	return app.ZoneInput{
		EventID:        r.EventID,
		Name:           r.Name,
		Capacity:       r.Capacity,
		CurrentDensity: r.CurrentDensity,
		DensityStatus:  r.DensityStatus,
	}
}

// HandleCreateZone registers a monitoring zone under an event.
func HandleCreateZone(svc ZoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		zone, err := svc.CreateZone(r.Context(), req.toInput())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toZoneResponse(zone))
	}
}

// HandleListZones lists zones, optionally narrowed to one event.
func HandleListZones(svc ZoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zones, err := svc.ListZones(r.Context(), r.URL.Query().Get("event_id"))
		if err != nil {
			respondError(w, err)
			return
		}
		resp := make([]zoneResponse, 0, len(zones))
		for _, z := range zones {
			resp = append(resp, toZoneResponse(z))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleGetZone returns one zone by id.
func HandleGetZone(svc ZoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zone, err := svc.GetZone(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toZoneResponse(zone))
	}
}

// HandleUpdateZone replaces a zone's definition.
func HandleUpdateZone(svc ZoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req zoneRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		zone, err := svc.UpdateZone(r.Context(), chi.URLParam(r, "id"), req.toInput())
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toZoneResponse(zone))
	}
}

type densityUpdateRequest struct {
	CurrentDensity int    `json:"current_density"`
	DensityStatus  string `json:"density_status"`
}

// HandleUpdateZoneDensity overwrites a zone's occupancy. Without an explicit
// density_status the stored status is derived from the occupancy ratio.
func HandleUpdateZoneDensity(svc ZoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req densityUpdateRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		zone, err := svc.ApplyDensityUpdate(r.Context(), chi.URLParam(r, "id"), app.DensityUpdateInput{
			CurrentDensity: req.CurrentDensity,
			DensityStatus:  req.DensityStatus,
		})
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toZoneResponse(zone))
	}
}

// HandleDeleteZone removes a zone.
func HandleDeleteZone(svc ZoneService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteZone(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
