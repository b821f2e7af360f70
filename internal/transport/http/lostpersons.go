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

// LostPersonService is the slice of the application layer the lost person
// handlers need.
type LostPersonService interface {
	CreateReport(ctx context.Context, in app.ReportInput) (domain.LostPersonReport, error)
	GetReport(ctx context.Context, id string) (domain.LostPersonReport, error)
	ListReports(ctx context.Context, filter domain.ReportFilter) ([]domain.LostPersonReport, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.LostPersonReport, error)
}

type reportResponse struct {
	ID               string          `json:"id"`
	EventID          string          `json:"event_id"`
	ReporterID       string          `json:"reporter_id"`
	PersonName       string          `json:"person_name"`
	Age              int             `json:"age"`
	Gender           string          `json:"gender,omitempty"`
	LastSeenLocation locationPayload `json:"last_seen_location"`
	PhotoURL         string          `json:"photo_url,omitempty"`
	Status           string          `json:"status"`
	Priority         string          `json:"priority"`
	ReportedAt       time.Time       `json:"reported_at"`
}

func toReportResponse(report domain.LostPersonReport) reportResponse {
	return reportResponse{
		ID:               report.ID,
		EventID:          report.EventID,
		ReporterID:       report.ReporterID,
		PersonName:       report.PersonName,
		Age:              report.Age,
		Gender:           report.Gender,
		LastSeenLocation: locationPayload{Lat: report.LastSeenLocation.Lat, Lon: report.LastSeenLocation.Lon},
		PhotoURL:         report.PhotoURL,
		Status:           string(report.Status),
		Priority:         string(report.Priority),
		ReportedAt:       report.ReportedAt,
	}
}

type createReportRequest struct {
	EventID          string          `json:"event_id"`
	ReporterID       string          `json:"reporter_id"`
	PersonName       string          `json:"person_name"`
	Age              int             `json:"age"`
	Gender           string          `json:"gender"`
	LastSeenLocation locationPayload `json:"last_seen_location"`
	PhotoURL         string          `json:"photo_url"`
}

// HandleCreateReport files a lost person report. Children and the elderly
// are prioritized as critical immediately.
func HandleCreateReport(svc LostPersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createReportRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		report, err := svc.CreateReport(r.Context(), app.ReportInput{
			EventID:          req.EventID,
			ReporterID:       req.ReporterID,
			PersonName:       req.PersonName,
			Age:              req.Age,
			Gender:           req.Gender,
			LastSeenLocation: domain.Location{Lat: req.LastSeenLocation.Lat, Lon: req.LastSeenLocation.Lon},
			PhotoURL:         req.PhotoURL,
		})
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toReportResponse(report))
	}
}

// HandleListReports lists reports newest-first with optional filters.
func HandleListReports(svc LostPersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		out, err := svc.ListReports(r.Context(), domain.ReportFilter{
			EventID:  q.Get("event_id"),
			Status:   q.Get("status"),
			Priority: q.Get("priority"),
		})
		if err != nil {
			respondError(w, err)
			return
		}
		resp := make([]reportResponse, 0, len(out))
		for _, report := range out {
			resp = append(resp, toReportResponse(report))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleGetReport returns one report by id.
func HandleGetReport(svc LostPersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.GetReport(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(report))
	}
}

type reportStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateReportStatus moves a report through the search workflow.
func HandleUpdateReportStatus(svc LostPersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reportStatusRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		report, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(report))
	}
}
