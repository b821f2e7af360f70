package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

const (
	codeNotFound             = "not_found"
	codeMethodNotAllowed     = "method_not_allowed"
	codeInvalidRequestBody   = "invalid_request_body"
	codeInvalidID            = "invalid_id"
	codeInvalidRadius        = "invalid_radius"
	codeInvalidPersonCount   = "invalid_person_count"
	codeInvalidCapacity      = "invalid_capacity"
	codeInvalidDensity       = "invalid_density"
	codeInvalidDensityStatus = "invalid_density_status"
	codeInvalidEventStatus   = "invalid_event_status"
	codeInvalidReportStatus  = "invalid_report_status"
	codeInvalidRating        = "invalid_rating"
	codeEventNameRequired    = "event_name_required"
	codeZoneNameRequired     = "zone_name_required"
	codeAreaNameRequired     = "area_name_required"
	codePersonNameRequired   = "person_name_required"
	codeEventNotFound        = "event_not_found"
	codeZoneNotFound         = "zone_not_found"
	codeObservationNotFound  = "observation_not_found"
	codeFeedbackNotFound     = "feedback_not_found"
	codeReportNotFound       = "report_not_found"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorStatus maps each domain sentinel to its HTTP status and error code.
var errorStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrInvalidID:            {http.StatusBadRequest, codeInvalidID},
	domain.ErrInvalidRadius:        {http.StatusBadRequest, codeInvalidRadius},
	domain.ErrNegativePersonCount:  {http.StatusBadRequest, codeInvalidPersonCount},
	domain.ErrInvalidCapacity:      {http.StatusBadRequest, codeInvalidCapacity},
	domain.ErrNegativeDensity:      {http.StatusBadRequest, codeInvalidDensity},
	domain.ErrInvalidDensityStatus: {http.StatusBadRequest, codeInvalidDensityStatus},
	domain.ErrInvalidEventStatus:   {http.StatusBadRequest, codeInvalidEventStatus},
	domain.ErrInvalidReportStatus:  {http.StatusBadRequest, codeInvalidReportStatus},
	domain.ErrInvalidRating:        {http.StatusBadRequest, codeInvalidRating},
	domain.ErrEventNameRequired:    {http.StatusBadRequest, codeEventNameRequired},
	domain.ErrZoneNameRequired:     {http.StatusBadRequest, codeZoneNameRequired},
	domain.ErrAreaNameRequired:     {http.StatusBadRequest, codeAreaNameRequired},
	domain.ErrPersonNameRequired:   {http.StatusBadRequest, codePersonNameRequired},
	domain.ErrEventNotFound:        {http.StatusNotFound, codeEventNotFound},
	domain.ErrZoneNotFound:         {http.StatusNotFound, codeZoneNotFound},
	domain.ErrObservationNotFound:  {http.StatusNotFound, codeObservationNotFound},
	domain.ErrFeedbackNotFound:     {http.StatusNotFound, codeFeedbackNotFound},
	domain.ErrReportNotFound:       {http.StatusNotFound, codeReportNotFound},
}

// respondError translates a service error into the JSON error envelope.
// Unrecognized errors are logged and reported as a plain 500.
func respondError(w http.ResponseWriter, err error) {
	for sentinel, m := range errorStatus {
		if errors.Is(err, sentinel) {
			writeError(w, m.status, m.code, sentinel.Error())
			return
		}
	}
	zap.L().Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
