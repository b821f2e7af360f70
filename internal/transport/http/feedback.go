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

// FeedbackService is the slice of the application layer the feedback
// handlers need.
type FeedbackService interface {
	CreateFeedback(ctx context.Context, in app.FeedbackInput) (domain.Feedback, error)
	GetFeedback(ctx context.Context, id string) (domain.Feedback, error)
	ListFeedback(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	SummarizeEvent(ctx context.Context, eventID string) (domain.FeedbackSummary, error)
}

type feedbackResponse struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments,omitempty"`
	Sentiment   string    `json:"sentiment"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func toFeedbackResponse(fb domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:          fb.ID,
		EventID:     fb.EventID,
		UserID:      fb.UserID,
		Rating:      fb.Rating,
		Comments:    fb.Comments,
		Sentiment:   string(fb.Sentiment),
		SubmittedAt: fb.SubmittedAt,
	}
}

type createFeedbackRequest struct {
	EventID  string `json:"event_id"`
	UserID   string `json:"user_id"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

// HandleCreateFeedback records attendee feedback. Sentiment is derived from
// the comment text at submission time.
func HandleCreateFeedback(svc FeedbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createFeedbackRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		fb, err := svc.CreateFeedback(r.Context(), app.FeedbackInput{
			EventID:  req.EventID,
			UserID:   req.UserID,
			Rating:   req.Rating,
			Comments: req.Comments,
		})
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toFeedbackResponse(fb))
	}
}

// HandleListFeedback lists feedback newest-first with optional filters.
func HandleListFeedback(svc FeedbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := domain.FeedbackFilter{
			EventID:   q.Get("event_id"),
			UserID:    q.Get("user_id"),
			Sentiment: q.Get("sentiment"),
		}
		if raw := q.Get("min_rating"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > 5 {
				writeError(w, http.StatusBadRequest, codeInvalidRating, "min_rating must be between 1 and 5")
				return
			}
			filter.MinRating = n
		}

		out, err := svc.ListFeedback(r.Context(), filter)
		if err != nil {
			respondError(w, err)
			return
		}
		resp := make([]feedbackResponse, 0, len(out))
		for _, fb := range out {
			resp = append(resp, toFeedbackResponse(fb))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleGetFeedback returns one feedback record by id.
func HandleGetFeedback(svc FeedbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fb, err := svc.GetFeedback(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toFeedbackResponse(fb))
	}
}

type feedbackSummaryResponse struct {
	EventID       string         `json:"event_id"`
	Total         int            `json:"total"`
	AverageRating float64        `json:"average_rating"`
	BySentiment   map[string]int `json:"by_sentiment"`
}

// HandleFeedbackSummary aggregates an event's feedback for dashboards.
func HandleFeedbackSummary(svc FeedbackService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.SummarizeEvent(r.Context(), chi.URLParam(r, "eventID"))
		if err != nil {
			respondError(w, err)
			return
		}

		bySentiment := make(map[string]int, len(summary.BySentiment))
		for sentiment, count := range summary.BySentiment {
			bySentiment[string(sentiment)] = count
		}
		writeJSON(w, http.StatusOK, feedbackSummaryResponse{
			EventID:       summary.EventID,
			Total:         summary.Total,
			AverageRating: summary.AverageRating,
			BySentiment:   bySentiment,
		})
	}
}
