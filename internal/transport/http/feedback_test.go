package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darshita2110/Crowd-Management-System/internal/app"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

type stubFeedbackService struct {
	feedback domain.Feedback
	list     []domain.Feedback
	summary  domain.FeedbackSummary
	err      error

	lastFilter domain.FeedbackFilter
}

func (s *stubFeedbackService) CreateFeedback(_ context.Context, _ app.FeedbackInput) (domain.Feedback, error) {
	return s.feedback, s.err
}

func (s *stubFeedbackService) GetFeedback(_ context.Context, _ string) (domain.Feedback, error) {
	return s.feedback, s.err
}

func (s *stubFeedbackService) ListFeedback(_ context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	s.lastFilter = filter
	return s.list, s.err
}

func (s *stubFeedbackService) SummarizeEvent(_ context.Context, eventID string) (domain.FeedbackSummary, error) {
	return s.summary, s.err
}

func feedbackRouter(svc *stubFeedbackService) http.Handler {
	return NewRouter(Services{Feedback: svc}, nil)
}

func TestHandleCreateFeedback(t *testing.T) {
	t.Parallel()

	stored := domain.Feedback{
		ID:          "FB1A2B3C4D5E6F",
		EventID:     "EVT1",
		UserID:      "USR7",
		Rating:      5,
		Comments:    "great sound, amazing crowd",
		Sentiment:   domain.SentimentPositive,
		SubmittedAt: time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			body:           `{"event_id":"EVT1","user_id":"USR7","rating":5,"comments":"great sound, amazing crowd"}`,
			expectedStatus: http.StatusCreated,
			expectedSubstr: `"sentiment":"positive"`,
		},
		{
			name:           "invalid json",
			body:           `{"event_id":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rating out of range",
			body:           `{"event_id":"EVT1","user_id":"USR7","rating":9}`,
			serviceErr:     domain.ErrInvalidRating,
			expectedStatus: http.StatusBadRequest,
			expectedSubstr: `"code":"invalid_rating"`,
		},
		{
			name:           "unknown event",
			body:           `{"event_id":"EVT404","user_id":"USR7","rating":3}`,
			serviceErr:     domain.ErrEventNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &stubFeedbackService{feedback: stored, err: tt.serviceErr}
			req := httptest.NewRequest(http.MethodPost, "/feedback/", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			feedbackRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedSubstr != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedSubstr)
			}
		})
	}
}

func TestHandleListFeedback_MinRating(t *testing.T) {
	t.Parallel()

	t.Run("valid filter", func(t *testing.T) {
		svc := &stubFeedbackService{}
		req := httptest.NewRequest(http.MethodGet, "/feedback/?event_id=EVT1&sentiment=negative&min_rating=2", nil)
		rec := httptest.NewRecorder()

		feedbackRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.FeedbackFilter{
			EventID:   "EVT1",
			Sentiment: "negative",
			MinRating: 2,
		}, svc.lastFilter)
	})

	t.Run("rejects bad min_rating", func(t *testing.T) {
		svc := &stubFeedbackService{}
		req := httptest.NewRequest(http.MethodGet, "/feedback/?min_rating=9", nil)
		rec := httptest.NewRecorder()

		feedbackRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleFeedbackSummary(t *testing.T) {
	t.Parallel()

	svc := &stubFeedbackService{summary: domain.FeedbackSummary{
		EventID:       "EVT1",
		Total:         4,
		AverageRating: 3.625,
		BySentiment: map[domain.Sentiment]int{
			domain.SentimentPositive: 3,
			domain.SentimentNegative: 1,
		},
	}}
	req := httptest.NewRequest(http.MethodGet, "/feedback/event/EVT1/summary", nil)
	rec := httptest.NewRecorder()

	feedbackRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"event_id": "EVT1",
		"total": 4,
		"average_rating": 3.625,
		"by_sentiment": {"positive": 3, "negative": 1}
	}`, rec.Body.String())
}
