package app

import (
	"context"

	"github.com/darshita2110/Crowd-Management-System/internal/clock"
	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// FeedbackRepository persists event feedback.
type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, fb domain.Feedback) error
	GetFeedback(ctx context.Context, id string) (domain.Feedback, error)
	ListFeedback(ctx context.Context, filter domain.FeedbackFilter, limit int) ([]domain.Feedback, error)
	SummarizeFeedback(ctx context.Context, eventID string) (domain.FeedbackSummary, error)
}

// FeedbackService accepts event feedback and tags each comment with a
// sentiment at submission time.
type FeedbackService struct {
	repo  FeedbackRepository
	clock clock.Clock
}

func NewFeedbackService(repo FeedbackRepository, clk clock.Clock) *FeedbackService {
	return &FeedbackService{
		repo:  repo,
		clock: clk,
	}
}

type FeedbackInput struct {
	EventID  string
	UserID   string
	Rating   int
	Comments string
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, in FeedbackInput) (domain.Feedback, error) {
	if in.EventID == "" || in.UserID == "" {
		return domain.Feedback{}, domain.ErrInvalidID
	}
	if in.Rating < 1 || in.Rating > 5 {
		return domain.Feedback{}, domain.ErrInvalidRating
	}

	fb := domain.Feedback{
		ID:          newRecordID(feedbackIDPrefix),
		EventID:     in.EventID,
		UserID:      in.UserID,
		Rating:      in.Rating,
		Comments:    in.Comments,
		Sentiment:   domain.AnalyzeSentiment(in.Comments),
		SubmittedAt: s.clock.Now(),
	}

	if err := s.repo.CreateFeedback(ctx, fb); err != nil {
		return domain.Feedback{}, err
	}
	return fb, nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, id string) (domain.Feedback, error) {
	if id == "" {
		return domain.Feedback{}, domain.ErrInvalidID
	}
	return s.repo.GetFeedback(ctx, id)
}

// ListFeedback returns matching feedback newest-first.
func (s *FeedbackService) ListFeedback(ctx context.Context, filter domain.FeedbackFilter) ([]domain.Feedback, error) {
	return s.repo.ListFeedback(ctx, filter, defaultListLimit)
}

// SummarizeEvent aggregates an event's feedback counts and average rating.
func (s *FeedbackService) SummarizeEvent(ctx context.Context, eventID string) (domain.FeedbackSummary, error) {
	if eventID == "" {
		return domain.FeedbackSummary{}, domain.ErrInvalidID
	}
	return s.repo.SummarizeFeedback(ctx, eventID)
}
