package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rotisserie/eris"

	"github.com/darshita2110/Crowd-Management-System/internal/domain"
)

// FeedbackRepository stores event feedback with its derived sentiment.
type FeedbackRepository struct {
	pool Pool
}

func NewFeedbackRepository(pool Pool) *FeedbackRepository {
	return &FeedbackRepository{pool: pool}
}

const feedbackColumns = `id, event_id, user_id, rating, comments, sentiment, submitted_at`

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, fb domain.Feedback) error {
	const stmt = `
INSERT INTO feedback (id, event_id, user_id, rating, comments, sentiment, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, stmt,
		fb.ID,
		fb.EventID,
		fb.UserID,
		fb.Rating,
		fb.Comments,
		fb.Sentiment,
		fb.SubmittedAt,
	)
	if err != nil {
		return eris.Wrap(err, "postgres: create feedback")
	}
	return nil
}

func (r *FeedbackRepository) GetFeedback(ctx context.Context, id string) (domain.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`

	fb, err := scanFeedback(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.Feedback{}, domain.ErrFeedbackNotFound
		}
		return domain.Feedback{}, eris.Wrap(err, "postgres: get feedback")
	}
	return fb, nil
}

// ListFeedback returns matching feedback newest-first.
func (r *FeedbackRepository) ListFeedback(ctx context.Context, filter domain.FeedbackFilter, limit int) ([]domain.Feedback, error) {
	var (
		conds []string
		args  []any
	)
	if filter.EventID != "" {
		args = append(args, filter.EventID)
		conds = append(conds, "event_id = $"+strconv.Itoa(len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, "user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.Sentiment != "" {
		args = append(args, filter.Sentiment)
		conds = append(conds, "sentiment = $"+strconv.Itoa(len(args)))
	}
	if filter.MinRating > 0 {
		args = append(args, filter.MinRating)
		conds = append(conds, "rating >= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + feedbackColumns + ` FROM feedback`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += " ORDER BY submitted_at DESC, id DESC LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list feedback")
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan feedback")
		}
		out = append(out, fb)
	}
	if rows.Err() != nil {
		return nil, eris.Wrap(rows.Err(), "postgres: iterate feedback")
	}
	return out, nil
}

// SummarizeFeedback aggregates totals, average rating and sentiment counts
// for one event in a single grouped query.
func (r *FeedbackRepository) SummarizeFeedback(ctx context.Context, eventID string) (domain.FeedbackSummary, error) {
	const query = `
SELECT sentiment, COUNT(*), COALESCE(AVG(rating), 0)
FROM feedback
WHERE event_id = $1
GROUP BY sentiment`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return domain.FeedbackSummary{}, eris.Wrap(err, "postgres: summarize feedback")
	}
	defer rows.Close()

	summary := domain.FeedbackSummary{
		EventID:     eventID,
		BySentiment: make(map[domain.Sentiment]int),
	}
	weighted := 0.0
	for rows.Next() {
		var (
			sentiment domain.Sentiment
			count     int
			avg       float64
		)
		if err := rows.Scan(&sentiment, &count, &avg); err != nil {
			return domain.FeedbackSummary{}, eris.Wrap(err, "postgres: scan feedback summary")
		}
		summary.BySentiment[sentiment] = count
		summary.Total += count
		weighted += avg * float64(count)
	}
	if rows.Err() != nil {
		return domain.FeedbackSummary{}, eris.Wrap(rows.Err(), "postgres: iterate feedback summary")
	}
	if summary.Total > 0 {
		summary.AverageRating = weighted / float64(summary.Total)
	}
	return summary, nil
}

func scanFeedback(row pgx.Row) (domain.Feedback, error) {
	var fb domain.Feedback
	err := row.Scan(
		&fb.ID,
		&fb.EventID,
		&fb.UserID,
		&fb.Rating,
		&fb.Comments,
		&fb.Sentiment,
		&fb.SubmittedAt,
	)
	return fb, err
}
