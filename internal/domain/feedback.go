package domain

import (
	"strings"
	"time"
)

// Sentiment is the coarse tag attached to free-text feedback comments.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

var positiveKeywords = []string{
	"great", "excellent", "amazing", "wonderful", "good", "love", "best", "awesome",
}

var negativeKeywords = []string{
	"bad", "poor", "terrible", "worst", "hate", "awful", "horrible", "disappointing",
}

// AnalyzeSentiment tags a comment by counting keyword hits. Empty comments
// and ties are neutral.
func AnalyzeSentiment(comments string) Sentiment {
	if comments == "" {
		return SentimentNeutral
	}
	lower := strings.ToLower(comments)

	var positive, negative int
	for _, word := range positiveKeywords {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	for _, word := range negativeKeywords {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// Feedback is a rating plus optional comment for an event. Sentiment is
// derived once at submission.
type Feedback struct {
	ID          string
	EventID     string
	UserID      string
	Rating      int
	Comments    string
	Sentiment   Sentiment
	SubmittedAt time.Time
}

// FeedbackFilter narrows feedback listings. Zero values mean "any".
type FeedbackFilter struct {
	EventID   string
	UserID    string
	Sentiment string
	MinRating int
}

// FeedbackSummary aggregates an event's feedback for dashboards.
type FeedbackSummary struct {
	EventID       string
	Total         int
	AverageRating float64
	BySentiment   map[Sentiment]int
}
