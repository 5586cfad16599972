package domain

import "time"

// Sentiment is the label assigned to a piece of text.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
)

// Binary class labels as produced by the offline training step.
const (
	ClassNegative = 0
	ClassPositive = 1
)

// Prediction is the outcome of classifying one piece of text. Constructed
// fresh per request, never persisted.
type Prediction struct {
	Sentiment    Sentiment
	Confidence   float64
	Positive     float64
	Negative     float64
	ModelVersion string
	GeneratedAt  time.Time
}
