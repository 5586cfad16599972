package app

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/Pratikmehata/Sentiment-app/internal/adapter/metrics"
	"github.com/Pratikmehata/Sentiment-app/internal/domain"
)

// MinTextLength is the minimum accepted input length in runes, counted
// after trimming surrounding whitespace.
const MinTextLength = 10

const (
	errReasonInvalidInput = "invalid_input"
	errReasonInference    = "inference"
)

// Service runs sentiment predictions against the artifacts loaded at
// startup. The classifier and vectorizer are immutable, so a single Service
// is shared by all requests without locking.
type Service struct {
	classifier   domain.Classifier
	vectorizer   domain.Vectorizer
	clock        clockwork.Clock
	metrics      *metrics.PredictionMetrics
	modelVersion string
}

// NewService creates the application service around the loaded artifacts.
func NewService(classifier domain.Classifier, vectorizer domain.Vectorizer, clock clockwork.Clock, m *metrics.PredictionMetrics, modelVersion string) *Service {
	return &Service{
		classifier:   classifier,
		vectorizer:   vectorizer,
		clock:        clock,
		metrics:      m,
		modelVersion: modelVersion,
	}
}

// Predict classifies one piece of free text. Input shorter than
// MinTextLength after trimming fails with domain.ErrTextTooShort before the
// model is touched. Transform or classify failures are wrapped for
// server-side logging; callers must not echo them verbatim.
func (s *Service) Predict(ctx context.Context, text string) (*domain.Prediction, error) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < MinTextLength {
		s.metrics.RecordError(errReasonInvalidInput)
		return nil, domain.ErrTextTooShort
	}

	start := s.clock.Now()

	features, err := s.vectorizer.Transform(text)
	if err != nil {
		s.metrics.RecordError(errReasonInference)
		return nil, fmt.Errorf("failed to vectorize text: %w", err)
	}

	probs, err := s.classifier.PredictProba(features)
	if err != nil {
		s.metrics.RecordError(errReasonInference)
		return nil, fmt.Errorf("failed to classify text: %w", err)
	}

	// Classes are validated to be exactly [0, 1] at load time.
	negative := probs[domain.ClassNegative]
	positive := probs[domain.ClassPositive]

	sentiment := domain.SentimentNegative
	confidence := negative
	if positive > negative {
		sentiment = domain.SentimentPositive
		confidence = positive
	}

	now := s.clock.Now()
	s.metrics.RecordPrediction(string(sentiment), now.Sub(start).Seconds())

	return &domain.Prediction{
		Sentiment:    sentiment,
		Confidence:   confidence,
		Positive:     positive,
		Negative:     negative,
		ModelVersion: s.modelVersion,
		GeneratedAt:  now.UTC(),
	}, nil
}
