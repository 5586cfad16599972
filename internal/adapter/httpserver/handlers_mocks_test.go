package httpserver

import (
	"context"
	"errors"
	"html/template"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Pratikmehata/Sentiment-app/internal/domain"
	"github.com/Pratikmehata/Sentiment-app/internal/platform/config"
)

// --- Mock implementations ---

type mockPredictionService struct {
	predictFn func(ctx context.Context, text string) (*domain.Prediction, error)
}

func (m *mockPredictionService) Predict(ctx context.Context, text string) (*domain.Prediction, error) {
	if m.predictFn != nil {
		return m.predictFn(ctx, text)
	}
	return nil, errors.New("not implemented")
}

// --- Test helpers ---

var testGeneratedAt = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func positivePrediction() *domain.Prediction {
	return &domain.Prediction{
		Sentiment:    domain.SentimentPositive,
		Confidence:   0.92,
		Positive:     0.92,
		Negative:     0.08,
		ModelVersion: "1.0",
		GeneratedAt:  testGeneratedAt,
	}
}

func newTestServer(t *testing.T, app predictionService, opts ...func(*Server)) *Server {
	t.Helper()

	tmpl := template.Must(template.New("index.html").Parse(`<html>Sentiment Analysis</html>`))

	e := echo.New()
	e.HideBanner = true

	srv := &Server{
		echo:      e,
		config:    &config.Config{AppEnv: "test", Port: "0", ModelVersion: "1.0"},
		app:       app,
		templates: tmpl,
		startTime: time.Now(),
	}

	for _, opt := range opts {
		opt(srv)
	}

	// Register routes so endpoints are available for testing
	srv.registerRoutes()

	return srv
}

func withHealthChecks(checks ...HealthCheck) func(*Server) {
	return func(s *Server) {
		s.healthChecks = checks
	}
}
