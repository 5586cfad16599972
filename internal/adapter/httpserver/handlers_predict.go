package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Pratikmehata/Sentiment-app/internal/domain"
	apperrors "github.com/Pratikmehata/Sentiment-app/internal/platform/errors"
)

func (s *Server) registerPredictRoutes() {
	s.echo.POST("/predict", s.handlePredict)
}

type probabilities struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
}

type predictionResponse struct {
	Sentiment     string        `json:"sentiment"`
	Confidence    float64       `json:"confidence"`
	Probabilities probabilities `json:"probabilities"`
	ModelVersion  string        `json:"model_version"`
	Timestamp     string        `json:"timestamp"`
}

// handlePredict serves POST /predict: form field "text" in, sentiment
// judgment out. Input errors surface to the caller; inference failures are
// logged server-side and answered with a generic internal error.
func (s *Server) handlePredict(c echo.Context) error {
	ctx := c.Request().Context()

	prediction, err := s.app.Predict(ctx, c.FormValue("text"))
	if errors.Is(err, domain.ErrTextTooShort) {
		return apperrors.ValidationError("Text must be at least 10 characters")
	}
	if err != nil {
		return apperrors.InternalError("internal server error", err)
	}

	response := predictionResponse{
		Sentiment:  string(prediction.Sentiment),
		Confidence: prediction.Confidence,
		Probabilities: probabilities{
			Positive: prediction.Positive,
			Negative: prediction.Negative,
		},
		ModelVersion: prediction.ModelVersion,
		Timestamp:    prediction.GeneratedAt.Format(time.RFC3339Nano),
	}
	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
