package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PredictionMetrics holds Prometheus metrics for the inference path.
type PredictionMetrics struct {
	PredictionsTotal  *prometheus.CounterVec
	PredictionErrors  *prometheus.CounterVec
	InferenceDuration prometheus.Histogram
}

// NewPredictionMetrics creates and registers prediction metrics on the given registry.
func NewPredictionMetrics(reg prometheus.Registerer) *PredictionMetrics {
	m := &PredictionMetrics{
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prediction",
			Name:      "total",
			Help:      "Total number of completed predictions by sentiment label.",
		}, []string{"sentiment"}),
		PredictionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "prediction",
			Name:      "errors_total",
			Help:      "Total number of failed prediction requests by reason.",
		}, []string{"reason"}),
		InferenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "prediction",
			Name:      "inference_duration_seconds",
			Help:      "Duration of vectorize plus classify in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	reg.MustRegister(m.PredictionsTotal, m.PredictionErrors, m.InferenceDuration)
	return m
}

// RecordPrediction counts a completed prediction for the given label.
func (m *PredictionMetrics) RecordPrediction(sentiment string, seconds float64) {
	m.PredictionsTotal.WithLabelValues(sentiment).Inc()
	m.InferenceDuration.Observe(seconds)
}

// RecordError counts a failed prediction request.
func (m *PredictionMetrics) RecordError(reason string) {
	m.PredictionErrors.WithLabelValues(reason).Inc()
}
