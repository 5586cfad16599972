package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthOK(_ context.Context) error { return nil }

func healthErr(msg string) func(context.Context) error {
	return func(_ context.Context) error { return errors.New(msg) }
}

func getPath(srv *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &mockPredictionService{})

	rec := getPath(srv, "/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status    string            `json:"status"`
		Timestamp string            `json:"timestamp"`
		Versions  map[string]string `json:"versions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "healthy", body.Status)

	_, err := time.Parse(time.RFC3339Nano, body.Timestamp)
	require.NoError(t, err, "timestamp must be well-formed")

	for _, key := range []string{"go", "echo", "app"} {
		assert.NotEmpty(t, body.Versions[key], "version %q must be non-empty", key)
	}
}

func TestHandleHealth_IndependentOfModelState(t *testing.T) {
	// Failing readiness checks must not affect the plain health endpoint.
	srv := newTestServer(t, &mockPredictionService{},
		withHealthChecks(HealthCheck{Name: "artifacts", Check: healthErr("gone")}),
	)

	rec := getPath(srv, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleLiveness(t *testing.T) {
	srv := newTestServer(t, &mockPredictionService{})

	rec := getPath(srv, "/health/live")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"status":"ok"`)
	assert.Contains(t, body, `"uptime"`)
}

func TestHandleReadiness_Healthy(t *testing.T) {
	srv := newTestServer(t, &mockPredictionService{},
		withHealthChecks(HealthCheck{Name: "artifacts", Check: healthOK}),
	)

	rec := getPath(srv, "/health/ready")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestHandleReadiness_ArtifactsGone(t *testing.T) {
	srv := newTestServer(t, &mockPredictionService{},
		withHealthChecks(HealthCheck{Name: "artifacts", Check: healthErr("stat model/naive_bayes.gob: no such file")}),
	)

	rec := getPath(srv, "/health/ready")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
	assert.Contains(t, rec.Body.String(), `"failed_check":"artifacts"`)
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, &mockPredictionService{})

	rec := getPath(srv, "/version")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"go_version"`)
}
