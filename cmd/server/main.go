package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/Pratikmehata/Sentiment-app/internal/adapter/corpus"
	"github.com/Pratikmehata/Sentiment-app/internal/adapter/httpserver"
	"github.com/Pratikmehata/Sentiment-app/internal/adapter/metrics"
	"github.com/Pratikmehata/Sentiment-app/internal/adapter/modelstore"
	"github.com/Pratikmehata/Sentiment-app/internal/app"
	"github.com/Pratikmehata/Sentiment-app/internal/domain"
	"github.com/Pratikmehata/Sentiment-app/internal/platform/config"
	"github.com/Pratikmehata/Sentiment-app/internal/platform/logging"
	"github.com/Pratikmehata/Sentiment-app/internal/platform/version"
)

const corpusBootstrapTimeout = 2 * time.Minute

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func bootstrapCorpora(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), corpusBootstrapTimeout)
	defer cancel()

	b := corpus.New(cfg.CorpusDir, cfg.CorpusBaseURL, corpus.DefaultPackages)
	if err := b.Bootstrap(ctx); err != nil {
		slog.Error("Failed to prepare corpus cache", "error", err)
		os.Exit(1)
	}
}

func loadArtifacts(cfg *config.Config) (domain.Classifier, domain.Vectorizer) {
	classifier, vectorizer, err := modelstore.Load(cfg.ModelPath, cfg.VectorizerPath)
	if err != nil {
		slog.Error("Model loading failed", "error", err,
			"model_path", cfg.ModelPath, "vectorizer_path", cfg.VectorizerPath)
		os.Exit(1)
	}
	return classifier, vectorizer
}

// artifactCheck reports readiness based on the artifact files still being
// present on disk. The in-memory pair never changes after load.
func artifactCheck(paths ...string) func(ctx context.Context) error {
	return func(_ context.Context) error {
		for _, path := range paths {
			if _, err := os.Stat(path); err != nil {
				return err
			}
		}
		return nil
	}
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting",
		"env", cfg.AppEnv,
		"port", cfg.Port,
		"go", runtime.Version(),
		"echo", echo.Version,
		"version", version.Version,
		"commit", version.Commit)

	bootstrapCorpora(cfg)
	classifier, vectorizer := loadArtifacts(cfg)

	registry := metrics.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	predictionMetrics := metrics.NewPredictionMetrics(registry)

	clock := clockwork.NewRealClock()
	svc := app.NewService(classifier, vectorizer, clock, predictionMetrics, cfg.ModelVersion)

	healthChecks := []httpserver.HealthCheck{
		{Name: "artifacts", Check: artifactCheck(cfg.ModelPath, cfg.VectorizerPath)},
	}

	srv, err := httpserver.NewServer(cfg, svc, httpMetrics, metrics.Handler(registry), healthChecks)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
