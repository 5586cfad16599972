package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv string `env:"APP_ENV" default:"development"`
	Port   string `env:"PORT" default:"10000"`

	ModelPath      string `env:"MODEL_PATH" default:"model/naive_bayes.gob"`
	VectorizerPath string `env:"VECTORIZER_PATH" default:"model/tfidf.gob"`
	ModelVersion   string `env:"MODEL_VERSION" default:"1.0"`

	CorpusDir     string `env:"CORPUS_DIR"`
	CorpusBaseURL string `env:"CORPUS_BASE_URL" default:"https://raw.githubusercontent.com/nltk/nltk_data/gh-pages/packages/corpora"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// CORPUS_DIR mirrors the NLTK convention of ~/nltk_data when unset.
	if cfg.CorpusDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory for corpus cache: %w", err)
		}
		cfg.CorpusDir = filepath.Join(home, "nltk_data")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %q", cfg.Port)
	}

	required := map[string]string{
		"MODEL_PATH":      cfg.ModelPath,
		"VECTORIZER_PATH": cfg.VectorizerPath,
		"MODEL_VERSION":   cfg.ModelVersion,
		"CORPUS_BASE_URL": cfg.CorpusBaseURL,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	return nil
}
