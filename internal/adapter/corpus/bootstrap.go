// Package corpus prepares the local linguistic corpus cache at startup.
// The corpora are consumed by the offline training step, not by the serving
// path, so a failed download degrades gracefully instead of aborting the
// process; only an unusable cache directory is fatal.
package corpus

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultPackages are the corpora the training pipeline expects locally.
var DefaultPackages = []string{"stopwords", "wordnet", "punkt"}

const downloadTimeout = 60 * time.Second

// Bootstrapper downloads missing corpus packages into a cache directory.
type Bootstrapper struct {
	dir      string
	baseURL  string
	packages []string
	client   *http.Client
}

// New creates a Bootstrapper for the given cache directory and package list.
func New(dir, baseURL string, packages []string) *Bootstrapper {
	return &Bootstrapper{
		dir:      dir,
		baseURL:  baseURL,
		packages: packages,
		client:   &http.Client{Timeout: downloadTimeout},
	}
}

// Bootstrap ensures every configured package is present in the cache
// directory, downloading absent ones. Download failures are logged and
// skipped; the returned error is non-nil only if the cache directory itself
// cannot be used.
func (b *Bootstrapper) Bootstrap(ctx context.Context) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create corpus cache directory %s: %w", b.dir, err)
	}

	for _, pkg := range b.packages {
		path := filepath.Join(b.dir, pkg+".zip")
		if _, err := os.Stat(path); err == nil {
			slog.Info("Corpus package already installed", "package", pkg)
			continue
		}

		slog.Info("Downloading corpus package", "package", pkg)
		if err := b.download(ctx, pkg, path); err != nil {
			slog.Warn("Failed to download corpus package", "package", pkg, "error", err)
		}
	}

	return nil
}

func (b *Bootstrapper) download(ctx context.Context, pkg, path string) error {
	url := fmt.Sprintf("%s/%s.zip", b.baseURL, pkg)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	// Write to a temp file and rename so a partial download never looks installed.
	tmp, err := os.CreateTemp(b.dir, pkg+"-*.partial")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write corpus data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to install corpus package: %w", err)
	}
	return nil
}
