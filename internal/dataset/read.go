// Package dataset loads the usage and HACS datasets from a local cache file or a remote endpoint.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/farcloser/primordium/fault"

	analytics "github.com/jschlyter/custom-integrations-analytics"
	"github.com/jschlyter/custom-integrations-analytics/internal/integration/disk"
	"github.com/jschlyter/custom-integrations-analytics/internal/integration/remote"
)

// ReadOptions controls how a dataset is resolved.
type ReadOptions struct {
	// HTTPClient is used for remote fetches (default: http.DefaultClient).
	HTTPClient *http.Client
	// Persist writes a fetched payload to the local path for later runs, once it has parsed.
	Persist bool
}

// LoadUsage resolves the usage dataset at path, or fetches it from url, and parses it.
// An empty path always fetches.
func LoadUsage(ctx context.Context, path, url string, opts ReadOptions) ([]analytics.UsageRecord, error) {
	return load(ctx, path, url, opts, ParseUsage)
}

// LoadIntegrations resolves and parses the HACS integration dataset the same way as LoadUsage.
func LoadIntegrations(ctx context.Context, path, url string, opts ReadOptions) ([]analytics.Integration, error) {
	return load(ctx, path, url, opts, ParseIntegrations)
}

func load[T any](ctx context.Context, path, url string, opts ReadOptions, parse func([]byte) (T, error)) (T, error) {
	var zero T

	data, fetched, err := read(ctx, path, url, opts.HTTPClient)
	if err != nil {
		return zero, err
	}

	parsed, err := parse(data)
	if err != nil {
		return zero, err
	}

	// A payload that fails to parse is never cached.
	if fetched && opts.Persist && path != "" {
		if err := disk.WriteFile(path, data); err != nil {
			return zero, fmt.Errorf("caching %s: %w", path, err)
		}

		slog.Debug("dataset.load", "path", path, "stage", "persisted")
	}

	return parsed, nil
}

// read returns the raw dataset at path if it exists, and fetches it from url otherwise.
func read(ctx context.Context, path, url string, client *http.Client) ([]byte, bool, error) {
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified dataset files
		if err == nil {
			slog.Debug("dataset.read", "path", path, "source", "file")

			return data, false, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
		}
	}

	slog.Debug("dataset.read", "path", path, "url", url, "source", "remote")

	data, err := remote.Fetch(ctx, client, url)
	if err != nil {
		return nil, false, err
	}

	return data, true, nil
}
