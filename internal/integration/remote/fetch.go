package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/farcloser/primordium/fault"

	"github.com/jschlyter/custom-integrations-analytics/version"
)

var (
	// ErrNetwork is returned when the endpoint cannot be reached or the transfer fails.
	ErrNetwork = errors.New("network failure")
	// ErrHTTPStatus is returned for non-2xx responses. It wraps ErrNetwork.
	ErrHTTPStatus = fmt.Errorf("%w: unexpected HTTP status", ErrNetwork)
	// ErrTooLarge is returned when the response body exceeds the size limit. It wraps ErrNetwork.
	ErrTooLarge = fmt.Errorf("%w: response too large", ErrNetwork)
)

// Fetch retrieves a JSON document over HTTP GET. A nil client uses http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, target string) ([]byte, error) {
	return fetch(ctx, client, target, maxBodySize)
}

func fetch(ctx context.Context, client *http.Client, target string, limit int64) ([]byte, error) {
	slog.Debug("remote.Fetch", "url", target, "stage", "start")

	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.Name()+"/"+version.Version())

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Debug("remote.Fetch", "url", target, "stage", "timeout")

			return nil, fmt.Errorf("%w: %w: after %v", ErrNetwork, fault.ErrTimeout, timeout)
		}

		slog.Debug("remote.Fetch", "url", target, "stage", "error")

		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, target, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrNetwork, err)
	}

	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, target, limit)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: response from %s", fault.ErrInvalidJSON, target)
	}

	slog.Debug("remote.Fetch", "url", target, "stage", "done", "bytes", len(body))

	return body, nil
}
