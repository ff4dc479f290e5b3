package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/farcloser/primordium/fault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jschlyter/custom-integrations-analytics/internal/integration/remote"
)

func TestFetchSendsHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "custom-integrations-analytics/"))
		_, _ = w.Write([]byte(`{"a": {"total": 1}}`))
	}))
	t.Cleanup(server.Close)

	body, err := remote.Fetch(context.Background(), server.Client(), server.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": {"total": 1}}`, string(body))
}

func TestFetchErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{}`, want: remote.ErrHTTPStatus},
		{name: "server error", status: http.StatusBadGateway, body: `{}`, want: remote.ErrNetwork},
		{name: "not json", status: http.StatusOK, body: `<html></html>`, want: fault.ErrInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			_, err := remote.Fetch(context.Background(), nil, server.URL)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFetchHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := remote.Fetch(ctx, nil, "http://127.0.0.1:1/")
	require.ErrorIs(t, err, remote.ErrNetwork)
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	t.Parallel()

	body := `{"a": {"total": 1}, "b": {"total": 2}}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	_, err := remote.FetchLimited(context.Background(), nil, server.URL, int64(len(body)-1))
	require.ErrorIs(t, err, remote.ErrTooLarge)
	require.ErrorIs(t, err, remote.ErrNetwork)
	assert.NotErrorIs(t, err, fault.ErrInvalidJSON)

	exact, err := remote.FetchLimited(context.Background(), nil, server.URL, int64(len(body)))
	require.NoError(t, err)
	assert.JSONEq(t, body, string(exact))
}
