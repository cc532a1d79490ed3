package notify

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/peladahub/pelada-league/internal/platform/logging"
	"github.com/peladahub/pelada-league/internal/platform/resilience"
)

func TestSessionUpdated_NoURLIsNoop(t *testing.T) {
	p := NewWebhookPublisher(WebhookConfig{}, logging.NewNop())

	err := p.SessionUpdated(context.Background(), "pl-1", "temporada-1", "presence")
	require.NoError(t, err)
}

func TestSessionUpdated_PostsPayload(t *testing.T) {
	var gotAuth atomic.Value
	var gotBody atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		gotBody.Store(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewWebhookPublisher(WebhookConfig{
		URL:     srv.URL,
		Token:   "hook-token",
		Timeout: 2 * time.Second,
	}, logging.NewNop())

	err := p.SessionUpdated(context.Background(), "pl-2026-01-10", "temporada-2026", "event")
	require.NoError(t, err)

	require.Equal(t, "Bearer hook-token", gotAuth.Load())

	var payload map[string]string
	require.NoError(t, sonic.Unmarshal(gotBody.Load().([]byte), &payload))
	require.Equal(t, "pl-2026-01-10", payload["peladaId"])
	require.Equal(t, "temporada-2026", payload["temporadaId"])
	require.Equal(t, "event", payload["alteracao"])
	require.NotEmpty(t, payload["timestamp"])
}

func TestSessionUpdated_TransientStatusOpensCircuit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewWebhookPublisher(WebhookConfig{
		URL:     srv.URL,
		Timeout: 2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, logging.NewNop())

	err := p.SessionUpdated(context.Background(), "pl-1", "temporada-1", "match")
	require.Error(t, err)
	require.EqualValues(t, 1, calls.Load())

	err = p.SessionUpdated(context.Background(), "pl-1", "temporada-1", "match")
	require.Error(t, err)
	require.Contains(t, err.Error(), "temporarily unavailable")
	require.EqualValues(t, 1, calls.Load())
}

func TestSessionUpdated_NonRetryableStatusDoesNotTrip(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	p := NewWebhookPublisher(WebhookConfig{
		URL:     srv.URL,
		Timeout: 2 * time.Second,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}, logging.NewNop())

	require.Error(t, p.SessionUpdated(context.Background(), "pl-1", "temporada-1", "teams"))
	require.Error(t, p.SessionUpdated(context.Background(), "pl-1", "temporada-1", "teams"))
	require.EqualValues(t, 2, calls.Load())
}
