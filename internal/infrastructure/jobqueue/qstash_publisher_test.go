package jobqueue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matchm8/matchm8/internal/platform/resilience"
)

func newTestPublisher(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) (*QStashPublisher, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	publisher := NewQStashPublisher(QStashPublisherConfig{
		BaseURL:          server.URL,
		Token:            "test-token",
		TargetBaseURL:    "http://api.internal",
		InternalJobToken: "job-token",
		Timeout:          2 * time.Second,
		CircuitBreaker:   breaker,
	}, nil)
	return publisher, server
}

func TestQStashPublisher_EnqueueSeasonRecompute(t *testing.T) {
	var gotPath, gotToken string
	publisher, _ := newTestPublisher(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("Upstash-Forward-X-Internal-Job-Token")
		w.WriteHeader(http.StatusOK)
	}, resilience.CircuitBreakerConfig{})

	if err := publisher.EnqueueSeasonRecompute(context.Background(), "2025"); err != nil {
		t.Fatalf("EnqueueSeasonRecompute error: %v", err)
	}
	if gotPath != "/v2/publish/http://api.internal/v1/internal/jobs/recompute" {
		t.Fatalf("publish path = %q", gotPath)
	}
	if gotToken != "job-token" {
		t.Fatalf("forwarded job token = %q", gotToken)
	}
}

func TestQStashPublisher_CircuitOpensAfterFailures(t *testing.T) {
	publisher, _ := newTestPublisher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := publisher.Enqueue(ctx, "/v1/internal/jobs/recompute", nil, 0, ""); err == nil {
			t.Fatal("expected publish failure")
		}
	}
	err := publisher.Enqueue(ctx, "/v1/internal/jobs/recompute", nil, 0, "")
	if err == nil {
		t.Fatal("expected circuit breaker rejection")
	}
	if publisher.breaker.State() != resilience.CircuitStateOpen {
		t.Fatalf("breaker state = %v, want open", publisher.breaker.State())
	}
}

func TestQStashPublisher_RejectsEmptyPath(t *testing.T) {
	publisher, _ := newTestPublisher(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, resilience.CircuitBreakerConfig{})

	if err := publisher.Enqueue(context.Background(), "  ", nil, 0, ""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestQStashPublisher_PublishAll(t *testing.T) {
	var calls atomic.Int32
	publisher, _ := newTestPublisher(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}, resilience.CircuitBreakerConfig{})

	jobs := []Job{
		{Path: "/v1/internal/jobs/recompute", Payload: map[string]any{"season": "2024"}},
		{Path: "/v1/internal/jobs/recompute", Payload: map[string]any{"season": "2025"}},
		{Path: "/v1/internal/jobs/recompute", Payload: map[string]any{"season": "2026"}},
	}
	if err := publisher.PublishAll(context.Background(), jobs); err != nil {
		t.Fatalf("PublishAll error: %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("calls = %d, want 3", calls.Load())
	}
}
