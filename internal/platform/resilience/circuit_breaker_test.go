package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(3, time.Minute, 1)
	for i := 0; i < 3; i++ {
		if err := breaker.Allow(); err != nil {
			t.Fatalf("allow %d: %v", i, err)
		}
		breaker.RecordFailure()
	}

	if state := breaker.State(); state != CircuitStateOpen {
		t.Fatalf("state = %s, want open", state)
	}
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	current := time.Now()
	breaker.now = func() time.Time { return current }

	breaker.RecordFailure()
	if state := breaker.State(); state != CircuitStateOpen {
		t.Fatalf("state = %s, want open", state)
	}

	current = current.Add(20 * time.Millisecond)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("half-open probe rejected: %v", err)
	}
	breaker.RecordSuccess()

	if state := breaker.State(); state != CircuitStateClosed {
		t.Fatalf("state = %s, want closed after successful probe", state)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	breaker := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	current := time.Now()
	breaker.now = func() time.Time { return current }

	breaker.RecordFailure()
	current = current.Add(20 * time.Millisecond)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("half-open probe rejected: %v", err)
	}
	breaker.RecordFailure()

	if state := breaker.State(); state != CircuitStateOpen {
		t.Fatalf("state = %s, want open after failed probe", state)
	}
}
