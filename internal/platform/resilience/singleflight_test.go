package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_DeduplicatesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int32
	release := make(chan struct{})

	const callers = 8
	results := make([]any, callers)
	shared := make([]bool, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, err, wasShared := flight.Do("standings:2025", func() (any, error) {
				executions.Add(1)
				<-release
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = val
			shared[i] = wasShared
		}()
	}

	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
	sharedCount := 0
	for i := 0; i < callers; i++ {
		if results[i] != 42 {
			t.Fatalf("caller %d got %v, want 42", i, results[i])
		}
		if shared[i] {
			sharedCount++
		}
	}
	if sharedCount != callers-1 {
		t.Fatalf("shared count = %d, want %d", sharedCount, callers-1)
	}
}

func TestSingleFlight_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	a, _, _ := flight.Do("a", func() (any, error) { return "left", nil })
	b, _, _ := flight.Do("b", func() (any, error) { return "right", nil })

	if a != "left" || b != "right" {
		t.Fatalf("unexpected values: a=%v b=%v", a, b)
	}
}
