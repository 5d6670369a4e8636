package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)

	store.Set(ctx, "table:2025:3", []string{"alice", "bob"})
	value, ok := store.Get(ctx, "table:2025:3")
	if !ok {
		t.Fatalf("expected cached value")
	}
	rows := value.([]string)
	if len(rows) != 2 || rows[0] != "alice" {
		t.Fatalf("unexpected cached rows: %v", rows)
	}

	store.Delete(ctx, "table:2025:3")
	if _, ok := store.Get(ctx, "table:2025:3"); ok {
		t.Fatalf("value must be gone after delete")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(20 * time.Millisecond)

	store.Set(ctx, "totals:2025", 10)
	if _, ok := store.Get(ctx, "totals:2025"); !ok {
		t.Fatalf("expected value before expiry")
	}

	time.Sleep(40 * time.Millisecond)
	if _, ok := store.Get(ctx, "totals:2025"); ok {
		t.Fatalf("expected value to expire")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "standings:2025:totals", 1)
	store.Set(ctx, "standings:2025:matrix", 2)
	store.Set(ctx, "standings:2024:totals", 3)

	store.DeletePrefix(ctx, "standings:2025:")

	if _, ok := store.Get(ctx, "standings:2025:totals"); ok {
		t.Fatalf("prefix delete missed totals key")
	}
	if _, ok := store.Get(ctx, "standings:2024:totals"); !ok {
		t.Fatalf("prefix delete removed unrelated key")
	}
}

func TestStore_NegativeTTLDisablesCaching(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(-1)

	store.Set(ctx, "table:2025:1", 42)
	if _, ok := store.Get(ctx, "table:2025:1"); ok {
		t.Fatalf("disabled store must never return cached values")
	}

	var loads atomic.Int32
	for i := 0; i < 3; i++ {
		value, err := store.GetOrLoad(ctx, "table:2025:1", func(context.Context) (any, error) {
			loads.Add(1)
			return "rows", nil
		})
		if err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
		if value != "rows" {
			t.Fatalf("unexpected value: %v", value)
		}
	}
	if got := loads.Load(); got != 3 {
		t.Fatalf("loader ran %d times, want 3", got)
	}
}

func TestStore_GetOrLoadRunsLoaderOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	var loads atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "season:2025", func(context.Context) (any, error) {
				loads.Add(1)
				time.Sleep(10 * time.Millisecond)
				return "rows", nil
			})
			if err != nil {
				t.Errorf("GetOrLoad error: %v", err)
			}
			if value != "rows" {
				t.Errorf("unexpected value: %v", value)
			}
		}()
	}
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestStore_GetOrLoadPropagatesError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	wantErr := fmt.Errorf("load failed")
	_, err := store.GetOrLoad(ctx, "bad", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if err == nil {
		t.Fatalf("expected loader error")
	}
	if _, ok := store.Get(ctx, "bad"); ok {
		t.Fatalf("failed load must not be cached")
	}
}
