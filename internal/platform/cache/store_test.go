package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrFill_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	fill := func() (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "standings", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrFill(context.Background(), "standings:kz-kpl-2026", fill)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "standings" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("fill called %d times, want 1", got)
	}
}

func TestStore_GetOrFill_UsesCachedValueAfterFirstFill(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	fill := func() (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrFill(context.Background(), "k", fill); err != nil {
		t.Fatalf("first GetOrFill error: %v", err)
	}
	if _, err := store.GetOrFill(context.Background(), "k", fill); err != nil {
		t.Fatalf("second GetOrFill error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("fill called %d times, want 1", got)
	}
}

func TestStore_GetOrFill_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	fill := func() (any, error) {
		if calls.Add(1) == 1 {
			return nil, errFillFailed
		}
		return "recovered", nil
	}

	if _, err := store.GetOrFill(context.Background(), "flaky", fill); !errors.Is(err, errFillFailed) {
		t.Fatalf("expected fill error, got %v", err)
	}

	v, err := store.GetOrFill(context.Background(), "flaky", fill)
	if err != nil {
		t.Fatalf("second GetOrFill error: %v", err)
	}
	if got, _ := v.(string); got != "recovered" {
		t.Fatalf("unexpected value after retry: %v", v)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("fill called %d times, want 2", got)
	}
}

func TestStore_Get_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	store.Set(context.Background(), "gw", "round-5")

	if _, ok := store.Get(context.Background(), "gw"); !ok {
		t.Fatal("expected entry before TTL elapses")
	}

	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(context.Background(), "gw"); ok {
		t.Fatal("expected entry to expire after TTL")
	}
}

func TestStore_Delete_RemovesEntry(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "leaderboard:kz-kpl-2026", []string{"ft-1"})
	store.Delete(context.Background(), "leaderboard:kz-kpl-2026")

	if _, ok := store.Get(context.Background(), "leaderboard:kz-kpl-2026"); ok {
		t.Fatal("expected entry to be gone after Delete")
	}
}

var (
	errUnexpectedValue = errors.New("unexpected filled value")
	errFillFailed      = errors.New("fill failed")
)
