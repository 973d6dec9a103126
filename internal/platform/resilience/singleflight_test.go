package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	var shared atomic.Int32

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, wasShared := g.Do("standings-key", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
			if got, _ := v.(string); got != "ok" {
				t.Errorf("unexpected value: %v", v)
			}
			if wasShared {
				shared.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := shared.Load(); got != workers-1 {
		t.Fatalf("expected %d shared results, got %d", workers-1, got)
	}
}

func TestSingleFlight_SeparateKeysRunIndependently(t *testing.T) {
	var g SingleFlight
	var counter int32

	done := make(chan struct{}, 2)
	for _, key := range []string{"standings:kz-kpl-2026", "standings:kz-first-2026"} {
		go func(key string) {
			_, _, _ = g.Do(key, func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(10 * time.Millisecond)
				return key, nil
			})
			done <- struct{}{}
		}(key)
	}
	<-done
	<-done

	if got := atomic.LoadInt32(&counter); got != 2 {
		t.Fatalf("expected both keys to execute, got %d", got)
	}
}
