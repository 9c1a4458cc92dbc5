package concurrency

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestMapPreservesOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	results, errs := Map(context.Background(), items, Options{MaxWorkers: 3},
		func(_ context.Context, _ int, n int) (int, error) {
			return n * 10, nil
		})

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for i, r := range results {
		if r != items[i]*10 {
			t.Errorf("result %d = %d; expected %d", i, r, items[i]*10)
		}
	}
}

func TestMapCollectsErrors(t *testing.T) {
	items := []int{1, 2, 3, 4}
	boom := errors.New("boom")

	results, errs := Map(context.Background(), items, Options{MaxWorkers: 2},
		func(_ context.Context, _ int, n int) (int, error) {
			if n%2 == 0 {
				return 0, boom
			}
			return n, nil
		})

	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d", len(errs))
	}
	if results[0] != 1 || results[2] != 3 {
		t.Errorf("successful results must survive the failures: %v", results)
	}
}

func TestMapBoundsWorkers(t *testing.T) {
	const workers = 3
	var active, peak int64

	items := make([]int, 20)
	Map(context.Background(), items, Options{MaxWorkers: workers},
		func(_ context.Context, _ int, _ int) (struct{}, error) {
			n := atomic.AddInt64(&active, 1)
			for {
				p := atomic.LoadInt64(&peak)
				if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&active, -1)
			return struct{}{}, nil
		})

	if peak > workers {
		t.Errorf("observed %d concurrent workers, limit is %d", peak, workers)
	}
}

func TestMapEmptyInput(t *testing.T) {
	results, errs := Map(context.Background(), nil, DefaultOptions(),
		func(_ context.Context, _ int, _ int) (int, error) { return 0, nil })
	if len(results) != 0 || errs != nil {
		t.Errorf("unexpected output for empty input: %v, %v", results, errs)
	}
}

func TestMapZeroWorkersUsesDefault(t *testing.T) {
	results, errs := Map(context.Background(), []int{1, 2}, Options{},
		func(_ context.Context, _ int, n int) (int, error) { return n, nil })
	if len(errs) != 0 || len(results) != 2 {
		t.Errorf("unexpected output: %v, %v", results, errs)
	}
}
