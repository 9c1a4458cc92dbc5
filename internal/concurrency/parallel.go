// Package concurrency provides a bounded generic worker pool. The scoring
// stage uses it to evaluate listings in parallel while keeping results in
// input order.
package concurrency

import (
	"context"
	"sync"
)

type Options struct {
	MaxWorkers int
}

func DefaultOptions() Options {
	return Options{MaxWorkers: 8}
}

// Map runs fn over items with at most opts.MaxWorkers goroutines and
// returns results indexed like the input. Errors are collected, not
// fail-fast; a cancelled ctx stops workers from picking up new items but
// items already claimed still finish.
func Map[T any, R any](
	ctx context.Context,
	items []T,
	opts Options,
	fn func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = DefaultOptions().MaxWorkers
	}
	if workers > len(items) {
		workers = len(items)
	}

	type outcome struct {
		index  int
		result R
		err    error
	}

	jobs := make(chan int, len(items))
	outcomes := make(chan outcome, len(items))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				r, err := fn(ctx, i, items[i])
				outcomes <- outcome{index: i, result: r, err: err}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	results := make([]R, len(items))
	var errs []error
	for o := range outcomes {
		if o.err != nil {
			errs = append(errs, o.err)
		}
		results[o.index] = o.result
	}
	return results, errs
}
