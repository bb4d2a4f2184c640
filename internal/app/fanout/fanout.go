// Package fanout runs a function across a slice of items with bounded
// concurrency and returns per-item results in input order. The board uses it
// to render its project lists side by side.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a worker slot, that
// item records ctx.Err() and fn is not called for it. Items that already hold
// a slot run to completion.
//
// Run blocks until all goroutines complete. An empty input yields an empty
// non-nil slice. maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	maxWorkers = max(maxWorkers, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Values unpacks results into their values, in order, and the joined errors
// of every failed item. Failed items contribute their zero value.
func Values[R any](results []Result[R]) ([]R, error) {
	vals := make([]R, len(results))
	var errs []error
	for i, r := range results {
		vals[i] = r.Value
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return vals, errors.Join(errs...)
}
