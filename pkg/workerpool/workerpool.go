// Package workerpool runs bounded fan-out over a slice of work items.
package workerpool

import (
	"context"
	"sync"
)

// Map applies fn to every item using at most workerCount goroutines and returns
// the results in item order. The first error cancels the remaining work and is
// returned; a canceled parent context is reported the same way.
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	workerCount = min(workerCount, len(items))

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	results := make([]R, len(items))
	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if ctx.Err() != nil {
					continue
				}
				r, err := fn(ctx, items[i])
				if err != nil {
					cancel(err)
					continue
				}
				results[i] = r
			}
		}()
	}

feed:
	for i := range items {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if err := context.Cause(ctx); err != nil {
		return nil, err
	}
	return results, nil
}
