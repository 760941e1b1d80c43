// Package worker runs independent pieces of work concurrently with a bounded
// number of goroutines while keeping results in input order.
package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is used when a non-positive limit is passed to Map.
const DefaultLimit = 8

// Map calls fn for every item with at most limit calls in flight and returns
// the results indexed like items, regardless of completion order.
//
// The first failing call cancels the context passed to the remaining calls and
// its error is returned; results are discarded in that case.
func Map[T, R any](ctx context.Context, limit int, items []T, fn func(ctx context.Context, item T) (R, error)) ([]R, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("worker canceled: %w", err)
			}

			res, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return results, nil
}
