package batch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrBadWorkers indicates a worker bound below 1.
var ErrBadWorkers = errors.New("batch: workers must be >= 1")

// Map runs fn(i) for every i in [0, n) on at most workers goroutines.
// Output ordering is the caller's concern and is trivially index-aligned:
// fn writes into slot i of a pre-sized result slice.
//
// The first non-nil error cancels the remaining work (fn should honor the
// derived context for long computations) and is returned. A canceled ctx
// yields its error.
//
// Complexity: O(n) scheduling overhead; the work itself is fn-bound.
func Map(ctx context.Context, n, workers int, fn func(i int) error) error {
	if workers < 1 {
		return ErrBadWorkers
	}
	if n == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		// Stop scheduling once the group is canceled.
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// The group context is always canceled once Wait returns; only the
	// caller's context tells cancellation apart from completion.
	return ctx.Err()
}

// Collect runs fn(i) for every i in [0, n) on at most workers goroutines and
// returns the results index-aligned: slot i holds fn(i). Error semantics are
// those of Map; on any error the partial results are discarded.
func Collect[T any](ctx context.Context, n, workers int, fn func(i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	err := Map(ctx, n, workers, func(i int) error {
		v, err := fn(i)
		if err != nil {
			return err
		}
		out[i] = v

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
