// Package batch runs index-aligned parallel work over a sequence of
// independent samples (windows) on a bounded worker pool.
//
// Overview:
//
//   - Windows are embarrassingly parallel: persistence computation, diagram
//     transforms and pairwise-distance work share no mutable state across
//     samples. Each task exclusively owns its intermediate buffers until it
//     writes its result into the slot matching its input index, after which
//     the result is immutable.
//   - Map runs fn(i) for i = 0..n-1 on at most workers goroutines. The
//     caller's fn writes results into pre-sized slots keyed by i, so output
//     order always matches input order regardless of scheduling.
//   - Collect wraps Map for the common shape "one result value per index":
//     it allocates the result slice and stores fn's return value into slot i.
//   - A returned error cancels the group and propagates; use Map for
//     all-or-nothing stages. For per-sample error isolation, capture errors
//     into an index-aligned slice inside fn and return nil.
//
// Errors (sentinel):
//
//   - ErrBadWorkers if the worker bound is < 1.
//
// Example usage:
//
//	out := make([]Result, len(windows))
//	err := batch.Map(ctx, len(windows), runtime.NumCPU(), func(i int) error {
//	    r, err := compute(windows[i])
//	    if err != nil {
//	        return err
//	    }
//	    out[i] = r
//	    return nil
//	})
package batch
