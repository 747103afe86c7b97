// Package takens implements delay-coordinate (Takens) embedding of scalar
// time series, with optional automatic search of the embedding parameters.
//
// Overview:
//
//   - Transform turns a scalar series x(t) into delay vectors
//     v_i = [x(i), x(i+τ), …, x(i+(M-1)·τ)] taken at offsets
//     i = 0, S, 2S, … for stride S. The embedded phase-space cloud preserves
//     the topology of the underlying attractor for suitable (M, τ).
//   - Fit learns τ and M from a sample of the series:
//     τ  = first local minimum of the mutual information between x(t) and
//     x(t+τ), scanned over τ = 1..MaxDelay;
//     M  = smallest dimension whose false-nearest-neighbor fraction drops
//     below a threshold (Kennel criterion), scanned up to MaxDimension.
//   - Parameters follow a read-then-freeze discipline: Fit produces a Params
//     value once; Transform never modifies it. Re-applying Transform with
//     the same Params to new data is deterministic and reproducible.
//
// Convergence reporting:
//
//   - When no interior mutual-information minimum exists within MaxDelay,
//     Fit falls back to τ = MaxDelay and reports Params.DelayConverged=false.
//   - When the false-neighbor fraction never drops below the threshold, Fit
//     falls back to M = MaxDimension and reports
//     Params.DimensionConverged=false.
//   - Both conditions are warnings, not errors: the fallback parameters are
//     usable, the flags let callers decide whether to trust them.
//
// Complexity:
//
//   - Transform: O(N·M) for N output vectors of dimension M.
//   - Fit: O(MaxDelay·N) for the mutual-information scan plus
//     O(MaxDimension·N²) for the false-nearest-neighbor scan (brute-force
//     neighbor search per candidate dimension).
//
// Errors (sentinel):
//
//   - ErrEmptySeries   if the input series has no samples.
//   - ErrSeriesTooShort if the series cannot host a single delay vector,
//     i.e. len(series) < (M-1)·τ + 1.
//   - ErrBadParams     if Dimension, TimeDelay or Stride is < 1.
//   - ErrBadSearchBound if a search bound or histogram bin count is < 1.
//   - ErrLabelMismatch if a paired label series is shorter than the series
//     positions it must cover.
//
// Example usage:
//
//	params, err := takens.Fit(series,
//	    takens.WithDelaySearch(20),
//	    takens.WithDimensionSearch(6),
//	)
//	if err != nil { ... }
//	cloud, err := takens.Transform(series, params)
package takens
