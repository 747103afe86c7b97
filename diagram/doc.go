// Package diagram provides the persistence-diagram data model shared by the
// whole tda pipeline, together with the standard diagram transforms:
// rescaling, lifetime filtering, persistence entropy and Betti curves.
//
// Overview:
//
//   - A Pair is a single (birth, death) interval of one homology class.
//   - A Diagram is the multiset of pairs for one homology dimension.
//   - A Collection groups the Diagrams of one sample, keyed by dimension.
//   - A Batch is an ordered sequence of Collections, one per window, and is
//     index-aligned with the window sequence that produced it. Every
//     transform in this package preserves that alignment: the Collection at
//     index i of the output always describes the same time interval as the
//     Collection at index i of the input.
//
// Ownership and immutability:
//
//   - Transforms never mutate their input. Each returns a deep copy with the
//     transformation applied, so an upstream Batch can safely be reused or
//     shared across goroutines after it has been handed downstream.
//
// Transforms:
//
//   - Rescale: divides all birth/death coordinates of a sample by half the
//     maximum persistence found across the configured dimensions (the
//     bottleneck distance from the empty diagram). A sample whose every pair
//     has zero persistence rescales to itself unchanged.
//   - Filter: removes pairs whose lifetime (death − birth) is strictly below
//     a threshold epsilon, in the configured dimensions only; pairs in other
//     dimensions pass through untouched. Filtering with epsilon = 0 is the
//     identity, and filtering is idempotent.
//
// Summaries:
//
//   - Entropy: Shannon entropy of the normalized lifespan distribution per
//     dimension. Empty and single-pair diagrams have entropy 0.
//   - BettiCurve: a step function per dimension counting, at each of n_bins
//     sample values, how many intervals [birth, death) contain that value.
//
// Errors (sentinel):
//
//   - ErrNilBatch     if a nil Batch is passed to a batch transform.
//   - ErrBadEpsilon   if Filter is configured with epsilon < 0.
//   - ErrBadBins      if BettiCurve is configured with fewer than one bin.
//   - ErrBadRange     if a custom BettiCurve range has max < min.
//
// Example usage:
//
//	rescaled, err := diagram.RescaleBatch(batch)
//	if err != nil { ... }
//	cleaned, err := diagram.FilterBatch(rescaled, diagram.WithEpsilon(0.05))
//	if err != nil { ... }
//	ent := diagram.Entropy(cleaned[0], 0, 1)
package diagram
