// Package rips builds Vietoris–Rips filtrations from point clouds or
// precomputed distance matrices and computes their persistent homology:
// the (birth, death) pairs per homology dimension that summarize when
// connected components, loops and voids appear and disappear as the
// distance threshold grows.
//
// Filtration:
//
//   - A simplex {v0,…,vk} enters the filtration at the maximum pairwise
//     distance among its vertices, provided that value does not exceed
//     MaxEdgeLength; simplices past the cap are never materialized, which
//     bounds the complex size.
//   - Simplices are enumerated by incremental lower-neighbor expansion up
//     to dimension max(HomologyDimensions)+1 — one dimension above the
//     highest requested homology dimension, enough to detect every death.
//   - The filtration order is fully deterministic: ascending filtration
//     value, ties broken by simplex dimension, then by lexicographic vertex
//     order. Equal inputs produce byte-identical diagrams, always.
//
// Persistence:
//
//   - Pairs are extracted by sparse boundary-matrix reduction over Z2 in
//     the filtration order (the dimension-0 pairing this produces is the
//     classical union-find merge order). All simplex references are dense
//     int indexes into an arena-style table, never pointers.
//   - A class born at b and killed at d yields the pair (b, d); pairs with
//     d == b carry no information and are dropped.
//   - Classes that never die ("infinite persistence") get the finite death
//     value MaxEdgeLength when the cap is finite; under the default
//     unbounded cap they get the largest filtration value present in the
//     complex, keeping every coordinate finite and comparable. The one
//     essential connected component of every non-empty cloud is always
//     reported, even when its pair degenerates to (0, 0).
//
// Inputs:
//
//   - Points(cloud): Euclidean pairwise distances are computed internally.
//   - Distances(sym) / DistancesDense(matrix): a precomputed distance
//     matrix (window geodesics, external metrics); it must be square,
//     symmetric, non-negative, with a zero diagonal, or the transform fails
//     with ErrInvalidMetric.
//
// Complexity:
//
//	Worst case exponential in the number of points (the k-skeleton of a
//	complete complex has C(n, k+1) simplices); MaxEdgeLength is the
//	practical control. Reduction is O(m³) worst case over m simplices but
//	near-linear on sparse geometric inputs.
//
// Errors (sentinel):
//
//   - ErrEmptyInput    if the window has zero points.
//   - ErrInvalidMetric if a precomputed matrix is malformed.
//   - ErrBadEdgeLength if MaxEdgeLength <= 0.
//   - ErrBadDimension  if a homology dimension is negative.
//
// Example usage:
//
//	col, err := rips.Transform(rips.Points(cloud),
//	    rips.WithMaxEdgeLength(2.0),
//	    rips.WithHomologyDimensions(0, 1),
//	)
//	if err != nil { ... }
//	loops := col[1] // H1 pairs
package rips
