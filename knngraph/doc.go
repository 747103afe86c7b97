// Package knngraph builds k-nearest-neighbor graphs over a window's point
// cloud and computes all-pairs geodesic (shortest-path) distances on them,
// producing an alternative distance matrix for the persistence engine.
//
// Overview:
//
//   - Build connects every point to its K nearest neighbors by Euclidean
//     distance, breaking distance ties by ascending point index so the
//     graph is deterministic. Edges are undirected and symmetrized: if p
//     selects q OR q selects p, the edge {p,q} exists once, weighted by the
//     Euclidean distance. A point's degree may therefore exceed K.
//   - Geodesics runs one Dijkstra pass per source over the non-negative
//     edge weights (lazy decrease-key on a binary heap, stale entries
//     skipped on pop — the same strategy as a classical single-source
//     implementation) and assembles the symmetric all-pairs matrix.
//   - The adjacency is frozen at Build time: Geodesics only reads it, so a
//     Graph may serve concurrent queries.
//
// Disconnected graphs:
//
//	A K too small for the cloud can leave the graph disconnected. The
//	policy is explicit: Geodesics returns ErrDisconnectedGraph naming an
//	unreachable pair by default; WithInfiniteOnDisconnect switches to a
//	+Inf sentinel in the matrix for every unreachable pair instead.
//	Nothing is ever silently truncated.
//
// Complexity:
//
//   - Build: O(n²·d) distance evaluations + O(n²·log n) neighbor selection.
//   - Geodesics: O(n·(V+E)·log V) = O(n²·K·log n) for n points.
//
// Errors (sentinel):
//
//   - ErrNoPoints          if the point cloud is empty.
//   - ErrBadNeighborCount  if K < 1.
//   - ErrDimensionMismatch if points have inconsistent dimensionality.
//   - ErrDisconnectedGraph if a pair has no connecting path (default policy).
//
// Example usage:
//
//	g, err := knngraph.Build(points, knngraph.WithK(3))
//	if err != nil { ... }
//	dm, err := g.Geodesics()
//	if errors.Is(err, knngraph.ErrDisconnectedGraph) { ... }
package knngraph
