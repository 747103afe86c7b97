package knngraph

import (
	"fmt"
	"math"
	"sort"
)

// Build constructs the symmetrized k-nearest-neighbor graph of a point
// cloud. For each point the K nearest other points by Euclidean distance
// are selected, distance ties broken by ascending point index; each
// selection contributes one undirected edge weighted by the distance.
// Duplicate selections (p picks q and q picks p) collapse into one edge.
//
// A single-point cloud yields a one-vertex graph with no edges. A K larger
// than n-1 is clamped to n-1.
//
// Errors: ErrNoPoints, ErrBadNeighborCount, ErrDimensionMismatch.
//
// Complexity: O(n²·d) distance evaluations plus O(n²·log n) selection.
func Build(points [][]float64, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate the cloud and the neighbor count.
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	if cfg.K < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadNeighborCount, cfg.K)
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: point 0 has %d, point %d has %d", ErrDimensionMismatch, dim, i, len(p))
		}
	}

	g := &Graph{n: n, adj: make([][]halfEdge, n)}
	if n == 1 {
		return g, nil // one vertex, no edges
	}

	// 2) Clamp K: beyond n-1 every other point is already selected.
	k := cfg.K
	if k > n-1 {
		k = n - 1
	}

	// 3) Select K nearest per point and record the undirected edge set,
	//    keyed by (min,max) index so symmetrization never duplicates.
	type cand struct {
		idx int
		d   float64
	}
	edges := make(map[[2]int]float64, n*k)
	cands := make([]cand, 0, n-1)
	for i := 0; i < n; i++ {
		cands = cands[:0]
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cands = append(cands, cand{idx: j, d: euclidean(points[i], points[j])})
		}
		// Ties broken by ascending index: cands is already index-ascending,
		// and the sort is stable.
		sort.SliceStable(cands, func(a, b int) bool { return cands[a].d < cands[b].d })
		for _, c := range cands[:k] {
			key := [2]int{i, c.idx}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			edges[key] = c.d
		}
	}

	// 4) Freeze the adjacency.
	for key, w := range edges {
		g.adj[key[0]] = append(g.adj[key[0]], halfEdge{to: key[1], w: w})
		g.adj[key[1]] = append(g.adj[key[1]], halfEdge{to: key[0], w: w})
	}
	// Deterministic neighbor order, independent of map iteration.
	for i := range g.adj {
		sort.Slice(g.adj[i], func(a, b int) bool { return g.adj[i][a].to < g.adj[i][b].to })
	}

	return g, nil
}

// euclidean returns the Euclidean distance between two equal-length vectors.
func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}
