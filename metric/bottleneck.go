package metric

import (
	"sort"

	"github.com/katalvlaran/tda/diagram"
)

// bottleneckDistance computes the bottleneck distance between two diagrams:
// the smallest cost c admitting a perfect matching on the diagonal-augmented
// bipartite graph whose every assignment costs at most c (the p→∞ limit of
// the Wasserstein family).
//
// The candidate set — every point-to-point cost, every diagonal cost, and
// 0 — necessarily contains the answer, so a binary search over the sorted
// candidates with an augmenting-path feasibility check is exact.
//
// Complexity: O(log C) feasibility checks of O(V·E) each.
func bottleneckDistance(a, b diagram.Diagram) float64 {
	n, m := len(a), len(b)
	if n+m == 0 {
		return 0
	}

	// 1) Candidate costs, ascending and deduplicated.
	cands := make([]float64, 0, n*m+n+m+1)
	cands = append(cands, 0)
	for i := 0; i < n; i++ {
		cands = append(cands, diagonalCost(a[i]))
		for j := 0; j < m; j++ {
			cands = append(cands, groundCost(a[i], b[j]))
		}
	}
	for j := 0; j < m; j++ {
		cands = append(cands, diagonalCost(b[j]))
	}
	sort.Float64s(cands)
	cands = dedupe(cands)

	// 2) Binary search for the smallest feasible candidate.
	lo, hi := 0, len(cands)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if feasibleMatching(a, b, cands[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return cands[lo]
}

// feasibleMatching reports whether the augmented bipartite graph — left
// side a-points plus m diagonal slots, right side b-points plus n diagonal
// slots — admits a perfect matching using only edges of cost ≤ c.
// Kuhn's augmenting-path algorithm; edges are evaluated on the fly.
func feasibleMatching(a, b diagram.Diagram, c float64) bool {
	n, m := len(a), len(b)
	size := n + m

	// allowed reports edge (left, right) cost ≤ c.
	allowed := func(l, r int) bool {
		switch {
		case l < n && r < m:
			return groundCost(a[l], b[r]) <= c
		case l < n:
			return diagonalCost(a[l]) <= c // a-point destroyed on the diagonal
		case r < m:
			return diagonalCost(b[r]) <= c // b-point created from the diagonal
		default:
			return true // diagonal-to-diagonal is free
		}
	}

	matchR := make([]int, size) // right vertex -> matched left vertex
	for i := range matchR {
		matchR[i] = -1
	}
	seen := make([]bool, size)

	var augment func(l int) bool
	augment = func(l int) bool {
		for r := 0; r < size; r++ {
			if seen[r] || !allowed(l, r) {
				continue
			}
			seen[r] = true
			if matchR[r] == -1 || augment(matchR[r]) {
				matchR[r] = l

				return true
			}
		}

		return false
	}

	for l := 0; l < size; l++ {
		for i := range seen {
			seen[i] = false
		}
		if !augment(l) {
			return false
		}
	}

	return true
}

// dedupe removes consecutive duplicates from a sorted slice, in place.
func dedupe(xs []float64) []float64 {
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != xs[i-1] {
			out = append(out, x)
		}
	}

	return out
}
