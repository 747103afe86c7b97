package metric

import (
	"math"

	"github.com/katalvlaran/tda/diagram"
)

// groundCost is the Euclidean distance between two diagram points in the
// (birth, death) plane.
func groundCost(a, b diagram.Pair) float64 {
	db, dd := a.Birth-b.Birth, a.Death-b.Death

	return math.Sqrt(db*db + dd*dd)
}

// diagonalCost is the Euclidean distance from a diagram point to its
// orthogonal projection on the diagonal: (death-birth)/√2.
func diagonalCost(p diagram.Pair) float64 {
	return p.Persistence() / math.Sqrt2
}

// wassersteinDistance computes the exact p-Wasserstein distance between two
// diagrams: the minimum over partial matchings of the p-th-power sum of
// Euclidean costs, unmatched points paying their diagonal cost; reported as
// the p-th root of the optimum.
//
// The optimal partial matching is encoded as a perfect assignment on the
// (n+m)×(n+m) augmented matrix: the real block carries point-to-point
// costs, the two augmentation blocks charge each point its own diagonal
// cost on every slot (slots are interchangeable, which keeps the matrix
// finite), and the diagonal-to-diagonal block is free.
//
// Complexity: O((n+m)³) via the Hungarian algorithm with potentials.
func wassersteinDistance(a, b diagram.Diagram, p float64) float64 {
	n, m := len(a), len(b)
	size := n + m
	if size == 0 {
		return 0
	}

	// 1) Augmented cost matrix, entries raised to the p-th power.
	cost := make([][]float64, size)
	for i := range cost {
		cost[i] = make([]float64, size)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			cost[i][j] = math.Pow(groundCost(a[i], b[j]), p)
		}
		dc := math.Pow(diagonalCost(a[i]), p)
		for k := m; k < size; k++ {
			cost[i][k] = dc
		}
	}
	for l := n; l < size; l++ {
		for j := 0; j < m; j++ {
			cost[l][j] = math.Pow(diagonalCost(b[j]), p)
		}
		// diagonal-to-diagonal stays 0
	}

	// 2) Exact assignment.
	return math.Pow(hungarian(cost), 1/p)
}

// hungarian solves the square assignment problem exactly and returns the
// minimum total cost. Classical potentials formulation with 1-based
// internal indexing; O(n³).
func hungarian(cost [][]float64) float64 {
	n := len(cost)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	match := make([]int, n+1) // match[j] = row assigned to column j
	way := make([]int, n+1)

	minv := make([]float64, n+1)
	used := make([]bool, n+1)
	for i := 1; i <= n; i++ {
		// Grow the alternating tree from row i until a free column appears.
		match[0] = i
		j0 := 0
		for j := 0; j <= n; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}
		for {
			used[j0] = true
			i0, delta, j1 := match[j0], math.Inf(1), 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[match[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if match[j0] == 0 {
				break
			}
		}
		// Unwind the augmenting path.
		for j0 != 0 {
			j1 := way[j0]
			match[j0] = match[j1]
			j0 = j1
		}
	}

	var total float64
	for j := 1; j <= n; j++ {
		total += cost[match[j]-1][j-1]
	}

	return total
}
