package metric

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/tda/diagram"
)

// landscapeRange returns the [min birth, max death] range of one homology
// dimension across the whole batch — the shared axis every sample's
// landscape is sampled on. An empty dimension collapses to [0, 0].
func landscapeRange(b diagram.Batch, dim int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range b {
		for _, p := range c[dim] {
			lo = math.Min(lo, p.Birth)
			hi = math.Max(hi, p.Death)
		}
	}
	if lo > hi {
		return 0, 0
	}

	return lo, hi
}

// landscapeVector samples the first `layers` persistence-landscape layers
// of a diagram on `bins` points over [lo, hi], layer-major: entry
// k·bins + i is layer k+1 at grid point i. Layer k at value t is the k-th
// largest tent value max(0, min(t-birth, death-t)) over all pairs; absent
// layers are zero.
//
// Complexity: O(bins·pairs·log pairs).
func landscapeVector(d diagram.Diagram, lo, hi float64, layers, bins int) []float64 {
	grid := make([]float64, bins)
	if bins == 1 {
		grid[0] = (lo + hi) / 2
	} else {
		floats.Span(grid, lo, hi)
	}

	out := make([]float64, layers*bins)
	tents := make([]float64, 0, len(d))
	for i, t := range grid {
		// 1) Tent values of every pair at t.
		tents = tents[:0]
		for _, p := range d {
			v := math.Min(t-p.Birth, p.Death-t)
			if v > 0 {
				tents = append(tents, v)
			}
		}

		// 2) Descending order turns index k into "k-th largest".
		sort.Sort(sort.Reverse(sort.Float64Slice(tents)))
		for k := 0; k < layers && k < len(tents); k++ {
			out[k*bins+i] = tents[k]
		}
	}

	return out
}

// landscapeDistance is the step-weighted discrete L_p norm of the
// difference between two landscape vectors sampled on the same grid.
func landscapeDistance(a, b []float64, lo, hi float64, bins int, p float64) float64 {
	dx := 1.0
	if bins > 1 && hi > lo {
		dx = (hi - lo) / float64(bins-1)
	}

	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), p)
	}

	return math.Pow(sum*dx, 1/p)
}
