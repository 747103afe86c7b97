package diagram

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Entropy computes the persistence entropy of each requested dimension:
// -Σ p_i·ln(p_i) where p_i = lifespan_i / Σ lifespans, the sum running over
// non-degenerate pairs (lifetime > 0) only.
//
// Definitional edge cases:
//   - a dimension with no pairs, only degenerate pairs, or a single
//     non-degenerate pair has entropy 0;
//   - dimensions absent from the collection still appear in the result,
//     with entropy 0, so callers get one value per requested dimension.
//
// When dims is empty, every dimension present in the collection is
// summarized.
//
// Complexity: O(P) where P = total number of pairs considered.
func Entropy(c Collection, dims ...int) map[int]float64 {
	if len(dims) == 0 {
		dims = c.Dimensions()
	}

	out := make(map[int]float64, len(dims))
	for _, dim := range dims {
		out[dim] = entropyOf(c[dim])
	}

	return out
}

// entropyOf computes the Shannon entropy of one diagram's normalized
// lifespan distribution.
func entropyOf(d Diagram) float64 {
	// 1) Gather non-degenerate lifespans.
	lives := make([]float64, 0, len(d))
	for _, p := range d {
		if life := p.Persistence(); life > 0 {
			lives = append(lives, life)
		}
	}

	// 2) Empty or single-class distributions carry no information.
	if len(lives) < 2 {
		return 0
	}

	// 3) Normalize into a distribution and take its Shannon entropy.
	floats.Scale(1/floats.Sum(lives), lives)

	return stat.Entropy(lives)
}

// BettiCurve discretizes a filtration-value range into Bins sample values
// and counts, at each value t, how many intervals [Birth, Death) contain t —
// the Betti number of the complex at filtration value t, per dimension.
//
// The sampled range is [min birth, max death] over the requested dimensions
// unless fixed with WithRange. Sample values are evenly spaced over the
// range, inclusive of both endpoints (a single bin samples the midpoint).
//
// Returns one curve per requested dimension plus the shared grid of sample
// values. When dims is empty, every dimension present is summarized.
//
// Errors: ErrBadBins when Bins < 1; ErrBadRange when a fixed range has
// max < min.
//
// Complexity: O(D·P·B) over D dimensions, P pairs and B bins.
func BettiCurve(c Collection, dims []int, opts ...Option) (map[int][]float64, []float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Bins < 1 {
		return nil, nil, ErrBadBins
	}
	if cfg.RangeSet && cfg.RangeMax < cfg.RangeMin {
		return nil, nil, ErrBadRange
	}
	if len(dims) == 0 {
		dims = c.Dimensions()
	}

	// 1) Establish the sampled range.
	lo, hi := cfg.RangeMin, cfg.RangeMax
	if !cfg.RangeSet {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, dim := range dims {
			for _, p := range c[dim] {
				lo = math.Min(lo, p.Birth)
				hi = math.Max(hi, p.Death)
			}
		}
		if lo > hi { // no pairs at all: degenerate single-point range at 0
			lo, hi = 0, 0
		}
	}

	// 2) Build the evenly spaced grid, endpoints inclusive.
	grid := make([]float64, cfg.Bins)
	if cfg.Bins == 1 {
		grid[0] = (lo + hi) / 2
	} else {
		floats.Span(grid, lo, hi)
	}

	// 3) Count interval membership at every sample value.
	out := make(map[int][]float64, len(dims))
	for _, dim := range dims {
		curve := make([]float64, cfg.Bins)
		for _, p := range c[dim] {
			for i, t := range grid {
				// Intervals are half-open: alive at Birth, dead at Death.
				if p.Birth <= t && t < p.Death {
					curve[i]++
				}
			}
		}
		out[dim] = curve
	}

	return out, grid, nil
}
