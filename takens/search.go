package takens

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Fit learns embedding parameters from a sample of the series and freezes
// them into a Params value. Fixed options (WithFixedDelay, WithFixedDimension)
// skip the corresponding search; search options scan:
//
//   - TimeDelay: the first local minimum of the mutual information between
//     x(t) and x(t+τ), τ = 1..MaxDelay. When the curve has no interior
//     minimum (monotone, or flat as for a constant series), Fit falls back
//     to MaxDelay and reports DelayConverged=false.
//   - Dimension: the smallest M ≤ MaxDimension whose false-nearest-neighbor
//     fraction under the chosen τ drops below FNNThreshold. When no M
//     qualifies, Fit falls back to MaxDimension and reports
//     DimensionConverged=false.
//
// The returned Params are frozen: Fit writes them once, Transform only
// reads them.
//
// Errors: ErrEmptySeries, ErrBadParams, ErrBadSearchBound,
// ErrSeriesTooShort (series cannot host the smallest candidate vector).
//
// Complexity: O(MaxDelay·N) for the delay scan, O(MaxDimension·N²) for the
// dimension scan.
func Fit(series []float64, opts ...Option) (Params, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Params{}, err
	}
	if len(series) == 0 {
		return Params{}, ErrEmptySeries
	}

	p := Params{Stride: cfg.Stride, DelayConverged: true, DimensionConverged: true}

	// 1) Time delay: fixed, or first local minimum of mutual information.
	if cfg.TimeDelay > 0 {
		p.TimeDelay = cfg.TimeDelay
	} else {
		p.TimeDelay, p.DelayConverged = searchDelay(series, cfg.MaxDelay, cfg.Bins)
	}

	// 2) Dimension: fixed, or smallest M passing the Kennel criterion.
	if cfg.Dimension > 0 {
		p.Dimension = cfg.Dimension
	} else {
		p.Dimension, p.DimensionConverged = searchDimension(series, p.TimeDelay, cfg)
	}

	// 3) The learned pair must admit at least one delay vector.
	if len(series) < (p.Dimension-1)*p.TimeDelay+1 {
		return Params{}, ErrSeriesTooShort
	}

	return p, nil
}

// searchDelay scans τ = 1..maxDelay for the first local minimum of the
// mutual-information curve. Returns (τ, true) on a clean interior minimum,
// (maxDelay, false) otherwise.
func searchDelay(series []float64, maxDelay, bins int) (int, bool) {
	// mi[τ-1] holds MI(x(t); x(t+τ)). Shifts that leave fewer than two
	// overlapping samples contribute +Inf so they never win.
	mi := make([]float64, maxDelay)
	for tau := 1; tau <= maxDelay; tau++ {
		mi[tau-1] = mutualInformation(series, tau, bins)
	}

	// An interior local minimum: strictly below its predecessor, not above
	// its successor. Both neighbors must exist, so a curve still falling at
	// the scan bound has none, and neither does a flat or monotone curve.
	// A drop onto a plateau (mi[i] == mi[i+1]) counts as the minimum at the
	// plateau's first point.
	for i := 1; i+1 < len(mi); i++ {
		if mi[i] >= mi[i-1] {
			continue
		}
		if mi[i] > mi[i+1] {
			continue
		}

		return i + 1, true
	}

	return maxDelay, false
}

// mutualInformation estimates MI between the series and its τ-shift with a
// fixed-width 2-D histogram of the given per-axis resolution. Returns +Inf
// when the shift leaves fewer than two overlapping samples (so the τ can
// never be selected as a minimum) and 0 for a constant series.
func mutualInformation(series []float64, tau, bins int) float64 {
	n := len(series) - tau
	if n < 2 {
		return math.Inf(1)
	}
	lo, hi := floats.Min(series), floats.Max(series)
	if hi == lo {
		return 0
	}

	// Joint and marginal histogram counts over the overlap.
	width := (hi - lo) / float64(bins)
	joint := make([]float64, bins*bins)
	px := make([]float64, bins)
	py := make([]float64, bins)
	for i := 0; i < n; i++ {
		bx := histBin(series[i], lo, width, bins)
		by := histBin(series[i+tau], lo, width, bins)
		joint[bx*bins+by]++
		px[bx]++
		py[by]++
	}

	// MI = Σ p(x,y)·ln( p(x,y) / (p(x)·p(y)) ), empty cells skipped.
	total := float64(n)
	var mi float64
	for bx := 0; bx < bins; bx++ {
		for by := 0; by < bins; by++ {
			c := joint[bx*bins+by]
			if c == 0 {
				continue
			}
			pxy := c / total
			mi += pxy * math.Log(pxy*total*total/(px[bx]*py[by]))
		}
	}

	return mi
}

// histBin maps a sample to its histogram bin, clamping the max onto the
// last bin.
func histBin(v, lo, width float64, bins int) int {
	b := int((v - lo) / width)
	if b >= bins {
		b = bins - 1
	}

	return b
}

// searchDimension scans M = 1..MaxDimension for the first dimension whose
// false-nearest-neighbor fraction under τ is below the threshold. Returns
// (M, true) on success, (MaxDimension, false) when no candidate qualifies
// or the series is too short to evaluate any candidate.
func searchDimension(series []float64, tau int, cfg Options) (int, bool) {
	for dim := 1; dim <= cfg.MaxDimension; dim++ {
		frac, ok := fnnFraction(series, dim, tau, cfg.FNNRatio)
		if !ok {
			break // not enough data to judge this or any larger dimension
		}
		if frac < cfg.FNNThreshold {
			return dim, true
		}
	}

	return cfg.MaxDimension, false
}

// fnnFraction evaluates the Kennel false-nearest-neighbor criterion for one
// candidate dimension: embed in dim-space, pair each vector with its nearest
// neighbor, and test whether appending the (dim+1)-th delay coordinate blows
// the neighbor distance up by more than ratio. ok=false means the series is
// too short to evaluate the candidate.
//
// Complexity: O(n²·dim) brute-force neighbor search.
func fnnFraction(series []float64, dim, tau int, ratio float64) (frac float64, ok bool) {
	// Usable base indices: vector i spans i..i+(dim-1)·τ and the test needs
	// the extra coordinate at i+dim·τ.
	n := len(series) - dim*tau
	if n < 2 {
		return 0, false
	}

	var false_, judged int
	for i := 0; i < n; i++ {
		// 1) Nearest neighbor of i in dim-space, ties by ascending index.
		best, bestD := -1, math.Inf(1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			var d2 float64
			for c := 0; c < dim; c++ {
				diff := series[i+c*tau] - series[j+c*tau]
				d2 += diff * diff
			}
			if d2 < bestD {
				bestD, best = d2, j
			}
		}

		// 2) Distance blow-up when the next coordinate is appended.
		extra := math.Abs(series[i+dim*tau] - series[best+dim*tau])
		rd := math.Sqrt(bestD)
		judged++
		switch {
		case rd == 0 && extra > 0:
			false_++ // coincident in dim-space, separated by the new axis
		case rd > 0 && extra/rd > ratio:
			false_++
		}
	}

	return float64(false_) / float64(judged), true
}
