package takens

import "fmt"

// Transform constructs the delay-coordinate embedding of series under the
// frozen parameters p. Vector k is
//
//	v_k = [x(k·S), x(k·S+τ), …, x(k·S+(M-1)·τ)]
//
// for S = p.Stride, τ = p.TimeDelay, M = p.Dimension. The output has
// floor((L-1-(M-1)·τ)/S) + 1 vectors; with S = 1 that is exactly
// L - (M-1)·τ.
//
// Transform is deterministic: same series and Params, same output, always.
//
// Errors:
//   - ErrBadParams     if any of Dimension, TimeDelay, Stride is < 1.
//   - ErrEmptySeries   if the series has no samples.
//   - ErrSeriesTooShort if len(series) < (M-1)·τ + 1.
//
// Complexity: O(N·M) time and space for N output vectors.
func Transform(series []float64, p Params) ([][]float64, error) {
	// 1) Validate frozen parameters.
	if p.Dimension < 1 || p.TimeDelay < 1 || p.Stride < 1 {
		return nil, fmt.Errorf("%w: dimension=%d delay=%d stride=%d",
			ErrBadParams, p.Dimension, p.TimeDelay, p.Stride)
	}

	// 2) Validate the series against the reach of one delay vector.
	if len(series) == 0 {
		return nil, ErrEmptySeries
	}
	span := (p.Dimension-1)*p.TimeDelay + 1 // samples one vector consumes
	if len(series) < span {
		return nil, fmt.Errorf("%w: need %d samples, have %d", ErrSeriesTooShort, span, len(series))
	}

	// 3) Build vectors by direct indexing.
	n := (len(series)-span)/p.Stride + 1
	out := make([][]float64, n)
	for k := 0; k < n; k++ {
		v := make([]float64, p.Dimension)
		base := k * p.Stride
		for j := 0; j < p.Dimension; j++ {
			v[j] = series[base+j*p.TimeDelay]
		}
		out[k] = v
	}

	return out, nil
}

// ResampleLabels aligns a paired label series one-to-one with the embedded
// output of Transform under the same Params: the label of vector k is the
// label of the LAST sample that vector consumes, labels[k·S + (M-1)·τ].
// This drops the same leading samples the delay construction consumes.
//
// n must be the length of the embedded output the labels accompany; it is
// validated against the label series so misalignment fails loudly instead
// of silently truncating.
//
// Errors: ErrBadParams on invalid Params, ErrLabelMismatch when the label
// series is too short to cover position (n-1)·S + (M-1)·τ.
func ResampleLabels(labels []float64, p Params, n int) ([]float64, error) {
	if p.Dimension < 1 || p.TimeDelay < 1 || p.Stride < 1 || n < 0 {
		return nil, ErrBadParams
	}
	if n == 0 {
		return []float64{}, nil
	}

	// The last vector ends at this label index; everything before the first
	// vector's end is dropped.
	tail := (p.Dimension - 1) * p.TimeDelay
	last := (n-1)*p.Stride + tail
	if last >= len(labels) {
		return nil, fmt.Errorf("%w: need index %d, have %d labels", ErrLabelMismatch, last, len(labels))
	}

	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = labels[k*p.Stride+tail]
	}

	return out, nil
}
