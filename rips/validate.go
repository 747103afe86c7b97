package rips

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// symTol is the absolute tolerance used by the precomputed-matrix symmetry
// check. Kept explicit to avoid a magic number inline.
const symTol = 1e-9

// distanceMatrix materializes the validated dense distance matrix of the
// input, whichever flavor it carries.
func (in Input) distanceMatrix() ([][]float64, error) {
	switch in.kind {
	case kindPoints:
		return pointDistances(in.points)
	default:
		if in.sym != nil {
			return symDistances(in.sym)
		}

		return denseDistances(in.dense)
	}
}

// pointDistances computes Euclidean pairwise distances of a point cloud.
func pointDistances(points [][]float64) ([][]float64, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("%w: point 0 has %d, point %d has %d", ErrDimensionMismatch, dim, i, len(p))
		}
	}

	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var sum float64
			for c := 0; c < dim; c++ {
				diff := points[i][c] - points[j][c]
				sum += diff * diff
			}
			v := math.Sqrt(sum)
			d[i][j], d[j][i] = v, v
		}
	}

	return d, nil
}

// symDistances copies a SymDense into row slices, validating the diagonal
// and sign (symmetry is structural for SymDense).
func symDistances(m *mat.SymDense) ([][]float64, error) {
	n := m.SymmetricDim()
	if n == 0 {
		return nil, ErrEmptyInput
	}

	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			if i == j && v != 0 {
				return nil, fmt.Errorf("%w: diagonal entry (%d,%d)=%g", ErrInvalidMetric, i, j, v)
			}
			if v < 0 {
				return nil, fmt.Errorf("%w: negative entry (%d,%d)=%g", ErrInvalidMetric, i, j, v)
			}
			d[i][j] = v
		}
	}

	return d, nil
}

// denseDistances validates and deep-copies a row-slice distance matrix:
// square, symmetric within symTol, non-negative, zero diagonal.
func denseDistances(in [][]float64) ([][]float64, error) {
	n := len(in)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	d := make([][]float64, n)
	for i, row := range in {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidMetric, i, len(row), n)
		}
		d[i] = append([]float64(nil), row...)
	}
	for i := 0; i < n; i++ {
		if d[i][i] != 0 {
			return nil, fmt.Errorf("%w: diagonal entry (%d,%d)=%g", ErrInvalidMetric, i, i, d[i][i])
		}
		for j := i + 1; j < n; j++ {
			if d[i][j] < 0 || d[j][i] < 0 {
				return nil, fmt.Errorf("%w: negative entry at (%d,%d)", ErrInvalidMetric, i, j)
			}
			if math.Abs(d[i][j]-d[j][i]) > symTol {
				return nil, fmt.Errorf("%w: asymmetry at (%d,%d): %g vs %g", ErrInvalidMetric, i, j, d[i][j], d[j][i])
			}
		}
	}

	return d, nil
}
