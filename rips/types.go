package rips

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Transform.
var (
	// ErrEmptyInput indicates a zero-point window reached the engine.
	ErrEmptyInput = errors.New("rips: input has no points")

	// ErrInvalidMetric indicates a precomputed distance matrix that is not
	// square, symmetric, non-negative with a zero diagonal.
	ErrInvalidMetric = errors.New("rips: invalid precomputed distance matrix")

	// ErrBadEdgeLength indicates MaxEdgeLength <= 0.
	ErrBadEdgeLength = errors.New("rips: max edge length must be positive")

	// ErrBadDimension indicates a negative homology dimension.
	ErrBadDimension = errors.New("rips: homology dimensions must be non-negative")

	// ErrDimensionMismatch indicates points of inconsistent dimensionality.
	ErrDimensionMismatch = errors.New("rips: points have inconsistent dimensions")
)

// inputKind tags the two accepted input flavors.
type inputKind int

const (
	kindPoints inputKind = iota
	kindDistances
)

// Input is a tagged Vietoris–Rips input: a Euclidean point cloud or a
// precomputed distance matrix. Construct with Points, Distances or
// DistancesDense.
type Input struct {
	kind   inputKind
	points [][]float64
	dense  [][]float64
	sym    *mat.SymDense
}

// Points wraps a Euclidean point cloud; pairwise distances are computed by
// the engine.
func Points(cloud [][]float64) Input {
	return Input{kind: kindPoints, points: cloud}
}

// Distances wraps a precomputed symmetric distance matrix (for example the
// geodesic output of knngraph).
func Distances(m *mat.SymDense) Input {
	return Input{kind: kindDistances, sym: m}
}

// DistancesDense wraps a precomputed distance matrix held as row slices.
// The matrix is validated, not trusted: it must be square, symmetric,
// non-negative with a zero diagonal.
func DistancesDense(d [][]float64) Input {
	return Input{kind: kindDistances, dense: d}
}

// Options configures Transform.
//
// MaxEdgeLength      – filtration cap; simplices entering above it are never
//
//	built. Default +Inf (effectively unbounded).
//
// HomologyDimensions – homology dimensions to report. Default {0, 1}.
// Workers            – goroutines for TransformBatch; 0 (default) picks
//
//	runtime.NumCPU() at call time.
type Options struct {
	MaxEdgeLength      float64
	HomologyDimensions []int
	Workers            int
}

// Option is a functional option for Transform and TransformBatch.
type Option func(*Options)

// WithMaxEdgeLength caps the filtration at the given edge length.
func WithMaxEdgeLength(max float64) Option {
	return func(o *Options) { o.MaxEdgeLength = max }
}

// WithHomologyDimensions selects the homology dimensions to report.
func WithHomologyDimensions(dims ...int) Option {
	return func(o *Options) { o.HomologyDimensions = append([]int(nil), dims...) }
}

// WithWorkers bounds the TransformBatch worker pool.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// DefaultOptions returns the Options used when no functional options are
// supplied.
//
// Defaults:
//   - MaxEdgeLength:      +Inf (unbounded; essential deaths then take the
//     largest filtration value present in the complex).
//   - HomologyDimensions: {0, 1}.
//   - Workers:            0 (TransformBatch substitutes runtime.NumCPU()).
func DefaultOptions() Options {
	return Options{
		MaxEdgeLength:      math.Inf(1),
		HomologyDimensions: []int{0, 1},
		Workers:            0,
	}
}

// validate checks option consistency and returns the highest requested
// homology dimension.
func (o *Options) validate() (int, error) {
	if o.MaxEdgeLength <= 0 {
		return 0, ErrBadEdgeLength
	}
	if len(o.HomologyDimensions) == 0 {
		return 0, ErrBadDimension
	}
	maxDim := 0
	for _, d := range o.HomologyDimensions {
		if d < 0 {
			return 0, ErrBadDimension
		}
		if d > maxDim {
			maxDim = d
		}
	}

	return maxDim, nil
}
