package metric

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/tda/diagram"
)

// Sentinel errors returned by the metric entry points.
var (
	// ErrEmptyBatch indicates a batch with no samples.
	ErrEmptyBatch = errors.New("metric: batch has no samples")

	// ErrBadOrder indicates a norm/power order p < 1.
	ErrBadOrder = errors.New("metric: order p must be >= 1")

	// ErrBadResolution indicates Bins or Layers < 1.
	ErrBadResolution = errors.New("metric: bins and layers must be >= 1")

	// ErrBadTolerance indicates a negative matching tolerance.
	ErrBadTolerance = errors.New("metric: delta must be non-negative")

	// ErrUnknownMetric indicates an unrecognized Kind.
	ErrUnknownMetric = errors.New("metric: unknown metric kind")
)

// Kind selects the diagram distance.
type Kind int

const (
	// Landscape is the L_p distance between persistence-landscape vectors.
	Landscape Kind = iota

	// Wasserstein is the exact p-Wasserstein optimal-matching distance.
	Wasserstein

	// Bottleneck is the p→∞ optimal-matching distance.
	Bottleneck
)

// Options configures the diagram metrics.
//
// Kind       – which distance to compute. Default Landscape.
// P          – norm order (Landscape) or matching power (Wasserstein).
//
//	Must be ≥ 1. Ignored by Bottleneck. Default 2.
//
// Layers     – number of landscape layers. Default 5.
// Bins       – landscape sampling resolution. Default 100.
// Delta      – matching tolerance knob; the exact solver satisfies any
//
//	value, so only validation applies. Must be ≥ 0. Default 0.
//
// Dimensions – homology dimensions to compare. nil (default) compares the
//
//	union of dimensions present in the batch.
//
// Workers    – PairwiseDistances pool bound; 0 picks runtime.NumCPU().
type Options struct {
	Kind       Kind
	P          float64
	Layers     int
	Bins       int
	Delta      float64
	Dimensions []int
	Workers    int
}

// Option is a functional option for the metric entry points.
type Option func(*Options)

// WithKind selects the distance kind.
func WithKind(k Kind) Option {
	return func(o *Options) { o.Kind = k }
}

// WithOrder sets the norm/power order p.
func WithOrder(p float64) Option {
	return func(o *Options) { o.P = p }
}

// WithLayers sets the number of landscape layers.
func WithLayers(n int) Option {
	return func(o *Options) { o.Layers = n }
}

// WithBins sets the landscape sampling resolution.
func WithBins(n int) Option {
	return func(o *Options) { o.Bins = n }
}

// WithDelta sets the matching tolerance knob.
func WithDelta(d float64) Option {
	return func(o *Options) { o.Delta = d }
}

// WithDimensions restricts the comparison to the given homology dimensions.
func WithDimensions(dims ...int) Option {
	return func(o *Options) { o.Dimensions = append([]int(nil), dims...) }
}

// WithWorkers bounds the PairwiseDistances worker pool.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// DefaultOptions returns the Options used when no functional options are
// supplied: Landscape, p=2, 5 layers, 100 bins, exact matching, all
// dimensions, NumCPU workers.
func DefaultOptions() Options {
	return Options{
		Kind:   Landscape,
		P:      2,
		Layers: 5,
		Bins:   100,
		Delta:  0,
	}
}

// validate checks option consistency.
func (o *Options) validate() error {
	switch o.Kind {
	case Landscape, Wasserstein, Bottleneck:
	default:
		return ErrUnknownMetric
	}
	if o.P < 1 {
		return ErrBadOrder
	}
	if o.Bins < 1 || o.Layers < 1 {
		return ErrBadResolution
	}
	if o.Delta < 0 {
		return ErrBadTolerance
	}

	return nil
}

// dimensions resolves the dimension set to compare: the configured set, or
// the sorted union of dimensions present in the batch.
func (o *Options) dimensions(b diagram.Batch) []int {
	if o.Dimensions != nil {
		out := append([]int(nil), o.Dimensions...)
		sort.Ints(out)

		return out
	}
	seen := map[int]bool{}
	for _, c := range b {
		for dim := range c {
			seen[dim] = true
		}
	}
	out := make([]int, 0, len(seen))
	for dim := range seen {
		out = append(out, dim)
	}
	sort.Ints(out)

	return out
}

// Tensor is the symmetric pairwise-distance tensor, one symmetric matrix
// per homology dimension, indexed (sample_i, sample_j, dimension).
type Tensor struct {
	n      int
	dims   []int
	slices map[int]*mat.SymDense
}

// newTensor allocates an n×n zero matrix per dimension.
func newTensor(n int, dims []int) *Tensor {
	t := &Tensor{n: n, dims: append([]int(nil), dims...), slices: make(map[int]*mat.SymDense, len(dims))}
	for _, dim := range dims {
		t.slices[dim] = mat.NewSymDense(n, nil)
	}

	return t
}

// Samples returns the number of samples the tensor spans.
func (t *Tensor) Samples() int { return t.n }

// Dimensions returns the homology dimensions the tensor covers, ascending.
func (t *Tensor) Dimensions() []int { return append([]int(nil), t.dims...) }

// At returns the distance between samples i and j in the given dimension.
// Symmetry and the zero diagonal are structural.
func (t *Tensor) At(i, j, dim int) float64 { return t.slices[dim].At(i, j) }

// Slice returns the symmetric distance matrix of one homology dimension
// (shared storage; treat as read-only).
func (t *Tensor) Slice(dim int) *mat.SymDense { return t.slices[dim] }
