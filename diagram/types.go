package diagram

import (
	"errors"
	"sort"
)

// Sentinel errors returned by the diagram transforms.
var (
	// ErrNilBatch indicates that a nil Batch was passed to a batch transform.
	ErrNilBatch = errors.New("diagram: batch is nil")

	// ErrBadEpsilon indicates that a negative lifetime threshold was configured.
	ErrBadEpsilon = errors.New("diagram: epsilon must be non-negative")

	// ErrBadBins indicates that a Betti curve was requested with fewer than one bin.
	ErrBadBins = errors.New("diagram: number of bins must be at least 1")

	// ErrBadRange indicates a custom filtration range with max < min.
	ErrBadRange = errors.New("diagram: range max must be >= range min")
)

// Pair is one persistence interval: a homology class born at Birth that
// dies at Death. Invariant: Death >= Birth >= 0.
type Pair struct {
	Birth float64
	Death float64
}

// Persistence returns the lifetime Death - Birth of the pair.
func (p Pair) Persistence() float64 { return p.Death - p.Birth }

// Diagram is the multiset of persistence pairs of one homology dimension.
// Pairs are unordered as a set; Sort provides a canonical order when a
// deterministic serialization is needed. Equal pairs are never merged.
type Diagram []Pair

// Clone returns a deep copy of the diagram.
func (d Diagram) Clone() Diagram {
	if d == nil {
		return nil
	}
	out := make(Diagram, len(d))
	copy(out, d)

	return out
}

// Sort orders the pairs by (Birth, Death) ascending, in place.
// The multiset is unchanged; only the slice order is normalized.
func (d Diagram) Sort() {
	sort.Slice(d, func(i, j int) bool {
		if d[i].Birth != d[j].Birth {
			return d[i].Birth < d[j].Birth
		}

		return d[i].Death < d[j].Death
	})
}

// TotalPersistence returns the sum of lifetimes over all pairs.
func (d Diagram) TotalPersistence() float64 {
	var total float64
	for _, p := range d {
		total += p.Persistence()
	}

	return total
}

// MaxPersistence returns the largest lifetime in the diagram, or 0 when the
// diagram is empty.
func (d Diagram) MaxPersistence() float64 {
	var best float64
	for _, p := range d {
		if life := p.Persistence(); life > best {
			best = life
		}
	}

	return best
}

// Collection groups the diagrams of a single sample, keyed by homology
// dimension. A missing key means "no classes in that dimension".
type Collection map[int]Diagram

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for dim, d := range c {
		out[dim] = d.Clone()
	}

	return out
}

// Dimensions returns the homology dimensions present in the collection,
// sorted ascending.
func (c Collection) Dimensions() []int {
	dims := make([]int, 0, len(c))
	for dim := range c {
		dims = append(dims, dim)
	}
	sort.Ints(dims)

	return dims
}

// Batch is an ordered sequence of Collections, one per window, index-aligned
// with the window sequence that produced it.
type Batch []Collection

// Clone returns a deep copy of the batch.
func (b Batch) Clone() Batch {
	if b == nil {
		return nil
	}
	out := make(Batch, len(b))
	for i, c := range b {
		out[i] = c.Clone()
	}

	return out
}

// Options configures the diagram transforms.
//
// Dimensions – homology dimensions a transform acts on. nil (default) means
//
//	"all dimensions present in the collection".
//
// Epsilon    – lifetime threshold for Filter. Pairs with persistence
//
//	strictly below Epsilon are removed. Must be >= 0. Default 0.
//
// Bins       – number of sample values for BettiCurve. Must be >= 1.
//
//	Default 100.
//
// RangeMin / RangeMax / RangeSet – optional fixed filtration range for
//
//	BettiCurve. When RangeSet is false (default) the range is derived
//	from the data: [min birth, max death].
type Options struct {
	Dimensions []int
	Epsilon    float64
	Bins       int
	RangeMin   float64
	RangeMax   float64
	RangeSet   bool
}

// Option is a functional option for the diagram transforms.
type Option func(*Options)

// WithDimensions restricts a transform to the given homology dimensions.
// Pairs in other dimensions pass through untouched.
func WithDimensions(dims ...int) Option {
	return func(o *Options) {
		o.Dimensions = append([]int(nil), dims...)
	}
}

// WithEpsilon sets the lifetime threshold used by Filter.
// Validation happens in the transform entry point (ErrBadEpsilon).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithBins sets the number of Betti-curve sample values.
// Validation happens in the transform entry point (ErrBadBins).
func WithBins(n int) Option {
	return func(o *Options) {
		o.Bins = n
	}
}

// WithRange fixes the filtration range sampled by BettiCurve instead of
// deriving it from the data. Validation happens in the entry point
// (ErrBadRange).
func WithRange(min, max float64) Option {
	return func(o *Options) {
		o.RangeMin = min
		o.RangeMax = max
		o.RangeSet = true
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied.
//
// Defaults:
//   - Dimensions: nil (act on every dimension present).
//   - Epsilon:    0 (Filter is the identity).
//   - Bins:       100.
//   - Range:      derived from the data.
func DefaultOptions() Options {
	return Options{
		Dimensions: nil,
		Epsilon:    0,
		Bins:       100,
		RangeSet:   false,
	}
}

// dimSet materializes the configured dimension filter as a set; nil means
// "every dimension".
func (o *Options) dimSet() map[int]bool {
	if o.Dimensions == nil {
		return nil
	}
	set := make(map[int]bool, len(o.Dimensions))
	for _, dim := range o.Dimensions {
		set[dim] = true
	}

	return set
}
