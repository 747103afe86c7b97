package takens

import "errors"

// Sentinel errors returned by Fit and Transform.
var (
	// ErrEmptySeries indicates that an empty series was supplied.
	ErrEmptySeries = errors.New("takens: series is empty")

	// ErrSeriesTooShort indicates the series cannot host a single delay
	// vector: len(series) < (Dimension-1)*TimeDelay + 1.
	ErrSeriesTooShort = errors.New("takens: series shorter than one delay vector")

	// ErrBadParams indicates Dimension, TimeDelay or Stride below 1.
	ErrBadParams = errors.New("takens: dimension, time delay and stride must be >= 1")

	// ErrBadSearchBound indicates a search bound or bin count below 1.
	ErrBadSearchBound = errors.New("takens: search bounds and bin count must be >= 1")

	// ErrLabelMismatch indicates a paired label series shorter than the
	// positions the embedding consumes.
	ErrLabelMismatch = errors.New("takens: label series shorter than embedded range")
)

// Params is the frozen outcome of a Fit call (or a hand-built fixed
// configuration). Transform reads Params and never writes them, so one
// Params value may serve many Transform calls, concurrently.
//
// DelayConverged / DimensionConverged report whether the respective search
// found a clean criterion signal or fell back to its bound. They are
// warnings, not errors (see package documentation).
type Params struct {
	Dimension          int  // M: number of delayed copies per vector
	TimeDelay          int  // τ: sample offset between copies
	Stride             int  // S: offset between consecutive vectors
	DelayConverged     bool // false: no interior mutual-information minimum within MaxDelay
	DimensionConverged bool // false: false-neighbor fraction never dropped below threshold
}

// Options configures Fit. Each of the two parameters is a tagged variant:
// fixed to an explicit value, or searched up to an explicit bound. The
// zero value of the fixed field selects search mode.
//
// TimeDelay    – fixed τ (≥1); 0 means "search up to MaxDelay".
// Dimension    – fixed M (≥1); 0 means "search up to MaxDimension".
// Stride       – offset between consecutive output vectors (≥1).
// MaxDelay     – upper bound of the τ scan (search mode only).
// MaxDimension – upper bound of the M scan (search mode only).
// Bins         – histogram resolution of the mutual-information estimate.
// FNNThreshold – false-neighbor fraction below which M is accepted.
// FNNRatio     – Kennel distance-blowup ratio marking a neighbor as false.
type Options struct {
	TimeDelay    int
	Dimension    int
	Stride       int
	MaxDelay     int
	MaxDimension int
	Bins         int
	FNNThreshold float64
	FNNRatio     float64
}

// Option is a functional option for Fit.
type Option func(*Options)

// WithFixedDelay fixes the time delay, skipping the mutual-information scan.
func WithFixedDelay(tau int) Option {
	return func(o *Options) {
		o.TimeDelay = tau
	}
}

// WithDelaySearch enables the mutual-information delay scan over τ=1..max.
func WithDelaySearch(max int) Option {
	return func(o *Options) {
		o.TimeDelay = 0
		o.MaxDelay = max
	}
}

// WithFixedDimension fixes the embedding dimension, skipping the
// false-nearest-neighbor scan.
func WithFixedDimension(dim int) Option {
	return func(o *Options) {
		o.Dimension = dim
	}
}

// WithDimensionSearch enables the false-nearest-neighbor dimension scan up
// to the given maximum.
func WithDimensionSearch(max int) Option {
	return func(o *Options) {
		o.Dimension = 0
		o.MaxDimension = max
	}
}

// WithStride sets the offset between consecutive embedded vectors.
func WithStride(s int) Option {
	return func(o *Options) {
		o.Stride = s
	}
}

// WithBins sets the histogram resolution of the mutual-information estimate.
func WithBins(n int) Option {
	return func(o *Options) {
		o.Bins = n
	}
}

// WithFNNThreshold sets the false-neighbor fraction below which a candidate
// dimension is accepted.
func WithFNNThreshold(frac float64) Option {
	return func(o *Options) {
		o.FNNThreshold = frac
	}
}

// WithFNNRatio sets the Kennel distance-blowup ratio above which a neighbor
// counts as false.
func WithFNNRatio(r float64) Option {
	return func(o *Options) {
		o.FNNRatio = r
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied.
//
// Defaults:
//   - TimeDelay:    0 (search), MaxDelay 10.
//   - Dimension:    0 (search), MaxDimension 5.
//   - Stride:       1.
//   - Bins:         16 histogram bins for the mutual-information estimate.
//   - FNNThreshold: 0.10 (accept M once <10% of neighbors are false).
//   - FNNRatio:     10.0 (Kennel's customary blowup ratio).
func DefaultOptions() Options {
	return Options{
		TimeDelay:    0,
		Dimension:    0,
		Stride:       1,
		MaxDelay:     10,
		MaxDimension: 5,
		Bins:         16,
		FNNThreshold: 0.10,
		FNNRatio:     10.0,
	}
}

// validate checks option consistency shared by Fit entry points.
func (o *Options) validate() error {
	if o.Stride < 1 {
		return ErrBadParams
	}
	if o.TimeDelay < 0 || o.Dimension < 0 {
		return ErrBadParams
	}
	if o.TimeDelay == 0 && o.MaxDelay < 1 {
		return ErrBadSearchBound
	}
	if o.Dimension == 0 && o.MaxDimension < 1 {
		return ErrBadSearchBound
	}
	if o.Bins < 1 {
		return ErrBadSearchBound
	}

	return nil
}
