package window

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Slide and ResampleLabels.
var (
	// ErrBadGeometry indicates Width or Stride below 1.
	ErrBadGeometry = errors.New("window: width and stride must be >= 1")

	// ErrInsufficientLength indicates Width exceeds the series length.
	ErrInsufficientLength = errors.New("window: width exceeds embedded-series length")

	// ErrLabelMismatch indicates a label series shorter than the covered range.
	ErrLabelMismatch = errors.New("window: label series shorter than windowed range")
)

// Window is one fixed-width slice of an embedded series: a point cloud of
// Width points covering embedded indices [Begin, End). Points are copied at
// construction and never aliased back into the input.
type Window struct {
	Begin  int         // first embedded index covered (inclusive)
	End    int         // one past the last embedded index covered
	Points [][]float64 // the point cloud, len == End-Begin
}

// Options configures Slide.
//
// Width  – number of consecutive embedded vectors per window (≥1).
// Stride – offset between consecutive window starts (≥1).
type Options struct {
	Width  int
	Stride int
}

// Option is a functional option for Slide.
type Option func(*Options)

// WithWidth sets the window width.
func WithWidth(w int) Option {
	return func(o *Options) { o.Width = w }
}

// WithStride sets the offset between consecutive window starts.
func WithStride(s int) Option {
	return func(o *Options) { o.Stride = s }
}

// DefaultOptions returns the Options used when no functional options are
// supplied: Width 10, Stride 1.
func DefaultOptions() Options {
	return Options{Width: 10, Stride: 1}
}

// Slide segments the embedded series into overlapping windows. Window i
// covers [i·Stride, i·Stride+Width); the output has exactly
// floor((N-Width)/Stride) + 1 windows for N input vectors.
//
// Each window's point cloud is a deep copy of the covered vectors, so the
// caller may freely mutate the input afterwards.
//
// Errors: ErrBadGeometry on Width/Stride < 1, ErrInsufficientLength when
// Width > N.
//
// Complexity: O(count·Width·dim) time and space.
func Slide(embedded [][]float64, opts ...Option) ([]Window, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Width < 1 || cfg.Stride < 1 {
		return nil, fmt.Errorf("%w: width=%d stride=%d", ErrBadGeometry, cfg.Width, cfg.Stride)
	}
	if cfg.Width > len(embedded) {
		return nil, fmt.Errorf("%w: width=%d length=%d", ErrInsufficientLength, cfg.Width, len(embedded))
	}

	count := (len(embedded)-cfg.Width)/cfg.Stride + 1
	out := make([]Window, count)
	for i := 0; i < count; i++ {
		begin := i * cfg.Stride
		end := begin + cfg.Width
		points := make([][]float64, cfg.Width)
		for j, v := range embedded[begin:end] {
			points[j] = append([]float64(nil), v...)
		}
		out[i] = Window{Begin: begin, End: end, Points: points}
	}

	return out, nil
}

// ResampleLabels pairs each window with one label: the LAST label of the
// range the window covers, labels[End-1]. See the package documentation for
// the rationale behind the right-edge policy.
//
// Errors: ErrLabelMismatch when the label series does not reach the last
// window's right edge.
func ResampleLabels(labels []float64, ws []Window) ([]float64, error) {
	out := make([]float64, len(ws))
	for i, w := range ws {
		if w.End-1 >= len(labels) {
			return nil, fmt.Errorf("%w: need index %d, have %d labels", ErrLabelMismatch, w.End-1, len(labels))
		}
		out[i] = labels[w.End-1]
	}

	return out, nil
}
