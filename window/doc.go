// Package window slices an embedded series into overlapping fixed-width
// point clouds ("windows"), each an independent sample for downstream
// topological analysis.
//
// Overview:
//
//   - Slide produces windows of Width consecutive embedded vectors taken at
//     Stride offsets. Window i covers the half-open index range
//     [i·Stride, i·Stride+Width) of the embedded series, and the window
//     count is exactly floor((N-Width)/Stride) + 1 for N input vectors.
//   - Windows cover the series left-to-right without reordering: window
//     index i always maps to the same original time interval, and every
//     downstream stage that is index-aligned with the window sequence
//     (diagram batches, distance tensors) inherits that mapping.
//   - Each window owns a copied point cloud: mutating the input after
//     Slide, or a window's points, never aliases across stage boundaries.
//
// Label resampling policy:
//
//   - ResampleLabels pairs each window with the LAST label in its covered
//     range, labels[i·Stride+Width-1]. The "last sample" policy is the
//     deliberate, documented choice: a window summarizes the state up to
//     its right edge, so the right-edge label is the one it predicts.
//
// Errors (sentinel):
//
//   - ErrBadGeometry         if Width or Stride is < 1.
//   - ErrInsufficientLength  if Width exceeds the embedded-series length.
//   - ErrLabelMismatch       if the label series is shorter than the range
//     the windows cover.
//
// Example usage:
//
//	ws, err := window.Slide(embedded, window.WithWidth(40), window.WithStride(5))
//	if err != nil { ... }
//	for _, w := range ws {
//	    _ = w.Points // one point cloud per window
//	}
package window
