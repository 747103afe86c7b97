package diagram

// Rescale normalizes one sample by its bottleneck distance from the empty
// diagram: half the maximum persistence across the configured dimensions.
//
// Algorithm:
//  1. scale = max over configured dimensions of (Death-Birth) / 2.
//  2. If scale == 0 (every pair degenerate, or no pairs at all), the sample
//     is returned as an unchanged deep copy — identity, never a division by
//     zero.
//  3. Otherwise every Birth/Death coordinate of every dimension is divided
//     by scale. Note that the division applies to ALL dimensions even when
//     the scale was computed over a restricted dimension set: the scale is a
//     property of the sample, not of one diagram.
//
// Rescale is idempotent up to floating tolerance: re-running it on its own
// output yields a scale factor of 1.
//
// Returns the rescaled copy and the scale factor that was applied
// (1 when the input had zero total persistence).
//
// Complexity: O(P) where P = total number of pairs in the collection.
func Rescale(c Collection, opts ...Option) (Collection, float64) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Locate the dominant persistence across the configured dimensions.
	set := cfg.dimSet()
	var maxLife float64
	for dim, d := range c {
		if set != nil && !set[dim] {
			continue
		}
		if life := d.MaxPersistence(); life > maxLife {
			maxLife = life
		}
	}
	scale := maxLife / 2

	// 2) Zero total persistence: identity, by contract.
	if scale == 0 {
		return c.Clone(), 1
	}

	// 3) Divide every coordinate by the scale factor.
	out := make(Collection, len(c))
	for dim, d := range c {
		scaled := make(Diagram, len(d))
		for i, p := range d {
			scaled[i] = Pair{Birth: p.Birth / scale, Death: p.Death / scale}
		}
		out[dim] = scaled
	}

	return out, scale
}

// RescaleBatch applies Rescale to every sample of the batch independently,
// preserving index alignment. Returns ErrNilBatch on a nil batch.
func RescaleBatch(b Batch, opts ...Option) (Batch, error) {
	if b == nil {
		return nil, ErrNilBatch
	}
	out := make(Batch, len(b))
	for i, c := range b {
		out[i], _ = Rescale(c, opts...)
	}

	return out, nil
}
