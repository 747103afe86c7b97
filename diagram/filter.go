package diagram

// Filter removes every pair whose lifetime (Death - Birth) is strictly below
// Epsilon, in the configured dimensions only. Pairs in dimensions outside
// the configured set pass through untouched (deep-copied, never aliased).
//
// Properties guaranteed by this definition:
//   - Epsilon = 0 is the identity transform (no lifetime is below zero).
//   - Filter is idempotent: filtering twice equals filtering once.
//
// Returns ErrBadEpsilon when Epsilon < 0.
//
// Complexity: O(P) where P = total number of pairs in the collection.
func Filter(c Collection, opts ...Option) (Collection, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Epsilon < 0 {
		return nil, ErrBadEpsilon
	}

	set := cfg.dimSet()
	out := make(Collection, len(c))
	for dim, d := range c {
		// Dimensions outside the configured set are passed through.
		if set != nil && !set[dim] {
			out[dim] = d.Clone()
			continue
		}
		kept := make(Diagram, 0, len(d))
		for _, p := range d {
			if p.Persistence() < cfg.Epsilon {
				continue
			}
			kept = append(kept, p)
		}
		out[dim] = kept
	}

	return out, nil
}

// FilterBatch applies Filter to every sample of the batch independently,
// preserving index alignment. Returns ErrNilBatch on a nil batch and
// ErrBadEpsilon on a negative threshold.
func FilterBatch(b Batch, opts ...Option) (Batch, error) {
	if b == nil {
		return nil, ErrNilBatch
	}
	out := make(Batch, len(b))
	for i, c := range b {
		filtered, err := Filter(c, opts...)
		if err != nil {
			return nil, err
		}
		out[i] = filtered
	}

	return out, nil
}
