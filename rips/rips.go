package rips

import (
	"context"
	"runtime"

	"github.com/katalvlaran/tda/batch"
	"github.com/katalvlaran/tda/diagram"
)

// Transform computes the Vietoris–Rips persistence diagrams of one input
// (point cloud or precomputed distance matrix) for the requested homology
// dimensions.
//
// Pipeline:
//  1. Validate options and materialize the distance matrix (Euclidean for
//     point clouds; validated as-is for precomputed inputs).
//  2. Enumerate the filtration up to dimension max(HomologyDimensions)+1,
//     capped at MaxEdgeLength, in the deterministic canonical order.
//  3. Reduce the boundary matrix and collect pairs; resolve essential
//     deaths per the finite-cap policy.
//
// The result satisfies, for every pair: 0 <= birth <= death <= cap, and is
// invariant under permutation of the input points (as a multiset).
//
// Errors: ErrEmptyInput, ErrInvalidMetric, ErrDimensionMismatch,
// ErrBadEdgeLength, ErrBadDimension.
func Transform(in Input, opts ...Option) (diagram.Collection, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	maxHomDim, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	d, err := in.distanceMatrix()
	if err != nil {
		return nil, err
	}

	fil := buildFiltration(d, cfg.MaxEdgeLength, maxHomDim+1)
	death := essentialDeathValue(cfg.MaxEdgeLength, fil)

	return persistencePairs(fil, cfg.HomologyDimensions, death), nil
}

// TransformBatch computes diagrams for a whole window batch in parallel,
// index-aligned with the inputs.
//
// Error propagation follows the batch policy: a failing sample aborts only
// its own computation. The second return value holds one error slot per
// input (nil on success); its Collection slot is nil in that case. The
// third return value reports whole-call failures only: invalid options or
// a canceled context.
func TransformBatch(ctx context.Context, inputs []Input, opts ...Option) (diagram.Batch, []error, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	out := make(diagram.Batch, len(inputs))
	errs := make([]error, len(inputs))
	runErr := batch.Map(ctx, len(inputs), workers, func(i int) error {
		col, err := Transform(inputs[i], opts...)
		if err != nil {
			errs[i] = err // isolate the failing sample, keep the batch going
			return nil
		}
		out[i] = col

		return nil
	})
	if runErr != nil {
		return nil, nil, runErr
	}

	return out, errs, nil
}
