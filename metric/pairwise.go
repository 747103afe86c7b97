package metric

import (
	"context"
	"runtime"

	"github.com/katalvlaran/tda/batch"
	"github.com/katalvlaran/tda/diagram"
)

// Distance computes the configured distance between two samples' diagram
// collections, one value per homology dimension. Dimensions absent from
// both collections compare as empty diagrams (distance 0).
//
// Errors: option validation sentinels only; two collections are always
// comparable.
func Distance(a, b diagram.Collection, opts ...Option) (map[int]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pair := diagram.Batch{a, b}
	out := make(map[int]float64)
	for _, dim := range cfg.dimensions(pair) {
		out[dim] = distanceOf(a[dim], b[dim], pair, dim, &cfg)
	}

	return out, nil
}

// PairwiseDistances computes the full symmetric distance tensor of a
// window batch: one n×n matrix per homology dimension, indexed
// (sample_i, sample_j, dimension). The diagonal is structurally zero and
// d(i,j)=d(j,i) by construction.
//
// Sample pairs are independent work items and fan out on a bounded worker
// pool; results land in their (i,j) slots, so scheduling never affects
// the output.
//
// Errors: ErrEmptyBatch, the option sentinels, or the context's error.
func PairwiseDistances(ctx context.Context, b diagram.Batch, opts ...Option) (*Tensor, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, ErrEmptyBatch
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	dims := cfg.dimensions(b)
	tensor := newTensor(len(b), dims)

	// Flatten the strict upper triangle into an index-aligned work list.
	type job struct{ i, j, dim int }
	var jobs []job
	for _, dim := range dims {
		for i := 0; i < len(b); i++ {
			for j := i + 1; j < len(b); j++ {
				jobs = append(jobs, job{i: i, j: j, dim: dim})
			}
		}
	}

	// Landscape vectors are shared across pairs: precompute one per
	// (sample, dimension) on the batch-wide grid before fanning out.
	var vecs map[int][][]float64
	if cfg.Kind == Landscape {
		vecs = make(map[int][][]float64, len(dims))
		for _, dim := range dims {
			lo, hi := landscapeRange(b, dim)
			perSample, err := batch.Collect(ctx, len(b), workers, func(i int) ([]float64, error) {
				return landscapeVector(b[i][dim], lo, hi, cfg.Layers, cfg.Bins), nil
			})
			if err != nil {
				return nil, err
			}
			vecs[dim] = perSample
		}
	}

	err := batch.Map(ctx, len(jobs), workers, func(k int) error {
		jb := jobs[k]
		var d float64
		if cfg.Kind == Landscape {
			lo, hi := landscapeRange(b, jb.dim)
			d = landscapeDistance(vecs[jb.dim][jb.i], vecs[jb.dim][jb.j], lo, hi, cfg.Bins, cfg.P)
		} else {
			d = matchingDistance(b[jb.i][jb.dim], b[jb.j][jb.dim], &cfg)
		}
		// Distinct (i,j) slots: concurrent writes never overlap.
		tensor.slices[jb.dim].SetSym(jb.i, jb.j, d)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tensor, nil
}

// distanceOf dispatches one dimension's distance for the two-sample case.
func distanceOf(da, db diagram.Diagram, pair diagram.Batch, dim int, cfg *Options) float64 {
	if cfg.Kind == Landscape {
		lo, hi := landscapeRange(pair, dim)
		va := landscapeVector(da, lo, hi, cfg.Layers, cfg.Bins)
		vb := landscapeVector(db, lo, hi, cfg.Layers, cfg.Bins)

		return landscapeDistance(va, vb, lo, hi, cfg.Bins, cfg.P)
	}

	return matchingDistance(da, db, cfg)
}

// matchingDistance dispatches between the two optimal-matching metrics.
func matchingDistance(a, b diagram.Diagram, cfg *Options) float64 {
	if cfg.Kind == Bottleneck {
		return bottleneckDistance(a, b)
	}

	return wassersteinDistance(a, b, cfg.P)
}
