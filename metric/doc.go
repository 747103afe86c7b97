// Package metric computes distances between persistence diagrams, per
// homology dimension: persistence-landscape L_p distances and optimal
// matching (Wasserstein / bottleneck) distances, batched into a symmetric
// Tensor indexed (sample_i, sample_j, dimension).
//
// Metrics:
//
//   - Landscape: each diagram becomes a family of piecewise-linear layers;
//     layer k at value t is the k-th largest tent value
//     max(0, min(t-birth, death-t)) over all pairs. Layers are sampled on
//     Bins points over a shared per-dimension grid (the batch-wide
//     [min birth, max death] range, so every pairwise distance lives on the
//     same axis), and the distance is the step-weighted discrete L_p norm
//     of the landscape-vector difference.
//   - Wasserstein: the exact optimal partial matching between two diagrams,
//     each point matched to a point of the other diagram or to its own
//     projection on the diagonal (destroying it); cost is the p-th-power
//     sum of Euclidean matching costs, reported as its p-th root. Solved
//     exactly with the Hungarian algorithm on the diagonal-augmented
//     (n+m)×(n+m) cost matrix, so any requested tolerance Delta is already
//     satisfied; Delta is validated and reserved for approximate solvers.
//   - Bottleneck: the p→∞ limit — the smallest cost c such that a perfect
//     matching exists using only assignments of cost ≤ c. Found by binary
//     search over the finite candidate costs with an augmenting-path
//     feasibility check.
//
// Guarantees, for every batch and dimension:
//
//   - d(i, j) == d(j, i) and d(i, i) == 0;
//   - matching metrics vanish exactly on equal diagrams;
//   - two empty diagrams are at distance 0.
//
// Complexity:
//
//   - Landscape: O(B·P·log P) per diagram for P pairs and B bins, then
//     O(K·B) per pair of samples.
//   - Wasserstein: O((n+m)³) Hungarian per pair of samples.
//   - Bottleneck: O((n+m)²·E·log C) over C candidate costs.
//   - Batches fan out across sample pairs on a bounded worker pool.
//
// Errors (sentinel):
//
//   - ErrEmptyBatch    if the batch holds no samples.
//   - ErrBadOrder      if the norm/power order p < 1.
//   - ErrBadResolution if Bins or Layers < 1.
//   - ErrBadTolerance  if Delta < 0.
//   - ErrUnknownMetric if the Kind is not one of the three above.
//
// Example usage:
//
//	tensor, err := metric.PairwiseDistances(ctx, batch,
//	    metric.WithKind(metric.Wasserstein),
//	    metric.WithOrder(2),
//	)
//	if err != nil { ... }
//	d01 := tensor.At(0, 1, 1) // H1 distance between windows 0 and 1
package metric
