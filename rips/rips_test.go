package rips_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/tda/diagram"
	"github.com/katalvlaran/tda/rips"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// circle returns n points evenly spaced on the unit circle.
func circle(n int) [][]float64 {
	pts := make([][]float64, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = []float64{math.Cos(a), math.Sin(a)}
	}

	return pts
}

// sortedPairs returns a canonical copy of a diagram for multiset comparison.
func sortedPairs(d diagram.Diagram) diagram.Diagram {
	out := d.Clone()
	out.Sort()

	return out
}

// TestTransform_IdenticalPoints covers the constant-series scenario: a
// window of identical points yields a single 0-dimensional class with
// birth=death=0 and no higher-dimensional classes.
func TestTransform_IdenticalPoints(t *testing.T) {
	pts := make([][]float64, 12)
	for i := range pts {
		pts[i] = []float64{7, 7, 7} // constant series embedded in 3-space
	}

	col, err := rips.Transform(rips.Points(pts), rips.WithHomologyDimensions(0, 1, 2))
	require.NoError(t, err)

	require.Len(t, col[0], 1, "exactly one connected component survives")
	assert.Equal(t, diagram.Pair{Birth: 0, Death: 0}, col[0][0])
	assert.Empty(t, col[1], "no loops among coincident points")
	assert.Empty(t, col[2], "no voids among coincident points")
}

// TestTransform_TwoPoints verifies the H0 pairing of the smallest
// non-trivial cloud under a finite cap.
func TestTransform_TwoPoints(t *testing.T) {
	pts := [][]float64{{0, 0}, {2, 0}}

	col, err := rips.Transform(rips.Points(pts),
		rips.WithMaxEdgeLength(5),
		rips.WithHomologyDimensions(0),
	)
	require.NoError(t, err)

	got := sortedPairs(col[0])
	require.Len(t, got, 2)
	assert.Equal(t, diagram.Pair{Birth: 0, Death: 2}, got[0], "one component dies when the edge appears")
	assert.Equal(t, diagram.Pair{Birth: 0, Death: 5}, got[1], "the essential component dies at the cap")
}

// TestTransform_SquareLoop verifies H1 birth at the side length and the
// essential death at the cap when the filling diagonals are excluded.
func TestTransform_SquareLoop(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	col, err := rips.Transform(rips.Points(pts),
		rips.WithMaxEdgeLength(1.2), // sides enter at 1, diagonals (√2) never
		rips.WithHomologyDimensions(0, 1),
	)
	require.NoError(t, err)

	h0 := sortedPairs(col[0])
	require.Len(t, h0, 4)
	for _, p := range h0[:3] {
		assert.Equal(t, diagram.Pair{Birth: 0, Death: 1}, p, "three merges at the side length")
	}
	assert.Equal(t, diagram.Pair{Birth: 0, Death: 1.2}, h0[3])

	require.Len(t, col[1], 1, "the square carries one loop")
	assert.Equal(t, diagram.Pair{Birth: 1, Death: 1.2}, col[1][0], "the loop never fills, death is the cap")
}

// TestTransform_CircleDominantLoop covers the circle scenario: points
// sampled around a circle produce one dominant H1 class whose persistence
// dwarfs everything else.
func TestTransform_CircleDominantLoop(t *testing.T) {
	col, err := rips.Transform(rips.Points(circle(20)), rips.WithHomologyDimensions(0, 1))
	require.NoError(t, err)

	var dominant int
	for _, p := range col[1] {
		if p.Persistence() > 1 {
			dominant++
		} else {
			assert.Less(t, p.Persistence(), 0.1, "secondary classes are noise")
		}
	}
	assert.Equal(t, 1, dominant, "exactly one large loop")
}

// TestTransform_PermutationInvariance verifies the diagram multiset does
// not depend on input point order.
func TestTransform_PermutationInvariance(t *testing.T) {
	pts := [][]float64{
		{0.1, 0.9}, {1.3, 0.2}, {0.7, 1.8}, {2.1, 1.1},
		{1.9, 0.4}, {0.4, 0.3}, {1.1, 1.4}, {2.4, 2.0},
	}
	perm := [][]float64{
		pts[5], pts[2], pts[7], pts[0], pts[3], pts[6], pts[1], pts[4],
	}

	a, err := rips.Transform(rips.Points(pts), rips.WithHomologyDimensions(0, 1))
	require.NoError(t, err)
	b, err := rips.Transform(rips.Points(perm), rips.WithHomologyDimensions(0, 1))
	require.NoError(t, err)

	for _, dim := range []int{0, 1} {
		pa, pb := sortedPairs(a[dim]), sortedPairs(b[dim])
		require.Len(t, pb, len(pa), "dim %d", dim)
		for i := range pa {
			assert.InDelta(t, pa[i].Birth, pb[i].Birth, 1e-12, "dim %d pair %d", dim, i)
			assert.InDelta(t, pa[i].Death, pb[i].Death, 1e-12, "dim %d pair %d", dim, i)
		}
	}
}

// TestTransform_PairBounds verifies 0 <= birth <= death <= cap for every
// pair of every requested dimension.
func TestTransform_PairBounds(t *testing.T) {
	const maxEdge = 1.5

	col, err := rips.Transform(rips.Points(circle(14)),
		rips.WithMaxEdgeLength(maxEdge),
		rips.WithHomologyDimensions(0, 1),
	)
	require.NoError(t, err)

	for dim, d := range col {
		for _, p := range d {
			assert.GreaterOrEqual(t, p.Birth, 0.0, "dim %d", dim)
			assert.GreaterOrEqual(t, p.Death, p.Birth, "dim %d", dim)
			assert.LessOrEqual(t, p.Death, maxEdge, "dim %d", dim)
		}
	}
}

// TestTransform_PrecomputedDistances verifies the precomputed path agrees
// with hand-computed H0 pairing on a 3-point line metric.
func TestTransform_PrecomputedDistances(t *testing.T) {
	line := [][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}

	col, err := rips.Transform(rips.DistancesDense(line), rips.WithHomologyDimensions(0))
	require.NoError(t, err)

	got := sortedPairs(col[0])
	require.Len(t, got, 3)
	assert.Equal(t, diagram.Pair{Birth: 0, Death: 1}, got[0])
	assert.Equal(t, diagram.Pair{Birth: 0, Death: 1}, got[1])
	// Unbounded cap: the essential death falls back to the largest
	// filtration value present, the 0–2 edge at 2.
	assert.Equal(t, diagram.Pair{Birth: 0, Death: 2}, got[2])

	// The SymDense flavor must agree exactly.
	sym := mat.NewSymDense(3, []float64{0, 1, 2, 1, 0, 1, 2, 1, 0})
	col2, err := rips.Transform(rips.Distances(sym), rips.WithHomologyDimensions(0))
	require.NoError(t, err)
	assert.Equal(t, sortedPairs(col[0]), sortedPairs(col2[0]))
}

// TestTransform_InvalidMetric verifies every malformation of a precomputed
// matrix is rejected.
func TestTransform_InvalidMetric(t *testing.T) {
	cases := map[string][][]float64{
		"not square":       {{0, 1}, {1}},
		"asymmetric":       {{0, 1}, {2, 0}},
		"nonzero diagonal": {{1, 1}, {1, 0}},
		"negative entry":   {{0, -1}, {-1, 0}},
	}
	for name, m := range cases {
		_, err := rips.Transform(rips.DistancesDense(m))
		assert.ErrorIs(t, err, rips.ErrInvalidMetric, name)
	}
}

// TestTransform_InputValidation verifies the remaining sentinels.
func TestTransform_InputValidation(t *testing.T) {
	_, err := rips.Transform(rips.Points(nil))
	assert.ErrorIs(t, err, rips.ErrEmptyInput)

	_, err = rips.Transform(rips.Points([][]float64{{1, 2}, {1}}))
	assert.ErrorIs(t, err, rips.ErrDimensionMismatch)

	_, err = rips.Transform(rips.Points([][]float64{{0}}), rips.WithMaxEdgeLength(0))
	assert.ErrorIs(t, err, rips.ErrBadEdgeLength)

	_, err = rips.Transform(rips.Points([][]float64{{0}}), rips.WithHomologyDimensions(-1))
	assert.ErrorIs(t, err, rips.ErrBadDimension)
}

// TestTransformBatch_IsolatesFailures verifies per-sample error isolation:
// a bad window does not poison its neighbors.
func TestTransformBatch_IsolatesFailures(t *testing.T) {
	inputs := []rips.Input{
		rips.Points(circle(6)),
		rips.Points(nil), // empty window
		rips.Points(circle(8)),
	}

	out, errs, err := rips.TransformBatch(context.Background(), inputs, rips.WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Len(t, errs, 3)

	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], rips.ErrEmptyInput)
	assert.NoError(t, errs[2])
	assert.NotNil(t, out[0])
	assert.Nil(t, out[1], "failed sample has no diagrams")
	assert.NotNil(t, out[2])
}

// TestTransformBatch_IndexAlignment verifies output order matches input
// order regardless of scheduling.
func TestTransformBatch_IndexAlignment(t *testing.T) {
	inputs := make([]rips.Input, 8)
	for i := range inputs {
		// Distinct scale per window: pair (0, scale) identifies the window.
		inputs[i] = rips.Points([][]float64{{0}, {float64(i + 1)}})
	}

	out, errs, err := rips.TransformBatch(context.Background(), inputs,
		rips.WithWorkers(4),
		rips.WithHomologyDimensions(0),
		rips.WithMaxEdgeLength(100),
	)
	require.NoError(t, err)
	for i := range inputs {
		require.NoError(t, errs[i])
		got := sortedPairs(out[i][0])
		assert.Equal(t, float64(i+1), got[0].Death, "window %d", i)
	}
}

// TestTransformBatch_CanceledContext verifies cancellation surfaces as the
// whole-call error.
func TestTransformBatch_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := rips.TransformBatch(ctx, []rips.Input{rips.Points(circle(5))})
	assert.ErrorIs(t, err, context.Canceled)
}
