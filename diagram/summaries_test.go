package diagram_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tda/diagram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntropy_UniformLifespans verifies that n equal lifespans yield ln(n).
func TestEntropy_UniformLifespans(t *testing.T) {
	c := diagram.Collection{
		0: {{Birth: 0, Death: 1}, {Birth: 2, Death: 3}, {Birth: 5, Death: 6}, {Birth: 7, Death: 8}},
	}

	got := diagram.Entropy(c, 0)
	assert.InDelta(t, math.Log(4), got[0], 1e-12, "four equal lifespans carry ln(4) nats")
}

// TestEntropy_EdgeCases verifies empty, degenerate-only and single-pair
// diagrams all have entropy 0, and that absent dimensions are reported as 0.
func TestEntropy_EdgeCases(t *testing.T) {
	c := diagram.Collection{
		0: {},
		1: {{Birth: 1, Death: 1}},
		2: {{Birth: 0, Death: 3}},
	}

	got := diagram.Entropy(c, 0, 1, 2, 7)
	assert.Equal(t, 0.0, got[0], "empty diagram")
	assert.Equal(t, 0.0, got[1], "only degenerate pairs")
	assert.Equal(t, 0.0, got[2], "single non-degenerate pair")
	assert.Equal(t, 0.0, got[7], "dimension absent from the collection")
}

// TestEntropy_IgnoresDegeneratePairs verifies degenerate pairs do not skew
// the lifespan distribution.
func TestEntropy_IgnoresDegeneratePairs(t *testing.T) {
	clean := diagram.Collection{0: {{Birth: 0, Death: 1}, {Birth: 0, Death: 2}}}
	noisy := diagram.Collection{0: {{Birth: 0, Death: 1}, {Birth: 3, Death: 3}, {Birth: 0, Death: 2}}}

	assert.InDelta(t, diagram.Entropy(clean, 0)[0], diagram.Entropy(noisy, 0)[0], 1e-12)
}

// TestBettiCurve_StepCounts verifies interval membership counting on a fixed
// grid, including the half-open [birth, death) convention.
func TestBettiCurve_StepCounts(t *testing.T) {
	c := diagram.Collection{
		0: {{Birth: 0, Death: 2}, {Birth: 1, Death: 3}},
	}

	curves, grid, err := diagram.BettiCurve(c, []int{0}, diagram.WithRange(0, 3), diagram.WithBins(4))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2, 3}, grid, "four bins over [0,3]")

	// t=0: only [0,2) alive. t=1: both alive. t=2: [0,2) closed, [1,3) alive.
	// t=3: nothing alive (death is exclusive).
	assert.Equal(t, []float64{1, 2, 1, 0}, curves[0])
}

// TestBettiCurve_DerivedRange verifies the default range spans
// [min birth, max death] of the requested dimensions.
func TestBettiCurve_DerivedRange(t *testing.T) {
	c := diagram.Collection{0: {{Birth: 0.5, Death: 2.5}}}

	_, grid, err := diagram.BettiCurve(c, nil, diagram.WithBins(3))
	require.NoError(t, err)
	assert.Equal(t, 0.5, grid[0])
	assert.Equal(t, 2.5, grid[len(grid)-1])
}

// TestBettiCurve_Validation verifies the sentinel errors for bad options.
func TestBettiCurve_Validation(t *testing.T) {
	c := diagram.Collection{0: {{Birth: 0, Death: 1}}}

	_, _, err := diagram.BettiCurve(c, nil, diagram.WithBins(0))
	assert.ErrorIs(t, err, diagram.ErrBadBins)

	_, _, err = diagram.BettiCurve(c, nil, diagram.WithRange(2, 1))
	assert.ErrorIs(t, err, diagram.ErrBadRange)
}

// TestBettiCurve_EmptyCollection verifies an empty collection produces a
// zero curve on a degenerate range instead of an error.
func TestBettiCurve_EmptyCollection(t *testing.T) {
	curves, grid, err := diagram.BettiCurve(diagram.Collection{}, []int{0}, diagram.WithBins(2))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, grid)
	assert.Equal(t, []float64{0, 0}, curves[0])
}
