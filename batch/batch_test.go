package batch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/tda/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMap_IndexAlignment verifies every index runs exactly once and results
// land in their own slots.
func TestMap_IndexAlignment(t *testing.T) {
	const n = 100
	out := make([]int, n)

	err := batch.Map(context.Background(), n, 8, func(i int) error {
		out[i] = i * i
		return nil
	})
	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, i*i, v, "slot %d", i)
	}
}

// TestMap_ErrorPropagates verifies the first error cancels and surfaces.
func TestMap_ErrorPropagates(t *testing.T) {
	boom := errors.New("boom")

	err := batch.Map(context.Background(), 10, 2, func(i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

// TestMap_WorkerBound verifies concurrency never exceeds the configured
// worker count.
func TestMap_WorkerBound(t *testing.T) {
	var active, peak int64

	err := batch.Map(context.Background(), 50, 4, func(i int) error {
		cur := atomic.AddInt64(&active, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		atomic.AddInt64(&active, -1)
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak, int64(4))
}

// TestMap_CanceledContext verifies a pre-canceled context short-circuits.
func TestMap_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran int64
	err := batch.Map(ctx, 10, 2, func(i int) error {
		atomic.AddInt64(&ran, 1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), ran, "no work after cancellation")
}

// TestCollect_IndexAlignment verifies results land in their own slots.
func TestCollect_IndexAlignment(t *testing.T) {
	out, err := batch.Collect(context.Background(), 20, 4, func(i int) (string, error) {
		return string(rune('a' + i%26)), nil
	})
	require.NoError(t, err)
	require.Len(t, out, 20)
	for i, v := range out {
		assert.Equal(t, string(rune('a'+i%26)), v, "slot %d", i)
	}
}

// TestCollect_ErrorDiscards verifies partial results are dropped on error.
func TestCollect_ErrorDiscards(t *testing.T) {
	boom := errors.New("boom")

	out, err := batch.Collect(context.Background(), 10, 2, func(i int) (int, error) {
		if i == 7 {
			return 0, boom
		}
		return i, nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}

// TestMap_Validation verifies the worker-bound sentinel and the empty batch.
func TestMap_Validation(t *testing.T) {
	err := batch.Map(context.Background(), 5, 0, func(int) error { return nil })
	assert.ErrorIs(t, err, batch.ErrBadWorkers)

	err = batch.Map(context.Background(), 0, 1, func(int) error { return errors.New("never") })
	assert.NoError(t, err, "empty batch runs nothing")
}
