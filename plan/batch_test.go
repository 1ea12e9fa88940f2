package plan

import (
	"context"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fftwgo"
	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/testutil"
)

func ptr[T Complex](s []T) unsafe.Pointer {
	return unsafe.Pointer(&s[0])
}

func TestExecuteBatch(t *testing.T) {
	const n, batch = 64, 12

	d, _ := newDomain(t, native.Double)
	p, err := NewC2C[complex128](d, n, native.Forward, native.Estimate)
	require.NoError(t, err)
	defer p.Close()

	rng := testutil.NewRNG(8)
	pairs := make([]Pair[complex128], batch)
	for i := range pairs {
		pairs[i] = Pair[complex128]{In: NewAligned[complex128](n), Out: NewAligned[complex128](n)}
		rng.FillComplex128(pairs[i].In)
	}

	require.NoError(t, ExecuteBatch(context.Background(), p, pairs, 3))

	for i, pair := range pairs {
		assert.Less(t, testutil.MaxAbsDiff(pair.Out, testutil.NaiveDFT(pair.In, -1)), 1e-9, "pair %d", i)
	}
}

func TestExecuteBatch_InPlacePairs(t *testing.T) {
	d, _ := newDomain(t, native.Double)
	buf := NewAligned[complex128](16)
	p, err := NewC2CFor(d, buf, buf, native.Forward, native.Estimate)
	require.NoError(t, err)
	defer p.Close()

	pairs := make([]Pair[complex128], 4)
	for i := range pairs {
		b := NewAligned[complex128](16)
		copy(b, testutil.Tone(16, i+1))
		pairs[i] = Pair[complex128]{In: b, Out: b}
	}

	require.NoError(t, ExecuteBatch(context.Background(), p, pairs, 0))
	for i, pair := range pairs {
		assert.InDelta(t, 8, real(pair.Out[i+1]), 1e-9)
	}
}

func TestExecuteBatch_Overlap(t *testing.T) {
	d, _ := newDomain(t, native.Double)
	p, err := NewC2C[complex128](d, 8, native.Forward, native.Estimate)
	require.NoError(t, err)
	defer p.Close()

	shared := NewAligned[complex128](8)
	pairs := []Pair[complex128]{
		{In: NewAligned[complex128](8), Out: shared},
		{In: NewAligned[complex128](8), Out: shared},
	}

	err = ExecuteBatch(context.Background(), p, pairs, 0)
	require.ErrorIs(t, err, fftwgo.ErrInvalidPlan)
	assert.Contains(t, err.Error(), "share memory")
}

func TestExecuteBatch_FirstErrorWins(t *testing.T) {
	d, _ := newDomain(t, native.Double)
	p, err := NewC2C[complex128](d, 8, native.Forward, native.Estimate)
	require.NoError(t, err)
	defer p.Close()

	pairs := []Pair[complex128]{
		{In: NewAligned[complex128](8), Out: NewAligned[complex128](8)},
		{In: NewAligned[complex128](4), Out: NewAligned[complex128](8)},
	}

	err = ExecuteBatch(context.Background(), p, pairs, 1)
	assert.Equal(t, fftwgo.KindInputArrayMismatch, fftwgo.KindOf(err))
	assert.Contains(t, err.Error(), "pair 1")
}

func TestExecuteBatch_Canceled(t *testing.T) {
	d, _ := newDomain(t, native.Double)
	p, err := NewC2C[complex128](d, 8, native.Forward, native.Estimate)
	require.NoError(t, err)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pairs := []Pair[complex128]{{In: NewAligned[complex128](8), Out: NewAligned[complex128](8)}}
	assert.ErrorIs(t, ExecuteBatch(ctx, p, pairs, 0), context.Canceled)
}
