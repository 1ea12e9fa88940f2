package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplex128s(t *testing.T) {
	rng := NewRNG(4711)

	x := rng.Complex128s(32)

	assert.Len(t, x, 32)
	for _, v := range x {
		assert.GreaterOrEqual(t, real(v), -1.0)
		assert.Less(t, real(v), 1.0)
		assert.GreaterOrEqual(t, imag(v), -1.0)
		assert.Less(t, imag(v), 1.0)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Complex64s(10)

	rng.Reset()
	v2 := rng.Complex64s(10)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestNaiveDFT_Tone(t *testing.T) {
	const n, k = 16, 3

	got := NaiveDFT(Tone(n, k), -1)

	for bin, v := range got {
		want := 0.0
		if bin == k || bin == n-k {
			want = n / 2
		}
		assert.InDelta(t, want, real(v), 1e-9, "bin %d", bin)
		assert.InDelta(t, 0, imag(v), 1e-9, "bin %d", bin)
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := []complex128{1, 2i, 3}
	b := []complex128{1, 2i, 3 + 0.5i}

	assert.InDelta(t, 0.5, MaxAbsDiff(a, b), 1e-12)
	assert.Equal(t, 0.0, MaxAbsDiff(a, a))
	assert.True(t, math.IsInf(MaxAbsDiff(a, b[:2]), 1))
}

func TestWiden(t *testing.T) {
	assert.Equal(t, []complex128{1 + 2i, -0.5}, Widen([]complex64{1 + 2i, -0.5}))
}
