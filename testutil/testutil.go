package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillComplex128 fills dst with values whose real and imaginary parts are
// uniform in [-1, 1).
func (r *RNG) FillComplex128(dst []complex128) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = complex(r.rand.Float64()*2-1, r.rand.Float64()*2-1)
	}
}

// FillComplex64 is the single precision variant of FillComplex128.
func (r *RNG) FillComplex64(dst []complex64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = complex(r.rand.Float32()*2-1, r.rand.Float32()*2-1)
	}
}

// Complex128s returns a new random signal of length n.
func (r *RNG) Complex128s(n int) []complex128 {
	x := make([]complex128, n)
	r.FillComplex128(x)
	return x
}

// Complex64s returns a new random single precision signal of length n.
func (r *RNG) Complex64s(n int) []complex64 {
	x := make([]complex64, n)
	r.FillComplex64(x)
	return x
}

// Tone returns cos(2π·k·j/n) for j in [0, n). Its forward transform is n/2 at
// bins k and n-k (n at bin 0 when k is 0) and zero elsewhere.
func Tone(n, k int) []complex128 {
	x := make([]complex128, n)
	for j := range x {
		x[j] = complex(math.Cos(2*math.Pi*float64(k*j)/float64(n)), 0)
	}
	return x
}

// NaiveDFT computes the transform of x by definition with exponent sign sign.
// It is O(n²) and meant as ground truth only.
func NaiveDFT(x []complex128, sign int) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			theta := float64(sign) * 2 * math.Pi * float64(j*k%n) / float64(n)
			sum += v * cmplx.Rect(1, theta)
		}
		out[k] = sum
	}
	return out
}

// MaxAbsDiff returns the largest |a[i]-b[i]|. Slices of different length
// differ infinitely.
func MaxAbsDiff(a, b []complex128) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var m float64
	for i := range a {
		m = max(m, cmplx.Abs(a[i]-b[i]))
	}
	return m
}

// Widen converts a single precision signal to double precision.
func Widen(x []complex64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex128(v)
	}
	return out
}
