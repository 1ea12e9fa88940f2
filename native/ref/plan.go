package ref

import (
	"math"
	"math/bits"
	"math/cmplx"
	"time"

	"github.com/hupe1980/fftwgo/native"
)

type algorithm uint8

const (
	algoDirect algorithm = iota + 1
	algoRadix2
)

func (a algorithm) String() string {
	switch a {
	case algoDirect:
		return "direct"
	case algoRadix2:
		return "radix2"
	default:
		return "unknown"
	}
}

func parseAlgorithm(s string) (algorithm, bool) {
	switch s {
	case "direct":
		return algoDirect, true
	case "radix2":
		return algoRadix2, true
	default:
		return 0, false
	}
}

// plan is the engine-side representation of a native.Plan.
// It is immutable after creation, so concurrent executions only read it.
type plan struct {
	n     int
	sign  native.Sign
	flags native.Flag
	algo  algorithm

	nthreads int

	alignIn, alignOut int

	tw  []complex128 // tw[k] = exp(sign * 2πi * k / n)
	rev []int        // bit reversal permutation (radix2 only)
}

type forFunc func(nthreads, count int, fn func(lo, hi int))

func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func (e *Engine) newPlan(n int, sign native.Sign, flags native.Flag, algo algorithm) *plan {
	p := &plan{
		n:        n,
		sign:     sign,
		flags:    flags,
		algo:     algo,
		nthreads: 1,
		tw:       e.twiddleTable(n, sign),
	}
	if algo == algoRadix2 {
		p.rev = bitReversal(n)
	}
	return p
}

// twiddleTable returns the cached twiddle factors for (n, sign).
// The cache is planner state and is not synchronized.
func (e *Engine) twiddleTable(n int, sign native.Sign) []complex128 {
	key := twiddleKey{n: n, sign: sign}
	if tw, ok := e.twiddles[key]; ok {
		return tw
	}
	tw := make([]complex128, n)
	s := float64(sign)
	for k := range tw {
		theta := s * 2 * math.Pi * float64(k) / float64(n)
		tw[k] = complex(math.Cos(theta), math.Sin(theta))
	}
	e.twiddles[key] = tw
	return tw
}

func bitReversal(n int) []int {
	rev := make([]int, n)
	if n == 1 {
		return rev
	}
	shift := bits.UintSize - bits.TrailingZeros(uint(n))
	for i := range rev {
		rev[i] = int(bits.Reverse(uint(i)) >> shift) //nolint:gosec // i < n
	}
	return rev
}

// direct evaluates the DFT by definition, partitioning output indices.
func (p *plan) direct(src, dst []complex128, pfor forFunc) {
	n := p.n
	pfor(p.nthreads, n, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			var sum complex128
			idx := 0
			for j := 0; j < n; j++ {
				sum += src[j] * p.tw[idx]
				idx += k
				if idx >= n {
					idx -= n
				}
			}
			dst[k] = sum
		}
	})
}

// radix2 runs an in-place iterative Cooley-Tukey transform on buf, which must
// already be in bit-reversed order. Each stage partitions the n/2 butterflies.
func (p *plan) radix2(buf []complex128, pfor forFunc) {
	n := p.n
	for m := 2; m <= n; m <<= 1 {
		half := m >> 1
		step := n / m
		pfor(p.nthreads, n/2, func(lo, hi int) {
			for k := lo; k < hi; k++ {
				g, j := k/half, k%half
				a := g*m + j
				b := a + half
				t := p.tw[j*step] * buf[b]
				u := buf[a]
				buf[a] = u + t
				buf[b] = u - t
			}
		})
	}
}

// choose selects an algorithm for a problem without wisdom.
func (e *Engine) choose(n int, sign native.Sign, rigor native.Flag) algorithm {
	if !isPow2(n) {
		return algoDirect
	}
	if rigor == native.Estimate {
		if n <= 4 {
			return algoDirect
		}
		return algoRadix2
	}

	runs := e.opts.measureRuns
	switch rigor {
	case native.Patient:
		runs *= 2
	case native.Exhaustive:
		runs *= 4
	}

	best, bestTime := algoRadix2, time.Duration(math.MaxInt64)
	for _, algo := range []algorithm{algoRadix2, algoDirect} {
		if d := e.measure(n, sign, algo, runs); d < bestTime {
			best, bestTime = algo, d
		}
	}
	return best
}

// measure times single-threaded executions of a candidate on scratch data.
func (e *Engine) measure(n int, sign native.Sign, algo algorithm, runs int) time.Duration {
	p := e.newPlan(n, sign, native.Measure, algo)
	serial := func(_, count int, fn func(lo, hi int)) { fn(0, count) }

	seed := make([]complex128, n)
	for i := range seed {
		seed[i] = cmplx.Rect(1, float64(i))
	}

	best := time.Duration(math.MaxInt64)
	for r := 0; r < runs; r++ {
		start := time.Now()
		buf := make([]complex128, n)
		if algo == algoRadix2 {
			for i, v := range seed {
				buf[p.rev[i]] = v
			}
			p.radix2(buf, serial)
		} else {
			p.direct(seed, buf, serial)
		}
		if d := time.Since(start); d < best {
			best = d
		}
	}
	return best
}
