package native

import (
	"strings"
	"unsafe"
)

// Success is the result code native entry points return on success.
// Any other value is a failure.
const Success = 1

// Precision identifies one of the two parallel native library instances.
// The two precisions never share planner, thread or wisdom state.
type Precision uint8

const (
	// Double targets the double precision (complex128) library.
	Double Precision = iota
	// Single targets the single precision (complex64) library.
	Single
)

// String returns the string representation of a Precision.
func (p Precision) String() string {
	switch p {
	case Double:
		return "double"
	case Single:
		return "single"
	default:
		return "unknown"
	}
}

// ParsePrecision parses a string into a Precision value.
func ParsePrecision(s string) (Precision, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "double", "f64", "float64":
		return Double, true
	case "single", "f32", "float32":
		return Single, true
	default:
		return Double, false
	}
}

// ElemSize returns the size in bytes of one complex element.
func (p Precision) ElemSize() uintptr {
	if p == Single {
		return 8
	}
	return 16
}

// Sign is the sign of the exponent in the transform.
type Sign int

const (
	// Forward computes the forward transform (exponent sign -1).
	Forward Sign = -1
	// Backward computes the unnormalized inverse transform (exponent sign +1).
	Backward Sign = 1
)

// String returns the string representation of a Sign.
func (s Sign) String() string {
	switch s {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "invalid"
	}
}

// Flag is a bit set of planner flags. Values match libfftw3.
type Flag uint32

const (
	Measure        Flag = 0
	DestroyInput   Flag = 1 << 0
	Unaligned      Flag = 1 << 1
	ConserveMemory Flag = 1 << 2
	Exhaustive     Flag = 1 << 3
	PreserveInput  Flag = 1 << 4
	Patient        Flag = 1 << 5
	Estimate       Flag = 1 << 6
	WisdomOnly     Flag = 1 << 21
)

// Has reports whether all bits of o are set in f.
func (f Flag) Has(o Flag) bool { return f&o == o }

// Rigor returns the planning rigor bits of f (Estimate, Measure, Patient, Exhaustive).
func (f Flag) Rigor() Flag {
	switch {
	case f.Has(Exhaustive):
		return Exhaustive
	case f.Has(Patient):
		return Patient
	case f.Has(Estimate):
		return Estimate
	default:
		return Measure
	}
}

// Plan is an opaque native plan handle. A nil Plan signals that creation failed.
type Plan unsafe.Pointer

// WorkFunc is the native per-job entry point. arg is jobdata + i*elsize.
type WorkFunc func(arg unsafe.Pointer)

// SpawnLoop is the native "parallel for" callback contract. It must run
// work(jobdata + i*elsize) exactly once for every i in [0, njobs) and return
// only when all of them have completed.
type SpawnLoop func(work WorkFunc, jobdata unsafe.Pointer, elsize uintptr, njobs int)

// Engine is the set of native entry points for one precision.
//
// Plan creation, destruction and ForgetWisdom mutate hidden planner state and
// are not safe for concurrent use. ExecuteDFT is safe for concurrent use as long
// as calls do not share buffers. Thread configuration and wisdom file I/O are
// synchronized by the engine itself.
type Engine interface {
	Precision() Precision

	// InitThreads bootstraps the engine's thread subsystem. Returns Success on success.
	InitThreads() int
	// SetThreadsCallback installs the parallel-for callback. nil restores the
	// engine's own threads.
	SetThreadsCallback(cb SpawnLoop)
	// PlanWithNThreads sets the thread count for subsequently created plans.
	PlanWithNThreads(n int)
	// PlannerNThreads returns the thread count subsequently created plans use.
	PlannerNThreads() int

	ImportWisdomFromFilename(filename CString) int
	ExportWisdomToFilename(filename CString) int
	ForgetWisdom()

	PlanDFT1D(n int, in, out unsafe.Pointer, sign Sign, flags Flag) Plan
	ExecuteDFT(p Plan, in, out unsafe.Pointer)
	DestroyPlan(p Plan)

	// AlignmentOf returns the SIMD alignment class of p (p modulo the SIMD alignment).
	AlignmentOf(p unsafe.Pointer) int
}
