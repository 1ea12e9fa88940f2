package plan

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/fftwgo"
	"github.com/hupe1980/fftwgo/internal/mem"
	"github.com/hupe1980/fftwgo/native"
)

// Complex is the set of element types a plan transforms.
// complex64 plans run on Single domains, complex128 plans on Double domains.
type Complex interface {
	complex64 | complex128
}

func precisionOf[T Complex]() native.Precision {
	var zero T
	if unsafe.Sizeof(zero) == 8 {
		return native.Single
	}
	return native.Double
}

// NewAligned allocates n zeroed elements on a 64-byte boundary.
func NewAligned[T Complex](n int) []T {
	return mem.AllocAlignedOf[T](n)
}

// C2C is a one-dimensional complex-to-complex transform plan.
// It is safe for concurrent use.
type C2C[T Complex] struct {
	d       *fftwgo.Domain
	n       int
	sign    native.Sign
	flags   native.Flag
	threads int
	inPlace bool
	in, out fftwgo.ArrayDescriptor

	mu sync.RWMutex // guards h against Close
	h  native.Plan
}

// NewC2C creates an n-point plan, planning on scratch buffers from NewAligned.
// The plan is out-of-place.
func NewC2C[T Complex](d *fftwgo.Domain, n int, sign native.Sign, flags native.Flag) (*C2C[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: size %d", fftwgo.ErrInvalidPlan, n)
	}
	return NewC2CFor(d, NewAligned[T](n), NewAligned[T](n), sign, flags)
}

// NewC2CFor creates a plan for the buffers in and out, which may be the same
// slice for an in-place transform. Planning with a rigor above Estimate may
// overwrite both buffers.
func NewC2CFor[T Complex](d *fftwgo.Domain, in, out []T, sign native.Sign, flags native.Flag) (*C2C[T], error) {
	if p := precisionOf[T](); p != d.Precision() {
		return nil, fmt.Errorf("%w: %s plan on %s precision domain", fftwgo.ErrInvalidPlan, p, d.Precision())
	}
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: size 0", fftwgo.ErrInvalidPlan)
	}

	e := d.Engine()
	pl := &C2C[T]{
		d:       d,
		n:       len(in),
		sign:    sign,
		flags:   flags,
		inPlace: sameArray(in, out),
		in:      fftwgo.ArrayDescriptor{Len: len(in), Alignment: e.AlignmentOf(unsafe.Pointer(&in[0]))},
	}
	if len(out) != len(in) {
		return nil, &fftwgo.ErrOutputArrayMismatch{
			Expect: fftwgo.ArrayDescriptor{Len: len(in)},
			Actual: describe(e, out),
		}
	}
	pl.out = describe(e, out)

	h, err := fftwgo.WithCreationLock(d, func() (native.Plan, error) {
		threads := e.PlannerNThreads()
		h := e.PlanDFT1D(pl.n, unsafe.Pointer(&in[0]), unsafe.Pointer(&out[0]), sign, flags)
		if h == nil {
			return nil, fmt.Errorf("%w: engine returned no plan for n=%d %s flags=%#x",
				fftwgo.ErrInvalidPlan, pl.n, sign, uint32(flags))
		}
		pl.threads = threads
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	pl.h = h
	return pl, nil
}

func describe[T Complex](e native.Engine, s []T) fftwgo.ArrayDescriptor {
	if len(s) == 0 {
		return fftwgo.ArrayDescriptor{}
	}
	return fftwgo.ArrayDescriptor{Len: len(s), Alignment: e.AlignmentOf(unsafe.Pointer(&s[0]))}
}

func sameArray[T Complex](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// Execute transforms in into out. in and out must have the plan's length, the
// same in-place-ness as the planning buffers and, unless the plan was created
// with native.Unaligned, the same alignment classes.
//
// Concurrent calls are safe when no two calls share a buffer.
func (p *C2C[T]) Execute(in, out []T) error {
	e := p.d.Engine()
	actualIn, actualOut := describe(e, in), describe(e, out)

	if !p.matches(p.in, actualIn) {
		return &fftwgo.ErrInputArrayMismatch{Expect: p.in, Actual: actualIn}
	}
	if !p.matches(p.out, actualOut) || sameArray(in, out) != p.inPlace {
		return &fftwgo.ErrOutputArrayMismatch{Expect: p.out, Actual: actualOut}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.h == nil {
		return fmt.Errorf("%w: plan closed", fftwgo.ErrInvalidPlan)
	}
	e.ExecuteDFT(p.h, unsafe.Pointer(&in[0]), unsafe.Pointer(&out[0]))
	return nil
}

func (p *C2C[T]) matches(expect, actual fftwgo.ArrayDescriptor) bool {
	if expect.Len != actual.Len {
		return false
	}
	return p.flags.Has(native.Unaligned) || expect.Alignment == actual.Alignment
}

// Close destroys the native plan. It waits for running executions and is
// idempotent.
func (p *C2C[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.h != nil {
		p.d.DestroyPlan(p.h)
		p.h = nil
	}
	return nil
}

// Len returns the transform size.
func (p *C2C[T]) Len() int { return p.n }

// Sign returns the transform direction.
func (p *C2C[T]) Sign() native.Sign { return p.sign }

// Flags returns the planner flags the plan was created with.
func (p *C2C[T]) Flags() native.Flag { return p.flags }

// Threads returns the thread count the plan captured at creation.
func (p *C2C[T]) Threads() int { return p.threads }

// InPlace reports whether the plan transforms in place.
func (p *C2C[T]) InPlace() bool { return p.inPlace }
