package fftwgo

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/native/ref"
	"github.com/hupe1980/fftwgo/pool"
)

// newTestDomain returns a double precision domain on a fresh reference engine
// with a private pool that is closed with the test.
func newTestDomain(t *testing.T, engineOpts []ref.Option, opts ...Option) (*Domain, *ref.Engine) {
	t.Helper()
	return newTestDomainFor(t, native.Double, engineOpts, opts...)
}

func newTestDomainFor(t *testing.T, p Precision, engineOpts []ref.Option, opts ...Option) (*Domain, *ref.Engine) {
	t.Helper()
	wp := pool.NewWorkerPool(4)
	t.Cleanup(wp.Close)

	e := ref.New(p, engineOpts...)
	d := NewDomain(e, append([]Option{WithWorkerPool(wp)}, opts...)...)
	return d, e
}

// createPlan plans an n-point transform on buf under the guard.
func createPlan(t *testing.T, d *Domain, buf []complex128, sign native.Sign, flags native.Flag) (native.Plan, error) {
	t.Helper()
	return WithCreationLock(d, func() (native.Plan, error) {
		p := unsafe.Pointer(&buf[0])
		h := d.Engine().PlanDFT1D(len(buf), p, p, sign, flags)
		if h == nil {
			return nil, ErrInvalidPlan
		}
		return h, nil
	})
}

func mustPlan(t *testing.T, d *Domain, buf []complex128, flags native.Flag) native.Plan {
	t.Helper()
	h, err := createPlan(t, d, buf, native.Forward, flags)
	require.NoError(t, err)
	t.Cleanup(func() { d.DestroyPlan(h) })
	return h
}

func execute(d *Domain, h native.Plan, in, out []complex128) {
	d.Engine().ExecuteDFT(h, unsafe.Pointer(&in[0]), unsafe.Pointer(&out[0]))
}
