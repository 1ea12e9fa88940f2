package fftwgo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/native/ref"
	"github.com/hupe1980/fftwgo/pool"
)

func TestGet(t *testing.T) {
	assert.Same(t, Single(), Get(native.Single))
	assert.Same(t, Double(), Get(native.Double))
	assert.NotSame(t, Single(), Double())

	assert.Equal(t, native.Single, Single().Precision())
	assert.Equal(t, native.Double, Double().Precision())
}

func TestGet_InvalidPrecision(t *testing.T) {
	assert.PanicsWithValue(t, "fftwgo: invalid precision 2", func() {
		Get(native.Precision(2))
	})
	assert.Panics(t, func() { Get(native.Precision(255)) })

	assert.Equal(t, native.Double, Double().Precision())
	assert.Equal(t, native.Single, Single().Precision())
}

func TestNewDomain_Defaults(t *testing.T) {
	e := ref.New(native.Single)
	d := NewDomain(e)

	assert.Same(t, e, d.Engine())
	assert.Equal(t, ProfileExternalPool, d.Profile())
	assert.NotNil(t, d.Logger())
	assert.NotNil(t, d.Bridge())
	assert.Same(t, pool.Default(), d.Bridge().pool)
	assert.False(t, d.ThreadsInitialized())
}

func TestNewDomain_Options(t *testing.T) {
	wp := pool.NewWorkerPool(3)
	defer wp.Close()

	d := NewDomain(ref.New(native.Double),
		WithWorkerPool(wp),
		WithPoolSize(9),
		WithMetricsCollector(nil),
		WithLogger(nil),
		nil,
	)
	assert.Same(t, wp, d.Bridge().pool, "explicit pool wins over size")
	assert.IsType(t, NoopMetricsCollector{}, d.metrics)
	assert.NotNil(t, d.Logger())

	sized := NewDomain(ref.New(native.Double), WithPoolSize(3))
	defer sized.Bridge().pool.Close()
	assert.Equal(t, 3, sized.Bridge().pool.Size())
}

func TestParseThreadingProfile(t *testing.T) {
	tests := []struct {
		in   string
		want ThreadingProfile
		ok   bool
	}{
		{"external-pool", ProfileExternalPool, true},
		{"Pool", ProfileExternalPool, true},
		{" native ", ProfileNative, true},
		{"fibers", ProfileExternalPool, false},
	}
	for _, tt := range tests {
		got, ok := ParseThreadingProfile(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}

	assert.Equal(t, "external-pool", ProfileExternalPool.String())
	assert.Equal(t, "native", ProfileNative.String())
	assert.Equal(t, "unknown", ThreadingProfile(9).String())
}
