package wisdom

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fftwgo"
	"github.com/hupe1980/fftwgo/blobstore"
	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/native/ref"
	"github.com/hupe1980/fftwgo/plan"
	"github.com/hupe1980/fftwgo/pool"
)

func newDomain(t *testing.T, p native.Precision) (*fftwgo.Domain, *ref.Engine) {
	t.Helper()
	wp := pool.NewWorkerPool(2)
	t.Cleanup(wp.Close)
	e := ref.New(p, ref.WithMeasureRuns(1))
	return fftwgo.NewDomain(e, fftwgo.WithWorkerPool(wp), fftwgo.WithLogger(fftwgo.NoopLogger())), e
}

func measure(t *testing.T, d *fftwgo.Domain, sizes ...int) {
	t.Helper()
	for _, n := range sizes {
		var err error
		if d.Precision() == native.Single {
			var p *plan.C2C[complex64]
			p, err = plan.NewC2C[complex64](d, n, native.Forward, native.Measure)
			if err == nil {
				require.NoError(t, p.Close())
			}
		} else {
			var p *plan.C2C[complex128]
			p, err = plan.NewC2C[complex128](d, n, native.Forward, native.Measure)
			if err == nil {
				require.NoError(t, p.Close())
			}
		}
		require.NoError(t, err)
	}
}

func TestPublishFetch(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	src, srcEngine := newDomain(t, native.Double)
	measure(t, src, 16, 64, 100)
	require.Equal(t, 3, srcEngine.WisdomEntries())

	name := DefaultName(native.Double)
	assert.Equal(t, "double.wisdom", name)
	require.NoError(t, Publish(ctx, src, store, name))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{name}, names)

	dst, dstEngine := newDomain(t, native.Double)
	require.NoError(t, Fetch(ctx, dst, store, name))
	assert.Equal(t, 3, dstEngine.WisdomEntries())

	p, err := plan.NewC2C[complex128](dst, 64, native.Forward, native.Measure|native.WisdomOnly)
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublish_Compression(t *testing.T) {
	ctx := context.Background()
	d, _ := newDomain(t, native.Single)
	measure(t, d, 8, 16, 32, 64, 128, 256)

	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			store := blobstore.NewMemoryStore()
			require.NoError(t, Publish(ctx, d, store, "w", WithCompression(c)))

			dst, e := newDomain(t, native.Single)
			require.NoError(t, Fetch(ctx, dst, store, "w"))
			assert.Equal(t, 6, e.WisdomEntries())
		})
	}
}

func TestFetch_NotFound(t *testing.T) {
	d, _ := newDomain(t, native.Double)

	err := Fetch(context.Background(), d, blobstore.NewMemoryStore(), "missing")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestFetch_PrecisionMismatch(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	src, _ := newDomain(t, native.Single)
	measure(t, src, 32)
	require.NoError(t, Publish(ctx, src, store, "w"))

	dst, e := newDomain(t, native.Double)
	err := Fetch(ctx, dst, store, "w")
	assert.ErrorIs(t, err, ErrPrecisionMismatch)
	assert.Zero(t, e.WisdomEntries())
}

func TestFetch_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "w", []byte("not an envelope")))

	d, _ := newDomain(t, native.Double)
	assert.ErrorIs(t, Fetch(ctx, d, store, "w"), ErrCorruptEnvelope)
}

func TestFetch_EngineRejects(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	// A valid envelope around text the engine cannot parse keeps the
	// engine's failure kind.
	env, err := Encode(native.Double, []byte("garbage"), CompressionNone)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "w", env))

	d, _ := newDomain(t, native.Double)
	err = Fetch(ctx, d, store, "w")
	assert.Equal(t, fftwgo.KindWisdomImportFailed, fftwgo.KindOf(err))

	var importErr *fftwgo.ErrWisdomImport
	assert.True(t, errors.As(err, &importErr))
}

type failingStore struct {
	blobstore.Store
	err error
}

func (s failingStore) Put(context.Context, string, []byte) error { return s.err }

func TestPublish_StoreError(t *testing.T) {
	boom := errors.New("boom")
	d, _ := newDomain(t, native.Double)

	err := Publish(context.Background(), d, failingStore{Store: blobstore.NewMemoryStore(), err: boom}, "w")
	assert.ErrorIs(t, err, boom)
}

func TestPublish_ThrottledStore(t *testing.T) {
	ctx := context.Background()
	d, _ := newDomain(t, native.Double)
	measure(t, d, 16)

	store := blobstore.NewThrottledStore(blobstore.NewMemoryStore(), 1<<20)
	require.NoError(t, Publish(ctx, d, store, "w"))

	dst, e := newDomain(t, native.Double)
	require.NoError(t, Fetch(ctx, dst, store, "w"))
	assert.Equal(t, 1, e.WisdomEntries())
}
