package fftwgo

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/native/ref"
	"github.com/hupe1980/fftwgo/pool"
	"github.com/hupe1980/fftwgo/testutil"
)

func newTestBridge(t *testing.T, workers int) *Bridge {
	t.Helper()
	wp := pool.NewWorkerPool(workers)
	t.Cleanup(wp.Close)
	return newBridge(native.Double, wp, NoopMetricsCollector{})
}

// countingWork increments the int32 slot it is handed.
func countingWork(arg unsafe.Pointer) {
	atomic.AddInt32((*int32)(arg), 1)
}

func dispatchCounters(b *Bridge, njobs int) []int32 {
	counts := make([]int32, njobs)
	var base unsafe.Pointer
	if njobs > 0 {
		base = unsafe.Pointer(&counts[0])
	}
	b.SpawnLoop(countingWork, base, unsafe.Sizeof(int32(0)), njobs)
	return counts
}

func TestBridge_DispatchCompleteness(t *testing.T) {
	b := newTestBridge(t, 4)

	for _, j := range []int{0, 1, 17, 1024} {
		t.Run(fmt.Sprintf("J=%d", j), func(t *testing.T) {
			counts := dispatchCounters(b, j)
			for i, c := range counts {
				require.Equal(t, int32(1), c, "index %d", i)
			}
		})
	}

	assert.Equal(t, int64(3), b.Dispatches(), "empty dispatch is not recorded")
	assert.Equal(t, int64(1+17+1024), b.Jobs())
	assert.Equal(t, int64(1024), b.MaxJobs())
}

func TestBridge_WideElements(t *testing.T) {
	type slot struct {
		hits  int32
		_     [60]byte
		index int
	}

	b := newTestBridge(t, 3)
	slots := make([]slot, 33)
	for i := range slots {
		slots[i].index = i
	}

	var sum atomic.Int64
	b.SpawnLoop(func(arg unsafe.Pointer) {
		s := (*slot)(arg)
		s.hits++
		sum.Add(int64(s.index))
	}, unsafe.Pointer(&slots[0]), unsafe.Sizeof(slot{}), len(slots))

	for i := range slots {
		assert.Equal(t, int32(1), slots[i].hits, "slot %d", i)
	}
	assert.Equal(t, int64(32*33/2), sum.Load())
}

func TestBridge_Concurrent(t *testing.T) {
	b := newTestBridge(t, 2)

	var wg sync.WaitGroup
	results := make([][]int32, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[g] = dispatchCounters(b, 257)
		}()
	}
	wg.Wait()

	for g, counts := range results {
		for i, c := range counts {
			require.Equal(t, int32(1), c, "dispatch %d index %d", g, i)
		}
	}
	assert.Equal(t, int64(8), b.Dispatches())
}

func TestBridge_NestedDispatchDoesNotDeadlock(t *testing.T) {
	b := newTestBridge(t, 2)

	outer := make([]int32, 8)
	inner := make([][]int32, len(outer))
	b.SpawnLoop(func(arg unsafe.Pointer) {
		i := (uintptr(arg) - uintptr(unsafe.Pointer(&outer[0]))) / unsafe.Sizeof(int32(0))
		inner[i] = dispatchCounters(b, 16)
		countingWork(arg)
	}, unsafe.Pointer(&outer[0]), unsafe.Sizeof(int32(0)), len(outer))

	for i := range outer {
		assert.Equal(t, int32(1), outer[i])
		assert.Len(t, inner[i], 16)
		for _, c := range inner[i] {
			assert.Equal(t, int32(1), c)
		}
	}
}

func TestBridge_ClosedPool(t *testing.T) {
	wp := pool.NewWorkerPool(2)
	wp.Close()
	b := newBridge(native.Double, wp, NoopMetricsCollector{})

	for _, c := range dispatchCounters(b, 64) {
		require.Equal(t, int32(1), c)
	}
}

func TestBridge_NilWork(t *testing.T) {
	b := newTestBridge(t, 1)
	counts := make([]int32, 1)

	assert.NotPanics(t, func() { b.SpawnLoop(nil, nil, 0, 0) })
	assert.Panics(t, func() { b.SpawnLoop(nil, unsafe.Pointer(&counts[0]), 4, 1) })
}

func TestBridge_Metrics(t *testing.T) {
	mc := &BasicMetricsCollector{}
	wp := pool.NewWorkerPool(2)
	t.Cleanup(wp.Close)
	b := newBridge(native.Double, wp, mc)

	dispatchCounters(b, 10)
	dispatchCounters(b, 5)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.DispatchCount)
	assert.Equal(t, int64(15), stats.DispatchJobs)
}

func TestBridge_ThreadCountCapture(t *testing.T) {
	const n = 256 // eight radix-2 stages

	d, _ := newTestDomain(t, nil)
	require.NoError(t, d.InitThreads())

	rng := testutil.NewRNG(99)
	in := rng.Complex128s(n)
	out := make([]complex128, n)
	want := testutil.NaiveDFT(in, -1)

	d.SetThreadCount(4)
	four := mustPlan(t, d, make([]complex128, n), native.Estimate)
	d.SetThreadCount(1)
	one := mustPlan(t, d, make([]complex128, n), native.Estimate)
	require.Equal(t, "radix2", ref.Algorithm(four))

	execute(d, four, in, out)
	assert.Equal(t, int64(8), d.Bridge().Dispatches())
	assert.Equal(t, int64(4), d.Bridge().MaxJobs())
	assert.Less(t, testutil.MaxAbsDiff(out, want), 1e-9)

	execute(d, one, in, out)
	assert.Equal(t, int64(8), d.Bridge().Dispatches(), "single-threaded plan never dispatches")
	assert.Less(t, testutil.MaxAbsDiff(out, want), 1e-9)

	d.SetThreadCount(4)
	execute(d, four, in, out)
	assert.Equal(t, int64(16), d.Bridge().Dispatches())
}
