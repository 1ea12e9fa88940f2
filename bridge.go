package fftwgo

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/pool"
)

// jobBase is the engine's job array as seen by worker goroutines.
//
// The engine guarantees that the elsize-wide slots at i*elsize never overlap
// and stay valid until SpawnLoop returns. jobBase only computes slot
// addresses; it never reads or writes them.
type jobBase struct {
	ptr    unsafe.Pointer
	elsize uintptr
}

func (b jobBase) at(i int64) unsafe.Pointer {
	return unsafe.Add(b.ptr, uintptr(i)*b.elsize) //nolint:gosec // offsets come from the engine
}

// Bridge runs the native engine's parallel-for requests on a WorkerPool.
//
// A Bridge is safe for concurrent and nested dispatches: the calling
// goroutine always claims jobs itself, so progress never depends on free
// pool capacity.
type Bridge struct {
	precision Precision
	pool      *pool.WorkerPool
	metrics   MetricsCollector

	dispatches atomic.Int64
	jobs       atomic.Int64
	maxJobs    atomic.Int64
}

func newBridge(p Precision, wp *pool.WorkerPool, mc MetricsCollector) *Bridge {
	return &Bridge{
		precision: p,
		pool:      wp,
		metrics:   mc,
	}
}

// dispatch is the state of one SpawnLoop call.
type dispatch struct {
	work  native.WorkFunc
	base  jobBase
	njobs int64
	next  atomic.Int64
	done  sync.WaitGroup
}

// drain claims and runs jobs until none are left.
func (d *dispatch) drain() {
	for {
		i := d.next.Add(1) - 1
		if i >= d.njobs {
			return
		}
		d.work(d.base.at(i))
		d.done.Done()
	}
}

// SpawnLoop implements native.SpawnLoop. It runs work(jobdata + i*elsize) once
// for every i in [0, njobs) and returns after all of them completed.
// Jobs run in no particular order.
func (b *Bridge) SpawnLoop(work native.WorkFunc, jobdata unsafe.Pointer, elsize uintptr, njobs int) {
	if njobs <= 0 {
		return
	}
	if work == nil {
		panic("fftwgo: native engine dispatched a nil work function")
	}

	start := time.Now()
	d := &dispatch{
		work:  work,
		base:  jobBase{ptr: jobdata, elsize: elsize},
		njobs: int64(njobs),
	}
	d.done.Add(njobs)

	helpers := min(b.pool.Size(), njobs) - 1
	for i := 0; i < helpers; i++ {
		if !b.pool.TrySubmit(d.drain) {
			break
		}
	}
	d.drain()
	d.done.Wait()

	b.record(njobs, time.Since(start))
}

func (b *Bridge) record(njobs int, duration time.Duration) {
	b.dispatches.Add(1)
	b.jobs.Add(int64(njobs))
	n := int64(njobs)
	for {
		m := b.maxJobs.Load()
		if n <= m || b.maxJobs.CompareAndSwap(m, n) {
			break
		}
	}
	b.metrics.RecordDispatch(b.precision, njobs, duration)
}

// Dispatches returns the number of completed SpawnLoop calls.
func (b *Bridge) Dispatches() int64 {
	return b.dispatches.Load()
}

// Jobs returns the total number of jobs run across dispatches.
func (b *Bridge) Jobs() int64 {
	return b.jobs.Load()
}

// MaxJobs returns the largest job count seen in a single dispatch.
func (b *Bridge) MaxJobs() int64 {
	return b.maxJobs.Load()
}
