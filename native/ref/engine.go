package ref

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hupe1980/fftwgo/native"
)

type options struct {
	failInit      bool
	planningDelay time.Duration
	measureRuns   int
}

// Option configures an Engine.
type Option func(*options)

// WithInitFailure makes InitThreads report failure.
func WithInitFailure() Option {
	return func(o *options) {
		o.failInit = true
	}
}

// WithPlanningDelay stalls every plan creation for d while the planner is
// marked busy. Tests use it to widen the window in which overlapping
// creations would be observed.
func WithPlanningDelay(d time.Duration) Option {
	return func(o *options) {
		o.planningDelay = d
	}
}

// WithMeasureRuns sets how many timed executions Measure planning performs per
// candidate algorithm. Patient and Exhaustive multiply it.
func WithMeasureRuns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.measureRuns = n
		}
	}
}

type twiddleKey struct {
	n    int
	sign native.Sign
}

// Engine is a pure Go implementation of native.Engine for one precision.
//
// Like libfftw3 it keeps hidden planner state that is NOT synchronized:
// PlanDFT1D, DestroyPlan and ForgetWisdom must be serialized by the caller.
// ExecuteDFT, thread configuration and wisdom file I/O are safe for
// concurrent use.
type Engine struct {
	precision native.Precision
	opts      options

	threadsReady atomic.Bool
	nthreads     atomic.Int32
	spawn        atomic.Pointer[native.SpawnLoop]

	// Planner state, guarded by the caller.
	twiddles map[twiddleKey][]complex128
	live     map[*plan]struct{}

	planning     atomic.Int32
	maxPlanning  atomic.Int32
	plansCreated atomic.Int64

	wisdomMu sync.Mutex
	wisdom   map[wisdomKey]wisdomEntry
}

var _ native.Engine = (*Engine)(nil)

// New creates an engine with fresh planner, thread and wisdom state.
func New(p native.Precision, optFns ...Option) *Engine {
	opts := options{measureRuns: 3}
	for _, fn := range optFns {
		fn(&opts)
	}

	e := &Engine{
		precision: p,
		opts:      opts,
		twiddles:  make(map[twiddleKey][]complex128),
		live:      make(map[*plan]struct{}),
		wisdom:    make(map[wisdomKey]wisdomEntry),
	}
	e.nthreads.Store(1)
	return e
}

// Precision implements native.Engine.
func (e *Engine) Precision() native.Precision {
	return e.precision
}

// InitThreads implements native.Engine.
func (e *Engine) InitThreads() int {
	if e.opts.failInit {
		return 0
	}
	e.threadsReady.Store(true)
	return native.Success
}

// SetThreadsCallback implements native.Engine.
func (e *Engine) SetThreadsCallback(cb native.SpawnLoop) {
	if cb == nil {
		e.spawn.Store(nil)
		return
	}
	e.spawn.Store(&cb)
}

// PlanWithNThreads implements native.Engine.
func (e *Engine) PlanWithNThreads(n int) {
	n = min(max(n, 1), math.MaxInt32)
	e.nthreads.Store(int32(n)) //nolint:gosec // clamped above
}

// PlannerNThreads implements native.Engine.
func (e *Engine) PlannerNThreads() int {
	return int(e.nthreads.Load())
}

// AlignmentOf implements native.Engine.
func (e *Engine) AlignmentOf(p unsafe.Pointer) int {
	return int(uintptr(p) % uintptr(simdAlignment))
}

// PlanDFT1D implements native.Engine. It returns nil if the arguments are
// invalid or if WisdomOnly is set and no wisdom covers the problem.
func (e *Engine) PlanDFT1D(n int, in, out unsafe.Pointer, sign native.Sign, flags native.Flag) native.Plan {
	e.enterPlanner()
	defer e.planning.Add(-1)

	if e.opts.planningDelay > 0 {
		time.Sleep(e.opts.planningDelay)
	}

	if n <= 0 || in == nil || out == nil {
		return nil
	}
	if sign != native.Forward && sign != native.Backward {
		return nil
	}

	key := wisdomKey{n: n, sign: sign}
	rigor := flags.Rigor()

	algo, ok := e.lookupWisdom(key, rigor)
	if !ok {
		if flags.Has(native.WisdomOnly) {
			return nil
		}
		algo = e.choose(n, sign, rigor)
		if rigor != native.Estimate {
			e.storeWisdom(key, wisdomEntry{algo: algo, rigor: rigor})
		}
	}

	p := e.newPlan(n, sign, flags, algo)
	p.alignIn = e.AlignmentOf(in)
	p.alignOut = e.AlignmentOf(out)
	if e.threadsReady.Load() {
		p.nthreads = e.PlannerNThreads()
	}

	e.live[p] = struct{}{}
	e.plansCreated.Add(1)
	return native.Plan(unsafe.Pointer(p))
}

func (e *Engine) enterPlanner() {
	cur := e.planning.Add(1)
	for {
		m := e.maxPlanning.Load()
		if cur <= m || e.maxPlanning.CompareAndSwap(m, cur) {
			return
		}
	}
}

// DestroyPlan implements native.Engine.
func (e *Engine) DestroyPlan(h native.Plan) {
	if h == nil {
		return
	}
	e.enterPlanner()
	defer e.planning.Add(-1)

	delete(e.live, (*plan)(h))
}

// ExecuteDFT implements native.Engine.
func (e *Engine) ExecuteDFT(h native.Plan, in, out unsafe.Pointer) {
	if h == nil || in == nil || out == nil {
		return
	}
	p := (*plan)(h)

	var buf []complex128
	switch p.algo {
	case algoRadix2:
		buf = e.load(p, in, p.rev)
		p.radix2(buf, e.parallelFor)
	default:
		src := e.load(p, in, nil)
		buf = make([]complex128, p.n)
		p.direct(src, buf, e.parallelFor)
	}
	e.store(out, buf)
}

func (e *Engine) load(p *plan, in unsafe.Pointer, perm []int) []complex128 {
	buf := make([]complex128, p.n)
	switch e.precision {
	case native.Single:
		src := unsafe.Slice((*complex64)(in), p.n) //nolint:gosec // caller guarantees n elements
		for i, v := range src {
			j := i
			if perm != nil {
				j = perm[i]
			}
			buf[j] = complex128(v)
		}
	default:
		src := unsafe.Slice((*complex128)(in), p.n) //nolint:gosec // caller guarantees n elements
		if perm == nil {
			copy(buf, src)
			break
		}
		for i, v := range src {
			buf[perm[i]] = v
		}
	}
	return buf
}

func (e *Engine) store(out unsafe.Pointer, buf []complex128) {
	switch e.precision {
	case native.Single:
		dst := unsafe.Slice((*complex64)(out), len(buf)) //nolint:gosec // caller guarantees n elements
		for i, v := range buf {
			dst[i] = complex64(v)
		}
	default:
		dst := unsafe.Slice((*complex128)(out), len(buf)) //nolint:gosec // caller guarantees n elements
		copy(dst, buf)
	}
}

// job is one element of the jobdata array handed to the spawn loop.
type job struct {
	lo, hi int
	fn     func(lo, hi int)
}

func runJob(arg unsafe.Pointer) {
	j := (*job)(arg)
	j.fn(j.lo, j.hi)
}

// parallelFor splits [0, count) into at most nthreads contiguous jobs and runs
// them through the installed spawn loop.
func (e *Engine) parallelFor(nthreads, count int, fn func(lo, hi int)) {
	njobs := min(nthreads, count)
	if njobs <= 1 {
		fn(0, count)
		return
	}

	jobs := make([]job, njobs)
	for i := range jobs {
		jobs[i] = job{lo: i * count / njobs, hi: (i + 1) * count / njobs, fn: fn}
	}

	spawn := defaultSpawnLoop
	if cb := e.spawn.Load(); cb != nil {
		spawn = *cb
	}
	spawn(runJob, unsafe.Pointer(&jobs[0]), unsafe.Sizeof(job{}), njobs)
}

// defaultSpawnLoop runs every job on its own goroutine, the way the engine
// behaves when no callback is installed.
func defaultSpawnLoop(work native.WorkFunc, jobdata unsafe.Pointer, elsize uintptr, njobs int) {
	var wg sync.WaitGroup
	wg.Add(njobs)
	for i := 0; i < njobs; i++ {
		arg := unsafe.Add(jobdata, uintptr(i)*elsize)
		go func() {
			defer wg.Done()
			work(arg)
		}()
	}
	wg.Wait()
}

// MaxConcurrentPlanners returns the highest number of planner calls observed
// in flight at the same time.
func (e *Engine) MaxConcurrentPlanners() int {
	return int(e.maxPlanning.Load())
}

// PlansCreated returns the number of plans created successfully.
func (e *Engine) PlansCreated() int64 {
	return e.plansCreated.Load()
}

// LivePlans returns the number of plans not yet destroyed.
// Like every planner call it must not race with plan creation.
func (e *Engine) LivePlans() int {
	return len(e.live)
}

// ThreadsInitialized reports whether InitThreads succeeded.
func (e *Engine) ThreadsInitialized() bool {
	return e.threadsReady.Load()
}

// Algorithm returns the algorithm name chosen for a plan ("direct" or "radix2").
func Algorithm(h native.Plan) string {
	if h == nil {
		return ""
	}
	return (*plan)(h).algo.String()
}

// Threads returns the thread count captured by a plan at creation.
func Threads(h native.Plan) int {
	if h == nil {
		return 0
	}
	return (*plan)(h).nthreads
}
