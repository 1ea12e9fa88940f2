package fftwgo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/pool"
)

// Domain coordinates all calls into one precision of a native engine.
//
// Plan creation and thread configuration are serialized by the domain's
// creation guard; execution and wisdom I/O are left to the engine's own
// synchronization. A Domain is safe for concurrent use.
type Domain struct {
	engine  native.Engine
	opts    options
	logger  *Logger
	metrics MetricsCollector

	// createMu is the native call guard.
	createMu sync.Mutex

	initOnce     sync.Once
	initErr      error
	threadsReady atomic.Bool

	bridge *Bridge
}

// NewDomain creates a coordinator for engine.
//
// Every engine instance must be owned by exactly one Domain; two domains on
// the same native library state would hold different guards. Use Get for the
// process-wide domains.
func NewDomain(engine native.Engine, optFns ...Option) *Domain {
	opts := applyOptions(optFns)

	wp := opts.pool
	if wp == nil {
		if opts.poolSize > 0 {
			wp = pool.NewWorkerPool(opts.poolSize)
		} else {
			wp = pool.Default()
		}
	}

	d := &Domain{
		engine:  engine,
		opts:    opts,
		logger:  opts.logger.WithPrecision(engine.Precision()),
		metrics: opts.metricsCollector,
	}
	d.bridge = newBridge(engine.Precision(), wp, d.metrics)
	return d
}

// Precision returns the precision this domain targets.
func (d *Domain) Precision() Precision {
	return d.engine.Precision()
}

// Engine returns the native engine. Planner calls on it must go through
// WithCreationLock.
func (d *Domain) Engine() native.Engine {
	return d.engine
}

// Logger returns the domain's logger.
func (d *Domain) Logger() *Logger {
	return d.logger
}

// Bridge returns the worker-pool bridge registered by InitThreads under
// ProfileExternalPool.
func (d *Domain) Bridge() *Bridge {
	return d.bridge
}

// Profile returns the configured threading profile.
func (d *Domain) Profile() ThreadingProfile {
	return d.opts.profile
}

type domainSlot struct {
	once sync.Once
	d    *Domain
}

// domains is the process-wide table, indexed by Precision.
var domains [2]domainSlot

// Get returns the process-wide Domain for p, creating it on first use on top
// of the default engine (the reference engine, or libfftw3 with the fftw3
// build tag). Process domains are never torn down.
//
// Get panics if p is neither native.Single nor native.Double.
func Get(p Precision) *Domain {
	if p != native.Single && p != native.Double {
		panic(fmt.Sprintf("fftwgo: invalid precision %d", p))
	}
	slot := &domains[p]
	slot.once.Do(func() {
		slot.d = NewDomain(DefaultEngine(p))
	})
	return slot.d
}

// Single returns the process-wide single precision Domain.
func Single() *Domain {
	return Get(native.Single)
}

// Double returns the process-wide double precision Domain.
func Double() *Domain {
	return Get(native.Double)
}
