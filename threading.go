package fftwgo

import (
	"context"
	"fmt"
	"math"

	"github.com/hupe1980/fftwgo/native"
)

// InitThreads bootstraps the engine's thread subsystem and, under
// ProfileExternalPool, registers the domain's Bridge as the engine's
// parallel-for callback.
//
// If the engine reports failure, InitThreads returns ErrThreadingInitFailed
// and nothing is registered. Only the first call reaches the engine; later
// calls return the first result.
//
// InitThreads must succeed before plans with more than one thread are
// created. Programs that stay single-threaded never need to call it.
func (d *Domain) InitThreads() error {
	d.initOnce.Do(func() {
		d.createMu.Lock()
		defer d.createMu.Unlock()

		if rc := d.engine.InitThreads(); rc != native.Success {
			d.initErr = fmt.Errorf("%w: %s precision (native result %d)",
				ErrThreadingInitFailed, d.Precision(), rc)
		} else {
			if d.opts.profile == ProfileExternalPool {
				d.engine.SetThreadsCallback(d.bridge.SpawnLoop)
			}
			d.threadsReady.Store(true)
		}
		d.logger.LogInitThreads(context.Background(), d.opts.profile, d.initErr)
	})
	return d.initErr
}

// ThreadsInitialized reports whether InitThreads succeeded.
func (d *Domain) ThreadsInitialized() bool {
	return d.threadsReady.Load()
}

// SetThreadCount sets how many threads plans created from now on will use.
// Values are clamped to [1, math.MaxInt32].
//
// The setting is planner state and changes under the creation guard, so a
// concurrent creation captures either the old or the new count, never a mix.
// Plans already created keep the count they captured. SetThreadCount must not
// be called from inside a WithCreationLock action.
func (d *Domain) SetThreadCount(n int) {
	applied := min(max(n, 1), math.MaxInt32)

	d.createMu.Lock()
	d.engine.PlanWithNThreads(applied)
	d.createMu.Unlock()

	d.logger.LogThreadCount(context.Background(), n, applied)
}

// ThreadCount returns the thread count the next created plan will use; the
// engine default until SetThreadCount is called.
func (d *Domain) ThreadCount() int {
	return d.engine.PlannerNThreads()
}
