package fftwgo

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/fftwgo/native"
)

// WithCreationLock runs action while holding d's creation guard.
//
// At most one action per domain runs at a time; domains never block each
// other. The guard is released on every exit path, including a panic in
// action. Errors from action that are already classified are returned as is;
// any other error is reported as ErrInvalidPlan.
//
// Before running action the guard enforces the threading precondition: if the
// engine is configured for more than one thread and InitThreads never
// succeeded, it fails with ErrThreadingInitFailed instead of letting the
// engine fall back to a single thread. The thread count cannot change while
// the guard is held, so the count checked here is the one a plan created by
// action captures.
//
// Execution of existing plans must not use this function.
func WithCreationLock[T any](d *Domain, action func() (T, error)) (T, error) {
	start := time.Now()

	d.createMu.Lock()
	defer d.createMu.Unlock()

	var zero T
	threads := d.engine.PlannerNThreads()
	if threads > 1 && !d.threadsReady.Load() {
		err := fmt.Errorf("%w: %s precision configured for %d threads before InitThreads",
			ErrThreadingInitFailed, d.Precision(), threads)
		d.finishPlan(start, threads, err)
		return zero, err
	}

	v, err := action()
	err = classify(err)
	d.finishPlan(start, threads, err)
	if err != nil {
		return zero, err
	}
	return v, nil
}

func (d *Domain) finishPlan(start time.Time, threads int, err error) {
	d.metrics.RecordPlan(d.Precision(), time.Since(start), err)
	d.logger.LogPlan(context.Background(), threads, err)
}

// DestroyPlan releases a native plan under the creation guard. nil is a no-op.
func (d *Domain) DestroyPlan(p native.Plan) {
	if p == nil {
		return
	}
	d.createMu.Lock()
	defer d.createMu.Unlock()

	d.engine.DestroyPlan(p)
}

// ForgetWisdom clears the engine's wisdom database. It mutates planner state
// and therefore runs under the creation guard.
func (d *Domain) ForgetWisdom() {
	d.createMu.Lock()
	defer d.createMu.Unlock()

	d.engine.ForgetWisdom()
}
