// Package fftwgo coordinates concurrent use of a native Fourier transform
// engine such as libfftw3.
//
// The engine's planner mutates hidden global state and must never run on two
// goroutines at once, while executing finished plans on disjoint buffers is
// safe from any number of goroutines. fftwgo enforces that split, bridges the
// engine's parallel-for callback to a Go worker pool, and persists wisdom.
//
// # Quick Start
//
//	d := fftwgo.Double()                // process-wide double precision domain
//	if err := d.InitThreads(); err != nil {
//	    log.Fatal(err)
//	}
//	d.SetThreadCount(4)
//
//	in := plan.NewAligned[complex128](1024)
//	out := plan.NewAligned[complex128](1024)
//	p, _ := plan.NewC2CFor(d, in, out, native.Forward, native.Measure)
//	defer p.Close()
//
//	_ = p.Execute(in, out)              // no lock taken
//
// # Domains
//
// A [Domain] wraps one precision of an engine. [Single] and [Double] return
// the process-wide domains; [NewDomain] builds an isolated one around any
// [native.Engine]. The two precisions never share state.
//
// # Plan Creation
//
// Every call that mutates planner state goes through [WithCreationLock]:
//
//	h, err := fftwgo.WithCreationLock(d, func() (native.Plan, error) {
//	    return d.Engine().PlanDFT1D(n, in, out, native.Forward, native.Estimate), nil
//	})
//
// A plan captures the thread count configured when it was created. Creating a
// plan with more than one thread before [Domain.InitThreads] succeeded fails
// with [ErrThreadingInitFailed].
//
// # Threading Profiles
//
//   - [ProfileExternalPool] (default): parallel jobs run on a [pool.WorkerPool]
//     through the domain's [Bridge].
//   - [ProfileNative]: the engine runs parallel jobs on its own threads.
//
// # Wisdom
//
//	err := d.ExportWisdom("/var/lib/app/double.wisdom")
//	err = d.ImportWisdom("/var/lib/app/double.wisdom")
//
// Paths must be valid UTF-8 without NUL bytes. See package wisdom for
// shipping wisdom through object stores.
//
// # Errors
//
// Every error belongs to a closed set of kinds, see [KindOf]:
//
//	var enc *fftwgo.ErrPathEncoding
//	if errors.As(err, &enc) { ... }
//	if errors.Is(err, fftwgo.ErrThreadingInitFailed) { ... }
package fftwgo
