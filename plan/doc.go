// Package plan is a minimal typed planner on top of fftwgo.
//
// A [C2C] is a one-dimensional complex-to-complex transform plan. Creation
// and Close go through the domain's creation guard; Execute does not, so one
// plan may run on many goroutines at once as long as calls use disjoint
// buffers:
//
//	p, err := plan.NewC2C[complex64](fftwgo.Single(), 4096, native.Forward, native.Estimate)
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	in, out := plan.NewAligned[complex64](4096), plan.NewAligned[complex64](4096)
//	err = p.Execute(in, out)
//
// Unless the plan was created with [native.Unaligned], Execute requires
// buffers in the same SIMD alignment class as the buffers it was planned on.
// [NewAligned] returns buffers that always satisfy that.
package plan
