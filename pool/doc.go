// Package pool provides the fixed goroutine pool that executes native
// parallel-for jobs.
//
// A [WorkerPool] owns a fixed number of goroutines fed from a buffered
// channel. Work is submitted either blocking ([WorkerPool.Submit], with
// context) or non-blocking ([WorkerPool.TrySubmit]). The dispatch bridge only
// uses TrySubmit: the calling goroutine always works alongside the pool, so a
// saturated or closed pool slows a dispatch down but never stalls it.
//
// [Default] returns the process-wide pool shared by every precision domain.
// It is sized to GOMAXPROCS and never closed.
package pool
