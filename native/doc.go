// Package native defines the contract between fftwgo and a native Fourier
// transform engine.
//
// An [Engine] exposes one precision of the engine: planning, execution, the
// thread subsystem and wisdom file I/O. Two implementations ship with the
// module:
//
//   - [github.com/hupe1980/fftwgo/native/ref]: pure Go, no cgo, used by default
//   - [github.com/hupe1980/fftwgo/native/fftw3]: cgo binding to libfftw3 (build tag fftw3)
//
// # Threading Contract
//
// The engine splits parallel work into jobs and hands them to a [SpawnLoop]:
//
//	spawn(work, jobdata, elsize, njobs)
//
// The callback runs work(jobdata + i*elsize) for every i in [0, njobs) and
// returns once all jobs are done. Offsets never overlap, so jobs may run on any
// goroutine in any order.
//
// # Strings
//
// Filenames cross the boundary as [CString] values, which are NUL-terminated.
// [NewCString] rejects strings with interior NUL bytes.
package native
