// Package fftw3 binds libfftw3 and libfftw3f (3.3.9 or newer, built with
// thread support) as native.Engine implementations.
//
// The binding is compiled only with the fftw3 build tag and cgo:
//
//	go build -tags fftw3 ./...
//
// libfftw3 keeps one planner per precision for the whole process, so Single
// and Double return process-wide engines. Back each with at most one
// fftwgo.Domain; fftwgo.Get does that for you.
//
// Plan creation reads and, for measuring planners, overwrites the buffers it
// is given. fftwgo only ever executes plans through the new-array interface
// (fftw_execute_dft), so the buffers seen during planning are not reused.
package fftw3
