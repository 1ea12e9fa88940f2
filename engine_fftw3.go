//go:build fftw3 && cgo

package fftwgo

import (
	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/native/fftw3"
)

// DefaultEngine returns the libfftw3 engine for p. The library state is
// process-wide, so the result must back at most one Domain.
func DefaultEngine(p Precision) native.Engine {
	if p == native.Single {
		return fftw3.Single()
	}
	return fftw3.Double()
}
