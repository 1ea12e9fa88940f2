//go:build !fftw3 || !cgo

package fftwgo

import (
	"github.com/hupe1980/fftwgo/native"
	"github.com/hupe1980/fftwgo/native/ref"
)

// DefaultEngine returns a new reference engine for p.
func DefaultEngine(p Precision) native.Engine {
	return ref.New(p)
}
