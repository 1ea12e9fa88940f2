//go:build fftw3 && cgo

package fftw3

/*
#cgo LDFLAGS: -lfftw3_threads -lfftw3f_threads -lfftw3 -lfftw3f -lm -lpthread
#include <stdlib.h>
#include <fftw3.h>
#include "bridge.h"
*/
import "C"

import (
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/fftwgo/internal/conv"
	"github.com/hupe1980/fftwgo/native"
)

// Engine is one precision of libfftw3.
type Engine struct {
	precision native.Precision
}

var _ native.Engine = (*Engine)(nil)

var (
	double = &Engine{precision: native.Double}
	single = &Engine{precision: native.Single}

	// callbacks holds the installed spawn loop per precision.
	callbacks [2]atomic.Pointer[native.SpawnLoop]

	initMu sync.Mutex
)

// Double returns the process-wide double precision engine.
func Double() *Engine { return double }

// Single returns the process-wide single precision engine.
func Single() *Engine { return single }

// Precision implements native.Engine.
func (e *Engine) Precision() native.Precision {
	return e.precision
}

func (e *Engine) isSingle() bool {
	return e.precision == native.Single
}

// InitThreads implements native.Engine.
func (e *Engine) InitThreads() int {
	initMu.Lock()
	defer initMu.Unlock()
	if e.isSingle() {
		return int(C.fftwf_init_threads())
	}
	return int(C.fftw_init_threads())
}

// SetThreadsCallback implements native.Engine.
func (e *Engine) SetThreadsCallback(cb native.SpawnLoop) {
	slot := &callbacks[e.precision&1]
	if cb == nil {
		C.fftwgo_set_callback(C.int(e.precision&1), 0)
		slot.Store(nil)
		return
	}
	slot.Store(&cb)
	C.fftwgo_set_callback(C.int(e.precision&1), 1)
}

// PlanWithNThreads implements native.Engine.
func (e *Engine) PlanWithNThreads(n int) {
	n32, err := conv.CInt(max(n, 1))
	if err != nil {
		n32 = math.MaxInt32
	}
	if e.isSingle() {
		C.fftwf_plan_with_nthreads(C.int(n32))
		return
	}
	C.fftw_plan_with_nthreads(C.int(n32))
}

// PlannerNThreads implements native.Engine.
func (e *Engine) PlannerNThreads() int {
	if e.isSingle() {
		return int(C.fftwf_planner_nthreads())
	}
	return int(C.fftw_planner_nthreads())
}

func cstr(s native.CString) *C.char {
	if len(s) == 0 {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&s[0]))
}

// ImportWisdomFromFilename implements native.Engine.
func (e *Engine) ImportWisdomFromFilename(filename native.CString) int {
	name := cstr(filename)
	if name == nil {
		return 0
	}
	if e.isSingle() {
		return int(C.fftwf_import_wisdom_from_filename(name))
	}
	return int(C.fftw_import_wisdom_from_filename(name))
}

// ExportWisdomToFilename implements native.Engine.
func (e *Engine) ExportWisdomToFilename(filename native.CString) int {
	name := cstr(filename)
	if name == nil {
		return 0
	}
	if e.isSingle() {
		return int(C.fftwf_export_wisdom_to_filename(name))
	}
	return int(C.fftw_export_wisdom_to_filename(name))
}

// ForgetWisdom implements native.Engine.
func (e *Engine) ForgetWisdom() {
	if e.isSingle() {
		C.fftwf_forget_wisdom()
		return
	}
	C.fftw_forget_wisdom()
}

// PlanDFT1D implements native.Engine.
func (e *Engine) PlanDFT1D(n int, in, out unsafe.Pointer, sign native.Sign, flags native.Flag) native.Plan {
	n32, err := conv.CInt(n)
	if err != nil {
		return nil
	}
	if e.isSingle() {
		p := C.fftwf_plan_dft_1d(C.int(n32), (*C.fftwf_complex)(in), (*C.fftwf_complex)(out), C.int(sign), C.uint(flags))
		return native.Plan(unsafe.Pointer(p))
	}
	p := C.fftw_plan_dft_1d(C.int(n32), (*C.fftw_complex)(in), (*C.fftw_complex)(out), C.int(sign), C.uint(flags))
	return native.Plan(unsafe.Pointer(p))
}

// ExecuteDFT implements native.Engine.
func (e *Engine) ExecuteDFT(p native.Plan, in, out unsafe.Pointer) {
	if e.isSingle() {
		C.fftwf_execute_dft(C.fftwf_plan(unsafe.Pointer(p)), (*C.fftwf_complex)(in), (*C.fftwf_complex)(out))
		return
	}
	C.fftw_execute_dft(C.fftw_plan(unsafe.Pointer(p)), (*C.fftw_complex)(in), (*C.fftw_complex)(out))
}

// DestroyPlan implements native.Engine.
func (e *Engine) DestroyPlan(p native.Plan) {
	if e.isSingle() {
		C.fftwf_destroy_plan(C.fftwf_plan(unsafe.Pointer(p)))
		return
	}
	C.fftw_destroy_plan(C.fftw_plan(unsafe.Pointer(p)))
}

// AlignmentOf implements native.Engine.
func (e *Engine) AlignmentOf(p unsafe.Pointer) int {
	if e.isSingle() {
		return int(C.fftwf_alignment_of((*C.float)(p)))
	}
	return int(C.fftw_alignment_of((*C.double)(p)))
}
