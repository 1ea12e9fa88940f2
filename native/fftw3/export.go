//go:build fftw3 && cgo

package fftw3

/*
#include <stddef.h>
#include "bridge.h"
*/
import "C"

import "unsafe"

// goSpawnLoop is the parallel-for entry point the C trampolines call from
// inside fftw_execute_dft.
//
//export goSpawnLoop
func goSpawnLoop(precision C.int, work, jobdata unsafe.Pointer, elsize C.size_t, njobs C.int) {
	size := uintptr(elsize)
	run := func(arg unsafe.Pointer) { C.fftwgo_call_work(work, arg) }

	cb := callbacks[precision&1].Load()
	if cb == nil {
		for i := 0; i < int(njobs); i++ {
			run(unsafe.Add(jobdata, uintptr(i)*size))
		}
		return
	}
	(*cb)(run, jobdata, size, int(njobs))
}
