package ref

import (
	"os"
	"strconv"
)

// simdAlignment is the byte alignment the engine's vector kernels prefer.
// Set once at package init by the platform-specific files.
var simdAlignment = 16

// initAlignment applies the FFTWGO_SIMD_ALIGN override after CPU detection.
// Invalid overrides (not a power of two, or below 8) are ignored.
func initAlignment() {
	override := os.Getenv("FFTWGO_SIMD_ALIGN")
	if override == "" {
		return
	}
	v, err := strconv.Atoi(override)
	if err != nil || v < 8 || v&(v-1) != 0 {
		return
	}
	simdAlignment = v
}

// SIMDAlignment returns the SIMD alignment in bytes used to compute
// alignment classes.
func SIMDAlignment() int {
	return simdAlignment
}
