//go:build arm64

package ref

import "golang.org/x/sys/cpu"

func init() {
	// NEON and SVE kernels both load 128-bit lanes.
	if !cpu.ARM64.HasASIMD {
		simdAlignment = 8
	}
	initAlignment()
}
