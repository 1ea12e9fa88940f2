//go:build amd64

package ref

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		simdAlignment = 64
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		simdAlignment = 32
	}
	initAlignment()
}
