package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every buffer returned by this package.
const Alignment = 64

// AllocAligned allocates a byte slice of the given size starting at a 64-byte
// boundary. It over-allocates by Alignment bytes; the returned slice keeps the
// underlying array alive.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// Elem is the set of element types AllocAlignedOf supports.
type Elem interface {
	complex64 | complex128 | float32 | float64
}

// AllocAlignedOf allocates n zeroed elements of T on a 64-byte boundary.
func AllocAlignedOf[T Elem](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	b := AllocAligned(n * int(unsafe.Sizeof(zero)))

	// 64-byte alignment satisfies the natural alignment of every Elem type.
	ptr := unsafe.Pointer(&b[0])      //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n) //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether the first element of s starts on an Alignment boundary.
// Empty slices are reported as aligned.
func IsAligned[T Elem](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%Alignment == 0 //nolint:gosec // address inspection only
}
