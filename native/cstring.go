package native

import (
	"fmt"
	"strings"
)

// CString is a NUL-terminated byte string as native entry points expect it.
type CString []byte

// NulError reports an interior NUL byte that cannot cross the native string
// convention.
type NulError struct {
	Pos int
	Val string
}

func (e *NulError) Error() string {
	return fmt.Sprintf("nul byte found in provided data at position: %d", e.Pos)
}

// NewCString converts s into a CString.
// It fails with *NulError if s contains a NUL byte.
func NewCString(s string) (CString, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, &NulError{Pos: i, Val: s}
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return CString(b), nil
}

// String returns the contents without the terminator.
func (c CString) String() string {
	if len(c) == 0 {
		return ""
	}
	return string(c[:len(c)-1])
}
