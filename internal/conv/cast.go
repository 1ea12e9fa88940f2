package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow reports a value outside the target width.
var ErrOverflow = errors.New("integer overflow")

// Length32 converts a byte or element count to a uint32 length field.
func Length32(n int) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: length %d does not fit 32 bits", ErrOverflow, n)
	}
	return uint32(n), nil
}

// CInt converts a transform size or job count to the width of a C int.
func CInt(n int) (int32, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d does not fit a C int", ErrOverflow, n)
	}
	return int32(n), nil
}

// Int converts a decoded uint32 length back to int.
func Int(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d does not fit int", ErrOverflow, v)
	}
	return int(v), nil
}
