package fftwgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPlan is returned when the native engine fails to create a plan.
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrThreadingInitFailed is returned when the native thread subsystem fails
	// to initialize, or when a multi-threaded plan is requested before it was
	// initialized.
	ErrThreadingInitFailed = errors.New("failed to initialize threads")
)

// ErrorKind classifies every error produced by fftwgo.
type ErrorKind uint8

const (
	// KindUnknown is never produced by fftwgo itself.
	KindUnknown ErrorKind = iota
	KindInvalidPlan
	KindInputArrayMismatch
	KindOutputArrayMismatch
	KindPathEncoding
	KindPathConversion
	KindWisdomImportFailed
	KindWisdomExportFailed
	KindThreadingInitFailed
)

// String returns the string representation of an ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidPlan:
		return "invalid-plan"
	case KindInputArrayMismatch:
		return "input-array-mismatch"
	case KindOutputArrayMismatch:
		return "output-array-mismatch"
	case KindPathEncoding:
		return "path-encoding"
	case KindPathConversion:
		return "path-conversion"
	case KindWisdomImportFailed:
		return "wisdom-import-failed"
	case KindWisdomExportFailed:
		return "wisdom-export-failed"
	case KindThreadingInitFailed:
		return "threading-init-failed"
	default:
		return "unknown"
	}
}

// ArrayDescriptor describes a buffer as the planner sees it.
type ArrayDescriptor struct {
	Len       int
	Alignment int // alignment class: address modulo the engine's SIMD alignment
}

func (d ArrayDescriptor) String() string {
	return fmt.Sprintf("(len=%d, alignment=%d)", d.Len, d.Alignment)
}

// ErrInputArrayMismatch indicates an input buffer that does not match the plan.
type ErrInputArrayMismatch struct {
	Expect ArrayDescriptor
	Actual ArrayDescriptor
}

func (e *ErrInputArrayMismatch) Error() string {
	return fmt.Sprintf("input array mismatch: expect=%s, actual=%s", e.Expect, e.Actual)
}

// ErrOutputArrayMismatch indicates an output buffer that does not match the plan.
type ErrOutputArrayMismatch struct {
	Expect ArrayDescriptor
	Actual ArrayDescriptor
}

func (e *ErrOutputArrayMismatch) Error() string {
	return fmt.Sprintf("output array mismatch: expect=%s, actual=%s", e.Expect, e.Actual)
}

// ErrPathEncoding indicates a path that is not valid UTF-8 text.
type ErrPathEncoding struct {
	Path string
}

func (e *ErrPathEncoding) Error() string {
	return fmt.Sprintf("failed to convert path into string: %q", e.Path)
}

// ErrPathConversion indicates a path that cannot be passed as a native string.
//
// The underlying *native.NulError can be accessed via errors.Unwrap.
type ErrPathConversion struct {
	Path  string
	cause error
}

func (e *ErrPathConversion) Error() string {
	return fmt.Sprintf("failed to convert path %q into native string: %v", e.Path, e.cause)
}

func (e *ErrPathConversion) Unwrap() error { return e.cause }

// ErrWisdomImport indicates the native engine rejected a wisdom file.
type ErrWisdomImport struct {
	Path string
}

func (e *ErrWisdomImport) Error() string {
	return fmt.Sprintf("failed to import wisdom file: %q", e.Path)
}

// ErrWisdomExport indicates the native engine failed to write a wisdom file.
type ErrWisdomExport struct {
	Path string
}

func (e *ErrWisdomExport) Error() string {
	return fmt.Sprintf("failed to export wisdom file: %q", e.Path)
}

// KindOf classifies err. It returns KindUnknown for nil and for errors that
// did not originate in fftwgo.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var (
		in  *ErrInputArrayMismatch
		out *ErrOutputArrayMismatch
		enc *ErrPathEncoding
		cnv *ErrPathConversion
		imp *ErrWisdomImport
		exp *ErrWisdomExport
	)
	switch {
	case errors.As(err, &in):
		return KindInputArrayMismatch
	case errors.As(err, &out):
		return KindOutputArrayMismatch
	case errors.As(err, &enc):
		return KindPathEncoding
	case errors.As(err, &cnv):
		return KindPathConversion
	case errors.As(err, &imp):
		return KindWisdomImportFailed
	case errors.As(err, &exp):
		return KindWisdomExportFailed
	case errors.Is(err, ErrThreadingInitFailed):
		return KindThreadingInitFailed
	case errors.Is(err, ErrInvalidPlan):
		return KindInvalidPlan
	default:
		return KindUnknown
	}
}

// classify leaves taxonomy errors untouched and reports anything else as an
// invalid plan, keeping the original error in the chain.
func classify(err error) error {
	if err == nil || KindOf(err) != KindUnknown {
		return err
	}
	return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
}
