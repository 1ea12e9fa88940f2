package fftwgo

import "github.com/hupe1980/fftwgo/native"

// Precision identifies the single or double precision native instance.
type Precision = native.Precision

// ParsePrecision parses "single"/"f32" or "double"/"f64".
func ParsePrecision(s string) (Precision, bool) {
	return native.ParsePrecision(s)
}
