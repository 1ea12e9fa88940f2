package native

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCString(t *testing.T) {
	cs, err := NewCString("/tmp/wisdom")
	require.NoError(t, err)
	assert.Equal(t, byte(0), cs[len(cs)-1])
	assert.Equal(t, "/tmp/wisdom", cs.String())

	empty, err := NewCString("")
	require.NoError(t, err)
	assert.Equal(t, CString{0}, empty)
	assert.Equal(t, "", empty.String())
}

func TestNewCString_InteriorNul(t *testing.T) {
	_, err := NewCString("foo\x00bar")
	require.Error(t, err)

	var nulErr *NulError
	require.True(t, errors.As(err, &nulErr))
	assert.Equal(t, 3, nulErr.Pos)
	assert.Contains(t, err.Error(), "position: 3")
}

func TestParsePrecision(t *testing.T) {
	tests := []struct {
		in   string
		want Precision
		ok   bool
	}{
		{"double", Double, true},
		{" F64 ", Double, true},
		{"single", Single, true},
		{"float32", Single, true},
		{"half", Double, false},
	}
	for _, tt := range tests {
		got, ok := ParsePrecision(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.want, got, tt.in)
			assert.Equal(t, got, mustParse(t, got.String()))
		}
	}
}

func mustParse(t *testing.T, s string) Precision {
	t.Helper()
	p, ok := ParsePrecision(s)
	require.True(t, ok)
	return p
}

func TestFlagRigor(t *testing.T) {
	assert.Equal(t, Measure, Measure.Rigor())
	assert.Equal(t, Estimate, (Estimate | Unaligned).Rigor())
	assert.Equal(t, Patient, (Patient | DestroyInput).Rigor())
	assert.Equal(t, Exhaustive, (Exhaustive | Patient).Rigor())
	assert.True(t, (WisdomOnly | Estimate).Has(WisdomOnly))
	assert.False(t, Estimate.Has(Unaligned))
}

func TestPrecisionElemSize(t *testing.T) {
	assert.Equal(t, uintptr(16), Double.ElemSize())
	assert.Equal(t, uintptr(8), Single.ElemSize())
}
