// Package testutil provides testing utilities for fftwgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random complex signals and for
// computing exact transforms to check engine output against.
//
// # Random Signal Generation
//
//	rng := testutil.NewRNG(seed)
//	x := rng.Complex128s(64)   // real and imaginary parts uniform in [-1, 1)
//	y := rng.Complex64s(64)
//
// # Exact Transform (Ground Truth)
//
//	want := testutil.NaiveDFT(x, -1)
//
// # Result Verification
//
//	diff := testutil.MaxAbsDiff(got, want)
package testutil
