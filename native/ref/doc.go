// Package ref is a pure Go reference implementation of [native.Engine].
//
// It behaves like one precision of libfftw3 where fftwgo cares: planner state
// is unsynchronized, plans capture their thread count at creation, parallel
// stages are handed to an installed [native.SpawnLoop], and wisdom is written
// to and read from text files. It needs no cgo and backs the default build and
// the test suite.
//
// The transforms are textbook: a direct O(n²) DFT for any size and an
// iterative radix-2 Cooley-Tukey for powers of two. Measure, Patient and
// Exhaustive planning time both and remember the winner as wisdom.
package ref
