// Package conv provides checked integer conversions.
//
// They are used where lengths cross a fixed-width boundary, such as the
// uint32 length fields of the wisdom envelope and the C int job counts of the
// native binding. For provably bounded values, such as loop indices, use
// direct casts.
package conv
