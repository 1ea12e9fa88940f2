// Package mem provides aligned allocation for transform buffers.
//
// # Aligned Allocation
//
// Buffers start on a 64-byte boundary, which satisfies every SIMD alignment
// class the engines use (16, 32 and 64 bytes). Plans created on aligned
// buffers can then execute on any other aligned buffer of the same length.
package mem
