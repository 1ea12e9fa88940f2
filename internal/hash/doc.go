// Package hash provides the CRC32-Castagnoli checksum used for wisdom integrity.
//
// Both the reference engine's wisdom entries and the wisdom storage envelope
// are checksummed with CRC32C:
//
//	sum := hash.CRC32C(data)
//
// For streaming input:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk)
//	sum := h.Sum32()
//
// Go's hash/crc32 uses SSE4.2 or the ARM CRC extension when available.
package hash
