// Package blobstore provides storage abstraction for shipping wisdom blobs.
//
// Store is the interface for reading and writing named blobs. Every Put is
// atomic: readers see either the previous blob or the new one, never a mix.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: a directory on the local file system
//   - MemoryStore: in-process map, for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible object stores
//
// ThrottledStore wraps any Store with a byte rate limit.
//
// # Custom Implementations
//
//	type Store interface {
//	    Get(ctx, name) ([]byte, error)     // ErrNotFound if missing
//	    Put(ctx, name, data) error         // Atomic write
//	    Delete(ctx, name) error            // Missing blobs are not an error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
