// Package blobstore defines the write/read contract the verification
// harness exercises, plus the store implementations that satisfy it.
//
// Store is the interface for writing data blobs and resolving the returned
// locators back into readable content. Implementations must be safe for
// concurrent use and must give per-path isolation.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, atomic rename writes, mmap read-back
//   - MemoryStore: map-backed store for tests
//   - CompressedStore: compresses at rest (zstd or lz4), transparent reads
//   - ThrottledStore: caps write bandwidth for benchmark comparisons
//   - s3.Store: Amazon S3 with multipart uploads and range reads
//   - minio.Store: MinIO and other S3-compatible backends
//
// # Custom Implementations
//
// Implement the Store interface to point the harness at another backend:
//
//	type Store interface {
//	    Write(ctx, WriteRequest) (WriteResult, error) // create or overwrite
//	    Open(ctx, uri) (Blob, error)                  // resolve a locator
//	    Delete(ctx, path, dir) error
//	}
//
// The harness only requires that Open(Write(req).URI) yields bytes
// identical to req.Data, for payloads of at least tens of megabytes.
package blobstore
