// Package hash provides fast, hardware-accelerated hashing utilities for
// data integrity.
//
// All checksums in blobcheck use CRC32-Castagnoli (CRC32C): it is hardware
// accelerated on x86 (SSE4.2) and ARM (CRC extension), and it is the format
// S3 expects for upload integrity validation. The harness also logs the
// CRC32C of every written payload so a corrupted round trip can be matched
// against what was actually handed to the store.
//
// For one-shot checksums:
//
//	checksum := hash.CRC32C(data)
//
// For streaming checksums:
//
//	h := hash.NewCRC32C()
//	h.Write(chunk1)
//	h.Write(chunk2)
//	checksum := h.Sum32()
package hash
