// Package mmap provides read-only memory-mapped file access.
//
// The local blob store resolves locators through this package so the
// verification read-back path shares nothing with the buffered write path:
// the bytes compared against the original come straight from a mapping of
// what actually landed on disk.
//
// Unix uses mmap(2); Windows uses CreateFileMapping/MapViewOfFile. Mappings
// are read-only and safe for concurrent reads. Callers must not touch the
// mapped bytes after Close returns.
package mmap
