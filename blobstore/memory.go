package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

const memScheme = "mem://"

// MemoryStore is an in-memory Store implementation for testing.
// It stores blobs in a map without any filesystem dependency.
// Thread-safe for concurrent reads and writes.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string][]byte),
	}
}

func memKey(path string, dir Directory) string {
	return dir.String() + "/" + path
}

// Write stores a copy of the data and returns a mem:// locator.
// Writing to an existing key replaces its content.
func (m *MemoryStore) Write(_ context.Context, req WriteRequest) (WriteResult, error) {
	key := memKey(req.Path, req.Directory)

	// Copy to prevent external mutation
	copied := make([]byte, len(req.Data))
	copy(copied, req.Data)

	m.mu.Lock()
	m.blobs[key] = copied
	m.mu.Unlock()

	return WriteResult{URI: memScheme + key}, nil
}

// Open resolves a mem:// locator.
func (m *MemoryStore) Open(_ context.Context, uri string) (Blob, error) {
	key, ok := strings.CutPrefix(uri, memScheme)
	if !ok {
		return nil, fmt.Errorf("blobstore: not a mem locator: %q", uri)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external mutation
	copied := make([]byte, len(data))
	copy(copied, data)

	return &memoryBlob{data: copied}, nil
}

// Delete removes a blob. Deleting a missing blob is not an error.
func (m *MemoryStore) Delete(_ context.Context, path string, dir Directory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, memKey(path, dir))
	return nil
}

// memoryBlob implements Blob for in-memory data.
type memoryBlob struct {
	data []byte
}

func (b *memoryBlob) ReadAt(p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if off < 0 || off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *memoryBlob) Close() error {
	return nil
}

func (b *memoryBlob) Size() int64 {
	return int64(len(b.data))
}

func (b *memoryBlob) Bytes() ([]byte, error) {
	return b.data, nil
}
