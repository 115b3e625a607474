package testutil

import (
	"context"

	"github.com/hupe1980/blobcheck/blobstore"
)

// CorruptingStore wraps a Store and flips one bit of the byte at Offset in
// every write. Writes shorter than Offset+1 pass through untouched.
type CorruptingStore struct {
	inner  blobstore.Store
	offset int64
}

// NewCorruptingStore wraps inner, corrupting the byte at offset.
func NewCorruptingStore(inner blobstore.Store, offset int64) *CorruptingStore {
	return &CorruptingStore{inner: inner, offset: offset}
}

func (s *CorruptingStore) Write(ctx context.Context, req blobstore.WriteRequest) (blobstore.WriteResult, error) {
	if s.offset < int64(len(req.Data)) {
		mutated := make([]byte, len(req.Data))
		copy(mutated, req.Data)
		mutated[s.offset] ^= 0x01
		req.Data = mutated
	}
	return s.inner.Write(ctx, req)
}

func (s *CorruptingStore) Open(ctx context.Context, uri string) (blobstore.Blob, error) {
	return s.inner.Open(ctx, uri)
}

func (s *CorruptingStore) Delete(ctx context.Context, path string, dir blobstore.Directory) error {
	return s.inner.Delete(ctx, path, dir)
}

// TruncatingStore wraps a Store and drops the last DropBytes bytes of every
// write, simulating a short write the store failed to notice.
type TruncatingStore struct {
	inner blobstore.Store
	drop  int
}

// NewTruncatingStore wraps inner, dropping drop trailing bytes per write.
func NewTruncatingStore(inner blobstore.Store, drop int) *TruncatingStore {
	return &TruncatingStore{inner: inner, drop: drop}
}

func (s *TruncatingStore) Write(ctx context.Context, req blobstore.WriteRequest) (blobstore.WriteResult, error) {
	if s.drop > 0 && len(req.Data) >= s.drop {
		req.Data = req.Data[:len(req.Data)-s.drop]
	}
	return s.inner.Write(ctx, req)
}

func (s *TruncatingStore) Open(ctx context.Context, uri string) (blobstore.Blob, error) {
	return s.inner.Open(ctx, uri)
}

func (s *TruncatingStore) Delete(ctx context.Context, path string, dir blobstore.Directory) error {
	return s.inner.Delete(ctx, path, dir)
}
