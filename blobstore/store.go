package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// ErrNotFound is returned when a blob or locator does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrUnknownDirectory is returned for a Directory value a store does not map.
var ErrUnknownDirectory = errors.New("blobstore: unknown directory")

// Directory is a logical, named storage area. It is an addressing concept,
// distinct from any filesystem path segment the store may map it to.
type Directory int

const (
	// DirectoryData is the default storage area.
	DirectoryData Directory = iota
	// DirectoryCache is the alternate storage area.
	DirectoryCache
)

func (d Directory) String() string {
	switch d {
	case DirectoryData:
		return "data"
	case DirectoryCache:
		return "cache"
	default:
		return "unknown"
	}
}

// WriteRequest describes one write through a Store. Path must be unique
// within the Directory namespace; Data is consumed exactly once.
type WriteRequest struct {
	Path      string
	Directory Directory
	Data      []byte
}

// WriteResult carries the opaque locator returned by a write. Its only
// guaranteed property is that Store.Open resolves it to a blob whose bytes
// are identical to the written data.
type WriteResult struct {
	URI string
}

// Store is the write/read contract the verification harness exercises.
//
// Write must support both create and overwrite: writing to an existing path
// replaces the previous content entirely, it never appends and never errors.
// Distinct paths are isolated, so concurrent writes to distinct paths must
// not interfere. Implementations must be safe for concurrent use.
type Store interface {
	// Write stores req.Data under (req.Directory, req.Path) and returns a
	// locator for the written content.
	Write(ctx context.Context, req WriteRequest) (WriteResult, error)

	// Open resolves a locator returned by Write into a readable blob.
	Open(ctx context.Context, uri string) (Blob, error)

	// Delete removes the blob at (dir, path). Deleting a missing blob is
	// not an error.
	Delete(ctx context.Context, path string, dir Directory) error
}

// Blob is a read-only handle to stored content.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// Mappable is an optional interface for Blobs that expose their content as
// a byte slice without copying.
type Mappable interface {
	// Bytes returns the underlying byte slice.
	// The slice is valid until the Blob is closed.
	Bytes() ([]byte, error)
}

// ReadAll materializes a blob's full content as a fresh byte slice. The
// result is always a copy, valid after the blob is closed.
func ReadAll(b Blob) ([]byte, error) {
	size := b.Size()
	if m, ok := b.(Mappable); ok {
		data, err := m.Bytes()
		if err != nil {
			return nil, err
		}
		copied := make([]byte, len(data))
		copy(copied, data)
		return copied, nil
	}
	buf := make([]byte, size)
	if size == 0 {
		return buf, nil
	}
	n, err := b.ReadAt(buf, 0)
	if int64(n) == size && (err == nil || err == io.EOF) {
		return buf, nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return nil, err
}
