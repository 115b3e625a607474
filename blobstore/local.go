package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/blobcheck/internal/mmap"
)

const fileScheme = "file://"

// LocalStore implements Store on the local file system. Each Directory maps
// to its own subtree under the configured root, so the two logical areas are
// independently writable.
//
// Writes go through a temp file plus rename, so an overwrite replaces the
// previous content atomically. Reads resolve file:// locators via mmap,
// which keeps the read-back path independent from the write path.
type LocalStore struct {
	roots map[Directory]string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{
		roots: map[Directory]string{
			DirectoryData:  filepath.Join(root, DirectoryData.String()),
			DirectoryCache: filepath.Join(root, DirectoryCache.String()),
		},
	}
}

func (s *LocalStore) target(path string, dir Directory) (string, error) {
	root, ok := s.roots[dir]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownDirectory, dir)
	}
	return filepath.Join(root, filepath.FromSlash(path)), nil
}

// Write stores the request's data and returns a file:// locator.
func (s *LocalStore) Write(_ context.Context, req WriteRequest) (WriteResult, error) {
	target, err := s.target(req.Path, req.Directory)
	if err != nil {
		return WriteResult{}, err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return WriteResult{}, err
	}

	// Temp file in the destination directory so the rename stays on one
	// filesystem and replaces any existing content in a single step.
	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return WriteResult{}, err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(req.Data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return WriteResult{}, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return WriteResult{}, err
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return WriteResult{}, err
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return WriteResult{}, err
	}
	return WriteResult{URI: fileScheme + filepath.ToSlash(abs)}, nil
}

// Open resolves a file:// locator by memory-mapping the file.
func (s *LocalStore) Open(_ context.Context, uri string) (Blob, error) {
	path, ok := strings.CutPrefix(uri, fileScheme)
	if !ok {
		return nil, fmt.Errorf("blobstore: not a file locator: %q", uri)
	}
	m, err := mmap.Open(filepath.FromSlash(path))
	if err != nil {
		return nil, err
	}
	return &localBlob{m: m}, nil
}

// Delete removes the blob at (dir, path). A missing blob is not an error.
func (s *LocalStore) Delete(_ context.Context, path string, dir Directory) error {
	target, err := s.target(path, dir)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

type localBlob struct {
	m *mmap.File
}

func (b *localBlob) ReadAt(p []byte, off int64) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	data := b.m.Data
	if off < 0 || off >= int64(len(data)) {
		return 0, io.EOF
	}
	n = copy(p, data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Size() int64 {
	return int64(len(b.m.Data))
}

func (b *localBlob) Bytes() ([]byte, error) {
	return b.m.Data, nil
}
