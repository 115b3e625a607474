package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	data := []byte("hello world, this is a test blob for blobcheck")

	// 1. Write
	res, err := store.Write(ctx, WriteRequest{
		Path:      "blob-001.bin",
		Directory: DirectoryData,
		Data:      data,
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.URI, "file://"), "got %q", res.URI)

	// The locator points at a real file
	onDisk := strings.TrimPrefix(res.URI, "file://")
	_, err = os.Stat(filepath.FromSlash(onDisk))
	require.NoError(t, err)

	// 2. Open and read back
	blob, err := store.Open(ctx, res.URI)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	got, err := ReadAll(blob)
	require.NoError(t, err)
	require.Equal(t, data, got)

	// 3. ReadAt mid-blob
	buf := make([]byte, 5)
	n, err := blob.ReadAt(buf, 6)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "world", string(buf))

	// 4. Delete
	require.NoError(t, store.Delete(ctx, "blob-001.bin", DirectoryData))
	_, err = store.Open(ctx, res.URI)
	require.Error(t, err)

	// Deleting again is not an error
	require.NoError(t, store.Delete(ctx, "blob-001.bin", DirectoryData))
}

func TestLocalStore_OverwriteReplaces(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	first := []byte("a much longer first payload that must disappear")
	second := []byte("short second")

	_, err := store.Write(ctx, WriteRequest{Path: "same", Directory: DirectoryData, Data: first})
	require.NoError(t, err)

	res, err := store.Write(ctx, WriteRequest{Path: "same", Directory: DirectoryData, Data: second})
	require.NoError(t, err)

	blob, err := store.Open(ctx, res.URI)
	require.NoError(t, err)
	defer blob.Close()

	// Replaced, not appended
	require.Equal(t, int64(len(second)), blob.Size())
	got, err := ReadAll(blob)
	require.NoError(t, err)
	require.Equal(t, second, got)
}

func TestLocalStore_DirectoriesAreIsolated(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	resData, err := store.Write(ctx, WriteRequest{Path: "x", Directory: DirectoryData, Data: []byte("data area")})
	require.NoError(t, err)
	resCache, err := store.Write(ctx, WriteRequest{Path: "x", Directory: DirectoryCache, Data: []byte("cache area")})
	require.NoError(t, err)

	require.NotEqual(t, resData.URI, resCache.URI)

	blob, err := store.Open(ctx, resCache.URI)
	require.NoError(t, err)
	defer blob.Close()
	got, err := ReadAll(blob)
	require.NoError(t, err)
	require.Equal(t, []byte("cache area"), got)
}

func TestLocalStore_EmptyPayload(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	res, err := store.Write(ctx, WriteRequest{Path: "empty", Directory: DirectoryData, Data: nil})
	require.NoError(t, err)

	blob, err := store.Open(ctx, res.URI)
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(0), blob.Size())
	got, err := ReadAll(blob)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalStore_BadLocator(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "mem://data/x")
	assert.Error(t, err)
}

func TestLocalStore_UnknownDirectory(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Write(context.Background(), WriteRequest{
		Path:      "x",
		Directory: Directory(99),
		Data:      []byte("y"),
	})
	assert.ErrorIs(t, err, ErrUnknownDirectory)
}
