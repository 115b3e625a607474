package blobstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte{0, 1, 2, 3, 255}
	res, err := store.Write(ctx, WriteRequest{Path: "p", Directory: DirectoryData, Data: data})
	require.NoError(t, err)
	assert.Equal(t, "mem://data/p", res.URI)

	blob, err := store.Open(ctx, res.URI)
	require.NoError(t, err)
	defer blob.Close()

	got, err := ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestMemoryStore_CopiesOnWriteAndRead(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte{1, 2, 3}
	res, err := store.Write(ctx, WriteRequest{Path: "p", Directory: DirectoryData, Data: data})
	require.NoError(t, err)

	// Mutating the caller's slice must not reach the store
	data[0] = 99

	blob, err := store.Open(ctx, res.URI)
	require.NoError(t, err)
	defer blob.Close()
	got, err := ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestMemoryStore_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Open(context.Background(), "mem://data/missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_DirectoriesAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Write(ctx, WriteRequest{Path: "x", Directory: DirectoryData, Data: []byte("a")})
	require.NoError(t, err)
	res, err := store.Write(ctx, WriteRequest{Path: "x", Directory: DirectoryCache, Data: []byte("b")})
	require.NoError(t, err)

	blob, err := store.Open(ctx, res.URI)
	require.NoError(t, err)
	defer blob.Close()
	got, err := ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), got)
}

func TestMemoryStore_ConcurrentWrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data := []byte{byte(i)}
			res, err := store.Write(ctx, WriteRequest{Path: string(rune('a' + i)), Directory: DirectoryData, Data: data})
			assert.NoError(t, err)

			blob, err := store.Open(ctx, res.URI)
			if assert.NoError(t, err) {
				defer blob.Close()
				got, err := ReadAll(blob)
				assert.NoError(t, err)
				assert.Equal(t, data, got)
			}
		}(i)
	}
	wg.Wait()
}
