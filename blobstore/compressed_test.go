package blobstore

import (
	"bytes"
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodecs(t *testing.T) map[string]Codec {
	t.Helper()
	zstd, err := NewZstdCodec()
	require.NoError(t, err)
	return map[string]Codec{
		"zstd": zstd,
		"lz4":  NewLZ4Codec(),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	payloads := map[string][]byte{
		"empty":        nil,
		"tiny":         {0x42},
		"compressible": bytes.Repeat([]byte("abcd"), 64*1024),
		"random":       randomBytes(rng, 256*1024),
	}

	for codecName, codec := range testCodecs(t) {
		for payloadName, data := range payloads {
			t.Run(codecName+"/"+payloadName, func(t *testing.T) {
				encoded, err := codec.Encode(data)
				require.NoError(t, err)

				decoded, err := codec.Decode(encoded)
				require.NoError(t, err)
				assert.Equal(t, len(data), len(decoded))
				assert.True(t, bytes.Equal(data, decoded))
			})
		}
	}
}

func TestCompressedStore_TransparentRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ctx := context.Background()

	for name, codec := range testCodecs(t) {
		t.Run(name, func(t *testing.T) {
			inner := NewMemoryStore()
			store := NewCompressedStore(inner, codec)

			data := randomBytes(rng, 128*1024)
			res, err := store.Write(ctx, WriteRequest{Path: "blob", Directory: DirectoryData, Data: data})
			require.NoError(t, err)

			// Read through the wrapper: original bytes
			blob, err := store.Open(ctx, res.URI)
			require.NoError(t, err)
			got, err := ReadAll(blob)
			require.NoError(t, err)
			blob.Close()
			assert.Equal(t, data, got)

			// At rest the inner store holds something else entirely
			raw, err := inner.Open(ctx, res.URI)
			require.NoError(t, err)
			atRest, err := ReadAll(raw)
			require.NoError(t, err)
			raw.Close()
			assert.NotEqual(t, data, atRest)
		})
	}
}

func randomBytes(rng *rand.Rand, n int) []byte {
	buf := make([]byte, n)
	rng.Read(buf)
	return buf
}
