package blobcheck_test

import (
	"context"
	"testing"

	"github.com/hupe1980/blobcheck"
	"github.com/hupe1980/blobcheck/blobstore"
	"github.com/hupe1980/blobcheck/compare"
	"github.com/hupe1980/blobcheck/payload"
	"github.com/hupe1980/blobcheck/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]blobstore.Store {
	t.Helper()
	return map[string]blobstore.Store{
		"memory": blobstore.NewMemoryStore(),
		"local":  blobstore.NewLocalStore(t.TempDir()),
	}
}

func TestVerifier_RoundTripIdentity(t *testing.T) {
	ctx := context.Background()
	rng := payload.NewRNG(1)

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			v := blobcheck.NewVerifier(store, blobcheck.WithLogger(nil))

			// Sizes straddle the streaming-comparison threshold.
			for _, n := range []int{0, 1, 10, 4096, 1 << 20, 5 << 20} {
				p := payload.GenerateRandom(rng, n)
				err := v.VerifyWrite(ctx, "roundtrip", blobstore.DirectoryData, p)
				require.NoError(t, err, "size %d", n)
			}
		})
	}
}

func TestVerifier_AlternateDirectory(t *testing.T) {
	ctx := context.Background()
	rng := payload.NewRNG(2)

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			v := blobcheck.NewVerifier(store, blobcheck.WithLogger(nil))
			p := payload.GenerateRandom(rng, 2048)
			require.NoError(t, v.VerifyWrite(ctx, "alt", blobstore.DirectoryCache, p))
		})
	}
}

func TestVerifier_OverwriteReplaces(t *testing.T) {
	ctx := context.Background()
	rng := payload.NewRNG(3)

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			v := blobcheck.NewVerifier(store, blobcheck.WithLogger(nil))

			first := payload.GenerateRandom(rng, 4096)
			require.NoError(t, v.VerifyWrite(ctx, "same-path", blobstore.DirectoryData, first))

			// Shorter second payload: an appending store would fail the
			// length check, a partially-replacing one the byte scan.
			second := payload.GenerateRandom(rng, 1000)
			require.NoError(t, v.VerifyWrite(ctx, "same-path", blobstore.DirectoryData, second))
		})
	}
}

func TestVerifier_DetectsCorruption(t *testing.T) {
	ctx := context.Background()
	rng := payload.NewRNG(4)

	for _, offset := range []int64{0, 7, 4095} {
		store := testutil.NewCorruptingStore(blobstore.NewMemoryStore(), offset)
		v := blobcheck.NewVerifier(store, blobcheck.WithLogger(nil))

		p := payload.GenerateRandom(rng, 4096)
		err := v.VerifyWrite(ctx, "corrupted", blobstore.DirectoryData, p)

		var mismatch *compare.ByteMismatchError
		require.ErrorAs(t, err, &mismatch, "offset %d", offset)
		assert.Equal(t, offset, mismatch.Offset)
	}
}

func TestVerifier_DetectsCorruptionInLargePayload(t *testing.T) {
	// Past the streaming threshold the mismatch comes from the chunked
	// comparison; the offset must still be exact.
	ctx := context.Background()
	rng := payload.NewRNG(5)

	const offset = (2 << 20) + 123
	store := testutil.NewCorruptingStore(blobstore.NewMemoryStore(), offset)
	v := blobcheck.NewVerifier(store, blobcheck.WithLogger(nil))

	p := payload.GenerateRandom(rng, 5<<20)
	err := v.VerifyWrite(ctx, "large-corrupted", blobstore.DirectoryData, p)

	var mismatch *compare.ByteMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, int64(offset), mismatch.Offset)
}

func TestVerifier_DetectsTruncation(t *testing.T) {
	ctx := context.Background()
	rng := payload.NewRNG(6)

	store := testutil.NewTruncatingStore(blobstore.NewMemoryStore(), 1)
	v := blobcheck.NewVerifier(store, blobcheck.WithLogger(nil))

	p := payload.GenerateRandom(rng, 4096)
	err := v.VerifyWrite(ctx, "truncated", blobstore.DirectoryData, p)

	var mismatch *compare.LengthMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, int64(4096), mismatch.LeftLen)
	assert.Equal(t, int64(4095), mismatch.RightLen)
}

func TestVerifier_CompressedStores(t *testing.T) {
	ctx := context.Background()
	rng := payload.NewRNG(7)

	zstd, err := blobstore.NewZstdCodec()
	require.NoError(t, err)

	codecs := map[string]blobstore.Codec{
		"zstd": zstd,
		"lz4":  blobstore.NewLZ4Codec(),
	}
	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			store := blobstore.NewCompressedStore(blobstore.NewMemoryStore(), codec)
			v := blobcheck.NewVerifier(store, blobcheck.WithLogger(nil))

			p := payload.GenerateRandom(rng, 2<<20)
			require.NoError(t, v.VerifyWrite(ctx, "compressed", blobstore.DirectoryData, p))
		})
	}
}
