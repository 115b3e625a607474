package blobstore

import (
	"bytes"
	"context"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec compresses and decompresses blob content.
type Codec interface {
	// Name identifies the codec in locators and logs.
	Name() string
	// Encode compresses src into a fresh buffer.
	Encode(src []byte) ([]byte, error)
	// Decode decompresses src into a fresh buffer.
	Decode(src []byte) ([]byte, error)
}

// CompressedStore wraps a Store and compresses content at rest. Open
// transparently decompresses, so a round trip through the wrapper must still
// reproduce the original bytes exactly. That makes it a useful verification
// target in its own right: a codec bug shows up as a byte or length
// mismatch like any other corruption.
type CompressedStore struct {
	inner Store
	codec Codec
}

// NewCompressedStore wraps inner with the given codec.
func NewCompressedStore(inner Store, codec Codec) *CompressedStore {
	return &CompressedStore{inner: inner, codec: codec}
}

func (s *CompressedStore) Write(ctx context.Context, req WriteRequest) (WriteResult, error) {
	encoded, err := s.codec.Encode(req.Data)
	if err != nil {
		return WriteResult{}, err
	}
	return s.inner.Write(ctx, WriteRequest{
		Path:      req.Path,
		Directory: req.Directory,
		Data:      encoded,
	})
}

func (s *CompressedStore) Open(ctx context.Context, uri string) (Blob, error) {
	blob, err := s.inner.Open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	encoded, err := ReadAll(blob)
	if err != nil {
		return nil, err
	}
	decoded, err := s.codec.Decode(encoded)
	if err != nil {
		return nil, err
	}
	return &memoryBlob{data: decoded}, nil
}

func (s *CompressedStore) Delete(ctx context.Context, path string, dir Directory) error {
	return s.inner.Delete(ctx, path, dir)
}

// ZstdCodec implements Codec using zstd.
//
// Encoder and decoder are allocated once and reused via EncodeAll/DecodeAll,
// which are safe for concurrent use.
type ZstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstdCodec creates a zstd codec at the default compression level.
func NewZstdCodec() (*ZstdCodec, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, err
	}
	return &ZstdCodec{enc: enc, dec: dec}, nil
}

func (c *ZstdCodec) Name() string { return "zstd" }

func (c *ZstdCodec) Encode(src []byte) ([]byte, error) {
	return c.enc.EncodeAll(src, nil), nil
}

func (c *ZstdCodec) Decode(src []byte) ([]byte, error) {
	return c.dec.DecodeAll(src, nil)
}

// LZ4Codec implements Codec using the lz4 frame format.
type LZ4Codec struct{}

// NewLZ4Codec creates an lz4 codec.
func NewLZ4Codec() *LZ4Codec { return &LZ4Codec{} }

func (c *LZ4Codec) Name() string { return "lz4" }

func (c *LZ4Codec) Encode(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *LZ4Codec) Decode(src []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
}
