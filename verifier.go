package blobcheck

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/blobcheck/blobstore"
	"github.com/hupe1980/blobcheck/compare"
	"github.com/hupe1980/blobcheck/internal/hash"
	"github.com/hupe1980/blobcheck/payload"
)

// streamCompareThreshold is the payload size above which read-back is
// compared chunkwise instead of materialized a second time.
const streamCompareThreshold = 1 << 20

// Verifier checks that a store's write path round-trips byte-exactly.
//
// Each VerifyWrite call is self-contained: it holds no mutable state across
// calls, so concurrent verifications against distinct paths cannot interfere
// with each other's timing or outcome.
type Verifier struct {
	store  blobstore.Store
	logger *Logger
}

// NewVerifier creates a Verifier for the given store.
func NewVerifier(store blobstore.Store, opts ...Option) *Verifier {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Verifier{store: store, logger: o.logger}
}

// VerifyWrite writes p to (dir, path), resolves the returned locator through
// the store's read path, and fails unless the read-back is byte-identical to
// p. Store errors and mismatches propagate unchanged; there are no retries.
func (v *Verifier) VerifyWrite(ctx context.Context, path string, dir blobstore.Directory, p *payload.Payload) error {
	start := time.Now()
	res, err := v.store.Write(ctx, blobstore.WriteRequest{
		Path:      path,
		Directory: dir,
		Data:      p.Bytes(),
	})
	if err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	v.logger.LogWrite(ctx, path, p.Len(), time.Since(start), hash.CRC32C(p.Bytes()))

	err = v.compareReadBack(ctx, res.URI, p)
	v.logger.LogVerified(ctx, path, p.Len(), err)
	return err
}

func (v *Verifier) compareReadBack(ctx context.Context, uri string, p *payload.Payload) error {
	blob, err := v.store.Open(ctx, uri)
	if err != nil {
		return fmt.Errorf("open %s: %w", uri, err)
	}
	defer blob.Close()

	// Length first, so a truncated or appended write is reported as such
	// before any byte is inspected.
	if blob.Size() != int64(p.Len()) {
		return &compare.LengthMismatchError{
			LeftLen:  int64(p.Len()),
			RightLen: blob.Size(),
		}
	}

	// Large payloads are compared as streams to avoid holding a second
	// full copy; small ones are materialized and handed to the comparator.
	if p.Len() >= streamCompareThreshold {
		return compare.Readers(
			bytes.NewReader(p.Bytes()),
			io.NewSectionReader(blob, 0, blob.Size()),
		)
	}

	readBack, err := blobstore.ReadAll(blob)
	if err != nil {
		return fmt.Errorf("read %s: %w", uri, err)
	}
	return compare.Bytes(p.Bytes(), readBack)
}
