package blobcheck

import (
	"context"
	"fmt"

	"github.com/hupe1980/blobcheck/blobstore"
	"github.com/hupe1980/blobcheck/payload"
	"golang.org/x/sync/errgroup"
)

// largePayloadSize exercises multi-chunk write paths.
const largePayloadSize = 5 << 20 // 5 MiB

// concurrentVerifications is the fan-out of the isolation check.
const concurrentVerifications = 3

// Sequence runs the full correctness suite against one store: fresh-path
// write, overwrite, alternate directory, concurrent isolation, and a large
// payload. The first failure aborts the run; there is no partial success.
type Sequence struct {
	verifier *Verifier
	rng      *payload.RNG
	logger   *Logger
}

// NewSequence creates a Sequence for the given store.
func NewSequence(store blobstore.Store, opts ...Option) *Sequence {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sequence{
		verifier: &Verifier{store: store, logger: o.logger},
		rng:      o.rng,
		logger:   o.logger,
	}
}

// Run executes the suite. On success it logs a single confirmation line; on
// failure it logs the error and returns it unchanged.
func (s *Sequence) Run(ctx context.Context) error {
	s.logger.Info("starting tests")

	if err := s.run(ctx); err != nil {
		s.logger.Error("tests failed", "error", err)
		return err
	}

	s.logger.Info("tests passed!")
	return nil
}

func (s *Sequence) run(ctx context.Context) error {
	if err := s.freshPath(ctx); err != nil {
		return fmt.Errorf("fresh path: %w", err)
	}
	if err := s.overwrite(ctx); err != nil {
		return fmt.Errorf("overwrite: %w", err)
	}
	if err := s.alternateDirectory(ctx); err != nil {
		return fmt.Errorf("alternate directory: %w", err)
	}
	if err := s.concurrentIsolation(ctx); err != nil {
		return fmt.Errorf("concurrent isolation: %w", err)
	}
	if err := s.largePayload(ctx); err != nil {
		return fmt.Errorf("large payload: %w", err)
	}
	return nil
}

// freshPath verifies a write to a path that does not yet exist.
func (s *Sequence) freshPath(ctx context.Context) error {
	p := payload.GenerateRandom(s.rng, 4096)
	return s.verifier.VerifyWrite(ctx, s.randomPath(), blobstore.DirectoryData, p)
}

// overwrite verifies that writing to an occupied path replaces the previous
// content entirely. The second payload has a different length, so an
// appending or partially-replacing store fails the length check.
func (s *Sequence) overwrite(ctx context.Context) error {
	path := s.randomPath()

	first := payload.GenerateRandom(s.rng, 4096)
	if err := s.verifier.VerifyWrite(ctx, path, blobstore.DirectoryData, first); err != nil {
		return err
	}

	second := payload.GenerateRandom(s.rng, 1024)
	return s.verifier.VerifyWrite(ctx, path, blobstore.DirectoryData, second)
}

// alternateDirectory verifies a write into the non-default logical area.
func (s *Sequence) alternateDirectory(ctx context.Context) error {
	p := payload.GenerateRandom(s.rng, 4096)
	return s.verifier.VerifyWrite(ctx, s.randomPath(), blobstore.DirectoryCache, p)
}

// concurrentIsolation runs verifications in parallel against distinct paths
// with independently generated payloads. Completion order is unspecified;
// the group waits for all and fails if any one fails.
func (s *Sequence) concurrentIsolation(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < concurrentVerifications; i++ {
		path := s.randomPath()
		p := payload.GenerateRandom(s.rng, 10)
		g.Go(func() error {
			return s.verifier.VerifyWrite(ctx, path, blobstore.DirectoryData, p)
		})
	}
	return g.Wait()
}

// largePayload verifies a round trip big enough to cross chunked write
// paths in the store.
func (s *Sequence) largePayload(ctx context.Context) error {
	p := payload.GenerateRandom(s.rng, largePayloadSize)
	return s.verifier.VerifyWrite(ctx, s.randomPath(), blobstore.DirectoryData, p)
}

func (s *Sequence) randomPath() string {
	return fmt.Sprintf("check-%016x", s.rng.Uint64())
}
