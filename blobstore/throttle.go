package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a Store and caps write bandwidth with a token-bucket
// byte budget. It gives the benchmark sweep a constrained competitor that
// behaves like a remote backend without needing a network.
//
// Only writes are throttled; reads pass through untouched so verification
// read-back stays fast.
type ThrottledStore struct {
	inner   Store
	limiter *rate.Limiter
	burst   int
}

// NewThrottledStore wraps inner with a bytesPerSecond write budget.
func NewThrottledStore(inner Store, bytesPerSecond int) *ThrottledStore {
	return &ThrottledStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), bytesPerSecond),
		burst:   bytesPerSecond,
	}
}

func (s *ThrottledStore) Write(ctx context.Context, req WriteRequest) (WriteResult, error) {
	// WaitN rejects n > burst, so large payloads consume the budget in
	// burst-sized slices.
	for remaining := len(req.Data); remaining > 0; {
		n := remaining
		if n > s.burst {
			n = s.burst
		}
		if err := s.limiter.WaitN(ctx, n); err != nil {
			return WriteResult{}, err
		}
		remaining -= n
	}
	return s.inner.Write(ctx, req)
}

func (s *ThrottledStore) Open(ctx context.Context, uri string) (Blob, error) {
	return s.inner.Open(ctx, uri)
}

func (s *ThrottledStore) Delete(ctx context.Context, path string, dir Directory) error {
	return s.inner.Delete(ctx, path, dir)
}
