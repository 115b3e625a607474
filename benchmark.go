package blobcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/blobcheck/blobstore"
	"github.com/hupe1980/blobcheck/payload"
)

// DefaultBenchmarkMaxSize bounds the sweep at 64 MiB unless configured.
const DefaultBenchmarkMaxSize = 64 << 20

// ErrNoTargets is returned when a benchmark is run without write paths.
var ErrNoTargets = errors.New("blobcheck: benchmark needs at least one target")

// Target is one named write path competing in the sweep.
type Target struct {
	Name  string
	Store blobstore.Store
}

// Result is one timed write: target name, payload size, elapsed wall clock.
type Result struct {
	Target  string
	Bytes   int64
	Elapsed time.Duration
}

// Throughput returns the write rate in bytes per second.
func (r Result) Throughput() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Bytes) / r.Elapsed.Seconds()
}

// Benchmark sweeps payload size exponentially across competing write paths.
// Starting at one byte and doubling until maxSize is exceeded, it samples
// orders of magnitude rather than linear steps: broad size coverage in a
// bounded number of iterations.
//
// Large sweeps can exhaust memory or crash the host. That is an accepted
// property of the benchmark, not a defect — bound it with WithMaxSize, or
// skip benchmarking entirely; correctness testing does not depend on it.
type Benchmark struct {
	targets []Target
	maxSize int64
	pathFn  func(target string, size int64) string
	logger  *Logger
}

// BenchmarkOption configures a Benchmark.
type BenchmarkOption func(*Benchmark)

// WithMaxSize caps the sweep. Sizes beyond max are never generated.
func WithMaxSize(max int64) BenchmarkOption {
	return func(b *Benchmark) {
		b.maxSize = max
	}
}

// WithPathFunc overrides how per-iteration blob paths are derived.
func WithPathFunc(fn func(target string, size int64) string) BenchmarkOption {
	return func(b *Benchmark) {
		if fn != nil {
			b.pathFn = fn
		}
	}
}

// WithBenchmarkLogger injects the output sink for progress lines.
func WithBenchmarkLogger(l *Logger) BenchmarkOption {
	return func(b *Benchmark) {
		if l == nil {
			l = NoopLogger()
		}
		b.logger = l
	}
}

// NewBenchmark creates a sweep over the given targets.
func NewBenchmark(targets []Target, opts ...BenchmarkOption) *Benchmark {
	b := &Benchmark{
		targets: targets,
		maxSize: DefaultBenchmarkMaxSize,
		pathFn: func(target string, size int64) string {
			return fmt.Sprintf("bench-%s-%d", target, size)
		},
		logger: NewLogger(nil),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run executes the sweep: for each size, one uniform payload is generated
// and written through every target, timed individually. The sweep is finite
// by construction — it terminates once the doubled size exceeds the cap.
// A store error aborts the run with the results gathered so far discarded.
func (b *Benchmark) Run(ctx context.Context) ([]Result, error) {
	if len(b.targets) == 0 {
		return nil, ErrNoTargets
	}

	var results []Result
	for size := int64(1); size <= b.maxSize; size *= 2 {
		p := payload.GenerateUniform(int(size))

		for _, target := range b.targets {
			res, err := b.timedWrite(ctx, target, p, size)
			if err != nil {
				return nil, fmt.Errorf("benchmark %s at %s: %w",
					target.Name, humanize.IBytes(uint64(size)), err)
			}
			results = append(results, res)
		}
	}
	return results, nil
}

func (b *Benchmark) timedWrite(ctx context.Context, target Target, p *payload.Payload, size int64) (Result, error) {
	start := time.Now()
	_, err := target.Store.Write(ctx, blobstore.WriteRequest{
		Path:      b.pathFn(target.Name, size),
		Directory: blobstore.DirectoryData,
		Data:      p.Bytes(),
	})
	if err != nil {
		return Result{}, err
	}

	res := Result{Target: target.Name, Bytes: size, Elapsed: time.Since(start)}
	b.logger.WithStore(target.Name).Info("wrote bytes",
		"bytes", size,
		"size", humanize.IBytes(uint64(size)),
		"elapsed_ms", res.Elapsed.Milliseconds(),
		"throughput", humanize.IBytes(uint64(res.Throughput()))+"/s",
	)
	return res, nil
}
