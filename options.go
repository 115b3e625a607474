package blobcheck

import "github.com/hupe1980/blobcheck/payload"

type options struct {
	logger *Logger
	rng    *payload.RNG
}

func defaultOptions() options {
	return options{
		logger: NewLogger(nil),
		rng:    payload.NewRNG(1),
	}
}

// Option configures harness constructors.
type Option func(*options)

// WithLogger injects the output sink. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithRNG injects a seeded random source so runs are reproducible.
func WithRNG(rng *payload.RNG) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}
