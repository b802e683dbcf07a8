// Package engine turns template catalogs into exercise generators and
// dispatches requests to them by topic.
package engine

import (
	"go.uber.org/zap"

	"github.com/abhisek/exgen/internal/problemgen"
	"github.com/abhisek/exgen/internal/sampler"
)

// Config controls the behavior of TemplateGenerator.
type Config struct {
	// Seed initializes the generator's random source. Dispatchers derive a
	// distinct seed per topic from it.
	Seed uint64

	// MaxAttempts caps rejection sampling for range-constrained templates.
	MaxAttempts int

	// TargetRange is the inclusive range a constrained template's whole
	// number answer must fall in.
	TargetRange sampler.Range

	// Validators is the ordered list of validators to run on every
	// generated record. They execute in order; the first failure
	// stops the pipeline.
	Validators []problemgen.Validator
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Seed:        1,
		MaxAttempts: sampler.DefaultMaxAttempts,
		TargetRange: sampler.DefaultRange,
		Validators:  problemgen.DefaultValidators(),
	}
}

type options struct {
	log *zap.Logger
}

// Option configures generators, registries and dispatchers.
type Option func(*options)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
