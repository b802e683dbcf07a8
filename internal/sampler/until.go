package sampler

import (
	"fmt"

	"github.com/abhisek/exgen/internal/problemgen"
)

const (
	// DefaultMaxAttempts caps every rejection-sampling loop.
	DefaultMaxAttempts = 1000
)

// DefaultRange is the target range of constrained templates.
var DefaultRange = Range{Min: 0, Max: 81}

// Range is an inclusive integer interval.
type Range struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// Contains reports whether Min <= v <= Max.
func (r Range) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Until repeats draw until accept returns true, at most attempts times.
// It returns the accepted value and the number of draws it took. When the
// cap is reached it returns *problemgen.ErrSamplingExhausted naming template.
func Until[T any](template string, attempts int, draw func() T, accept func(T) bool) (T, int, error) {
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	for i := 1; i <= attempts; i++ {
		v := draw()
		if accept(v) {
			return v, i, nil
		}
	}
	var zero T
	return zero, attempts, &problemgen.ErrSamplingExhausted{Template: template, Attempts: attempts}
}
