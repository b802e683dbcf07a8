// Package sampler draws template parameters from small curated domains.
//
// Every Sampler owns its random source. Two samplers built from the same seed
// produce the same sequence of draws, which is what makes generated exercises
// reproducible. A Sampler is not safe for concurrent use; callers that share
// one must serialize access.
package sampler

import (
	"math/rand/v2"
)

// Sampler wraps a seeded PCG source.
type Sampler struct {
	rng *rand.Rand
}

// New returns a Sampler seeded with seed.
func New(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform int in [0, n). It panics if n <= 0.
func (s *Sampler) IntN(n int) int {
	return s.rng.IntN(n)
}

// Between returns a uniform integer in [lo, hi]. It panics if hi < lo.
func (s *Sampler) Between(lo, hi int64) int64 {
	return lo + s.rng.Int64N(hi-lo+1)
}

// Chance returns true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Weighted returns an index into weights, chosen with probability
// proportional to its weight. Weights must be non-negative with a positive
// total.
func (s *Sampler) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := s.rng.IntN(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

// Pick returns a uniform draw (with replacement) from xs.
// It panics if xs is empty.
func Pick[T any](s *Sampler, xs []T) T {
	return xs[s.rng.IntN(len(xs))]
}

// PickOther draws from xs until the value differs from exclude.
// xs must hold at least one value other than exclude.
func PickOther[T comparable](s *Sampler, xs []T, exclude T) T {
	for {
		if v := Pick(s, xs); v != exclude {
			return v
		}
	}
}
