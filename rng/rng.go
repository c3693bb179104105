// Package rng provides the explicit random stream threaded through every
// crossover call.
//
// Goals:
//   - Determinism: same seed ⇒ identical operator decisions on every platform.
//   - Explicitness: no package-level generator; callers own their stream.
//   - Parallel safety by construction: Derive produces independent substreams
//     for workers instead of sharing one *rand.Rand across goroutines.
//
// Concurrency:
//   - A Stream is NOT goroutine-safe. Give each worker its own Derive'd stream.
package rng

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Source is the random collaborator consumed by crossover operators.
type Source interface {
	// UniformInt returns a uniformly distributed integer in [lo, hi], bounds
	// inclusive. If hi < lo it returns lo.
	UniformInt(lo, hi int) int

	// Bernoulli returns true with probability p (p ≤ 0 never, p ≥ 1 always).
	Bernoulli(p float64) bool

	// Float64 returns a value in [0, 1).
	Float64() float64

	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// Stream is the math/rand backed Source.
type Stream struct {
	r    *rand.Rand
	seed int64
}

var _ Source = (*Stream)(nil)

// New returns a deterministic stream.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *Stream {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}

	return &Stream{r: rand.New(rand.NewSource(s)), seed: s}
}

// Seed returns the effective seed the stream was created with.
func (s *Stream) Seed() int64 { return s.seed }

// UniformInt implements Source.
func (s *Stream) UniformInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + s.r.Intn(hi-lo+1)
}

// Bernoulli implements Source.
func (s *Stream) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}

	return s.r.Float64() < p
}

// Float64 implements Source.
func (s *Stream) Float64() float64 { return s.r.Float64() }

// Shuffle implements Source with a Fisher–Yates pass.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	s.r.Shuffle(n, swap)
}

// Derive creates an independent deterministic stream identified by stream.
// The parent advances by one draw so reusing a stream id by mistake still
// yields distinct children.
//
// Usage: call during setup (not in hot loops) to create per-worker streams.
//
// Complexity: O(1).
func (s *Stream) Derive(stream uint64) *Stream {
	var parent = s.r.Int63()

	return New(deriveSeed(parent, stream))
}

// deriveSeed hashes the stream id first and folds it into the parent draw,
// so neighboring ids land far apart before the final avalanche.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x = uint64(parent) ^ fmix64(stream+1)

	return int64(fmix64(x))
}

// fmix64 is the MurmurHash3 64-bit finalizer: every input bit flips each
// output bit with probability close to 1/2.
func fmix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33

	return x
}

// Perm returns a uniformly random permutation of 0..n-1 drawn from src.
//
// Complexity: O(n).
func Perm(src Source, n int) []int {
	if n <= 0 {
		return nil
	}
	p := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	src.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })

	return p
}
