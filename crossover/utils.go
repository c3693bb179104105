package crossover

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// subsetFraction is the share of positions sampled by OX2 and POS.
const subsetFraction = 0.4

// checkParents enforces the parent-pair contract and returns N.
func checkParents(p1, p2 *tour.Tour) (int, error) {
	if p1 == nil || p2 == nil || p1.Len() == 0 || p1.Len() != p2.Len() {
		return 0, ErrParentMismatch
	}

	return p1.Len(), nil
}

// clonePair returns private copies of both parents.
func clonePair(p1, p2 *tour.Tour) (*tour.Tour, *tour.Tour) {
	return p1.Clone(), p2.Clone()
}

// requireCities returns ErrDegenerateInput when n < least.
func requireCities(n, least int) error {
	if n < least {
		return fmt.Errorf("%w: %d cities, need at least %d", ErrDegenerateInput, n, least)
	}

	return nil
}

// assemble turns a freshly built sequence into a validated child tour.
func assemble(m Mode, seq []int, n int) (*tour.Tour, error) {
	t, err := tour.NewN(seq, n)
	if err != nil {
		return nil, fmt.Errorf("crossover: %s: %w", m, err)
	}

	return t, nil
}

// verify re-checks a child mutated in place.
func verify(m Mode, t *tour.Tour) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("crossover: %s: %w", m, err)
	}

	return nil
}

// subsetSize returns ⌈0.4·n⌉, at least 1.
func subsetSize(n int) int {
	k := int(math.Ceil(subsetFraction * float64(n)))
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	return k
}

// sampleDistinctPositions draws k distinct positions in [0, n) by rejection
// sampling and returns them in ascending order. k ≤ n keeps the loop finite.
//
// Complexity: expected O(n·H(k)) draws, O(n) space.
func sampleDistinctPositions(src rng.Source, n, k int) []int {
	chosen := make([]bool, n)
	out := make([]int, 0, k)

	var p int
	for len(out) < k {
		p = src.UniformInt(0, n-1)
		if chosen[p] {
			continue
		}
		chosen[p] = true
		out = append(out, p)
	}
	sort.Ints(out)

	return out
}

// randomSegment draws lo = U(1, n-3), hi = U(lo+1, n-2): an interior
// segment 1 ≤ lo < hi ≤ n-2. Requires n ≥ 4.
func randomSegment(src rng.Source, n int) (int, int) {
	lo := src.UniformInt(1, n-3)
	hi := src.UniformInt(lo+1, n-2)

	return lo, hi
}

// checkSegment validates caller-supplied interior segment bounds.
func checkSegment(n, lo, hi int) error {
	if lo < 0 || hi >= n || lo > hi {
		return fmt.Errorf("%w: segment [%d,%d] outside [0,%d)", tour.ErrIndexOutOfRange, lo, hi, n)
	}

	return nil
}
