// Package crossover - Cycle Crossover (CX).
//
// Oliver, Smith & Holland (1987). A Study of Permutation Crossover Operators
// on the Traveling Salesman Problem. Proc. Second ICGA, 224–230.
//
// Only the cycle through position 0 is exchanged. Every position of that
// cycle keeps, across the pair, the same unordered {p1[i], p2[i]} pair, so
// the children are valid permutations without repair.
package crossover

import (
	"fmt"

	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// CX swaps the parents' cities on the positions of the cycle that starts at
// position 0. The src argument is unused; CX is deterministic. Identical
// parents yield a one-position cycle and unchanged clones.
//
// Complexity: O(N).
func CX(p1, p2 *tour.Tour, _ rng.Source) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	cycle, err := CycleOf(p1, p2)
	if err != nil {
		return nil, nil, err
	}

	var (
		seq1 = p1.Cities()
		seq2 = p2.Cities()
	)
	for _, i := range cycle {
		seq1[i], seq2[i] = seq2[i], seq1[i]
	}

	c1, err := assemble(ModeCX, seq1, n)
	if err != nil {
		return nil, nil, err
	}
	c2, err := assemble(ModeCX, seq2, n)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// CycleOf returns the positions of the cycle through position 0, in trace
// order: i₀ = 0, iₖ₊₁ = position in p1 of p2[iₖ], until the trace returns to 0.
// A trace longer than N reports ErrInternalInconsistency.
//
// Complexity: O(N).
func CycleOf(p1, p2 *tour.Tour) ([]int, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, err
	}

	var (
		cycle = []int{0}
		i     = p1.PositionOf(p2.CityAt(0))
	)
	for i != 0 {
		if i < 0 || len(cycle) >= n {
			return nil, fmt.Errorf("%w: cx trace did not close after %d steps", ErrInternalInconsistency, len(cycle))
		}
		cycle = append(cycle, i)
		i = p1.PositionOf(p2.CityAt(i))
	}

	return cycle, nil
}
