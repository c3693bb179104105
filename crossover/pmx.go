// Package crossover - Partially-Mapped Crossover (PMX).
//
// Goldberg & Lingle (1985). Alleles, Loci and the TSP. Proc. First ICGA,
// 154–159.
//
// For every position k of the segment, child1 must end up holding parent2[k]:
// the city currently at k and parent2[k] are swapped *by city* in child1, so
// the displaced city moves to wherever parent2[k] used to be. Child2 mirrors
// this with parent1. Swaps never create duplicates, so no repair pass exists.
package crossover

import (
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// PMX draws an interior segment 1 ≤ lo < hi ≤ N-2 and applies
// PMXWithSegment. For N < 4 it returns clones of the parents.
//
// Complexity: O(N).
func PMX(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if requireCities(n, 4) != nil {
		c1, c2 := clonePair(p1, p2)
		return c1, c2, nil
	}
	lo, hi := randomSegment(src, n)

	return PMXWithSegment(p1, p2, lo, hi)
}

// PMXWithSegment performs PMX on the inclusive segment [lo, hi].
//
// Complexity: O(hi-lo+N) (the N term is the parent copy).
func PMXWithSegment(p1, p2 *tour.Tour, lo, hi int) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if err = checkSegment(n, lo, hi); err != nil {
		return nil, nil, err
	}

	c1, c2 := clonePair(p1, p2)
	var k int
	for k = lo; k <= hi; k++ {
		if err = c1.SwapCities(c1.CityAt(k), p2.CityAt(k)); err != nil {
			return nil, nil, err
		}
		if err = c2.SwapCities(c2.CityAt(k), p1.CityAt(k)); err != nil {
			return nil, nil, err
		}
	}
	if err = verify(ModePMX, c1); err != nil {
		return nil, nil, err
	}
	if err = verify(ModePMX, c2); err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}
