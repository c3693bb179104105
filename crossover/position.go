// Package crossover - Position Based Crossover (POS).
//
// Syswerda (1991). Schedule Optimization Using Genetic Algorithms.
// Handbook of Genetic Algorithms, 332–349.
package crossover

import (
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// POS samples ⌈0.4·N⌉ distinct positions. Child1 takes parent2's cities at
// those positions and fills the free positions, left to right, with parent1's
// remaining cities in parent1 order. Child2 mirrors this with the roles of the
// parents swapped.
//
// Complexity: O(N) plus rejection sampling.
func POS(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	positions := sampleDistinctPositions(src, n, subsetSize(n))

	c1, err := assemble(ModePOS, positionChild(p2, p1, positions), n)
	if err != nil {
		return nil, nil, err
	}
	c2, err := assemble(ModePOS, positionChild(p1, p2, positions), n)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// positionChild pins donor's cities at positions and fills the rest in
// filler order.
func positionChild(donor, filler *tour.Tour, positions []int) []int {
	var (
		n      = donor.Len()
		seq    = make([]int, n)
		pinned = make([]bool, n) // by position
		placed = make([]bool, n) // by city
		at     int
		k      int
		c      int
	)
	for _, p := range positions {
		c = donor.CityAt(p)
		seq[p] = c
		pinned[p] = true
		placed[c] = true
	}
	for k = 0; k < n; k++ {
		c = filler.CityAt(k)
		if placed[c] {
			continue
		}
		for pinned[at] {
			at++
		}
		seq[at] = c
		placed[c] = true
		at++
	}

	return seq
}
