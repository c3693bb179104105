// Package crossover - order-preserving operators: OX1, OX2 and MOX.
//
// OX1: Davis (1985). Applying Adaptive Algorithms to Epistatic Domains.
// Proc. IJCAI, 162–164.
// OX2: Syswerda (1991). Schedule Optimization Using Genetic Algorithms.
// Handbook of Genetic Algorithms, 332–349.
// MOX: Modified order crossover, "New Operators of Genetic Algorithms for
// Traveling Salesman Problem".
//
// All three copy a block of genetic material verbatim and fill the rest in
// the other parent's relative order, so duplicates are skipped during the
// fill instead of being repaired afterwards.
package crossover

import (
	"fmt"

	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// OX1 draws an interior segment 1 ≤ lo < hi ≤ N-2 and applies
// OX1WithSegment. For N ≤ 3 it returns clones of the parents.
//
// Complexity: O(N).
func OX1(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if requireCities(n, 4) != nil {
		c1, c2 := clonePair(p1, p2)
		return c1, c2, nil
	}
	lo, hi := randomSegment(src, n)

	return OX1WithSegment(p1, p2, lo, hi)
}

// OX1WithSegment keeps [lo, hi] from the matching parent and fills the other
// positions, starting after hi and wrapping, with the other parent's cities
// read from hi+1 onwards (wrapping), skipping cities already in the segment.
//
// Complexity: O(N).
func OX1WithSegment(p1, p2 *tour.Tour, lo, hi int) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if err = checkSegment(n, lo, hi); err != nil {
		return nil, nil, err
	}

	c1, err := assemble(ModeOX1, ox1Child(p1, p2, lo, hi), n)
	if err != nil {
		return nil, nil, err
	}
	c2, err := assemble(ModeOX1, ox1Child(p2, p1, lo, hi), n)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

func ox1Child(own, other *tour.Tour, lo, hi int) []int {
	var (
		n      = own.Len()
		seq    = make([]int, n)
		placed = make([]bool, n)
		k      int
		c      int
	)
	for k = lo; k <= hi; k++ {
		c = own.CityAt(k)
		seq[k] = c
		placed[c] = true
	}

	var at = (hi + 1) % n
	for k = 0; k < n; k++ {
		c = other.CityAt((hi + 1 + k) % n)
		if placed[c] {
			continue
		}
		seq[at] = c
		placed[c] = true
		at = (at + 1) % n
	}

	return seq
}

// OX2 samples ⌈0.4·N⌉ distinct positions of parent1. Child1 refills those
// positions with the selected cities in the order parent2 visits them; child2
// refills the positions parent2 uses for the selected cities with the same
// cities in parent1 order.
//
// Complexity: O(N) plus rejection sampling.
func OX2(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}

	var (
		positions = sampleDistinctPositions(src, n, subsetSize(n))
		selected  = make([]bool, n)
		seq1      = p1.Cities()
		seq2      = p2.Cities()
		idx       int
		j         int
		c         int
	)
	for _, p := range positions {
		selected[p1.CityAt(p)] = true
	}
	for j = 0; j < n; j++ {
		c = p2.CityAt(j)
		if !selected[c] {
			continue
		}
		seq1[positions[idx]] = c
		seq2[j] = p1.CityAt(positions[idx])
		idx++
	}

	c1, err := assemble(ModeOX2, seq1, n)
	if err != nil {
		return nil, nil, err
	}
	c2, err := assemble(ModeOX2, seq2, n)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// MOX draws a cut in [2, N-1] and applies MOXAt. For N < 3 it returns
// clones of the parents.
//
// Complexity: O(N).
func MOX(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if requireCities(n, 3) != nil {
		c1, c2 := clonePair(p1, p2)
		return c1, c2, nil
	}

	return MOXAt(p1, p2, src.UniformInt(1, n-2)+1)
}

// MOXAt keeps each parent's prefix [0, cut) and appends the other parent's
// remaining cities in that parent's order. cut must lie in [1, N-1].
//
// Complexity: O(N).
func MOXAt(p1, p2 *tour.Tour, cut int) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if cut < 1 || cut > n-1 {
		return nil, nil, fmt.Errorf("%w: cut %d outside [1,%d]", tour.ErrIndexOutOfRange, cut, n-1)
	}

	c1, err := assemble(ModeMOX, prefixThenOrder(p1, p2, cut), n)
	if err != nil {
		return nil, nil, err
	}
	c2, err := assemble(ModeMOX, prefixThenOrder(p2, p1, cut), n)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// prefixThenOrder returns own[:cut] followed by other's cities not yet present.
func prefixThenOrder(own, other *tour.Tour, cut int) []int {
	var (
		n      = own.Len()
		seq    = make([]int, 0, n)
		placed = make([]bool, n)
		k      int
		c      int
	)
	for k = 0; k < cut; k++ {
		c = own.CityAt(k)
		seq = append(seq, c)
		placed[c] = true
	}
	for k = 0; k < n; k++ {
		c = other.CityAt(k)
		if !placed[c] {
			seq = append(seq, c)
		}
	}

	return seq
}
