// Package crossover - Distance Preserving Crossover (DPX).
//
// Freisleben & Merz (1996). A Genetic Local Search Algorithm for Solving
// Symmetric and Asymmetric Traveling Salesman Problems. Proc. IEEE ICEC,
// 616–621.
//
// A fragment is a maximal run of parent1 whose every step p1[k-1] → p1[k]
// is also a directed edge of parent2. The fragments are then chained
// greedily by nearest endpoint.
package crossover

import (
	"fmt"

	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// DPX returns one child built from the common fragments of both parents.
// For N ≤ 3 or when the parents share every edge it returns a clone of
// parent1. A nil oracle yields ErrMissingOracle.
//
// Complexity: O(N + F²) with F the number of fragments.
func DPX(p1, p2 *tour.Tour, o distance.Oracle, src rng.Source) (*tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrMissingOracle
	}
	if requireCities(n, 4) != nil {
		return p1.Clone(), nil
	}

	frags := CommonFragments(p1, p2)
	if len(frags) <= 1 {
		return p1.Clone(), nil
	}

	var (
		seed = src.UniformInt(0, len(frags)-1)
		seq  = make([]int, 0, n)
	)
	first := frags[seed]
	if len(first) > 1 && src.UniformInt(0, 1) == 1 {
		reverseInts(first)
	}
	seq = append(seq, first...)
	frags = append(frags[:seed], frags[seed+1:]...)

	var (
		tail  int
		best  int
		bestD float64
		flip  bool
		d     float64
		f     []int
		i     int
	)
	for len(frags) > 0 {
		tail = seq[len(seq)-1]
		best = -1
		for i, f = range frags {
			d = o.Cost(tail, f[0])
			if best < 0 || d < bestD {
				best, bestD, flip = i, d, false
			}
			if len(f) > 1 {
				d = o.Cost(tail, f[len(f)-1])
				if d < bestD {
					best, bestD, flip = i, d, true
				}
			}
		}
		f = frags[best]
		if flip {
			reverseInts(f)
		}
		seq = append(seq, f...)
		frags = append(frags[:best], frags[best+1:]...)
	}
	if len(seq) != n {
		return nil, fmt.Errorf("%w: dpx placed %d of %d cities", ErrInternalInconsistency, len(seq), n)
	}

	return assemble(ModeDPX, seq, n)
}

// CommonFragments splits parent1 into maximal runs that follow parent2's
// directed successor relation. A run that wraps past the end of parent1 is
// merged with the leading run. The returned slices are fresh.
//
// Complexity: O(N).
func CommonFragments(p1, p2 *tour.Tour) [][]int {
	var (
		n     = p1.Len()
		frags = make([][]int, 0)
		cur   = []int{p1.CityAt(0)}
		prev  = p1.CityAt(0)
		c     int
		k     int
	)
	for k = 1; k < n; k++ {
		c = p1.CityAt(k)
		if p2.Next(prev) != c {
			frags = append(frags, cur)
			cur = make([]int, 0)
		}
		cur = append(cur, c)
		prev = c
	}
	frags = append(frags, cur)

	if len(frags) >= 2 && p2.Next(p1.CityAt(n-1)) == p1.CityAt(0) {
		last := len(frags) - 1
		frags[0] = append(frags[last], frags[0]...)
		frags = frags[:last]
	}

	return frags
}

func reverseInts(s []int) {
	var i, j int
	for i, j = 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
