// Package crossover - Heuristic Crossover (HX).
//
// Grefenstette, Gopal, Rosmaita & Van Gucht (1985). Genetic Algorithms for
// the Traveling Salesman Problem. Proc. First ICGA, 160–168.
package crossover

import (
	"math"

	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// HX grows one child from a random start city. At each step the candidates
// are, in order, the parent1 successor and predecessor and the parent2
// successor and predecessor of the last placed city. Placed cities and
// +Inf edges are skipped and the cheapest candidate wins, the earliest on
// ties. Without a candidate the next city is drawn uniformly from the
// remaining ones. Works for any N ≥ 1.
//
// Complexity: O(N).
func HX(p1, p2 *tour.Tour, o distance.Oracle, src rng.Source) (*tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrMissingOracle
	}

	// remaining holds unplaced cities; where[c] is c's index in it or -1.
	var (
		remaining = make([]int, n)
		where     = make([]int, n)
		seq       = make([]int, 0, n)
		c         int
	)
	for c = 0; c < n; c++ {
		remaining[c] = c
		where[c] = c
	}
	take := func(city int) {
		i := where[city]
		last := remaining[len(remaining)-1]
		remaining[i] = last
		where[last] = i
		remaining = remaining[:len(remaining)-1]
		where[city] = -1
		seq = append(seq, city)
	}

	take(src.UniformInt(0, n-1))

	var (
		best  int
		bestD float64
		d     float64
	)
	for len(remaining) > 1 {
		c = seq[len(seq)-1]
		best, bestD = -1, math.Inf(1)
		for _, cand := range [4]int{p1.Next(c), p1.Prev(c), p2.Next(c), p2.Prev(c)} {
			if where[cand] < 0 {
				continue
			}
			d = o.Cost(c, cand)
			if math.IsInf(d, 1) {
				continue
			}
			if best < 0 || d < bestD {
				best, bestD = cand, d
			}
		}
		if best < 0 {
			best = remaining[src.UniformInt(0, len(remaining)-1)]
		}
		take(best)
	}
	if len(remaining) == 1 {
		take(remaining[0])
	}

	return assemble(ModeHX, seq, n)
}
