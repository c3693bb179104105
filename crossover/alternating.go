// Package crossover - Alternating-Position Crossover (AP).
//
// Larrañaga, Kuijpers, Poza & Murga (1997). Decomposing Bayesian networks:
// triangulation of the moral graph with genetic algorithms. Statistics and
// Computing 7(1), 19–34.
package crossover

import (
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// AP interleaves the parents, first[0], second[0], first[1], second[1], ...,
// skipping cities already taken. Child1 starts with parent1, child2 with
// parent2. The src argument is unused.
//
// Complexity: O(N).
func AP(p1, p2 *tour.Tour, _ rng.Source) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}

	c1, err := assemble(ModeAP, alternate(p1, p2), n)
	if err != nil {
		return nil, nil, err
	}
	c2, err := assemble(ModeAP, alternate(p2, p1), n)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

func alternate(first, second *tour.Tour) []int {
	var (
		n      = first.Len()
		seq    = make([]int, 0, n)
		placed = make([]bool, n)
		k      int
	)
	take := func(c int) {
		if !placed[c] {
			placed[c] = true
			seq = append(seq, c)
		}
	}
	for k = 0; k < n; k++ {
		take(first.CityAt(k))
		take(second.CityAt(k))
	}

	return seq
}
