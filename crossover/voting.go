// Package crossover - Voting Recombination (VR).
//
// Mühlenbein (1989). Parallel Genetic Algorithms, Population Genetics and
// Combinatorial Optimization. Proc. Third ICGA, 416–421.
package crossover

import (
	"fmt"

	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// voteGroupSize is the tournament size used to pick the two voters.
const voteGroupSize = 5

// unresolved marks a child position that no vote settled.
const unresolved = -1

// VR builds one child by position-wise voting among the parents and two
// tournament winners drawn from pop. A position is fixed when three of the
// four tours agree on it, or when both parents agree with one winner. Other
// positions take the unused cities in random order. A child equal to parent1
// gets two random distinct positions swapped.
//
// Complexity: O(N) plus two tournaments.
func VR(p1, p2 *tour.Tour, pop []*tour.Tour, sel Selector, src rng.Source) (*tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return nil, ErrMissingSelector
	}
	if err = checkPopulation(pop, n); err != nil {
		return nil, err
	}

	w1, err := sel.Tournament(pop, voteGroupSize, src)
	if err != nil {
		return nil, fmt.Errorf("crossover: %s: %w", ModeVR, err)
	}
	w2, err := sel.Tournament(pop, voteGroupSize, src)
	if err != nil {
		return nil, fmt.Errorf("crossover: %s: %w", ModeVR, err)
	}
	if w1 == nil || w2 == nil || w1.Len() != n || w2.Len() != n {
		return nil, fmt.Errorf("%w: selector returned an unusable tour", ErrMissingPopulation)
	}

	var (
		seq  = make([]int, n)
		used = make([]bool, n)
		i    int
		v    int
	)
	for i = 0; i < n; i++ {
		v = vote(p1.CityAt(i), p2.CityAt(i), w1.CityAt(i), w2.CityAt(i))
		if v != unresolved && used[v] {
			v = unresolved
		}
		seq[i] = v
		if v != unresolved {
			used[v] = true
		}
	}

	pool := make([]int, 0, n)
	for v = 0; v < n; v++ {
		if !used[v] {
			pool = append(pool, v)
		}
	}
	src.Shuffle(len(pool), func(a, b int) { pool[a], pool[b] = pool[b], pool[a] })
	var k int
	for i = 0; i < n; i++ {
		if seq[i] == unresolved {
			seq[i] = pool[k]
			k++
		}
	}

	child, err := assemble(ModeVR, seq, n)
	if err != nil {
		return nil, err
	}
	if n >= 2 && child.Equal(p1) {
		a := src.UniformInt(0, n-1)
		b := src.UniformInt(0, n-2)
		if b >= a {
			b++
		}
		if err = child.SwapPositions(a, b); err != nil {
			return nil, err
		}
	}

	return child, nil
}

// vote settles one position from the parents' cities a, b and the winners'
// cities x, y, or returns unresolved.
func vote(a, b, x, y int) int {
	switch {
	case a == b && (a == x || a == y):
		return a
	case a == x && a == y:
		return a
	case b == x && b == y:
		return b
	default:
		return unresolved
	}
}
