// Package crossover - Edge Recombination (ER).
//
// Whitley, Starkweather & Fuquay (1989). Scheduling Problems and Traveling
// Salesman: The Genetic Edge Recombination Operator. Proc. Third ICGA,
// 133–140.
//
// The edge table lists, per city, the union of its neighbors in both
// parents. Placing a city removes it from every neighbor list, so the table
// only ever holds unvisited cities.
package crossover

import (
	"fmt"

	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// ER builds one child by walking the edge table. For N < 3 it returns a
// clone of parent1.
//
// When the current city has no remaining neighbor the walk jumps to a
// uniformly chosen unvisited city that still has edges, or, failing that,
// to any unvisited city.
//
// Complexity: O(N) for the walk, O(N) per fallback jump.
func ER(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, err
	}
	if requireCities(n, 3) != nil {
		return p1.Clone(), nil
	}

	var (
		edges   = edgeTable(p1, p2)
		visited = make([]bool, n)
		seq     = make([]int, 0, n)
		current = p1.CityAt(0)
	)
	if src.UniformInt(0, 1) == 1 {
		current = p2.CityAt(0)
	}

	for {
		seq = append(seq, current)
		visited[current] = true
		for _, nb := range edges[current] {
			edges[nb] = removeCity(edges[nb], current)
		}
		if len(seq) == n {
			break
		}

		next := fewestEdges(edges, edges[current], src)
		if next < 0 {
			next = randomUnvisited(edges, visited, src)
		}
		if next < 0 {
			return nil, fmt.Errorf("%w: er ran out of cities after %d of %d", ErrInternalInconsistency, len(seq), n)
		}
		current = next
	}

	return assemble(ModeER, seq, n)
}

// edgeTable returns the deduplicated neighbor union of both parents.
func edgeTable(p1, p2 *tour.Tour) [][]int {
	var (
		n     = p1.Len()
		edges = make([][]int, n)
		c     int
	)
	for c = 0; c < n; c++ {
		list := make([]int, 0, 4)
		for _, nb := range [4]int{p1.Prev(c), p1.Next(c), p2.Prev(c), p2.Next(c)} {
			if nb != c && !containsCity(list, nb) {
				list = append(list, nb)
			}
		}
		edges[c] = list
	}

	return edges
}

// fewestEdges returns the candidate with the shortest remaining list, ties
// broken uniformly by reservoir sampling, or -1 for no candidates.
func fewestEdges(edges [][]int, candidates []int, src rng.Source) int {
	var (
		best   = -1
		fewest int
		ties   int
		count  int
	)
	for _, c := range candidates {
		count = len(edges[c])
		switch {
		case best < 0 || count < fewest:
			best, fewest, ties = c, count, 1
		case count == fewest:
			ties++
			if src.UniformInt(1, ties) == 1 {
				best = c
			}
		}
	}

	return best
}

// randomUnvisited picks uniformly among unvisited cities that still have
// edges, else among all unvisited cities. Returns -1 when none is left.
func randomUnvisited(edges [][]int, visited []bool, src rng.Source) int {
	var (
		withEdges = make([]int, 0)
		rest      = make([]int, 0)
		c         int
	)
	for c = range visited {
		if visited[c] {
			continue
		}
		if len(edges[c]) > 0 {
			withEdges = append(withEdges, c)
		} else {
			rest = append(rest, c)
		}
	}
	if len(withEdges) > 0 {
		return withEdges[src.UniformInt(0, len(withEdges)-1)]
	}
	if len(rest) > 0 {
		return rest[src.UniformInt(0, len(rest)-1)]
	}

	return -1
}

func containsCity(list []int, c int) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}

	return false
}

// removeCity deletes c from list by swap-with-last. Order is not preserved.
func removeCity(list []int, c int) []int {
	for i, x := range list {
		if x == c {
			list[i] = list[len(list)-1]
			return list[:len(list)-1]
		}
	}

	return list
}
