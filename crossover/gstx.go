// Package crossover - Greedy Subtour Crossover (GSTX).
//
// Sengoku & Yoshihara (1998). A Fast TSP Solver Using GA on JAVA.
// Proc. AROB III.
package crossover

import (
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// GSTX grows a subtour around a random pivot city: alternately it prepends
// the parent1 predecessor of the left end and appends the parent2 successor
// of the right end, each direction stopping for good at its first repeat.
// Cities left over are shuffled and each one is put at the front or the back
// with equal probability.
//
// Complexity: O(N).
func GSTX(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, err
	}

	var (
		pivot  = src.UniformInt(0, n-1)
		placed = make([]bool, n)
		front  = make([]int, 0, n) // prepended cities, innermost first
		back   = make([]int, 0, n) // appended cities, pivot first
		left   = pivot
		right  = pivot
		goL    = true
		goR    = true
	)
	placed[pivot] = true
	back = append(back, pivot)

	for goL || goR {
		if goL {
			left = p1.Prev(left)
			if placed[left] {
				goL = false
			} else {
				placed[left] = true
				front = append(front, left)
			}
		}
		if goR {
			right = p2.Next(right)
			if placed[right] {
				goR = false
			} else {
				placed[right] = true
				back = append(back, right)
			}
		}
	}

	if len(front)+len(back) < n {
		rest := make([]int, 0, n-len(front)-len(back))
		var k, c int
		for k = 0; k < n; k++ {
			c = p1.CityAt(k)
			if !placed[c] {
				rest = append(rest, c)
			}
		}
		src.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
		for _, c = range rest {
			if src.UniformInt(0, 1) == 1 {
				front = append(front, c)
			} else {
				back = append(back, c)
			}
		}
	}

	seq := make([]int, 0, n)
	var i int
	for i = len(front) - 1; i >= 0; i-- {
		seq = append(seq, front[i])
	}
	seq = append(seq, back...)

	return assemble(ModeGSTX, seq, n)
}
