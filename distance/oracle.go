// Package distance is the problem-instance collaborator of the crossover
// operators: a pure cost oracle between two cities plus the derived tour
// length and nearest-neighbor queries.
//
// Design:
//   - Oracle is a one-method interface so any instance representation
//     (matrix, coordinates, closure) can plug in.
//   - +Inf is a legal cost meaning "no direct edge"; operators treat it as an
//     unavailable candidate.
//   - Tour lengths are rounded to 1e-9 to avoid cross-platform FP drift in
//     accept/reject comparisons.
package distance

import (
	"math"
	"sort"

	"github.com/katalvlaran/xover/tour"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// Oracle returns the travel cost between two cities.
// Implementations must be pure and safe for concurrent reads.
type Oracle interface {
	Cost(a, b int) float64
}

// Bounded is an Oracle that knows its city count and rejects ids outside it.
// Callers holding tours of N cities check CheckCity(N-1) before querying.
type Bounded interface {
	Oracle
	CheckCity(c int) error
}

// Func adapts a plain function to the Oracle interface.
type Func func(a, b int) float64

// Cost implements Oracle.
func (f Func) Cost(a, b int) float64 { return f(a, b) }

// TourLength sums Cost over every cyclic edge of t, including the closing
// edge from the last city back to the first.
//
// Complexity: O(N).
func TourLength(o Oracle, t *tour.Tour) float64 {
	var n = t.Len()
	if n < 2 {
		return 0
	}
	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += o.Cost(t.CityAt(i), t.CityAt(i+1))
	}
	sum += o.Cost(t.CityAt(n-1), t.CityAt(0))

	return round1e9(sum)
}

// NearestNeighbors returns up to k cities closest to c among {0..n-1}\{c},
// nearest first; ties are broken by city id for determinism.
//
// Complexity: O(n log n).
func NearestNeighbors(o Oracle, n, c, k int) []int {
	if n <= 1 || k <= 0 || c < 0 || c >= n {
		return nil
	}
	type cand struct {
		city int
		cost float64
	}
	cands := make([]cand, 0, n-1)

	var i int
	for i = 0; i < n; i++ {
		if i == c {
			continue
		}
		cands = append(cands, cand{city: i, cost: o.Cost(c, i)})
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].cost != cands[b].cost {
			return cands[a].cost < cands[b].cost
		}
		return cands[a].city < cands[b].city
	})
	if k > len(cands) {
		k = len(cands)
	}
	out := make([]int, k)
	for i = 0; i < k; i++ {
		out[i] = cands[i].city
	}

	return out
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
