// Package crossover - Maximal Preservative Crossover (MPX).
//
// Mühlenbein, Gorges-Schleuter & Krämer (1988). Evolution algorithms in
// combinatorial optimization. Parallel Computing 7(1), 65–85.
package crossover

import (
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// mpxLongMin is the minimum donor length once N exceeds mpxLongThreshold.
const (
	mpxLongMin       = 10
	mpxLongThreshold = 30
)

// MPX copies a donor segment [begin, end) of each parent to the front of the
// matching child and appends the other parent's remaining cities in order.
// The segment length lies in [Lmin, N/2] with Lmin = 10 for N > 30 and
// Lmin = U(1, N/2-1) otherwise. For N < 4, or identical parents, MPX returns
// clones.
//
// Complexity: O(N) per child plus rejection sampling of the segment.
func MPX(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, *tour.Tour, error) {
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	if requireCities(n, 4) != nil || p1.Equal(p2) {
		c1, c2 := clonePair(p1, p2)
		return c1, c2, nil
	}

	var (
		lmax = n / 2
		lmin = mpxLongMin
	)
	if n <= mpxLongThreshold {
		lmin = src.UniformInt(1, lmax-1)
	}

	var begin, end int
	for {
		begin = src.UniformInt(0, n-2)
		end = src.UniformInt(begin+1, n-1)
		if l := end - begin; l >= lmin && l <= lmax {
			break
		}
	}

	c1, err := assemble(ModeMPX, segmentThenOrder(p1, p2, begin, end), n)
	if err != nil {
		return nil, nil, err
	}
	c2, err := assemble(ModeMPX, segmentThenOrder(p2, p1, begin, end), n)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// segmentThenOrder returns donor[begin:end] followed by the other parent's
// cities not in that segment, in the other parent's order.
func segmentThenOrder(donor, other *tour.Tour, begin, end int) []int {
	var (
		n      = donor.Len()
		seq    = make([]int, 0, n)
		placed = make([]bool, n)
		k      int
		c      int
	)
	for k = begin; k < end; k++ {
		c = donor.CityAt(k)
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
