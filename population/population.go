// Package population holds the read-only reference population consulted by
// the local-search and consensus operators, and the tournament selection
// collaborator used by voting recombination.
//
// A Population is owned by the caller (the GA driver). Nothing in this
// package mutates its tours.
package population

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

var (
	// ErrEmpty signals a population with no tours.
	ErrEmpty = errors.New("population: empty")

	// ErrSizeMismatch signals a tour whose city count differs from the instance.
	ErrSizeMismatch = errors.New("population: tour size mismatch")

	// ErrNilTour signals a nil entry.
	ErrNilTour = errors.New("population: nil tour")

	// ErrBadGroupSize signals a non-positive tournament group size.
	ErrBadGroupSize = errors.New("population: group size must be > 0")

	// ErrNilOracle signals a Tournament built without a distance oracle.
	ErrNilOracle = errors.New("population: nil oracle")
)

// Population is an ordered, read-only collection of tours.
type Population []*tour.Tour

// Validate checks that the population is non-empty and every tour has n cities.
//
// Complexity: O(len(p)).
func (p Population) Validate(n int) error {
	if len(p) == 0 {
		return ErrEmpty
	}
	var i int
	for i = 0; i < len(p); i++ {
		if p[i] == nil {
			return fmt.Errorf("%w: index %d", ErrNilTour, i)
		}
		if p[i].Len() != n {
			return fmt.Errorf("%w: index %d has %d cities, want %d", ErrSizeMismatch, i, p[i].Len(), n)
		}
	}

	return nil
}

// Random builds size uniformly random tours over n cities.
//
// Complexity: O(size·n).
func Random(n, size int, src rng.Source) (Population, error) {
	if size <= 0 {
		return nil, ErrEmpty
	}
	out := make(Population, size)

	var (
		i   int
		err error
	)
	for i = 0; i < size; i++ {
		out[i], err = tour.New(rng.Perm(src, n))
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Best returns the index and length of the shortest tour under o.
//
// Complexity: O(len(p)·n).
func (p Population) Best(o distance.Oracle) (int, float64) {
	var (
		best    = -1
		bestLen = math.Inf(1)
		i       int
		l       float64
	)
	for i = 0; i < len(p); i++ {
		l = distance.TourLength(o, p[i])
		if best == -1 || l < bestLen {
			best, bestLen = i, l
		}
	}

	return best, bestLen
}

// Tournament is the selection collaborator: it samples GroupSize tours
// uniformly with replacement and returns the shortest one.
type Tournament struct {
	Oracle distance.Oracle
}

// Tournament implements the crossover Selector contract. The returned tour is
// the population's own instance and must be treated as read-only.
//
// Complexity: O(groupSize·n).
func (s Tournament) Tournament(pop []*tour.Tour, groupSize int, src rng.Source) (*tour.Tour, error) {
	if len(pop) == 0 {
		return nil, ErrEmpty
	}
	if groupSize <= 0 {
		return nil, ErrBadGroupSize
	}
	if s.Oracle == nil {
		return nil, ErrNilOracle
	}
	var (
		best    *tour.Tour
		bestLen float64
		cand    *tour.Tour
		l       float64
		k       int
	)
	for k = 0; k < groupSize; k++ {
		cand = pop[src.UniformInt(0, len(pop)-1)]
		if cand == nil {
			return nil, ErrNilTour
		}
		l = distance.TourLength(s.Oracle, cand)
		if best == nil || l < bestLen {
			best, bestLen = cand, l
		}
	}

	return best, nil
}
