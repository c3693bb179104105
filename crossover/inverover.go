// Package crossover - Inver-over (IO) and Modified Inver-over (MIO).
//
// IO:  Tao & Michalewicz (1998). Inver-over Operator for the TSP.
// Proc. PPSN V, LNCS 1498, 803–812.
// MIO: Wang, Zhang, Qiu & Cui (2012). A Modified Inver-over Operator for the
// Traveling Salesman Problem. ICIC 2011, LNCS 6840, 17–23.
//
// Both operators run a bounded local search on a copy of parent1. Each step
// picks a target city c' and inverts a cyclic range so that c' becomes the
// successor of the current city c. Of the two complementary ranges that
// achieve this, the shorter one is reversed; reversing the complement leaves
// c' on the other physical side of c, which the forward flag records.
package crossover

import (
	"math"

	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

const (
	// ioRandomProb is the chance of drawing c' at random instead of from the
	// population (Prd).
	ioRandomProb = 0.02
	// ioStepFactor bounds the inversions per call to ioStepFactor·N.
	ioStepFactor = 4
	// mioNeighbors is how many nearest cities the MIO random branch uses.
	mioNeighbors = 5
	// mioUpdateMax and mioUpdateMin bound the anchor-update probability Puc.
	mioUpdateMax = 0.5
	mioUpdateMin = 0.2
)

// IO applies inver-over to parent1 guided by pop. The result is accepted only
// when strictly shorter than parent1; otherwise a clone of parent1 returns.
// For N ≤ 3 it returns a clone.
//
// Complexity: O(N²) worst case (4·N inversions of O(N) each).
func IO(p1 *tour.Tour, pop []*tour.Tour, o distance.Oracle, src rng.Source) (*tour.Tour, error) {
	return invertOver(ModeIO, p1, pop, o, src, ioConfig{updateProb: 1})
}

// MIO is IO with two changes: the random branch draws c' among the five
// nearest neighbors of c, and c advances to c' only with probability
// Puc = 0.5·exp(ln(0.2/0.5)/maxGen·gen). maxGen ≤ 0 keeps Puc at 0.5.
//
// Complexity: as IO plus O(N log N) per distinct city queried for neighbors.
func MIO(p1 *tour.Tour, pop []*tour.Tour, o distance.Oracle, src rng.Source, gen, maxGen int) (*tour.Tour, error) {
	return invertOver(ModeMIO, p1, pop, o, src, ioConfig{
		nearest:    true,
		updateProb: AnchorUpdateProb(gen, maxGen),
	})
}

// AnchorUpdateProb returns the MIO anchor-update probability for generation
// gen of maxGen. It decays from 0.5 at gen = 0 to 0.2 at gen = maxGen; gen is
// clamped into [0, maxGen] so the result never leaves that band.
func AnchorUpdateProb(gen, maxGen int) float64 {
	if maxGen <= 0 {
		return mioUpdateMax
	}
	gen = max(0, min(gen, maxGen))

	return mioUpdateMax * math.Exp(math.Log(mioUpdateMin/mioUpdateMax)/float64(maxGen)*float64(gen))
}

type ioConfig struct {
	nearest    bool
	updateProb float64
}

func invertOver(m Mode, p1 *tour.Tour, pop []*tour.Tour, o distance.Oracle, src rng.Source, cfg ioConfig) (*tour.Tour, error) {
	if p1 == nil || p1.Len() == 0 {
		return nil, ErrParentMismatch
	}
	if o == nil {
		return nil, ErrMissingOracle
	}
	var n = p1.Len()
	if err := checkPopulation(pop, n); err != nil {
		return nil, err
	}
	if requireCities(n, 4) != nil {
		return p1.Clone(), nil
	}

	var (
		s       = p1.Clone()
		c       = src.UniformInt(0, n-1)
		forward = true
		nearest [][]int
		target  int
		step    int
	)
	if cfg.nearest {
		nearest = make([][]int, n)
	}

	for step = 0; step < ioStepFactor*n; step++ {
		if src.Bernoulli(ioRandomProb) {
			target = randomTarget(o, n, c, nearest, src)
		} else {
			target = pop[src.UniformInt(0, len(pop)-1)].Next(c)
		}
		if s.Next(c) == target || s.Prev(c) == target {
			break
		}

		if err := makeSuccessor(s, c, target, &forward); err != nil {
			return nil, err
		}
		if cfg.updateProb >= 1 || src.Bernoulli(cfg.updateProb) {
			c = target
		}
	}
	if err := verify(m, s); err != nil {
		return nil, err
	}

	if distance.TourLength(o, s) < distance.TourLength(o, p1) {
		return s, nil
	}

	return p1.Clone(), nil
}

// randomTarget draws c' ≠ c uniformly, or among the nearest neighbors of c
// when nearest is non-nil (lazily filled per city).
func randomTarget(o distance.Oracle, n, c int, nearest [][]int, src rng.Source) int {
	if nearest != nil {
		if nearest[c] == nil {
			k := mioNeighbors
			if k > n-1 {
				k = n - 1
			}
			nearest[c] = distance.NearestNeighbors(o, n, c, k)
		}
		if len(nearest[c]) > 0 {
			return nearest[c][src.UniformInt(0, len(nearest[c])-1)]
		}
	}
	t := src.UniformInt(0, n-2)
	if t >= c {
		t++
	}

	return t
}

// makeSuccessor makes target the logical successor of c in s by reversing
// the shorter of two complementary cyclic ranges.
//
// With forward set, successor means the next position and the candidate
// ranges are [i+1, j] and its complement [j+1, i]; otherwise successor means
// the previous position and the ranges are [j, i-1] and [i, j-1]. Reversing
// the complement flips forward.
func makeSuccessor(s *tour.Tour, c, target int, forward *bool) error {
	var (
		n        = s.Len()
		i        = s.PositionOf(c)
		j        = s.PositionOf(target)
		from, to int
	)
	if *forward {
		from, to = (i+1)%n, j
	} else {
		from, to = j, (i-1+n)%n
	}

	// Range [from, to] holds CyclicDistance+1 cities; the complement the rest.
	if inner := s.CyclicDistance(from, to) + 1; 2*inner <= n {
		return s.ReverseCyclic(from, to)
	}
	*forward = !*forward

	return s.ReverseCyclic((to+1)%n, (from-1+n)%n)
}

// checkPopulation requires a non-empty population of non-nil size-n tours.
func checkPopulation(pop []*tour.Tour, n int) error {
	if len(pop) == 0 {
		return ErrMissingPopulation
	}
	for _, t := range pop {
		if t == nil || t.Len() != n {
			return ErrMissingPopulation
		}
	}

	return nil
}
