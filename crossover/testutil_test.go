// Package crossover_test holds the fixtures shared by the operator tests:
// random Euclidean instances, a draw-nothing Source for scripted walks and a
// fixed-winner selector for VR.
package crossover_test

import (
	"testing"

	"github.com/katalvlaran/xover/crossover"
	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/population"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// popSize is the reference population size used by fixtures.
	popSize = 8
	// seedDet is the fixed seed for fixtures that must not vary.
	seedDet = int64(42)
)

// sizes covers degenerate, boundary and ordinary instance sizes.
var sizes = []int{1, 2, 3, 4, 5, 6, 9, 17, 40}

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// fixture is a random instance with everything the operators may need.
type fixture struct {
	n      int
	oracle *distance.Matrix
	pop    population.Population
	sel    population.Tournament
	p1, p2 *tour.Tour
}

func newFixture(t testing.TB, n int, seed int64) fixture {
	t.Helper()
	src := rng.New(seed)

	points := make([][2]float64, n)
	for i := range points {
		points[i] = [2]float64{src.Float64() * 100, src.Float64() * 100}
	}
	m, err := distance.Euclidean(points)
	require.NoError(t, err)

	pop, err := population.Random(n, popSize, src)
	require.NoError(t, err)

	return fixture{
		n:      n,
		oracle: m,
		pop:    pop,
		sel:    population.Tournament{Oracle: m},
		p1:     mustTour(t, rng.Perm(src, n)...),
		p2:     mustTour(t, rng.Perm(src, n)...),
	}
}

// options returns every collaborator a mode may ask for.
func (f fixture) options() []crossover.Option {
	return []crossover.Option{
		crossover.WithOracle(f.oracle),
		crossover.WithPopulation(f.pop),
		crossover.WithSelector(f.sel),
		crossover.WithGeneration(3, 10),
	}
}

func mustTour(t testing.TB, cities ...int) *tour.Tour {
	t.Helper()
	tr, err := tour.New(cities)
	require.NoError(t, err)

	return tr
}

// requirePermutation checks that tr is a valid tour over n cities.
func requirePermutation(t *testing.T, tr *tour.Tour, n int) {
	t.Helper()
	require.NotNil(t, tr)
	require.Equal(t, n, tr.Len())
	require.NoError(t, tr.Validate())
}

// -----------------------------------------------------------------------------
// Scripted collaborators
// -----------------------------------------------------------------------------

// fixedSource always answers the lowest legal value and never shuffles.
type fixedSource struct{}

func (fixedSource) UniformInt(lo, _ int) int { return lo }
func (fixedSource) Bernoulli(float64) bool { return false }
func (fixedSource) Float64() float64 { return 0 }
func (fixedSource) Shuffle(int, func(i, j int)) {}

// stubSelector always returns the same tour.
type stubSelector struct{ winner *tour.Tour }

func (s stubSelector) Tournament([]*tour.Tour, int, rng.Source) (*tour.Tour, error) {
	return s.winner, nil
}
