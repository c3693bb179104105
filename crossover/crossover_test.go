// Package crossover_test exercises the Crossover dispatcher and Mode through
// the public API. Focus: permutation validity for every mode and size, seed
// determinism, collaborator checks and the HX edge choice.
package crossover_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/xover/crossover"
	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/population"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Dispatcher invariants: every mode, every size
// -----------------------------------------------------------------------------

func TestCrossover_EveryModeKeepsPermutation(t *testing.T) {
	for _, m := range crossover.Modes() {
		for _, n := range sizes {
			t.Run(fmt.Sprintf("%s/n=%d", m, n), func(t *testing.T) {
				f := newFixture(t, n, int64(n)*31+int64(m))
				before1, before2 := f.p1.Cities(), f.p2.Cities()

				var seed int64
				for seed = 1; seed <= 20; seed++ {
					kids, err := crossover.Crossover(m, f.p1, f.p2, rng.New(seed), f.options()...)
					require.NoError(t, err)
					require.Len(t, kids, m.Children())
					for _, k := range kids {
						requirePermutation(t, k, n)
					}
				}
				require.Equal(t, before1, f.p1.Cities(), "parent1 modified")
				require.Equal(t, before2, f.p2.Cities(), "parent2 modified")
			})
		}
	}
}

func TestCrossover_Deterministic(t *testing.T) {
	f := newFixture(t, 17, seedDet)
	for _, m := range crossover.Modes() {
		a, err := crossover.Crossover(m, f.p1, f.p2, rng.New(7), f.options()...)
		require.NoError(t, err)
		b, err := crossover.Crossover(m, f.p1, f.p2, rng.New(7), f.options()...)
		require.NoError(t, err)
		require.Len(t, b, len(a))
		for i := range a {
			require.True(t, a[i].Equal(b[i]), "%s child %d differs between equal seeds", m, i)
		}
	}
}

func TestCrossover_IdenticalParentsStable(t *testing.T) {
	stable := []crossover.Mode{
		crossover.ModeIdentity, crossover.ModePMX, crossover.ModeOX1, crossover.ModeOX2,
		crossover.ModeMOX, crossover.ModePOS, crossover.ModeCX, crossover.ModeAP, crossover.ModeMPX,
	}
	for _, n := range sizes {
		f := newFixture(t, n, seedDet)
		for _, m := range stable {
			kids, err := crossover.Crossover(m, f.p1, f.p1.Clone(), rng.New(int64(n)))
			require.NoError(t, err)
			for _, k := range kids {
				require.True(t, k.Equal(f.p1), "%s n=%d: %v != %v", m, n, k, f.p1)
			}
		}
	}
}

// -----------------------------------------------------------------------------
// Collaborator checks
// -----------------------------------------------------------------------------

func TestCrossover_Errors(t *testing.T) {
	f := newFixture(t, 6, seedDet)
	src := rng.New(1)

	_, err := crossover.Crossover(crossover.Mode(99), f.p1, f.p2, src)
	require.ErrorIs(t, err, crossover.ErrUnknownMode)

	_, err = crossover.Crossover(crossover.ModePMX, f.p1, nil, src)
	require.ErrorIs(t, err, crossover.ErrParentMismatch)

	short := mustTour(t, 0, 1, 2)
	_, err = crossover.Crossover(crossover.ModeOX1, f.p1, short, src)
	require.ErrorIs(t, err, crossover.ErrParentMismatch)

	for _, m := range []crossover.Mode{crossover.ModeDPX, crossover.ModeIO, crossover.ModeMIO, crossover.ModeHX} {
		_, err = crossover.Crossover(m, f.p1, f.p2, src, crossover.WithPopulation(f.pop))
		require.ErrorIs(t, err, crossover.ErrMissingOracle, m.String())
	}

	for _, m := range []crossover.Mode{crossover.ModeIO, crossover.ModeMIO, crossover.ModeVR} {
		_, err = crossover.Crossover(m, f.p1, f.p2, src, crossover.WithOracle(f.oracle), crossover.WithSelector(f.sel))
		require.ErrorIs(t, err, crossover.ErrMissingPopulation, m.String())
	}

	mixed := []*tour.Tour{f.p1, short}
	_, err = crossover.Crossover(crossover.ModeIO, f.p1, f.p2, src, crossover.WithOracle(f.oracle), crossover.WithPopulation(mixed))
	require.ErrorIs(t, err, crossover.ErrMissingPopulation)

	_, err = crossover.Crossover(crossover.ModeVR, f.p1, f.p2, src, crossover.WithPopulation(f.pop))
	require.ErrorIs(t, err, crossover.ErrMissingSelector)
}

func TestCrossover_OracleTooSmall(t *testing.T) {
	f := newFixture(t, 6, seedDet)
	small, err := distance.Euclidean([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	for _, m := range []crossover.Mode{crossover.ModeDPX, crossover.ModeIO, crossover.ModeMIO, crossover.ModeHX} {
		_, err = crossover.Crossover(m, f.p1, f.p2, rng.New(1), crossover.WithOracle(small), crossover.WithPopulation(f.pop))
		require.ErrorIs(t, err, distance.ErrCityOutOfRange, m.String())
	}

	// Modes that never query the oracle ignore its size.
	_, err = crossover.Crossover(crossover.ModePMX, f.p1, f.p2, rng.New(1), crossover.WithOracle(small))
	require.NoError(t, err)
}

func TestCrossover_VRSelectorWithoutOracle(t *testing.T) {
	f := newFixture(t, 6, seedDet)

	// A zero-value Tournament passes the nil-selector check but cannot rank.
	kids, err := crossover.Crossover(crossover.ModeVR, f.p1, f.p2, rng.New(1),
		crossover.WithPopulation(f.pop), crossover.WithSelector(population.Tournament{}))
	require.ErrorIs(t, err, population.ErrNilOracle)
	require.Nil(t, kids)
}

func TestCrossover_IdentityClones(t *testing.T) {
	f := newFixture(t, 5, seedDet)
	kids, err := crossover.Crossover(crossover.ModeIdentity, f.p1, f.p2, rng.New(1))
	require.NoError(t, err)
	require.Len(t, kids, 2)
	require.True(t, kids[0].Equal(f.p1))
	require.True(t, kids[1].Equal(f.p2))

	require.NoError(t, kids[0].SwapPositions(0, 1))
	require.False(t, kids[0].Equal(f.p1), "clone must not share storage")
}

// -----------------------------------------------------------------------------
// Mode and Options
// -----------------------------------------------------------------------------

func TestMode_ParseAndString(t *testing.T) {
	for _, m := range crossover.Modes() {
		got, err := crossover.ParseMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}

	got, err := crossover.ParseMode("  PMX ")
	require.NoError(t, err)
	require.Equal(t, crossover.ModePMX, got)

	_, err = crossover.ParseMode("nope")
	require.ErrorIs(t, err, crossover.ErrUnknownMode)

	require.Equal(t, "mode(99)", crossover.Mode(99).String())
	require.False(t, crossover.Mode(-1).Valid())
	require.Len(t, crossover.Modes(), 16)
}

func TestMode_Requirements(t *testing.T) {
	require.Equal(t, 2, crossover.ModePMX.Children())
	require.Equal(t, 1, crossover.ModeER.Children())
	require.True(t, crossover.ModeHX.NeedsOracle())
	require.False(t, crossover.ModeER.NeedsOracle())
	require.True(t, crossover.ModeVR.NeedsPopulation())
	require.False(t, crossover.ModeDPX.NeedsPopulation())
}

func TestOptions_NilOptionIgnored(t *testing.T) {
	f := newFixture(t, 6, seedDet)
	kids, err := crossover.Crossover(crossover.ModeHX, f.p1, f.p2, rng.New(1), nil, crossover.WithOracle(f.oracle))
	require.NoError(t, err)
	requirePermutation(t, kids[0], 6)
}

// -----------------------------------------------------------------------------
// HX: cost-guided edge choice
// -----------------------------------------------------------------------------

func TestHX_FallbackWithoutFiniteEdges(t *testing.T) {
	p1 := mustTour(t, 0, 1, 2, 3)
	p2 := mustTour(t, 3, 1, 0, 2)
	var blocked distance.Func = func(a, b int) float64 { return math.Inf(1) }

	child, err := crossover.HX(p1, p2, blocked, fixedSource{})
	require.NoError(t, err)
	// Start at city 0, then the remaining cities in swap-delete order.
	require.Equal(t, []int{0, 3, 2, 1}, child.Cities())

	child, err = crossover.HX(p1, p2, blocked, rng.New(5))
	require.NoError(t, err)
	requirePermutation(t, child, 4)
}

func TestHX_FollowsCheapestParentEdge(t *testing.T) {
	p1 := mustTour(t, 0, 1, 2, 3, 4)
	p2 := mustTour(t, 0, 2, 4, 1, 3)
	// Unit cost between neighbors on the identity ring, 10 otherwise.
	var ring distance.Func = func(a, b int) float64 {
		d := a - b
		if d < 0 {
			d = -d
		}
		if d == 1 || d == 4 {
			return 1
		}
		return 10
	}

	child, err := crossover.HX(p1, p2, ring, fixedSource{})
	require.NoError(t, err)
	require.True(t, child.EqualCycle(p1), "got %v", child)
}
