// Package tour_test checks the Tour invariants: the position index always
// mirrors the sequence, and every mutator keeps it so.
package tour_test

import (
	"testing"

	"github.com/katalvlaran/xover/tour"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// mustTour builds a tour or stops the test.
func mustTour(t *testing.T, cities ...int) *tour.Tour {
	t.Helper()
	tr, err := tour.New(cities)
	require.NoError(t, err)

	return tr
}

// requireIndexConsistent checks pos[seq[i]] == i for every position.
func requireIndexConsistent(t *testing.T, tr *tour.Tour) {
	t.Helper()
	require.NoError(t, tr.Validate())
	for i := 0; i < tr.Len(); i++ {
		require.Equal(t, i, tr.PositionOf(tr.CityAt(i)))
	}
}

// -----------------------------------------------------------------------------
// Construction
// -----------------------------------------------------------------------------

func TestNew_RejectsNonPermutations(t *testing.T) {
	cases := map[string][]int{
		"empty":        {},
		"duplicate":    {0, 1, 1},
		"out of range": {0, 1, 3},
		"negative":     {0, -1, 2},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tour.New(in)
			require.ErrorIs(t, err, tour.ErrInvalidPermutation)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := []int{2, 0, 1}
	tr := mustTour(t, in...)
	in[0] = 99
	require.Equal(t, []int{2, 0, 1}, tr.Cities())
}

func TestNewN_LengthContract(t *testing.T) {
	_, err := tour.NewN([]int{0, 1, 2}, 4)
	require.ErrorIs(t, err, tour.ErrInvalidPermutation)

	tr, err := tour.NewN([]int{1, 0}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, tr.Len())
}

func TestIdentity(t *testing.T) {
	tr, err := tour.Identity(5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, tr.Cities())

	_, err = tour.Identity(0)
	require.ErrorIs(t, err, tour.ErrInvalidPermutation)
}

// -----------------------------------------------------------------------------
// Cyclic queries
// -----------------------------------------------------------------------------

func TestNeighbors_Cyclic(t *testing.T) {
	tr := mustTour(t, 3, 1, 0, 2)
	require.Equal(t, 1, tr.Next(3))
	require.Equal(t, 3, tr.Next(2)) // wraps to position 0
	require.Equal(t, 2, tr.Prev(3)) // wraps to position N-1
	require.Equal(t, 1, tr.Prev(0))
	require.True(t, tr.Adjacent(2, 3))
	require.False(t, tr.Adjacent(3, 0))

	require.Equal(t, -1, tr.Next(4))
	require.Equal(t, -1, tr.PositionOf(-1))
	require.Equal(t, -1, tr.CityAt(4))
}

// -----------------------------------------------------------------------------
// Mutators
// -----------------------------------------------------------------------------

func TestSwapCities_KeepsIndex(t *testing.T) {
	tr := mustTour(t, 0, 1, 2, 3, 4)
	require.NoError(t, tr.SwapCities(1, 4))
	require.Equal(t, []int{0, 4, 2, 3, 1}, tr.Cities())
	requireIndexConsistent(t, tr)

	require.ErrorIs(t, tr.SwapCities(1, 5), tour.ErrUnknownCity)
	require.Equal(t, []int{0, 4, 2, 3, 1}, tr.Cities())
}

func TestSwapPositions_KeepsIndex(t *testing.T) {
	tr := mustTour(t, 0, 1, 2, 3, 4)
	require.NoError(t, tr.SwapPositions(0, 3))
	require.Equal(t, []int{3, 1, 2, 0, 4}, tr.Cities())
	requireIndexConsistent(t, tr)

	require.ErrorIs(t, tr.SwapPositions(-1, 3), tour.ErrIndexOutOfRange)
}

func TestReverse_Linear(t *testing.T) {
	tr := mustTour(t, 0, 1, 2, 3, 4, 5)
	require.NoError(t, tr.Reverse(1, 4))
	require.Equal(t, []int{0, 4, 3, 2, 1, 5}, tr.Cities())
	requireIndexConsistent(t, tr)

	require.ErrorIs(t, tr.Reverse(4, 1), tour.ErrIndexOutOfRange)
}

func TestReverseCyclic_Wraps(t *testing.T) {
	tr := mustTour(t, 0, 1, 2, 3, 4, 5)
	// Range 4,5,0,1 reversed in place → 1,0,5,4 at positions 4,5,0,1.
	require.NoError(t, tr.ReverseCyclic(4, 1))
	require.Equal(t, []int{5, 4, 2, 3, 1, 0}, tr.Cities())
	requireIndexConsistent(t, tr)

	// Non-wrapping path delegates to Reverse.
	tr = mustTour(t, 0, 1, 2, 3, 4, 5)
	require.NoError(t, tr.ReverseCyclic(2, 4))
	require.Equal(t, []int{0, 1, 4, 3, 2, 5}, tr.Cities())
}

func TestReverseCyclic_ComplementGivesSameCycle(t *testing.T) {
	a := mustTour(t, 0, 1, 2, 3, 4, 5, 6)
	b := a.Clone()
	require.NoError(t, a.ReverseCyclic(1, 3))
	require.NoError(t, b.ReverseCyclic(4, 0))
	require.True(t, a.EqualCycle(b))
}

// -----------------------------------------------------------------------------
// Copies and comparison
// -----------------------------------------------------------------------------

func TestSliceCopy(t *testing.T) {
	tr := mustTour(t, 5, 4, 3, 2, 1, 0)
	s, err := tr.SliceCopy(1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 2}, s)

	s, err = tr.SliceCopy(4, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 5, 4}, s)

	_, err = tr.SliceCopy(0, 6)
	require.ErrorIs(t, err, tour.ErrIndexOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	a := mustTour(t, 0, 1, 2, 3)
	b := a.Clone()
	require.NoError(t, b.SwapPositions(0, 1))
	require.Equal(t, []int{0, 1, 2, 3}, a.Cities())
	require.False(t, a.Equal(b))
}

func TestEqualCycle(t *testing.T) {
	a := mustTour(t, 0, 1, 2, 3, 4)
	require.True(t, a.EqualCycle(mustTour(t, 2, 3, 4, 0, 1))) // rotation
	require.True(t, a.EqualCycle(mustTour(t, 4, 3, 2, 1, 0))) // reflection
	require.False(t, a.EqualCycle(mustTour(t, 0, 2, 1, 3, 4)))
	require.False(t, a.EqualCycle(mustTour(t, 0, 1, 2, 3)))
}

func TestString(t *testing.T) {
	require.Equal(t, "[2 0 1]", mustTour(t, 2, 0, 1).String())
}
