// Package tour is the permutation core shared by every crossover operator.
//
// A Tour is an ordered sequence of N distinct cities 0..N-1 interpreted as a
// cycle: the city after the last position is the city at position 0.
// Alongside the sequence, a Tour keeps an inverse index (city → position) so
// that every operator can answer "where is city c?" and "who are the
// neighbors of c?" in O(1).
//
// Invariant:
//
//	for every position i:  pos[seq[i]] == i
//	seq is a permutation of {0..N-1}
//
// Every exported mutator (SwapCities, SwapPositions, Reverse, ReverseCyclic)
// updates both views together, so the index can never go stale. Operators
// that assemble a child from scratch build a plain []int and pass it through
// New, which re-validates the bijection.
//
// Design:
//   - No logging, no panics on user input; sentinel errors from errors.go.
//   - Constructors copy their input; callers keep ownership of their slices.
//   - Not safe for concurrent mutation. Read-only sharing is fine.
//
// Complexity:
//   - PositionOf, CityAt, Next, Prev, SwapCities, SwapPositions: O(1).
//   - New, Clone, Validate, SliceCopy: O(N).
//   - Reverse, ReverseCyclic: O(length of the reversed range).
package tour
