// Package tour - construction and read-only queries.
//
// Queries never fail loudly: PositionOf/CityAt/Next/Prev return -1 for
// out-of-range arguments so that hot loops stay branch-light and allocation
// free. Mutators (see mutate.go) return sentinel errors instead.
package tour

import (
	"fmt"
	"strings"
)

// Tour is a cyclic permutation of the cities {0..N-1} with an O(1) inverse
// index. The zero value is an empty tour; use New or Identity.
type Tour struct {
	seq []int // seq[i] = city at position i
	pos []int // pos[c] = position of city c
}

// New builds a Tour from an ordered sequence of cities. The input is copied.
// Returns ErrInvalidPermutation if cities is empty or not a permutation of
// {0..len(cities)-1}.
//
// Complexity: O(N) time, O(N) space.
func New(cities []int) (*Tour, error) {
	var n = len(cities)
	if n == 0 {
		return nil, ErrInvalidPermutation
	}

	t := &Tour{
		seq: make([]int, n),
		pos: make([]int, n),
	}
	var (
		i int
		c int
	)
	for i = 0; i < n; i++ {
		t.pos[i] = -1
	}
	for i = 0; i < n; i++ {
		c = cities[i]
		if c < 0 || c >= n {
			return nil, fmt.Errorf("%w: city %d out of [0,%d)", ErrInvalidPermutation, c, n)
		}
		if t.pos[c] != -1 {
			return nil, fmt.Errorf("%w: city %d repeated at positions %d and %d", ErrInvalidPermutation, c, t.pos[c], i)
		}
		t.seq[i] = c
		t.pos[c] = i
	}

	return t, nil
}

// NewN is New with an explicit size contract: len(cities) must equal n.
//
// Complexity: O(N).
func NewN(cities []int, n int) (*Tour, error) {
	if len(cities) != n {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidPermutation, len(cities), n)
	}

	return New(cities)
}

// Identity returns the tour 0,1,...,n-1. n must be positive.
//
// Complexity: O(N).
func Identity(n int) (*Tour, error) {
	if n <= 0 {
		return nil, ErrInvalidPermutation
	}
	t := &Tour{
		seq: make([]int, n),
		pos: make([]int, n),
	}
	var i int
	for i = 0; i < n; i++ {
		t.seq[i] = i
		t.pos[i] = i
	}

	return t, nil
}

// Clone returns an independent deep copy.
//
// Complexity: O(N).
func (t *Tour) Clone() *Tour {
	if t == nil {
		return nil
	}
	c := &Tour{
		seq: make([]int, len(t.seq)),
		pos: make([]int, len(t.pos)),
	}
	copy(c.seq, t.seq)
	copy(c.pos, t.pos)

	return c
}

// Len returns the number of cities N.
func (t *Tour) Len() int {
	if t == nil {
		return 0
	}

	return len(t.seq)
}

// Cities returns a copy of the underlying sequence.
func (t *Tour) Cities() []int {
	out := make([]int, len(t.seq))
	copy(out, t.seq)

	return out
}

// CityAt returns the city at position i, or -1 if i is out of range.
func (t *Tour) CityAt(i int) int {
	if i < 0 || i >= len(t.seq) {
		return -1
	}

	return t.seq[i]
}

// PositionOf returns the position of city c, or -1 if c is unknown.
func (t *Tour) PositionOf(c int) int {
	if c < 0 || c >= len(t.pos) {
		return -1
	}

	return t.pos[c]
}

// Contains reports whether c is a city of this tour.
func (t *Tour) Contains(c int) bool {
	return c >= 0 && c < len(t.pos)
}

// Next returns the cyclic successor of city c, or -1 if c is unknown.
func (t *Tour) Next(c int) int {
	if c < 0 || c >= len(t.pos) {
		return -1
	}
	var i = t.pos[c] + 1
	if i == len(t.seq) {
		i = 0
	}

	return t.seq[i]
}

// Prev returns the cyclic predecessor of city c, or -1 if c is unknown.
func (t *Tour) Prev(c int) int {
	if c < 0 || c >= len(t.pos) {
		return -1
	}
	var i = t.pos[c] - 1
	if i < 0 {
		i = len(t.seq) - 1
	}

	return t.seq[i]
}

// Adjacent reports whether a and b are cyclic neighbors.
func (t *Tour) Adjacent(a, b int) bool {
	return t.Next(a) == b || t.Prev(a) == b
}

// SliceCopy returns the cities at positions lo..hi inclusive, in tour order.
// When lo > hi the range wraps past the end: lo..N-1 followed by 0..hi.
//
// Complexity: O(length of the range).
func (t *Tour) SliceCopy(lo, hi int) ([]int, error) {
	var n = len(t.seq)
	if lo < 0 || lo >= n || hi < 0 || hi >= n {
		return nil, ErrIndexOutOfRange
	}
	if lo <= hi {
		out := make([]int, hi-lo+1)
		copy(out, t.seq[lo:hi+1])

		return out, nil
	}
	out := make([]int, 0, n-lo+hi+1)
	out = append(out, t.seq[lo:]...)
	out = append(out, t.seq[:hi+1]...)

	return out, nil
}

// Equal reports whether both tours hold the same sequence position by position.
func (t *Tour) Equal(o *Tour) bool {
	if t.Len() != o.Len() {
		return false
	}
	var i int
	for i = 0; i < len(t.seq); i++ {
		if t.seq[i] != o.seq[i] {
			return false
		}
	}

	return true
}

// EqualCycle reports whether both tours describe the same undirected cycle,
// i.e. they are equal up to rotation and reflection.
//
// Complexity: O(N).
func (t *Tour) EqualCycle(o *Tour) bool {
	if t.Len() != o.Len() {
		return false
	}
	var (
		c       int
		forward = true
		reverse = true
	)
	for c = 0; c < len(t.seq); c++ {
		if t.Next(c) != o.Next(c) {
			forward = false
		}
		if t.Next(c) != o.Prev(c) {
			reverse = false
		}
		if !forward && !reverse {
			return false
		}
	}

	return true
}

// Validate re-checks the permutation invariant and the consistency of the
// position index. It returns nil for a healthy tour.
//
// Complexity: O(N).
func (t *Tour) Validate() error {
	if t == nil || len(t.seq) == 0 || len(t.seq) != len(t.pos) {
		return ErrInvalidPermutation
	}
	var (
		i int
		c int
	)
	for i = 0; i < len(t.seq); i++ {
		c = t.seq[i]
		if c < 0 || c >= len(t.seq) || t.pos[c] != i {
			return fmt.Errorf("%w: index broken at position %d", ErrInvalidPermutation, i)
		}
	}

	return nil
}

// String renders the sequence, e.g. "[0 3 1 2]".
func (t *Tour) String() string {
	if t == nil {
		return "[]"
	}
	var (
		b strings.Builder
		i int
	)
	b.WriteByte('[')
	for i = 0; i < len(t.seq); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", t.seq[i])
	}
	b.WriteByte(']')

	return b.String()
}
