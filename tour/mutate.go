// Package tour - in-place mutators.
//
// Every mutator writes both seq and pos, so the permutation invariant and the
// inverse index hold after each call. Arguments are validated up front; a
// failed call leaves the tour untouched.
package tour

// SwapCities exchanges the positions of cities a and b.
//
// Complexity: O(1).
func (t *Tour) SwapCities(a, b int) error {
	if !t.Contains(a) || !t.Contains(b) {
		return ErrUnknownCity
	}
	if a == b {
		return nil
	}
	var (
		pa = t.pos[a]
		pb = t.pos[b]
	)
	t.seq[pa], t.seq[pb] = b, a
	t.pos[a], t.pos[b] = pb, pa

	return nil
}

// SwapPositions exchanges the cities stored at positions i and j.
//
// Complexity: O(1).
func (t *Tour) SwapPositions(i, j int) error {
	var n = len(t.seq)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrIndexOutOfRange
	}
	if i == j {
		return nil
	}
	t.seq[i], t.seq[j] = t.seq[j], t.seq[i]
	t.pos[t.seq[i]] = i
	t.pos[t.seq[j]] = j

	return nil
}

// Reverse reverses the inclusive linear range seq[i..j], i ≤ j.
//
// Complexity: O(j-i).
func (t *Tour) Reverse(i, j int) error {
	var n = len(t.seq)
	if i < 0 || j >= n || i > j {
		return ErrIndexOutOfRange
	}
	for i < j {
		t.seq[i], t.seq[j] = t.seq[j], t.seq[i]
		t.pos[t.seq[i]] = i
		t.pos[t.seq[j]] = j
		i++
		j--
	}

	return nil
}

// ReverseCyclic reverses the cities met while walking forward from position
// from to position to (inclusive), wrapping past the end when from > to.
// from == to is a no-op.
//
// Complexity: O(length of the range).
func (t *Tour) ReverseCyclic(from, to int) error {
	var n = len(t.seq)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfRange
	}
	if from <= to {
		return t.Reverse(from, to)
	}

	// Range length along the cycle; swap pairs walking inward from both ends.
	var (
		length = n - from + to + 1
		steps  = length / 2
		i      = from
		j      = to
		k      int
	)
	for k = 0; k < steps; k++ {
		t.seq[i], t.seq[j] = t.seq[j], t.seq[i]
		t.pos[t.seq[i]] = i
		t.pos[t.seq[j]] = j
		i++
		if i == n {
			i = 0
		}
		j--
		if j < 0 {
			j = n - 1
		}
	}

	return nil
}

// CyclicDistance returns how many forward steps lead from position from to
// position to, in [0, N).
func (t *Tour) CyclicDistance(from, to int) int {
	var n = len(t.seq)
	if n == 0 {
		return 0
	}

	return ((to-from)%n + n) % n
}
