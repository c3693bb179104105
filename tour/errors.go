// Package tour: sentinel error set.
// Every message is prefixed with "tour: ..." for easy grepping. Callers match
// with errors.Is; wrapping with fmt.Errorf("ctx: %w", ErrX) keeps that intact.
package tour

import "errors"

var (
	// ErrInvalidPermutation is returned when a sequence is not a bijection over
	// {0..N-1}: empty input, wrong length, duplicate or out-of-range city.
	ErrInvalidPermutation = errors.New("tour: invalid permutation")

	// ErrIndexOutOfRange indicates a position outside [0, N).
	ErrIndexOutOfRange = errors.New("tour: index out of range")

	// ErrUnknownCity indicates a city id outside [0, N).
	ErrUnknownCity = errors.New("tour: unknown city")
)
