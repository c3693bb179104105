// Package distance: sentinel error set. Messages are prefixed "distance: ...".
package distance

import "errors"

var (
	// ErrNonSquare signals a weight table whose rows differ in length from its
	// row count, or an empty table.
	ErrNonSquare = errors.New("distance: matrix is not square")

	// ErrNegativeWeight signals a negative off-diagonal distance.
	ErrNegativeWeight = errors.New("distance: negative weight")

	// ErrNaN signals a NaN entry anywhere in the table.
	ErrNaN = errors.New("distance: NaN weight")

	// ErrNonZeroDiagonal signals d(i,i) ≠ 0.
	ErrNonZeroDiagonal = errors.New("distance: diagonal not zero")

	// ErrCityOutOfRange signals a tour or query city outside the instance.
	ErrCityOutOfRange = errors.New("distance: city out of range")

	// ErrNoPoints signals an empty coordinate list.
	ErrNoPoints = errors.New("distance: no points")
)
