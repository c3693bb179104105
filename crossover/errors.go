// Package crossover: sentinel error set.
// Messages are prefixed "crossover: ...". Operators wrap these (and
// tour.ErrInvalidPermutation) with the operator name; match with errors.Is.
//
// ERROR POLICY:
//   - ErrDegenerateInput never leaves an exported operator: it is recovered
//     by returning unmodified clones of the parents.
//   - tour.ErrInvalidPermutation and ErrInternalInconsistency are fatal for
//     the call and always propagate.
package crossover

import "errors"

var (
	// ErrDegenerateInput signals that N is below an operator's precondition.
	ErrDegenerateInput = errors.New("crossover: degenerate input")

	// ErrInternalInconsistency signals exhausted bookkeeping (edge table,
	// fragment list, cycle trace) before every city was placed.
	ErrInternalInconsistency = errors.New("crossover: internal inconsistency")

	// ErrParentMismatch signals nil parents or parents of different sizes.
	ErrParentMismatch = errors.New("crossover: parents must be non-nil and of equal size")

	// ErrMissingOracle signals a distance-aware operator called without an oracle.
	ErrMissingOracle = errors.New("crossover: distance oracle required")

	// ErrMissingPopulation signals a population-aware operator called without
	// a usable reference population.
	ErrMissingPopulation = errors.New("crossover: reference population required")

	// ErrMissingSelector signals VR called without a selection collaborator.
	ErrMissingSelector = errors.New("crossover: selector required")

	// ErrUnknownMode signals a Mode value outside the closed enum.
	ErrUnknownMode = errors.New("crossover: unknown mode")
)
