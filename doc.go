// Package xover is a toolkit of permutation crossover operators for genetic
// algorithms over tours, canonically the Traveling Salesman Problem.
//
// What is inside?
//
//	tour/        - Tour: a permutation of {0..N-1} with an O(1) position index
//	rng/         - explicit, seedable random streams and derived substreams
//	distance/    - distance oracles: dense matrix, Euclidean builder, tour length
//	population/  - read-only reference population and tournament selection
//	crossover/   - PMX, OX1, OX2, MOX, POS, CX, AP, MPX, ER, GSTX, DPX, IO,
//	               MIO, HX, VR and the Crossover dispatcher
//	bench/       - harness that measures operators on a random instance
//	cmd/xoverbench - CLI over bench
//
// Guarantees:
//
//   - Every child is a valid permutation; operators never repair duplicates
//     after the fact and re-validate before returning.
//   - Parents, populations and oracles are read-only to every operator.
//   - Randomness flows only through an explicit rng.Source argument.
//   - Library packages never log and never panic on user input; failures are
//     sentinel errors matched with errors.Is.
//
// Quick start:
//
//	p1, _ := tour.New([]int{0, 1, 2, 3, 4, 5})
//	p2, _ := tour.New([]int{5, 4, 3, 2, 1, 0})
//	kids, err := crossover.Crossover(crossover.ModeOX1, p1, p2, rng.New(42))
package xover
