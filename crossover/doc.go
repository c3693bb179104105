// Package crossover provides permutation recombination operators for genetic
// algorithms over tours, canonically the Traveling Salesman Problem.
//
// Overview:
//
//   - Every operator reads two parent tours of equal size N and returns one or
//     two fresh child tours. Parents are never modified.
//   - Every child is a permutation of {0..N-1}. Operators build children
//     without duplicate-repair passes and re-validate before returning.
//   - Randomness comes only from the rng.Source argument, so a seeded stream
//     reproduces every decision.
//
// Operator families:
//
//   - Segment and order: PMX, OX1, OX2, MOX, POS, CX, AP, MPX (two children).
//   - Adjacency and fragments: ER, GSTX, DPX (one child).
//   - Local search: IO, MIO (one child, never longer than parent1).
//   - Greedy: HX (one child).
//   - Consensus: VR (one child, votes with two tournament winners).
//
// Collaborators:
//
//   - distance.Oracle for DPX, IO, MIO and HX.
//   - A read-only reference population for IO, MIO and VR.
//   - A Selector (population.Tournament) for VR.
//
// Small inputs:
//
//   - Operators whose cut rules need more cities than N provides return
//     clones of the parents (for example OX1 and PMX for N < 4).
//
// Error handling (sentinel errors):
//
//   - ErrParentMismatch: nil parents or parents of different sizes.
//   - ErrMissingOracle, ErrMissingPopulation, ErrMissingSelector: a required
//     collaborator is absent.
//   - ErrUnknownMode: a Mode outside the declared set.
//   - ErrInternalInconsistency: bookkeeping ran dry before all cities were
//     placed. Together with tour.ErrInvalidPermutation it means a bug, never
//     a recoverable condition.
//
// Concurrency:
//
//   - No locking. Concurrent callers must use one rng.Stream per goroutine
//     (see rng.Stream.Derive) and must not mutate parents, populations or
//     oracles during a call.
package crossover
