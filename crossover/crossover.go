// Package crossover - single entry point dispatching a Mode to its operator.
//
// The dispatcher owns collaborator checks: a mode that needs an oracle, a
// population or a selector fails fast with the matching sentinel before any
// random draw, so a misconfigured call never advances the caller's stream.
package crossover

import (
	"fmt"

	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// Crossover applies the operator selected by mode to p1 and p2 and returns
// mode.Children() fresh tours. Parents are never modified.
//
// Collaborators come from opts: WithOracle for DPX, IO, MIO and HX;
// WithPopulation for IO, MIO and VR; WithSelector for VR; WithGeneration for
// MIO. ModeIdentity returns clones of both parents.
//
// Errors: ErrUnknownMode, ErrParentMismatch, ErrMissingOracle,
// distance.ErrCityOutOfRange (a distance.Bounded oracle smaller than the
// parents), ErrMissingPopulation, ErrMissingSelector, plus any operator error
// (tour.ErrInvalidPermutation, ErrInternalInconsistency) wrapped with the
// operator name.
func Crossover(mode Mode, p1, p2 *tour.Tour, src rng.Source, opts ...Option) ([]*tour.Tour, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	n, err := checkParents(p1, p2)
	if err != nil {
		return nil, err
	}

	o := buildOptions(opts)
	if mode.NeedsOracle() {
		if o.Oracle == nil {
			return nil, fmt.Errorf("crossover: %s: %w", mode, ErrMissingOracle)
		}
		if b, ok := o.Oracle.(distance.Bounded); ok {
			if err = b.CheckCity(n - 1); err != nil {
				return nil, fmt.Errorf("crossover: %s: oracle does not cover %d cities: %w", mode, n, err)
			}
		}
	}
	if mode.NeedsPopulation() {
		if err = checkPopulation(o.Population, n); err != nil {
			return nil, fmt.Errorf("crossover: %s: %w", mode, err)
		}
	}
	if mode == ModeVR && o.Selector == nil {
		return nil, fmt.Errorf("crossover: %s: %w", mode, ErrMissingSelector)
	}

	var (
		pair func(p1, p2 *tour.Tour, src rng.Source) (*tour.Tour, *tour.Tour, error)
		one  *tour.Tour
	)
	switch mode {
	case ModeIdentity:
		c1, c2 := clonePair(p1, p2)
		return []*tour.Tour{c1, c2}, nil
	case ModePMX:
		pair = PMX
	case ModeOX1:
		pair = OX1
	case ModeOX2:
		pair = OX2
	case ModeMOX:
		pair = MOX
	case ModePOS:
		pair = POS
	case ModeCX:
		pair = CX
	case ModeAP:
		pair = AP
	case ModeMPX:
		pair = MPX
	case ModeER:
		one, err = ER(p1, p2, src)
	case ModeGSTX:
		one, err = GSTX(p1, p2, src)
	case ModeDPX:
		one, err = DPX(p1, p2, o.Oracle, src)
	case ModeIO:
		one, err = IO(p1, o.Population, o.Oracle, src)
	case ModeMIO:
		one, err = MIO(p1, o.Population, o.Oracle, src, o.Generation, o.MaxGen)
	case ModeHX:
		one, err = HX(p1, p2, o.Oracle, src)
	case ModeVR:
		one, err = VR(p1, p2, o.Population, o.Selector, src)
	}

	if pair != nil {
		c1, c2, perr := pair(p1, p2, src)
		if perr != nil {
			return nil, perr
		}
		return []*tour.Tour{c1, c2}, nil
	}
	if err != nil {
		return nil, err
	}

	return []*tour.Tour{one}, nil
}
