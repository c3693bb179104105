package crossover

import (
	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// Selector is the selection collaborator used by VR. Implementations sample
// from pop without mutating it. population.Tournament satisfies it.
type Selector interface {
	Tournament(pop []*tour.Tour, groupSize int, src rng.Source) (*tour.Tour, error)
}

// Options carries the optional collaborators of a crossover call.
//
// Population – reference tours for IO, MIO and VR (read-only).
// Oracle     – distance oracle for DPX, IO, MIO and HX.
// Selector   – tournament selection for VR.
// Generation – current generation, drives the MIO anchor-update decay.
// MaxGen     – generation budget for the MIO decay; ≤ 0 disables decay.
type Options struct {
	Population []*tour.Tour
	Oracle     distance.Oracle
	Selector   Selector
	Generation int
	MaxGen     int
}

// Option represents a functional option for configuring a crossover call.
type Option func(*Options)

// WithPopulation sets the reference population.
func WithPopulation(pop []*tour.Tour) Option {
	return func(o *Options) {
		o.Population = pop
	}
}

// WithOracle sets the distance oracle.
func WithOracle(or distance.Oracle) Option {
	return func(o *Options) {
		o.Oracle = or
	}
}

// WithSelector sets the selection collaborator for VR.
func WithSelector(s Selector) Option {
	return func(o *Options) {
		o.Selector = s
	}
}

// WithGeneration sets the generation counter and budget used by MIO.
func WithGeneration(gen, maxGen int) Option {
	return func(o *Options) {
		o.Generation = gen
		o.MaxGen = maxGen
	}
}

// DefaultOptions returns empty collaborators and no generation budget.
func DefaultOptions() Options {
	return Options{}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
