package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/xover/crossover"
	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/population"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// side is the edge of the square the random cities are drawn from.
const side = 1000.0

// Instance is the problem a run is measured on.
type Instance struct {
	Oracle     *distance.Matrix
	Population population.Population
}

// NewInstance draws n cities uniformly in a square and a random population
// of the given size, both from seed.
//
// Complexity: O(n² + size·n).
func NewInstance(n, size int, seed int64) (*Instance, error) {
	src := rng.New(seed)
	points := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		points[i] = [2]float64{src.Float64() * side, src.Float64() * side}
	}
	m, err := distance.Euclidean(points)
	if err != nil {
		return nil, err
	}
	pop, err := population.Random(n, size, src)
	if err != nil {
		return nil, err
	}

	return &Instance{Oracle: m, Population: pop}, nil
}

// Run measures every configured mode and returns the report. cfg must be
// valid. A cancelled ctx stops the run with ctx.Err().
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	modes, err := cfg.ParsedModes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var (
		runID = uuid.New()
		start = time.Now()
		log   = logger.With("run_id", runID.String())
	)
	inst, err := NewInstance(cfg.Cities, cfg.Population, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("bench: instance: %w", err)
	}
	best, bestLen := inst.Population.Best(inst.Oracle)
	log.Info("instance ready",
		"cities", cfg.Cities,
		"population", cfg.Population,
		"best_index", best,
		"best_length", bestLen,
	)

	report := &Report{RunID: runID, Config: cfg}
	root := rng.New(cfg.Seed)
	for mi, m := range modes {
		res, err := runMode(ctx, cfg, inst, m, root.Derive(uint64(mi+1)))
		if err != nil {
			log.Error("mode failed", "mode", m.String(), "err", err)
			return nil, err
		}
		log.Info("mode done",
			"mode", m.String(),
			"calls", res.Calls,
			"children", res.Children,
			"mean_ratio", res.Summary.Mean,
			"elapsed", res.Elapsed,
		)
		report.Results = append(report.Results, res)
	}
	report.Elapsed = time.Since(start)

	return report, nil
}

// runMode spreads cfg.Trials calls of m over cfg.Workers goroutines. Worker
// w handles trials w, w+W, w+2W, ... with its own stream derived from base,
// and writes only to its own ratio slice.
func runMode(ctx context.Context, cfg Config, inst *Instance, m crossover.Mode, base *rng.Stream) (Result, error) {
	var (
		start   = time.Now()
		workers = cfg.Workers
		ratios  = make([][]float64, workers)
		g, gCtx = errgroup.WithContext(ctx)
	)
	if workers > cfg.Trials {
		workers = cfg.Trials
	}
	opts := []crossover.Option{
		crossover.WithOracle(inst.Oracle),
		crossover.WithPopulation(inst.Population),
		crossover.WithSelector(population.Tournament{Oracle: inst.Oracle}),
	}

	for w := 0; w < workers; w++ {
		w := w
		src := base.Derive(uint64(w))
		g.Go(func() error {
			var (
				trial int
				out   []float64
			)
			for trial = w; trial < cfg.Trials; trial += workers {
				if err := gCtx.Err(); err != nil {
					return err
				}
				got, err := trialRatios(inst, m, src, TrialGeneration(trial, cfg.Trials, cfg.MaxGen), cfg.MaxGen, opts)
				if err != nil {
					return fmt.Errorf("bench: %s trial %d: %w", m, trial, err)
				}
				out = append(out, got...)
			}
			ratios[w] = out

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	flat := make([]float64, 0, cfg.Trials*m.Children())
	for _, r := range ratios {
		flat = append(flat, r...)
	}
	sum, err := Summarize(flat)
	if err != nil {
		return Result{}, fmt.Errorf("bench: %s: %w", m, err)
	}

	return Result{
		Mode:     m,
		Calls:    cfg.Trials,
		Children: len(flat),
		Summary:  sum,
		Elapsed:  time.Since(start),
	}, nil
}

// TrialGeneration spreads trials 0..trials-1 evenly over generations
// 0..maxGen, so a run of any length sweeps the whole MIO schedule.
func TrialGeneration(trial, trials, maxGen int) int {
	if trials <= 0 {
		return 0
	}

	return trial * maxGen / trials
}

// trialRatios runs one crossover call on two population members and returns
// len(child)/len(parent1) per child. A zero-length parent1 yields ratio 1.
func trialRatios(inst *Instance, m crossover.Mode, src *rng.Stream, gen, maxGen int, opts []crossover.Option) ([]float64, error) {
	var (
		size = len(inst.Population)
		i    = src.UniformInt(0, size-1)
		j    = src.UniformInt(0, size-1)
	)
	if size > 1 {
		for j == i {
			j = src.UniformInt(0, size-1)
		}
	}
	p1, p2 := inst.Population[i], inst.Population[j]

	call := make([]crossover.Option, 0, len(opts)+1)
	call = append(call, opts...)
	call = append(call, crossover.WithGeneration(gen, maxGen))

	kids, err := crossover.Crossover(m, p1, p2, src, call...)
	if err != nil {
		return nil, err
	}

	base := distance.TourLength(inst.Oracle, p1)
	out := make([]float64, 0, len(kids))
	for _, k := range kids {
		out = append(out, lengthRatio(inst.Oracle, k, base))
	}

	return out, nil
}

func lengthRatio(o distance.Oracle, child *tour.Tour, base float64) float64 {
	if base == 0 {
		return 1
	}

	return distance.TourLength(o, child) / base
}
