package bench

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xover/crossover"
)

// ErrNoSamples is returned by Summarize for an empty sample.
var ErrNoSamples = errors.New("bench: no samples")

// Summary describes the child/parent length ratios of one mode. Ratios
// below 1 are children shorter than their first parent.
type Summary struct {
	Mean     float64 `yaml:"mean"`
	Median   float64 `yaml:"median"`
	P95      float64 `yaml:"p95"`
	StdDev   float64 `yaml:"stddev"`
	Min      float64 `yaml:"min"`
	Improved int     `yaml:"improved"`
}

// Result is the measurement of one mode.
type Result struct {
	Mode     crossover.Mode `yaml:"-"`
	Calls    int            `yaml:"calls"`
	Children int            `yaml:"children"`
	Summary  Summary        `yaml:"summary"`
	Elapsed  time.Duration  `yaml:"-"`
}

// Report is the outcome of Run.
type Report struct {
	RunID   uuid.UUID
	Config  Config
	Results []Result
	Elapsed time.Duration
}

// Summarize computes the Summary of ratios.
//
// Complexity: O(n log n) (median and percentile sort a copy).
func Summarize(ratios []float64) (Summary, error) {
	if len(ratios) == 0 {
		return Summary{}, ErrNoSamples
	}
	data := stats.Float64Data(ratios)

	var (
		s   Summary
		err error
	)
	if s.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if s.P95, err = data.Percentile(95); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, err
	}
	if s.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	for _, r := range ratios {
		if r < 1 {
			s.Improved++
		}
	}

	return s, nil
}

// WriteText prints one aligned row per mode.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "run %s: %d cities, population %d, %s calls per mode, %s\n",
		r.RunID, r.Config.Cities, r.Config.Population,
		humanize.Comma(int64(r.Config.Trials)), r.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(tw, "mode\tchildren\tmean\tmedian\tp95\tstddev\tmin\timproved\telapsed")
	for _, res := range r.Results {
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%s\t%s\n",
			res.Mode,
			humanize.Comma(int64(res.Children)),
			res.Summary.Mean,
			res.Summary.Median,
			res.Summary.P95,
			res.Summary.StdDev,
			res.Summary.Min,
			improvedShare(res),
			res.Elapsed.Round(time.Microsecond),
		)
	}

	return tw.Flush()
}

func improvedShare(res Result) string {
	if res.Children == 0 {
		return "0"
	}
	pct := 100 * float64(res.Summary.Improved) / float64(res.Children)

	return humanize.FtoaWithDigits(pct, 1) + "%"
}

// yamlReport is the serialized form of Report.
type yamlReport struct {
	RunID   string                `yaml:"run_id"`
	Cities  int                   `yaml:"cities"`
	Pop     int                   `yaml:"population"`
	Trials  int                   `yaml:"trials"`
	Seed    int64                 `yaml:"seed"`
	Elapsed string                `yaml:"elapsed"`
	Modes   map[string]yamlResult `yaml:"modes"`
}

type yamlResult struct {
	Result  `yaml:",inline"`
	Elapsed string `yaml:"elapsed"`
}

// WriteYAML encodes the report as YAML keyed by mode name.
func (r *Report) WriteYAML(w io.Writer) error {
	out := yamlReport{
		RunID:   r.RunID.String(),
		Cities:  r.Config.Cities,
		Pop:     r.Config.Population,
		Trials:  r.Config.Trials,
		Seed:    r.Config.Seed,
		Elapsed: r.Elapsed.String(),
		Modes:   make(map[string]yamlResult, len(r.Results)),
	}
	for _, res := range r.Results {
		out.Modes[res.Mode.String()] = yamlResult{Result: res, Elapsed: res.Elapsed.String()}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}

	return enc.Close()
}
