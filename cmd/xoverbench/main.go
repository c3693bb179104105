// Command xoverbench measures crossover operators on a random Euclidean
// instance and prints one summary row per operator.
//
// Usage:
//
//	xoverbench run --cities 100 --trials 500 --modes pmx,ox1,er
//	xoverbench run --config bench.yaml --output yaml
//	xoverbench modes
//
// Settings are layered: defaults, then --config YAML, then XOVER_*
// environment variables, then flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/xover/bench"
	"github.com/katalvlaran/xover/crossover"
)

var (
	configPath string
	output     string

	flagCities     int
	flagPopulation int
	flagTrials     int
	flagWorkers    int
	flagSeed       int64
	flagMaxGen     int
	flagModes      []string
	flagLogLevel   string
	flagLogFormat  string

	rootCmd = &cobra.Command{
		Use:           "xoverbench",
		Short:         "Benchmark permutation crossover operators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run every configured operator and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	modesCmd = &cobra.Command{
		Use:   "modes",
		Short: "List operators and the collaborators they need",
		Args:  cobra.NoArgs,
		Run:   listModes,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	f := runCmd.Flags()
	f.IntVar(&flagCities, "cities", 0, "number of cities")
	f.IntVar(&flagPopulation, "population", 0, "reference population size")
	f.IntVar(&flagTrials, "trials", 0, "crossover calls per operator")
	f.IntVar(&flagWorkers, "workers", 0, "parallel workers")
	f.Int64Var(&flagSeed, "seed", 0, "random seed")
	f.IntVar(&flagMaxGen, "max-gen", 0, "generation budget for MIO")
	f.StringSliceVar(&flagModes, "modes", nil, "comma-separated operators (default all)")
	f.StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&flagLogFormat, "log-format", "", "text or json")
	f.StringVarP(&output, "output", "o", "text", "report format: text or yaml")

	rootCmd.AddCommand(runCmd, modesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "xoverbench:", err)
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, _ []string) error {
	cfg, err := bench.Load(configPath, nil)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}
	if output != "text" && output != "yaml" {
		return fmt.Errorf("unknown output format %q", output)
	}

	logger := bench.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	logger.Debug("config loaded", "path", configPath, "modes", strings.Join(cfg.Modes, ","))

	rep, err := bench.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	if output == "yaml" {
		return rep.WriteYAML(cmd.OutOrStdout())
	}

	return rep.WriteText(cmd.OutOrStdout())
}

// applyFlags copies only the flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *bench.Config) {
	f := cmd.Flags()
	if f.Changed("cities") {
		cfg.Cities = flagCities
	}
	if f.Changed("population") {
		cfg.Population = flagPopulation
	}
	if f.Changed("trials") {
		cfg.Trials = flagTrials
	}
	if f.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if f.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if f.Changed("max-gen") {
		cfg.MaxGen = flagMaxGen
	}
	if f.Changed("modes") {
		cfg.Modes = flagModes
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
}

func listModes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	for _, m := range crossover.Modes() {
		var needs []string
		if m.NeedsOracle() {
			needs = append(needs, "oracle")
		}
		if m.NeedsPopulation() {
			needs = append(needs, "population")
		}
		if m == crossover.ModeVR {
			needs = append(needs, "selector")
		}
		if len(needs) == 0 {
			needs = append(needs, "-")
		}
		fmt.Fprintf(out, "%-9s children=%d needs=%s\n", m, m.Children(), strings.Join(needs, ","))
	}
}
