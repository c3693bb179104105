// Package bench is a harness that measures crossover operators on a random
// Euclidean instance.
//
// Overview:
//
//   - Config is layered: DefaultConfig, then a YAML file, then XOVER_*
//     environment variables, then whatever the caller overrides (the CLI
//     applies its flags last). Validate runs once on the merged result.
//   - Run builds one instance and one reference population from Config.Seed,
//     then calls every requested mode Config.Trials times, spread over
//     Config.Workers goroutines. Each worker owns a stream derived from the
//     seed, so results do not depend on scheduling.
//   - For every child the harness records len(child)/len(parent1). Report
//     summarizes those ratios per mode (mean, median, p95, stddev, min).
//
// Logging:
//
//   - Run logs progress through the *slog.Logger it is given; NewLogger
//     builds one from Config.Log.
package bench
