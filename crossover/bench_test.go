// Package crossover_test - benchmarks for every operator via Crossover.
//
// Policy:
//   - Fixed seeds (seedDet); instances built outside the timer.
//   - One sub-benchmark per mode so regressions show per operator.
package crossover_test

import (
	"testing"

	"github.com/katalvlaran/xover/crossover"
	"github.com/katalvlaran/xover/rng"
)

// BenchmarkCrossover measures one call per mode on a 100-city instance.
func BenchmarkCrossover(b *testing.B) {
	f := newFixture(b, 100, seedDet)
	opts := f.options()

	for _, m := range crossover.Modes() {
		b.Run(m.String(), func(b *testing.B) {
			src := rng.New(1)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := crossover.Crossover(m, f.p1, f.p2, src, opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
