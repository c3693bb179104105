// Package crossover_test provides runnable, deterministic examples. Worked
// operators take explicit segments; the dispatcher example uses a fixed seed
// so its // Output: block is stable.
package crossover_test

import (
	"fmt"

	"github.com/katalvlaran/xover/crossover"
	"github.com/katalvlaran/xover/distance"
	"github.com/katalvlaran/xover/rng"
	"github.com/katalvlaran/xover/tour"
)

// -----------------------------------------------------------------------------
// Explicit-segment operators
// -----------------------------------------------------------------------------

// ExamplePMXWithSegment maps the segment [1,3] between two mirrored tours.
func ExamplePMXWithSegment() {
	p1, _ := tour.New([]int{0, 1, 2, 3, 4, 5})
	p2, _ := tour.New([]int{5, 4, 3, 2, 1, 0})

	c1, c2, err := crossover.PMXWithSegment(p1, p2, 1, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c1)
	fmt.Println(c2)
	// Output:
	// [0 4 3 2 1 5]
	// [5 1 2 3 4 0]
}

// ExampleCycleOf traces the cycle through position 0.
func ExampleCycleOf() {
	p1, _ := tour.New([]int{0, 1, 2, 3, 4, 5, 6, 7})
	p2, _ := tour.New([]int{1, 2, 0, 4, 3, 6, 7, 5})

	cycle, _ := crossover.CycleOf(p1, p2)
	fmt.Println(cycle)
	// Output:
	// [0 1 2]
}

// -----------------------------------------------------------------------------
// Dispatcher
// -----------------------------------------------------------------------------

// ExampleCrossover runs heuristic crossover through the dispatcher on a
// square of four cities.
func ExampleCrossover() {
	square, _ := distance.Euclidean([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	p1, _ := tour.New([]int{0, 1, 2, 3})
	p2, _ := tour.New([]int{0, 2, 1, 3})

	kids, err := crossover.Crossover(crossover.ModeHX, p1, p2, rng.New(1), crossover.WithOracle(square))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(kids), distance.TourLength(square, kids[0]))
	// Output:
	// 1 4
}
