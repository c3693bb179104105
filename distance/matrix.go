// Package distance - dense matrix oracle and Euclidean instance builder.
//
// NewMatrix validates shape and values once (square, zero diagonal, no NaN,
// no negative weights; +Inf allowed off-diagonal as "missing edge") and then
// serves Cost from a linearized buffer w[i*n+j] without further checks.
package distance

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Matrix is an immutable dense n×n distance table.
type Matrix struct {
	n int
	w []float64
}

var _ Bounded = (*Matrix)(nil)

// NewMatrix copies and validates a square weight table.
//
// Complexity: O(n²).
func NewMatrix(rows [][]float64) (*Matrix, error) {
	var n = len(rows)
	if n == 0 {
		return nil, ErrNonSquare
	}
	m := &Matrix{n: n, w: make([]float64, n*n)}

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			x = rows[i][j]
			if math.IsNaN(x) {
				return nil, ErrNaN
			}
			if i == j {
				if x != 0 {
					return nil, ErrNonZeroDiagonal
				}
				continue
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			m.w[i*n+j] = x
		}
	}

	return m, nil
}

// Euclidean builds a symmetric matrix from 2-D coordinates using the L2 norm.
//
// Complexity: O(n²).
func Euclidean(points [][2]float64) (*Matrix, error) {
	var n = len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	m := &Matrix{n: n, w: make([]float64, n*n)}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = floats.Distance(points[i][:], points[j][:], 2)
			if math.IsNaN(d) {
				return nil, ErrNaN
			}
			m.w[i*n+j] = d
			m.w[j*n+i] = d
		}
	}

	return m, nil
}

// Size returns the number of cities n.
func (m *Matrix) Size() int { return m.n }

// Cost implements Oracle. Out-of-range cities cost +Inf.
func (m *Matrix) Cost(a, b int) float64 {
	if a < 0 || a >= m.n || b < 0 || b >= m.n {
		return math.Inf(1)
	}

	return m.w[a*m.n+b]
}

// CheckCity returns ErrCityOutOfRange unless c ∈ [0, n).
func (m *Matrix) CheckCity(c int) error {
	if c < 0 || c >= m.n {
		return ErrCityOutOfRange
	}

	return nil
}
