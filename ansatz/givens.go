// SPDX-License-Identifier: MIT

package ansatz

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// orthoTol is the tolerance for orthogonality and residual checks in the
// Givens decomposition.
const orthoTol = 1e-8

// Givens is a plane rotation by Theta between the adjacent rows Target
// and Target+1:
//
//	┌                      ┐
//	│cos(Theta) -sin(Theta)│
//	│sin(Theta)  cos(Theta)│
//	└                      ┘
type Givens struct {
	Target int
	Theta  float64
}

// DecomposeOrthogonal factors a real orthogonal n×n matrix into adjacent
// Givens rotations and a ±1 diagonal:
//
//	Q = G₁ · G₂ · … · G_m · diag(signs)
//
// where G₁ … G_m are the returned rotations in order. The factorization
// eliminates the subdiagonal column by column using adjacent-row
// rotations only, which is what lets the circuit rule realize every
// rotation on neighboring wires.
//
// Returns ErrNotOrthogonal when the input is not orthogonal within
// tolerance.
func DecomposeOrthogonal(q *mat.Dense) ([]Givens, []float64, error) {
	n, c := q.Dims()
	if n != c || !isOrthogonal(q, orthoTol) {
		return nil, nil, ErrNotOrthogonal
	}

	work := mat.DenseCopyOf(q)
	var rots []Givens
	for col := 0; col < n-1; col++ {
		for row := n - 1; row > col; row-- {
			a := work.At(row-1, col)
			b := work.At(row, col)
			if math.Abs(b) <= orthoTol {
				continue
			}
			theta := math.Atan2(b, a)
			rotateRows(work, row-1, -theta)
			rots = append(rots, Givens{Target: row - 1, Theta: theta})
		}
	}

	// An orthogonal matrix reduced to upper triangular form is diagonal
	// with ±1 entries.
	signs := make([]float64, n)
	for i := 0; i < n; i++ {
		v := work.At(i, i)
		if math.Abs(math.Abs(v)-1) > orthoTol {
			return nil, nil, ErrNotOrthogonal
		}
		signs[i] = math.Copysign(1, v)
	}

	return rots, signs, nil
}

// ComposeGivens rebuilds the orthogonal matrix from a Givens
// factorization, inverting DecomposeOrthogonal.
func ComposeGivens(n int, rots []Givens, signs []float64) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, signs[i])
	}
	for k := len(rots) - 1; k >= 0; k-- {
		rotateRows(m, rots[k].Target, rots[k].Theta)
	}

	return m
}

// rotateRows left-multiplies m by the plane rotation acting on rows
// (target, target+1) with angle theta.
func rotateRows(m *mat.Dense, target int, theta float64) {
	_, cols := m.Dims()
	c, s := math.Cos(theta), math.Sin(theta)
	for j := 0; j < cols; j++ {
		a := m.At(target, j)
		b := m.At(target+1, j)
		m.Set(target, j, c*a-s*b)
		m.Set(target+1, j, s*a+c*b)
	}
}

// isOrthogonal checks QᵀQ = I entrywise within tol.
func isOrthogonal(q *mat.Dense, tol float64) bool {
	n, _ := q.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var dot float64
			for k := 0; k < n; k++ {
				dot += q.At(k, i) * q.At(k, j)
			}
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(dot-want) > tol {
				return false
			}
		}
	}

	return true
}
