// SPDX-License-Identifier: MIT

package ansatz

import "gonum.org/v1/gonum/mat"

// InteractionOperator is a second-quantized Hamiltonian in spatial-orbital
// form: a scalar constant, a real symmetric one-body matrix h[p][q] and a
// real two-body tensor v[p][q][r][s] in chemist ordering, stored flat with
// index ((p·n+q)·n+r)·n+s.
type InteractionOperator struct {
	Constant float64
	OneBody  *mat.SymDense
	TwoBody  []float64

	n int
}

// NewInteractionOperator validates the component dimensions: the one-body
// matrix fixes n, the two-body tensor must hold exactly n⁴ entries.
func NewInteractionOperator(constant float64, oneBody *mat.SymDense, twoBody []float64) (*InteractionOperator, error) {
	if oneBody == nil || twoBody == nil {
		return nil, ErrNilHamiltonian
	}
	n := oneBody.SymmetricDim()
	if len(twoBody) != n*n*n*n {
		return nil, ErrDimensionMismatch
	}

	return &InteractionOperator{Constant: constant, OneBody: oneBody, TwoBody: twoBody, n: n}, nil
}

// NumQubits returns the register size n.
func (h *InteractionOperator) NumQubits() int { return h.n }

// twoBodyAt reads v[p][q][r][s] from the flat tensor.
func (h *InteractionOperator) twoBodyAt(p, q, r, s int) float64 {
	return h.TwoBody[((p*h.n+q)*h.n+r)*h.n+s]
}
