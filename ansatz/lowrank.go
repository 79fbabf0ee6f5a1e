// SPDX-License-Identifier: MIT

package ansatz

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// couplingTol is the magnitude below which Hamiltonian coefficients are
// treated as zero and their parameters dropped.
const couplingTol = 1e-8

// lowRankFactor is one rank-one term of the two-body factorization: a
// scalar eigenvalue, the orbital energies and eigenbasis of its one-body
// square, and the resulting density-density couplings λ·ρ_p·ρ_q.
type lowRankFactor struct {
	lambda   float64
	energies []float64
	basis    *mat.Dense // columns are the orbital eigenvectors
	scaled   *mat.Dense // scaled[p][q] = λ·ρ_p·ρ_q
}

// lowRankFactorize reshapes the two-body tensor into the n²×n² symmetric
// coupling matrix, eigendecomposes it, orders the factors by |λ|
// descending and truncates: to finalRank when positive, otherwise to the
// factors above couplingTol.
func lowRankFactorize(h *InteractionOperator, finalRank int) ([]lowRankFactor, error) {
	n := h.n
	dim := n * n

	w := mat.NewSymDense(dim, nil)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			row := p*n + q
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					col := r*n + s
					if col < row {
						continue
					}
					v := (h.twoBodyAt(p, q, r, s) + h.twoBodyAt(r, s, p, q)) / 2
					w.SetSym(row, col, v)
				}
			}
		}
	}

	vals, vecs, err := eigh(w)
	if err != nil {
		return nil, err
	}

	order := make([]int, dim)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(vals[order[a]]) > math.Abs(vals[order[b]])
	})

	keep := dim
	if finalRank > 0 && finalRank < keep {
		keep = finalRank
	}

	factors := make([]lowRankFactor, 0, keep)
	for _, idx := range order[:keep] {
		lambda := vals[idx]
		if finalRank <= 0 && math.Abs(lambda) < couplingTol {
			break
		}

		f, err := newFactor(n, lambda, vecs, idx)
		if err != nil {
			return nil, err
		}
		factors = append(factors, f)
	}

	return factors, nil
}

// newFactor reshapes eigenvector column idx into the symmetric n×n
// coupling matrix of the factor and eigendecomposes it into orbital
// energies and an orthogonal basis change.
func newFactor(n int, lambda float64, vecs *mat.Dense, idx int) (lowRankFactor, error) {
	g := mat.NewSymDense(n, nil)
	for p := 0; p < n; p++ {
		for q := p; q < n; q++ {
			g.SetSym(p, q, (vecs.At(p*n+q, idx)+vecs.At(q*n+p, idx))/2)
		}
	}

	energies, basis, err := eigh(g)
	if err != nil {
		return lowRankFactor{}, err
	}

	scaled := mat.NewDense(n, n, nil)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			scaled.Set(p, q, lambda*energies[p]*energies[q])
		}
	}

	return lowRankFactor{lambda: lambda, energies: energies, basis: basis, scaled: scaled}, nil
}

// eigh eigendecomposes a real symmetric matrix. Eigenvalues come out in
// gonum's ascending order; the matrix columns are the matching
// eigenvectors.
func eigh(s *mat.SymDense) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(s, true); !ok {
		return nil, nil, ErrFactorization
	}
	vals := es.Values(nil)
	vecs := &mat.Dense{}
	es.VectorsTo(vecs)

	return vals, vecs, nil
}
