// SPDX-License-Identifier: MIT

package circuit

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Compose returns the exact 2ⁿ×2ⁿ unitary of ops applied in sequence to
// an n-qubit register: U = U_m·…·U_1 for ops [op_1 … op_m].
//
// Errors: ErrArityMismatch, ErrQubitOutOfRange, ErrDuplicateQubit for
// malformed operations; ErrSymbolicExponent when any exponent is still a
// symbol (resolve first).
//
// Complexity: O(m·4ⁿ) time, O(4ⁿ) memory. Intended for gate-algebra
// verification on small registers, not bulk simulation.
func Compose(ops []Op, n int) (*mat.CDense, error) {
	dim := 1 << n
	u := eye(dim)
	for _, op := range ops {
		g, err := expand(op, n)
		if err != nil {
			return nil, err
		}
		u = mulCDense(g, u)
	}

	return u, nil
}

// mulCDense returns the product a·b of square complex matrices of equal
// dimension. gonum's CDense carries no arithmetic methods, so the product
// is accumulated entrywise; zero entries of a are skipped since expanded
// gate matrices are sparse.
func mulCDense(a, b *mat.CDense) *mat.CDense {
	dim, _ := a.Dims()
	out := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for k := 0; k < dim; k++ {
			v := a.At(i, k)
			if v == 0 {
				continue
			}
			for j := 0; j < dim; j++ {
				if w := b.At(k, j); w != 0 {
					out.Set(i, j, out.At(i, j)+v*w)
				}
			}
		}
	}

	return out
}

// Apply evolves a state vector through ops on an n-qubit register and
// returns the resulting vector. The input state is not mutated.
func Apply(state []complex128, ops []Op, n int) ([]complex128, error) {
	dim := 1 << n
	if len(state) != dim {
		return nil, ErrDimensionMismatch
	}
	cur := make([]complex128, dim)
	copy(cur, state)
	for _, op := range ops {
		g, err := expand(op, n)
		if err != nil {
			return nil, err
		}
		next := make([]complex128, dim)
		for r := 0; r < dim; r++ {
			var acc complex128
			for c := 0; c < dim; c++ {
				if v := g.At(r, c); v != 0 {
					acc += v * cur[c]
				}
			}
			next[r] = acc
		}
		cur = next
	}

	return cur, nil
}

// expand embeds the operation's unitary into the full register, with the
// first listed wire as the most significant sub-index bit.
func expand(op Op, n int) (*mat.CDense, error) {
	m := op.Gate.Arity()
	if len(op.Qubits) != m {
		return nil, ErrArityMismatch
	}
	seen := 0
	for _, q := range op.Qubits {
		if q < 0 || q >= n {
			return nil, ErrQubitOutOfRange
		}
		if seen&(1<<q) != 0 {
			return nil, ErrDuplicateQubit
		}
		seen |= 1 << q
	}
	sub, err := op.Gate.Unitary()
	if err != nil {
		return nil, err
	}

	dim := 1 << n
	full := mat.NewCDense(dim, dim, nil)
	masks := make([]int, m)
	for k, q := range op.Qubits {
		masks[k] = 1 << (n - 1 - q)
	}
	for r := 0; r < dim; r++ {
		sr, base := 0, r
		for k := 0; k < m; k++ {
			if r&masks[k] != 0 {
				sr |= 1 << (m - 1 - k)
			}
			base &^= masks[k]
		}
		for sc := 0; sc < 1<<m; sc++ {
			v := sub.At(sr, sc)
			if v == 0 {
				continue
			}
			c := base
			for k := 0; k < m; k++ {
				if sc&(1<<(m-1-k)) != 0 {
					c |= masks[k]
				}
			}
			full.Set(r, c, v)
		}
	}

	return full, nil
}

// ApplyTwoLevel applies a 2×2 matrix to the amplitudes at basis indices i
// and j, leaving every other amplitude untouched. This is the fast path
// used by gates whose unitary differs from the identity on two basis
// states only. Returns a new vector.
func ApplyTwoLevel(state []complex128, m [2][2]complex128, i, j int) []complex128 {
	out := make([]complex128, len(state))
	copy(out, state)
	out[i] = m[0][0]*state[i] + m[0][1]*state[j]
	out[j] = m[1][0]*state[i] + m[1][1]*state[j]

	return out
}

// EqualUpToGlobalPhase reports whether a and b represent the same
// operator up to a global phase factor, entrywise within tol.
func EqualUpToGlobalPhase(a, b *mat.CDense, tol float64) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		return false
	}

	// Locate the largest entry of a to fix the relative phase.
	var bi, bj int
	var best float64
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if v := cmplx.Abs(a.At(i, j)); v > best {
				best, bi, bj = v, i, j
			}
		}
	}
	if best <= tol {
		// a ≈ 0: equal iff b ≈ 0 as well.
		for i := 0; i < ra; i++ {
			for j := 0; j < ca; j++ {
				if cmplx.Abs(b.At(i, j)) > tol {
					return false
				}
			}
		}

		return true
	}
	ref := b.At(bi, bj)
	if cmplx.Abs(ref) <= tol {
		return false
	}
	phase := ref / a.At(bi, bj)
	phase /= complex(cmplx.Abs(phase), 0)
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if cmplx.Abs(a.At(i, j)*phase-b.At(i, j)) > tol {
				return false
			}
		}
	}

	return true
}
