package gates_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/circuit"
	"github.com/katalvlaran/fermiq/gates"
)

const tol = 1e-9

// TestEigenComponents_FormProjectorDecomposition verifies, for every gate
// variant, that the components form a valid spectral decomposition: each
// projector is idempotent, distinct projectors annihilate each other, and
// together they sum to the identity.
func TestEigenComponents_FormProjectorDecomposition(t *testing.T) {
	for _, g := range allGates(t) {
		comps := g.EigenComponents()
		dim := 1 << g.NumQubits()

		sum := mat.NewCDense(dim, dim, nil)
		for _, c := range comps {
			for i := 0; i < dim; i++ {
				for j := 0; j < dim; j++ {
					sum.Set(i, j, sum.At(i, j)+c.Projector.At(i, j))
				}
			}

			sq := matProd(c.Projector, c.Projector)
			assert.True(t, cEqual(sq, c.Projector, tol), "projector must be idempotent")
		}
		assert.True(t, cEqual(sum, cIdentity(dim), tol), "projectors must sum to the identity")

		for i := range comps {
			for j := i + 1; j < len(comps); j++ {
				prod := matProd(comps[i].Projector, comps[j].Projector)
				assert.True(t, cEqual(prod, mat.NewCDense(dim, dim, nil), tol),
					"distinct projectors must be orthogonal")
			}
		}
	}
}

// TestUnitary_IsUnitary checks U·U† = I for every gate variant at a
// non-trivial exponent.
func TestUnitary_IsUnitary(t *testing.T) {
	for i, g := range allGates(t) {
		u, err := gates.Unitary(g)
		require.NoError(t, err)

		dim := 1 << g.NumQubits()
		prod := matProd(u, matAdjoint(u))
		assert.True(t, cEqual(prod, cIdentity(dim), tol), "gate %d must be unitary", i)
	}
}

// TestUnitary_SymbolicExponent confirms the sentinel for unresolved
// symbols.
func TestUnitary_SymbolicExponent(t *testing.T) {
	g, err := gates.NewDoubleExcitationGate(gates.WithExponent(circuit.Sym("theta")))
	require.NoError(t, err)

	_, err = gates.Unitary(g)
	assert.ErrorIs(t, err, circuit.ErrSymbolicExponent)
}

// TestExponentPeriod covers the spectrum-derived periods: 2 for the
// double excitation family (eigenvalue gap 1), 4 for the interaction
// family (gap 0.5).
func TestExponentPeriod(t *testing.T) {
	de, err := gates.NewDoubleExcitationGate()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, gates.ExponentPeriod(de), tol)

	xy, err := gates.NewXXYYPowGate()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, gates.ExponentPeriod(xy), tol)

	yx, err := gates.NewYXXYPowGate()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, gates.ExponentPeriod(yx), tol)

	cxy, err := gates.NewCXXYYPowGate()
	require.NoError(t, err)
	assert.InDelta(t, 4.0, gates.ExponentPeriod(cxy), tol)
}

// TestSameEffect_PeriodWrap verifies that gates whose exponents differ by
// a full period implement the same operator.
func TestSameEffect_PeriodWrap(t *testing.T) {
	a, err := gates.NewYXXYPowGate(gates.WithExponent(circuit.Num(0.3)))
	require.NoError(t, err)
	b, err := gates.NewYXXYPowGate(gates.WithExponent(circuit.Num(4.3)))
	require.NoError(t, err)
	assert.True(t, gates.SameEffect(a, b, 1e-6))

	c, err := gates.NewYXXYPowGate(gates.WithExponent(circuit.Num(0.4)))
	require.NoError(t, err)
	assert.False(t, gates.SameEffect(a, c, 1e-6))
}

// allGates instantiates one of each gate variant at exponent 0.3 (and
// non-trivial weights for the combined gate).
func allGates(t *testing.T) []gates.EigenGate {
	t.Helper()
	opt := gates.WithExponent(circuit.Num(0.3))

	de, err := gates.NewDoubleExcitationGate(opt)
	require.NoError(t, err)
	cde, err := gates.NewCombinedDoubleExcitationGate([3]float64{0.7, -0.3, 1.1}, opt)
	require.NoError(t, err)
	xy, err := gates.NewXXYYPowGate(opt)
	require.NoError(t, err)
	yx, err := gates.NewYXXYPowGate(opt)
	require.NoError(t, err)
	cxy, err := gates.NewCXXYYPowGate(opt)
	require.NoError(t, err)
	cyx, err := gates.NewCYXXYPowGate(opt)
	require.NoError(t, err)

	return []gates.EigenGate{de, cde, xy, yx, cxy, cyx}
}

// ---------- test helpers ----------

// cIdentity builds the dim×dim complex identity.
func cIdentity(dim int) *mat.CDense {
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// cEqual compares two complex matrices entrywise within tolerance.
func cEqual(a, b *mat.CDense, tol float64) bool {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		return false
	}
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			if cmplx.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}

	return true
}

// matProd multiplies two square complex matrices entrywise; CDense has
// no arithmetic methods of its own.
func matProd(a, b *mat.CDense) *mat.CDense {
	r, _ := a.Dims()
	out := mat.NewCDense(r, r, nil)
	for i := 0; i < r; i++ {
		for k := 0; k < r; k++ {
			v := a.At(i, k)
			if v == 0 {
				continue
			}
			for j := 0; j < r; j++ {
				out.Set(i, j, out.At(i, j)+v*b.At(k, j))
			}
		}
	}

	return out
}

// matAdjoint returns the conjugate transpose of a square complex matrix.
func matAdjoint(a *mat.CDense) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(a.At(i, j)))
		}
	}

	return out
}

// matVec multiplies a complex matrix by a state vector.
func matVec(u *mat.CDense, s []complex128) []complex128 {
	r, c := u.Dims()
	out := make([]complex128, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out[i] += u.At(i, j) * s[j]
		}
	}

	return out
}

// stateEqual compares two state vectors componentwise within tolerance.
func stateEqual(a, b []complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmplx.Abs(a[i]-b[i]) > tol {
			return false
		}
	}

	return true
}

// decomposeMatchesUnitary composes ops on n qubits and compares against
// the gate's reconstructed unitary up to global phase.
func decomposeMatchesUnitary(t *testing.T, g gates.EigenGate, ops []circuit.Op, n int) {
	t.Helper()
	u, err := gates.Unitary(g)
	require.NoError(t, err)
	v, err := circuit.Compose(ops, n)
	require.NoError(t, err)
	assert.True(t, circuit.EqualUpToGlobalPhase(u, v, 1e-6),
		"decomposition must reconstruct the unitary up to global phase")
}
