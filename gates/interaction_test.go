package gates_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/circuit"
	"github.com/katalvlaran/fermiq/gates"
)

var interactionExponents = []float64{1.0, 0.5, 0.25, 0.1, 0.0, -0.5, 7. / 3}

// TestXXYY_DecomposeMatchesUnitary verifies the Z-conjugated Givens
// decomposition over an exponent spread.
func TestXXYY_DecomposeMatchesUnitary(t *testing.T) {
	for _, exp := range interactionExponents {
		g, err := gates.NewXXYYPowGate(gates.WithExponent(circuit.Num(exp)))
		require.NoError(t, err)
		decomposeMatchesUnitary(t, g, g.Decompose(0, 1), 2)
	}
}

// TestXXYY_UnitaryAtHalfTurn pins the exact matrix at exponent 1: an
// iSWAP-style exchange with -i amplitudes.
func TestXXYY_UnitaryAtHalfTurn(t *testing.T) {
	g, err := gates.NewXXYYPowGate()
	require.NoError(t, err)
	u, err := g.Unitary()
	require.NoError(t, err)

	want := mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, -1i, 0,
		0, -1i, 0, 0,
		0, 0, 0, 1,
	})
	assert.True(t, cEqual(u, want, tol))
}

// TestYXXY_UnitaryIsRealGivensRotation checks the generic-exponent block:
// a real rotation by π·t/2 in the single-excitation subspace.
func TestYXXY_UnitaryIsRealGivensRotation(t *testing.T) {
	const exp = 0.3
	g, err := gates.NewYXXYPowGate(gates.WithExponent(circuit.Num(exp)))
	require.NoError(t, err)
	u, err := g.Unitary()
	require.NoError(t, err)

	c := math.Cos(math.Pi * exp / 2)
	s := math.Sin(math.Pi * exp / 2)
	assert.InDelta(t, 0, cmplx.Abs(u.At(1, 1)-complex(c, 0)), tol)
	assert.InDelta(t, 0, cmplx.Abs(u.At(1, 2)-complex(-s, 0)), tol)
	assert.InDelta(t, 0, cmplx.Abs(u.At(2, 1)-complex(s, 0)), tol)
	assert.InDelta(t, 0, cmplx.Abs(u.At(2, 2)-complex(c, 0)), tol)
	assert.InDelta(t, 0, cmplx.Abs(u.At(0, 0)-1), tol)
	assert.InDelta(t, 0, cmplx.Abs(u.At(3, 3)-1), tol)
}

// TestYXXY_MatchesElementaryOp confirms the gate agrees with the
// elementary circuit-level Givens rotation it decomposes to.
func TestYXXY_MatchesElementaryOp(t *testing.T) {
	for _, exp := range interactionExponents {
		g, err := gates.NewYXXYPowGate(gates.WithExponent(circuit.Num(exp)))
		require.NoError(t, err)

		u, err := g.Unitary()
		require.NoError(t, err)
		v, err := circuit.Compose([]circuit.Op{circuit.YXXYPow(circuit.Num(exp), 0, 1)}, 2)
		require.NoError(t, err)
		assert.True(t, cEqual(u, v, tol), "exponent %v must match exactly, not only up to phase", exp)
	}
}

// TestRadianConstructors verifies the rads-to-exponent mapping of the
// rotation shorthands.
func TestRadianConstructors(t *testing.T) {
	v, ok := gates.Rxxyy(math.Pi / 2).Exponent().Float()
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, tol)

	v, ok = gates.Ryxxy(-math.Pi / 4).Exponent().Float()
	require.True(t, ok)
	assert.InDelta(t, -0.5, v, tol)
}

// TestInteraction_EqualityPeriod verifies the modulo-4 rule: a shift by
// the full period is the same operator, a shift by half of it is not.
func TestInteraction_EqualityPeriod(t *testing.T) {
	at := func(exp float64) *gates.XXYYPowGate {
		g, err := gates.NewXXYYPowGate(gates.WithExponent(circuit.Num(exp)))
		require.NoError(t, err)

		return g
	}

	assert.True(t, at(0.3).Equal(at(4.3)))
	assert.False(t, at(0.3).Equal(at(2.3)), "a 2-shift flips the interaction phases")
}

// TestInteraction_DiagramAndString pins the presentation forms.
func TestInteraction_DiagramAndString(t *testing.T) {
	xy, err := gates.NewXXYYPowGate(gates.WithExponent(circuit.Num(0.5)))
	require.NoError(t, err)
	info := xy.Diagram(true)
	assert.Equal(t, []string{"XXYY", "XXYY"}, info.WireSymbols)
	assert.Equal(t, "0.5", info.Exponent)
	assert.Equal(t, "XXYY**0.5", xy.String())

	yx, err := gates.NewYXXYPowGate()
	require.NoError(t, err)
	info = yx.Diagram(false)
	assert.Equal(t, []string{"YXXY", "#2"}, info.WireSymbols)
	assert.Equal(t, "", info.Exponent)
	assert.Equal(t, "YXXY", yx.String())
}
