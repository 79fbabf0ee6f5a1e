package circuit_test

import (
	"testing"

	"github.com/katalvlaran/fermiq/circuit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExponent_NumIsConcrete verifies that Num yields a concrete value
// retrievable via Float.
func TestExponent_NumIsConcrete(t *testing.T) {
	e := circuit.Num(0.25)
	assert.False(t, e.IsSymbolic(), "Num must be concrete")

	v, ok := e.Float()
	assert.True(t, ok, "Float must succeed on concrete exponent")
	assert.Equal(t, 0.25, v, "Float must return the constructed value")
}

// TestExponent_SymIsSymbolic verifies that Sym yields a symbolic exponent
// whose Float reports not-applicable.
func TestExponent_SymIsSymbolic(t *testing.T) {
	e := circuit.Sym("theta")
	assert.True(t, e.IsSymbolic(), "Sym must be symbolic")
	assert.Equal(t, "theta", e.Symbol(), "Symbol must return the name")

	_, ok := e.Float()
	assert.False(t, ok, "Float must report not-applicable for symbols")
}

// TestExponent_ScaleAndNeg verifies coefficient arithmetic on both
// concrete and symbolic exponents.
func TestExponent_ScaleAndNeg(t *testing.T) {
	v, ok := circuit.Num(0.5).Scale(3).Float()
	require.True(t, ok)
	assert.Equal(t, 1.5, v, "Scale must multiply concrete values")

	v, ok = circuit.Num(0.5).Neg().Float()
	require.True(t, ok)
	assert.Equal(t, -0.5, v, "Neg must negate concrete values")

	e := circuit.Sym("a").Scale(-0.25)
	assert.True(t, e.IsSymbolic(), "Scale must preserve the symbol")
	assert.Equal(t, "-0.25*a", e.String(), "String must render coeff*symbol")
}

// TestExponent_Resolve verifies substitution against a Binding, including
// the ErrUnknownSymbol failure path.
func TestExponent_Resolve(t *testing.T) {
	b := circuit.Binding{"a": 0.5}

	r, err := circuit.Sym("a").Scale(2).Resolve(b)
	require.NoError(t, err, "known symbol must resolve")
	v, ok := r.Float()
	require.True(t, ok)
	assert.Equal(t, 1.0, v, "resolution must apply the coefficient")

	_, err = circuit.Sym("b").Resolve(b)
	assert.ErrorIs(t, err, circuit.ErrUnknownSymbol, "missing symbol must error")

	r, err = circuit.Num(0.75).Resolve(circuit.Binding{})
	require.NoError(t, err, "concrete exponents pass through")
	v, _ = r.Float()
	assert.Equal(t, 0.75, v)
}

// TestExponent_String covers the canonical renderings.
func TestExponent_String(t *testing.T) {
	assert.Equal(t, "0.5", circuit.Num(0.5).String())
	assert.Equal(t, "theta", circuit.Sym("theta").String())
	assert.Equal(t, "2*theta", circuit.Sym("theta").Scale(2).String())
}
