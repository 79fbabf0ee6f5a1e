package ansatz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/ansatz"
	"github.com/katalvlaran/fermiq/circuit"
)

// fixtureHamiltonian builds a dense 4-qubit interaction operator whose
// two-body tensor is an exact rank-2 sum of squared one-body terms. The
// two coupling matrices are Frobenius-orthogonal and nonsingular, so
// every factorization coefficient is comfortably above tolerance.
func fixtureHamiltonian(t *testing.T) *ansatz.InteractionOperator {
	t.Helper()

	oneBody := mat.NewSymDense(4, []float64{
		2.0, 0.1, 0.0, 0.1,
		0.1, 1.0, 0.1, 0.0,
		0.0, 0.1, -1.0, 0.1,
		0.1, 0.0, 0.1, 0.5,
	})

	// Traceless, so Frobenius-orthogonal to the identity below.
	g1 := [4][4]float64{
		{1.0, 0.1, 0.05, 0.1},
		{0.1, -1.0, 0.1, 0.05},
		{0.05, 0.1, 0.5, 0.1},
		{0.1, 0.05, 0.1, -0.5},
	}
	var g2 [4][4]float64
	for p := 0; p < 4; p++ {
		g2[p][p] = 1
	}

	twoBody := make([]float64, 256)
	for p := 0; p < 4; p++ {
		for q := 0; q < 4; q++ {
			for r := 0; r < 4; r++ {
				for s := 0; s < 4; s++ {
					twoBody[((p*4+q)*4+r)*4+s] = 1.5*g1[p][q]*g1[r][s] + 0.7*g2[p][q]*g2[r][s]
				}
			}
		}
	}

	h, err := ansatz.NewInteractionOperator(0.3, oneBody, twoBody)
	require.NoError(t, err)

	return h
}

// TestInteractionOperator_Validation covers the construction sentinels.
func TestInteractionOperator_Validation(t *testing.T) {
	_, err := ansatz.NewInteractionOperator(0, nil, make([]float64, 256))
	assert.ErrorIs(t, err, ansatz.ErrNilHamiltonian)

	_, err = ansatz.NewInteractionOperator(0, mat.NewSymDense(4, nil), make([]float64, 64))
	assert.ErrorIs(t, err, ansatz.ErrDimensionMismatch)

	h := fixtureHamiltonian(t)
	assert.Equal(t, 4, h.NumQubits())
}

// TestLowRankTrotter_ParamCountIncludeAll reproduces the closed form
// n + final_rank·(n + n(n-1)/2) per iteration.
func TestLowRankTrotter_ParamCountIncludeAll(t *testing.T) {
	h := fixtureHamiltonian(t)

	tr, err := ansatz.NewLowRankTrotter(h,
		ansatz.WithFinalRank(2), ansatz.WithAllZ(), ansatz.WithAllCZ())
	require.NoError(t, err)
	assert.Len(t, tr.Params(), 4+2*(4+6))

	tr, err = ansatz.NewLowRankTrotter(h,
		ansatz.WithFinalRank(2), ansatz.WithAllZ(), ansatz.WithAllCZ(),
		ansatz.WithIterations(2))
	require.NoError(t, err)
	assert.Len(t, tr.Params(), 2*(4+2*(4+6)))
}

// TestLowRankTrotter_ParamNames pins the full deterministic name set for
// the 4-qubit rank-2 configuration.
func TestLowRankTrotter_ParamNames(t *testing.T) {
	tr, err := ansatz.NewLowRankTrotter(fixtureHamiltonian(t), ansatz.WithFinalRank(2))
	require.NoError(t, err)

	want := []string{
		"U_0_0", "U_0_0_0", "U_0_1_0", "U_1_0",
		"U_1_0_0", "U_1_1_0", "U_2_0", "U_2_0_0",
		"U_2_1_0", "U_3_0", "U_3_0_0", "U_3_1_0",
		"V_0_1_0_0", "V_0_1_1_0", "V_0_2_0_0", "V_0_2_1_0",
		"V_0_3_0_0", "V_0_3_1_0", "V_1_2_0_0", "V_1_2_1_0",
		"V_1_3_0_0", "V_1_3_1_0", "V_2_3_0_0", "V_2_3_1_0",
	}
	assert.ElementsMatch(t, want, tr.Params())
}

// TestLowRankTrotter_ParamBounds verifies the (-1, 1) box per parameter.
func TestLowRankTrotter_ParamBounds(t *testing.T) {
	tr, err := ansatz.NewLowRankTrotter(fixtureHamiltonian(t), ansatz.WithFinalRank(2))
	require.NoError(t, err)

	bounds := tr.ParamBounds()
	require.Len(t, bounds, len(tr.Params()))
	for _, b := range bounds {
		assert.Equal(t, [2]float64{-1.0, 1.0}, b)
	}
}

// TestLowRankTrotter_DefaultInitialParams checks the length contract and
// the (-1, 1] fold of every default value.
func TestLowRankTrotter_DefaultInitialParams(t *testing.T) {
	tr, err := ansatz.NewLowRankTrotter(fixtureHamiltonian(t))
	require.NoError(t, err)

	defaults := tr.DefaultInitialParams()
	require.Len(t, defaults, len(tr.Params()))
	for i, v := range defaults {
		assert.Greater(t, v, -1.0, "default %d", i)
		assert.LessOrEqual(t, v, 1.0, "default %d", i)
	}

	b := tr.DefaultBinding()
	require.Len(t, b, len(defaults))
	for _, name := range tr.Params() {
		_, ok := b[name]
		assert.True(t, ok, "binding must cover %s", name)
	}
}

// TestLowRankTrotter_Determinism verifies that re-instantiation from the
// same Hamiltonian and configuration reproduces the parameter order and
// the circuit rule exactly.
func TestLowRankTrotter_Determinism(t *testing.T) {
	build := func() *ansatz.LowRankTrotter {
		tr, err := ansatz.NewLowRankTrotter(fixtureHamiltonian(t),
			ansatz.WithFinalRank(2), ansatz.WithIterations(2))
		require.NoError(t, err)

		return tr
	}

	a, b := build(), build()
	assert.Equal(t, a.Params(), b.Params())
	assert.Equal(t, a.DefaultInitialParams(), b.DefaultInitialParams())

	aOps, bOps := a.Operations(), b.Operations()
	require.Len(t, bOps, len(aOps))
	for i := range aOps {
		assert.Equal(t, aOps[i].String(), bOps[i].String(), "op %d", i)
	}
}

// TestLowRankTrotter_ResolvedOperations substitutes the default binding
// and composes the result, proving the circuit rule is closed over the
// parameter set.
func TestLowRankTrotter_ResolvedOperations(t *testing.T) {
	tr, err := ansatz.NewLowRankTrotter(fixtureHamiltonian(t), ansatz.WithFinalRank(2))
	require.NoError(t, err)

	ops, err := tr.ResolvedOperations(tr.DefaultBinding())
	require.NoError(t, err)

	_, err = circuit.Compose(ops, tr.NumQubits())
	assert.NoError(t, err, "resolved rule must contain no leftover symbols")

	_, err = tr.ResolvedOperations(circuit.Binding{})
	assert.ErrorIs(t, err, circuit.ErrUnknownSymbol)
}

// TestLowRankTrotter_OptionValidation covers the option sentinels.
func TestLowRankTrotter_OptionValidation(t *testing.T) {
	h := fixtureHamiltonian(t)

	_, err := ansatz.NewLowRankTrotter(h, ansatz.WithIterations(0))
	assert.ErrorIs(t, err, ansatz.ErrBadOption)

	_, err = ansatz.NewLowRankTrotter(h, ansatz.WithFinalRank(0))
	assert.ErrorIs(t, err, ansatz.ErrBadOption)

	_, err = ansatz.NewLowRankTrotter(nil)
	assert.ErrorIs(t, err, ansatz.ErrNilHamiltonian)
}
