// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/circuit"
)

// combinedPairs are the three disjoint pairs of Hamming-weight-2 basis
// states rotated into their bitwise complements, one per weight.
var combinedPairs = [3][2]string{
	{"1001", "0110"},
	{"0101", "1010"},
	{"0011", "1100"},
}

// weightPeriod is the period of weight·exponent for this gate family:
// each term has eigenvalues ±w/2, so the unitary is 4-periodic in w·t up
// to global phase.
const weightPeriod = 4.0

// CombinedDoubleExcitationGate rotates the Hamming-weight-2 basis states
// of a 4-qubit register into their bitwise complements. For weights
// (t₀, t₁, t₂) it is equivalent to
//
//	exp(0.5·π·i·(t₀·(|1001⟩⟨0110| + |0110⟩⟨1001|) +
//	             t₁·(|0101⟩⟨1010| + |1010⟩⟨0101|) +
//	             t₂·(|0011⟩⟨1100| + |1100⟩⟨0011|)))
//
// raised to the exponent. Only the periodic values (wₖ·t mod 4) are
// observable: two instances are the same operator iff those three values
// match, independent of how the weight/exponent split was chosen.
type CombinedDoubleExcitationGate struct {
	weights  [3]float64
	exponent circuit.Exponent
}

// NewCombinedDoubleExcitationGate constructs the gate from its three
// term weights and at most one angle spelling (ErrRedundantAngle
// otherwise; default one half-turn).
//
// Unless WithoutExponentAbsorption is given, a concrete exponent is
// absorbed into the weights at construction, normalizing the gate to
// exponent 1. Absorption never changes the operator.
func NewCombinedDoubleExcitationGate(weights [3]float64, opts ...Option) (*CombinedDoubleExcitationGate, error) {
	c, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	g := &CombinedDoubleExcitationGate{weights: weights, exponent: c.exponent}
	if !c.keepSplit && !g.exponent.IsSymbolic() {
		g.AbsorbExponentIntoWeights()
	}

	return g, nil
}

// NumQubits returns 4.
func (g *CombinedDoubleExcitationGate) NumQubits() int { return 4 }

// Exponent returns the gate's exponent in half-turns.
func (g *CombinedDoubleExcitationGate) Exponent() circuit.Exponent { return g.exponent }

// Weights returns the three term weights.
func (g *CombinedDoubleExcitationGate) Weights() [3]float64 { return g.weights }

// WithExponent returns a copy of the gate with the same weights at a
// different exponent (no absorption).
func (g *CombinedDoubleExcitationGate) WithExponent(t circuit.Exponent) *CombinedDoubleExcitationGate {
	return &CombinedDoubleExcitationGate{weights: g.weights, exponent: t}
}

// AbsorbExponentIntoWeights multiplies each weight by the exponent
// (modulo 4) and resets the exponent to 1. This is a canonical-form
// normalization: the reconstructed unitary is identical before and
// after. No-op while the exponent is symbolic.
func (g *CombinedDoubleExcitationGate) AbsorbExponentIntoWeights() {
	t, ok := g.exponent.Float()
	if !ok {
		return
	}
	for k := range g.weights {
		g.weights[k] = pmod(g.weights[k]*t, weightPeriod)
	}
	g.exponent = circuit.Num(1)
}

// EffectiveWeights returns the periodic values (wₖ·t mod 4) that define
// the gate's observable effect. ok is false while the exponent is
// symbolic.
func (g *CombinedDoubleExcitationGate) EffectiveWeights() (w [3]float64, ok bool) {
	t, ok := g.exponent.Float()
	if !ok {
		return w, false
	}
	for k := range g.weights {
		w[k] = pmod(g.weights[k]*t, weightPeriod)
	}

	return w, true
}

// EigenComponents returns the zero projector over Hamming-weight≠2
// states plus the six ± swap components, eigenvalue wₖ·sign/2 each.
func (g *CombinedDoubleExcitationGate) EigenComponents() []EigenComponent {
	zero := mat.NewCDense(16, 16, nil)
	for i := 0; i < 16; i++ {
		if bits.OnesCount(uint(i)) != 2 {
			zero.Set(i, i, 1)
		}
	}

	comps := []EigenComponent{{Eigenvalue: 0, Projector: zero}}
	for k, pair := range combinedPairs {
		for _, sign := range []int{-1, 1} {
			comps = append(comps, EigenComponent{
				Eigenvalue: g.weights[k] * float64(sign) / 2,
				Projector:  mustSwapComponent(pair[0], pair[1], sign),
			})
		}
	}

	return comps
}

// ApplyTo applies the gate directly to a 16-dimensional state vector:
// one 2×2 rotation Rx(−π·t·wₖ) per basis-state pair. Identical to the
// eigen-reconstruction unitary within numerical tolerance.
//
// ok is false when the exponent is symbolic (not-applicable sentinel).
func (g *CombinedDoubleExcitationGate) ApplyTo(state []complex128) (out []complex128, ok bool, err error) {
	t, concrete := g.exponent.Float()
	if !concrete {
		return nil, false, nil
	}
	if len(state) != 16 {
		return nil, false, ErrStateDimension
	}

	indexPairs := [3][2]int{{0b1001, 0b0110}, {0b0101, 0b1010}, {0b0011, 0b1100}}
	out = state
	for k, pair := range indexPairs {
		out = circuit.ApplyTwoLevel(out, rx(-math.Pi*t*g.weights[k]), pair[0], pair[1])
	}

	return out, true, nil
}

// weightsToExponents is the fixed linear transform from term weights to
// the three controlled-phase exponents of the decomposition body.
var weightsToExponents = [3][3]float64{
	{1, -1, 1},
	{1, 1, -1},
	{-1, 1, 1},
}

// Decompose expresses the gate on wires (a, b, c, d) as a flat sequence:
// a self-inverse basis-change bracket, a body of controlled-phase
// rotations with exponents (t/4)·M·w, the inverse of the reversed body,
// and the reversed bracket. The composition reconstructs the gate's
// unitary up to global phase.
func (g *CombinedDoubleExcitationGate) Decompose(a, b, c, d int) []circuit.Op {
	var exps [3]circuit.Exponent
	for k := 0; k < 3; k++ {
		var dot float64
		for m := 0; m < 3; m++ {
			dot += weightsToExponents[k][m] * g.weights[m]
		}
		exps[k] = g.exponent.Scale(dot / 4)
	}

	basisChange := []circuit.Op{
		circuit.CNOT(b, a),
		circuit.CNOT(c, b),
		circuit.CNOT(d, c),
		circuit.CNOT(c, b),
		circuit.CNOT(b, a),
		circuit.CNOT(a, b),
		circuit.CNOT(b, c),
		circuit.CNOT(a, b),
		circuit.X(c),
		circuit.X(d),
		circuit.CNOT(c, d),
		circuit.CNOT(d, c),
		circuit.X(c),
		circuit.X(d),
	}

	controlledZs := []circuit.Op{
		circuit.CZPow(exps[0], b, c),
		circuit.CNOT(a, b),
		circuit.CZPow(exps[1], b, c),
		circuit.CNOT(b, a),
		circuit.CNOT(a, b),
		circuit.CZPow(exps[2], b, c),
	}

	controlledSwaps := circuit.Ops(
		[]circuit.Op{circuit.CNOT(c, d), circuit.H(c), circuit.CNOT(d, c)},
		controlledZs,
		[]circuit.Op{circuit.CNOT(d, c)},
		circuit.Inverted(controlledZs),
		[]circuit.Op{circuit.H(c), circuit.CNOT(c, d)},
	)

	return circuit.Ops(basisChange, controlledSwaps, circuit.Reversed(basisChange))
}

// Equal implements the periodic-equality rule: the gates are the same
// operator iff all three effective values wₖ·t match modulo 4.
func (g *CombinedDoubleExcitationGate) Equal(o *CombinedDoubleExcitationGate) bool {
	wa, okA := g.EffectiveWeights()
	wb, okB := o.EffectiveWeights()
	if !okA || !okB {
		return okA == okB && g.weights == o.weights && g.exponent == o.exponent
	}
	for k := 0; k < 3; k++ {
		pa := PeriodicValue{Value: wa[k], Period: weightPeriod}
		pb := PeriodicValue{Value: wb[k], Period: weightPeriod}
		if !pa.Equal(pb, periodicTol) {
			return false
		}
	}

	return true
}

// Diagram returns the wire symbols and exponent annotation.
func (g *CombinedDoubleExcitationGate) Diagram(unicode bool) DiagramInfo {
	sym := "a*a*aa"
	if unicode {
		sym = "⇊⇈"
	}

	return DiagramInfo{
		WireSymbols: []string{sym, sym, sym, sym},
		Exponent:    diagramExponent(g.exponent, weightPeriod),
	}
}

// String returns the canonical reconstruction expression, always in the
// non-absorbing form so it round-trips through the constructor.
func (g *CombinedDoubleExcitationGate) String() string {
	return fmt.Sprintf("CombinedDoubleExcitation((%s, %s, %s), exponent=%s)",
		formatWeight(g.weights[0]), formatWeight(g.weights[1]), formatWeight(g.weights[2]),
		expString(g.exponent))
}

func formatWeight(w float64) string {
	return fmt.Sprintf("%g", w)
}

// --- circuit.Gate / circuit.Resolver ---

// Name implements circuit.Gate.
func (g *CombinedDoubleExcitationGate) Name() string { return "CombinedDoubleExcitation" }

// Arity implements circuit.Gate.
func (g *CombinedDoubleExcitationGate) Arity() int { return 4 }

// Unitary implements circuit.Gate via the shared eigen reconstruction.
func (g *CombinedDoubleExcitationGate) Unitary() (*mat.CDense, error) { return Unitary(g) }

// Inverse implements circuit.Gate.
func (g *CombinedDoubleExcitationGate) Inverse() circuit.Gate {
	return g.WithExponent(g.exponent.Neg())
}

// ResolveGate implements circuit.Resolver.
func (g *CombinedDoubleExcitationGate) ResolveGate(b circuit.Binding) (circuit.Gate, error) {
	t, err := g.exponent.Resolve(b)
	if err != nil {
		return nil, err
	}

	return g.WithExponent(t), nil
}
