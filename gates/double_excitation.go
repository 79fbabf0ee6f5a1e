// SPDX-License-Identifier: MIT

package gates

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/circuit"
)

// Basis-state indices exchanged by the double excitation on four qubits.
const (
	doubleExcLow  = 0b0011 // 3
	doubleExcHigh = 0b1100 // 12
)

// DoubleExcitationGate evolves under −|0011⟩⟨1100| + h.c. for some time,
// i.e. it rotates the |0011⟩ and |1100⟩ basis states of a 4-qubit
// register into each other while leaving every other state untouched.
//
// Eigen-decomposition: eigenvalue 0 on everything except the two swapped
// states; eigenvalues ∓1 on the swap/anti-swap components at (3, 12).
// The exponent period is 2.
type DoubleExcitationGate struct {
	exponent circuit.Exponent
}

// NewDoubleExcitationGate constructs the gate from at most one angle
// spelling (WithExponent / WithRads / WithDegs / WithDuration); more
// than one fails with ErrRedundantAngle. With no angle the default of
// one half-turn applies.
func NewDoubleExcitationGate(opts ...Option) (*DoubleExcitationGate, error) {
	c, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &DoubleExcitationGate{exponent: c.exponent}, nil
}

// DoubleExcitation is the gate at exactly one half-turn: both swapped
// states pick up a −1 phase while every other state is untouched.
func DoubleExcitation() *DoubleExcitationGate {
	return &DoubleExcitationGate{exponent: circuit.Num(1)}
}

// NumQubits returns 4.
func (g *DoubleExcitationGate) NumQubits() int { return 4 }

// Exponent returns the gate's exponent in half-turns.
func (g *DoubleExcitationGate) Exponent() circuit.Exponent { return g.exponent }

// WithExponent returns a copy of the gate at a different exponent.
func (g *DoubleExcitationGate) WithExponent(t circuit.Exponent) *DoubleExcitationGate {
	return &DoubleExcitationGate{exponent: t}
}

// EigenComponents returns the gate's (eigenvalue, projector) pairs.
func (g *DoubleExcitationGate) EigenComponents() []EigenComponent {
	zero := mat.NewCDense(16, 16, nil)
	for i := 0; i < 16; i++ {
		if i != doubleExcLow && i != doubleExcHigh {
			zero.Set(i, i, 1)
		}
	}

	return []EigenComponent{
		{Eigenvalue: 0, Projector: zero},
		{Eigenvalue: -1, Projector: mustSwapComponent("0011", "1100", -1)},
		{Eigenvalue: 1, Projector: mustSwapComponent("0011", "1100", 1)},
	}
}

// ApplyTo applies the gate directly to a 16-dimensional state vector by
// rotating the two relevant amplitudes with the 2×2 matrix Rx(−2π·t).
// This produces the same result as applying the eigen-reconstruction
// unitary.
//
// ok is false when the exponent is symbolic — the not-applicable
// sentinel; callers fall back to the decomposition. err reports a state
// of the wrong dimension.
func (g *DoubleExcitationGate) ApplyTo(state []complex128) (out []complex128, ok bool, err error) {
	t, concrete := g.exponent.Float()
	if !concrete {
		return nil, false, nil
	}
	if len(state) != 16 {
		return nil, false, ErrStateDimension
	}

	inner := rx(-2 * math.Pi * t)

	return circuit.ApplyTwoLevel(state, inner, doubleExcLow, doubleExcHigh), true, nil
}

// Decompose expresses the gate on wires (p, q, r, s) as a flat sequence
// of elementary operations whose composition equals the gate's unitary
// up to global phase, for any real exponent.
func (g *DoubleExcitationGate) Decompose(p, q, r, s int) []circuit.Op {
	t := g.exponent

	rqPhase := []circuit.Op{
		circuit.ZPow(circuit.Num(0.125), q),
		circuit.CNOT(r, q),
		circuit.ZPow(circuit.Num(-0.125), q),
	}
	srqParity := []circuit.Op{
		circuit.CNOT(s, r),
		circuit.CNOT(r, q),
		circuit.CNOT(s, r),
	}
	phaseParity := circuit.Ops(rqPhase, srqParity, rqPhase)

	return circuit.Ops(
		[]circuit.Op{
			circuit.CNOT(r, s),
			circuit.CNOT(q, p),
			circuit.CNOT(q, r),
			circuit.XPow(t.Neg(), q),
		},
		phaseParity,
		[]circuit.Op{circuit.CNOT(p, q), circuit.X(q)},
		phaseParity,
		[]circuit.Op{circuit.XPow(t, q)},
		phaseParity,
		[]circuit.Op{circuit.CNOT(p, q), circuit.X(q)},
		phaseParity,
		[]circuit.Op{
			circuit.CNOT(q, p),
			circuit.CNOT(q, r),
			circuit.CNOT(r, s),
		},
	)
}

// Equal implements the periodic-equality rule: exponents compare modulo
// the spectrum period (2 for this gate), so exponent 1.5 equals −0.5.
func (g *DoubleExcitationGate) Equal(o *DoubleExcitationGate) bool {
	a, okA := CanonicalExponent(g)
	b, okB := CanonicalExponent(o)
	if !okA || !okB {
		return okA == okB && g.exponent == o.exponent
	}

	return a.Equal(b, periodicTol)
}

// Diagram returns the wire symbols and exponent annotation.
func (g *DoubleExcitationGate) Diagram(unicode bool) DiagramInfo {
	wires := []string{`/\ \/`, `/\ \/`, `\/ /\`, `\/ /\`}
	if unicode {
		wires = []string{"⇅", "⇅", "⇵", "⇵"}
	}

	return DiagramInfo{
		WireSymbols: wires,
		Exponent:    diagramExponent(g.exponent, ExponentPeriod(g)),
	}
}

// String returns the canonical reconstruction expression.
func (g *DoubleExcitationGate) String() string {
	if v, ok := g.exponent.Float(); ok && v == 1 {
		return "DoubleExcitation"
	}

	return "DoubleExcitation**" + expString(g.exponent)
}

// --- circuit.Gate / circuit.Resolver ---

// Name implements circuit.Gate.
func (g *DoubleExcitationGate) Name() string { return "DoubleExcitation" }

// Arity implements circuit.Gate.
func (g *DoubleExcitationGate) Arity() int { return 4 }

// Unitary implements circuit.Gate via the shared eigen reconstruction.
func (g *DoubleExcitationGate) Unitary() (*mat.CDense, error) { return Unitary(g) }

// Inverse implements circuit.Gate.
func (g *DoubleExcitationGate) Inverse() circuit.Gate {
	return g.WithExponent(g.exponent.Neg())
}

// ResolveGate implements circuit.Resolver.
func (g *DoubleExcitationGate) ResolveGate(b circuit.Binding) (circuit.Gate, error) {
	t, err := g.exponent.Resolve(b)
	if err != nil {
		return nil, err
	}

	return g.WithExponent(t), nil
}

// rx is the 2×2 rotation e^{-iθX/2}.
func rx(theta float64) [2][2]complex128 {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))

	return [2][2]complex128{{c, s}, {s, c}}
}
