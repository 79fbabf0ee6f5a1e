// SPDX-License-Identifier: MIT

// Package gates: controlled 3-qubit interaction gates. Each wraps a
// 2-qubit interaction with an extra control wire: identity on the
// control=0 subspace, the interaction's eigen-components tensored onto
// the control=1 subspace. The exponent period is 4.

package gates

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/circuit"
)

// CXXYYPowGate is the controlled XX + YY interaction.
type CXXYYPowGate struct {
	exponent circuit.Exponent
}

// NewCXXYYPowGate constructs the gate from at most one angle spelling.
func NewCXXYYPowGate(opts ...Option) (*CXXYYPowGate, error) {
	c, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &CXXYYPowGate{exponent: c.exponent}, nil
}

// CRxxyy is the controlled XX+YY evolution by an angle in radians
// (exponent = 2·rads/π).
func CRxxyy(rads float64) *CXXYYPowGate {
	return &CXXYYPowGate{exponent: circuit.Num(2 * rads / math.Pi)}
}

// NumQubits returns 3: control first, then the interaction pair.
func (g *CXXYYPowGate) NumQubits() int { return 3 }

// Exponent returns the gate's exponent in half-turns.
func (g *CXXYYPowGate) Exponent() circuit.Exponent { return g.exponent }

// WithExponent returns a copy at a different exponent.
func (g *CXXYYPowGate) WithExponent(t circuit.Exponent) *CXXYYPowGate {
	return &CXXYYPowGate{exponent: t}
}

// EigenComponents returns identity on every basis state with control=0,
// plus the interaction's ± components on the control=1 single-excitation
// block (basis states |101⟩ and |110⟩).
func (g *CXXYYPowGate) EigenComponents() []EigenComponent {
	return []EigenComponent{
		{Eigenvalue: 0, Projector: controlledZeroProjector()},
		{Eigenvalue: -0.5, Projector: mustSwapComponent("101", "110", 1)},
		{Eigenvalue: 0.5, Projector: mustSwapComponent("101", "110", -1)},
	}
}

// ApplyTo applies the controlled interaction directly to an
// 8-dimensional state: the XXYY^t unitary on the control=1 subspace.
// ok is false when the exponent is symbolic.
func (g *CXXYYPowGate) ApplyTo(state []complex128) (out []complex128, ok bool, err error) {
	return applyControlled(state, &XXYYPowGate{exponent: g.exponent})
}

// Decompose expresses the gate on wires (control, a, b) with one
// doubly-controlled phase plus a half-exponent correction phase,
// bracketed by a Hadamard-based basis change.
func (g *CXXYYPowGate) Decompose(control, a, b int) []circuit.Op {
	return []circuit.Op{
		circuit.CNOT(a, b),
		circuit.H(a),
		circuit.CCZPow(g.exponent, control, a, b),
		circuit.CZPow(g.exponent.Scale(-0.5), control, b),
		circuit.H(a),
		circuit.CNOT(a, b),
	}
}

// Equal implements the periodic-equality rule (period 4).
func (g *CXXYYPowGate) Equal(o *CXXYYPowGate) bool { return sameCanonicalExponent(g, o) }

// Diagram returns the wire symbols and exponent annotation.
func (g *CXXYYPowGate) Diagram(unicode bool) DiagramInfo {
	return DiagramInfo{
		WireSymbols: []string{"@", "XXYY", "XXYY"},
		Exponent:    diagramExponent(g.exponent, ExponentPeriod(g)),
	}
}

// String returns the canonical reconstruction expression.
func (g *CXXYYPowGate) String() string { return powString("CXXYY", g.exponent) }

// Name implements circuit.Gate.
func (g *CXXYYPowGate) Name() string { return "CXXYY" }

// Arity implements circuit.Gate.
func (g *CXXYYPowGate) Arity() int { return 3 }

// Unitary implements circuit.Gate via the shared eigen reconstruction.
func (g *CXXYYPowGate) Unitary() (*mat.CDense, error) { return Unitary(g) }

// Inverse implements circuit.Gate.
func (g *CXXYYPowGate) Inverse() circuit.Gate { return g.WithExponent(g.exponent.Neg()) }

// ResolveGate implements circuit.Resolver.
func (g *CXXYYPowGate) ResolveGate(b circuit.Binding) (circuit.Gate, error) {
	t, err := g.exponent.Resolve(b)
	if err != nil {
		return nil, err
	}

	return g.WithExponent(t), nil
}

// CYXXYPowGate is the controlled YX − XY interaction.
type CYXXYPowGate struct {
	exponent circuit.Exponent
}

// NewCYXXYPowGate constructs the gate from at most one angle spelling.
func NewCYXXYPowGate(opts ...Option) (*CYXXYPowGate, error) {
	c, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &CYXXYPowGate{exponent: c.exponent}, nil
}

// CRyxxy is the controlled Givens rotation by an angle in radians
// (exponent = 2·rads/π).
func CRyxxy(rads float64) *CYXXYPowGate {
	return &CYXXYPowGate{exponent: circuit.Num(2 * rads / math.Pi)}
}

// NumQubits returns 3: control first, then the interaction pair.
func (g *CYXXYPowGate) NumQubits() int { return 3 }

// Exponent returns the gate's exponent in half-turns.
func (g *CYXXYPowGate) Exponent() circuit.Exponent { return g.exponent }

// WithExponent returns a copy at a different exponent.
func (g *CYXXYPowGate) WithExponent(t circuit.Exponent) *CYXXYPowGate {
	return &CYXXYPowGate{exponent: t}
}

// EigenComponents mirrors CXXYYPowGate with imaginary off-diagonal
// entries on the control=1 block.
func (g *CYXXYPowGate) EigenComponents() []EigenComponent {
	minus := mat.NewCDense(8, 8, nil)
	minus.Set(5, 5, 0.5)
	minus.Set(6, 6, 0.5)
	minus.Set(5, 6, complex(0, -0.5))
	minus.Set(6, 5, complex(0, 0.5))

	plus := mat.NewCDense(8, 8, nil)
	plus.Set(5, 5, 0.5)
	plus.Set(6, 6, 0.5)
	plus.Set(5, 6, complex(0, 0.5))
	plus.Set(6, 5, complex(0, -0.5))

	return []EigenComponent{
		{Eigenvalue: 0, Projector: controlledZeroProjector()},
		{Eigenvalue: -0.5, Projector: minus},
		{Eigenvalue: 0.5, Projector: plus},
	}
}

// ApplyTo applies the controlled interaction directly to an
// 8-dimensional state: the YXXY^t unitary on the control=1 subspace.
// ok is false when the exponent is symbolic.
func (g *CYXXYPowGate) ApplyTo(state []complex128) (out []complex128, ok bool, err error) {
	return applyControlled(state, &YXXYPowGate{exponent: g.exponent})
}

// Decompose mirrors CXXYYPowGate with a π/2 X-rotation basis change
// instead of Hadamards.
func (g *CYXXYPowGate) Decompose(control, a, b int) []circuit.Op {
	return []circuit.Op{
		circuit.CNOT(a, b),
		circuit.XPow(circuit.Num(0.5), a),
		circuit.CCZPow(g.exponent, control, a, b),
		circuit.CZPow(g.exponent.Scale(-0.5), control, b),
		circuit.XPow(circuit.Num(-0.5), a),
		circuit.CNOT(a, b),
	}
}

// Equal implements the periodic-equality rule (period 4).
func (g *CYXXYPowGate) Equal(o *CYXXYPowGate) bool { return sameCanonicalExponent(g, o) }

// Diagram returns the wire symbols and exponent annotation.
func (g *CYXXYPowGate) Diagram(unicode bool) DiagramInfo {
	return DiagramInfo{
		WireSymbols: []string{"@", "YXXY", "#2"},
		Exponent:    diagramExponent(g.exponent, ExponentPeriod(g)),
	}
}

// String returns the canonical reconstruction expression.
func (g *CYXXYPowGate) String() string { return powString("CYXXY", g.exponent) }

// Name implements circuit.Gate.
func (g *CYXXYPowGate) Name() string { return "CYXXY" }

// Arity implements circuit.Gate.
func (g *CYXXYPowGate) Arity() int { return 3 }

// Unitary implements circuit.Gate via the shared eigen reconstruction.
func (g *CYXXYPowGate) Unitary() (*mat.CDense, error) { return Unitary(g) }

// Inverse implements circuit.Gate.
func (g *CYXXYPowGate) Inverse() circuit.Gate { return g.WithExponent(g.exponent.Neg()) }

// ResolveGate implements circuit.Resolver.
func (g *CYXXYPowGate) ResolveGate(b circuit.Binding) (circuit.Gate, error) {
	t, err := g.exponent.Resolve(b)
	if err != nil {
		return nil, err
	}

	return g.WithExponent(t), nil
}

// controlledZeroProjector is the λ=0 projector shared by both controlled
// gates: identity everywhere except the control=1 single-excitation
// block {|101⟩, |110⟩}.
func controlledZeroProjector() *mat.CDense {
	zero := mat.NewCDense(8, 8, nil)
	for i := 0; i < 8; i++ {
		if i != 5 && i != 6 {
			zero.Set(i, i, 1)
		}
	}

	return zero
}

// applyControlled applies sub's unitary to the control=1 half of an
// 8-dimensional state vector.
func applyControlled(state []complex128, sub EigenGate) (out []complex128, ok bool, err error) {
	if sub.Exponent().IsSymbolic() {
		return nil, false, nil
	}
	if len(state) != 8 {
		return nil, false, ErrStateDimension
	}
	u, err := Unitary(sub)
	if err != nil {
		return nil, false, err
	}

	out = make([]complex128, 8)
	copy(out, state[:4])
	for i := 0; i < 4; i++ {
		var acc complex128
		for j := 0; j < 4; j++ {
			acc += u.At(i, j) * state[4+j]
		}
		out[4+i] = acc
	}

	return out, true, nil
}
