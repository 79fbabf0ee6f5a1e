// SPDX-License-Identifier: MIT

// Package gates: 2-qubit interaction gates. XXYYPowGate evolves under
// the XX+YY coupling, YXXYPowGate under YX−XY (a Givens rotation in the
// single-excitation subspace). Both act only on the {|01⟩, |10⟩} block;
// the exponent period is 4.

package gates

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/circuit"
)

// XXYYPowGate is the XX + YY interaction raised to an exponent.
type XXYYPowGate struct {
	exponent circuit.Exponent
}

// NewXXYYPowGate constructs the gate from at most one angle spelling.
func NewXXYYPowGate(opts ...Option) (*XXYYPowGate, error) {
	c, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &XXYYPowGate{exponent: c.exponent}, nil
}

// Rxxyy is the XX+YY evolution by an angle in radians
// (exponent = 2·rads/π).
func Rxxyy(rads float64) *XXYYPowGate {
	return &XXYYPowGate{exponent: circuit.Num(2 * rads / math.Pi)}
}

// NumQubits returns 2.
func (g *XXYYPowGate) NumQubits() int { return 2 }

// Exponent returns the gate's exponent in half-turns.
func (g *XXYYPowGate) Exponent() circuit.Exponent { return g.exponent }

// WithExponent returns a copy at a different exponent.
func (g *XXYYPowGate) WithExponent(t circuit.Exponent) *XXYYPowGate {
	return &XXYYPowGate{exponent: t}
}

// EigenComponents returns the gate's (eigenvalue, projector) pairs:
// eigenvalue 0 outside the single-excitation block, ∓0.5 on the
// symmetric/antisymmetric swap components inside it.
func (g *XXYYPowGate) EigenComponents() []EigenComponent {
	zero := mat.NewCDense(4, 4, nil)
	zero.Set(0, 0, 1)
	zero.Set(3, 3, 1)

	return []EigenComponent{
		{Eigenvalue: 0, Projector: zero},
		{Eigenvalue: -0.5, Projector: mustSwapComponent("01", "10", 1)},
		{Eigenvalue: 0.5, Projector: mustSwapComponent("01", "10", -1)},
	}
}

// Decompose expresses XXYY^t on wires (a, b) by conjugating the Givens
// rotation with Z^±0.5 on the first wire.
func (g *XXYYPowGate) Decompose(a, b int) []circuit.Op {
	return []circuit.Op{
		circuit.ZPow(circuit.Num(0.5), a),
		circuit.YXXYPow(g.exponent, a, b),
		circuit.ZPow(circuit.Num(-0.5), a),
	}
}

// Equal implements the periodic-equality rule (period 4).
func (g *XXYYPowGate) Equal(o *XXYYPowGate) bool { return sameCanonicalExponent(g, o) }

// Diagram returns the wire symbols and exponent annotation.
func (g *XXYYPowGate) Diagram(unicode bool) DiagramInfo {
	return DiagramInfo{
		WireSymbols: []string{"XXYY", "XXYY"},
		Exponent:    diagramExponent(g.exponent, ExponentPeriod(g)),
	}
}

// String returns the canonical reconstruction expression.
func (g *XXYYPowGate) String() string { return powString("XXYY", g.exponent) }

// Name implements circuit.Gate.
func (g *XXYYPowGate) Name() string { return "XXYY" }

// Arity implements circuit.Gate.
func (g *XXYYPowGate) Arity() int { return 2 }

// Unitary implements circuit.Gate via the shared eigen reconstruction.
func (g *XXYYPowGate) Unitary() (*mat.CDense, error) { return Unitary(g) }

// Inverse implements circuit.Gate.
func (g *XXYYPowGate) Inverse() circuit.Gate { return g.WithExponent(g.exponent.Neg()) }

// ResolveGate implements circuit.Resolver.
func (g *XXYYPowGate) ResolveGate(b circuit.Binding) (circuit.Gate, error) {
	t, err := g.exponent.Resolve(b)
	if err != nil {
		return nil, err
	}

	return g.WithExponent(t), nil
}

// YXXYPowGate is the YX − XY interaction raised to an exponent: the
// Givens rotation by π·t/2 in the single-excitation subspace.
type YXXYPowGate struct {
	exponent circuit.Exponent
}

// NewYXXYPowGate constructs the gate from at most one angle spelling.
func NewYXXYPowGate(opts ...Option) (*YXXYPowGate, error) {
	c, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return &YXXYPowGate{exponent: c.exponent}, nil
}

// Ryxxy is the Givens rotation by an angle in radians
// (exponent = 2·rads/π).
func Ryxxy(rads float64) *YXXYPowGate {
	return &YXXYPowGate{exponent: circuit.Num(2 * rads / math.Pi)}
}

// NumQubits returns 2.
func (g *YXXYPowGate) NumQubits() int { return 2 }

// Exponent returns the gate's exponent in half-turns.
func (g *YXXYPowGate) Exponent() circuit.Exponent { return g.exponent }

// WithExponent returns a copy at a different exponent.
func (g *YXXYPowGate) WithExponent(t circuit.Exponent) *YXXYPowGate {
	return &YXXYPowGate{exponent: t}
}

// EigenComponents returns the gate's (eigenvalue, projector) pairs. The
// off-diagonal entries are imaginary: the rotation is real.
func (g *YXXYPowGate) EigenComponents() []EigenComponent {
	zero := mat.NewCDense(4, 4, nil)
	zero.Set(0, 0, 1)
	zero.Set(3, 3, 1)

	minus := mat.NewCDense(4, 4, nil)
	minus.Set(1, 1, 0.5)
	minus.Set(2, 2, 0.5)
	minus.Set(1, 2, complex(0, -0.5))
	minus.Set(2, 1, complex(0, 0.5))

	plus := mat.NewCDense(4, 4, nil)
	plus.Set(1, 1, 0.5)
	plus.Set(2, 2, 0.5)
	plus.Set(1, 2, complex(0, 0.5))
	plus.Set(2, 1, complex(0, -0.5))

	return []EigenComponent{
		{Eigenvalue: 0, Projector: zero},
		{Eigenvalue: -0.5, Projector: minus},
		{Eigenvalue: 0.5, Projector: plus},
	}
}

// Decompose maps onto the elementary Givens rotation directly.
func (g *YXXYPowGate) Decompose(a, b int) []circuit.Op {
	return []circuit.Op{circuit.YXXYPow(g.exponent, a, b)}
}

// Equal implements the periodic-equality rule (period 4).
func (g *YXXYPowGate) Equal(o *YXXYPowGate) bool { return sameCanonicalExponent(g, o) }

// Diagram returns the wire symbols and exponent annotation.
func (g *YXXYPowGate) Diagram(unicode bool) DiagramInfo {
	return DiagramInfo{
		WireSymbols: []string{"YXXY", "#2"},
		Exponent:    diagramExponent(g.exponent, ExponentPeriod(g)),
	}
}

// String returns the canonical reconstruction expression.
func (g *YXXYPowGate) String() string { return powString("YXXY", g.exponent) }

// Name implements circuit.Gate.
func (g *YXXYPowGate) Name() string { return "YXXY" }

// Arity implements circuit.Gate.
func (g *YXXYPowGate) Arity() int { return 2 }

// Unitary implements circuit.Gate via the shared eigen reconstruction.
func (g *YXXYPowGate) Unitary() (*mat.CDense, error) { return Unitary(g) }

// Inverse implements circuit.Gate.
func (g *YXXYPowGate) Inverse() circuit.Gate { return g.WithExponent(g.exponent.Neg()) }

// ResolveGate implements circuit.Resolver.
func (g *YXXYPowGate) ResolveGate(b circuit.Binding) (circuit.Gate, error) {
	t, err := g.exponent.Resolve(b)
	if err != nil {
		return nil, err
	}

	return g.WithExponent(t), nil
}

// sameCanonicalExponent compares two gates by canonical exponent over
// their spectrum periods.
func sameCanonicalExponent(a, b EigenGate) bool {
	pa, okA := CanonicalExponent(a)
	pb, okB := CanonicalExponent(b)
	if !okA || !okB {
		return okA == okB && a.Exponent() == b.Exponent()
	}

	return pa.Equal(pb, periodicTol)
}

// powString renders name or name**t.
func powString(name string, t circuit.Exponent) string {
	if v, ok := t.Float(); ok && v == 1 {
		return name
	}

	return name + "**" + expString(t)
}
