// SPDX-License-Identifier: MIT

package circuit

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Gate is anything that can sit on circuit wires: a name for diagrams and
// reprs, a fixed arity, an exact unitary matrix (2^arity square), and an
// inverse. Gates carrying a symbolic exponent return ErrSymbolicExponent
// from Unitary until resolved.
type Gate interface {
	Name() string
	Arity() int
	Unitary() (*mat.CDense, error)
	Inverse() Gate
}

// Resolver is implemented by gates that may carry symbolic exponents.
type Resolver interface {
	ResolveGate(b Binding) (Gate, error)
}

// kind enumerates the elementary gate set.
type kind int

const (
	kindX kind = iota
	kindH
	kindCNOT
	kindXPow
	kindZPow
	kindCZPow
	kindCCZPow
	kindYXXYPow
)

var kindNames = map[kind]string{
	kindX:       "X",
	kindH:       "H",
	kindCNOT:    "CNOT",
	kindXPow:    "X",
	kindZPow:    "Z",
	kindCZPow:   "CZ",
	kindCCZPow:  "CCZ",
	kindYXXYPow: "YXXY",
}

var kindArity = map[kind]int{
	kindX:       1,
	kindH:       1,
	kindCNOT:    2,
	kindXPow:    1,
	kindZPow:    1,
	kindCZPow:   2,
	kindCCZPow:  3,
	kindYXXYPow: 2,
}

// elementary is the single concrete type behind the elementary gate set.
// Fixed gates (X, H, CNOT) ignore the exponent; powered gates carry it.
type elementary struct {
	kind kind
	t    Exponent
}

func (g elementary) Name() string { return kindNames[g.kind] }

func (g elementary) Arity() int { return kindArity[g.kind] }

// Exponent returns the gate's exponent; fixed gates report 1.
func (g elementary) Exponent() Exponent {
	switch g.kind {
	case kindX, kindH, kindCNOT:
		return Num(1)
	default:
		return g.t
	}
}

// Inverse negates the exponent of powered gates; X, H and CNOT are
// self-inverse.
func (g elementary) Inverse() Gate {
	switch g.kind {
	case kindX, kindH, kindCNOT:
		return g
	default:
		return elementary{kind: g.kind, t: g.t.Neg()}
	}
}

func (g elementary) ResolveGate(b Binding) (Gate, error) {
	t, err := g.t.Resolve(b)
	if err != nil {
		return nil, err
	}

	return elementary{kind: g.kind, t: t}, nil
}

// Unitary builds the exact matrix under the package conventions
// (see doc.go). X^t carries global phase e^{iπt/2} so that X^1 ≡ X.
func (g elementary) Unitary() (*mat.CDense, error) {
	switch g.kind {
	case kindX:
		return cdense(2, []complex128{
			0, 1,
			1, 0,
		}), nil
	case kindH:
		s := complex(1/math.Sqrt2, 0)

		return cdense(2, []complex128{
			s, s,
			s, -s,
		}), nil
	case kindCNOT:
		return cdense(4, []complex128{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
		}), nil
	}

	t, ok := g.t.Float()
	if !ok {
		return nil, ErrSymbolicExponent
	}

	switch g.kind {
	case kindXPow:
		phase := cmplx.Exp(complex(0, math.Pi*t/2))
		c := complex(math.Cos(math.Pi*t/2), 0)
		s := complex(0, -math.Sin(math.Pi*t/2))

		return cdense(2, []complex128{
			phase * c, phase * s,
			phase * s, phase * c,
		}), nil
	case kindZPow:
		return diagPhase(2, t), nil
	case kindCZPow:
		return diagPhase(4, t), nil
	case kindCCZPow:
		return diagPhase(8, t), nil
	case kindYXXYPow:
		// Real rotation on the single-excitation block {01, 10}.
		c := complex(math.Cos(math.Pi*t/2), 0)
		s := complex(math.Sin(math.Pi*t/2), 0)

		return cdense(4, []complex128{
			1, 0, 0, 0,
			0, c, -s, 0,
			0, s, c, 0,
			0, 0, 0, 1,
		}), nil
	}

	// Unreachable: all kinds handled above.
	return nil, ErrSymbolicExponent
}

// cdense wraps a row-major complex literal into a dim×dim CDense.
func cdense(dim int, data []complex128) *mat.CDense {
	return mat.NewCDense(dim, dim, data)
}

// diagPhase is the identity with the last diagonal entry set to e^{iπt}.
func diagPhase(dim int, t float64) *mat.CDense {
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}
	m.Set(dim-1, dim-1, cmplx.Exp(complex(0, math.Pi*t)))

	return m
}

// eye returns the dim×dim identity.
func eye(dim int) *mat.CDense {
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}

	return m
}
