// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"
)

// Op is a gate applied to an ordered list of wires. The wire order is
// significant: for CNOT the first wire is the control, for the controlled
// phase gates every wire is a control.
type Op struct {
	Gate   Gate
	Qubits []int
}

// On attaches a gate to wires.
func On(g Gate, qubits ...int) Op { return Op{Gate: g, Qubits: qubits} }

// X applies the Pauli-X gate to q.
func X(q int) Op { return On(elementary{kind: kindX}, q) }

// H applies the Hadamard gate to q.
func H(q int) Op { return On(elementary{kind: kindH}, q) }

// CNOT applies a controlled-NOT with control c and target t.
func CNOT(c, t int) Op { return On(elementary{kind: kindCNOT}, c, t) }

// XPow applies X^t to q.
func XPow(t Exponent, q int) Op { return On(elementary{kind: kindXPow, t: t}, q) }

// ZPow applies Z^t to q.
func ZPow(t Exponent, q int) Op { return On(elementary{kind: kindZPow, t: t}, q) }

// CZPow applies CZ^t to the pair (a, b).
func CZPow(t Exponent, a, b int) Op { return On(elementary{kind: kindCZPow, t: t}, a, b) }

// CCZPow applies CCZ^t to the triple (a, b, c).
func CCZPow(t Exponent, a, b, c int) Op { return On(elementary{kind: kindCCZPow, t: t}, a, b, c) }

// YXXYPow applies the Givens rotation (YX−XY)^t to the pair (a, b).
func YXXYPow(t Exponent, a, b int) Op { return On(elementary{kind: kindYXXYPow, t: t}, a, b) }

// Inverse returns the inverse operation on the same wires.
func (o Op) Inverse() Op { return Op{Gate: o.Gate.Inverse(), Qubits: o.Qubits} }

// String renders the op canonically, e.g. "CZ^0.25(1, 2)".
func (o Op) String() string {
	name := o.Gate.Name()
	if e, ok := o.Gate.(interface{ Exponent() Exponent }); ok {
		t := e.Exponent()
		if v, concrete := t.Float(); !concrete || v != 1 {
			name += "^" + t.String()
		}
	}
	wires := make([]string, len(o.Qubits))
	for i, q := range o.Qubits {
		wires[i] = fmt.Sprint(q)
	}

	return name + "(" + strings.Join(wires, ", ") + ")"
}

// Ops flattens groups of operations into one flat ordered sequence.
// Grouping exists only at construction sites; public sequences are flat.
func Ops(groups ...[]Op) []Op {
	var n int
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Op, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

// Reversed returns the sequence in reverse order without inverting gates.
// Useful for closing a bracket of self-inverse operations.
func Reversed(ops []Op) []Op {
	out := make([]Op, len(ops))
	for i, op := range ops {
		out[len(ops)-1-i] = op
	}

	return out
}

// Inverted returns the inverse sequence: reverse order, each op inverted.
func Inverted(ops []Op) []Op {
	out := make([]Op, len(ops))
	for i, op := range ops {
		out[len(ops)-1-i] = op.Inverse()
	}

	return out
}

// Resolve substitutes every symbolic exponent in ops using b.
// The input is not mutated. A missing symbol yields ErrUnknownSymbol.
func Resolve(ops []Op, b Binding) ([]Op, error) {
	out := make([]Op, len(ops))
	for i, op := range ops {
		r, ok := op.Gate.(Resolver)
		if !ok {
			out[i] = op

			continue
		}
		g, err := r.ResolveGate(b)
		if err != nil {
			return nil, err
		}
		out[i] = Op{Gate: g, Qubits: op.Qubits}
	}

	return out, nil
}
