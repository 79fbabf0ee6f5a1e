// Package circuit provides the elementary operation layer that gate
// decompositions are expressed in: a small set of elementary gates with
// exact phase conventions, operation records binding gates to wires,
// unitary composition, and state-vector application.
//
// 🚀 What is circuit?
//
//	The substrate under the gates/ package:
//	  • Elementary gates: X, H, CNOT, X^t, Z^t, CZ^t, CCZ^t, YXXY^t
//	  • Op — a gate applied to an ordered list of qubit wires
//	  • Compose — the exact 2ⁿ×2ⁿ unitary of an operation sequence
//	  • Apply — sequential state-vector evolution
//	  • Exponent — a concrete value or a scaled named symbol, resolved
//	    against a Binding before any numeric use
//
// ✨ Conventions (load-bearing, do not change):
//
//   - Qubit 0 is the most significant bit of a basis-state index, so the
//     bitstring "0011" on four wires is basis state 3.
//   - X^t carries the global phase e^{iπt/2}, making X^1 exactly X; Z^t,
//     CZ^t and CCZ^t phase only the all-ones basis state by e^{iπt}.
//     Decomposition-equals-unitary properties in gates/ depend on these.
//   - Operation sequences are flat, ordered slices. Grouping is flattened
//     at construction time via Ops; there are no nested operation trees.
//
// ⚙️ Usage:
//
//	ops := circuit.Ops(
//	  []circuit.Op{circuit.CNOT(0, 1)},
//	  []circuit.Op{circuit.ZPow(circuit.Num(0.125), 1)},
//	)
//	u, err := circuit.Compose(ops, 2)
//
// All functions are pure; errors are package-level sentinels checked via
// errors.Is.
package circuit
