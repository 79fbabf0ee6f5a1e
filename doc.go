// Package fermiq provides quantum gates and variational ansätze for
// simulating fermionic systems on qubits.
//
// 🚀 What is fermiq?
//
//	A pure-Go extension layer for quantum-chemistry circuit construction:
//		• Eigen-decomposed gates: double-excitation, combined excitation,
//		  XX+YY / YX−XY interactions and their controlled variants
//		• Exact decompositions into elementary CNOT / phase operations
//		• A low-rank Trotter variational ansatz with deterministic,
//		  uniquely-named symbolic parameters and fixed bounds
//
// ✨ Why choose fermiq?
//
//   - Pure computation – no I/O, no goroutines, no hidden state
//   - Exact conventions – unitaries reproduce the eigen-reconstruction
//     formula U = Σ e^{iπ·t·λ}·P within numeric tolerance
//   - Verified algebra – every decomposition is tested against the gate's
//     unitary up to global phase
//
// Everything is organized under three subpackages:
//
//	circuit/ — elementary gate set, operation records, composition,
//	           state-vector application, symbolic exponents
//	gates/   — the eigen-decomposed gate family and its decompositions
//	ansatz/  — low-rank Trotter ansatz: parameters, bounds, defaults and
//	           the circuit-generation rule consumed by an optimizer
//
// See each package's doc.go for details and examples.
package fermiq
