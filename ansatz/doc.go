// Package ansatz implements the low-rank Trotter variational ansatz for
// interaction-operator Hamiltonians: the Hamiltonian description, the
// low-rank two-body factorization, and the parameterized circuit rule
// built on the circuit/ and gates/ packages.
//
// 🚀 The low-rank model
//
//	A two-body interaction tensor reshapes into an n²×n² symmetric matrix
//	whose eigendecomposition splits the interaction into a small number of
//	rank-one factors. Each factor is a one-body operator squared; inside
//	its own orbital eigenbasis it acts purely through diagonal
//	density-density couplings, so one Trotter step is a chain of basis
//	changes, single-qubit Z rotations and two-qubit CZ rotations.
//
// ✨ Key features:
//   - deterministic parameter naming (U_p_i, U_p_l_i, V_p_q_l_i): the
//     same Hamiltonian and configuration always yield the same ordered
//     parameter list
//   - negligible couplings (below 1e-8) are dropped from the parameter
//     set unless explicitly forced with WithAllZ / WithAllCZ
//   - parameter bounds of exactly (-1, 1) per parameter, with default
//     initial values derived from the Hamiltonian coefficients
//   - orthogonal basis changes synthesized as adjacent Givens rotations
//     (DecomposeOrthogonal / ComposeGivens)
//
// ⚙️ Usage:
//
//	h, err := ansatz.NewInteractionOperator(c, oneBody, twoBody)
//	tr, err := ansatz.NewLowRankTrotter(h, ansatz.WithFinalRank(2))
//	names := tr.Params()            // symbolic parameter names, in order
//	ops := tr.Operations()          // symbolic circuit rule
//	res, err := tr.ResolvedOperations(binding)
//
// A LowRankTrotter is immutable after construction; the optimizer owns
// the parameter values and passes them in through a circuit.Binding.
package ansatz
