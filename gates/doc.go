// Package gates implements the eigen-decomposed gate family for
// fermionic-excitation circuits: the state-swap eigen-component builder,
// the 4-qubit double-excitation and combined-excitation gates, the
// 2-qubit XX+YY / YX−XY interaction gates, and their controlled 3-qubit
// variants.
//
// 🚀 The eigen-decomposition model
//
//	Every gate in this package is a set of (eigenvalue λ, projector P)
//	pairs plus an exponent t in half-turns. Its unitary is reconstructed
//	once, in shared code, from the EigenGate capability interface:
//
//	  U = Σ_k e^{iπ·t·λ_k} · P_k
//
//	The projectors are pairwise orthogonal and sum to the identity; the
//	eigenvalues are real. Gate equality follows the periodic-equality
//	rule: exponents compare modulo the period determined by the
//	eigenvalue spectrum (PeriodicValue).
//
// ✨ Key features:
//   - one angle, four spellings: exponent (half-turns), radians, degrees
//     or duration — at most one per construction (ErrRedundantAngle)
//   - symbolic exponents for variational circuits; the direct
//     state-application fast paths report "not applicable" instead of
//     failing, so callers fall back to the decomposition
//   - exact decompositions into circuit/ elementary operations, equal to
//     the gate unitary up to global phase for all real exponents
//   - unicode and ASCII diagram metadata with period-reduced exponent
//     annotations
//
// ⚙️ Usage:
//
//	g, err := gates.NewDoubleExcitationGate(gates.WithRads(-0.5 * math.Pi))
//	u, err := gates.Unitary(g)        // 16×16 eigen reconstruction
//	ops := g.Decompose(0, 1, 2, 3)    // flat elementary sequence
//
// All computation is pure and single-threaded; construction-time
// validation errors are package sentinels checked via errors.Is.
package gates
