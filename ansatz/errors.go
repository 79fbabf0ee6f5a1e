// SPDX-License-Identifier: MIT
// Package ansatz: sentinel error set.

package ansatz

import "errors"

var (
	// ErrNilHamiltonian is returned when a Hamiltonian component required
	// for construction is missing.
	ErrNilHamiltonian = errors.New("ansatz: nil Hamiltonian component")

	// ErrDimensionMismatch is returned when the one-body and two-body
	// tensor dimensions disagree.
	ErrDimensionMismatch = errors.New("ansatz: Hamiltonian dimension mismatch")

	// ErrBadOption is returned for out-of-range option values.
	ErrBadOption = errors.New("ansatz: invalid option value")

	// ErrFactorization is returned when an eigendecomposition inside the
	// low-rank factorization fails to converge.
	ErrFactorization = errors.New("ansatz: eigendecomposition failed")

	// ErrNotOrthogonal is returned by the Givens decomposition when the
	// input matrix is not orthogonal within tolerance.
	ErrNotOrthogonal = errors.New("ansatz: matrix is not orthogonal")
)
