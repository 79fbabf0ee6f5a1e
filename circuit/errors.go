// SPDX-License-Identifier: MIT
// Package circuit: sentinel error set.
// All exported functions return these sentinels for user-triggered error
// conditions; tests check them via errors.Is. No public entry point panics.

package circuit

import "errors"

var (
	// ErrSymbolicExponent is returned when a numeric result (a unitary, a
	// state application) is requested from an operation whose exponent is
	// still an unresolved symbol. Resolve the sequence against a Binding
	// first.
	ErrSymbolicExponent = errors.New("circuit: exponent is symbolic")

	// ErrUnknownSymbol is returned by Resolve when a symbol carried by an
	// operation has no entry in the Binding.
	ErrUnknownSymbol = errors.New("circuit: unknown symbol in binding")

	// ErrQubitOutOfRange indicates an operation wire index outside
	// [0, n) for the register size n given to Compose/Apply.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrArityMismatch indicates that the number of wires attached to an
	// operation differs from the gate's arity.
	ErrArityMismatch = errors.New("circuit: wire count does not match gate arity")

	// ErrDuplicateQubit indicates the same wire appears twice in one
	// operation.
	ErrDuplicateQubit = errors.New("circuit: duplicate qubit in operation")

	// ErrDimensionMismatch indicates a state vector whose length is not
	// 2^n for the declared register size.
	ErrDimensionMismatch = errors.New("circuit: state dimension mismatch")
)
