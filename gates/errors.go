// SPDX-License-Identifier: MIT
// Package gates: sentinel error set. Constructors return these for
// user-triggered conditions; they propagate unchanged to the caller.

package gates

import "errors"

var (
	// ErrRedundantAngle is returned when more than one of exponent, rads,
	// degs or duration is specified for a single gate construction.
	ErrRedundantAngle = errors.New("gates: redundant angle specification; use one of exponent, rads, degs or duration")

	// ErrLengthMismatch is returned by the state-swap eigen-component
	// builder when the two bitstrings differ in length.
	ErrLengthMismatch = errors.New("gates: bitstrings differ in length")

	// ErrNonBinaryState is returned when a bitstring contains a character
	// other than '0' and '1'.
	ErrNonBinaryState = errors.New("gates: bitstring must contain only 0 and 1")

	// ErrEqualStates is returned when the two bitstrings are identical:
	// a state cannot be swapped with itself.
	ErrEqualStates = errors.New("gates: bitstrings are equal")

	// ErrBadSign is returned when the off-diagonal sign is not -1 or +1.
	ErrBadSign = errors.New("gates: sign must be -1 or +1")

	// ErrStateDimension is returned by direct state application when the
	// state vector length does not match the gate's register size.
	ErrStateDimension = errors.New("gates: state vector dimension mismatch")
)
