// SPDX-License-Identifier: MIT

package gates

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// StateSwapEigenComponent builds the ± eigen-component of the operation
// that swaps basis states x and y, given as equal-length bitstrings.
//
// For example, StateSwapEigenComponent("01", "10", +1) returns
//
//	┌             ┐
//	│0 0    0    0│
//	│0 0.5  +0.5 0│
//	│0 +0.5 0.5  0│
//	│0 0    0    0│
//	└             ┘
//
// i.e. a 2^len(x) square matrix that is zero everywhere except: 0.5 on
// the diagonal at indices int(x,2) and int(y,2), and sign·0.5 at the two
// mirrored off-diagonal positions between them.
//
// Errors (in validation order):
//   - ErrLengthMismatch  — x and y have different lengths
//   - ErrNonBinaryState  — a character other than '0'/'1' is present
//   - ErrEqualStates     — x == y
//   - ErrBadSign         — sign is not -1 or +1
//
// (The bitstring arguments are typed strings, so the original
// type-mismatch failure mode is a compile-time error here.)
func StateSwapEigenComponent(x, y string, sign int) (*mat.CDense, error) {
	if len(x) != len(y) {
		return nil, ErrLengthMismatch
	}
	for _, s := range []string{x, y} {
		for _, r := range s {
			if r != '0' && r != '1' {
				return nil, ErrNonBinaryState
			}
		}
	}
	if x == y {
		return nil, ErrEqualStates
	}
	if sign != -1 && sign != 1 {
		return nil, ErrBadSign
	}

	i, err := strconv.ParseInt(x, 2, 64)
	if err != nil {
		return nil, ErrNonBinaryState
	}
	j, err := strconv.ParseInt(y, 2, 64)
	if err != nil {
		return nil, ErrNonBinaryState
	}

	dim := 1 << len(x)
	component := mat.NewCDense(dim, dim, nil)
	component.Set(int(i), int(i), 0.5)
	component.Set(int(j), int(j), 0.5)
	component.Set(int(i), int(j), complex(float64(sign)*0.5, 0))
	component.Set(int(j), int(i), complex(float64(sign)*0.5, 0))

	return component, nil
}

// mustSwapComponent is the internal builder for fixed, known-good state
// pairs used by the concrete gates' eigen-decompositions.
func mustSwapComponent(x, y string, sign int) *mat.CDense {
	c, err := StateSwapEigenComponent(x, y, sign)
	if err != nil {
		panic(err) // programmer error: fixed literals are always valid
	}

	return c
}
