// SPDX-License-Identifier: MIT

// Package gates: the eigen-decomposition capability interface and the
// shared algorithms operating on it. Concrete gate variants only supply
// their (eigenvalue, projector) pairs and exponent; reconstruction,
// periodicity and period-based canonicalization live here, once.

package gates

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/circuit"
)

// EigenComponent is one (eigenvalue, projector) pair of a gate's
// decomposition. Projectors of a well-formed gate are pairwise
// orthogonal, sum to the identity, and have real eigenvalues.
type EigenComponent struct {
	Eigenvalue float64
	Projector  *mat.CDense
}

// EigenGate is the capability interface every gate variant implements.
// All shared algorithms (Unitary, ExponentPeriod, SameEffect) operate
// only on this interface.
type EigenGate interface {
	NumQubits() int
	Exponent() circuit.Exponent
	EigenComponents() []EigenComponent
}

// Unitary reconstructs the gate's unitary matrix:
//
//	U = Σ_k e^{iπ·t·λ_k} · P_k
//
// Returns circuit.ErrSymbolicExponent while the exponent is symbolic;
// callers then fall back to the gate's decomposition.
func Unitary(g EigenGate) (*mat.CDense, error) {
	t, ok := g.Exponent().Float()
	if !ok {
		return nil, circuit.ErrSymbolicExponent
	}

	dim := 1 << g.NumQubits()
	u := mat.NewCDense(dim, dim, nil)
	for _, comp := range g.EigenComponents() {
		phase := cmplx.Exp(complex(0, math.Pi*t*comp.Eigenvalue))
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				if v := comp.Projector.At(i, j); v != 0 {
					u.Set(i, j, u.At(i, j)+phase*v)
				}
			}
		}
	}

	return u, nil
}

// ExponentPeriod returns the smallest p > 0 such that raising the gate
// to exponent p yields the identity up to global phase: p = 2/g where g
// is the real gcd of all pairwise eigenvalue differences. A gate with a
// single distinct eigenvalue has no period; 0 is returned.
func ExponentPeriod(g EigenGate) float64 {
	comps := g.EigenComponents()
	var gcd float64
	for i := range comps {
		for j := i + 1; j < len(comps); j++ {
			d := math.Abs(comps[i].Eigenvalue - comps[j].Eigenvalue)
			gcd = realGCD(gcd, d)
		}
	}
	if gcd < periodicTol {
		return 0
	}

	return 2 / gcd
}

// CanonicalExponent returns the gate's exponent as a PeriodicValue over
// its spectrum-derived period. ok is false while the exponent is
// symbolic.
func CanonicalExponent(g EigenGate) (PeriodicValue, bool) {
	t, ok := g.Exponent().Float()
	if !ok {
		return PeriodicValue{}, false
	}

	return PeriodicValue{Value: t, Period: ExponentPeriod(g)}, true
}

// SameEffect reports whether two concrete gates implement the same
// operator up to global phase, by comparing their reconstructed
// unitaries within tol. False when either exponent is still symbolic or
// the register sizes differ.
func SameEffect(a, b EigenGate, tol float64) bool {
	if a.NumQubits() != b.NumQubits() {
		return false
	}
	ua, err := Unitary(a)
	if err != nil {
		return false
	}
	ub, err := Unitary(b)
	if err != nil {
		return false
	}

	return circuit.EqualUpToGlobalPhase(ua, ub, tol)
}

// realGCD computes the gcd of two non-negative reals by the Euclidean
// algorithm with tolerance. gcd(0, b) = b.
func realGCD(a, b float64) float64 {
	for b > periodicTol {
		a, b = b, math.Mod(a, b)
	}

	return a
}
