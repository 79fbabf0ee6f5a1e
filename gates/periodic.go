// SPDX-License-Identifier: MIT

package gates

import "math"

// periodicTol is the numeric tolerance for periodic-value comparison.
const periodicTol = 1e-8

// PeriodicValue is a real magnitude identified with itself modulo a
// positive period. Two gates that differ only in how an angle was split
// between weights and exponent produce the same PeriodicValue, so the
// library's equality rule reduces to PeriodicValue comparison.
type PeriodicValue struct {
	Value  float64
	Period float64
}

// Canonical folds Value into [0, Period).
func (p PeriodicValue) Canonical() float64 {
	return pmod(p.Value, p.Period)
}

// Equal reports whether two periodic values coincide modulo the period,
// within tol. The comparison is wraparound-aware: values just below the
// period compare equal to values just above zero.
func (p PeriodicValue) Equal(o PeriodicValue, tol float64) bool {
	if math.Abs(p.Period-o.Period) > tol {
		return false
	}
	d := math.Abs(p.Canonical() - o.Canonical())
	if d > p.Period/2 {
		d = p.Period - d
	}

	return d <= tol
}

// pmod is the non-negative remainder of v modulo period.
func pmod(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}

	return m
}

// shifted folds v into the half-open interval (-period/2, period/2],
// the convention used for diagram exponent annotations.
func shifted(v, period float64) float64 {
	m := pmod(v, period)
	if m > period/2 {
		m -= period
	}

	return m
}
