// SPDX-License-Identifier: MIT

package circuit

import "strconv"

// Binding assigns concrete values to symbolic parameter names.
type Binding map[string]float64

// Exponent is either a concrete half-turn value or a scaled named symbol
// (coeff·symbol). Gates store their exponent as an Exponent so that
// variational circuits can carry unresolved parameters; any numeric use
// (Unitary, Apply) requires resolving symbols first.
//
// The zero value is the concrete exponent 0.
type Exponent struct {
	coeff float64
	sym   string // empty ⇒ concrete value held in coeff
}

// Num returns a concrete exponent.
func Num(v float64) Exponent { return Exponent{coeff: v} }

// Sym returns a symbolic exponent with coefficient 1.
func Sym(name string) Exponent { return Exponent{coeff: 1, sym: name} }

// IsSymbolic reports whether the exponent still carries a symbol.
func (e Exponent) IsSymbolic() bool { return e.sym != "" }

// Symbol returns the symbol name, or "" for a concrete exponent.
func (e Exponent) Symbol() string { return e.sym }

// Float returns the concrete value. ok is false when the exponent is
// symbolic; callers then fall back to the decomposition path.
func (e Exponent) Float() (v float64, ok bool) {
	if e.IsSymbolic() {
		return 0, false
	}

	return e.coeff, true
}

// Neg returns the negated exponent (−coeff, same symbol).
func (e Exponent) Neg() Exponent { return Exponent{coeff: -e.coeff, sym: e.sym} }

// Scale returns the exponent multiplied by k.
func (e Exponent) Scale(k float64) Exponent { return Exponent{coeff: k * e.coeff, sym: e.sym} }

// Resolve substitutes the symbol using b. Concrete exponents pass through
// unchanged; a missing symbol yields ErrUnknownSymbol.
func (e Exponent) Resolve(b Binding) (Exponent, error) {
	if !e.IsSymbolic() {
		return e, nil
	}
	v, ok := b[e.sym]
	if !ok {
		return Exponent{}, ErrUnknownSymbol
	}

	return Num(e.coeff * v), nil
}

// String renders the exponent canonically: "0.5", "theta", "-0.25*theta".
func (e Exponent) String() string {
	if !e.IsSymbolic() {
		return strconv.FormatFloat(e.coeff, 'g', -1, 64)
	}
	if e.coeff == 1 {
		return e.sym
	}

	return strconv.FormatFloat(e.coeff, 'g', -1, 64) + "*" + e.sym
}
