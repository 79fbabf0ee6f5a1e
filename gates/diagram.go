// SPDX-License-Identifier: MIT

package gates

import (
	"math"
	"strconv"

	"github.com/katalvlaran/fermiq/circuit"
)

// DiagramInfo is the human-readable representation of a gate in a
// circuit diagram: one wire symbol per qubit, plus an exponent
// annotation ("" when the effective exponent is 1).
type DiagramInfo struct {
	WireSymbols []string
	Exponent    string
}

// diagramExponent renders the exponent annotation: symbolic exponents
// print as-is, concrete ones are folded into (-period/2, period/2]
// before formatting — a gate at exponent 2.3 with period 2 annotates as
// 0.3. An effective exponent of exactly 1 yields the empty annotation.
func diagramExponent(t circuit.Exponent, period float64) string {
	v, ok := t.Float()
	if !ok {
		return t.String()
	}
	if period > 0 {
		v = shifted(v, period)
	}
	v = roundTiny(v)
	if v == 1 {
		return ""
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// roundTiny removes float folding noise (e.g. 0.2999999999999998) before
// display.
func roundTiny(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}

// expString renders an exponent for canonical reconstruction
// expressions.
func expString(t circuit.Exponent) string {
	if v, ok := t.Float(); ok {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return t.String()
}
