// SPDX-License-Identifier: MIT

// Package gates: angle specification. A gate's angle may be given in
// exactly one of four spellings — exponent (half-turns), radians,
// degrees, or duration — all normalized to a single canonical exponent.
// Giving more than one is ambiguous and fails construction with
// ErrRedundantAngle. Giving none selects the default of one half-turn.

package gates

import (
	"math"

	"github.com/katalvlaran/fermiq/circuit"
)

// DefaultExponent is the angle used when no spelling is given: one
// half-turn (a π-radian rotation).
const DefaultExponent = 1.0

// Option configures gate construction.
type Option func(*config)

type config struct {
	angleCount int
	exponent   circuit.Exponent
	keepSplit  bool // combined gate only: skip exponent absorption
}

// WithExponent sets the angle in half-turns. The exponent may be
// symbolic (circuit.Sym) for variational circuits.
func WithExponent(e circuit.Exponent) Option {
	return func(c *config) {
		c.angleCount++
		c.exponent = e
	}
}

// WithRads sets the angle in radians (exponent = rads/π).
func WithRads(rads float64) Option {
	return func(c *config) {
		c.angleCount++
		c.exponent = circuit.Num(rads / math.Pi)
	}
}

// WithDegs sets the angle in degrees (exponent = degs/180).
func WithDegs(degs float64) Option {
	return func(c *config) {
		c.angleCount++
		c.exponent = circuit.Num(degs / 180)
	}
}

// WithDuration sets the angle as an evolution time
// (exponent = 2·duration/π).
func WithDuration(duration float64) Option {
	return func(c *config) {
		c.angleCount++
		c.exponent = circuit.Num(2 * duration / math.Pi)
	}
}

// WithoutExponentAbsorption keeps the weight/exponent split of the
// combined excitation gate instead of absorbing the exponent into the
// weights at construction. Ignored by single-term gates.
func WithoutExponentAbsorption() Option {
	return func(c *config) { c.keepSplit = true }
}

// resolveOptions folds the options into a config, enforcing the
// at-most-one-angle invariant.
func resolveOptions(opts []Option) (config, error) {
	c := config{exponent: circuit.Num(DefaultExponent)}
	for _, opt := range opts {
		opt(&c)
	}
	if c.angleCount > 1 {
		return config{}, ErrRedundantAngle
	}

	return c, nil
}
