// SPDX-License-Identifier: MIT

package ansatz

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fermiq/circuit"
)

// Option configures LowRankTrotter construction.
type Option func(*config)

type config struct {
	iterations   int
	finalRank    int // 0 ⇒ keep every factor above tolerance
	finalRankSet bool
	allZ         bool
	allCZ        bool
	time         float64
}

// WithIterations sets the number of Trotter steps. Default 1.
func WithIterations(n int) Option {
	return func(c *config) { c.iterations = n }
}

// WithFinalRank truncates the two-body factorization to the given number
// of factors. Default: keep every factor above tolerance.
func WithFinalRank(r int) Option {
	return func(c *config) {
		c.finalRank = r
		c.finalRankSet = true
	}
}

// WithAllZ forces a Z-rotation parameter for every qubit even when its
// coefficient is negligible.
func WithAllZ() Option {
	return func(c *config) { c.allZ = true }
}

// WithAllCZ forces a CZ-rotation parameter for every qubit pair even when
// its coefficient is negligible.
func WithAllCZ() Option {
	return func(c *config) { c.allCZ = true }
}

// WithEvolutionTime sets the total evolution time used to scale the
// default initial parameters. Default 1.
func WithEvolutionTime(t float64) Option {
	return func(c *config) { c.time = t }
}

// LowRankTrotter is the low-rank Trotter ansatz for an interaction
// operator: a fixed ordered parameter list and a symbolic circuit rule.
// It is immutable after construction; parameter values live in the
// caller's circuit.Binding.
type LowRankTrotter struct {
	h          *InteractionOperator
	iterations int
	time       float64

	names    []string
	defaults []float64
	ops      []circuit.Op
}

// NewLowRankTrotter factorizes the Hamiltonian and builds the parameter
// list and circuit rule once. Option values out of range fail with
// ErrBadOption; a failed eigendecomposition with ErrFactorization.
func NewLowRankTrotter(h *InteractionOperator, opts ...Option) (*LowRankTrotter, error) {
	if h == nil {
		return nil, ErrNilHamiltonian
	}
	c := config{iterations: 1, time: 1}
	for _, opt := range opts {
		opt(&c)
	}
	if c.iterations < 1 || (c.finalRankSet && c.finalRank < 1) || math.IsNaN(c.time) {
		return nil, ErrBadOption
	}

	oneBodyEnergies, oneBodyBasis, err := eigh(h.OneBody)
	if err != nil {
		return nil, err
	}
	factors, err := lowRankFactorize(h, c.finalRank)
	if err != nil {
		return nil, err
	}

	tr := &LowRankTrotter{h: h, iterations: c.iterations, time: c.time}
	if err := tr.build(c, oneBodyEnergies, oneBodyBasis, factors); err != nil {
		return nil, err
	}

	return tr, nil
}

// build walks the iteration structure once, emitting parameters, their
// source coefficients and the symbolic operations in lockstep so the
// three views can never disagree.
func (tr *LowRankTrotter) build(c config, oneBodyEnergies []float64, oneBodyBasis *mat.Dense, factors []lowRankFactor) error {
	n := tr.h.n
	var coefs []float64

	zLayer := func(i int, l int, energies func(p int) float64) {
		for p := 0; p < n; p++ {
			coef := energies(p)
			if !c.allZ && math.Abs(coef) < couplingTol {
				continue
			}
			var name string
			if l < 0 {
				name = fmt.Sprintf("U_%d_%d", p, i)
			} else {
				name = fmt.Sprintf("U_%d_%d_%d", p, l, i)
			}
			tr.names = append(tr.names, name)
			coefs = append(coefs, coef)
			tr.ops = append(tr.ops, circuit.ZPow(circuit.Sym(name), p))
		}
	}

	for i := 0; i < tr.iterations; i++ {
		basis := eyeDense(n)

		ops, err := basisTransition(basis, oneBodyBasis)
		if err != nil {
			return err
		}
		tr.ops = append(tr.ops, ops...)
		basis = oneBodyBasis

		zLayer(i, -1, func(p int) float64 { return oneBodyEnergies[p] })

		for l, f := range factors {
			ops, err := basisTransition(basis, f.basis)
			if err != nil {
				return err
			}
			tr.ops = append(tr.ops, ops...)
			basis = f.basis

			zLayer(i, l, func(p int) float64 { return f.scaled.At(p, p) })

			for p := 0; p < n; p++ {
				for q := p + 1; q < n; q++ {
					coef := f.scaled.At(p, q)
					if !c.allCZ && math.Abs(coef) < couplingTol {
						continue
					}
					name := fmt.Sprintf("V_%d_%d_%d_%d", p, q, l, i)
					tr.names = append(tr.names, name)
					coefs = append(coefs, coef)
					tr.ops = append(tr.ops, circuit.CZPow(circuit.Sym(name), p, q))
				}
			}
		}

		ops, err = basisTransition(basis, eyeDense(n))
		if err != nil {
			return err
		}
		tr.ops = append(tr.ops, ops...)
	}

	step := tr.time / float64(tr.iterations)
	tr.defaults = make([]float64, len(coefs))
	for k, coef := range coefs {
		tr.defaults[k] = foldHalfOpen(-coef * step / math.Pi)
	}

	return nil
}

// NumQubits returns the register size of the underlying Hamiltonian.
func (tr *LowRankTrotter) NumQubits() int { return tr.h.n }

// Params returns the ordered parameter names. The order and content are
// fully determined by the Hamiltonian and configuration.
func (tr *LowRankTrotter) Params() []string {
	out := make([]string, len(tr.names))
	copy(out, tr.names)

	return out
}

// ParamBounds returns the optimizer search bounds: exactly (-1, 1) for
// every parameter, since all parameters are periodic exponents.
func (tr *LowRankTrotter) ParamBounds() [][2]float64 {
	out := make([][2]float64, len(tr.names))
	for i := range out {
		out[i] = [2]float64{-1.0, 1.0}
	}

	return out
}

// DefaultInitialParams returns the starting point corresponding to one
// plain Trotter step: -coefficient·(time/iterations)/π, folded into
// (-1, 1], in parameter order.
func (tr *LowRankTrotter) DefaultInitialParams() []float64 {
	out := make([]float64, len(tr.defaults))
	copy(out, tr.defaults)

	return out
}

// DefaultBinding returns the default initial parameters keyed by name.
func (tr *LowRankTrotter) DefaultBinding() circuit.Binding {
	b := make(circuit.Binding, len(tr.names))
	for i, name := range tr.names {
		b[name] = tr.defaults[i]
	}

	return b
}

// Operations returns the symbolic circuit rule: per iteration a Givens
// basis change into the one-body eigenbasis and its Z layer, then per
// factor a basis change, Z layer and CZ layer, closing with the
// transition back to the computational basis.
func (tr *LowRankTrotter) Operations() []circuit.Op {
	out := make([]circuit.Op, len(tr.ops))
	copy(out, tr.ops)

	return out
}

// ResolvedOperations substitutes parameter values into the circuit rule.
// Missing names fail with circuit.ErrUnknownSymbol.
func (tr *LowRankTrotter) ResolvedOperations(b circuit.Binding) ([]circuit.Op, error) {
	return circuit.Resolve(tr.ops, b)
}

// basisTransition emits the operations rotating the register from one
// orbital basis into another: the relative transform toᵀ·from decomposed
// into sign flips and adjacent Givens rotations, each rotation realized
// as a YXXYPow of exponent 2θ/π on neighboring wires.
func basisTransition(from, to *mat.Dense) ([]circuit.Op, error) {
	n, _ := from.Dims()
	rel := mat.NewDense(n, n, nil)
	rel.Mul(to.T(), from)

	rots, signs, err := DecomposeOrthogonal(rel)
	if err != nil {
		return nil, err
	}

	var ops []circuit.Op
	for p, s := range signs {
		if s < 0 {
			ops = append(ops, circuit.ZPow(circuit.Num(1), p))
		}
	}
	for k := len(rots) - 1; k >= 0; k-- {
		r := rots[k]
		ops = append(ops, circuit.YXXYPow(circuit.Num(2*r.Theta/math.Pi), r.Target, r.Target+1))
	}

	return ops, nil
}

// foldHalfOpen folds a periodic exponent into (-1, 1].
func foldHalfOpen(v float64) float64 {
	m := math.Mod(v, 2)
	if m <= -1 {
		m += 2
	} else if m > 1 {
		m -= 2
	}

	return m
}

// eyeDense builds the n×n identity.
func eyeDense(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}
