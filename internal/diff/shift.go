package diff

import (
	"math"

	"github.com/varq-ml/varq/internal/circuit"
	"github.com/varq-ml/varq/internal/register"
	"github.com/varq-ml/varq/internal/stat"
)

// DefaultDelta is the finite-difference step NumDiff uses when none is
// given.
const DefaultDelta = 1e-2

// Perturb evaluates eval at θ−δ and θ+δ, where θ is the marked node's
// parameter, and restores θ before returning. The original value is read
// once and written back verbatim, so restoration is bit-for-bit as long
// as eval neither mutates the node nor panics. Exactly two evaluations are
// performed, no retries; a panicking eval leaves the parameter shifted.
func Perturb[T any](eval func() T, node *Marked, delta float64) (r1, r2 T) {
	orig := node.Params()
	shifted := make([]float64, len(orig))

	for i, v := range orig {
		shifted[i] = v - delta
	}
	_ = node.Dispatch(circuit.OpReplace, shifted)
	r1 = eval()

	for i, v := range orig {
		shifted[i] = v + delta
	}
	_ = node.Dispatch(circuit.OpReplace, shifted)
	r2 = eval()

	_ = node.Dispatch(circuit.OpReplace, orig)
	return r1, r2
}

// NumDiff returns the central finite-difference derivative of an arbitrary
// scalar loss with respect to the marked node's parameter,
// (loss(θ+δ)−loss(θ−δ))/2δ. This is an approximation for generic δ
// (DefaultDelta when delta is 0); use OpDiff or StatDiff where the exact
// rule applies.
func NumDiff(loss func() float64, node *Marked, delta float64) float64 {
	if delta == 0 {
		delta = DefaultDelta
	}
	r1, r2 := Perturb(loss, node, delta)
	return (r2 - r1) / (2 * delta)
}

// OpDiff returns the exact derivative of real(⟨obs⟩) with respect to the
// marked node's parameter, using the two-point rule at δ=π/2:
// (⟨obs⟩(θ+π/2)−⟨obs⟩(θ−π/2))/2. evalState must rebuild the state from
// scratch on every call, with all other parameters unchanged.
func OpDiff(evalState func() (*register.Register, error), node *Marked, obs circuit.Block) (float64, error) {
	var evalErr error
	eval := func() float64 {
		if evalErr != nil {
			return 0
		}
		reg, err := evalState()
		if err != nil {
			evalErr = err
			return 0
		}
		e, err := reg.Expect(obs)
		if err != nil {
			evalErr = err
			return 0
		}
		return real(e)
	}
	r1, r2 := Perturb(eval, node, math.Pi/2)
	if evalErr != nil {
		return 0, evalErr
	}
	return (r2 - r1) / 2, nil
}

// StatDiff returns the exact derivative of a statistical functional of the
// measured distribution with respect to the marked node's parameter.
//
// evalDist must reproduce the distribution (probability weights for
// tensor-form functionals, samples for kernel form) from scratch on every
// call. Arity-2 functionals are paired against a fixed baseline: the
// optional initial argument, or the distribution at the unshifted point,
// computed once up front. The result is scaled by arity/2, which corrects
// for the combinatorial normalization of the U-statistic estimator so the
// returned value is the derivative of the functional's value.
func StatDiff(evalDist func() ([]float64, error), node *Marked, sf *stat.Functional, initial ...[]float64) (float64, error) {
	var base []float64
	if sf.Arity() == 2 {
		if len(initial) > 0 {
			base = initial[0]
		} else {
			var err error
			if base, err = evalDist(); err != nil {
				return 0, err
			}
		}
	}

	var evalErr error
	eval := func() float64 {
		if evalErr != nil {
			return 0
		}
		d, err := evalDist()
		if err != nil {
			evalErr = err
			return 0
		}
		var v float64
		if base != nil {
			v, err = sf.Expect(d, base)
		} else {
			v, err = sf.Expect(d)
		}
		if err != nil {
			evalErr = err
			return 0
		}
		return v
	}
	r1, r2 := Perturb(eval, node, math.Pi/2)
	if evalErr != nil {
		return 0, evalErr
	}
	return (r2 - r1) * float64(sf.Arity()) / 2, nil
}
