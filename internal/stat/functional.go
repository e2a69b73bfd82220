// Package stat implements statistical functionals over measured
// distributions: dense tensor contractions against probability weights, and
// U-statistic kernel estimators over sample sequences.
package stat

import "errors"

var (
	// ErrArity indicates an Expect call whose distribution-argument count
	// is inconsistent with the functional's declared arity.
	ErrArity = errors.New("stat: argument count does not match functional arity")
	// ErrLength indicates a weight vector whose length does not match the
	// functional's outcome-space dimension.
	ErrLength = errors.New("stat: weight length does not match outcome dimension")
	// ErrEmptySamples indicates too few samples for the requested
	// estimator.
	ErrEmptySamples = errors.New("stat: not enough samples")
	// ErrNotSquare indicates a rank-2 tensor that is not square.
	ErrNotSquare = errors.New("stat: rank-2 tensor must be square")
)

// Functional is a statistical functional of arity 1 or 2 over a discrete
// outcome space. It holds either a dense tensor over outcomes or a kernel
// function over sample values; the representation and arity are fixed at
// construction and Functional is immutable afterwards.
type Functional struct {
	arity   int
	dim     int       // tensor form: outcome-space size
	data    []float64 // tensor form: len dim (arity 1) or dim*dim (arity 2)
	kernel1 func(float64) float64
	kernel2 func(x, y float64) float64
}

// Tensor1 builds an arity-1 functional from a dense vector over outcomes.
func Tensor1(data []float64) *Functional {
	return &Functional{arity: 1, dim: len(data), data: data}
}

// Tensor2 builds an arity-2 functional from a dense square matrix over
// outcome pairs, row-major.
func Tensor2(data []float64, dim int) (*Functional, error) {
	if len(data) != dim*dim {
		return nil, ErrNotSquare
	}
	return &Functional{arity: 2, dim: dim, data: data}, nil
}

// Kernel1 builds an arity-1 functional from a one-argument kernel.
func Kernel1(k func(float64) float64) *Functional {
	return &Functional{arity: 1, kernel1: k}
}

// Kernel2 builds an arity-2 functional from a two-argument kernel.
func Kernel2(k func(x, y float64) float64) *Functional {
	return &Functional{arity: 2, kernel2: k}
}

// Arity returns the functional's arity.
func (f *Functional) Arity() int { return f.arity }

// IsKernel reports whether the functional is in kernel form.
func (f *Functional) IsKernel() bool { return f.data == nil }

// Expect evaluates the functional against one or two distributions.
//
// Tensor form interprets each argument as a probability weight vector,
// used as-is (never renormalized): arity 1 computes data·w, arity 2
// computes wₓᵀ·data·w_y, with w_y defaulting to wₓ when only one vector is
// given.
//
// Kernel form interprets each argument as a sample sequence:
//
//   - arity 1: mean of k(xᵢ).
//   - arity 2, one sequence: the unbiased U-statistic — k summed over all
//     unordered index pairs, each visited exactly once as (later, earlier),
//     divided by C(N,2). Self-pairs are excluded by construction; an
//     asymmetric kernel is evaluated in that fixed order.
//   - arity 2, two sequences: mean of k(xᵢ, yⱼ) over the full M×N product.
func (f *Functional) Expect(xs ...[]float64) (float64, error) {
	switch {
	case f.arity == 1 && len(xs) == 1:
	case f.arity == 2 && (len(xs) == 1 || len(xs) == 2):
	default:
		return 0, ErrArity
	}
	if f.IsKernel() {
		return f.expectSamples(xs)
	}
	return f.expectWeights(xs)
}

func (f *Functional) expectWeights(ws [][]float64) (float64, error) {
	for _, w := range ws {
		if len(w) != f.dim {
			return 0, ErrLength
		}
	}
	if f.arity == 1 {
		acc := 0.0
		for i, d := range f.data {
			acc += d * ws[0][i]
		}
		return acc, nil
	}
	wx := ws[0]
	wy := wx
	if len(ws) == 2 {
		wy = ws[1]
	}
	acc := 0.0
	for i := 0; i < f.dim; i++ {
		if wx[i] == 0 {
			continue
		}
		row := f.data[i*f.dim : (i+1)*f.dim]
		inner := 0.0
		for j, d := range row {
			inner += d * wy[j]
		}
		acc += wx[i] * inner
	}
	return acc, nil
}

func (f *Functional) expectSamples(xs [][]float64) (float64, error) {
	if f.arity == 1 {
		x := xs[0]
		if len(x) == 0 {
			return 0, ErrEmptySamples
		}
		acc := 0.0
		for _, v := range x {
			acc += f.kernel1(v)
		}
		return acc / float64(len(x)), nil
	}

	if len(xs) == 1 {
		// Self-comparison: unbiased U-statistic over unordered pairs.
		x := xs[0]
		n := len(x)
		if n < 2 {
			return 0, ErrEmptySamples
		}
		acc := 0.0
		for i := 1; i < n; i++ {
			for j := 0; j < i; j++ {
				acc += f.kernel2(x[i], x[j])
			}
		}
		return acc / float64(n*(n-1)/2), nil
	}

	x, y := xs[0], xs[1]
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptySamples
	}
	acc := 0.0
	for _, xi := range x {
		for _, yj := range y {
			acc += f.kernel2(xi, yj)
		}
	}
	return acc / float64(len(x)*len(y)), nil
}
