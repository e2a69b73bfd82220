// Package optim implements gradient-based optimizers over flat parameter
// vectors.
//
// Parameter-shift differentiation produces one gradient entry per marked
// circuit parameter, in the order diff.CollectParams reports them; the
// optimizers here consume exactly that pair of vectors. Design inspired by
// PyTorch's torch.optim, adapted for Go.
//
// Example usage:
//
//	params := diff.CollectParams(ansatz)
//	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    grads := gradient(ansatz, observable)
//	    optimizer.Step(params, grads)
//	    diff.Dispatch(ansatz, params, circuit.OpReplace)
//	}
package optim

import "errors"

// ErrLength indicates parameter and gradient vectors of different lengths,
// or a vector whose length changed between steps.
var ErrLength = errors.New("optim: parameter and gradient lengths differ")

// Optimizer is the base interface for all optimization algorithms.
//
// Step updates params in place given a gradient vector of equal length.
// Optimizers keep per-parameter state (momentum, moment estimates) keyed
// by position, so the vector length must stay constant across steps.
type Optimizer interface {
	Step(params, grads []float64) error
}
