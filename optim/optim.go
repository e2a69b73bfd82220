// Copyright 2025 VarQ Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers over the flat parameter
// vectors that diff.CollectParams and diff.Dispatch exchange with a marked
// circuit.
//
// Example:
//
//	params := diff.CollectParams(ansatz)
//	optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.05})
//
//	for epoch := 0; epoch < 200; epoch++ {
//	    grads := gradient(ansatz, observable) // one entry per marked parameter
//	    if err := optimizer.Step(params, grads); err != nil {
//	        return err
//	    }
//	    if err := diff.Dispatch(ansatz, params, circuit.OpReplace); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"github.com/varq-ml/varq/internal/optim"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// ErrLength indicates mismatched parameter and gradient vector lengths.
var ErrLength = optim.ErrLength

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD { return optim.NewSGD(config) }

// Adam implements the Adam optimizer with bias correction.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
func NewAdam(config AdamConfig) *Adam { return optim.NewAdam(config) }
