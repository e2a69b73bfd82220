// Copyright 2025 VarQ Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stat provides the public API for statistical functionals over
// measured distributions.
//
// A Functional is either a dense tensor contracted against probability
// weights, or a kernel function evaluated as a U-statistic over samples:
//
//	// E[f] over a 3-outcome distribution:
//	f := stat.Tensor1([]float64{1, 2, 3})
//	v, _ := f.Expect([]float64{0.2, 0.3, 0.5}) // 2.3
//
//	// Unbiased U-statistic of a product kernel over samples:
//	k := stat.Kernel2(func(x, y float64) float64 { return x * y })
//	v, _ = k.Expect([]float64{1, 2, 3}) // 11/3
package stat

import (
	"github.com/varq-ml/varq/internal/stat"
)

// Functional is a statistical functional of arity 1 or 2.
type Functional = stat.Functional

// Sentinel errors.
var (
	ErrArity        = stat.ErrArity
	ErrLength       = stat.ErrLength
	ErrEmptySamples = stat.ErrEmptySamples
	ErrNotSquare    = stat.ErrNotSquare
)

// Tensor1 builds an arity-1 functional from a dense vector over outcomes.
func Tensor1(data []float64) *Functional { return stat.Tensor1(data) }

// Tensor2 builds an arity-2 functional from a dense square matrix over
// outcome pairs, row-major.
func Tensor2(data []float64, dim int) (*Functional, error) {
	return stat.Tensor2(data, dim)
}

// Kernel1 builds an arity-1 functional from a one-argument kernel.
func Kernel1(k func(float64) float64) *Functional { return stat.Kernel1(k) }

// Kernel2 builds an arity-2 functional from a two-argument kernel.
func Kernel2(k func(x, y float64) float64) *Functional { return stat.Kernel2(k) }
