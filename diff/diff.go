// Copyright 2025 VarQ Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package diff provides the public API for parameter-shift
// differentiation of circuit blocks.
//
// Typical use: build a circuit, mark its rotation-like gates, then ask for
// the gradient of an observable with respect to each marked node:
//
//	ansatz := diff.MarkDifferentiable(buildAnsatz())
//	grads := make([]float64, 0)
//	for _, node := range diff.MarkedNodes(ansatz) {
//	    g, err := diff.OpDiff(func() (*register.Register, error) {
//	        reg := register.New(2, backend)
//	        return reg, reg.Run(ansatz)
//	    }, node, observable)
//	    if err != nil {
//	        return err
//	    }
//	    grads = append(grads, g)
//	}
//
// Differentiation calls mutate the tree's parameter state in place and
// restore it; concurrent calls against the same tree require external
// serialization.
package diff

import (
	"github.com/varq-ml/varq/internal/circuit"
	"github.com/varq-ml/varq/internal/diff"
	"github.com/varq-ml/varq/internal/register"
	"github.com/varq-ml/varq/internal/stat"
)

// Marked is the transparent wrapper that tags one rotation or
// controlled-phase block as a differentiation target.
type Marked = diff.Marked

// Backpropper is the adjoint-mode extension point forwarded by the marker.
type Backpropper = diff.Backpropper

// ErrNotDifferentiable indicates a block with no shift-rule generator.
var ErrNotDifferentiable = diff.ErrNotDifferentiable

// DefaultDelta is the finite-difference step NumDiff uses when none is
// given.
const DefaultDelta = diff.DefaultDelta

// Mark wraps a single eligible block, taking ownership of it.
func Mark(b circuit.Block) (*Marked, error) { return diff.Mark(b) }

// MarkDifferentiable wraps every rotation and controlled-phase gate in the
// tree, leaving generic control blocks (and everything inside them)
// untouched.
func MarkDifferentiable(b circuit.Block) circuit.Block {
	return diff.MarkDifferentiable(b)
}

// Generator returns the Hermitian shift-rule generator of a marked node.
func Generator(m *Marked) (circuit.Block, error) { return diff.Generator(m) }

// Perturb evaluates eval at θ−δ and θ+δ and restores θ. See the internal
// documentation for the exact restoration contract.
func Perturb[T any](eval func() T, node *Marked, delta float64) (r1, r2 T) {
	return diff.Perturb(eval, node, delta)
}

// NumDiff returns the central finite-difference derivative of a scalar
// loss; approximate for generic δ (DefaultDelta when delta is 0).
func NumDiff(loss func() float64, node *Marked, delta float64) float64 {
	return diff.NumDiff(loss, node, delta)
}

// OpDiff returns the exact π/2-shift derivative of real(⟨obs⟩) with
// respect to the marked node's parameter.
func OpDiff(evalState func() (*register.Register, error), node *Marked, obs circuit.Block) (float64, error) {
	return diff.OpDiff(evalState, node, obs)
}

// StatDiff returns the exact π/2-shift derivative of a statistical
// functional of the measured distribution.
func StatDiff(evalDist func() ([]float64, error), node *Marked, sf *stat.Functional, initial ...[]float64) (float64, error) {
	return diff.StatDiff(evalDist, node, sf, initial...)
}

// MarkedNodes returns every marked node in the tree, in the traversal
// order CollectParams and Dispatch use.
func MarkedNodes(b circuit.Block) []*Marked {
	return diff.MarkedNodes(b)
}

// NParams returns the total parameter count of all marked nodes.
func NParams(b circuit.Block) int { return diff.NParams(b) }

// CollectParams reads the current parameter values of every marked node.
func CollectParams(b circuit.Block) []float64 { return diff.CollectParams(b) }

// Dispatch spreads a flat parameter vector over the tree's marked nodes,
// combining with op, in the same order CollectParams reads them.
func Dispatch(b circuit.Block, params []float64, op circuit.DispatchOp) error {
	return diff.Dispatch(b, params, op)
}
