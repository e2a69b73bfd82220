// Copyright 2025 VarQ Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package circuit provides the public API for composing quantum circuits
// from gate blocks.
//
// Circuits are trees of blocks: primitive gates, parameterized rotations
// and phase shifts, and the Put/Control/Chain composites that place them
// on register wires. Qubit 0 is the least significant bit of a basis
// index.
//
// Example:
//
//	// A 2-qubit ansatz: rotations on both wires, then an entangler.
//	ansatz := circuit.NewChain(2,
//	    circuit.NewPut(2, []int{0}, circuit.Rx(0.3)),
//	    circuit.NewPut(2, []int{1}, circuit.Ry(0.5)),
//	    circuit.NewCNOT(2, 0, 1),
//	)
package circuit

import (
	"github.com/varq-ml/varq/internal/circuit"
)

// Block is a node in a circuit tree. See the interface's methods for the
// full block contract.
type Block = circuit.Block

// State is the surface a block needs from a register to apply itself.
type State = circuit.State

// DispatchOp selects how Dispatch combines values with current parameters.
type DispatchOp = circuit.DispatchOp

// Dispatch combinators.
const (
	OpReplace DispatchOp = circuit.OpReplace
	OpAdd     DispatchOp = circuit.OpAdd
	OpSub     DispatchOp = circuit.OpSub
)

// Sentinel errors.
var (
	ErrParamCount    = circuit.ErrParamCount
	ErrQubitRange    = circuit.ErrQubitRange
	ErrWidthMismatch = circuit.ErrWidthMismatch
)

// Gate is a fixed primitive gate.
type Gate = circuit.Gate

// Rotation is a single-qubit rotation exp(-iθG/2) about a Pauli axis.
type Rotation = circuit.Rotation

// PhaseShift is the single-qubit gate diag(1, e^{iθ}).
type PhaseShift = circuit.PhaseShift

// Put places a block on specific wires of a wider register.
type Put = circuit.Put

// Control applies a payload block conditioned on control qubits.
type Control = circuit.Control

// Chain applies its children in sequence.
type Chain = circuit.Chain

// Shared primitive gates.
var (
	I2 = circuit.I2
	X  = circuit.X
	Y  = circuit.Y
	Z  = circuit.Z
	H  = circuit.H
	S  = circuit.S
	T  = circuit.T
)

// NewGate builds a primitive gate from a dense 2^n×2^n matrix.
func NewGate(name string, n int, mat []complex128) *Gate {
	return circuit.NewGate(name, n, mat)
}

// Rot builds a rotation about the given Pauli axis.
func Rot(axis *Gate, theta float64) *Rotation { return circuit.Rot(axis, theta) }

// Rx returns a rotation about the X axis.
func Rx(theta float64) *Rotation { return circuit.Rx(theta) }

// Ry returns a rotation about the Y axis.
func Ry(theta float64) *Rotation { return circuit.Ry(theta) }

// Rz returns a rotation about the Z axis.
func Rz(theta float64) *Rotation { return circuit.Rz(theta) }

// Phase builds a phase-shift gate.
func Phase(theta float64) *PhaseShift { return circuit.Phase(theta) }

// NewPut embeds sub on the given wires of an n-qubit block.
func NewPut(n int, wires []int, sub Block) *Put { return circuit.NewPut(n, wires, sub) }

// NewControl builds an n-qubit controlled block.
//
// Example:
//
//	// Controlled phase between wires 0 (control) and 1 (target):
//	cph := circuit.NewControl(2, []int{0}, []int{1}, circuit.Phase(0.25))
func NewControl(n int, ctrls, wires []int, sub Block) *Control {
	return circuit.NewControl(n, ctrls, wires, sub)
}

// NewCNOT returns a controlled-X between two wires of an n-qubit block.
func NewCNOT(n, ctrl, target int) *Control { return circuit.CNOT(n, ctrl, target) }

// NewChain builds an n-qubit sequence of equally wide blocks.
func NewChain(n int, blocks ...Block) *Chain { return circuit.NewChain(n, blocks...) }
