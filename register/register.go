// Copyright 2025 VarQ Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package register provides the public API for quantum registers: the
// statevector a circuit is evaluated on.
//
// Example:
//
//	backend := cpu.New()
//	reg := register.New(2, backend)
//	if err := reg.Run(bell); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(reg.Probs()) // [0.5 0 0 0.5]
package register

import (
	"github.com/varq-ml/varq/internal/register"
)

// Register is an n-qubit quantum state over a compute backend.
type Register = register.Register

// Backend applies gate matrices to amplitude slices. backend/cpu and
// backend/webgpu implement it.
type Backend = register.Backend

// ErrDimension indicates an amplitude vector whose length is not a power
// of two.
var ErrDimension = register.ErrDimension

// New creates an n-qubit register in the |0…0⟩ state.
func New(n int, backend Backend) *Register {
	return register.New(n, backend)
}

// FromAmplitudes creates a register over an existing amplitude vector,
// used as-is (not copied, not renormalized).
func FromAmplitudes(amps []complex128, backend Backend) (*Register, error) {
	return register.FromAmplitudes(amps, backend)
}
