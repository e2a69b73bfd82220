// Copyright 2025 VarQ Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the WebGPU backend for GPU-accelerated
// statevector simulation.
//
// The GPU path stages amplitudes as float32 re/im pairs and runs
// single-qubit (optionally controlled) gates as WGSL compute passes;
// wider gates fall back to the CPU kernels. Availability is
// platform-dependent, so always check the error:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    backend = cpu.New() // fall back
//	}
package webgpu

import (
	internalwebgpu "github.com/varq-ml/varq/internal/backend/webgpu"
	"github.com/varq-ml/varq/register"
)

// Backend represents the WebGPU backend implementation.
type Backend = internalwebgpu.Backend

// Compile-time check that Backend implements register.Backend.
var _ register.Backend = (*Backend)(nil)

// New creates a new WebGPU backend, or reports why the GPU path is
// unavailable.
func New() (*Backend, error) {
	return internalwebgpu.New()
}
