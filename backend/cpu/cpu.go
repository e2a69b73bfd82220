// Copyright 2025 VarQ Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/varq-ml/varq/internal/backend/cpu"
	"github.com/varq-ml/varq/register"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go statevector kernels; it is the default
// choice and the reference the GPU path is checked against.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements register.Backend.
var _ register.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/varq-ml/varq/backend/cpu"
//	    "github.com/varq-ml/varq/register"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    reg := register.New(2, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}
