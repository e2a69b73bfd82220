// Package cpu implements the pure-Go statevector compute backend.
//
// The gate kernel is hand-rolled: for every basis index with the target
// wires cleared and all control wires set, it gathers the 2^k amplitudes
// addressed by the target wires, multiplies them by the gate matrix, and
// scatters the result back. O(2^n · 4^k) for a k-qubit gate on n qubits.
package cpu

import (
	"fmt"
	"math/bits"

	"github.com/varq-ml/varq/internal/parallel"
)

// CPUBackend applies gate matrices to amplitude slices on the CPU.
type CPUBackend struct {
	par parallel.Config
}

// New creates a new CPU backend. Large registers are processed across all
// CPUs; small ones stay on the calling goroutine.
func New() *CPUBackend { return &CPUBackend{par: parallel.DefaultConfig()} }

// Name returns the backend name.
func (b *CPUBackend) Name() string { return "CPU" }

// ApplyGate multiplies a 2^k×2^k matrix into amps on the given wires,
// restricted to basis states where every control wire is 1. amps is
// modified in place.
func (b *CPUBackend) ApplyGate(amps []complex128, mat []complex128, wires, ctrls []int) error {
	size := len(amps)
	if size == 0 || size&(size-1) != 0 {
		return fmt.Errorf("cpu: amplitude count %d is not a power of two", size)
	}
	n := bits.Len(uint(size)) - 1

	k := len(wires)
	dim := 1 << k
	if len(mat) != dim*dim {
		return fmt.Errorf("cpu: matrix size %d does not match %d wires", len(mat), k)
	}

	wireMask, ctrlMask := 0, 0
	for _, w := range wires {
		if w < 0 || w >= n {
			return fmt.Errorf("cpu: wire %d out of range for %d qubits", w, n)
		}
		wireMask |= 1 << w
	}
	for _, c := range ctrls {
		if c < 0 || c >= n {
			return fmt.Errorf("cpu: control %d out of range for %d qubits", c, n)
		}
		ctrlMask |= 1 << c
	}
	if wireMask&ctrlMask != 0 {
		return fmt.Errorf("cpu: wires and controls overlap")
	}

	// offsets[c] spreads the k-bit sub-index c onto the target wires.
	offsets := make([]int, dim)
	for c := 0; c < dim; c++ {
		off := 0
		for j, w := range wires {
			off |= ((c >> j) & 1) << w
		}
		offsets[c] = off
	}

	// Base groups are disjoint, so chunks of the index space can run
	// concurrently. Scratch is per chunk.
	parallel.For(size, func(start, end int) {
		in := make([]complex128, dim)
		for base := start; base < end; base++ {
			if base&wireMask != 0 || base&ctrlMask != ctrlMask {
				continue
			}
			for c := 0; c < dim; c++ {
				in[c] = amps[base|offsets[c]]
			}
			for r := 0; r < dim; r++ {
				var acc complex128
				row := mat[r*dim : (r+1)*dim]
				for c := 0; c < dim; c++ {
					acc += row[c] * in[c]
				}
				amps[base|offsets[r]] = acc
			}
		}
	}, b.par)
	return nil
}
