// Package register implements the statevector a circuit is evaluated on:
// 2^n complex amplitudes with gate application, expectation values,
// probabilities and measurement sampling.
//
// Gate application is delegated to a Backend so the same register works on
// the CPU kernels or the WebGPU path.
package register

import (
	"errors"
	"math/bits"
	"math/cmplx"
	"math/rand"

	"github.com/varq-ml/varq/internal/circuit"
)

// ErrDimension indicates an amplitude slice whose length is not a power of
// two, or a width mismatch between register and operator.
var ErrDimension = errors.New("register: dimension is not a power of two")

// Backend applies gate matrices to amplitude slices. Implementations live
// in internal/backend.
type Backend interface {
	// Name identifies the backend for diagnostics.
	Name() string

	// ApplyGate multiplies a 2^k×2^k matrix into amps on the given
	// wires, restricted to basis states where every control wire is 1.
	ApplyGate(amps []complex128, mat []complex128, wires, ctrls []int) error
}

// Register is an n-qubit quantum state.
type Register struct {
	n       int
	amps    []complex128
	backend Backend
}

// New creates an n-qubit register in the |0…0⟩ state.
func New(n int, backend Backend) *Register {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &Register{n: n, amps: amps, backend: backend}
}

// FromAmplitudes creates a register over an existing amplitude vector. The
// slice is used as-is (not copied, not renormalized); its length must be a
// power of two.
func FromAmplitudes(amps []complex128, backend Backend) (*Register, error) {
	size := len(amps)
	if size == 0 || size&(size-1) != 0 {
		return nil, ErrDimension
	}
	return &Register{n: bits.Len(uint(size)) - 1, amps: amps, backend: backend}, nil
}

// NQubits returns the register width.
func (r *Register) NQubits() int { return r.n }

// Backend returns the compute backend in use.
func (r *Register) Backend() Backend { return r.backend }

// Amplitudes returns the live amplitude slice. Callers must not resize it.
func (r *Register) Amplitudes() []complex128 { return r.amps }

// ApplyMatrix satisfies circuit.State by delegating to the backend.
func (r *Register) ApplyMatrix(mat []complex128, wires, ctrls []int) error {
	return r.backend.ApplyGate(r.amps, mat, wires, ctrls)
}

// Run applies a block to the register in place.
func (r *Register) Run(b circuit.Block) error {
	return b.Apply(r)
}

// Clone returns a deep copy sharing the backend.
func (r *Register) Clone() *Register {
	amps := make([]complex128, len(r.amps))
	copy(amps, r.amps)
	return &Register{n: r.n, amps: amps, backend: r.backend}
}

// Expect returns ⟨ψ|O|ψ⟩ for an observable block. The observable is
// applied to a clone, so the register itself is untouched.
func (r *Register) Expect(obs circuit.Block) (complex128, error) {
	phi := r.Clone()
	if err := phi.Run(obs); err != nil {
		return 0, err
	}
	var acc complex128
	for i, a := range r.amps {
		acc += cmplx.Conj(a) * phi.amps[i]
	}
	return acc, nil
}

// Probs returns the outcome probability vector |ψ_i|².
func (r *Register) Probs() []float64 {
	probs := make([]float64, len(r.amps))
	for i, a := range r.amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

// Measure samples basis-state outcomes from the current distribution.
// The register is not collapsed.
func (r *Register) Measure(rng *rand.Rand, shots int) []int {
	probs := r.Probs()
	out := make([]int, shots)
	for s := range out {
		x := rng.Float64()
		acc := 0.0
		idx := len(probs) - 1
		for i, p := range probs {
			acc += p
			if x < acc {
				idx = i
				break
			}
		}
		out[s] = idx
	}
	return out
}
