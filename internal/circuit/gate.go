package circuit

import (
	"math"

	"github.com/varq-ml/varq/internal/qmath"
)

// Gate is a fixed (parameter-free) primitive gate with a dense matrix.
//
// The package-level gates (X, Y, Z, H, S, T) are shared immutable values;
// Gate has no mutating operations, so sharing them across trees is safe.
type Gate struct {
	name string
	n    int
	mat  []complex128
}

// NewGate builds a primitive gate from a dense 2^n×2^n matrix. The matrix
// is used as-is and must not be mutated afterwards.
func NewGate(name string, n int, mat []complex128) *Gate {
	return &Gate{name: name, n: n, mat: mat}
}

// Pauli and Clifford single-qubit gates.
var (
	I2 = &Gate{name: "I", n: 1, mat: []complex128{1, 0, 0, 1}}
	X  = &Gate{name: "X", n: 1, mat: []complex128{0, 1, 1, 0}}
	Y  = &Gate{name: "Y", n: 1, mat: []complex128{0, -1i, 1i, 0}}
	Z  = &Gate{name: "Z", n: 1, mat: []complex128{1, 0, 0, -1}}
	H  = &Gate{name: "H", n: 1, mat: []complex128{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	}}
	S = &Gate{name: "S", n: 1, mat: []complex128{1, 0, 0, 1i}}
	T = &Gate{name: "T", n: 1, mat: []complex128{1, 0, 0, complex(1/math.Sqrt2, 1/math.Sqrt2)}}
)

// Name returns the gate's display name.
func (g *Gate) Name() string { return g.name }

// NQubits returns the gate width.
func (g *Gate) NQubits() int { return g.n }

// Matrix returns the gate matrix. Callers must not mutate it.
func (g *Gate) Matrix() []complex128 { return g.mat }

// Apply applies the gate across the full state width.
func (g *Gate) Apply(s State) error {
	if s.NQubits() != g.n {
		return ErrWidthMismatch
	}
	return s.ApplyMatrix(g.mat, allWires(g.n), nil)
}

// Subblocks returns nil: gates are leaves.
func (g *Gate) Subblocks() []Block { return nil }

// WithSubblocks returns the gate unchanged.
func (g *Gate) WithSubblocks([]Block) Block { return g }

// NParams returns 0.
func (g *Gate) NParams() int { return 0 }

// Params returns nil.
func (g *Gate) Params() []float64 { return nil }

// Dispatch accepts only an empty value slice.
func (g *Gate) Dispatch(_ DispatchOp, values []float64) error {
	if len(values) != 0 {
		return ErrParamCount
	}
	return nil
}

// Adjoint returns the conjugate-transposed gate. Self-adjoint gates return
// themselves.
func (g *Gate) Adjoint() Block {
	dim := 1 << g.n
	dag := qmath.Dagger(g.mat, dim)
	for i, v := range dag {
		if v != g.mat[i] {
			return &Gate{name: g.name + "†", n: g.n, mat: dag}
		}
	}
	return g
}

func (g *Gate) String() string { return g.name }

func allWires(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = i
	}
	return w
}
