package circuit

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Rotation is a single-qubit rotation exp(-iθG/2) about a Pauli axis G.
//
// Its generator has eigenvalues ±1, which is what makes the exact two-point
// parameter-shift rule applicable to it.
type Rotation struct {
	axis  *Gate // X, Y or Z
	theta float64
}

// Rot builds a rotation about the given Pauli axis.
func Rot(axis *Gate, theta float64) *Rotation {
	return &Rotation{axis: axis, theta: theta}
}

// Rx returns a rotation about the X axis.
func Rx(theta float64) *Rotation { return Rot(X, theta) }

// Ry returns a rotation about the Y axis.
func Ry(theta float64) *Rotation { return Rot(Y, theta) }

// Rz returns a rotation about the Z axis.
func Rz(theta float64) *Rotation { return Rot(Z, theta) }

// Axis returns the rotation's Pauli generator.
func (r *Rotation) Axis() *Gate { return r.axis }

// Theta returns the current rotation angle.
func (r *Rotation) Theta() float64 { return r.theta }

// NQubits returns 1.
func (r *Rotation) NQubits() int { return 1 }

// Matrix returns cos(θ/2)·I − i·sin(θ/2)·G.
func (r *Rotation) Matrix() []complex128 {
	c := complex(math.Cos(r.theta/2), 0)
	s := complex(0, -math.Sin(r.theta/2))
	g := r.axis.Matrix()
	return []complex128{
		c + s*g[0], s * g[1],
		s * g[2], c + s*g[3],
	}
}

// Apply applies the rotation to a 1-qubit state.
func (r *Rotation) Apply(s State) error {
	if s.NQubits() != 1 {
		return ErrWidthMismatch
	}
	return s.ApplyMatrix(r.Matrix(), []int{0}, nil)
}

// Subblocks returns nil: rotations are leaves.
func (r *Rotation) Subblocks() []Block { return nil }

// WithSubblocks returns the rotation unchanged.
func (r *Rotation) WithSubblocks([]Block) Block { return r }

// NParams returns 1.
func (r *Rotation) NParams() int { return 1 }

// Params returns the angle as a one-element slice.
func (r *Rotation) Params() []float64 { return []float64{r.theta} }

// Dispatch combines exactly one value into the angle.
func (r *Rotation) Dispatch(op DispatchOp, values []float64) error {
	if len(values) != 1 {
		return ErrParamCount
	}
	r.theta = apply(op, r.theta, values[0])
	return nil
}

// Adjoint returns the rotation with the negated angle.
func (r *Rotation) Adjoint() Block { return Rot(r.axis, -r.theta) }

func (r *Rotation) String() string {
	return fmt.Sprintf("R%s(%g)", strLower(r.axis.Name()), r.theta)
}

func strLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

// PhaseShift is the single-qubit gate diag(1, e^{iθ}).
//
// On its own it differs from Rz(θ) only by a global phase; under control it
// becomes the controlled-phase gate, whose differentiation generator is
// derived in the diff package.
type PhaseShift struct {
	theta float64
}

// Phase builds a phase-shift gate.
func Phase(theta float64) *PhaseShift { return &PhaseShift{theta: theta} }

// Theta returns the current phase angle.
func (p *PhaseShift) Theta() float64 { return p.theta }

// NQubits returns 1.
func (p *PhaseShift) NQubits() int { return 1 }

// Matrix returns diag(1, e^{iθ}).
func (p *PhaseShift) Matrix() []complex128 {
	return []complex128{1, 0, 0, cmplx.Exp(complex(0, p.theta))}
}

// Apply applies the phase shift to a 1-qubit state.
func (p *PhaseShift) Apply(s State) error {
	if s.NQubits() != 1 {
		return ErrWidthMismatch
	}
	return s.ApplyMatrix(p.Matrix(), []int{0}, nil)
}

// Subblocks returns nil: phase shifts are leaves.
func (p *PhaseShift) Subblocks() []Block { return nil }

// WithSubblocks returns the phase shift unchanged.
func (p *PhaseShift) WithSubblocks([]Block) Block { return p }

// NParams returns 1.
func (p *PhaseShift) NParams() int { return 1 }

// Params returns the phase as a one-element slice.
func (p *PhaseShift) Params() []float64 { return []float64{p.theta} }

// Dispatch combines exactly one value into the phase.
func (p *PhaseShift) Dispatch(op DispatchOp, values []float64) error {
	if len(values) != 1 {
		return ErrParamCount
	}
	p.theta = apply(op, p.theta, values[0])
	return nil
}

// Adjoint returns the phase shift with the negated angle.
func (p *PhaseShift) Adjoint() Block { return Phase(-p.theta) }

func (p *PhaseShift) String() string { return fmt.Sprintf("phase(%g)", p.theta) }
