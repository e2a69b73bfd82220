package diff

import (
	"errors"

	"github.com/varq-ml/varq/internal/circuit"
)

// ErrNotDifferentiable indicates an attempt to mark a block with no
// defined shift-rule generator.
var ErrNotDifferentiable = errors.New("diff: block has no parameter-shift generator")

// Backpropper is the adjoint-mode extension point. A block that
// participates in an external back-propagation engine implements it; the
// marker forwards the call to its content untouched.
type Backpropper interface {
	Backprop(grad []complex128) error
}

// Marked wraps exactly one rotation or controlled-phase block and tags it
// as a differentiation target. It is behaviorally identical to its content
// for simulation: Matrix, Apply and Adjoint all delegate.
//
// Markers never stack and never wrap a generic control block; Mark
// enforces both. The marker's parameter set is exactly its content's —
// for a controlled phase, the angle lives on the payload, so Params and
// Dispatch aggregate over the content subtree.
type Marked struct {
	content circuit.Block
}

// Mark wraps a block, taking ownership of it. Only rotations and
// controlled-phase gates (a Control whose payload is a PhaseShift) are
// eligible; anything else, including an existing *Marked, returns
// ErrNotDifferentiable.
func Mark(b circuit.Block) (*Marked, error) {
	if !differentiable(b) {
		return nil, ErrNotDifferentiable
	}
	return &Marked{content: b}, nil
}

// differentiable reports whether the shift rule applies to b directly.
func differentiable(b circuit.Block) bool {
	switch x := b.(type) {
	case *circuit.Rotation:
		return true
	case *circuit.Control:
		_, ok := x.Sub().(*circuit.PhaseShift)
		return ok
	default:
		return false
	}
}

// Unwrap returns the wrapped content.
func (m *Marked) Unwrap() circuit.Block { return m.content }

// NQubits delegates to the content.
func (m *Marked) NQubits() int { return m.content.NQubits() }

// Matrix delegates to the content.
func (m *Marked) Matrix() []complex128 { return m.content.Matrix() }

// Apply delegates to the content; the marker is invisible to simulation.
func (m *Marked) Apply(s circuit.State) error { return m.content.Apply(s) }

// Subblocks returns the content as the sole child.
func (m *Marked) Subblocks() []circuit.Block { return []circuit.Block{m.content} }

// WithSubblocks rewraps a replacement content block of the same shape,
// for generic tree-rewrite utilities that reconstruct parents.
func (m *Marked) WithSubblocks(subs []circuit.Block) circuit.Block {
	return &Marked{content: subs[0]}
}

// NParams returns the parameter count of the content subtree.
func (m *Marked) NParams() int { return subtreeNParams(m.content) }

// Params returns the content subtree's parameter values in traversal
// order.
func (m *Marked) Params() []float64 {
	out := make([]float64, 0, m.NParams())
	subtreeParams(m.content, &out)
	return out
}

// Dispatch spreads values over the content subtree's parameters in the
// same order Params reports them.
func (m *Marked) Dispatch(op circuit.DispatchOp, values []float64) error {
	if len(values) != m.NParams() {
		return circuit.ErrParamCount
	}
	rest, err := subtreeDispatch(m.content, op, values)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return circuit.ErrParamCount
	}
	return nil
}

// Adjoint returns a new marker over the content's adjoint. The adjoint of
// an eligible block is itself eligible, so the wrap cannot fail.
func (m *Marked) Adjoint() circuit.Block {
	return &Marked{content: m.content.Adjoint()}
}

// Backprop forwards gradient information to the content if it takes part
// in an external adjoint engine, and is a no-op otherwise.
func (m *Marked) Backprop(grad []complex128) error {
	if bp, ok := m.content.(Backpropper); ok {
		return bp.Backprop(grad)
	}
	return nil
}

// String renders the content behind the differentiation glyph.
func (m *Marked) String() string { return "[∂]" + m.content.String() }

func subtreeNParams(b circuit.Block) int {
	n := b.NParams()
	for _, s := range b.Subblocks() {
		n += subtreeNParams(s)
	}
	return n
}

func subtreeParams(b circuit.Block, out *[]float64) {
	*out = append(*out, b.Params()...)
	for _, s := range b.Subblocks() {
		subtreeParams(s, out)
	}
}

func subtreeDispatch(b circuit.Block, op circuit.DispatchOp, values []float64) ([]float64, error) {
	own := b.NParams()
	if err := b.Dispatch(op, values[:own]); err != nil {
		return nil, err
	}
	rest := values[own:]
	for _, s := range b.Subblocks() {
		var err error
		if rest, err = subtreeDispatch(s, op, rest); err != nil {
			return nil, err
		}
	}
	return rest, nil
}
