package diff

import (
	"github.com/varq-ml/varq/internal/circuit"
)

// MarkDifferentiable walks a circuit tree and wraps every eligible leaf in
// a Marked block, returning the rewritten tree (or the same node when
// nothing below it changed).
//
// The dispatch rules are deliberate and exhaustive over the closed variant
// set:
//
//   - rotation or controlled-phase gate: wrapped, terminal for the branch.
//   - any other control block: returned untouched, payload not descended
//     into — the shift rule's ±1 eigenvalue assumption does not hold for
//     parameters inside a generic control.
//   - already-marked node: returned untouched, so re-running the pass is
//     idempotent over structure.
//   - other composites: rebuilt with each child run through the pass.
func MarkDifferentiable(b circuit.Block) circuit.Block {
	switch x := b.(type) {
	case *Marked:
		return x
	case *circuit.Rotation:
		m, _ := Mark(x)
		return m
	case *circuit.Control:
		if _, ok := x.Sub().(*circuit.PhaseShift); ok {
			m, _ := Mark(x)
			return m
		}
		return x
	default:
		subs := b.Subblocks()
		if len(subs) == 0 {
			return b
		}
		rebuilt := make([]circuit.Block, len(subs))
		changed := false
		for i, s := range subs {
			rebuilt[i] = MarkDifferentiable(s)
			if rebuilt[i] != s {
				changed = true
			}
		}
		if !changed {
			return b
		}
		return b.WithSubblocks(rebuilt)
	}
}

// Generator returns the Hermitian generator of a marked node's parameter
// dependence: the rotation's Pauli axis, or — for a controlled phase — the
// identical control structure with the payload replaced by Z on the
// original target wires. Both have eigenvalues ±1, which is what makes
// the π/2 shift exact.
func Generator(m *Marked) (circuit.Block, error) {
	switch x := m.Unwrap().(type) {
	case *circuit.Rotation:
		return x.Axis(), nil
	case *circuit.Control:
		if _, ok := x.Sub().(*circuit.PhaseShift); ok {
			return circuit.NewControl(x.NQubits(), x.Controls(), x.Wires(), circuit.Z), nil
		}
	}
	return nil, ErrNotDifferentiable
}
