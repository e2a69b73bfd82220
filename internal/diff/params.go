package diff

import (
	"github.com/varq-ml/varq/internal/circuit"
)

// walkMarked visits every marked node in the tree in a fixed depth-first
// order, children in slice order. CollectParams and Dispatch both use this
// single walk, which is what guarantees their orderings agree.
func walkMarked(b circuit.Block, fn func(*Marked) error) error {
	if m, ok := b.(*Marked); ok {
		return fn(m)
	}
	for _, s := range b.Subblocks() {
		if err := walkMarked(s, fn); err != nil {
			return err
		}
	}
	return nil
}

// MarkedNodes returns every marked node in the tree, in walk order. This
// is the order differentiation loops should iterate to line gradients up
// with CollectParams.
func MarkedNodes(b circuit.Block) []*Marked {
	var out []*Marked
	_ = walkMarked(b, func(m *Marked) error {
		out = append(out, m)
		return nil
	})
	return out
}

// NParams returns the total parameter count of all marked nodes in the
// tree.
func NParams(b circuit.Block) int {
	n := 0
	_ = walkMarked(b, func(m *Marked) error {
		n += m.NParams()
		return nil
	})
	return n
}

// CollectParams reads the current parameter values of every marked node,
// in traversal order. Round-tripping through Dispatch with OpReplace
// yields the identical sequence.
func CollectParams(b circuit.Block) []float64 {
	var out []float64
	_ = walkMarked(b, func(m *Marked) error {
		out = append(out, m.Params()...)
		return nil
	})
	return out
}

// Dispatch walks the tree in the same order as CollectParams, consuming
// from params one slice per marked node and combining it into the node's
// parameters with op. The params length must match the tree's total marked
// parameter count exactly.
func Dispatch(b circuit.Block, params []float64, op circuit.DispatchOp) error {
	rest := params
	err := walkMarked(b, func(m *Marked) error {
		n := m.NParams()
		if len(rest) < n {
			return circuit.ErrParamCount
		}
		if err := m.Dispatch(op, rest[:n]); err != nil {
			return err
		}
		rest = rest[n:]
		return nil
	})
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return circuit.ErrParamCount
	}
	return nil
}
