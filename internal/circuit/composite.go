package circuit

import (
	"fmt"
	"strings"

	"github.com/varq-ml/varq/internal/qmath"
)

// Put places a smaller block on specific wires of a wider register,
// identity on the rest.
type Put struct {
	n     int
	wires []int
	sub   Block
}

// NewPut embeds sub on the given wires of an n-qubit block. len(wires)
// must equal sub.NQubits(); wires must be distinct and in [0,n). Violations
// surface as ErrQubitRange from Apply.
func NewPut(n int, wires []int, sub Block) *Put {
	return &Put{n: n, wires: append([]int(nil), wires...), sub: sub}
}

// Wires returns the wires the subblock sits on.
func (p *Put) Wires() []int { return p.wires }

// Sub returns the embedded block.
func (p *Put) Sub() Block { return p.sub }

// NQubits returns the full block width.
func (p *Put) NQubits() int { return p.n }

// Matrix expands the subblock's matrix to the full width.
func (p *Put) Matrix() []complex128 {
	return qmath.Expand(p.sub.Matrix(), p.wires, p.n)
}

// Apply applies the subblock's matrix on the block's wires.
func (p *Put) Apply(s State) error {
	if s.NQubits() != p.n {
		return ErrWidthMismatch
	}
	if err := checkWires(p.n, p.wires, nil); err != nil {
		return err
	}
	return s.ApplyMatrix(p.sub.Matrix(), p.wires, nil)
}

// Subblocks returns the embedded block.
func (p *Put) Subblocks() []Block { return []Block{p.sub} }

// WithSubblocks rebuilds the Put around a replacement subblock.
func (p *Put) WithSubblocks(subs []Block) Block {
	return &Put{n: p.n, wires: p.wires, sub: subs[0]}
}

// NParams returns 0: parameters live on the leaves.
func (p *Put) NParams() int { return 0 }

// Params returns nil.
func (p *Put) Params() []float64 { return nil }

// Dispatch accepts only an empty value slice.
func (p *Put) Dispatch(_ DispatchOp, values []float64) error {
	if len(values) != 0 {
		return ErrParamCount
	}
	return nil
}

// Adjoint returns a Put of the subblock's adjoint on the same wires.
func (p *Put) Adjoint() Block {
	return &Put{n: p.n, wires: p.wires, sub: p.sub.Adjoint()}
}

func (p *Put) String() string {
	return fmt.Sprintf("put(%v ← %s)", p.wires, p.sub)
}

// Control applies a payload block on its wires only when every control
// qubit is 1.
type Control struct {
	n     int
	ctrls []int
	wires []int
	sub   Block
}

// NewControl builds an n-qubit controlled block. ctrls and wires must be
// disjoint, distinct and in [0,n); len(wires) must equal sub.NQubits().
func NewControl(n int, ctrls, wires []int, sub Block) *Control {
	return &Control{
		n:     n,
		ctrls: append([]int(nil), ctrls...),
		wires: append([]int(nil), wires...),
		sub:   sub,
	}
}

// CNOT returns a controlled-X between two wires of an n-qubit block.
func CNOT(n, ctrl, target int) *Control {
	return NewControl(n, []int{ctrl}, []int{target}, X)
}

// Controls returns the control qubits.
func (c *Control) Controls() []int { return c.ctrls }

// Wires returns the payload wires.
func (c *Control) Wires() []int { return c.wires }

// Sub returns the controlled payload.
func (c *Control) Sub() Block { return c.sub }

// NQubits returns the full block width.
func (c *Control) NQubits() int { return c.n }

// Matrix expands the payload matrix under the control condition.
func (c *Control) Matrix() []complex128 {
	return qmath.ExpandControlled(c.sub.Matrix(), c.wires, c.ctrls, c.n)
}

// Apply applies the controlled payload matrix.
func (c *Control) Apply(s State) error {
	if s.NQubits() != c.n {
		return ErrWidthMismatch
	}
	if err := checkWires(c.n, c.wires, c.ctrls); err != nil {
		return err
	}
	return s.ApplyMatrix(c.sub.Matrix(), c.wires, c.ctrls)
}

// Subblocks returns the payload.
func (c *Control) Subblocks() []Block { return []Block{c.sub} }

// WithSubblocks rebuilds the Control around a replacement payload.
func (c *Control) WithSubblocks(subs []Block) Block {
	return &Control{n: c.n, ctrls: c.ctrls, wires: c.wires, sub: subs[0]}
}

// NParams returns 0: parameters live on the leaves.
func (c *Control) NParams() int { return 0 }

// Params returns nil.
func (c *Control) Params() []float64 { return nil }

// Dispatch accepts only an empty value slice.
func (c *Control) Dispatch(_ DispatchOp, values []float64) error {
	if len(values) != 0 {
		return ErrParamCount
	}
	return nil
}

// Adjoint returns a Control of the payload's adjoint with the same
// control structure.
func (c *Control) Adjoint() Block {
	return &Control{n: c.n, ctrls: c.ctrls, wires: c.wires, sub: c.sub.Adjoint()}
}

func (c *Control) String() string {
	return fmt.Sprintf("control(%v, %v ← %s)", c.ctrls, c.wires, c.sub)
}

// Chain applies its children in sequence, left to right.
type Chain struct {
	n      int
	blocks []Block
}

// NewChain builds an n-qubit sequence. Every child must be n qubits wide.
func NewChain(n int, blocks ...Block) *Chain {
	return &Chain{n: n, blocks: blocks}
}

// Blocks returns the children in application order.
func (c *Chain) Blocks() []Block { return c.blocks }

// NQubits returns the chain width.
func (c *Chain) NQubits() int { return c.n }

// Matrix returns the product of the children's matrices, rightmost child
// applied first.
func (c *Chain) Matrix() []complex128 {
	dim := 1 << c.n
	m := qmath.Identity(dim)
	for _, b := range c.blocks {
		m = qmath.MatMul(b.Matrix(), m, dim)
	}
	return m
}

// Apply applies each child in order.
func (c *Chain) Apply(s State) error {
	if s.NQubits() != c.n {
		return ErrWidthMismatch
	}
	for _, b := range c.blocks {
		if err := b.Apply(s); err != nil {
			return err
		}
	}
	return nil
}

// Subblocks returns the children in application order.
func (c *Chain) Subblocks() []Block { return c.blocks }

// WithSubblocks rebuilds the chain with replacement children.
func (c *Chain) WithSubblocks(subs []Block) Block {
	return &Chain{n: c.n, blocks: subs}
}

// NParams returns 0: parameters live on the leaves.
func (c *Chain) NParams() int { return 0 }

// Params returns nil.
func (c *Chain) Params() []float64 { return nil }

// Dispatch accepts only an empty value slice.
func (c *Chain) Dispatch(_ DispatchOp, values []float64) error {
	if len(values) != 0 {
		return ErrParamCount
	}
	return nil
}

// Adjoint returns the reversed chain of adjoints.
func (c *Chain) Adjoint() Block {
	adj := make([]Block, len(c.blocks))
	for i, b := range c.blocks {
		adj[len(c.blocks)-1-i] = b.Adjoint()
	}
	return &Chain{n: c.n, blocks: adj}
}

func (c *Chain) String() string {
	parts := make([]string, len(c.blocks))
	for i, b := range c.blocks {
		parts[i] = b.String()
	}
	return "chain(" + strings.Join(parts, ", ") + ")"
}

// checkWires validates wire and control indices: in range, distinct, and
// mutually disjoint.
func checkWires(n int, wires, ctrls []int) error {
	seen := 0
	for _, w := range append(append([]int(nil), wires...), ctrls...) {
		if w < 0 || w >= n {
			return ErrQubitRange
		}
		bit := 1 << w
		if seen&bit != 0 {
			return ErrQubitRange
		}
		seen |= bit
	}
	return nil
}
