// Package circuit implements the block tree a quantum circuit is composed
// from: primitive gates, parameterized rotations and phase shifts, and the
// Put/Control/Chain composites that place them on a register.
//
// Blocks form an owned tree; the root belongs to the caller. Parameter
// mutation goes exclusively through Block.Dispatch, which is what lets the
// diff package shift and restore angles without touching the evaluation
// path.
package circuit
