// Package diff implements parameter-shift differentiation for circuit
// blocks.
//
// A circuit tree is first run through MarkDifferentiable, which wraps every
// rotation and controlled-phase gate in a transparent Marked block. Each
// marked node can then be differentiated independently: Perturb shifts the
// node's angle, re-evaluates a caller-supplied closure at θ−δ and θ+δ, and
// restores the original value. Because the generators of rotation and
// controlled-phase gates have eigenvalues ±1, the shift δ=π/2 yields exact
// gradients of expectation values (OpDiff) and of statistical functionals
// of the measured distribution (StatDiff); NumDiff provides the generic
// finite-difference fallback for arbitrary scalar losses.
//
// All of this is pure computation plus in-place mutation of the tree's
// parameter state. Perturb is the sole writer during a differentiation
// call; concurrent differentiation of the same tree requires external
// serialization.
package diff
