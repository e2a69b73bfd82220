package circuit

import "errors"

var (
	// ErrParamCount indicates a Dispatch call whose value count does not
	// match the block's parameter count.
	ErrParamCount = errors.New("circuit: dispatched value count does not match parameter count")
	// ErrQubitRange indicates a wire or control index outside the block's
	// qubit range, or overlapping wire/control sets.
	ErrQubitRange = errors.New("circuit: qubit index out of range")
	// ErrWidthMismatch indicates a block applied to a state of a
	// different width.
	ErrWidthMismatch = errors.New("circuit: block and state widths differ")
)
