package circuit

// State is the minimal surface a block needs from a quantum register to
// apply itself. register.Register implements it; anything else that can
// multiply a (controlled) gate matrix into its amplitudes will do.
type State interface {
	// NQubits returns the register width.
	NQubits() int

	// ApplyMatrix multiplies a 2^k×2^k matrix into the amplitudes on the
	// given wires, restricted to basis states where every control qubit
	// is 1. ctrls may be nil.
	ApplyMatrix(mat []complex128, wires, ctrls []int) error
}

// DispatchOp selects how Dispatch combines incoming values with a block's
// current parameters.
type DispatchOp int

const (
	// OpReplace overwrites the parameter with the incoming value.
	OpReplace DispatchOp = iota
	// OpAdd adds the incoming value to the parameter.
	OpAdd
	// OpSub subtracts the incoming value from the parameter.
	OpSub
)

// Block is a node in a circuit tree.
//
// The variant set is closed: Gate, Rotation, PhaseShift, Put, Control and
// Chain (plus the diff package's marker, which is transparent). Code that
// needs per-variant behavior switches on the concrete type rather than
// probing for ad-hoc capabilities.
type Block interface {
	// NQubits returns the number of qubits the block acts on.
	NQubits() int

	// Matrix returns the dense 2^n×2^n matrix of the block, row-major.
	Matrix() []complex128

	// Apply applies the block to a state in place.
	Apply(s State) error

	// Subblocks returns the direct children, nil for leaves.
	Subblocks() []Block

	// WithSubblocks rebuilds the block with replacement children of the
	// same shape. Leaves return themselves.
	WithSubblocks(subs []Block) Block

	// NParams returns the number of scalar parameters held directly by
	// this block (children excluded).
	NParams() int

	// Params returns the block's own parameter values.
	Params() []float64

	// Dispatch combines values into the block's own parameters using op.
	// len(values) must equal NParams.
	Dispatch(op DispatchOp, values []float64) error

	// Adjoint returns the Hermitian conjugate of the block.
	Adjoint() Block

	// String renders the block for diagnostics.
	String() string
}

// apply combines op into a single current parameter value.
func apply(op DispatchOp, cur, v float64) float64 {
	switch op {
	case OpAdd:
		return cur + v
	case OpSub:
		return cur - v
	default:
		return v
	}
}
