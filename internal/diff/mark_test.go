package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varq-ml/varq/internal/circuit"
	"github.com/varq-ml/varq/internal/diff"
)

func TestMarkEligibility(t *testing.T) {
	m, err := diff.Mark(circuit.Rx(0.1))
	require.NoError(t, err)

	// No stacking.
	_, err = diff.Mark(m)
	assert.ErrorIs(t, err, diff.ErrNotDifferentiable)

	// Controlled phase is eligible.
	cph := circuit.NewControl(2, []int{0}, []int{1}, circuit.Phase(0.3))
	_, err = diff.Mark(cph)
	require.NoError(t, err)

	// A generic control block is not.
	cx := circuit.CNOT(2, 0, 1)
	_, err = diff.Mark(cx)
	assert.ErrorIs(t, err, diff.ErrNotDifferentiable)

	// Neither are bare gates or composites.
	_, err = diff.Mark(circuit.X)
	assert.ErrorIs(t, err, diff.ErrNotDifferentiable)
	_, err = diff.Mark(circuit.NewChain(1, circuit.Rx(0.1)))
	assert.ErrorIs(t, err, diff.ErrNotDifferentiable)
}

func TestMarkedTransparency(t *testing.T) {
	rot := circuit.Ry(0.4)
	m, err := diff.Mark(rot)
	require.NoError(t, err)

	assert.Equal(t, rot.NQubits(), m.NQubits())
	assert.Equal(t, rot.Matrix(), m.Matrix())
	assert.Equal(t, rot.Params(), m.Params())
	assert.Equal(t, "[∂]"+rot.String(), m.String())
	assert.Same(t, circuit.Block(rot), m.Unwrap())

	// Adjoint stays marked and negates the angle.
	adj, ok := m.Adjoint().(*diff.Marked)
	require.True(t, ok)
	assert.Equal(t, []float64{-0.4}, adj.Params())
}

func TestMarkedControlledPhaseParams(t *testing.T) {
	// The marker's parameter set is its content's: the phase angle lives
	// on the payload.
	cph := circuit.NewControl(2, []int{0}, []int{1}, circuit.Phase(0.3))
	m, err := diff.Mark(cph)
	require.NoError(t, err)

	assert.Equal(t, 1, m.NParams())
	assert.Equal(t, []float64{0.3}, m.Params())

	require.NoError(t, m.Dispatch(circuit.OpAdd, []float64{0.2}))
	assert.InDelta(t, 0.5, cph.Sub().(*circuit.PhaseShift).Theta(), 1e-15)
}

func markedCount(b circuit.Block) int {
	return len(diff.MarkedNodes(b))
}

func TestMarkDifferentiable(t *testing.T) {
	tree := circuit.NewChain(2,
		circuit.NewPut(2, []int{0}, circuit.Rx(0.1)),
		circuit.NewPut(2, []int{1}, circuit.H),
		circuit.NewControl(2, []int{0}, []int{1}, circuit.Phase(0.2)),
		circuit.CNOT(2, 0, 1),
	)
	marked := diff.MarkDifferentiable(tree)

	assert.Equal(t, 2, markedCount(marked))
	assert.Equal(t, []float64{0.1, 0.2}, diff.CollectParams(marked))
}

func TestMarkEscapesGenericControls(t *testing.T) {
	// A rotation inside a generic controlled block stays unmarked; the
	// sibling rotation outside is still wrapped.
	inner := circuit.Ry(0.5)
	tree := circuit.NewChain(2,
		circuit.NewControl(2, []int{0}, []int{1}, inner),
		circuit.NewPut(2, []int{0}, circuit.Rx(0.1)),
	)
	marked := diff.MarkDifferentiable(tree)

	assert.Equal(t, 1, markedCount(marked))
	assert.Equal(t, []float64{0.1}, diff.CollectParams(marked))

	// The control node survives untouched, inner rotation unwrapped.
	ctrl := marked.(*circuit.Chain).Blocks()[0].(*circuit.Control)
	assert.Same(t, circuit.Block(inner), ctrl.Sub())
}

func TestMarkIdempotent(t *testing.T) {
	tree := diff.MarkDifferentiable(circuit.NewChain(1,
		circuit.Rx(0.1), circuit.Rz(0.2), circuit.H,
	))
	again := diff.MarkDifferentiable(tree)

	assert.Equal(t, markedCount(tree), markedCount(again))
	assert.Equal(t, diff.CollectParams(tree), diff.CollectParams(again))
}

func TestMarkLeavesBareTreesAlone(t *testing.T) {
	leaf := circuit.NewPut(2, []int{0}, circuit.H)
	assert.Same(t, circuit.Block(leaf), diff.MarkDifferentiable(leaf))
}

func TestGenerator(t *testing.T) {
	m, err := diff.Mark(circuit.Rx(0.3))
	require.NoError(t, err)
	g, err := diff.Generator(m)
	require.NoError(t, err)
	assert.Same(t, circuit.Block(circuit.X), g)

	// Controlled phase: same control structure, payload replaced by Z.
	cph := circuit.NewControl(3, []int{0, 2}, []int{1}, circuit.Phase(0.3))
	m, err = diff.Mark(cph)
	require.NoError(t, err)
	g, err = diff.Generator(m)
	require.NoError(t, err)

	ctrl, ok := g.(*circuit.Control)
	require.True(t, ok)
	assert.Equal(t, []int{0, 2}, ctrl.Controls())
	assert.Equal(t, []int{1}, ctrl.Wires())
	assert.Same(t, circuit.Block(circuit.Z), ctrl.Sub())
}

type backpropSpy struct {
	*circuit.Rotation
	got []complex128
}

func (s *backpropSpy) Backprop(grad []complex128) error {
	s.got = grad
	return nil
}

func TestBackpropForwarded(t *testing.T) {
	// The marker forwards the adjoint hook to content that implements it
	// and swallows it otherwise.
	m, err := diff.Mark(circuit.Rx(0.1))
	require.NoError(t, err)

	spy := &backpropSpy{Rotation: circuit.Rx(0.1)}
	marked, ok := m.WithSubblocks([]circuit.Block{spy}).(*diff.Marked)
	require.True(t, ok)

	grad := []complex128{1, 2}
	require.NoError(t, marked.Backprop(grad))
	assert.Equal(t, grad, spy.got)

	plain, err := diff.Mark(circuit.Rx(0.2))
	require.NoError(t, err)
	require.NoError(t, plain.Backprop(grad))
}
