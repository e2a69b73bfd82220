package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varq-ml/varq/internal/circuit"
	"github.com/varq-ml/varq/internal/diff"
)

func markedChain(t *testing.T) circuit.Block {
	t.Helper()
	raw := circuit.NewChain(2,
		circuit.NewPut(2, []int{0}, circuit.Rx(0.1)),
		circuit.NewPut(2, []int{1}, circuit.Ry(0.2)),
		circuit.CNOT(2, 0, 1),
		circuit.NewControl(2, []int{0}, []int{1}, circuit.Phase(0.3)),
	)
	return diff.MarkDifferentiable(raw)
}

func TestNParamsAndCollect(t *testing.T) {
	tree := markedChain(t)
	assert.Equal(t, 3, diff.NParams(tree))
	assert.Equal(t, []float64{0.1, 0.2, 0.3}, diff.CollectParams(tree))
}

func TestDispatchRoundTrip(t *testing.T) {
	tree := markedChain(t)

	// Replace with fresh values, collect, replace back with what came
	// out: the tree must land exactly where it started.
	orig := diff.CollectParams(tree)
	require.NoError(t, diff.Dispatch(tree, []float64{1.5, -0.4, 2.2}, circuit.OpReplace))
	assert.Equal(t, []float64{1.5, -0.4, 2.2}, diff.CollectParams(tree))

	require.NoError(t, diff.Dispatch(tree, orig, circuit.OpReplace))
	assert.Equal(t, orig, diff.CollectParams(tree))
}

func TestDispatchAddSub(t *testing.T) {
	tree := markedChain(t)

	require.NoError(t, diff.Dispatch(tree, []float64{1, 1, 1}, circuit.OpAdd))
	got := diff.CollectParams(tree)
	assert.InDelta(t, 1.1, got[0], 1e-15)
	assert.InDelta(t, 1.2, got[1], 1e-15)
	assert.InDelta(t, 1.3, got[2], 1e-15)

	require.NoError(t, diff.Dispatch(tree, []float64{1, 1, 1}, circuit.OpSub))
	got = diff.CollectParams(tree)
	assert.InDelta(t, 0.1, got[0], 1e-15)
	assert.InDelta(t, 0.2, got[1], 1e-15)
	assert.InDelta(t, 0.3, got[2], 1e-15)
}

func TestDispatchLengthMismatch(t *testing.T) {
	tree := markedChain(t)

	err := diff.Dispatch(tree, []float64{1.0}, circuit.OpReplace)
	assert.ErrorIs(t, err, circuit.ErrParamCount)

	err = diff.Dispatch(tree, []float64{1, 2, 3, 4}, circuit.OpReplace)
	assert.ErrorIs(t, err, circuit.ErrParamCount)
}

func TestMarkedNodesOrder(t *testing.T) {
	// Depth-first traversal order fixes the parameter layout: collecting
	// node-by-node must reproduce CollectParams.
	tree := markedChain(t)
	nodes := diff.MarkedNodes(tree)
	require.Len(t, nodes, 3)

	var flat []float64
	for _, n := range nodes {
		flat = append(flat, n.Params()...)
	}
	assert.Equal(t, diff.CollectParams(tree), flat)
}

func TestUnmarkedTreeHasNoParams(t *testing.T) {
	raw := circuit.NewChain(1, circuit.Rx(0.5))
	assert.Zero(t, diff.NParams(raw))
	assert.Empty(t, diff.MarkedNodes(raw))
	assert.Empty(t, diff.CollectParams(raw))
	assert.NoError(t, diff.Dispatch(raw, nil, circuit.OpReplace))
}
