package grcs_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/grcs"
)

func TestParseCZGate(t *testing.T) {
	qc, diags, err := grcs.Parse("test.txt", "0 cz 0 1\n")
	require.NoError(t, err)
	require.True(t, diags.Empty())
	require.Len(t, qc.Ops, 1)

	std, ok := qc.Ops[0].(*circuit.Standard)
	require.True(t, ok)
	assert.Equal(t, circuit.Z, std.Kind)
	require.Len(t, std.Controls, 1)
	assert.Equal(t, 0, std.Controls[0].Qubit)
	assert.Equal(t, 1, std.Target)
}

func TestParseSingleQubitGates(t *testing.T) {
	qc, _, err := grcs.Parse("test.txt", "0 h 0\n1 t 0\n2 x_1_2 1\n3 y_1_2 1\n")
	require.NoError(t, err)
	require.Len(t, qc.Ops, 4)

	assert.Equal(t, circuit.H, qc.Ops[0].(*circuit.Standard).Kind)
	assert.Equal(t, circuit.T, qc.Ops[1].(*circuit.Standard).Kind)

	rx := qc.Ops[2].(*circuit.Standard)
	assert.Equal(t, circuit.RX, rx.Kind)
	assert.InDelta(t, math.Pi/2, rx.Params[0], 1e-9)

	ry := qc.Ops[3].(*circuit.Standard)
	assert.Equal(t, circuit.RY, ry.Kind)
	assert.InDelta(t, math.Pi/2, ry.Params[0], 1e-9)
}

func TestParseQubitCountFromHighestIndex(t *testing.T) {
	qc, _, err := grcs.Parse("test.txt", "0 h 2\n")
	require.NoError(t, err)
	assert.Equal(t, 3, qc.State.Total())
}

func TestParseUnknownGateFails(t *testing.T) {
	_, _, err := grcs.Parse("test.txt", "0 bogus 0\n")
	assert.Error(t, err)
}

func TestParseSkipsBlankAndCommentLines(t *testing.T) {
	qc, _, err := grcs.Parse("test.txt", "# header\n\n0 h 0\n")
	require.NoError(t, err)
	require.Len(t, qc.Ops, 1)
}
