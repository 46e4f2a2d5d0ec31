package revlib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/revlib"
)

func TestParseToffoliLine(t *testing.T) {
	src := `.numvars 3
.variables a b c
.begin
t3 a b c
.end
`
	qc, diags, err := revlib.Parse("test.real", src)
	require.NoError(t, err)
	require.True(t, diags.Empty())
	require.Len(t, qc.Ops, 1)

	std, ok := qc.Ops[0].(*circuit.Standard)
	require.True(t, ok)
	assert.Equal(t, circuit.X, std.Kind)
	assert.Len(t, std.Controls, 2)
	assert.Equal(t, 2, std.Target)
}

func TestParseNegativeControl(t *testing.T) {
	src := `.variables a b
.begin
t2 -a b
.end
`
	qc, _, err := revlib.Parse("test.real", src)
	require.NoError(t, err)
	require.Len(t, qc.Ops, 1)
	std := qc.Ops[0].(*circuit.Standard)
	require.Len(t, std.Controls, 1)
	assert.False(t, std.Controls[0].Positive)
}

func TestParseFredkinSwap(t *testing.T) {
	src := `.variables a b c
.begin
f3 a b c
.end
`
	qc, _, err := revlib.Parse("test.real", src)
	require.NoError(t, err)
	std := qc.Ops[0].(*circuit.Standard)
	assert.Equal(t, circuit.SWAP, std.Kind)
	assert.ElementsMatch(t, []int{1, 2}, std.Targets())
}

func TestParseRzDivisorCanonicalization(t *testing.T) {
	src := `.variables a
.begin
rz1:4 a
.end
`
	qc, _, err := revlib.Parse("test.real", src)
	require.NoError(t, err)
	std := qc.Ops[0].(*circuit.Standard)
	assert.Equal(t, circuit.T, std.Kind)
}

func TestParseConstantsInsertsAncillaXPrefix(t *testing.T) {
	src := `.variables a b
.constants 1-
.begin
t2 a b
.end
`
	qc, _, err := revlib.Parse("test.real", src)
	require.NoError(t, err)
	require.Len(t, qc.Ops, 2)
	first, ok := qc.Ops[0].(*circuit.Standard)
	require.True(t, ok)
	assert.Equal(t, circuit.X, first.Kind)
	assert.Equal(t, 0, first.Target)
	assert.True(t, qc.State.IsAncillary(0))
}
