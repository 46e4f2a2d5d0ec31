package tfc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/tfc"
)

func TestParseToffoliLine(t *testing.T) {
	src := `.v a b c
.i a b
.o c
BEGIN
t3 a,b,c
END
`
	qc, diags, err := tfc.Parse("test.tfc", src)
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
	src := `.v a b
.i a b
BEGIN
t2 a',b
END
`
	qc, _, err := tfc.Parse("test.tfc", src)
	require.NoError(t, err)
	require.Len(t, qc.Ops, 1)
	std := qc.Ops[0].(*circuit.Standard)
	require.Len(t, std.Controls, 1)
	assert.False(t, std.Controls[0].Positive)
}

func TestParseFredkinSwap(t *testing.T) {
	src := `.v a b c
.i a b c
BEGIN
f3 a,b,c
END
`
	qc, _, err := tfc.Parse("test.tfc", src)
	require.NoError(t, err)
	std := qc.Ops[0].(*circuit.Standard)
	assert.Equal(t, circuit.SWAP, std.Kind)
	assert.ElementsMatch(t, []int{1, 2}, std.Targets())
}

func TestParseConstantsInsertsAncillaXPrefix(t *testing.T) {
	src := `.v a b
.i b
.c 1
BEGIN
t2 a,b
END
`
	qc, _, err := tfc.Parse("test.tfc", src)
	require.NoError(t, err)
	require.Len(t, qc.Ops, 2)

	first, ok := qc.Ops[0].(*circuit.Standard)
	require.True(t, ok)
	assert.Equal(t, circuit.X, first.Kind)
	assert.Equal(t, 0, first.Target)
	assert.True(t, qc.State.IsAncillary(0))
}

func TestParseUnknownHeaderCommandIsDiagnosedNotFatal(t *testing.T) {
	src := `.v a b
.i a b
.weird-thing 1 2
BEGIN
t1 a,b
END
`
	qc, diags, err := tfc.Parse("test.tfc", src)
	require.NoError(t, err)
	require.NotNil(t, qc)
	assert.False(t, diags.Empty())
}
