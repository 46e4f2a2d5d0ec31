package emit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/emit"
)

func TestGenerateSimpleCircuit(t *testing.T) {
	qc := circuit.New(16)
	require.NoError(t, qc.AddQubitRegister(2, "q"))
	require.NoError(t, qc.AddClassicalRegister(2, "c"))
	qc.AddOp(circuit.NewStandard(circuit.H, nil, 0, [3]float64{}))
	qc.AddOp(circuit.NewStandard(circuit.X, []circuit.Control{{Qubit: 0, Positive: true}}, 1, [3]float64{}))
	qc.AddOp(circuit.NewMeasure([]int{0, 1}, []int{0, 1}))

	var b strings.Builder
	require.NoError(t, emit.NewGenerator(&b).Generate(qc))
	out := b.String()

	assert.Contains(t, out, "OPENQASM 2.0;\n")
	assert.Contains(t, out, "include \"qelib1.inc\";\n")
	assert.Contains(t, out, "qreg q[2];\n")
	assert.Contains(t, out, "creg c[2];\n")
	assert.Contains(t, out, "h q[0];\n")
	assert.Contains(t, out, "measure q -> c;\n")
	assert.Contains(t, out, "// i 0 1\n")
	assert.Contains(t, out, "// o 0 1\n")
}

func TestGenerateBackfillsRemovedQubitGap(t *testing.T) {
	qc := circuit.New(16)
	require.NoError(t, qc.AddQubitRegister(3, "q"))
	_, err := qc.RemoveQubit(1)
	require.NoError(t, err)
	qc.AddOp(circuit.NewStandard(circuit.X, nil, 0, [3]float64{}))

	var b strings.Builder
	require.NoError(t, emit.NewGenerator(&b).Generate(qc))
	out := b.String()

	assert.Contains(t, out, "qbackfill_1")
}

func TestGenerateOrdersDeclarationsByStartIndex(t *testing.T) {
	qc := circuit.New(16)
	require.NoError(t, qc.AddQubitRegister(2, "q"))
	require.NoError(t, qc.AddAncillaryRegister(1, "anc"))

	var b strings.Builder
	require.NoError(t, emit.NewGenerator(&b).Generate(qc))
	out := b.String()

	qIdx := strings.Index(out, "qreg q[2];")
	ancIdx := strings.Index(out, "qreg anc[1];")
	require.NotEqual(t, -1, qIdx)
	require.NotEqual(t, -1, ancIdx)
	assert.Less(t, qIdx, ancIdx)
}
