package circuit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/dd"
	"github.com/qfr-project/qfr/pkg/dd/ruddadapter"
	"github.com/qfr-project/qfr/pkg/register"
)

func newState(t *testing.T, qubits int) *register.State {
	t.Helper()
	st := register.New(qubits)
	require.NoError(t, st.AddQubitRegister(qubits, "q"))
	require.NoError(t, st.AddClassicalRegister(qubits, "c"))
	return st
}

func TestStandardActsOnTargetAndControls(t *testing.T) {
	g := circuit.NewStandard(circuit.X, []circuit.Control{{Qubit: 0, Positive: true}}, 1, [3]float64{})
	assert.True(t, g.ActsOn(0))
	assert.True(t, g.ActsOn(1))
	assert.False(t, g.ActsOn(2))
	assert.True(t, g.IsUnitary())
	assert.Equal(t, []int{1}, g.Targets())
}

func TestStandardPrintRendersControlsAndTarget(t *testing.T) {
	st := newState(t, 3)
	g := circuit.NewStandard(circuit.X,
		[]circuit.Control{{Qubit: 0, Positive: true}, {Qubit: 1, Positive: false}}, 2, [3]float64{})

	var b strings.Builder
	require.NoError(t, g.Print(&b, st))
	assert.Equal(t, "ccx q[0],~q[1],q[2];\n", b.String())
}

func TestStandardPrintRendersParameterizedGate(t *testing.T) {
	st := newState(t, 1)
	g := circuit.NewStandard(circuit.RX, nil, 0, [3]float64{1.5707963267948966, 0, 0})

	var b strings.Builder
	require.NoError(t, g.Print(&b, st))
	assert.True(t, strings.HasPrefix(b.String(), "rx("))
	assert.True(t, strings.HasSuffix(b.String(), "q[0];\n"))
}

func TestCompoundActsOnUnionsChildren(t *testing.T) {
	g1 := circuit.NewStandard(circuit.H, nil, 0, [3]float64{})
	g2 := circuit.NewStandard(circuit.X, []circuit.Control{{Qubit: 0, Positive: true}}, 1, [3]float64{})
	c := circuit.NewCompound([]circuit.Operation{g1, g2})

	assert.True(t, c.ActsOn(0))
	assert.True(t, c.ActsOn(1))
	assert.False(t, c.ActsOn(2))
	assert.True(t, c.IsUnitary())
	assert.Equal(t, []int{0, 1}, c.Targets())
}

func TestCompoundSetNqubitsPropagatesToChildren(t *testing.T) {
	g1 := circuit.NewStandard(circuit.H, nil, 0, [3]float64{})
	g2 := circuit.NewStandard(circuit.X, nil, 1, [3]float64{})
	c := circuit.NewCompound([]circuit.Operation{g1, g2})

	c.SetNqubits(5)
	assert.Equal(t, 5, c.NQubits())
	assert.Equal(t, 5, g1.NQubits())
	assert.Equal(t, 5, g2.NQubits())
}

func TestCompoundIsUnitaryFalseIfAnyChildNonUnitary(t *testing.T) {
	g1 := circuit.NewStandard(circuit.H, nil, 0, [3]float64{})
	m := circuit.NewMeasure([]int{1}, []int{0})
	c := circuit.NewCompound([]circuit.Operation{g1, m})
	assert.False(t, c.IsUnitary())
}

func TestMeasurePacksQubitsInControlsAndClassicsInTargets(t *testing.T) {
	m := circuit.NewMeasure([]int{0, 1}, []int{0, 1})
	assert.Equal(t, []int{0, 1}, m.Targets())
	assert.Equal(t, []int{0, 1}, m.ClassicalTargets())
	assert.False(t, m.IsUnitary())
	assert.True(t, m.ActsOn(0))
	assert.False(t, m.ActsOn(2))
}

func TestMeasurePrintFoldsWholeRegister(t *testing.T) {
	st := newState(t, 2)
	m := circuit.NewMeasure([]int{0, 1}, []int{0, 1})

	var b strings.Builder
	require.NoError(t, m.Print(&b, st))
	assert.Equal(t, "measure q -> c;\n", b.String())
}

func TestMeasurePrintFallsBackToPerQubitLines(t *testing.T) {
	st := newState(t, 2)
	m := circuit.NewMeasure([]int{1}, []int{0})

	var b strings.Builder
	require.NoError(t, m.Print(&b, st))
	assert.Equal(t, "measure q[1] -> c[0];\n", b.String())
}

func TestNonUnitaryBarrierActsOnQubitList(t *testing.T) {
	n := circuit.NewNonUnitary(circuit.Barrier, []int{0, 2})
	assert.True(t, n.ActsOn(0))
	assert.False(t, n.ActsOn(1))
	assert.True(t, n.ActsOn(2))
	assert.Equal(t, []int{0, 2}, n.Targets())
}

func TestClassicControlledForwardsAndPrintsGuard(t *testing.T) {
	st := newState(t, 1)
	inner := circuit.NewStandard(circuit.X, nil, 0, [3]float64{})
	cc := circuit.NewClassicControlled(inner, "c", 0, 1, 1)

	assert.True(t, cc.ActsOn(0))
	assert.False(t, cc.IsUnitary())
	assert.Equal(t, []int{0}, cc.Targets())

	var b strings.Builder
	require.NoError(t, cc.Print(&b, st))
	assert.Equal(t, "if(c==1) x q[0];\n", b.String())
}

func TestStandardDDAttachBuildsAgainstRuddEngine(t *testing.T) {
	eng := ruddadapter.New(3)
	line := make([]dd.LineEntry, 3)
	g := circuit.NewStandard(circuit.X, []circuit.Control{{Qubit: 0, Positive: true}}, 1, [3]float64{})

	edge, err := g.DDAttach(eng, line, nil)
	require.NoError(t, err)
	assert.NotNil(t, edge.Node)

	for _, role := range line {
		assert.Equal(t, dd.LineDefault, role)
	}
}

func TestStandardDDAttachReorderedRemapsLines(t *testing.T) {
	eng := ruddadapter.New(3)
	line := make([]dd.LineEntry, 3)
	g := circuit.NewStandard(circuit.X, []circuit.Control{{Qubit: 0, Positive: true}}, 1, [3]float64{})

	_, err := g.DDAttachReordered(eng, line, []int{2, 0, 1})
	require.NoError(t, err)
}

func TestCompoundDDAttachMultipliesChildren(t *testing.T) {
	eng := ruddadapter.New(2)
	line := make([]dd.LineEntry, 2)
	g1 := circuit.NewStandard(circuit.X, nil, 0, [3]float64{})
	g2 := circuit.NewStandard(circuit.X, []circuit.Control{{Qubit: 0, Positive: true}}, 1, [3]float64{})
	c := circuit.NewCompound([]circuit.Operation{g1, g2})

	edge, err := c.DDAttach(eng, line, nil)
	require.NoError(t, err)
	assert.NotNil(t, edge.Node)
}

func TestCompoundDDAttachEmptyReturnsError(t *testing.T) {
	eng := ruddadapter.New(1)
	line := make([]dd.LineEntry, 1)
	c := circuit.NewCompound(nil)

	_, err := c.DDAttach(eng, line, nil)
	assert.Error(t, err)
}

func TestQuantumComputationPropagatesNqubitsAfterRegisterGrowth(t *testing.T) {
	qc := circuit.New(8)
	require.NoError(t, qc.AddQubitRegister(2, "q"))

	g := circuit.NewStandard(circuit.H, nil, 0, [3]float64{})
	qc.AddOp(g)
	assert.Equal(t, 2, g.NQubits())

	require.NoError(t, qc.AddAncillaryRegister(1, "anc"))
	assert.Equal(t, 3, g.NQubits())
}

func TestQuantumComputationValidatePassesOnFreshState(t *testing.T) {
	qc := circuit.New(4)
	require.NoError(t, qc.AddQubitRegister(2, "q"))
	require.NoError(t, qc.AddClassicalRegister(2, "c"))
	assert.NoError(t, qc.Validate())
}

func TestQuantumComputationStripIdleQubitsUsesOperationActsOn(t *testing.T) {
	qc := circuit.New(4)
	require.NoError(t, qc.AddQubitRegister(3, "q"))
	qc.AddOp(circuit.NewStandard(circuit.H, nil, 0, [3]float64{}))

	require.NoError(t, qc.StripIdleQubits(true))
	assert.Equal(t, 1, qc.State.Total())
}

func TestQuantumComputationResetClearsOpsAndState(t *testing.T) {
	qc := circuit.New(4)
	require.NoError(t, qc.AddQubitRegister(2, "q"))
	qc.AddOp(circuit.NewStandard(circuit.H, nil, 0, [3]float64{}))

	qc.Reset()
	assert.Empty(t, qc.Ops)
	assert.Equal(t, 0, qc.State.Total())
	assert.Equal(t, 4, qc.State.MaxQubits)
}

func TestSwapActsOnBothTargets(t *testing.T) {
	g := circuit.NewSwap(nil, 0, 2)
	assert.True(t, g.ActsOn(0))
	assert.True(t, g.ActsOn(2))
	assert.False(t, g.ActsOn(1))
	assert.Equal(t, []int{0, 2}, g.Targets())
}

func TestSwapPrintRendersBothTargets(t *testing.T) {
	st := newState(t, 3)
	g := circuit.NewSwap([]circuit.Control{{Qubit: 1, Positive: true}}, 0, 2)

	var b strings.Builder
	require.NoError(t, g.Print(&b, st))
	assert.Equal(t, "cswap q[1],q[0],q[2];\n", b.String())
}

func TestSwapDDAttachPaintsBothTargetLines(t *testing.T) {
	st := newState(t, 3)
	eng := ruddadapter.New(st.Total())
	g := circuit.NewSwap(nil, 0, 2)

	line := make([]dd.LineEntry, st.Total())
	_, err := g.DDAttach(eng, line, st)
	require.NoError(t, err)
	for _, l := range line {
		assert.Equal(t, dd.LineDefault, l)
	}
}
