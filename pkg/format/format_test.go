package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfr-project/qfr/pkg/format"
)

func TestDetectByExtension(t *testing.T) {
	assert.Equal(t, format.OpenQASM, format.Detect("circuit.qasm"))
	assert.Equal(t, format.RevLib, format.Detect("circuit.real"))
	assert.Equal(t, format.GRCS, format.Detect("circuit.txt"))
	assert.Equal(t, format.Toffoli, format.Detect("circuit.tfc"))
	assert.Equal(t, format.Qiskit, format.Detect("circuit.py"))
	assert.Equal(t, format.Unknown, format.Detect("circuit.weird"))
}

func TestImportUnrecognizedExtensionFails(t *testing.T) {
	_, _, err := format.Import("circuit.weird", "", 8, nil)
	assert.Error(t, err)
}

func TestImportQiskitIsNonGoal(t *testing.T) {
	_, _, err := format.Import("circuit.py", "", 8, nil)
	assert.Error(t, err)
}

func TestImportAndExportRoundTripOpenQASM(t *testing.T) {
	src := `OPENQASM 2.0;
qreg q[2];
h q[0];
cx q[0],q[1];
`
	qc, _, err := format.Import("circuit.qasm", src, 8, nil)
	require.NoError(t, err)

	out, err := format.ExportOpenQASM(qc)
	require.NoError(t, err)
	assert.Contains(t, out, "h q[0];\n")
	assert.Contains(t, out, "cx q[0],q[1];\n")
}
