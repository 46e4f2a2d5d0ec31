// Package format dispatches a file path to the right front-end by
// extension (C6). Deliberately thin: spec.md §6 calls file-format
// dispatch an external-collaborator concern, so this exists only because
// cmd/qfrcli needs something concrete to switch on.
package format

import (
	"path/filepath"
	"strings"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/emit"
	"github.com/qfr-project/qfr/pkg/grcs"
	"github.com/qfr-project/qfr/pkg/qasm"
	"github.com/qfr-project/qfr/pkg/qfrerr"
	"github.com/qfr-project/qfr/pkg/revlib"
	"github.com/qfr-project/qfr/pkg/tfc"
)

// Kind tags a recognized file format.
type Kind int

const (
	Unknown Kind = iota
	OpenQASM
	RevLib
	GRCS
	Toffoli
	Qiskit
)

// Detect maps a file path's extension to a Kind.
func Detect(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".qasm":
		return OpenQASM
	case ".real":
		return RevLib
	case ".txt":
		return GRCS
	case ".tfc":
		return Toffoli
	case ".py":
		return Qiskit
	default:
		return Unknown
	}
}

// Import parses path's contents per its detected format. maxQubits and
// include are forwarded to the OpenQASM front-end; every other format
// ignores them.
func Import(path, src string, maxQubits int, include qasm.Includer) (*circuit.QuantumComputation, *qfrerr.Diagnostics, error) {
	switch Detect(path) {
	case OpenQASM:
		return qasm.Parse(path, src, maxQubits, include)
	case RevLib:
		return revlib.Parse(path, src)
	case GRCS:
		return grcs.Parse(path, src)
	case Toffoli:
		return tfc.Parse(path, src)
	case Qiskit:
		return nil, nil, qfrerr.New(qfrerr.IOError, "Qiskit (.py) emission/import is a non-goal; not implemented")
	default:
		return nil, nil, qfrerr.Newf(qfrerr.IOError, "unrecognized file extension %q", filepath.Ext(path))
	}
}

// ExportOpenQASM renders qc as OpenQASM 2.0 text, the only supported
// emission target (spec.md §6 names Qiskit emission a non-goal).
func ExportOpenQASM(qc *circuit.QuantumComputation) (string, error) {
	var b strings.Builder
	if err := emit.NewGenerator(&b).Generate(qc); err != nil {
		return "", err
	}
	return b.String(), nil
}
