// Package constline applies a RevLib/Toffoli-style constant line string
// (one character per declared variable: '0'/'1' for a constant ancilla,
// '-' for a genuine input) against an already-built computation. Shared
// between pkg/revlib and pkg/tfc, which both encode ancilla
// initialization the same way: every constant entry is marked ancillary
// and, if its value is 1, gets an X gate prepended so the line starts in
// the right state.
package constline

import "github.com/qfr-project/qfr/pkg/circuit"

// Apply marks qubits[i] ancillary for every non-'-' character of
// constants, inserting an X prefix for every '1'.
func Apply(qc *circuit.QuantumComputation, constants string, qubits []int) {
	var prefix []circuit.Operation
	for i, ch := range constants {
		if i >= len(qubits) {
			break
		}
		switch ch {
		case '0', '1':
			qc.State.SetAncillary(qubits[i], true)
			if ch == '1' {
				x := circuit.NewStandard(circuit.X, nil, qubits[i], [3]float64{})
				x.SetNqubits(qc.State.Total())
				prefix = append(prefix, x)
			}
		}
	}
	if len(prefix) > 0 {
		qc.Ops = append(prefix, qc.Ops...)
	}
}
