// Package grcs implements the Google Random Circuit Sampling front-end
// (C6): whitespace-separated "cycle gate args..." records with a fixed,
// small gate vocabulary and an identity initial layout. Regex-free —
// unlike pkg/revlib/pkg/tfc there is no operand punctuation to split, so
// this follows the plain strings.Fields tokenizing idiom used throughout
// _examples/HershLalwani-q-deck/circuit.go for its non-regex lines.
package grcs

import (
	"math"
	"strconv"
	"strings"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/qfrerr"
)

// Parse reads a complete Google RCS circuit description. Qubit count is
// the highest index referenced plus one; the initial layout is identity.
func Parse(name, src string) (*circuit.QuantumComputation, *qfrerr.Diagnostics, error) {
	diags := &qfrerr.Diagnostics{}

	type record struct {
		cycle int
		gate  string
		args  []int
	}
	var records []record
	maxQubit := -1

	for lineNo, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, diags, qfrerr.Atf(qfrerr.SyntaxError, lineNo+1, 0, "record %q has too few fields", line)
		}
		cycle, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, diags, qfrerr.Atf(qfrerr.SyntaxError, lineNo+1, 0, "invalid cycle number %q", fields[0])
		}
		gate := fields[1]
		args := make([]int, 0, len(fields)-2)
		for _, f := range fields[2:] {
			q, err := strconv.Atoi(f)
			if err != nil {
				return nil, diags, qfrerr.Atf(qfrerr.SyntaxError, lineNo+1, 0, "invalid qubit index %q", f)
			}
			args = append(args, q)
			if q > maxQubit {
				maxQubit = q
			}
		}
		records = append(records, record{cycle, gate, args})
	}

	qc := circuit.New(512)
	if maxQubit >= 0 {
		if err := qc.AddQubitRegister(maxQubit+1, "q"); err != nil {
			return nil, diags, err
		}
	}

	for _, r := range records {
		op, err := buildOp(r.gate, r.args)
		if err != nil {
			return nil, diags, err
		}
		qc.AddOp(op)
	}

	return qc, diags, nil
}

func buildOp(gate string, args []int) (circuit.Operation, error) {
	switch gate {
	case "cz":
		if len(args) != 2 {
			return nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch, "cz needs 2 qubits, got %d", len(args))
		}
		controls := []circuit.Control{{Qubit: args[0], Positive: true}}
		return circuit.NewStandard(circuit.Z, controls, args[1], [3]float64{}), nil
	case "h":
		if len(args) != 1 {
			return nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch, "h needs 1 qubit, got %d", len(args))
		}
		return circuit.NewStandard(circuit.H, nil, args[0], [3]float64{}), nil
	case "t":
		if len(args) != 1 {
			return nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch, "t needs 1 qubit, got %d", len(args))
		}
		return circuit.NewStandard(circuit.T, nil, args[0], [3]float64{}), nil
	case "x_1_2":
		if len(args) != 1 {
			return nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch, "x_1_2 needs 1 qubit, got %d", len(args))
		}
		return circuit.NewStandard(circuit.RX, nil, args[0], [3]float64{math.Pi / 2, 0, 0}), nil
	case "y_1_2":
		if len(args) != 1 {
			return nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch, "y_1_2 needs 1 qubit, got %d", len(args))
		}
		return circuit.NewStandard(circuit.RY, nil, args[0], [3]float64{math.Pi / 2, 0, 0}), nil
	default:
		return nil, qfrerr.Newf(qfrerr.UnknownGate, "unrecognized GRCS gate %q", gate)
	}
}
