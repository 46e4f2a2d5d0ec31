// Package tfc implements the Toffoli .tfc front-end (C6): a
// comma-operand reversible-circuit format closely related to RevLib .real,
// sharing its constant-line handling via pkg/constline and its
// regex-at-package-scope idiom, grounded the same way as pkg/revlib on
// _examples/HershLalwani-q-deck/circuit.go.
package tfc

import (
	"regexp"
	"strings"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/constline"
	"github.com/qfr-project/qfr/pkg/qfrerr"
)

var (
	varsRegex    = regexp.MustCompile(`^\.v\s+(.+)$`)
	inputsRegex  = regexp.MustCompile(`^\.i\s+(.+)$`)
	outputsRegex = regexp.MustCompile(`^\.o\s+(.+)$`)
	constsRegex  = regexp.MustCompile(`^\.c\s+(.+)$`)
	gateRegex    = regexp.MustCompile(`^(t|f)(\d+)?$`)
)

// Parse reads a complete Toffoli .tfc circuit description.
func Parse(name, src string) (*circuit.QuantumComputation, *qfrerr.Diagnostics, error) {
	diags := &qfrerr.Diagnostics{}
	qc := circuit.New(512)

	var allVars, inputs []string
	varIndex := map[string]int{}
	declared := false
	inBody := false

	for lineNo, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if inBody {
			if strings.EqualFold(line, "BEGIN") {
				continue
			}
			if strings.EqualFold(line, "END") {
				inBody = false
				continue
			}
			op, err := parseGateLine(line, varIndex)
			if err != nil {
				return nil, diags, qfrerr.Atf(qfrerr.SyntaxError, lineNo+1, 0, "%v", err)
			}
			qc.AddOp(op)
			continue
		}

		switch {
		case strings.EqualFold(line, "BEGIN"):
			inBody = true
		case varsRegex.MatchString(line):
			m := varsRegex.FindStringSubmatch(line)
			allVars = splitOperands(m[1])
			if err := qc.AddQubitRegister(len(allVars), "q"); err != nil {
				return nil, diags, err
			}
			for i, v := range allVars {
				varIndex[v] = i
			}
			declared = true
		case inputsRegex.MatchString(line):
			m := inputsRegex.FindStringSubmatch(line)
			inputs = splitOperands(m[1])
		case outputsRegex.MatchString(line):
			diags.Notef(qfrerr.IOError, "output list recorded but not modeled as a register")
		case constsRegex.MatchString(line):
			m := constsRegex.FindStringSubmatch(line)
			if !declared {
				return nil, diags, qfrerr.At(qfrerr.SyntaxError, lineNo+1, 0, ".c before .v")
			}
			constline.Apply(qc, constantLineFromInputs(allVars, inputs, m[1]), identity(len(allVars)))
		case strings.HasPrefix(line, "."):
			diags.Notef(qfrerr.IOError, "unrecognized header command %q skipped", strings.Fields(line)[0])
		default:
			return nil, diags, qfrerr.Atf(qfrerr.SyntaxError, lineNo+1, 0, "unexpected line outside BEGIN/END: %q", line)
		}
	}

	return qc, diags, nil
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// constantLineFromInputs synthesizes a revlib-style constants string (one
// char per declared var, '-' for a real input) from .tfc's separate .i and
// .c lines: every var not present in inputs is non-input and takes its
// value from the .c tokens, consumed in declaration order.
func constantLineFromInputs(allVars, inputs []string, constTokens string) string {
	isInput := make(map[string]bool, len(inputs))
	for _, v := range inputs {
		isInput[v] = true
	}
	tokens := splitOperands(constTokens)
	var b strings.Builder
	ti := 0
	for _, v := range allVars {
		if isInput[v] {
			b.WriteByte('-')
			continue
		}
		if ti < len(tokens) && tokens[ti] == "1" {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		ti++
	}
	return b.String()
}

func splitOperands(s string) []string {
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Fields(s)
}

func parseGateLine(line string, varIndex map[string]int) (circuit.Operation, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, qfrerr.Newf(qfrerr.SyntaxError, "gate line %q has no operands", line)
	}
	m := gateRegex.FindStringSubmatch(fields[0])
	if m == nil {
		return nil, qfrerr.Newf(qfrerr.UnknownGate, "unrecognized gate token %q", fields[0])
	}
	operands := splitOperands(strings.Join(fields[1:], " "))

	resolve := func(label string) (circuit.Control, error) {
		positive := true
		if strings.HasSuffix(label, "'") {
			positive = false
			label = strings.TrimSuffix(label, "'")
		}
		idx, ok := varIndex[label]
		if !ok {
			return circuit.Control{}, qfrerr.Newf(qfrerr.UnknownRegister, "undeclared variable %q", label)
		}
		return circuit.Control{Qubit: idx, Positive: positive}, nil
	}

	switch m[1] {
	case "t":
		if len(operands) < 1 {
			return nil, qfrerr.New(qfrerr.ArgumentArityMismatch, "toffoli gate needs at least one operand")
		}
		controls := make([]circuit.Control, 0, len(operands)-1)
		for _, lbl := range operands[:len(operands)-1] {
			c, err := resolve(lbl)
			if err != nil {
				return nil, err
			}
			controls = append(controls, c)
		}
		target, err := resolve(operands[len(operands)-1])
		if err != nil {
			return nil, err
		}
		return circuit.NewStandard(circuit.X, controls, target.Qubit, [3]float64{}), nil
	case "f":
		if len(operands) < 2 {
			return nil, qfrerr.New(qfrerr.ArgumentArityMismatch, "fredkin gate needs at least two operands")
		}
		controls := make([]circuit.Control, 0, len(operands)-2)
		for _, lbl := range operands[:len(operands)-2] {
			c, err := resolve(lbl)
			if err != nil {
				return nil, err
			}
			controls = append(controls, c)
		}
		t1, err := resolve(operands[len(operands)-2])
		if err != nil {
			return nil, err
		}
		t2, err := resolve(operands[len(operands)-1])
		if err != nil {
			return nil, err
		}
		return circuit.NewSwap(controls, t1.Qubit, t2.Qubit), nil
	default:
		return nil, qfrerr.Newf(qfrerr.UnknownGate, "unsupported Toffoli gate token %q", fields[0])
	}
}
