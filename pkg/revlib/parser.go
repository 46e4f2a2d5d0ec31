// Package revlib implements the RevLib .real front-end (C6): a
// line-oriented reversible-circuit format, regex-driven the way
// _examples/HershLalwani-q-deck/circuit.go pre-compiles its OpenQASM line
// regexes at package scope rather than building them per call.
package revlib

import (
	"math"
	"regexp"
	"strings"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/constline"
	"github.com/qfr-project/qfr/pkg/qfrerr"
)

var (
	variablesRegex = regexp.MustCompile(`^\.variables\s+(.+)$`)
	constantsRegex = regexp.MustCompile(`^\.constants\s+(\S+)$`)

	// gateNameRegex splits a gate line's first token into its letter
	// (spec.md §4.6: r[xyz] | q | [0-9a-z]), an optional +/i suffix (kept
	// but not interpreted — no format sample in the retrieval pack
	// exercises it), an optional operand-count digit string, and an
	// optional colon-divisor used by the rz/q rotation family.
	gateNameRegex = regexp.MustCompile(`^(r[xyz]|q|[0-9a-z])([+i])?(\d+)?(?::([-+]?\d+))?$`)
)

// Parse reads a complete RevLib .real circuit description.
func Parse(name, src string) (*circuit.QuantumComputation, *qfrerr.Diagnostics, error) {
	diags := &qfrerr.Diagnostics{}
	qc := circuit.New(512)

	var varNames []string
	varIndex := map[string]int{}
	inBody, inDefine := false, false

	for lineNo, raw := range strings.Split(src, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if inDefine {
			if line == ".enddefine" {
				inDefine = false
			}
			continue
		}
		if inBody {
			if line == ".end" {
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
		case line == ".begin":
			inBody = true
		case strings.HasPrefix(line, ".define"):
			inDefine = true
		case strings.HasPrefix(line, ".numvars"):
			// informational only; register width is driven by .variables
		case variablesRegex.MatchString(line):
			m := variablesRegex.FindStringSubmatch(line)
			varNames = strings.Fields(m[1])
			if err := qc.AddQubitRegister(len(varNames), "q"); err != nil {
				return nil, diags, err
			}
			if err := qc.AddClassicalRegister(len(varNames), "c"); err != nil {
				return nil, diags, err
			}
			for i, v := range varNames {
				varIndex[v] = i
			}
		case constantsRegex.MatchString(line):
			m := constantsRegex.FindStringSubmatch(line)
			qubits := make([]int, len(varNames))
			for i := range qubits {
				qubits[i] = i
			}
			constline.Apply(qc, m[1], qubits)
		case strings.HasPrefix(line, ".inputs"), strings.HasPrefix(line, ".outputs"),
			strings.HasPrefix(line, ".garbage"), strings.HasPrefix(line, ".version"),
			strings.HasPrefix(line, ".inputbus"), strings.HasPrefix(line, ".outputbus"):
			diags.Notef(qfrerr.IOError, "header command %q recorded but not modeled", strings.Fields(line)[0])
		case strings.HasPrefix(line, "."):
			diags.Notef(qfrerr.IOError, "unrecognized header command %q skipped", strings.Fields(line)[0])
		default:
			return nil, diags, qfrerr.Atf(qfrerr.SyntaxError, lineNo+1, 0, "unexpected line outside .begin/.end: %q", line)
		}
	}

	return qc, diags, nil
}

func parseGateLine(line string, varIndex map[string]int) (circuit.Operation, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, qfrerr.Newf(qfrerr.SyntaxError, "gate line %q has no operands", line)
	}
	m := gateNameRegex.FindStringSubmatch(fields[0])
	if m == nil {
		return nil, qfrerr.Newf(qfrerr.UnknownGate, "unrecognized gate token %q", fields[0])
	}
	letter, divisorStr := m[1], m[4]
	operands := fields[1:]

	resolve := func(label string) (circuit.Control, error) {
		positive := true
		if strings.HasPrefix(label, "-") {
			positive = false
			label = label[1:]
		}
		idx, ok := varIndex[label]
		if !ok {
			return circuit.Control{}, qfrerr.Newf(qfrerr.UnknownRegister, "undeclared variable %q", label)
		}
		return circuit.Control{Qubit: idx, Positive: positive}, nil
	}

	switch letter {
	case "t":
		controls, target, err := splitControlsAndTarget(operands, resolve, 1)
		if err != nil {
			return nil, err
		}
		return circuit.NewStandard(circuit.X, controls, target[0], [3]float64{}), nil
	case "f":
		controls, targets, err := splitControlsAndTarget(operands, resolve, 2)
		if err != nil {
			return nil, err
		}
		return circuit.NewSwap(controls, targets[0], targets[1]), nil
	case "rx", "ry", "rz", "q":
		controls, target, err := splitControlsAndTarget(operands, resolve, 1)
		if err != nil {
			return nil, err
		}
		kind, params := rotationFrom(letter, divisorStr)
		return circuit.NewStandard(kind, controls, target[0], params), nil
	default:
		return nil, qfrerr.Newf(qfrerr.UnknownGate, "unsupported RevLib gate token %q", fields[0])
	}
}

func splitControlsAndTarget(operands []string, resolve func(string) (circuit.Control, error), ntargets int) ([]circuit.Control, []int, error) {
	if len(operands) < ntargets {
		return nil, nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch, "gate needs at least %d operand(s), got %d", ntargets, len(operands))
	}
	split := len(operands) - ntargets
	controls := make([]circuit.Control, 0, split)
	for _, lbl := range operands[:split] {
		c, err := resolve(lbl)
		if err != nil {
			return nil, nil, err
		}
		controls = append(controls, c)
	}
	targets := make([]int, ntargets)
	for i, lbl := range operands[split:] {
		c, err := resolve(lbl)
		if err != nil {
			return nil, nil, err
		}
		targets[i] = c.Qubit
	}
	return controls, targets, nil
}

// rotationFrom canonicalizes an rz/q-family divisor per spec.md §4.6: an
// integer divisor d of ±1/±2/±4 collapses to Z/S-Sdag/T-Tdag (no divisor,
// or a zero one, counts as d=1 and gives Z); every other divisor keeps a
// general RZ(π/d).
// "q" is treated as an alias of the same phase family rather than a
// distinct gate letter — no RevLib sample in the retrieval pack
// disambiguates it further, recorded as a simplification in DESIGN.md.
func rotationFrom(letter, divisorStr string) (circuit.OpType, [3]float64) {
	d := 1
	if divisorStr != "" {
		if v, ok := parseSignedInt(divisorStr); ok && v != 0 {
			d = v
		}
	}
	if letter == "rz" || letter == "q" {
		switch d {
		case 1, -1:
			return circuit.Z, [3]float64{}
		case 2:
			return circuit.S, [3]float64{}
		case -2:
			return circuit.Sdag, [3]float64{}
		case 4:
			return circuit.T, [3]float64{}
		case -4:
			return circuit.Tdag, [3]float64{}
		default:
			return circuit.RZ, [3]float64{math.Pi / float64(d), 0, 0}
		}
	}
	kind := circuit.RX
	if letter == "ry" {
		kind = circuit.RY
	}
	return kind, [3]float64{math.Pi / float64(d), 0, 0}
}

func parseSignedInt(s string) (int, bool) {
	neg := false
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}
