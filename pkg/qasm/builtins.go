package qasm

import (
	"math"

	"github.com/qfr-project/qfr/pkg/expr"
)

func num(v float64) *expr.Node        { return &expr.Node{Tag: expr.Number, Value: v} }
func id(name string) *expr.Node       { return &expr.Node{Tag: expr.ID, Name: name} }
func single(a, p, l *expr.Node) *CompoundGate {
	return &CompoundGate{
		ArgumentNames: []string{"a"},
		Body:          []bodyOp{bodyU{Theta: a, Phi: p, Lambda: l, Target: "a"}},
	}
}

// newBuiltinStore returns the qelib1.inc single-primitive gate set
// (spec.md §4.5's supplement), expressed the way the real qelib1.inc
// defines each gate in terms of U3/CX: every multi-controlled or
// explicitly "c"-prefixed invocation (ccx, crz, cu1, cu3, cz, cy, ch, ...)
// is handled generically by the implicit-control convention peeling
// leading 'c's off the call name at Gate() time, exactly as the original
// parser does — so only the base, uncontrolled gates need a store entry,
// plus cx, the one two-qubit base gate, which has its own entry.
func newBuiltinStore() map[string]*CompoundGate {
	return map[string]*CompoundGate{
		"u3": {
			ParameterNames: []string{"theta", "phi", "lambda"},
			ArgumentNames:  []string{"a"},
			Body:           []bodyOp{bodyU{Theta: id("theta"), Phi: id("phi"), Lambda: id("lambda"), Target: "a"}},
		},
		"u2": {
			ParameterNames: []string{"phi", "lambda"},
			ArgumentNames:  []string{"a"},
			Body:           []bodyOp{bodyU{Theta: num(math.Pi / 2), Phi: id("phi"), Lambda: id("lambda"), Target: "a"}},
		},
		"u1": {
			ParameterNames: []string{"lambda"},
			ArgumentNames:  []string{"a"},
			Body:           []bodyOp{bodyU{Theta: num(0), Phi: num(0), Lambda: id("lambda"), Target: "a"}},
		},
		"id": single(num(0), num(0), num(0)),
		"x":  single(num(math.Pi), num(0), num(math.Pi)),
		"y":  single(num(math.Pi), num(math.Pi/2), num(math.Pi/2)),
		"z":  single(num(0), num(0), num(math.Pi)),
		"h":  single(num(math.Pi/2), num(0), num(math.Pi)),
		"s":  single(num(0), num(0), num(math.Pi/2)),
		"sdg": single(num(0), num(0), num(-math.Pi/2)),
		"t":   single(num(0), num(0), num(math.Pi/4)),
		"tdg": single(num(0), num(0), num(-math.Pi/4)),
		"rx": {
			ParameterNames: []string{"theta"},
			ArgumentNames:  []string{"a"},
			Body:           []bodyOp{bodyU{Theta: id("theta"), Phi: num(-math.Pi / 2), Lambda: num(math.Pi / 2), Target: "a"}},
		},
		"ry": {
			ParameterNames: []string{"theta"},
			ArgumentNames:  []string{"a"},
			Body:           []bodyOp{bodyU{Theta: id("theta"), Phi: num(0), Lambda: num(0), Target: "a"}},
		},
		"rz": {
			ParameterNames: []string{"phi"},
			ArgumentNames:  []string{"a"},
			Body:           []bodyOp{bodyU{Theta: num(0), Phi: num(0), Lambda: id("phi"), Target: "a"}},
		},
		"cx": {
			ArgumentNames: []string{"c", "t"},
			Body:          []bodyOp{bodyCX{Control: "c", Target: "t"}},
		},
	}
}
