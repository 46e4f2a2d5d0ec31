package qasm

import (
	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/expr"
	"github.com/qfr-project/qfr/pkg/qfrerr"
	"github.com/qfr-project/qfr/pkg/qlex"
)

// argRef names a resolved register argument: a starting physical index and
// a width. Width 1 means a single-qubit/bit reference (`q[3]` or a
// register declared with size 1); width > 1 means the whole register was
// referenced bare (`q`), eligible for broadcasting.
type argRef struct {
	Start int
	Size  int
}

func (p *Parser) qregBounds(name string) (start, size int, err error) {
	reg, ok := p.qc.State.Q[name]
	if !ok {
		return 0, 0, qfrerr.Newf(qfrerr.UnknownRegister, "argument %q is not a qreg", name)
	}
	return reg.Start, reg.Count, nil
}

func (p *Parser) cregBounds(name string) (start, size int, err error) {
	reg, ok := p.qc.State.C[name]
	if !ok {
		return 0, 0, qfrerr.Newf(qfrerr.UnknownRegister, "argument %q is not a creg", name)
	}
	return reg.Start, reg.Count, nil
}

func (p *Parser) argumentQreg() (argRef, error) {
	tok, err := p.c.Consume(qlex.Identifier, "qubit argument")
	if err != nil {
		return argRef{}, err
	}
	start, size, err := p.qregBounds(tok.Lexeme)
	if err != nil {
		return argRef{}, err
	}
	if p.c.Check(qlex.LBracket) {
		p.c.Advance()
		idxTok, err := p.c.Consume(qlex.NNInteger, "qubit index")
		if err != nil {
			return argRef{}, err
		}
		if _, err := p.c.Consume(qlex.RBracket, "qubit index"); err != nil {
			return argRef{}, err
		}
		idx := int(idxTok.IntVal)
		if idx < 0 || idx >= size {
			return argRef{}, qfrerr.Newf(qfrerr.UnknownRegister, "index %d out of range for register %q of size %d", idx, tok.Lexeme, size)
		}
		return argRef{Start: start + idx, Size: 1}, nil
	}
	return argRef{Start: start, Size: size}, nil
}

func (p *Parser) argumentCreg() (argRef, error) {
	tok, err := p.c.Consume(qlex.Identifier, "classical bit argument")
	if err != nil {
		return argRef{}, err
	}
	start, size, err := p.cregBounds(tok.Lexeme)
	if err != nil {
		return argRef{}, err
	}
	if p.c.Check(qlex.LBracket) {
		p.c.Advance()
		idxTok, err := p.c.Consume(qlex.NNInteger, "classical bit index")
		if err != nil {
			return argRef{}, err
		}
		if _, err := p.c.Consume(qlex.RBracket, "classical bit index"); err != nil {
			return argRef{}, err
		}
		idx := int(idxTok.IntVal)
		if idx < 0 || idx >= size {
			return argRef{}, qfrerr.Newf(qfrerr.UnknownRegister, "index %d out of range for register %q of size %d", idx, tok.Lexeme, size)
		}
		return argRef{Start: start + idx, Size: 1}, nil
	}
	return argRef{Start: start, Size: size}, nil
}

func (p *Parser) argList() ([]argRef, error) {
	first, err := p.argumentQreg()
	if err != nil {
		return nil, err
	}
	args := []argRef{first}
	for {
		ok, err := p.c.Match(qlex.Comma)
		if err != nil {
			return nil, err
		}
		if !ok {
			return args, nil
		}
		next, err := p.argumentQreg()
		if err != nil {
			return nil, err
		}
		args = append(args, next)
	}
}

func (p *Parser) expList() ([]*expr.Node, error) {
	first, err := expr.Parse(p.c)
	if err != nil {
		return nil, err
	}
	exps := []*expr.Node{first}
	for {
		ok, err := p.c.Match(qlex.Comma)
		if err != nil {
			return nil, err
		}
		if !ok {
			return exps, nil
		}
		next, err := expr.Parse(p.c)
		if err != nil {
			return nil, err
		}
		exps = append(exps, next)
	}
}

func (p *Parser) idList() ([]string, error) {
	first, err := p.c.Consume(qlex.Identifier, "identifier list")
	if err != nil {
		return nil, err
	}
	ids := []string{first.Lexeme}
	for {
		ok, err := p.c.Match(qlex.Comma)
		if err != nil {
			return nil, err
		}
		if !ok {
			return ids, nil
		}
		next, err := p.c.Consume(qlex.Identifier, "identifier list")
		if err != nil {
			return nil, err
		}
		ids = append(ids, next.Lexeme)
	}
}

// peelControls strips every leading 'c' off name, one at a time, the way
// the original parser's Gate() does: unconditionally, without checking
// whether an intermediate form names a real gate. "ccx" peels straight to
// base "x" with 2 controls, never stopping at the intermediate "cx".
func peelControls(name string) (string, int) {
	n := 0
	for len(name) > 1 && name[0] == 'c' {
		name = name[1:]
		n++
	}
	return name, n
}

func argPhysicalAt(a argRef, step int) int {
	if a.Size > 1 {
		return a.Start + step
	}
	return a.Start
}

func broadcastSize(args []argRef) (int, error) {
	size := 1
	for _, a := range args {
		if a.Size > 1 {
			if size != 1 && a.Size != size {
				return 0, qfrerr.Newf(qfrerr.RegisterSizeMismatch, "broadcast register sizes do not match: %d vs %d", size, a.Size)
			}
			size = a.Size
		}
	}
	return size, nil
}

func buildParamEnv(names []string, vals []*expr.Node) map[string]*expr.Node {
	env := make(map[string]*expr.Node, len(names))
	for i, n := range names {
		env[n] = vals[i]
	}
	return env
}

func evalU(prim bodyU, paramEnv map[string]*expr.Node) (theta, phi, lambda float64, err error) {
	if theta, err = expr.Evaluate(expr.Substitute(prim.Theta, paramEnv)); err != nil {
		return
	}
	if phi, err = expr.Evaluate(expr.Substitute(prim.Phi, paramEnv)); err != nil {
		return
	}
	lambda, err = expr.Evaluate(expr.Substitute(prim.Lambda, paramEnv))
	return
}

// dispatchGate resolves name to a store entry (an exact match, which takes
// implicit-control peeling off the table entirely, or else a peeled base
// name with the peeled count as implicit controls) and expands one
// invocation against params/args, per spec.md §4.5's implicit-control and
// broadcasting rules.
func (p *Parser) dispatchGate(name string, params []*expr.Node, args []argRef) (circuit.Operation, error) {
	base, isExact := p.gates[name]
	ncontrols := 0
	baseName := name
	if !isExact {
		var n int
		baseName, n = peelControls(name)
		g, ok := p.gates[baseName]
		if !ok {
			return nil, qfrerr.Newf(qfrerr.UndefinedGate, "undefined gate %q", name)
		}
		base, ncontrols = g, n
	}
	if base.Opaque {
		return nil, qfrerr.Newf(qfrerr.UndefinedGate, "gate %q is opaque and has no definition to expand", name)
	}

	expectedArgs := ncontrols + len(base.ArgumentNames)
	if len(args) != expectedArgs {
		return nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch,
			"gate %q expects %d argument(s), got %d", name, expectedArgs, len(args))
	}
	if len(params) != len(base.ParameterNames) {
		return nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch,
			"gate %q expects %d parameter(s), got %d", name, len(base.ParameterNames), len(params))
	}

	broadcast, err := broadcastSize(args)
	if err != nil {
		return nil, err
	}

	if ncontrols > 0 && (len(base.Body) > 1 || broadcast > 1) {
		return nil, qfrerr.Newf(qfrerr.UnsupportedControlledForm,
			"implicit-controlled gate %q must resolve to a single-primitive gate invoked on single qubits", name)
	}

	controlArgs, bodyArgs := args[:ncontrols], args[ncontrols:]

	if ncontrols >= 2 && baseName == "x" {
		controls := make([]circuit.Control, ncontrols)
		for i, a := range controlArgs {
			controls[i] = circuit.Control{Qubit: a.Start, Positive: true}
		}
		return circuit.NewStandard(circuit.X, controls, bodyArgs[0].Start, [3]float64{}), nil
	}

	if ncontrols > 0 {
		prim, ok := base.Body[0].(bodyU)
		if !ok {
			return nil, qfrerr.Newf(qfrerr.UnsupportedControlledForm,
				"implicit-controlled gate %q does not resolve to a U-based primitive", name)
		}
		controls := make([]circuit.Control, ncontrols)
		for i, a := range controlArgs {
			controls[i] = circuit.Control{Qubit: a.Start, Positive: true}
		}
		tv, pv, lv, err := evalU(prim, buildParamEnv(base.ParameterNames, params))
		if err != nil {
			return nil, err
		}
		return circuit.NewStandard(circuit.U3, controls, bodyArgs[0].Start, [3]float64{tv, pv, lv}), nil
	}

	if broadcast <= 1 {
		return p.expandBodyInstance(base, params, args, 0)
	}
	ops := make([]circuit.Operation, broadcast)
	for i := 0; i < broadcast; i++ {
		op, err := p.expandBodyInstance(base, params, args, i)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	return circuit.NewCompound(ops), nil
}

func (p *Parser) expandBodyInstance(base *CompoundGate, params []*expr.Node, args []argRef, step int) (circuit.Operation, error) {
	paramEnv := buildParamEnv(base.ParameterNames, params)
	argAt := make(map[string]int, len(base.ArgumentNames))
	for i, name := range base.ArgumentNames {
		argAt[name] = argPhysicalAt(args[i], step)
	}

	if len(base.Body) == 1 {
		return buildPrimitive(base.Body[0], paramEnv, argAt)
	}
	ops := make([]circuit.Operation, 0, len(base.Body))
	for _, prim := range base.Body {
		op, err := buildPrimitive(prim, paramEnv, argAt)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return circuit.NewCompound(ops), nil
}

func buildPrimitive(prim bodyOp, paramEnv map[string]*expr.Node, argAt map[string]int) (circuit.Operation, error) {
	switch v := prim.(type) {
	case bodyU:
		tv, pv, lv, err := evalU(v, paramEnv)
		if err != nil {
			return nil, err
		}
		return circuit.NewStandard(circuit.U3, nil, argAt[v.Target], [3]float64{tv, pv, lv}), nil
	case bodyCX:
		control, target := argAt[v.Control], argAt[v.Target]
		if control == target {
			return nil, qfrerr.Newf(qfrerr.InvalidControlTargetOverlap,
				"qubit %d cannot be control and target at the same time", control)
		}
		return circuit.NewStandard(circuit.X, []circuit.Control{{Qubit: control, Positive: true}}, target, [3]float64{}), nil
	default:
		return nil, qfrerr.New(qfrerr.UnknownGate, "unrecognized primitive in gate body")
	}
}
