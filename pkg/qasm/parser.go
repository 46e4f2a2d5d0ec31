// Package qasm implements the OpenQASM 2.0 front-end (C5): a hand-written
// recursive-descent parser over pkg/qlex, folding parameter expressions
// through pkg/expr and building pkg/circuit operations against a
// pkg/register-backed pkg/circuit.QuantumComputation.
//
// Design grounded on _examples/GriffinCanCode-Typthon/pkg/frontend's
// combinator parser shape (match/consume/advance/error), generalized here
// via pkg/qlex.Cursor so the same combinators serve both this parser and
// pkg/expr's expression grammar.
package qasm

import (
	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/expr"
	"github.com/qfr-project/qfr/pkg/qfrerr"
	"github.com/qfr-project/qfr/pkg/qlex"
)

// Includer resolves an `include "<path>";` target other than the
// pre-seeded "qelib1.inc" to file content. A nil Includer turns every
// other include into a skipped-with-diagnostic no-op.
type Includer func(path string) (string, error)

// Parser holds the mutable state of one parse: the token cursor, the
// compound-gate store (pre-seeded with the qelib1.inc primitives),
// accumulated non-fatal diagnostics, and the computation being built.
type Parser struct {
	c       *qlex.Cursor
	gates   map[string]*CompoundGate
	diags   *qfrerr.Diagnostics
	qc      *circuit.QuantumComputation
	include Includer
}

// Parse parses a complete OpenQASM 2.0 program from src and returns the
// resulting computation together with any non-fatal diagnostics recorded
// along the way (skipped includes, opaque declarations). maxQubits caps
// the underlying register model's capacity.
func Parse(name, src string, maxQubits int, include Includer) (*circuit.QuantumComputation, *qfrerr.Diagnostics, error) {
	layout := scrapeIOLayout(src)

	lx := qlex.New(name, src)
	cur, err := qlex.NewCursor(lx)
	if err != nil {
		return nil, nil, err
	}

	p := &Parser{
		c:       cur,
		gates:   newBuiltinStore(),
		diags:   &qfrerr.Diagnostics{},
		qc:      circuit.New(maxQubits),
		include: include,
	}
	if err := p.parseProgram(); err != nil {
		return nil, p.diags, err
	}
	p.applyLayout(layout)
	return p.qc, p.diags, nil
}

func (p *Parser) applyLayout(layout ioLayout) {
	st := p.qc.State
	for logical, phys := range layout.initial {
		if phys >= 0 {
			st.InitialLayout[phys] = logical
		}
	}
	if len(layout.output) > 0 {
		for logical, phys := range layout.output {
			if phys >= 0 {
				st.OutputPermutation[phys] = logical
			}
		}
		return
	}
	for phys := range st.OutputPermutation {
		acted := false
		for _, op := range p.qc.Ops {
			if op.ActsOn(phys) {
				acted = true
				break
			}
		}
		if !acted {
			delete(st.OutputPermutation, phys)
		}
	}
}

func (p *Parser) parseProgram() error {
	if _, err := p.c.Consume(qlex.KwOpenQASM, "program header"); err != nil {
		return err
	}
	if !p.c.Check(qlex.Real) && !p.c.Check(qlex.NNInteger) {
		tok := p.c.Current()
		return qfrerr.Atf(qfrerr.SyntaxError, tok.Line, tok.Col, "expected OPENQASM version number, found %s", tok.Kind)
	}
	if _, err := p.c.Advance(); err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "program header"); err != nil {
		return err
	}
	for !p.c.Check(qlex.EOF) {
		if err := p.parseStatement(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseStatement() error {
	switch p.c.Current().Kind {
	case qlex.KwQreg:
		return p.parseQregDecl()
	case qlex.KwCreg:
		return p.parseCregDecl()
	case qlex.KwGate:
		return p.parseGateDecl()
	case qlex.KwOpaque:
		return p.parseOpaqueDecl()
	case qlex.KwInclude:
		return p.parseInclude()
	case qlex.KwBarrier:
		return p.parseBarrier()
	case qlex.KwIf:
		return p.parseIf()
	case qlex.KwSnapshot:
		return p.parseNonUnitaryStatement(circuit.Snapshot)
	case qlex.KwProbabilities:
		return p.parseNonUnitaryStatement(circuit.Probabilities)
	default:
		op, err := p.parseQop()
		if err != nil {
			return err
		}
		p.qc.AddOp(op)
		return nil
	}
}

func (p *Parser) parseQregDecl() error {
	p.c.Advance()
	nameTok, err := p.c.Consume(qlex.Identifier, "qreg declaration")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.LBracket, "qreg declaration"); err != nil {
		return err
	}
	sizeTok, err := p.c.Consume(qlex.NNInteger, "qreg declaration")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.RBracket, "qreg declaration"); err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "qreg declaration"); err != nil {
		return err
	}
	return p.qc.AddQubitRegister(int(sizeTok.IntVal), nameTok.Lexeme)
}

func (p *Parser) parseCregDecl() error {
	p.c.Advance()
	nameTok, err := p.c.Consume(qlex.Identifier, "creg declaration")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.LBracket, "creg declaration"); err != nil {
		return err
	}
	sizeTok, err := p.c.Consume(qlex.NNInteger, "creg declaration")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.RBracket, "creg declaration"); err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "creg declaration"); err != nil {
		return err
	}
	return p.qc.AddClassicalRegister(int(sizeTok.IntVal), nameTok.Lexeme)
}

func (p *Parser) parseInclude() error {
	p.c.Advance()
	pathTok, err := p.c.Consume(qlex.String, "include")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "include"); err != nil {
		return err
	}
	if pathTok.Lexeme == "qelib1.inc" {
		return nil
	}
	if p.include == nil {
		p.diags.Notef(qfrerr.IOError, "include %q skipped: no includer configured", pathTok.Lexeme)
		return nil
	}
	content, err := p.include(pathTok.Lexeme)
	if err != nil {
		return qfrerr.Wrap(qfrerr.IOError, err, "include "+pathTok.Lexeme)
	}
	p.c.Lexer().Push(pathTok.Lexeme, content)
	return nil
}

func (p *Parser) parseOpaqueDecl() error {
	p.c.Advance()
	nameTok, err := p.c.Consume(qlex.Identifier, "opaque declaration")
	if err != nil {
		return err
	}
	gate := &CompoundGate{Opaque: true}
	if p.c.Check(qlex.LParen) {
		p.c.Advance()
		if !p.c.Check(qlex.RParen) {
			if gate.ParameterNames, err = p.idList(); err != nil {
				return err
			}
		}
		if _, err := p.c.Consume(qlex.RParen, "opaque declaration"); err != nil {
			return err
		}
	}
	if gate.ArgumentNames, err = p.idList(); err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "opaque declaration"); err != nil {
		return err
	}
	p.gates[nameTok.Lexeme] = gate
	p.diags.Notef(qfrerr.UndefinedGate, "opaque gate %q registered with no body; it cannot be expanded if invoked", nameTok.Lexeme)
	return nil
}

func (p *Parser) parseBarrier() error {
	p.c.Advance()
	args, err := p.argList()
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "barrier"); err != nil {
		return err
	}
	var qubits []int
	for _, a := range args {
		for i := 0; i < a.Size; i++ {
			qubits = append(qubits, a.Start+i)
		}
	}
	p.qc.AddOp(circuit.NewNonUnitary(circuit.Barrier, qubits))
	return nil
}

func (p *Parser) parseNonUnitaryStatement(kind circuit.OpType) error {
	p.c.Advance()
	var qubits []int
	if p.c.Check(qlex.Identifier) {
		args, err := p.argList()
		if err != nil {
			return err
		}
		for _, a := range args {
			for i := 0; i < a.Size; i++ {
				qubits = append(qubits, a.Start+i)
			}
		}
	} else {
		for i := 0; i < p.qc.State.Total(); i++ {
			qubits = append(qubits, i)
		}
	}
	if _, err := p.c.Consume(qlex.Semicolon, kind.String()); err != nil {
		return err
	}
	p.qc.AddOp(circuit.NewNonUnitary(kind, qubits))
	return nil
}

func (p *Parser) parseIf() error {
	p.c.Advance()
	if _, err := p.c.Consume(qlex.LParen, "if"); err != nil {
		return err
	}
	nameTok, err := p.c.Consume(qlex.Identifier, "if condition")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.EqEq, "if condition"); err != nil {
		return err
	}
	valTok, err := p.c.Consume(qlex.NNInteger, "if condition")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.RParen, "if"); err != nil {
		return err
	}

	reg, ok := p.qc.State.C[nameTok.Lexeme]
	if !ok {
		return qfrerr.Newf(qfrerr.UnknownRegister, "argument %q is not a creg", nameTok.Lexeme)
	}
	inner, err := p.parseQop()
	if err != nil {
		return err
	}
	p.qc.AddOp(circuit.NewClassicControlled(inner, nameTok.Lexeme, reg.Start, reg.Count, int(valTok.IntVal)))
	return nil
}

// parseQop handles the qop alternative of the grammar: ugate | cxgate |
// swap | user_gate | measure | reset.
func (p *Parser) parseQop() (circuit.Operation, error) {
	switch p.c.Current().Kind {
	case qlex.KwU:
		return p.parseUGate()
	case qlex.KwCX:
		return p.parseCXGate()
	case qlex.KwSwap:
		return p.parseSwapGate()
	case qlex.Identifier:
		return p.parseNamedGate()
	case qlex.KwMeasure:
		return p.parseMeasure()
	case qlex.KwReset:
		return p.parseReset()
	default:
		tok := p.c.Current()
		return nil, qfrerr.Atf(qfrerr.SyntaxError, tok.Line, tok.Col, "expected a quantum operation, found %s", tok.Kind)
	}
}

func (p *Parser) parseUGate() (circuit.Operation, error) {
	p.c.Advance()
	if _, err := p.c.Consume(qlex.LParen, "U gate"); err != nil {
		return nil, err
	}
	theta, err := expr.Parse(p.c)
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Comma, "U gate"); err != nil {
		return nil, err
	}
	phi, err := expr.Parse(p.c)
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Comma, "U gate"); err != nil {
		return nil, err
	}
	lambda, err := expr.Parse(p.c)
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.RParen, "U gate"); err != nil {
		return nil, err
	}
	target, err := p.argumentQreg()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "U gate"); err != nil {
		return nil, err
	}

	tv, err := expr.Evaluate(theta)
	if err != nil {
		return nil, err
	}
	pv, err := expr.Evaluate(phi)
	if err != nil {
		return nil, err
	}
	lv, err := expr.Evaluate(lambda)
	if err != nil {
		return nil, err
	}
	params := [3]float64{tv, pv, lv}

	if target.Size == 1 {
		return circuit.NewStandard(circuit.U3, nil, target.Start, params), nil
	}
	ops := make([]circuit.Operation, target.Size)
	for i := range ops {
		ops[i] = circuit.NewStandard(circuit.U3, nil, target.Start+i, params)
	}
	return circuit.NewCompound(ops), nil
}

func (p *Parser) parseCXGate() (circuit.Operation, error) {
	p.c.Advance()
	control, err := p.argumentQreg()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Comma, "CX gate"); err != nil {
		return nil, err
	}
	target, err := p.argumentQreg()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "CX gate"); err != nil {
		return nil, err
	}
	return makeCX(control, target)
}

func makeCX(control, target argRef) (circuit.Operation, error) {
	for i := 0; i < control.Size; i++ {
		for j := 0; j < target.Size; j++ {
			if control.Start+i == target.Start+j {
				return nil, qfrerr.Newf(qfrerr.InvalidControlTargetOverlap,
					"qubit %d cannot be control and target at the same time", control.Start+i)
			}
		}
	}
	mk := func(c, t int) circuit.Operation {
		return circuit.NewStandard(circuit.X, []circuit.Control{{Qubit: c, Positive: true}}, t, [3]float64{})
	}
	switch {
	case control.Size == 1 && target.Size == 1:
		return mk(control.Start, target.Start), nil
	case control.Size == target.Size:
		ops := make([]circuit.Operation, target.Size)
		for i := range ops {
			ops[i] = mk(control.Start+i, target.Start+i)
		}
		return circuit.NewCompound(ops), nil
	case control.Size == 1:
		ops := make([]circuit.Operation, target.Size)
		for i := range ops {
			ops[i] = mk(control.Start, target.Start+i)
		}
		return circuit.NewCompound(ops), nil
	case target.Size == 1:
		ops := make([]circuit.Operation, control.Size)
		for i := range ops {
			ops[i] = mk(control.Start+i, target.Start)
		}
		return circuit.NewCompound(ops), nil
	default:
		return nil, qfrerr.Newf(qfrerr.RegisterSizeMismatch, "register sizes do not match for CX gate: %d vs %d", control.Size, target.Size)
	}
}

func (p *Parser) parseSwapGate() (circuit.Operation, error) {
	p.c.Advance()
	first, err := p.argumentQreg()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Comma, "swap gate"); err != nil {
		return nil, err
	}
	second, err := p.argumentQreg()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "swap gate"); err != nil {
		return nil, err
	}
	if first.Size != 1 || second.Size != 1 {
		return nil, qfrerr.New(qfrerr.UnsupportedControlledForm, "swap for whole qubit registers is not supported")
	}
	if first.Start == second.Start {
		return nil, qfrerr.New(qfrerr.InvalidControlTargetOverlap, "swap with two identical targets")
	}
	return circuit.NewSwap(nil, first.Start, second.Start), nil
}

func (p *Parser) parseMeasure() (circuit.Operation, error) {
	p.c.Advance()
	qreg, err := p.argumentQreg()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Minus, "measure"); err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Greater, "measure"); err != nil {
		return nil, err
	}
	creg, err := p.argumentCreg()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "measure"); err != nil {
		return nil, err
	}
	if qreg.Size != creg.Size {
		return nil, qfrerr.Newf(qfrerr.RegisterSizeMismatch,
			"mismatch of qreg and creg size in measurement: %d vs %d", qreg.Size, creg.Size)
	}
	qubits := make([]int, qreg.Size)
	classics := make([]int, qreg.Size)
	for i := 0; i < qreg.Size; i++ {
		qubits[i] = qreg.Start + i
		classics[i] = creg.Start + i
	}
	return circuit.NewMeasure(qubits, classics), nil
}

func (p *Parser) parseReset() (circuit.Operation, error) {
	p.c.Advance()
	qreg, err := p.argumentQreg()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "reset"); err != nil {
		return nil, err
	}
	qubits := make([]int, qreg.Size)
	for i := range qubits {
		qubits[i] = qreg.Start + i
	}
	return circuit.NewNonUnitary(circuit.Reset, qubits), nil
}

func (p *Parser) parseNamedGate() (circuit.Operation, error) {
	nameTok, err := p.c.Consume(qlex.Identifier, "gate invocation")
	if err != nil {
		return nil, err
	}
	name := nameTok.Lexeme

	if baseName, n := peelControls(name); baseName == "swap" && n > 0 {
		return p.parseControlledSwap(n)
	}

	var params []*expr.Node
	if p.c.Check(qlex.LParen) {
		p.c.Advance()
		if !p.c.Check(qlex.RParen) {
			if params, err = p.expList(); err != nil {
				return nil, err
			}
		}
		if _, err := p.c.Consume(qlex.RParen, "gate invocation"); err != nil {
			return nil, err
		}
	}
	args, err := p.argList()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "gate invocation"); err != nil {
		return nil, err
	}

	return p.dispatchGate(name, params, args)
}

func (p *Parser) parseControlledSwap(ncontrols int) (circuit.Operation, error) {
	args, err := p.argList()
	if err != nil {
		return nil, err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "controlled swap"); err != nil {
		return nil, err
	}
	if len(args) != ncontrols+2 {
		return nil, qfrerr.Newf(qfrerr.ArgumentArityMismatch,
			"controlled swap expects %d argument(s), got %d", ncontrols+2, len(args))
	}
	for _, a := range args {
		if a.Size > 1 {
			return nil, qfrerr.New(qfrerr.UnsupportedControlledForm, "controlled swap over whole qubit registers is not supported")
		}
	}
	controls := make([]circuit.Control, ncontrols)
	for i := 0; i < ncontrols; i++ {
		controls[i] = circuit.Control{Qubit: args[i].Start, Positive: true}
	}
	return circuit.NewSwap(controls, args[ncontrols].Start, args[ncontrols+1].Start), nil
}
