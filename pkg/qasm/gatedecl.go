package qasm

import (
	"github.com/qfr-project/qfr/pkg/expr"
	"github.com/qfr-project/qfr/pkg/qfrerr"
	"github.com/qfr-project/qfr/pkg/qlex"
)

// parseGateDecl parses `gate name(params) args { body }`, inlining every
// body statement (U, CX, or a nested gate invocation) into the stored
// CompoundGate's primitive alphabet at declaration time (a barrier inside
// the body is parsed and dropped) — mirroring
// the original parser's RewriteExpr/inlining pass rather than keeping a
// nested-call tree around to re-walk on every later invocation.
func (p *Parser) parseGateDecl() error {
	p.c.Advance()
	nameTok, err := p.c.Consume(qlex.Identifier, "gate declaration")
	if err != nil {
		return err
	}

	gate := &CompoundGate{}
	if p.c.Check(qlex.LParen) {
		p.c.Advance()
		if !p.c.Check(qlex.RParen) {
			if gate.ParameterNames, err = p.idList(); err != nil {
				return err
			}
		}
		if _, err := p.c.Consume(qlex.RParen, "gate declaration"); err != nil {
			return err
		}
	}
	if gate.ArgumentNames, err = p.idList(); err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.LBrace, "gate declaration"); err != nil {
		return err
	}
	for !p.c.Check(qlex.RBrace) {
		if err := p.parseGateBodyStatement(gate); err != nil {
			return err
		}
	}
	if _, err := p.c.Consume(qlex.RBrace, "gate declaration"); err != nil {
		return err
	}

	p.gates[nameTok.Lexeme] = gate
	return nil
}

func (p *Parser) parseGateBodyStatement(gate *CompoundGate) error {
	switch p.c.Current().Kind {
	case qlex.KwU:
		return p.inlineU(gate)
	case qlex.KwCX:
		return p.inlineCX(gate)
	case qlex.KwBarrier:
		p.c.Advance()
		if _, err := p.idList(); err != nil {
			return err
		}
		_, err := p.c.Consume(qlex.Semicolon, "barrier")
		return err
	case qlex.Identifier:
		return p.inlineInvocation(gate)
	default:
		tok := p.c.Current()
		return qfrerr.Atf(qfrerr.SyntaxError, tok.Line, tok.Col, "expected a gate body statement, found %s", tok.Kind)
	}
}

func (p *Parser) inlineU(gate *CompoundGate) error {
	p.c.Advance()
	if _, err := p.c.Consume(qlex.LParen, "U gate"); err != nil {
		return err
	}
	theta, err := expr.Parse(p.c)
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Comma, "U gate"); err != nil {
		return err
	}
	phi, err := expr.Parse(p.c)
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Comma, "U gate"); err != nil {
		return err
	}
	lambda, err := expr.Parse(p.c)
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.RParen, "U gate"); err != nil {
		return err
	}
	argTok, err := p.c.Consume(qlex.Identifier, "U gate target")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "U gate"); err != nil {
		return err
	}
	gate.Body = append(gate.Body, bodyU{Theta: theta, Phi: phi, Lambda: lambda, Target: argTok.Lexeme})
	return nil
}

func (p *Parser) inlineCX(gate *CompoundGate) error {
	p.c.Advance()
	cTok, err := p.c.Consume(qlex.Identifier, "CX gate control")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Comma, "CX gate"); err != nil {
		return err
	}
	tTok, err := p.c.Consume(qlex.Identifier, "CX gate target")
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "CX gate"); err != nil {
		return err
	}
	if cTok.Lexeme == tTok.Lexeme {
		return qfrerr.New(qfrerr.InvalidControlTargetOverlap, "CX gate body control and target must differ")
	}
	gate.Body = append(gate.Body, bodyCX{Control: cTok.Lexeme, Target: tTok.Lexeme})
	return nil
}

// inlineInvocation inlines an identifier-invoked gate found inside a
// declaration body. Restricted to exact-name, uncontrolled invocations
// (no implicit-control peeling here): the body alphabet only ever holds
// bodyU/bodyCX, and an implicitly-controlled primitive would need a
// control list the alphabet has no slot for. A declaration wanting a
// controlled sub-gate has to spell it out primitive by primitive, a
// narrower body grammar than the original parser's in-body MCX/CU
// inlining support.
func (p *Parser) inlineInvocation(gate *CompoundGate) error {
	nameTok, err := p.c.Consume(qlex.Identifier, "gate body invocation")
	if err != nil {
		return err
	}
	name := nameTok.Lexeme

	var params []*expr.Node
	if p.c.Check(qlex.LParen) {
		p.c.Advance()
		if !p.c.Check(qlex.RParen) {
			if params, err = p.expList(); err != nil {
				return err
			}
		}
		if _, err := p.c.Consume(qlex.RParen, "gate body invocation"); err != nil {
			return err
		}
	}
	argToks, err := p.idList()
	if err != nil {
		return err
	}
	if _, err := p.c.Consume(qlex.Semicolon, "gate body invocation"); err != nil {
		return err
	}

	invoked, ok := p.gates[name]
	if !ok {
		return qfrerr.Newf(qfrerr.UndefinedGate, "undefined gate %q referenced in gate body", name)
	}
	if invoked.Opaque {
		return qfrerr.Newf(qfrerr.UndefinedGate, "opaque gate %q cannot be inlined into a gate body", name)
	}
	if len(argToks) != len(invoked.ArgumentNames) {
		return qfrerr.Newf(qfrerr.ArgumentArityMismatch, "gate %q expects %d argument(s), got %d", name, len(invoked.ArgumentNames), len(argToks))
	}
	if len(params) != len(invoked.ParameterNames) {
		return qfrerr.Newf(qfrerr.ArgumentArityMismatch, "gate %q expects %d parameter(s), got %d", name, len(invoked.ParameterNames), len(params))
	}

	paramEnv := buildParamEnv(invoked.ParameterNames, params)
	argRename := make(map[string]string, len(argToks))
	for i, formal := range invoked.ArgumentNames {
		argRename[formal] = argToks[i]
	}

	for _, prim := range invoked.Body {
		switch v := prim.(type) {
		case bodyU:
			gate.Body = append(gate.Body, bodyU{
				Theta:  expr.Substitute(v.Theta, paramEnv),
				Phi:    expr.Substitute(v.Phi, paramEnv),
				Lambda: expr.Substitute(v.Lambda, paramEnv),
				Target: argRename[v.Target],
			})
		case bodyCX:
			gate.Body = append(gate.Body, bodyCX{Control: argRename[v.Control], Target: argRename[v.Target]})
		}
	}
	return nil
}
