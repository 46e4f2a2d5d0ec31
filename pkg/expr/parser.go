package expr

import (
	"math"

	"github.com/qfr-project/qfr/pkg/qfrerr"
	"github.com/qfr-project/qfr/pkg/qlex"
)

var unaryKeywords = map[qlex.Kind]Tag{
	qlex.KwSin:  Sin,
	qlex.KwCos:  Cos,
	qlex.KwTan:  Tan,
	qlex.KwExp:  Exp,
	qlex.KwLn:   Ln,
	qlex.KwSqrt: Sqrt,
}

// Parse parses one expression from c, applying the standard-precedence
// grammar from the OpenQASM parameter-expression language:
//
//	Exp    <- ['-'] Term (('+'|'-') Term)*
//	Term   <- Factor (('*'|'/') Factor)*
//	Factor <- Unary ('^' Unary)*
//	Unary  <- ['-'] (real | integer | 'pi' | identifier | '(' Exp ')' | unaryFn '(' Exp ')')
func Parse(c *qlex.Cursor) (*Node, error) {
	return parseExp(c)
}

func parseExp(c *qlex.Cursor) (*Node, error) {
	neg, err := c.Match(qlex.Minus)
	if err != nil {
		return nil, err
	}
	term, err := parseTerm(c)
	if err != nil {
		return nil, err
	}
	if neg {
		term = unary(Sign, term)
	}
	for c.Check(qlex.Plus) || c.Check(qlex.Minus) {
		opTok, err := c.Advance()
		if err != nil {
			return nil, err
		}
		rhs, err := parseTerm(c)
		if err != nil {
			return nil, err
		}
		if opTok.Kind == qlex.Plus {
			term = binary(Plus, term, rhs)
		} else {
			term = binary(Minus, term, rhs)
		}
	}
	return term, nil
}

func parseTerm(c *qlex.Cursor) (*Node, error) {
	factor, err := parseFactor(c)
	if err != nil {
		return nil, err
	}
	for c.Check(qlex.Star) || c.Check(qlex.Slash) {
		opTok, err := c.Advance()
		if err != nil {
			return nil, err
		}
		rhs, err := parseFactor(c)
		if err != nil {
			return nil, err
		}
		if opTok.Kind == qlex.Star {
			factor = binary(Times, factor, rhs)
		} else {
			factor = binary(Div, factor, rhs)
		}
	}
	return factor, nil
}

func parseFactor(c *qlex.Cursor) (*Node, error) {
	base, err := parseExponentiation(c)
	if err != nil {
		return nil, err
	}
	for c.Check(qlex.Caret) {
		if _, err := c.Advance(); err != nil {
			return nil, err
		}
		rhs, err := parseExponentiation(c)
		if err != nil {
			return nil, err
		}
		base = binary(Power, base, rhs)
	}
	return base, nil
}

func parseExponentiation(c *qlex.Cursor) (*Node, error) {
	neg, err := c.Match(qlex.Minus)
	if err != nil {
		return nil, err
	}

	var n *Node
	tok := c.Current()
	fnTag, isUnaryFn := unaryKeywords[tok.Kind]

	switch {
	case tok.Kind == qlex.Real:
		if _, err := c.Advance(); err != nil {
			return nil, err
		}
		n = number(tok.FloatVal)
	case tok.Kind == qlex.NNInteger:
		if _, err := c.Advance(); err != nil {
			return nil, err
		}
		n = number(tok.FloatVal)
	case tok.Kind == qlex.Pi:
		if _, err := c.Advance(); err != nil {
			return nil, err
		}
		n = number(math.Pi)
	case tok.Kind == qlex.Identifier:
		if _, err := c.Advance(); err != nil {
			return nil, err
		}
		n = newID(tok.Lexeme)
	case tok.Kind == qlex.LParen:
		if _, err := c.Advance(); err != nil {
			return nil, err
		}
		n, err = parseExp(c)
		if err != nil {
			return nil, err
		}
		if _, err := c.Consume(qlex.RParen, "expression"); err != nil {
			return nil, err
		}
	case isUnaryFn:
		if _, err := c.Advance(); err != nil {
			return nil, err
		}
		if _, err := c.Consume(qlex.LParen, "unary function"); err != nil {
			return nil, err
		}
		arg, err := parseExp(c)
		if err != nil {
			return nil, err
		}
		if _, err := c.Consume(qlex.RParen, "unary function"); err != nil {
			return nil, err
		}
		n = unary(fnTag, arg)
	default:
		return nil, qfrerr.Atf(qfrerr.InvalidExpression, tok.Line, tok.Col,
			"expected a number, identifier, or parenthesized expression, found %s", tok.Kind)
	}

	if neg {
		n = unary(Sign, n)
	}
	return n, nil
}
