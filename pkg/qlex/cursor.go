package qlex

import "github.com/qfr-project/qfr/pkg/qfrerr"

// Cursor wraps a Lexer with one token of lookahead and the
// advance/check/match/consume combinators the recursive-descent parsers
// (expression tree and OpenQASM front-end) share — grounded on the
// teacher's pkg/frontend.Parser combinator style.
type Cursor struct {
	lx      *Lexer
	current Token
}

// NewCursor creates a Cursor positioned at the first token of lx.
func NewCursor(lx *Lexer) (*Cursor, error) {
	c := &Cursor{lx: lx}
	if err := c.advance(); err != nil {
		return nil, err
	}
	return c, nil
}

// Lexer exposes the underlying Lexer, e.g. so the OpenQASM front-end can
// Push an included file once it has parsed the include statement's path.
func (c *Cursor) Lexer() *Lexer { return c.lx }

// Current returns the current lookahead token without consuming it.
func (c *Cursor) Current() Token { return c.current }

func (c *Cursor) advance() error {
	tok, err := c.lx.NextToken()
	if err != nil {
		return err
	}
	c.current = tok
	return nil
}

// Advance consumes the current token and returns it.
func (c *Cursor) Advance() (Token, error) {
	tok := c.current
	if err := c.advance(); err != nil {
		return tok, err
	}
	return tok, nil
}

// Check reports whether the current token has the given kind, without
// consuming it.
func (c *Cursor) Check(kind Kind) bool { return c.current.Kind == kind }

// Match consumes and returns true if the current token has the given kind.
func (c *Cursor) Match(kind Kind) (bool, error) {
	if c.Check(kind) {
		if _, err := c.Advance(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Consume requires the current token to have the given kind, advancing past
// it, or returns a qfrerr.SyntaxError naming both the expected and actual
// kind.
func (c *Cursor) Consume(kind Kind, context string) (Token, error) {
	if !c.Check(kind) {
		return Token{}, qfrerr.Atf(qfrerr.SyntaxError, c.current.Line, c.current.Col,
			"%s: expected %s, found %s %q", context, kind, c.current.Kind, c.current.Lexeme)
	}
	return c.Advance()
}
