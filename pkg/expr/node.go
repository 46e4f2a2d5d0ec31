// Package expr implements the parameter expression tree (C1): arithmetic
// over gate angle parameters with constant folding applied at construction
// time, so that after Substitute a fully-known expression always collapses
// to a single Number node.
//
// Design: a value-type tree where nodes own their children uniquely (the
// reference implementation this library is modeled after aliases folded
// children and double-frees on some paths; folding here always moves the
// single remaining child rather than sharing it, and Substitute clones
// rather than aliases).
package expr

import "math"

// Tag identifies the shape of a Node.
type Tag int

const (
	Number Tag = iota
	ID
	Plus
	Minus
	Sign
	Times
	Div
	Power
	Sin
	Cos
	Tan
	Exp
	Ln
	Sqrt
)

// Node is one expression tree node. Only the fields relevant to Tag are
// meaningful: Number uses Value, ID uses Name, binary tags use Left+Right,
// unary tags (Sign, Sin, Cos, Tan, Exp, Ln, Sqrt) use Left only.
type Node struct {
	Tag   Tag
	Value float64
	Name  string
	Left  *Node
	Right *Node
}

func number(v float64) *Node { return &Node{Tag: Number, Value: v} }

// newID returns a symbolic identifier node; "pi" always folds to the
// machine constant rather than surviving as an identifier.
func newID(name string) *Node {
	if name == "pi" {
		return number(math.Pi)
	}
	return &Node{Tag: ID, Name: name}
}

// binary constructs a binary-operator node, folding immediately if both
// operands are already Number nodes.
func binary(tag Tag, l, r *Node) *Node {
	if l.Tag == Number && r.Tag == Number {
		if v, ok := foldBinary(tag, l.Value, r.Value); ok {
			return number(v)
		}
	}
	return &Node{Tag: tag, Left: l, Right: r}
}

func foldBinary(tag Tag, a, b float64) (float64, bool) {
	switch tag {
	case Plus:
		return a + b, true
	case Minus:
		return a - b, true
	case Times:
		return a * b, true
	case Div:
		return a / b, true
	case Power:
		return math.Pow(a, b), true
	default:
		return 0, false
	}
}

// unary constructs a unary node, folding immediately if the operand is
// already a Number. Sign (negation) on a Number negates in place rather
// than wrapping, per the folding rule.
func unary(tag Tag, operand *Node) *Node {
	if operand.Tag == Number {
		if v, ok := foldUnary(tag, operand.Value); ok {
			return number(v)
		}
	}
	return &Node{Tag: tag, Left: operand}
}

func foldUnary(tag Tag, v float64) (float64, bool) {
	switch tag {
	case Sign:
		return -v, true
	case Sin:
		return math.Sin(v), true
	case Cos:
		return math.Cos(v), true
	case Tan:
		return math.Tan(v), true
	case Exp:
		return math.Exp(v), true
	case Ln:
		return math.Log(v), true
	case Sqrt:
		return math.Sqrt(v), true
	default:
		return 0, false
	}
}

// Clone deep-copies n so the original tree is never shared across two
// owners (Substitute relies on this).
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{Tag: n.Tag, Value: n.Value, Name: n.Name}
	c.Left = Clone(n.Left)
	c.Right = Clone(n.Right)
	return c
}
