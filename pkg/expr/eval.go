package expr

import "github.com/qfr-project/qfr/pkg/qfrerr"

// Evaluate computes the numeric value of n. It is defined iff no ID node
// remains (i.e. n is a Number after Substitute, or was never parameterized).
func Evaluate(n *Node) (float64, error) {
	switch n.Tag {
	case Number:
		return n.Value, nil
	case ID:
		return 0, qfrerr.Newf(qfrerr.UnresolvedIdentifier, "unresolved identifier %q", n.Name)
	case Plus, Minus, Times, Div, Power:
		l, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		v, _ := foldBinary(n.Tag, l, r)
		return v, nil
	default: // Sign, Sin, Cos, Tan, Exp, Ln, Sqrt
		v, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		r, _ := foldUnary(n.Tag, v)
		return r, nil
	}
}

// Substitute replaces every ID node whose name is present in env with a
// (cloned) copy of the corresponding node, then re-applies the fold rule
// post-order so a fully-known result collapses to a single Number node.
func Substitute(n *Node, env map[string]*Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Tag {
	case Number:
		return number(n.Value)
	case ID:
		if repl, ok := env[n.Name]; ok {
			return Clone(repl)
		}
		return &Node{Tag: ID, Name: n.Name}
	case Plus, Minus, Times, Div, Power:
		l := Substitute(n.Left, env)
		r := Substitute(n.Right, env)
		return binary(n.Tag, l, r)
	default:
		operand := Substitute(n.Left, env)
		return unary(n.Tag, operand)
	}
}
