package qasm

import "github.com/qfr-project/qfr/pkg/expr"

// bodyOp is one primitive statement inside a gate's expanded body: either a
// U3-family gate or a CX, the "primitive alphabet" spec.md §4.5 describes.
// Identifier-invoked gates found in a `gate ... { }` body are inlined into
// this alphabet at declaration time (RewriteExpr in the original source),
// so a CompoundGate's Body never itself contains an identifier call.
type bodyOp interface{ isBodyOp() }

// bodyU is a parameterized single-qubit rotation, expressed over the
// declaring gate's own parameter/argument names until substitution.
type bodyU struct {
	Theta, Phi, Lambda *expr.Node
	Target             string
}

func (bodyU) isBodyOp() {}

// bodyCX is a fixed CX c,t primitive.
type bodyCX struct {
	Control, Target string
}

func (bodyCX) isBodyOp() {}

// CompoundGate is a name-indexed entry in the gate store: the formal
// parameter/argument names a call substitutes into, and the expanded
// primitive body. Opaque gates (declared via `opaque name(...) a,b;`) have
// no body and can never be expanded — invoking one is an error.
type CompoundGate struct {
	Opaque         bool
	ParameterNames []string
	ArgumentNames  []string
	Body           []bodyOp
}
