package circuit

import (
	"io"

	"github.com/qfr-project/qfr/pkg/dd"
	"github.com/qfr-project/qfr/pkg/register"
)

// Control is one control line: a physical qubit and its required polarity.
type Control struct {
	Qubit    int
	Positive bool
}

// Operation is the shared contract of every IR node (§4.4): Standard,
// Compound, NonUnitary, ClassicControlled. Modeled as a tagged-union
// interface (marker method op()) rather than a class hierarchy, per
// spec.md §9's polymorphism note.
type Operation interface {
	// ActsOn reports whether this operation touches physical qubit phys,
	// as either a target or a control.
	ActsOn(phys int) bool

	// SetNqubits/NQubits track the width of the address space this
	// operation was built against; QuantumComputation updates it on every
	// operation after each register mutation.
	SetNqubits(n int)
	NQubits() int

	IsUnitary() bool

	// Targets returns the physical target qubit(s), in operation order.
	Targets() []int

	// Print renders the operation as OpenQASM body text against st's
	// register names.
	Print(w io.Writer, st *register.State) error

	// DDAttach asks eng to build this operation's decision diagram, given
	// a per-physical-qubit line role scratch array (reused by the caller
	// across operations) and the layout/register state for qubit naming.
	DDAttach(eng dd.Engine, line []dd.LineEntry, st *register.State) (dd.Edge, error)

	// DDAttachReordered is the variable-reordered counterpart used by the
	// external engine's dynamic reordering pass.
	DDAttachReordered(eng dd.Engine, line []dd.LineEntry, varMap []int) (dd.Edge, error)

	op()
}

// resetLine clears every entry in line back to dd.LineDefault, mirroring
// spec.md §4.4's "populates... then resets the line" contract so callers
// can reuse one scratch array across a whole sequence.
func resetLine(line []dd.LineEntry) {
	for i := range line {
		line[i] = dd.LineDefault
	}
}

func setLineRoles(line []dd.LineEntry, controls []Control, target int) {
	for _, c := range controls {
		if c.Positive {
			line[c.Qubit] = dd.LinePositiveControl
		} else {
			line[c.Qubit] = dd.LineNegativeControl
		}
	}
	line[target] = dd.LineTarget
}
