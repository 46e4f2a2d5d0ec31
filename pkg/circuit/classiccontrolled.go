package circuit

import (
	"fmt"
	"io"

	"github.com/qfr-project/qfr/pkg/dd"
	"github.com/qfr-project/qfr/pkg/register"
)

// ClassicControlled wraps another operation with an "if (creg==expected)"
// guard over a classical register slice.
type ClassicControlled struct {
	Inner     Operation
	CregName  string
	CregStart int
	CregLen   int
	Expected  int
}

// NewClassicControlled guards inner behind creg[start:start+length]==expected.
func NewClassicControlled(inner Operation, cregName string, start, length, expected int) *ClassicControlled {
	return &ClassicControlled{Inner: inner, CregName: cregName, CregStart: start, CregLen: length, Expected: expected}
}

func (c *ClassicControlled) op() {}

func (c *ClassicControlled) ActsOn(phys int) bool { return c.Inner.ActsOn(phys) }
func (c *ClassicControlled) SetNqubits(n int)     { c.Inner.SetNqubits(n) }
func (c *ClassicControlled) NQubits() int         { return c.Inner.NQubits() }

// IsUnitary is false regardless of the wrapped operation: whether it runs
// at all depends on classical state decided at execution time, not on the
// gate's own unitarity.
func (c *ClassicControlled) IsUnitary() bool { return false }

func (c *ClassicControlled) Targets() []int { return c.Inner.Targets() }

func (c *ClassicControlled) Print(w io.Writer, st *register.State) error {
	if _, err := fmt.Fprintf(w, "if(%s==%d) ", c.CregName, c.Expected); err != nil {
		return err
	}
	return c.Inner.Print(w, st)
}

func (c *ClassicControlled) DDAttach(eng dd.Engine, line []dd.LineEntry, st *register.State) (dd.Edge, error) {
	return c.Inner.DDAttach(eng, line, st)
}

func (c *ClassicControlled) DDAttachReordered(eng dd.Engine, line []dd.LineEntry, varMap []int) (dd.Edge, error) {
	return c.Inner.DDAttachReordered(eng, line, varMap)
}
