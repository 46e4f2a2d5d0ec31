package circuit

import (
	"fmt"
	"io"

	"github.com/qfr-project/qfr/pkg/dd"
	"github.com/qfr-project/qfr/pkg/register"
)

// Compound is an ordered group of operations treated as a single IR node —
// the expansion of a user-defined gate, or a manually grouped block.
type Compound struct {
	nqubits int
	Ops     []Operation
}

// NewCompound wraps ops as a single operation.
func NewCompound(ops []Operation) *Compound {
	return &Compound{Ops: ops}
}

func (c *Compound) op() {}

func (c *Compound) ActsOn(phys int) bool {
	for _, op := range c.Ops {
		if op.ActsOn(phys) {
			return true
		}
	}
	return false
}

func (c *Compound) SetNqubits(n int) {
	c.nqubits = n
	for _, op := range c.Ops {
		op.SetNqubits(n)
	}
}

func (c *Compound) NQubits() int { return c.nqubits }

func (c *Compound) IsUnitary() bool {
	for _, op := range c.Ops {
		if !op.IsUnitary() {
			return false
		}
	}
	return true
}

func (c *Compound) Targets() []int {
	var t []int
	for _, op := range c.Ops {
		t = append(t, op.Targets()...)
	}
	return t
}

func (c *Compound) Print(w io.Writer, st *register.State) error {
	for _, op := range c.Ops {
		if err := op.Print(w, st); err != nil {
			return err
		}
	}
	return nil
}

func (c *Compound) DDAttach(eng dd.Engine, line []dd.LineEntry, st *register.State) (dd.Edge, error) {
	if len(c.Ops) == 0 {
		return dd.Edge{}, fmt.Errorf("circuit: empty compound has no decision diagram")
	}
	acc, err := c.Ops[0].DDAttach(eng, line, st)
	if err != nil {
		return dd.Edge{}, err
	}
	for _, op := range c.Ops[1:] {
		next, err := op.DDAttach(eng, line, st)
		if err != nil {
			return dd.Edge{}, err
		}
		if acc, err = eng.Multiply(acc, next); err != nil {
			return dd.Edge{}, err
		}
	}
	return acc, nil
}

func (c *Compound) DDAttachReordered(eng dd.Engine, line []dd.LineEntry, varMap []int) (dd.Edge, error) {
	if len(c.Ops) == 0 {
		return dd.Edge{}, fmt.Errorf("circuit: empty compound has no decision diagram")
	}
	acc, err := c.Ops[0].DDAttachReordered(eng, line, varMap)
	if err != nil {
		return dd.Edge{}, err
	}
	for _, op := range c.Ops[1:] {
		next, err := op.DDAttachReordered(eng, line, varMap)
		if err != nil {
			return dd.Edge{}, err
		}
		if acc, err = eng.Multiply(acc, next); err != nil {
			return dd.Edge{}, err
		}
	}
	return acc, nil
}
