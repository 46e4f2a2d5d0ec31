package circuit

import (
	"fmt"
	"io"
	"strings"

	"github.com/qfr-project/qfr/pkg/dd"
	"github.com/qfr-project/qfr/pkg/register"
)

// Standard is one primitive parameterised unitary: one or two target
// qubits (SWAP is the only two-target gate in the primitive alphabet) with
// zero or more polarity-tagged controls and up to three real parameters.
type Standard struct {
	nqubits  int
	Kind     OpType
	Controls []Control
	Target   int
	// Target2 is the second SWAP target, or -1 for every other gate kind.
	Target2 int
	Params  [3]float64
}

// NewStandard builds a single-target Standard operation.
func NewStandard(kind OpType, controls []Control, target int, params [3]float64) *Standard {
	return &Standard{Kind: kind, Controls: controls, Target: target, Target2: -1, Params: params}
}

// NewSwap builds a two-target SWAP, optionally controlled.
func NewSwap(controls []Control, target, target2 int) *Standard {
	return &Standard{Kind: SWAP, Controls: controls, Target: target, Target2: target2}
}

func (s *Standard) op() {}

func (s *Standard) ActsOn(phys int) bool {
	if phys == s.Target || phys == s.Target2 {
		return true
	}
	for _, c := range s.Controls {
		if c.Qubit == phys {
			return true
		}
	}
	return false
}

func (s *Standard) SetNqubits(n int) { s.nqubits = n }
func (s *Standard) NQubits() int     { return s.nqubits }
func (s *Standard) IsUnitary() bool  { return true }

func (s *Standard) Targets() []int {
	if s.Kind == SWAP && s.Target2 >= 0 {
		return []int{s.Target, s.Target2}
	}
	return []int{s.Target}
}

func (s *Standard) hasParams() bool {
	switch s.Kind {
	case RX, RY, RZ, U1, U2, U3:
		return true
	default:
		return false
	}
}

func qubitRef(st *register.State, phys int) string {
	name, idx, err := st.GetQubitRegisterAndIndex(phys)
	if err != nil {
		return fmt.Sprintf("q[%d]", phys)
	}
	return fmt.Sprintf("%s[%d]", name, idx)
}

func (s *Standard) Print(w io.Writer, st *register.State) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("c", len(s.Controls)))
	b.WriteString(s.Kind.String())
	if s.hasParams() {
		switch s.Kind {
		case RX, RY, RZ, U1:
			fmt.Fprintf(&b, "(%v)", s.Params[0])
		case U2:
			fmt.Fprintf(&b, "(%v,%v)", s.Params[0], s.Params[1])
		case U3:
			fmt.Fprintf(&b, "(%v,%v,%v)", s.Params[0], s.Params[1], s.Params[2])
		}
	}
	b.WriteString(" ")

	refs := make([]string, 0, len(s.Controls)+1)
	for _, c := range s.Controls {
		ref := qubitRef(st, c.Qubit)
		if !c.Positive {
			ref = "~" + ref
		}
		refs = append(refs, ref)
	}
	refs = append(refs, qubitRef(st, s.Target))
	if s.Kind == SWAP && s.Target2 >= 0 {
		refs = append(refs, qubitRef(st, s.Target2))
	}
	b.WriteString(strings.Join(refs, ","))
	b.WriteString(";\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (s *Standard) DDAttach(eng dd.Engine, line []dd.LineEntry, st *register.State) (dd.Edge, error) {
	resetLine(line)
	defer resetLine(line)
	setLineRoles(line, s.Controls, s.Target)
	if s.Kind == SWAP && s.Target2 >= 0 {
		line[s.Target2] = dd.LineTarget
	}
	return eng.Build(ddKind(s.Kind), line, s.Params)
}

func (s *Standard) DDAttachReordered(eng dd.Engine, line []dd.LineEntry, varMap []int) (dd.Edge, error) {
	resetLine(line)
	defer resetLine(line)
	remapped := make([]Control, len(s.Controls))
	for i, c := range s.Controls {
		remapped[i] = Control{Qubit: varMap[c.Qubit], Positive: c.Positive}
	}
	setLineRoles(line, remapped, varMap[s.Target])
	if s.Kind == SWAP && s.Target2 >= 0 {
		line[varMap[s.Target2]] = dd.LineTarget
	}
	return eng.Build(ddKind(s.Kind), line, s.Params)
}
