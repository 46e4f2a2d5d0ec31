// Package emit implements the OpenQASM 2.0 canonical emission back-end
// (C6→C7 boundary): walks a *circuit.QuantumComputation and a
// *register.State to produce OpenQASM text. Structured after the
// teacher's pkg/codegen/amd64.Generator — a struct wrapping an io.Writer,
// one emitXxx method per pass, called in a fixed order — generalized from
// assembly text to OpenQASM text.
package emit

import (
	"fmt"
	"io"
	"sort"

	"github.com/qfr-project/qfr/pkg/circuit"
	"github.com/qfr-project/qfr/pkg/qfrlog"
	"github.com/qfr-project/qfr/pkg/register"
)

// Generator emits OpenQASM 2.0 for one computation.
type Generator struct {
	w io.Writer
}

// NewGenerator returns a Generator writing to w.
func NewGenerator(w io.Writer) *Generator {
	return &Generator{w: w}
}

// decl is one register declaration line's worth of bookkeeping: either a
// real Q/A register or a synthetic one covering a back-filled gap.
type decl struct {
	kind string // "qreg" or "ancreg" (still emitted as qreg)
	name string
	reg  register.Register
}

// Generate runs the full canonical pass order: layout comments, header,
// register declarations, body.
func (g *Generator) Generate(qc *circuit.QuantumComputation) error {
	qfrlog.LogEmit("openqasm", len(qc.Ops))

	if err := g.emitLayoutComments(qc.State); err != nil {
		return err
	}
	if err := g.emitHeader(); err != nil {
		return err
	}
	if err := g.emitDeclarations(qc.State); err != nil {
		return err
	}
	return g.emitBody(qc)
}

// emitLayoutComments prints the optional "// i ..." / "// o ..." lines:
// for every logical qubit 0..n-1, the physical qubit the initial layout /
// output permutation maps it to. Absent entirely when there is nothing to
// report (no qubits declared yet).
func (g *Generator) emitLayoutComments(st *register.State) error {
	total := st.Total()
	if total == 0 {
		return nil
	}
	if err := g.emitInverseLayoutLine("i", st.InitialLayout, total); err != nil {
		return err
	}
	return g.emitInverseLayoutLine("o", st.OutputPermutation, total)
}

func (g *Generator) emitInverseLayoutLine(tag string, layout map[int]int, total int) error {
	inverse := make(map[int]int, len(layout))
	for phys, logical := range layout {
		inverse[logical] = phys
	}
	if _, err := fmt.Fprintf(g.w, "// %s", tag); err != nil {
		return err
	}
	for logical := 0; logical < total; logical++ {
		phys, ok := inverse[logical]
		if !ok {
			phys = -1
		}
		if _, err := fmt.Fprintf(g.w, " %d", phys); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(g.w)
	return err
}

func (g *Generator) emitHeader() error {
	_, err := fmt.Fprintf(g.w, "OPENQASM 2.0;\ninclude \"qelib1.inc\";\n")
	return err
}

// emitDeclarations prints qreg/creg/ancilla-qreg lines sorted by start
// index, back-filling any physical qubit below the highest declared index
// that owns no register (spec.md §6 step 5: RemoveQubit can leave such a
// gap) as a fresh singleton data qreg excluded from the output comment.
func (g *Generator) emitDeclarations(st *register.State) error {
	var decls []decl
	for name, reg := range st.Q {
		decls = append(decls, decl{kind: "qreg", name: name, reg: *reg})
	}
	for name, reg := range st.A {
		decls = append(decls, decl{kind: "ancreg", name: name, reg: *reg})
	}

	highest := -1
	for _, d := range decls {
		if end := d.reg.Start + d.reg.Count - 1; end > highest {
			highest = end
		}
	}
	owned := make([]bool, highest+1)
	for _, d := range decls {
		for i := d.reg.Start; i < d.reg.Start+d.reg.Count; i++ {
			owned[i] = true
		}
	}
	for phys := 0; phys <= highest; phys++ {
		if !owned[phys] {
			decls = append(decls, decl{kind: "qreg", name: fmt.Sprintf("qbackfill_%d", phys), reg: register.Register{Name: fmt.Sprintf("qbackfill_%d", phys), Start: phys, Count: 1}})
		}
	}

	sort.Slice(decls, func(i, j int) bool { return decls[i].reg.Start < decls[j].reg.Start })
	for _, d := range decls {
		if _, err := fmt.Fprintf(g.w, "qreg %s[%d];\n", d.name, d.reg.Count); err != nil {
			return err
		}
	}

	var cnames []string
	for name := range st.C {
		cnames = append(cnames, name)
	}
	sort.Slice(cnames, func(i, j int) bool { return st.C[cnames[i]].Start < st.C[cnames[j]].Start })
	for _, name := range cnames {
		if _, err := fmt.Fprintf(g.w, "creg %s[%d];\n", name, st.C[name].Count); err != nil {
			return err
		}
	}
	return nil
}

// emitBody prints one line per stored operation, in sequence order; every
// Operation.Print implementation already folds whole-register
// measure/reset forms, so this pass is a plain walk.
func (g *Generator) emitBody(qc *circuit.QuantumComputation) error {
	for _, op := range qc.Ops {
		if err := op.Print(g.w, qc.State); err != nil {
			return err
		}
	}
	return nil
}
