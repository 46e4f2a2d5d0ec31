// Package register implements the register & layout model (C3): named
// quantum/classical/ancillary register maps, the initial-layout/output-
// permutation pair, and the ancillary/garbage bitsets.
//
// Registers and the layout maps share one index space — the "physical"
// index space the stored operation sequence is addressed over. The
// ancillary/garbage bitsets are indexed by "logical" qubit, the identity
// the layout maps project physical positions onto for I/O purposes. Most
// mutations keep the two spaces in lock-step (identity layout entries);
// RemoveQubit/AddQubit are the two operations that let them diverge.
package register

import "strconv"

const (
	DefaultQReg   = "q"
	DefaultCReg   = "c"
	DefaultAncReg = "anc"
)

// Register is one contiguous run of physical indices under a name.
type Register struct {
	Name  string
	Start int
	Count int
}

// End returns the first physical index past the run.
func (r Register) End() int { return r.Start + r.Count }

func newSingleton(prefix string, physicalQubit int) *Register {
	name := prefix + "_" + strconv.Itoa(physicalQubit)
	return &Register{Name: name, Start: physicalQubit, Count: 1}
}
