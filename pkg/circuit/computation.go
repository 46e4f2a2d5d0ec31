package circuit

import "github.com/qfr-project/qfr/pkg/register"

// QuantumComputation owns an ordered operation sequence plus the register
// model it was built against, mirroring the ownership split of the
// teacher's ir.Builder/ir.Program pair: register mutations are forwarded
// to *register.State, and every stored operation's width is refreshed
// afterwards so Operation.NQubits never goes stale.
type QuantumComputation struct {
	Ops   []Operation
	State *register.State

	validator *register.InvariantValidator
}

// New returns an empty computation whose register model is capped at
// maxQubits.
func New(maxQubits int) *QuantumComputation {
	return &QuantumComputation{
		State:     register.New(maxQubits),
		validator: register.NewInvariantValidator(),
	}
}

// AddOp appends op to the sequence, stamping it with the current qubit
// width.
func (qc *QuantumComputation) AddOp(op Operation) {
	op.SetNqubits(qc.State.Total())
	qc.Ops = append(qc.Ops, op)
}

func (qc *QuantumComputation) propagateNqubits() {
	total := qc.State.Total()
	for _, op := range qc.Ops {
		op.SetNqubits(total)
	}
}

func (qc *QuantumComputation) opWidths() []int {
	widths := make([]int, len(qc.Ops))
	for i, op := range qc.Ops {
		widths[i] = op.NQubits()
	}
	return widths
}

// Validate checks the current register model against the four invariants
// of §4.3, using every stored operation's width for invariant (c).
func (qc *QuantumComputation) Validate() error {
	return qc.validator.Validate(qc.State, qc.opWidths())
}

func (qc *QuantumComputation) AddQubitRegister(n int, name string) error {
	if err := qc.State.AddQubitRegister(n, name); err != nil {
		return err
	}
	qc.propagateNqubits()
	return nil
}

func (qc *QuantumComputation) AddClassicalRegister(n int, name string) error {
	return qc.State.AddClassicalRegister(n, name)
}

func (qc *QuantumComputation) AddAncillaryRegister(n int, name string) error {
	if err := qc.State.AddAncillaryRegister(n, name); err != nil {
		return err
	}
	qc.propagateNqubits()
	return nil
}

func (qc *QuantumComputation) AddQubit(logicalQubit, physicalQubit, outputQubit int) error {
	if err := qc.State.AddQubit(logicalQubit, physicalQubit, outputQubit); err != nil {
		return err
	}
	qc.propagateNqubits()
	return nil
}

func (qc *QuantumComputation) AddAncillaryQubit(physicalQubit, outputQubit int) error {
	if err := qc.State.AddAncillaryQubit(physicalQubit, outputQubit); err != nil {
		return err
	}
	qc.propagateNqubits()
	return nil
}

func (qc *QuantumComputation) RemoveQubit(logicalQubit int) (register.RemovedQubit, error) {
	removed, err := qc.State.RemoveQubit(logicalQubit)
	if err != nil {
		return register.RemovedQubit{}, err
	}
	qc.propagateNqubits()
	return removed, nil
}

// StripIdleQubits removes every physical qubit no stored operation acts
// on, keeping output-permuted qubits unless force is set.
func (qc *QuantumComputation) StripIdleQubits(force bool) error {
	actsOn := func(phys int) bool {
		for _, op := range qc.Ops {
			if op.ActsOn(phys) {
				return true
			}
		}
		return false
	}
	if err := qc.State.StripIdleQubits(force, actsOn); err != nil {
		return err
	}
	qc.propagateNqubits()
	return nil
}

// Reset discards the operation sequence and reinitializes the register
// model at the same qubit capacity.
func (qc *QuantumComputation) Reset() {
	qc.Ops = nil
	qc.State = register.New(qc.State.MaxQubits)
}
