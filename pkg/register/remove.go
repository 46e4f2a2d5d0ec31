package register

import "github.com/qfr-project/qfr/pkg/qfrerr"

// RemovedQubit is the (physical index, output index) pair RemoveQubit
// hands back. OutputIndex is -1 when the removed qubit had no output
// permutation entry.
type RemovedQubit struct {
	PhysicalIndex int
	OutputIndex   int
}

// RemoveQubit deletes logicalQubit, shrinking, splitting into `_l`/`_h`
// halves, or deleting entirely whichever register owned it, then compacts
// the ancillary/garbage bitsets by shifting every higher logical index
// down by one.
func (s *State) RemoveQubit(logicalQubit int) (RemovedQubit, error) {
	physicalQubit := -1
	for phys, logical := range s.InitialLayout {
		if logical == logicalQubit {
			physicalQubit = phys
			break
		}
	}
	if physicalQubit == -1 {
		return RemovedQubit{}, qfrerr.Newf(qfrerr.UnknownRegister,
			"logical qubit %d has no initial layout entry", logicalQubit)
	}

	regName, idx, err := s.GetQubitRegisterAndIndex(physicalQubit)
	if err != nil {
		return RemovedQubit{}, err
	}

	if s.physicalQubitIsAncillary(physicalQubit) {
		shrinkOrSplit(s.A, regName, idx)
		s.NAncillae--
	} else {
		shrinkOrSplit(s.Q, regName, idx)
		s.NQubits--
	}

	delete(s.InitialLayout, physicalQubit)

	outputIndex := -1
	if v, ok := s.OutputPermutation[physicalQubit]; ok {
		outputIndex = v
		delete(s.OutputPermutation, physicalQubit)
	}

	if s.Total() < s.MaxQubits {
		for i := logicalQubit; i < s.Total(); i++ {
			s.ancillary[i] = s.ancillary[i+1]
			s.garbage[i] = s.garbage[i+1]
		}
		s.ancillary[s.Total()] = false
		s.garbage[s.Total()] = false
	}

	return RemovedQubit{PhysicalIndex: physicalQubit, OutputIndex: outputIndex}, nil
}

// shrinkOrSplit applies the remove-qubit register update: delete a
// singleton, shrink from whichever end the index sits at, or split the
// register into `_l`/`_h` halves around idx otherwise. Shared between the
// quantum and ancillary register maps, which follow identical rules.
func shrinkOrSplit(regs map[string]*Register, name string, idx int) {
	reg := regs[name]
	switch {
	case idx == 0:
		if reg.Count == 1 {
			delete(regs, name)
		} else {
			reg.Start++
			reg.Count--
		}
	case idx == reg.Count-1:
		reg.Count--
	default:
		low := &Register{Name: name + "_l", Start: reg.Start, Count: idx}
		high := &Register{Name: name + "_h", Start: reg.Start + idx + 1, Count: reg.Count - idx - 1}
		delete(regs, name)
		regs[low.Name] = low
		regs[high.Name] = high
	}
}
