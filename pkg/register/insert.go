package register

import "github.com/qfr-project/qfr/pkg/qfrerr"

// AddAncillaryQubit inserts a single scratch qubit at physicalQubit, fusing
// into an adjacent ancillary run when one starts at physicalQubit+1 or ends
// at physicalQubit, otherwise creating a fresh singleton register. Pass
// outputQubit < 0 to leave it out of the output permutation.
func (s *State) AddAncillaryQubit(physicalQubit, outputQubit int) error {
	if _, ok := s.InitialLayout[physicalQubit]; ok {
		return qfrerr.Newf(qfrerr.RegisterExtensionIllegal, "physical qubit %d is already assigned", physicalQubit)
	}
	if _, ok := s.OutputPermutation[physicalQubit]; ok {
		return qfrerr.Newf(qfrerr.RegisterExtensionIllegal, "physical qubit %d is already assigned", physicalQubit)
	}

	fusionPossible := false
	for _, reg := range s.A {
		switch {
		case reg.Start == physicalQubit+1:
			reg.Start--
			reg.Count++
			fusionPossible = true
		case reg.Start+reg.Count == physicalQubit:
			reg.Count++
			fusionPossible = true
		}
		if fusionPossible {
			break
		}
	}
	if !fusionPossible {
		reg := newSingleton(DefaultAncReg, physicalQubit)
		s.A[reg.Name] = reg
	}

	logicalQubit := s.Total()
	s.NAncillae++
	s.SetAncillary(logicalQubit, true)

	s.InitialLayout[physicalQubit] = logicalQubit
	if outputQubit >= 0 {
		s.OutputPermutation[physicalQubit] = outputQubit
	}
	return nil
}

// AddQubit inserts a data qubit at physicalQubit, assigning it
// logicalQubit, fusing into an adjacent quantum register as
// AddAncillaryQubit does, and shifting every ancillary register's start
// index up by one when the insertion lands exactly at the qubit/ancilla
// boundary.
func (s *State) AddQubit(logicalQubit, physicalQubit, outputQubit int) error {
	if _, ok := s.InitialLayout[physicalQubit]; ok {
		return qfrerr.Newf(qfrerr.RegisterExtensionIllegal, "physical qubit %d is already assigned", physicalQubit)
	}
	if _, ok := s.OutputPermutation[physicalQubit]; ok {
		return qfrerr.Newf(qfrerr.RegisterExtensionIllegal, "physical qubit %d is already assigned", physicalQubit)
	}
	if logicalQubit > s.NQubits {
		return qfrerr.Newf(qfrerr.RegisterExtensionIllegal,
			"only %d qubits currently present; cannot insert at logical index %d", s.NQubits, logicalQubit)
	}

	fusionPossible := false
	for _, reg := range s.Q {
		switch {
		case reg.Start == physicalQubit+1:
			reg.Start--
			reg.Count++
			fusionPossible = true
		case reg.Start+reg.Count == physicalQubit:
			if physicalQubit == s.NQubits {
				for _, anc := range s.A {
					anc.Start++
				}
			}
			reg.Count++
			fusionPossible = true
		}
		if fusionPossible {
			break
		}
	}

	s.ConsolidateRegister(s.Q)

	if len(s.Q) == 0 {
		s.Q[DefaultQReg] = &Register{Name: DefaultQReg, Start: physicalQubit, Count: 1}
	} else if !fusionPossible {
		reg := newSingleton(DefaultQReg, physicalQubit)
		s.Q[reg.Name] = reg
	}

	s.NQubits++
	s.InitialLayout[physicalQubit] = logicalQubit
	if outputQubit >= 0 {
		s.OutputPermutation[physicalQubit] = outputQubit
	}

	for i := s.Total() - 1; i > logicalQubit; i-- {
		s.ancillary[i] = s.ancillary[i-1]
		s.garbage[i] = s.garbage[i-1]
	}
	s.ancillary[logicalQubit] = false
	s.garbage[logicalQubit] = false
	return nil
}
