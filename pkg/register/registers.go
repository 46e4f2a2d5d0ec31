package register

import "github.com/qfr-project/qfr/pkg/qfrerr"

// AddQubitRegister appends n qubits to the end of the quantum address
// space under name, extending an existing same-named register if it
// already ends at the current tail, otherwise creating a fresh one.
func (s *State) AddQubitRegister(n int, name string) error {
	if s.Total()+n > s.MaxQubits {
		return qfrerr.Newf(qfrerr.CapacityExceeded,
			"adding %d qubits would bring the total to %d, exceeding max_qubits=%d", n, s.Total()+n, s.MaxQubits)
	}
	if reg, ok := s.Q[name]; ok {
		if reg.Start+reg.Count != s.Total() {
			return qfrerr.Newf(qfrerr.RegisterExtensionIllegal,
				"augmenting register %q is only supported when it is the last register", name)
		}
		reg.Count += n
	} else {
		s.Q[name] = &Register{Name: name, Start: s.NQubits, Count: n}
	}

	for i := 0; i < n; i++ {
		j := s.NQubits + i
		s.InitialLayout[j] = j
		s.OutputPermutation[j] = j
	}
	s.NQubits += n
	return nil
}

// AddClassicalRegister appends n classical bits under name. Existing
// classical registers can never be extended.
func (s *State) AddClassicalRegister(n int, name string) error {
	if _, ok := s.C[name]; ok {
		return qfrerr.Newf(qfrerr.RegisterAlreadyExists, "classical register %q already exists", name)
	}
	s.C[name] = &Register{Name: name, Start: s.NClassics, Count: n}
	s.NClassics += n
	return nil
}

// AddAncillaryRegister appends n scratch qubits after all current qubits
// and ancillae, marking the new logical indices ancillary.
func (s *State) AddAncillaryRegister(n int, name string) error {
	if s.Total()+n > s.MaxQubits {
		return qfrerr.Newf(qfrerr.CapacityExceeded,
			"adding %d ancillae would bring the total to %d, exceeding max_qubits=%d", n, s.Total()+n, s.MaxQubits)
	}
	total := s.Total()
	if reg, ok := s.A[name]; ok {
		if reg.Start+reg.Count != total {
			return qfrerr.Newf(qfrerr.RegisterExtensionIllegal,
				"augmenting ancillary register %q is only supported when it is the last register", name)
		}
		reg.Count += n
	} else {
		s.A[name] = &Register{Name: name, Start: total, Count: n}
	}

	for i := 0; i < n; i++ {
		j := total + i
		s.InitialLayout[j] = j
		s.OutputPermutation[j] = j
		s.SetAncillary(j, true)
	}
	s.NAncillae += n
	return nil
}
