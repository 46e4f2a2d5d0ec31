package register

import "github.com/qfr-project/qfr/pkg/qfrerr"

// GetQubitRegister returns the name of whichever quantum or ancillary
// register owns physicalQubit.
func (s *State) GetQubitRegister(physicalQubit int) (string, error) {
	if name, ok := findRegisterOwning(s.Q, physicalQubit); ok {
		return name, nil
	}
	if name, ok := findRegisterOwning(s.A, physicalQubit); ok {
		return name, nil
	}
	return "", qfrerr.Newf(qfrerr.UnknownRegister,
		"physical qubit %d is not owned by any quantum or ancillary register", physicalQubit)
}

// GetQubitRegisterAndIndex returns the owning register's name together
// with physicalQubit's offset within it.
func (s *State) GetQubitRegisterAndIndex(physicalQubit int) (string, int, error) {
	name, err := s.GetQubitRegister(physicalQubit)
	if err != nil {
		return "", 0, err
	}
	if reg, ok := s.Q[name]; ok {
		return name, physicalQubit - reg.Start, nil
	}
	if reg, ok := s.A[name]; ok {
		return name, physicalQubit - reg.Start, nil
	}
	return name, 0, nil
}

// GetClassicalRegister returns the name of the classical register owning
// classicalIndex.
func (s *State) GetClassicalRegister(classicalIndex int) (string, error) {
	if name, ok := findRegisterOwning(s.C, classicalIndex); ok {
		return name, nil
	}
	return "", qfrerr.Newf(qfrerr.UnknownRegister,
		"classical index %d is not owned by any classical register", classicalIndex)
}

// GetClassicalRegisterAndIndex returns the owning classical register's
// name together with classicalIndex's offset within it.
func (s *State) GetClassicalRegisterAndIndex(classicalIndex int) (string, int, error) {
	name, err := s.GetClassicalRegister(classicalIndex)
	if err != nil {
		return "", 0, err
	}
	reg := s.C[name]
	return name, classicalIndex - reg.Start, nil
}

// GetHighestLogicalQubitIndex returns the maximum value appearing in a
// physical->logical map (InitialLayout or OutputPermutation); 0 for an
// empty map.
func GetHighestLogicalQubitIndex(m map[int]int) int {
	max := 0
	for _, logical := range m {
		if logical > max {
			max = logical
		}
	}
	return max
}

func (s *State) physicalQubitIsAncillary(physicalQubit int) bool {
	_, ok := findRegisterOwning(s.A, physicalQubit)
	return ok
}

func findRegisterOwning(regs map[string]*Register, index int) (string, bool) {
	for name, reg := range regs {
		if index >= reg.Start && index < reg.Start+reg.Count {
			return name, true
		}
	}
	return "", false
}
