package register

import "sort"

// IsIdleQubit reports whether physicalQubit is idle, given an actsOn
// predicate the caller builds from its operation sequence (register.State
// does not itself hold operations).
func IsIdleQubit(physicalQubit int, actsOn func(int) bool) bool {
	return !actsOn(physicalQubit)
}

// StripIdleQubits repeatedly removes idle qubits (highest physical index
// first, mirroring reverse iteration over the layout). When force is
// false, an idle qubit still present in the output permutation is kept.
// actsOn must reflect the full operation sequence; it is asked once per
// physical qubit of the layout as it stood on entry. After each removal,
// every higher logical index in both layout maps is shifted down by one.
func (s *State) StripIdleQubits(force bool, actsOn func(physicalQubit int) bool) error {
	layoutCopy := make(map[int]int, len(s.InitialLayout))
	physicalQubits := make([]int, 0, len(s.InitialLayout))
	for phys, logical := range s.InitialLayout {
		layoutCopy[phys] = logical
		physicalQubits = append(physicalQubits, phys)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(physicalQubits)))

	for _, physicalQubit := range physicalQubits {
		if !IsIdleQubit(physicalQubit, actsOn) {
			continue
		}
		if outIdx, ok := s.OutputPermutation[physicalQubit]; ok {
			if !force && outIdx >= 0 {
				continue
			}
		}

		logicalQubit := layoutCopy[physicalQubit]
		if _, err := s.RemoveQubit(logicalQubit); err != nil {
			return err
		}

		if logicalQubit < s.Total() {
			for phys, logical := range s.InitialLayout {
				if logical > logicalQubit {
					s.InitialLayout[phys] = logical - 1
				}
			}
			for phys, logical := range s.OutputPermutation {
				if logical > logicalQubit {
					s.OutputPermutation[phys] = logical - 1
				}
			}
		}
	}
	return nil
}
