package register

import (
	"fmt"

	"go.uber.org/multierr"
)

// InvariantValidator checks the four register-model invariants of §4.3
// against a State, accumulating every violation instead of stopping at the
// first — grounded on the teacher's assembly Validator, which collects a
// slice of ValidationErrors across several passes before reporting.
type InvariantValidator struct {
	violations []error
}

func NewInvariantValidator() *InvariantValidator {
	return &InvariantValidator{}
}

// Validate runs all four checks against s. opWidths is the nqubits field
// currently stored on each operation in the owning sequence, in order;
// pass nil to skip invariant (c). Returns a single combined error, or nil
// if s is internally consistent.
func (v *InvariantValidator) Validate(s *State, opWidths []int) error {
	v.violations = v.violations[:0]
	v.checkRegisterCoverage(s)
	v.checkLayoutImages(s)
	v.checkOperationWidths(s, opWidths)
	v.checkBitsetTail(s)
	return multierr.Combine(v.violations...)
}

// checkRegisterCoverage verifies invariant (a): |Q| + |A| = nqubits + nancillae.
func (v *InvariantValidator) checkRegisterCoverage(s *State) {
	sum := 0
	for _, r := range s.Q {
		sum += r.Count
	}
	for _, r := range s.A {
		sum += r.Count
	}
	if sum != s.Total() {
		v.violations = append(v.violations, fmt.Errorf(
			"register coverage: |Q|+|A|=%d, want nqubits+nancillae=%d", sum, s.Total()))
	}
}

// checkLayoutImages verifies invariant (b): both layout maps' images lie
// within [0, nqubits+nancillae).
func (v *InvariantValidator) checkLayoutImages(s *State) {
	total := s.Total()
	for phys, logical := range s.InitialLayout {
		if logical < 0 || logical >= total {
			v.violations = append(v.violations, fmt.Errorf(
				"initial layout: physical %d maps to out-of-range logical %d (total=%d)", phys, logical, total))
		}
	}
	for phys, logical := range s.OutputPermutation {
		if logical < 0 || logical >= total {
			v.violations = append(v.violations, fmt.Errorf(
				"output permutation: physical %d maps to out-of-range logical %d (total=%d)", phys, logical, total))
		}
	}
}

// checkOperationWidths verifies invariant (c): every operation's nqubits
// field equals nqubits+nancillae.
func (v *InvariantValidator) checkOperationWidths(s *State, opWidths []int) {
	total := s.Total()
	for i, w := range opWidths {
		if w != total {
			v.violations = append(v.violations, fmt.Errorf(
				"operation %d: nqubits field=%d, want %d", i, w, total))
		}
	}
}

// checkBitsetTail verifies invariant (d): ancillary/garbage entries at or
// beyond nqubits+nancillae are unset.
func (v *InvariantValidator) checkBitsetTail(s *State) {
	total := s.Total()
	for i := total; i < len(s.ancillary); i++ {
		if s.ancillary[i] || s.garbage[i] {
			v.violations = append(v.violations, fmt.Errorf(
				"bitset tail: index %d at or beyond nqubits+nancillae=%d is set", i, total))
			break
		}
	}
}
