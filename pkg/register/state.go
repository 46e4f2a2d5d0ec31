package register

// State holds the full C3 model for one circuit: the three register maps,
// the layout pair, and the ancillary/garbage bitsets. It owns no operation
// sequence; callers (pkg/circuit) are responsible for propagating
// SetNqubits to every stored operation after a mutating call, and for
// supplying the actsOn predicate StripIdleQubits needs.
type State struct {
	Q map[string]*Register
	C map[string]*Register
	A map[string]*Register

	NQubits   int
	NAncillae int
	NClassics int

	InitialLayout     map[int]int // physical -> logical
	OutputPermutation map[int]int // physical -> logical

	ancillary []bool // indexed by logical qubit
	garbage   []bool // indexed by logical qubit

	MaxQubits int
}

// New returns an empty State whose bitsets are capped at maxQubits.
func New(maxQubits int) *State {
	return &State{
		Q:                 map[string]*Register{},
		C:                 map[string]*Register{},
		A:                 map[string]*Register{},
		InitialLayout:     map[int]int{},
		OutputPermutation: map[int]int{},
		ancillary:         make([]bool, maxQubits),
		garbage:           make([]bool, maxQubits),
		MaxQubits:         maxQubits,
	}
}

// Total is the combined data+ancilla qubit count, nqubits+nancillae.
func (s *State) Total() int { return s.NQubits + s.NAncillae }

func (s *State) IsAncillary(logicalQubit int) bool {
	return logicalQubit >= 0 && logicalQubit < len(s.ancillary) && s.ancillary[logicalQubit]
}

func (s *State) SetAncillary(logicalQubit int, v bool) {
	if logicalQubit >= 0 && logicalQubit < len(s.ancillary) {
		s.ancillary[logicalQubit] = v
	}
}

func (s *State) IsGarbage(logicalQubit int) bool {
	return logicalQubit >= 0 && logicalQubit < len(s.garbage) && s.garbage[logicalQubit]
}

func (s *State) SetGarbage(logicalQubit int, v bool) {
	if logicalQubit >= 0 && logicalQubit < len(s.garbage) {
		s.garbage[logicalQubit] = v
	}
}

// SetLogicalQubitGarbage marks logicalQubit as garbage; it is shorthand for
// SetGarbage(logicalQubit, true).
func (s *State) SetLogicalQubitGarbage(logicalQubit int) { s.SetGarbage(logicalQubit, true) }
