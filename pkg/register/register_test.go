package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfr-project/qfr/pkg/qfrerr"
)

func TestAddQubitRegisterExtendsTail(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(2, "q"))
	require.NoError(t, s.AddQubitRegister(1, "q"))

	reg, ok := s.Q["q"]
	require.True(t, ok)
	assert.Equal(t, 0, reg.Start)
	assert.Equal(t, 3, reg.Count)
	assert.Equal(t, 3, s.NQubits)
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, s.InitialLayout[i])
		assert.Equal(t, i, s.OutputPermutation[i])
	}
}

func TestAddQubitRegisterRejectsNonTailExtension(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(2, "q"))
	require.NoError(t, s.AddAncillaryRegister(1, "anc"))

	err := s.AddQubitRegister(1, "q")
	require.Error(t, err)
	assert.True(t, qfrerr.Is(err, qfrerr.RegisterExtensionIllegal))
}

func TestAddQubitRegisterRejectsCapacityOverflow(t *testing.T) {
	s := New(2)
	err := s.AddQubitRegister(3, "q")
	require.Error(t, err)
	assert.True(t, qfrerr.Is(err, qfrerr.CapacityExceeded))
}

func TestAddAncillaryRegisterMarksAncillary(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(2, "q"))
	require.NoError(t, s.AddAncillaryRegister(2, "anc"))

	assert.Equal(t, 2, s.NAncillae)
	assert.True(t, s.IsAncillary(2))
	assert.True(t, s.IsAncillary(3))
	assert.False(t, s.IsAncillary(1))
}

// TestRemoveQubitSplitsRegister pins concrete scenario 5: removing the
// middle qubit of a 3-qubit register splits it into q_l={0,1} and
// q_h={2,1}, and the ranges no longer abut so consolidation is a no-op.
func TestRemoveQubitSplitsRegister(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(3, "q"))

	removed, err := s.RemoveQubit(1)
	require.NoError(t, err)
	assert.Equal(t, 1, removed.PhysicalIndex)
	assert.Equal(t, 1, removed.OutputIndex)

	low, ok := s.Q["q_l"]
	require.True(t, ok)
	assert.Equal(t, 0, low.Start)
	assert.Equal(t, 1, low.Count)

	high, ok := s.Q["q_h"]
	require.True(t, ok)
	assert.Equal(t, 2, high.Start)
	assert.Equal(t, 1, high.Count)

	_, stillPresent := s.Q["q"]
	assert.False(t, stillPresent)

	s.ConsolidateRegister(s.Q)
	_, lowStill := s.Q["q_l"]
	_, highStill := s.Q["q_h"]
	assert.True(t, lowStill)
	assert.True(t, highStill)
}

func TestRemoveQubitShrinksFromEitherEnd(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(3, "q"))

	_, err := s.RemoveQubit(0)
	require.NoError(t, err)
	reg, ok := s.Q["q"]
	require.True(t, ok)
	assert.Equal(t, 1, reg.Start)
	assert.Equal(t, 2, reg.Count)

	_, err = s.RemoveQubit(2) // physical 2, the high end of the remaining run
	require.NoError(t, err)
	reg = s.Q["q"]
	assert.Equal(t, 1, reg.Count)
}

func TestRemoveQubitDeletesLastSingleton(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(1, "q"))

	_, err := s.RemoveQubit(0)
	require.NoError(t, err)
	_, ok := s.Q["q"]
	assert.False(t, ok)
	assert.Equal(t, 0, s.NQubits)
}

func TestConsolidateRegisterFusesAbuttingPairs(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(5, "q"))
	_, err := s.RemoveQubit(2)
	require.NoError(t, err)
	// RemoveQubit leaves physical 2 unowned (q_l={0,2}, q_h={3,2}); move q_h
	// down by one so the two halves abut.
	s.Q["q_h"].Start = 2

	s.ConsolidateRegister(s.Q)
	reg, ok := s.Q["q"]
	require.True(t, ok, "q_l and q_h should have fused back into q")
	assert.Equal(t, 0, reg.Start)
	assert.Equal(t, 4, reg.Count)

	// idempotent: running again changes nothing
	s.ConsolidateRegister(s.Q)
	reg2 := s.Q["q"]
	assert.Equal(t, reg.Start, reg2.Start)
	assert.Equal(t, reg.Count, reg2.Count)
}

func TestAddQubitFusesAtRegisterBoundaryAndShiftsAncillae(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(2, "q")) // physical 0,1
	require.NoError(t, s.AddAncillaryQubit(3, -1)) // leaves physical 2 as a gap

	// insert a third data qubit right at the q/anc boundary (physical 2)
	require.NoError(t, s.AddQubit(2, 2, 2))

	reg := s.Q["q"]
	assert.Equal(t, 3, reg.Count)
	anc, ok := s.A["anc_3"]
	require.True(t, ok)
	assert.Equal(t, 4, anc.Start, "ancillary register should have shifted up by one")
}

func TestAddAncillaryQubitFusesIntoAdjacentRun(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddAncillaryRegister(2, "anc")) // physical 0,1

	require.NoError(t, s.AddAncillaryQubit(2, -1))
	reg, ok := s.A["anc"]
	require.True(t, ok)
	assert.Equal(t, 3, reg.Count)
}

func TestStripIdleQubitsRetainsOutputByDefault(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(2, "q"))

	actsOn := func(int) bool { return false } // nothing acts on anything

	require.NoError(t, s.StripIdleQubits(false, actsOn))
	assert.Equal(t, 2, s.NQubits, "output-permuted idle qubits must survive a non-forced strip")

	require.NoError(t, s.StripIdleQubits(true, actsOn))
	assert.Equal(t, 0, s.NQubits)
}

func TestInvariantValidatorFlagsBitsetTail(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(2, "q"))
	s.SetAncillary(5, true) // beyond total=2, violates invariant (d)

	v := NewInvariantValidator()
	err := v.Validate(s, []int{2, 2})
	require.Error(t, err)
}

func TestInvariantValidatorPassesOnCleanState(t *testing.T) {
	s := New(16)
	require.NoError(t, s.AddQubitRegister(2, "q"))
	require.NoError(t, s.AddAncillaryRegister(1, "anc"))

	v := NewInvariantValidator()
	err := v.Validate(s, []int{3, 3, 3})
	assert.NoError(t, err)
}

func TestGetHighestLogicalQubitIndex(t *testing.T) {
	m := map[int]int{0: 2, 1: 0, 2: 1}
	assert.Equal(t, 2, GetHighestLogicalQubitIndex(m))
	assert.Equal(t, 0, GetHighestLogicalQubitIndex(map[int]int{}))
}
