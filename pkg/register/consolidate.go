package register

import "strings"

// ConsolidateRegister fuses every adjacent `name_l` + `name_h` pair in regs
// back into `name`, run to a fixed point. Idempotent: a map with no fusable
// pair is returned unchanged.
//
// The reference implementation this is modeled on only ever inspects the
// lexicographically-first map entry per pass, so a map with more than one
// independent `_l`/`_h` pair can leave later pairs unfused; this version
// scans the whole map each pass so every fusable pair converges, matching
// the stronger "fuses every adjacent pair" contract.
func (s *State) ConsolidateRegister(regs map[string]*Register) {
	for changed := true; changed; {
		changed = false
		for name, reg := range regs {
			if !strings.HasSuffix(name, "_l") {
				continue
			}
			base := strings.TrimSuffix(name, "_l")
			high, ok := regs[base+"_h"]
			if !ok || reg.Start+reg.Count != high.Start {
				continue
			}
			regs[base] = &Register{Name: base, Start: reg.Start, Count: reg.Count + high.Count}
			delete(regs, name)
			delete(regs, base+"_h")
			changed = true
			break
		}
	}
}
