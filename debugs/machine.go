package debugs

import (
	"github.com/reusee/bfvm/machines"
	"github.com/reusee/bfvm/programs"
)

// MachineGlobals exposes a halted or paused machine to the tap.
// counts is keyed by instruction and may be nil.
func MachineGlobals(m *machines.Machine, counts map[programs.Instruction]int) map[string]any {
	cells := make(map[int]uint8, m.Tape.Len())
	for addr, v := range m.Tape.Cells() {
		cells[addr] = v
	}
	steps := make(map[string]int, len(counts))
	for inst, n := range counts {
		steps[inst.String()] = n
	}
	return map[string]any{
		"ip":      m.IP,
		"dp":      m.DP,
		"halted":  m.Halted(),
		"program": m.Program.String(),
		"cells":   cells,
		"steps":   steps,
		"cell": func(addr int) int {
			return int(m.Tape.Peek(addr))
		},
	}
}
