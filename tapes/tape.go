package tapes

import (
	"iter"
	"maps"
	"slices"
)

// Tape is a sparse cell store addressed by any int.
// An address gets an explicit zero entry the first time it is touched.
type Tape struct {
	cells map[int]uint8
}

func New() *Tape {
	return &Tape{
		cells: map[int]uint8{
			0: 0,
		},
	}
}

// Touch materializes addr as zero if it was never seen.
func (t *Tape) Touch(addr int) {
	if _, ok := t.cells[addr]; !ok {
		t.cells[addr] = 0
	}
}

func (t *Tape) Get(addr int) uint8 {
	v, ok := t.cells[addr]
	if !ok {
		t.cells[addr] = 0
	}
	return v
}

// Peek reads addr without materializing it.
func (t *Tape) Peek(addr int) uint8 {
	return t.cells[addr]
}

func (t *Tape) Set(addr int, value uint8) {
	t.cells[addr] = value
}

// Inc adds one modulo 256 and returns the new value.
func (t *Tape) Inc(addr int) uint8 {
	v := t.cells[addr] + 1
	t.cells[addr] = v
	return v
}

// Dec subtracts one modulo 256 and returns the new value.
func (t *Tape) Dec(addr int) uint8 {
	v := t.cells[addr] - 1
	t.cells[addr] = v
	return v
}

// Len returns the number of materialized cells.
func (t *Tape) Len() int {
	return len(t.cells)
}

// Cells iterates materialized cells in ascending address order.
func (t *Tape) Cells() iter.Seq2[int, uint8] {
	return func(yield func(int, uint8) bool) {
		for _, addr := range slices.Sorted(maps.Keys(t.cells)) {
			if !yield(addr, t.cells[addr]) {
				return
			}
		}
	}
}
