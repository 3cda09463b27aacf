package machines

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/reusee/bfvm/programs"
)

type flusher interface {
	Flush() error
}

// Step executes the instruction at IP.
func (m *Machine) Step() (step Step, err error) {
	if m.Halted() {
		return step, ErrHalted
	}

	inst := m.Program[m.IP]
	step.IP = m.IP
	step.Inst = inst

	switch inst {

	case programs.MoveRight:
		m.DP++
		m.Tape.Touch(m.DP)
		m.IP++

	case programs.MoveLeft:
		m.DP--
		m.Tape.Touch(m.DP)
		m.IP++

	case programs.IncCell:
		m.Tape.Inc(m.DP)
		m.IP++

	case programs.DecCell:
		m.Tape.Dec(m.DP)
		m.IP++

	case programs.OutputCell:
		if err := m.write(m.Tape.Get(m.DP)); err != nil {
			return step, err
		}
		m.IP++

	case programs.InputCell:
		b, err := m.input.ReadByte()
		if errors.Is(err, io.EOF) {
			b = 0
		} else if err != nil {
			return step, fmt.Errorf("read input: %w", err)
		}
		m.Tape.Set(m.DP, b)
		m.IP++

	case programs.LoopOpen:
		m.IP++
		if m.Tape.Get(m.DP) != 0 {
			break
		}
		if err := m.skipForward(); err != nil {
			return step, err
		}

	case programs.LoopClose:
		if m.Tape.Get(m.DP) == 0 {
			m.IP++
			break
		}
		if err := m.jumpBackward(); err != nil {
			return step, err
		}

	default:
		return step, fmt.Errorf("bad instruction %v at %d", inst, m.IP)
	}

	step.DP = m.DP
	step.Cell = m.Tape.Get(m.DP)
	return step, nil
}

// skipForward moves IP from just after a LoopOpen to just after its matching LoopClose.
func (m *Machine) skipForward() error {
	depth := 1
	for depth != 0 {
		if m.IP >= len(m.Program) {
			return fmt.Errorf("%w: no ']' closes loop", programs.ErrUnbalanced)
		}
		switch m.Program[m.IP] {
		case programs.LoopOpen:
			depth++
		case programs.LoopClose:
			depth--
		}
		m.IP++
	}
	return nil
}

// jumpBackward moves IP from a LoopClose to the first body instruction of its matching LoopOpen.
func (m *Machine) jumpBackward() error {
	pos := m.IP - 1
	depth := 1
	for {
		if pos < 0 {
			return fmt.Errorf("%w: no '[' opens loop closed at %d", programs.ErrUnbalanced, m.IP)
		}
		switch m.Program[pos] {
		case programs.LoopClose:
			depth++
		case programs.LoopOpen:
			depth--
		}
		if depth == 0 {
			break
		}
		pos--
	}
	m.IP = pos + 1
	return nil
}

// write emits the cell as one character code point.
func (m *Machine) write(cell uint8) error {
	m.buf = utf8.AppendRune(m.buf[:0], rune(cell))
	if _, err := m.output.Write(m.buf); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if f, ok := m.output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}
