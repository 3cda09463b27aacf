package machines

import (
	"bufio"
	"errors"
	"io"

	"github.com/reusee/bfvm/programs"
	"github.com/reusee/bfvm/tapes"
)

var ErrHalted = errors.New("machine halted")

// Machine executes one Program against its own Tape.
type Machine struct {
	Program programs.Program
	Tape    *tapes.Tape
	// IP indexes the next instruction, len(Program) means halted
	IP int
	// DP addresses the current cell
	DP int

	input  io.ByteReader
	output io.Writer
	buf    []byte
}

// New creates a machine at IP 0, DP 0 with a fresh tape.
// Output is flushed after every write when it has a Flush() error method.
func New(program programs.Program, input io.Reader, output io.Writer) *Machine {
	byteReader, ok := input.(io.ByteReader)
	if !ok {
		byteReader = bufio.NewReader(input)
	}
	return &Machine{
		Program: program,
		Tape:    tapes.New(),
		input:   byteReader,
		output:  output,
		buf:     make([]byte, 0, 4),
	}
}

func (m *Machine) Halted() bool {
	return m.IP >= len(m.Program)
}

// Step records one executed instruction.
type Step struct {
	IP   int
	Inst programs.Instruction
	// DP and Cell after execution
	DP   int
	Cell uint8
}
