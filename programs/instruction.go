package programs

import "fmt"

type Instruction uint8

const (
	MoveRight Instruction = iota + 1
	MoveLeft
	IncCell
	DecCell
	OutputCell
	InputCell
	LoopOpen
	LoopClose
)

var instructionRunes = [...]rune{
	MoveRight:  '>',
	MoveLeft:   '<',
	IncCell:    '+',
	DecCell:    '-',
	OutputCell: '.',
	InputCell:  ',',
	LoopOpen:   '[',
	LoopClose:  ']',
}

var instructionNames = [...]string{
	MoveRight:  "MoveRight",
	MoveLeft:   "MoveLeft",
	IncCell:    "IncCell",
	DecCell:    "DecCell",
	OutputCell: "OutputCell",
	InputCell:  "InputCell",
	LoopOpen:   "LoopOpen",
	LoopClose:  "LoopClose",
}

// FromRune returns the instruction denoted by r. Any other rune is a comment.
func FromRune(r rune) (Instruction, bool) {
	switch r {
	case '>':
		return MoveRight, true
	case '<':
		return MoveLeft, true
	case '+':
		return IncCell, true
	case '-':
		return DecCell, true
	case '.':
		return OutputCell, true
	case ',':
		return InputCell, true
	case '[':
		return LoopOpen, true
	case ']':
		return LoopClose, true
	}
	return 0, false
}

func (i Instruction) Valid() bool {
	return i >= MoveRight && i <= LoopClose
}

func (i Instruction) Rune() rune {
	if !i.Valid() {
		return '?'
	}
	return instructionRunes[i]
}

func (i Instruction) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Instruction(%d)", uint8(i))
	}
	return instructionNames[i]
}
