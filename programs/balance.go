package programs

import (
	"errors"
	"fmt"
)

var ErrUnbalanced = errors.New("mismatched brackets in source code")

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type BalanceError struct {
	// Pos of the unmatched ']' or of the outermost unclosed '['
	Pos Pos
	// Unclosed is the number of '[' left open at end of source, zero for a stray ']'
	Unclosed int
}

func (b *BalanceError) Error() string {
	if b.Unclosed > 0 {
		return fmt.Sprintf("%s: %d unclosed '[', first at %s", ErrUnbalanced.Error(), b.Unclosed, b.Pos)
	}
	return fmt.Sprintf("%s: unmatched ']' at %s", ErrUnbalanced.Error(), b.Pos)
}

func (b *BalanceError) Unwrap() error {
	return ErrUnbalanced
}

// CheckBalance scans source with a running bracket counter.
// It fails as soon as the counter goes negative, or when it ends nonzero.
func CheckBalance(source string) error {
	pos := Pos{
		Line:   1,
		Column: 1,
	}
	var opens []Pos
	for _, r := range source {
		switch r {
		case '[':
			opens = append(opens, pos)
		case ']':
			if len(opens) == 0 {
				return &BalanceError{
					Pos: pos,
				}
			}
			opens = opens[:len(opens)-1]
		}
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	if len(opens) > 0 {
		return &BalanceError{
			Pos:      opens[0],
			Unclosed: len(opens),
		}
	}
	return nil
}
