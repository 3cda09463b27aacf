package programs

import "strings"

// Program is the instruction sequence of one run. It is never modified after tokenizing.
type Program []Instruction

// Tokenize maps every instruction character of source to its Instruction, in order.
// All other characters are dropped.
func Tokenize(source string) Program {
	ret := make(Program, 0, len(source))
	for _, r := range source {
		inst, ok := FromRune(r)
		if !ok {
			continue
		}
		ret = append(ret, inst)
	}
	return ret
}

// String renders the program back to source text without comments.
func (p Program) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, inst := range p {
		b.WriteRune(inst.Rune())
	}
	return b.String()
}
