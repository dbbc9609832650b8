package cpu

import (
	"strings"
)

const (
	COMMENT = "//" // Start of a trailing comment.
)

// StripComment removes any trailing comment, and surrounding whitespace.
func StripComment(line string) string {
	line, _, _ = strings.Cut(line, COMMENT)
	return strings.TrimSpace(line)
}

// Decode parses an instruction line into an Instruction.
//
// Tokens are separated by single spaces; runs of spaces produce empty
// tokens, which are rejected as operand syntax errors. Decode is atomic:
// either every token resolves, or an error is returned.
func Decode(line string) (inst Instruction, err error) {
	line = StripComment(line)
	if len(line) == 0 {
		err = ErrMnemonicMissing
		return
	}

	words := strings.Split(line, " ")

	op, err := LookupOp(words[0])
	if err != nil {
		return
	}

	args := words[1:]
	if op.Arity() != len(args) {
		err = ErrOperandCount{Required: op.Arity(), Found: len(args)}
		return
	}

	operands := make([]Operand, 0, len(args))
	for _, word := range args {
		var operand Operand
		operand, err = ParseOperand(word)
		if err != nil {
			return
		}
		operands = append(operands, operand)
	}

	inst = Instruction{Op: op, Operands: operands}

	return
}
