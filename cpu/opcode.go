package cpu

import (
	"fmt"
	"strings"
)

// Op is an operation of the instruction set.
type Op int

const (
	OP_ADD = Op(0) // add
	OP_SUB = Op(1) // sub
	OP_PUT = Op(2) // put

	OP_COUNT = 3 // Number of operations.
)

var opNames = [OP_COUNT]string{"add", "sub", "put"}

// String returns the mnemonic of the operation.
func (op Op) String() string {
	if op < 0 || int(op) >= OP_COUNT {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// LookupOp resolves a mnemonic to its operation.
func LookupOp(mnemonic string) (op Op, err error) {
	for n, name := range opNames {
		if name == mnemonic {
			op = Op(n)
			return
		}
	}

	err = ErrUnknownMnemonic(mnemonic)
	return
}

// Arity returns the number of operands required by the operation.
func (op Op) Arity() int {
	switch op {
	case OP_ADD, OP_SUB, OP_PUT:
		return 2
	}
	return 0
}

// Instruction is a decoded operation and its operands, in
// (destination, source) order.
type Instruction struct {
	Op       Op
	Operands []Operand
}

// String returns the instruction in assembly syntax.
func (inst Instruction) String() string {
	words := make([]string, 0, 1+len(inst.Operands))
	words = append(words, inst.Op.String())
	for _, operand := range inst.Operands {
		words = append(words, operand.String())
	}
	return strings.Join(words, " ")
}
