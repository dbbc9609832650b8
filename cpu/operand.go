package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// OperandKind is the type of a decoded operand.
type OperandKind int

const (
	OPERAND_REGISTER  = OperandKind(0) // register
	OPERAND_IMMEDIATE = OperandKind(1) // immediate
)

// String returns the operand kind name.
func (kind OperandKind) String() string {
	switch kind {
	case OPERAND_REGISTER:
		return "register"
	case OPERAND_IMMEDIATE:
		return "immediate"
	}
	return fmt.Sprintf("OperandKind(%d)", int(kind))
}

const (
	SIGIL_REGISTER  = '$' // Register reference prefix.
	SIGIL_IMMEDIATE = '#' // Hexadecimal immediate prefix.
)

// Operand is a decoded instruction argument: a register reference, or an
// immediate value.
type Operand struct {
	Kind  OperandKind
	Reg   Reg   // Valid if Kind == OPERAND_REGISTER
	Value int64 // Valid if Kind == OPERAND_IMMEDIATE
}

// Register creates a register operand.
func Register(reg Reg) Operand {
	return Operand{Kind: OPERAND_REGISTER, Reg: reg}
}

// Immediate creates an immediate operand.
func Immediate(value int64) Operand {
	return Operand{Kind: OPERAND_IMMEDIATE, Value: value}
}

// ParseOperand resolves a single token into an Operand.
func ParseOperand(token string) (op Operand, err error) {
	if len(token) == 0 {
		err = ErrOperandSyntax("")
		return
	}

	rest := token[1:]

	switch token[0] {
	case SIGIL_REGISTER:
		var reg Reg
		reg, err = LookupReg(rest)
		if err != nil {
			return
		}
		op = Register(reg)
	case SIGIL_IMMEDIATE:
		var value int64
		value, err = parseHex(rest)
		if err != nil {
			return
		}
		op = Immediate(value)
	default:
		err = ErrOperandSyntax(token[:1])
	}

	return
}

// parseHex parses a hexadecimal immediate. Unsigned values of up to 64 bits
// are taken as two's complement bit patterns.
func parseHex(text string) (value int64, err error) {
	if strings.HasPrefix(text, "-") {
		value, err = strconv.ParseInt(text, 16, 64)
		if err != nil {
			err = ErrMalformedImmediate(text)
		}
		return
	}

	u64, err := strconv.ParseUint(text, 16, 64)
	if err != nil {
		err = ErrMalformedImmediate(text)
		return
	}

	value = int64(u64)
	return
}

// Get the current value of the operand.
func (op Operand) Get(rf *RegisterFile) int64 {
	if op.Kind == OPERAND_REGISTER {
		return rf.Get(op.Reg)
	}
	return op.Value
}

// String returns the operand in instruction syntax.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REGISTER:
		return fmt.Sprintf("%c%v", SIGIL_REGISTER, op.Reg)
	case OPERAND_IMMEDIATE:
		if op.Value < 0 {
			return fmt.Sprintf("%c-%X", SIGIL_IMMEDIATE, uint64(-op.Value))
		}
		return fmt.Sprintf("%c%X", SIGIL_IMMEDIATE, op.Value)
	}
	return fmt.Sprintf("Operand(%d)", int(op.Kind))
}
