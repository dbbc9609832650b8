package cpu

import (
	"errors"

	"github.com/ezrec/regsim/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrMnemonicMissing = errors.New(f("mnemonic missing"))

	// Execute errors
	ErrOpInvalid = errors.New(f("op invalid"))
)

// ErrUnknownMnemonic is the mnemonic that is not in the instruction set.
type ErrUnknownMnemonic string

func (err ErrUnknownMnemonic) Error() string {
	return f("unknown mnemonic '%v'", string(err))
}

// ErrOperandCount is a mismatch between an operation's arity and the
// number of operand tokens found.
type ErrOperandCount struct {
	Required int
	Found    int
}

func (err ErrOperandCount) Error() string {
	return f("invalid number of operands, require %v have %v", err.Required, err.Found)
}

// ErrOperandSyntax is the unrecognized leading character of an operand token.
type ErrOperandSyntax string

func (err ErrOperandSyntax) Error() string {
	if len(err) == 0 {
		return f("empty operand")
	}
	return f("invalid operand type '%v'", string(err))
}

// ErrUnknownRegister is the name of a register not in the register file.
type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("unknown register '%v'", string(err))
}

// ErrMalformedImmediate is the text of an immediate that is not hexadecimal.
type ErrMalformedImmediate string

func (err ErrMalformedImmediate) Error() string {
	return f("'%v' is not a hexadecimal immediate", string(err))
}

// ErrOperandKind is an operand that resolved to the wrong kind.
type ErrOperandKind struct {
	Operand  Operand
	Expected OperandKind
}

func (err ErrOperandKind) Error() string {
	return f("operand %v is of invalid type (expected %v)", err.Operand.String(), err.Expected.String())
}
