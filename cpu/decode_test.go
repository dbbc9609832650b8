package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("put $0 #1", StripComment("put $0 #1 // set reg 0"))
	assert.Equal("put $0 #1", StripComment("  put $0 #1  "))
	assert.Equal("", StripComment("// nothing"))
	assert.Equal("add $0 $1", StripComment("add $0 $1// a // b"))
	assert.Equal("", StripComment(""))
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		inst Instruction
	}){
		{"add $0 $1", Instruction{OP_ADD, []Operand{Register(REG_0), Register(REG_1)}}},
		{"sub $3 #ff", Instruction{OP_SUB, []Operand{Register(REG_3), Immediate(0xff)}}},
		{"put $2 #1F", Instruction{OP_PUT, []Operand{Register(REG_2), Immediate(0x1f)}}},
		{"put #5 $0", Instruction{OP_PUT, []Operand{Immediate(5), Register(REG_0)}}},
		{"\tput $1 #2\t", Instruction{OP_PUT, []Operand{Register(REG_1), Immediate(2)}}},
	}

	for _, entry := range table {
		inst, err := Decode(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.inst, inst, entry.line)
	}
}

func TestDecode_Comment(t *testing.T) {
	assert := assert.New(t)

	plain, err := Decode("put $0 #1")
	assert.NoError(err)

	commented, err := Decode("put $0 #1 // set reg 0")
	assert.NoError(err)

	assert.Equal(plain, commented)
}

func TestDecode_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"xyz $0 $1", ErrUnknownMnemonic("xyz")},
		{"ADD $0 $1", ErrUnknownMnemonic("ADD")},
		{"add $0", ErrOperandCount{Required: 2, Found: 1}},
		{"add", ErrOperandCount{Required: 2, Found: 0}},
		{"add $0 $1 $2", ErrOperandCount{Required: 2, Found: 3}},
		{"put $9 #1", ErrUnknownRegister("9")},
		{"put $0 #", ErrMalformedImmediate("")},
		{"put $0 #0x1", ErrMalformedImmediate("0x1")},
		{"put $0 r1", ErrOperandSyntax("r")},
		{"   ", ErrMnemonicMissing},
		{"// only a comment", ErrMnemonicMissing},
		// The first failing operand aborts the decode.
		{"put $7 #zz", ErrUnknownRegister("7")},
	}

	for _, entry := range table {
		inst, err := Decode(entry.line)
		assert.Equal(entry.err, err, entry.line)
		assert.Equal(Instruction{}, inst, entry.line)
	}
}

func TestDecode_StrictSpaces(t *testing.T) {
	assert := assert.New(t)

	// Tokens are split on single spaces: a double space yields an empty
	// token, which is an operand syntax error.
	_, err := Decode("add  $0")
	assert.Equal(ErrOperandSyntax(""), err)

	_, err = Decode("put $0  #1")
	assert.Equal(ErrOperandCount{Required: 2, Found: 3}, err)

	_, err = Decode("put  $0 #1")
	assert.Equal(ErrOperandCount{Required: 2, Found: 3}, err)

	_, err = Decode("add $0\t$1")
	assert.Equal(ErrOperandCount{Required: 2, Found: 1}, err)
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	inst, err := Decode("sub $1 #-1a // x")
	assert.NoError(err)
	assert.Equal("sub $1 #-1A", inst.String())

	inst, err = Decode("add $0 $3")
	assert.NoError(err)
	assert.Equal("add $0 $3", inst.String())
}
