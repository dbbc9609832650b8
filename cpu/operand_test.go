package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		token   string
		operand Operand
		err     error
	}){
		{"$0", Register(REG_0), nil},
		{"$3", Register(REG_3), nil},
		{"$4", Operand{}, ErrUnknownRegister("4")},
		{"$", Operand{}, ErrUnknownRegister("")},
		{"$01", Operand{}, ErrUnknownRegister("01")},
		{"#0", Immediate(0), nil},
		{"#a", Immediate(10), nil},
		{"#7fffffffffffffff", Immediate(math.MaxInt64), nil},
		{"#8000000000000000", Immediate(math.MinInt64), nil},
		{"#-8000000000000000", Immediate(math.MinInt64), nil},
		{"#10000000000000000", Operand{}, ErrMalformedImmediate("10000000000000000")},
		{"#+1", Operand{}, ErrMalformedImmediate("+1")},
		{"#1_0", Operand{}, ErrMalformedImmediate("1_0")},
		{"#-", Operand{}, ErrMalformedImmediate("-")},
		{"0", Operand{}, ErrOperandSyntax("0")},
		{"", Operand{}, ErrOperandSyntax("")},
	}

	for _, entry := range table {
		operand, err := ParseOperand(entry.token)
		assert.Equal(entry.err, err, entry.token)
		assert.Equal(entry.operand, operand, entry.token)
	}
}

func TestOperand_Get(t *testing.T) {
	assert := assert.New(t)

	rf := &RegisterFile{1, 2, 3, 4}

	assert.Equal(int64(3), Register(REG_2).Get(rf))
	assert.Equal(int64(-9), Immediate(-9).Get(rf))
}

func TestOperand_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("$1", Register(REG_1).String())
	assert.Equal("#1F", Immediate(0x1f).String())
	assert.Equal("#-1", Immediate(-1).String())
	assert.Equal("#-8000000000000000", Immediate(math.MinInt64).String())
	assert.Equal("register", OPERAND_REGISTER.String())
	assert.Equal("immediate", OPERAND_IMMEDIATE.String())
}
