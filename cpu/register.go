package cpu

import (
	"fmt"
	"iter"
)

// Reg is a register index.
type Reg int

const (
	REG_0 = Reg(0) // 0
	REG_1 = Reg(1) // 1
	REG_2 = Reg(2) // 2
	REG_3 = Reg(3) // 3

	REG_COUNT = 4 // Number of registers in the file.
)

var regNames = [REG_COUNT]string{"0", "1", "2", "3"}

// String returns the register name.
func (reg Reg) String() string {
	if reg < 0 || int(reg) >= REG_COUNT {
		return fmt.Sprintf("Reg(%d)", int(reg))
	}
	return regNames[reg]
}

// LookupReg resolves a register name to its index.
func LookupReg(name string) (reg Reg, err error) {
	for n, reg_name := range regNames {
		if reg_name == name {
			reg = Reg(n)
			return
		}
	}

	err = ErrUnknownRegister(name)
	return
}

// RegisterFile is the fixed bank of signed 64-bit registers.
// Arithmetic on register values wraps around on overflow.
type RegisterFile [REG_COUNT]int64

// Get the value of a register.
func (rf *RegisterFile) Get(reg Reg) int64 {
	return rf[reg]
}

// Set the value of a register.
func (rf *RegisterFile) Set(reg Reg, value int64) {
	rf[reg] = value
}

// Reset zeroes all registers.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
}

// All iterates over the registers in ascending name order.
func (rf *RegisterFile) All() iter.Seq2[Reg, int64] {
	return func(yield func(Reg, int64) bool) {
		for n, value := range rf {
			if !yield(Reg(n), value) {
				return
			}
		}
	}
}
