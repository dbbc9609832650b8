package cpu

import (
	"fmt"
	"log"
)

// Cpu is the simulation context for the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	TrueSub bool // If set, 'sub' subtracts instead of adding.

	Register RegisterFile // Register bank.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with all registers zeroed.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Reset the CPU state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Ticks = 0
}

// String returns the current register state, one register per line.
func (cpu *Cpu) String() (text string) {
	for reg, value := range cpu.Register.All() {
		text += fmt.Sprintf("% 3s: %v\n", reg.String(), value)
	}

	return
}

// Perform decodes and executes a single instruction line.
// On error the register state is unchanged.
func (cpu *Cpu) Perform(line string) (err error) {
	inst, err := Decode(line)
	if err != nil {
		return
	}

	err = cpu.Execute(inst)

	return
}

// Execute a decoded instruction.
// On error the register state is unchanged.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	if inst.Op.Arity() == 0 {
		err = ErrOpInvalid
		return
	}

	if len(inst.Operands) != inst.Op.Arity() {
		err = ErrOperandCount{Required: inst.Op.Arity(), Found: len(inst.Operands)}
		return
	}

	dst := inst.Operands[0]
	src := inst.Operands[1]

	if dst.Kind != OPERAND_REGISTER {
		err = ErrOperandKind{Operand: dst, Expected: OPERAND_REGISTER}
		return
	}

	a := dst.Get(&cpu.Register)
	b := src.Get(&cpu.Register)

	var value int64
	switch inst.Op {
	case OP_ADD:
		value = a + b
	case OP_SUB:
		// Historically 'sub' adds its source.
		if cpu.TrueSub {
			value = a - b
		} else {
			value = a + b
		}
	case OP_PUT:
		value = b
	default:
		err = ErrOpInvalid
		return
	}

	if cpu.Verbose {
		log.Printf("%03d: %v ; $%v = %v", cpu.Ticks, inst, dst.Reg, value)
	}

	cpu.Register.Set(dst.Reg, value)
	cpu.Ticks++

	return
}
