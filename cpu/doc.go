// Package cpu implements the decoder and executor of the register machine.
//
// The machine has four signed 64-bit registers named "0" through "3", and
// three operations (add, sub, put) taking a destination register and a
// source operand. Instruction lines have the form:
//
//	MNEMONIC OPERAND OPERAND // optional comment
//
// where an operand is either a register reference ($0 .. $3) or a
// hexadecimal immediate (#1F).
package cpu
