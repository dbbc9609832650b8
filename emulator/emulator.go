// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives the register machine over a program listing.
package emulator

import (
	"errors"
	"fmt"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/regsim/cpu"
	"github.com/ezrec/regsim/program"
)

// Policy selects what a run does after a line fails.
type Policy int

const (
	POLICY_HALT     = Policy(0) // Stop the run at the first failing line.
	POLICY_CONTINUE = Policy(1) // Log the failure, skip the line, and go on.
)

// String returns the policy name.
func (policy Policy) String() string {
	switch policy {
	case POLICY_HALT:
		return "halt"
	case POLICY_CONTINUE:
		return "continue"
	}
	return fmt.Sprintf("Policy(%d)", int(policy))
}

// State is a snapshot of the machine after a line has executed.
type State struct {
	LineNo   int              // Line number of the executed line.
	Line     string           // Text of the executed line.
	Ticks    int              // Instructions executed so far.
	Register cpu.RegisterFile // Register values.
}

// Reporter receives the machine state after every executed line.
type Reporter interface {
	Report(state State) error
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool             // If set, enables verbose logging.
	*cpu.Cpu                  // Reference to the CPU simulation.
	Program  *program.Program // Reference to the currently running program listing.
	Policy   Policy           // Failure policy for Run.
	Reporter Reporter         // If set, receives the state after each line.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &program.Program{},
	}

	return
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
}

// State returns a snapshot of the current machine state.
func (emu *Emulator) State() State {
	return State{
		Ticks:    emu.Cpu.Ticks,
		Register: emu.Cpu.Register,
	}
}

// Step performs a single line of the program.
// Blank and comment-only lines are skipped, and report done as false.
func (emu *Emulator) Step(lineno int, line string) (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if len(cpu.StripComment(line)) == 0 {
		return
	}

	err = emu.Cpu.Perform(line)
	if err != nil {
		err = &ErrRuntime{LineNo: lineno, Line: line, Err: err}
		return
	}

	done = true

	if emu.Reporter != nil {
		state := emu.State()
		state.LineNo = lineno
		state.Line = line
		err = emu.Reporter.Report(state)
	}

	return
}

// Run performs every line of the current program, in order.
//
// With POLICY_HALT the first failing line stops the run and its error is
// returned. With POLICY_CONTINUE failing lines are logged and skipped, and
// all of their errors are returned joined together.
func (emu *Emulator) Run() (err error) {
	var errs []error

	for lineno, line := range emu.Program.Lines() {
		_, err = emu.Step(lineno, line)
		if err == nil {
			continue
		}

		var runtime_err *ErrRuntime
		if emu.Policy == POLICY_HALT || !errors.As(err, &runtime_err) {
			return
		}

		log.Printf("%v", err)
		errs = append(errs, err)
	}

	err = errors.Join(errs...)

	return
}

// Eval evaluates a Starlark expression over the register state.
// The registers are bound as r0 .. r3, and the tick counter as ticks.
func (emu *Emulator) Eval(expr string) (value starlark.Value, err error) {
	thread := starlark.Thread{Name: "eval"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"ticks": starlark.MakeInt(emu.Cpu.Ticks),
	}
	for reg, val := range emu.Cpu.Register.All() {
		pred["r"+reg.String()] = starlark.MakeInt64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}

	value, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}

	return
}

// Assert evaluates an expression, and fails if it is not true.
func (emu *Emulator) Assert(expr string) (err error) {
	value, err := emu.Eval(expr)
	if err != nil {
		return
	}

	if !bool(value.Truth()) {
		err = ErrAssertion(expr)
		return
	}

	if emu.Verbose {
		log.Printf("assert: %v", expr)
	}

	return
}
