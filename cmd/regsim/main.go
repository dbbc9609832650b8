// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/regsim/emulator"
	"github.com/ezrec/regsim/program"
	"github.com/ezrec/regsim/report"
)

// exprList collects repeated -x flags.
type exprList []string

func (el *exprList) String() string {
	return strings.Join(*el, ", ")
}

func (el *exprList) Set(value string) error {
	*el = append(*el, value)
	return nil
}

func main() {
	var path string
	var keepGoing bool
	var verbose bool
	var style string
	var trueSub bool
	var asserts exprList

	flag.StringVar(&path, "p", "", "path to program containing instructions to run ('-' for stdin)")
	flag.BoolVar(&keepGoing, "k", false, "Skip lines that fail, instead of halting")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&style, "t", "auto", "State report style: auto, plain, or table")
	flag.BoolVar(&trueSub, "truesub", false, "Make 'sub' subtract instead of add")
	flag.Var(&asserts, "x", "Starlark expression that must hold after the run (repeatable)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(path) == 0 {
		flag.Usage()
		atexit.Exit(2)
	}

	report_style, err := report.ParseStyle(style)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	prog, err := program.Open(path, verbose)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose
	emu.TrueSub = trueSub
	emu.Reporter = report.NewWriter(os.Stdout, report_style)
	if keepGoing {
		emu.Policy = emulator.POLICY_CONTINUE
	}

	atexit.Register(func() {
		if verbose {
			log.Printf("%v: %v instructions executed", path, emu.Ticks)
		}
	})

	emu.Reset()
	err = emu.Run()
	if err != nil {
		if verbose {
			log.Printf("state:\n%v", emu.Cpu.String())
		}
		atexit.Fatalf("%v: %v", path, err)
	}

	for _, expr := range asserts {
		err = emu.Assert(expr)
		if err != nil {
			atexit.Fatalf("%v: %v", path, err)
		}
	}

	atexit.Exit(0)
}
