// Package program loads instruction listings for the simulator.
package program

import (
	"bufio"
	"io"
	"iter"
	"log"
	"os"
	"strings"
)

// Line is a single line of program text.
type Line struct {
	LineNo int    // 1-based line number in the source.
	Text   string // Line text, without the line terminator.
}

// Program is an ordered listing of instruction lines.
type Program struct {
	Verbose bool // If set, logs each line as it is loaded.

	Listing []Line
}

// FromStrings creates a program from a list of lines.
func FromStrings(lines ...string) (prog *Program) {
	prog = &Program{}
	for n, text := range lines {
		prog.Listing = append(prog.Listing, Line{LineNo: n + 1, Text: text})
	}

	return
}

// Load reads a program from an input stream.
func (prog *Program) Load(input io.Reader) (err error) {
	scanner := bufio.NewScanner(input)

	prog.Listing = prog.Listing[:0]

	var lineno int
	for scanner.Scan() {
		lineno += 1
		text := strings.TrimRight(scanner.Text(), "\r")

		if prog.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		prog.Listing = append(prog.Listing, Line{LineNo: lineno, Text: text})
	}

	err = scanner.Err()

	return
}

// Open loads a program from a file path, or from stdin if path is "-".
func Open(path string, verbose bool) (prog *Program, err error) {
	prog = &Program{Verbose: verbose}

	if path == "-" {
		err = prog.Load(os.Stdin)
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	err = prog.Load(inf)

	return
}

// Lines iterates over the line numbers and texts of the program.
func (prog *Program) Lines() iter.Seq2[int, string] {
	return func(yield func(lineno int, text string) bool) {
		for _, line := range prog.Listing {
			if !yield(line.LineNo, line.Text) {
				return
			}
		}
	}
}

// Len returns the number of lines in the program.
func (prog *Program) Len() int {
	return len(prog.Listing)
}
