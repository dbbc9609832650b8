// Package report formats the register state of the simulator.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/ezrec/regsim/emulator"
)

// Style is a report output style.
type Style int

const (
	STYLE_AUTO  = Style(0) // auto
	STYLE_PLAIN = Style(1) // plain
	STYLE_TABLE = Style(2) // table
)

var styleNames = map[string]Style{
	"auto":  STYLE_AUTO,
	"plain": STYLE_PLAIN,
	"table": STYLE_TABLE,
}

// String returns the style name.
func (style Style) String() string {
	for name, value := range styleNames {
		if value == style {
			return name
		}
	}
	return fmt.Sprintf("Style(%d)", int(style))
}

// ParseStyle resolves a style name.
func ParseStyle(name string) (style Style, err error) {
	style, ok := styleNames[name]
	if !ok {
		err = ErrStyleInvalid(name)
	}
	return
}

// Writer reports each state to an output stream.
type Writer struct {
	Output io.Writer
	Style  Style
}

// NewWriter creates a report writer. STYLE_AUTO resolves to STYLE_TABLE
// when the output is a terminal, and to STYLE_PLAIN otherwise.
func NewWriter(output io.Writer, style Style) (w *Writer) {
	if style == STYLE_AUTO {
		style = STYLE_PLAIN
		if file, ok := output.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			style = STYLE_TABLE
		}
	}

	w = &Writer{
		Output: output,
		Style:  style,
	}

	return
}

// Report writes the state in the configured style.
func (w *Writer) Report(state emulator.State) (err error) {
	var text string
	switch w.Style {
	case STYLE_TABLE:
		text = Table(state)
	default:
		text = Plain(state)
	}

	_, err = io.WriteString(w.Output, text)

	return
}

// Plain formats the state as one line per register.
func Plain(state emulator.State) (text string) {
	text = "program state:\n"
	for reg, value := range state.Register.All() {
		text += fmt.Sprintf("Reg($%v) -> %d\n", reg, value)
	}

	return
}

// Table formats the state as a table of registers.
func Table(state emulator.State) string {
	tw := table.NewWriter()
	if state.LineNo > 0 {
		tw.SetTitle(fmt.Sprintf("%d: %v", state.LineNo, state.Line))
	}
	tw.AppendHeader(table.Row{"Register", "Decimal", "Hex"})
	for reg, value := range state.Register.All() {
		tw.AppendRow(table.Row{"$" + reg.String(), value, fmt.Sprintf("%#x", uint64(value))})
	}

	return tw.Render() + "\n"
}
