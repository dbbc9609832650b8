package emulator

import (
	"github.com/ezrec/regsim/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrExpression is an expression that did not evaluate to a value.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid expression", string(err))
}

// ErrAssertion is an expression that evaluated to false.
type ErrAssertion string

func (err ErrAssertion) Error() string {
	return f("assertion '%v' failed", string(err))
}
