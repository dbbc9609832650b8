package report

import (
	"github.com/ezrec/regsim/translate"
)

var f = translate.From

// ErrStyleInvalid is an unknown report style name.
type ErrStyleInvalid string

func (err ErrStyleInvalid) Error() string {
	return f("report style '%v' invalid", string(err))
}
