package errors

import (
	"errors"
	"fmt"

	"github.com/mdobak/go-xerrors"
)

func New(msg string) error {
	return xerrors.New(msg)
}

func Newf(format string, a ...any) error {
	return xerrors.New(fmt.Sprintf(format, a...))
}

func WithStack(err error) error {
	return xerrors.New(err)
}

func Wrap(err error, msg string) error {
	return xerrors.New(err, msg)
}

func Wrapf(err error, format string, a ...any) error {
	return xerrors.New(err, fmt.Sprintf(format, a...))
}

// FromPanic turns a value returned by recover into an error carrying the stack
// of the recovering goroutine. An error value keeps its chain.
func FromPanic(r any) error {
	if err, ok := r.(error); ok {
		return xerrors.New(err, "panic")
	}
	return xerrors.New(fmt.Sprintf("panic: %v", r))
}

var Join = xerrors.Append

var Is = errors.Is

var As = errors.As
