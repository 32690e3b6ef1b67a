package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code
	Message string

	cause error
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Wrap attaches the underlying cause so it stays reachable through errors.Is
// and errors.As.
func Wrap(code Code, cause error, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...), cause: cause}
}

func (e Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}

	return e.Message
}

func (e Error) Unwrap() error {
	return e.cause
}

// Is matches any Error carrying the same code, so callers can test against a
// bare Error{Code: ...}.
func (e Error) Is(target error) bool {
	var t Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Code == e.Code
}

// CodeOf returns the code of the first Error in err's chain, or Unknown's code.
func CodeOf(err error) Code {
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}

	return Unknown.Code
}
