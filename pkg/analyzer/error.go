package analyzer

import (
	"runtime/debug"
)

// Error is the single failure type surfaced by providers. It carries the
// root cause and the stack captured at wrap time. There is no partial
// success: a failed analysis yields no page records.
type Error struct {
	Cause error
	Trace string
}

func WrapError(cause error) *Error {
	return &Error{
		Cause: cause,
		Trace: string(debug.Stack()),
	}
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return "analyze failed"
	}

	return "analyze failed: " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}
