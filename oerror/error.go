package oerror

import "fmt"

// Error is an error raised by one of the outer surfaces of aimtrace, such as settings or scene
// loading. The frame path itself never produces errors.
type Error struct {
	msg   string
	cause error
}

// New returns a new Error with the message formatted from the format and args given. If the last
// argument is an error, it is kept as the cause of the Error and can be retrieved using errors.Unwrap.
func New(format string, args ...any) *Error {
	e := &Error{msg: fmt.Sprintf(format, args...)}
	if len(args) > 0 {
		if err, ok := args[len(args)-1].(error); ok {
			e.cause = err
		}
	}
	return e
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}
