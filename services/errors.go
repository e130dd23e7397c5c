package services

import "fmt"

// apiError pairs a caller-facing message with a sentinel for errors.Is,
// without the sentinel text leaking into the message.
type apiError struct {
	msg  string
	kind error
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func wrapErr(kind error, format string, args ...any) error {
	return &apiError{msg: fmt.Sprintf(format, args...), kind: kind}
}
