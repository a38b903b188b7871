package transport

import (
	"errors"
	"fmt"
)

// ErrTransport is the sentinel wrapped by every [Error].
var ErrTransport = errors.New("transport failure")

// Error reports a failure while a request was in flight.
type Error struct {
	Op  string
	URL string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrTransport, e.Op, e.URL, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *Error) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
