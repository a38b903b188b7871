// Package result provides the success/failure value returned by every
// request and the SafeCall boundary that produces it.
package result

import (
	"errors"
	"fmt"
)

// ErrUnknown is stored by a Failure constructed without an error.
var ErrUnknown = errors.New("unknown error")

// Result holds either a value of type T or the error that prevented it.
// It is never partially populated.
type Result[T any] struct {
	value T
	err   error
}

// Success wraps v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure wraps err. A nil err is replaced with [ErrUnknown].
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnknown
	}

	return Result[T]{err: err}
}

// IsSuccess reports whether r holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether r holds an error.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the held value and true on success, or the zero value and
// false on failure.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}

	return r.value, true
}

// Err returns the failure cause, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks r into the conventional value, error pair.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}

	return r.value, nil
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Failure(%v)", r.err)
	}

	return fmt.Sprintf("Success(%+v)", r.value)
}
