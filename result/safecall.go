package result

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/adamwoolhether/netcall/logger"
)

// Messages written by SafeCall through its logging callback.
const (
	msgSucceeded = "request succeeded"
	msgFailed    = "request failed: "
	msgNoDetail  = "unknown error"
)

// PanicError carries a panic recovered inside SafeCall.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("PANIC [%v]", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

// SafeCall runs fn and converts its outcome into a Result. It is the single
// place where errors and panics raised during request execution turn into
// values.
//
// Success is logged as a notice and failure is logged with the error message.
// When ctx has been cancelled and fn returned the context's error, nothing is
// logged and the Failure carries that error so callers can tell cancellation
// apart with [IsCancelled].
func SafeCall[T any](ctx context.Context, fn func() (T, error), logFn logger.Func) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			err := &PanicError{Value: rec, Stack: debug.Stack()}
			logFn.Log(msgFailed + err.Error())
			res = Failure[T](err)
		}
	}()

	v, err := fn()
	if err != nil {
		if cerr := ctx.Err(); cerr != nil && errors.Is(err, cerr) {
			return Failure[T](err)
		}

		logFn.Log(msgFailed + message(err))
		return Failure[T](err)
	}

	logFn.Log(msgSucceeded)

	return Success(v)
}

// IsCancelled reports whether err stems from a cancelled or expired context.
func IsCancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func message(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}

	return msgNoDetail
}
