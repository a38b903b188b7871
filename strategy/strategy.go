package strategy

import (
	"context"
	"errors"
	"fmt"

	"github.com/adamwoolhether/netcall/codec"
	"github.com/adamwoolhether/netcall/logger"
	"github.com/adamwoolhether/netcall/request"
	"github.com/adamwoolhether/netcall/result"
	"github.com/adamwoolhether/netcall/transport"
)

var (
	// ErrUnsupportedMethod is the sentinel wrapped by [UnsupportedMethodError].
	ErrUnsupportedMethod = errors.New("unsupported method")
)

// UnsupportedMethodError is returned by a [Factory] asked for a method with
// no executing strategy.
type UnsupportedMethodError struct {
	Method request.Method
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("%v: can't handle request type %q", ErrUnsupportedMethod, string(e.Method))
}

func (e *UnsupportedMethodError) Unwrap() error {
	return ErrUnsupportedMethod
}

// Strategy executes one category of request and returns the raw response.
type Strategy interface {
	// Name identifies the strategy in logs and traces.
	Name() string

	// Execute sends req and returns the complete response.
	// The response status code is not inspected.
	Execute(ctx context.Context, req request.Request) (*transport.Response, error)
}

// HandleRequest executes req with s and decodes the response body into T.
// Transport and decode failures, and panics, come back as a Failure.
func HandleRequest[T any](ctx context.Context, s Strategy, req request.Request, logFn logger.Func) result.Result[T] {
	return result.SafeCall(ctx, func() (T, error) {
		resp, err := s.Execute(ctx, req)
		if err != nil {
			var zero T
			return zero, err
		}

		return codec.Decode[T](resp.Body)
	}, logFn)
}
