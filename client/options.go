package client

import (
	"errors"

	"github.com/adamwoolhether/netcall/logger"
	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring a [Client] via [New].
type Option func(*options) error
type options struct {
	logFn  logger.Func
	tracer trace.TracerProvider
}

// WithLogger sets the callback receiving request log lines.
// Defaults to [logger.Console].
func WithLogger(logFn logger.Func) Option {
	return func(o *options) error {
		if logFn == nil {
			return errors.New("logger must not be nil")
		}
		o.logFn = logFn
		return nil
	}
}

// WithTracerProvider sets the provider used to trace each request.
// Defaults to the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) error {
		if tp == nil {
			return errors.New("tracer provider must not be nil")
		}
		o.tracer = tp
		return nil
	}
}
