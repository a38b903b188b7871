package netcall

import (
	"errors"
	"log/slog"

	"github.com/adamwoolhether/netcall/logger"
	"github.com/adamwoolhether/netcall/transport"
	"go.opentelemetry.io/otel/trace"
)

// Option defines optional settings for [New].
type Option func(*options) error
type options struct {
	logFn         logger.Func
	slog          *slog.Logger
	sender        transport.Sender
	transportOpts []transport.Option
	tracer        trace.TracerProvider
}

// WithLogger sets the callback receiving request log lines.
func WithLogger(logFn logger.Func) Option {
	return func(o *options) error {
		if logFn == nil {
			return errors.New("logger must not be nil")
		}
		o.logFn = logFn
		return nil
	}
}

// WithSlogLogger routes request log lines, and transport cleanup errors,
// through l.
func WithSlogLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return errors.New("slog logger must not be nil")
		}
		o.slog = l
		o.logFn = logger.FromSlog(l)
		return nil
	}
}

// WithTransportOptions configures the default transport.
// Ignored when WithSender is also supplied.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(o *options) error {
		o.transportOpts = append(o.transportOpts, opts...)
		return nil
	}
}

// WithSender replaces the default transport entirely.
func WithSender(s transport.Sender) Option {
	return func(o *options) error {
		if s == nil {
			return errors.New("sender must not be nil")
		}
		o.sender = s
		return nil
	}
}

// WithTracerProvider sets the provider used to trace each request.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) error {
		if tp == nil {
			return errors.New("tracer provider must not be nil")
		}
		o.tracer = tp
		return nil
	}
}
