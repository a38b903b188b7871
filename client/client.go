package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/adamwoolhether/netcall/logger"
	"github.com/adamwoolhether/netcall/request"
	"github.com/adamwoolhether/netcall/result"
	"github.com/adamwoolhether/netcall/strategy"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/adamwoolhether/netcall/client"

// Client dispatches built requests to strategies. It holds no mutable state
// and is safe for concurrent use.
type Client struct {
	factory strategy.Factory
	logFn   logger.Func
	tracer  trace.Tracer
}

// New builds a Client on top of factory.
func New(factory strategy.Factory, optFns ...Option) (*Client, error) {
	if factory == nil {
		return nil, errors.New("factory must not be nil")
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	c := &Client{
		factory: factory,
		logFn:   logger.Console(),
	}

	if opts.logFn != nil {
		c.logFn = opts.logFn
	}

	tp := opts.tracer
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	c.tracer = tp.Tracer(tracerName)

	return c, nil
}

// BuildFunc configures the supplied builder and returns the finished request.
type BuildFunc func(b *request.Builder) request.Request

// MakeRequest builds a request with build, executes it and decodes the JSON
// response into T.
//
// build is invoked exactly once; the request it returns drives both strategy
// selection and execution. The returned error is non-nil only when the
// request could not be dispatched (its method has no strategy) or ctx was
// cancelled. Every other failure is carried by the Result.
//
// Status codes are not inspected. A body that is empty, is not a single JSON
// value, or does not fit T fails decoding. Unknown fields are ignored, and a
// field absent from the body only fails decoding when T tags it with
// `validate:"required"`; untagged fields are left at their zero value.
func MakeRequest[T any](ctx context.Context, c *Client, build BuildFunc) (result.Result[T], error) {
	b := request.NewBuilder()

	var req request.Request
	if build != nil {
		req = build(b)
	} else {
		req = b.Build()
	}

	callID := uuid.NewString()
	method := req.Method()

	ctx, span := c.tracer.Start(ctx, "netcall.MakeRequest",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method.String()),
			attribute.String("url.full", req.URL()),
			attribute.String("netcall.call_id", callID),
			attribute.Int("netcall.files", len(req.Files())),
		),
	)
	defer span.End()

	s, err := c.factory.CreateFor(method, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result.Failure[T](err), err
	}
	span.SetAttributes(attribute.String("netcall.strategy", s.Name()))

	c.logFn.Log(fmt.Sprintf("%s %s via %s strategy (call %s)", method, req.URL(), s.Name(), callID))

	res := strategy.HandleRequest[T](ctx, s, req, c.logFn)
	if err := res.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if ctx.Err() != nil && result.IsCancelled(err) {
			return res, err
		}
	}

	return res, nil
}
