// Package netcall wires a transport, logger and strategy factory into a
// ready-to-use [client.Client].
//
// The returned client is an explicit handle: keep it and pass it to the code
// that makes requests. There is no package-level instance.
//
//	c, err := netcall.New(
//		netcall.WithTransportOptions(transport.WithTimeout(10 * time.Second)),
//	)
//	res, err := client.MakeRequest[User](ctx, c, func(b *request.Builder) request.Request {
//		return b.SetURL("https://api.example.com/users/1").Build()
//	})
package netcall

import (
	"fmt"

	"github.com/adamwoolhether/netcall/client"
	"github.com/adamwoolhether/netcall/logger"
	"github.com/adamwoolhether/netcall/strategy"
	"github.com/adamwoolhether/netcall/transport"
)

// New instantiates a new *client.Client with the provided options.
// If not specified, a console logger and a default transport are used.
func New(optFns ...Option) (*client.Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	logFn := opts.logFn
	if logFn == nil {
		logFn = logger.Console()
	}

	sender := opts.sender
	if sender == nil {
		trOpts := opts.transportOpts
		if opts.slog != nil {
			trOpts = append([]transport.Option{transport.WithLogger(opts.slog)}, trOpts...)
		}

		tr, err := transport.New(trOpts...)
		if err != nil {
			return nil, fmt.Errorf("configuring transport: %w", err)
		}
		sender = tr
	}

	clientOpts := []client.Option{client.WithLogger(logFn)}
	if opts.tracer != nil {
		clientOpts = append(clientOpts, client.WithTracerProvider(opts.tracer))
	}

	c, err := client.New(strategy.NewFactory(sender, logFn), clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("configuring client: %w", err)
	}

	return c, nil
}
