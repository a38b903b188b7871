// Package transport executes fully assembled [net/http] requests and reads
// the complete response body.
//
// # Building a Transport
//
// Use [New] with functional options:
//
//	tr, err := transport.New(
//		transport.WithTimeout(10 * time.Second),
//		transport.WithUserAgent("myapp/1.0"),
//	)
//
// Status codes are reported but never interpreted; deciding whether a
// response is usable is left to the caller. Outgoing requests carry the
// trace context of the request's [context.Context] using the global
// OpenTelemetry propagator.
package transport
