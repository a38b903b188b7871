// Package client provides the public entry point for describing and
// executing HTTP requests.
//
// # Building a Client
//
// Most callers use [github.com/adamwoolhether/netcall.New], which wires a
// transport and strategy factory. A Client can also be built directly from
// any [strategy.Factory]:
//
//	c, err := client.New(factory, client.WithLogger(logger.Console()))
//	if err != nil {
//		return err
//	}
//
// # Making Requests
//
// [MakeRequest] configures a fresh [request.Builder], picks a strategy for
// the built request and decodes the JSON response into T:
//
//	res, err := client.MakeRequest[User](ctx, c, func(b *request.Builder) request.Request {
//		return b.SetURL("https://api.example.com/users/1").Build()
//	})
//	if err != nil {
//		// unsupported method or cancelled context
//	}
//	user, err := res.Get()
//
// Expected failures such as a refused connection or an undecodable body are
// reported through the [result.Result], never as the second return value.
//
// # Response Types
//
// Decoding ignores unknown fields and leaves absent ones at their zero value.
// Tag the fields a response must carry with `validate:"required"` so that an
// error body of a different shape fails instead of decoding to zero values:
//
//	type User struct {
//		ID   string `json:"id" validate:"required"`
//		Name string `json:"name"`
//	}
package client
