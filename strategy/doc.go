// Package strategy maps a [request.Request] to the policy that executes it.
//
// A [Factory] picks a [Strategy] by HTTP method and, for POST, by whether
// the request carries file attachments:
//
//	GET                 -> *Get
//	POST without files  -> *Post
//	POST with files     -> *Multipart
//	PUT, PATCH, DELETE  -> *UnsupportedMethodError
//
// [HandleRequest] runs a strategy and decodes the JSON response into T,
// returning a [result.Result]. Errors raised while the request is in flight
// or while decoding never escape it.
package strategy
