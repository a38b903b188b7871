// Package request describes a single outbound HTTP call.
//
// A [Request] is an immutable value produced by a [Builder]:
//
//	req := request.NewBuilder().
//		SetURL("https://api.example.com/v1/users").
//		SetMethod(request.MethodPost).
//		SetHeaders(map[string]string{"X-Api-Key": "secret"}).
//		SetBody(map[string]string{"name": "gopher"}).
//		Build()
//
// Attaching one or more [FileAttachment] values via [Builder.SetFiles] marks
// the request as a multipart upload.
package request
