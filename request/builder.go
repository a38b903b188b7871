package request

import (
	"maps"
	"slices"
)

// Builder accumulates the fields of a [Request]. Setters perform no
// validation and may be called in any order; each returns the Builder
// so calls can be chained.
//
// A Builder is not safe for concurrent use. Requests it has already
// returned from Build are never affected by later setter calls.
type Builder struct {
	req Request
}

// NewBuilder returns a Builder holding the default Request.
func NewBuilder() *Builder {
	return &Builder{req: Request{method: MethodGet}}
}

// SetURL sets the target URL.
func (b *Builder) SetURL(url string) *Builder {
	b.req.url = url
	return b
}

// SetMethod sets the HTTP method. Values without a strategy are accepted
// here and rejected at dispatch.
func (b *Builder) SetMethod(method Method) *Builder {
	b.req.method = method
	return b
}

// SetHeaders replaces the header set. Keys keep their case when sent.
func (b *Builder) SetHeaders(headers map[string]string) *Builder {
	b.req.headers = maps.Clone(headers)
	return b
}

// SetBody sets the payload: a string or []byte is sent raw, an io.Reader is
// streamed and any other value is JSON encoded.
func (b *Builder) SetBody(body any) *Builder {
	b.req.body = body
	return b
}

// SetParams replaces the query parameters appended to the URL.
func (b *Builder) SetParams(params map[string]string) *Builder {
	b.req.params = maps.Clone(params)
	return b
}

// SetFiles replaces the file attachments. A non-empty list turns a POST
// into a multipart upload.
func (b *Builder) SetFiles(files ...FileAttachment) *Builder {
	if files == nil {
		b.req.files = nil
		return b
	}

	cp := make([]FileAttachment, len(files))
	for i, f := range files {
		cp[i] = NewFileAttachment(f.FileName, f.ContentType, f.Content)
	}
	b.req.files = cp

	return b
}

// Build returns the accumulated Request.
func (b *Builder) Build() Request {
	r := b.req
	r.headers = maps.Clone(b.req.headers)
	r.params = maps.Clone(b.req.params)
	r.files = slices.Clone(b.req.files)

	return r
}
