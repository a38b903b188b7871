package strategy

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"

	"github.com/adamwoolhether/netcall/logger"
	"github.com/adamwoolhether/netcall/request"
	"github.com/adamwoolhether/netcall/transport"
	"github.com/gabriel-vasile/mimetype"
)

// FileField is the form name given to every file part.
const FileField = "file"

// Multipart executes POST requests carrying file attachments as
// multipart/form-data. Form fields come from a key-value body; every
// attachment becomes its own part.
type Multipart struct {
	sender transport.Sender
	logFn  logger.Func
}

// NewMultipart returns a multipart strategy sending through sender.
func NewMultipart(sender transport.Sender, logFn logger.Func) *Multipart {
	return &Multipart{sender: sender, logFn: logFn}
}

func (s *Multipart) Name() string { return "multipart" }

func (s *Multipart) Execute(ctx context.Context, req request.Request) (*transport.Response, error) {
	files := req.Files()
	s.logFn.Log(fmt.Sprintf("processing multipart request with %d file(s)", len(files)))

	fields, ok := formFields(req.Body())
	if !ok {
		s.logFn.Log(fmt.Sprintf("multipart body of type %T is not a key-value mapping; skipped", req.Body()))
	}

	p, err := encodeMultipart(fields, files)
	if err != nil {
		return nil, fmt.Errorf("encoding multipart body: %w", err)
	}

	hr, err := newHTTPRequest(ctx, request.MethodPost, req, p, true)
	if err != nil {
		return nil, err
	}

	return s.sender.Send(hr)
}

// formFields turns a key-value body into form fields. A nil body yields no
// fields; any other shape reports false.
func formFields(body any) (map[string]string, bool) {
	switch v := body.(type) {
	case nil:
		return nil, true
	case map[string]string:
		return v, true
	case map[string]any:
		fields := make(map[string]string, len(v))
		for k, val := range v {
			fields[k] = fmt.Sprint(val)
		}
		return fields, true
	default:
		return nil, false
	}
}

// encodeMultipart writes fields in sorted key order followed by one part per
// file in attachment order.
func encodeMultipart(fields map[string]string, files []request.FileAttachment) (payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return payload{}, err
		}
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+escapeQuotes(FileField)+`"; filename="`+escapeQuotes(f.FileName)+`"`)
		header.Set("Content-Type", contentTypeOf(f))

		part, err := w.CreatePart(header)
		if err != nil {
			return payload{}, err
		}

		if _, err := part.Write(f.Content); err != nil {
			return payload{}, err
		}
	}

	if err := w.Close(); err != nil {
		return payload{}, err
	}

	return payload{body: &buf, contentType: w.FormDataContentType()}, nil
}

// contentTypeOf returns the attachment's declared type, detecting one from
// the content when it is empty.
func contentTypeOf(f request.FileAttachment) string {
	if f.ContentType != "" {
		return f.ContentType
	}

	return mimetype.Detect(f.Content).String()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
