package strategy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/adamwoolhether/netcall/codec"
	"github.com/adamwoolhether/netcall/request"
)

const headerContentType = "Content-Type"

// payload is an encoded request body along with the content type it implies.
type payload struct {
	body        io.Reader
	contentType string
}

// encodeBody converts a request body into a reader. Strings and byte slices
// are sent as given, readers are streamed and anything else is JSON encoded.
func encodeBody(body any) (payload, error) {
	switch v := body.(type) {
	case nil:
		return payload{}, nil
	case string:
		return payload{body: strings.NewReader(v), contentType: "text/plain; charset=utf-8"}, nil
	case []byte:
		return payload{body: bytes.NewReader(v), contentType: "application/octet-stream"}, nil
	case io.Reader:
		return payload{body: v}, nil
	default:
		b, err := codec.Encode(v)
		if err != nil {
			return payload{}, err
		}
		return payload{body: bytes.NewReader(b), contentType: "application/json"}, nil
	}
}

// newHTTPRequest assembles the outgoing request shared by every strategy.
// Caller headers are copied verbatim, keeping key case. The payload content
// type is applied only when the caller did not supply one, unless
// forceContentType is set, in which case caller values are dropped.
func newHTTPRequest(ctx context.Context, method request.Method, req request.Request, p payload, forceContentType bool) (*http.Request, error) {
	target, err := withParams(req)
	if err != nil {
		return nil, err
	}

	hr, err := http.NewRequestWithContext(ctx, method.String(), target, p.body)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	headers := req.Headers()
	var callerContentType bool
	for _, k := range req.HeaderKeys() {
		if strings.EqualFold(k, headerContentType) {
			if forceContentType {
				continue
			}
			callerContentType = true
		}
		hr.Header[k] = append(hr.Header[k], headers[k])
	}

	if p.contentType != "" && !callerContentType {
		hr.Header.Set(headerContentType, p.contentType)
	}

	return hr, nil
}

// withParams appends the request's query parameters to its URL, keeping any
// query already present.
func withParams(req request.Request) (string, error) {
	keys := req.ParamKeys()
	if len(keys) == 0 {
		return req.URL(), nil
	}

	u, err := url.Parse(req.URL())
	if err != nil {
		return "", fmt.Errorf("parsing url: %w", err)
	}

	params := req.Params()
	var sb strings.Builder
	sb.WriteString(u.RawQuery)
	for _, k := range keys {
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(params[k]))
	}
	u.RawQuery = sb.String()

	return u.String(), nil
}
