package transport

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// Sender executes a request and returns its fully read response.
type Sender interface {
	Send(req *http.Request) (*Response, error)
}

// Response is a completed exchange. Body holds the entire payload.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// Transport wraps an *http.Client. It is safe for concurrent use.
type Transport struct {
	c      *http.Client
	logger *slog.Logger
}

// New builds a Transport. Without options it uses a fresh [http.Client]
// on top of [http.DefaultTransport].
func New(optFns ...Option) (*Transport, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying transport option: %w", err)
		}
	}

	hc := &http.Client{}
	if opts.client != nil {
		cpy := *opts.client
		hc = &cpy
	}

	t := &Transport{
		c:      hc,
		logger: slog.Default(),
	}

	if opts.logger != nil {
		t.logger = opts.logger
	}

	if opts.timeout != nil {
		t.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		t.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var rt http.RoundTripper
	switch {
	case opts.rt != nil:
		rt = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		rt = opts.client.Transport
	default:
		rt = http.DefaultTransport
	}
	if opts.userAgent != "" {
		rt = defaultUserAgent{value: opts.userAgent, base: rt}
	}
	t.c.Transport = rt

	return t, nil
}

// Send fires req and reads the whole response body. The status code is
// returned as-is; only failures to exchange or read are errors.
func (t *Transport) Send(req *http.Request) (*Response, error) {
	otel.GetTextMapPropagator().Inject(req.Context(), propagation.HeaderCarrier(req.Header))

	resp, err := t.c.Do(req)
	if err != nil {
		return nil, &Error{Op: "send", URL: redact(req), Err: err}
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			t.logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			t.logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: "read body", URL: redact(req), Err: err}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// redact drops the query string, which may carry credentials, from error text.
func redact(req *http.Request) string {
	if req.URL == nil {
		return ""
	}

	u := *req.URL
	u.RawQuery = ""
	u.User = nil

	return u.String()
}
