package transport

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Option is a functional option for configuring a [Transport] via [New].
type Option func(*options) error
type options struct {
	client            *http.Client
	rt                http.RoundTripper
	timeout           *time.Duration
	userAgent         string
	noFollowRedirects bool
	logger            *slog.Logger
}

// WithClient bases the [Transport] on a copy of hc. Its timeout, redirect
// policy and RoundTripper are kept unless other options override them; hc
// itself is never modified.
func WithClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.client = hc
		return nil
	}
}

// WithTransport sets the [http.RoundTripper] requests are sent through,
// taking precedence over the one carried by [WithClient].
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
// Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = &d
		return nil
	}
}

// WithUserAgent sends value as the User-Agent of every request that does
// not already carry one. A User-Agent set in a request's own headers wins.
func WithUserAgent(value string) Option {
	return func(o *options) error {
		if strings.TrimSpace(value) == "" {
			return errors.New("user agent must not be empty")
		}
		o.userAgent = value
		return nil
	}
}

// WithNoFollowRedirects hands 3xx responses back as-is instead of following
// them; their bodies are then decoded like any other response.
func WithNoFollowRedirects() Option {
	return func(o *options) error {
		o.noFollowRedirects = true
		return nil
	}
}

// WithLogger sets the logger reporting failures to drain or close a
// response body after it has been read. Those failures never affect the
// returned [Response]. Request outcomes are logged by the caller, not here.
// Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// defaultUserAgent fills in User-Agent on requests that have none.
type defaultUserAgent struct {
	value string
	base  http.RoundTripper
}

func (ua defaultUserAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	if _, ok := r.Header["User-Agent"]; ok {
		return ua.base.RoundTrip(r)
	}

	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}
