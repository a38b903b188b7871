package strategy

import (
	"context"

	"github.com/adamwoolhether/netcall/request"
	"github.com/adamwoolhether/netcall/transport"
)

// Get executes GET requests. A body, when present, is sent as well.
type Get struct {
	sender transport.Sender
}

// NewGet returns a GET strategy sending through sender.
func NewGet(sender transport.Sender) *Get {
	return &Get{sender: sender}
}

func (s *Get) Name() string { return "get" }

func (s *Get) Execute(ctx context.Context, req request.Request) (*transport.Response, error) {
	p, err := encodeBody(req.Body())
	if err != nil {
		return nil, err
	}

	hr, err := newHTTPRequest(ctx, request.MethodGet, req, p, false)
	if err != nil {
		return nil, err
	}

	return s.sender.Send(hr)
}
