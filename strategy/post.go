package strategy

import (
	"context"

	"github.com/adamwoolhether/netcall/request"
	"github.com/adamwoolhether/netcall/transport"
)

// Post executes POST requests without file attachments.
type Post struct {
	sender transport.Sender
}

// NewPost returns a POST strategy sending through sender.
func NewPost(sender transport.Sender) *Post {
	return &Post{sender: sender}
}

func (s *Post) Name() string { return "post" }

func (s *Post) Execute(ctx context.Context, req request.Request) (*transport.Response, error) {
	p, err := encodeBody(req.Body())
	if err != nil {
		return nil, err
	}

	hr, err := newHTTPRequest(ctx, request.MethodPost, req, p, false)
	if err != nil {
		return nil, err
	}

	return s.sender.Send(hr)
}
