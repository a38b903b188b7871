package strategy

import (
	"github.com/adamwoolhether/netcall/logger"
	"github.com/adamwoolhether/netcall/request"
	"github.com/adamwoolhether/netcall/transport"
)

// Factory selects the [Strategy] for a request.
type Factory interface {
	// Create picks a strategy by method alone.
	Create(method request.Method) (Strategy, error)

	// CreateFor picks a strategy by method and request content, routing a
	// POST that carries files to multipart.
	CreateFor(method request.Method, req request.Request) (Strategy, error)
}

// factory holds only what it was built with and is safe for concurrent use.
type factory struct {
	get       *Get
	post      *Post
	multipart *Multipart
}

// NewFactory returns a Factory whose strategies send through sender and log
// through logFn.
func NewFactory(sender transport.Sender, logFn logger.Func) Factory {
	return &factory{
		get:       NewGet(sender),
		post:      NewPost(sender),
		multipart: NewMultipart(sender, logFn),
	}
}

func (f *factory) Create(method request.Method) (Strategy, error) {
	switch method {
	case request.MethodGet:
		return f.get, nil
	case request.MethodPost:
		return f.post, nil
	default:
		return nil, &UnsupportedMethodError{Method: method}
	}
}

func (f *factory) CreateFor(method request.Method, req request.Request) (Strategy, error) {
	if method == request.MethodPost && req.HasFiles() {
		return f.multipart, nil
	}

	return f.Create(method)
}
