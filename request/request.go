package request

import (
	"maps"
	"slices"
	"sort"
)

// Request is an immutable description of one HTTP call.
// The zero value is a GET to an empty URL with no headers, body,
// params or files.
type Request struct {
	url     string
	method  Method
	headers map[string]string
	body    any
	params  map[string]string
	files   []FileAttachment
}

// URL returns the target URL. Empty is permitted and left to the transport to reject.
func (r Request) URL() string {
	return r.url
}

// Method returns the request method, GET when unset.
func (r Request) Method() Method {
	if r.method == "" {
		return MethodGet
	}
	return r.method
}

// Headers returns a copy of the request headers, or nil when none were set.
func (r Request) Headers() map[string]string {
	return maps.Clone(r.headers)
}

// HeaderKeys returns the header keys in the order they are sent.
func (r Request) HeaderKeys() []string {
	return sortedKeys(r.headers)
}

// Body returns the opaque request payload, or nil.
func (r Request) Body() any {
	return r.body
}

// Params returns a copy of the query parameters, or nil when none were set.
func (r Request) Params() map[string]string {
	return maps.Clone(r.params)
}

// ParamKeys returns the query parameter keys in the order they are appended.
func (r Request) ParamKeys() []string {
	return sortedKeys(r.params)
}

// Files returns a copy of the attachment list, or nil when none were set.
func (r Request) Files() []FileAttachment {
	return slices.Clone(r.files)
}

// HasFiles reports whether the request carries at least one attachment.
func (r Request) HasFiles() bool {
	return len(r.files) > 0
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
