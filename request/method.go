package request

import "net/http"

// Method is the HTTP method of a [Request].
type Method string

// Supported method values. Only GET and POST have an executing strategy.
const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// Methods lists every defined method in declaration order.
func Methods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}
}

func (m Method) String() string {
	return string(m)
}
