package http

import (
	"net/http"
)

// Request is a fully resolved request: the URL contains no placeholders and
// carries its final query string, and the body is already in wire form.
// Instances are built by the builder package and are not mutated after
// construction.
type Request struct {
	Method      string
	URL         string
	Header      http.Header
	Body        []byte
	ContentType string
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method: method,
		URL:    requestURL,
		Header: make(http.Header),
	}
}

// HeaderValues returns all values recorded for key, in the order added.
func (r *Request) HeaderValues(key string) []string {
	return r.Header.Values(key)
}
