package http

import "fmt"

// TransportError is a network-level failure: connection refused, timeout,
// DNS resolution and the like. The request never produced a response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure for %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// InvalidRequestError indicates the resolved request could not be turned
// into a dispatchable one: malformed URL, unsupported scheme, bad header.
type InvalidRequestError struct {
	URL    string
	Reason string
	Err    error
}

func (e *InvalidRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid request for %s: %s: %v", e.URL, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid request for %s: %s", e.URL, e.Reason)
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Err
}
