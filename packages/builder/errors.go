package builder

import (
	"errors"
	"fmt"

	resthttp "github.com/abdul-hamid-achik/restspec/packages/http"
	"github.com/abdul-hamid-achik/restspec/packages/template"
)

// ErrBuilderConsumed is returned by a terminal verb on a builder that has
// already dispatched. Create a fresh builder per request.
var ErrBuilderConsumed = errors.New("builder already dispatched")

// Aliases so callers can handle the whole error taxonomy through this
// package. None of these are retried internally; every failure propagates
// to the caller before an outcome exists.
type (
	// UnresolvedPlaceholderError: the endpoint template kept a {{name}}
	// with no matching path parameter.
	UnresolvedPlaceholderError = template.UnresolvedError
	// InvalidRequestError: the resolved URL is malformed or not dispatchable.
	InvalidRequestError = resthttp.InvalidRequestError
	// TransportError: the network call failed before producing a response.
	TransportError = resthttp.TransportError
)

// SerializationError: the body value could not be converted to wire form.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot serialize request body: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
