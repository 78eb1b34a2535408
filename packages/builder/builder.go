package builder

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strings"

	resthttp "github.com/abdul-hamid-achik/restspec/packages/http"
	"github.com/abdul-hamid-achik/restspec/packages/template"
)

const (
	DefaultContentType = "application/json"
	DefaultEncoding    = "utf-8"
)

var defaultClient = resthttp.NewClient()

// Builder is the pending request: a mutable accumulator consumed exactly
// once by a terminal verb call.
type Builder struct {
	client          *resthttp.Client
	ctx             context.Context
	header          nethttp.Header
	queryParams     map[string]string
	pathParams      map[string]string
	contentType     string
	contentEncoding string
	encodingSet     bool
	body            any
	consumed        bool
}

// New returns a fresh builder dispatching through client. A nil client
// falls back to a shared default.
func New(client *resthttp.Client) *Builder {
	if client == nil {
		client = defaultClient
	}
	return &Builder{
		client:          client,
		ctx:             context.Background(),
		header:          make(nethttp.Header),
		queryParams:     make(map[string]string),
		pathParams:      make(map[string]string),
		contentType:     DefaultContentType,
		contentEncoding: DefaultEncoding,
	}
}

// Given is New under the name tests read naturally:
// Given(...).When().Get(...).
func Given(client *resthttp.Client) *Builder {
	return New(client)
}

// WithContext sets the context used for the dispatch.
func (b *Builder) WithContext(ctx context.Context) *Builder {
	b.ctx = ctx
	return b
}

// Header appends the values under key. Earlier values for the same key are
// kept; order of addition is preserved.
func (b *Builder) Header(key string, values ...string) *Builder {
	for _, v := range values {
		b.header.Add(key, v)
	}
	return b
}

// ContentType overwrites the stored content type. The value is not
// validated against MIME syntax.
func (b *Builder) ContentType(value string) *Builder {
	b.contentType = value
	return b
}

// ContentEncoding overwrites the stored charset, declared on the final
// Content-Type header.
func (b *Builder) ContentEncoding(encoding string) *Builder {
	b.contentEncoding = encoding
	b.encodingSet = true
	return b
}

// Accept appends an Accept header entry.
func (b *Builder) Accept(value string) *Builder {
	b.header.Add("Accept", value)
	return b
}

// QueryParam sets a query parameter; the last write per key wins. The
// value is stringified the way fmt would print it.
func (b *Builder) QueryParam(key string, value any) *Builder {
	b.queryParams[key] = stringify(value)
	return b
}

func (b *Builder) QueryParams(params map[string]any) *Builder {
	for k, v := range params {
		b.queryParams[k] = stringify(v)
	}
	return b
}

// PathParam sets a value for a {{key}} placeholder in the endpoint
// template; the last write per key wins.
func (b *Builder) PathParam(key string, value any) *Builder {
	b.pathParams[key] = stringify(value)
	return b
}

func (b *Builder) PathParams(params map[string]any) *Builder {
	for k, v := range params {
		b.pathParams[k] = stringify(v)
	}
	return b
}

// BasicAuth sets Authorization to the base64 credential pair, replacing
// any previously configured authorization.
func (b *Builder) BasicAuth(username, password string) *Builder {
	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	b.header.Set("Authorization", "Basic "+encoded)
	return b
}

// OAuth2 sets a bearer token, replacing any previously configured
// authorization.
func (b *Builder) OAuth2(token string) *Builder {
	b.header.Set("Authorization", "Bearer "+token)
	return b
}

// Body stores the value verbatim, replacing any previous body. Strings and
// byte slices are sent as-is at resolution time; anything else is
// serialized to JSON.
func (b *Builder) Body(value any) *Builder {
	b.body = value
	return b
}

// And is a fluent no-op.
func (b *Builder) And() *Builder { return b }

// When is a fluent no-op.
func (b *Builder) When() *Builder { return b }

func (b *Builder) Get(endpoint string) (*resthttp.Response, error) {
	return b.send(nethttp.MethodGet, endpoint)
}

func (b *Builder) Post(endpoint string) (*resthttp.Response, error) {
	return b.send(nethttp.MethodPost, endpoint)
}

func (b *Builder) Put(endpoint string) (*resthttp.Response, error) {
	return b.send(nethttp.MethodPut, endpoint)
}

func (b *Builder) Patch(endpoint string) (*resthttp.Response, error) {
	return b.send(nethttp.MethodPatch, endpoint)
}

func (b *Builder) Delete(endpoint string) (*resthttp.Response, error) {
	return b.send(nethttp.MethodDelete, endpoint)
}

func (b *Builder) send(method, endpoint string) (*resthttp.Response, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	req, err := b.Resolve(method, endpoint)
	if err != nil {
		return nil, err
	}
	return b.client.DoContext(b.ctx, req)
}

// Resolve turns the accumulated state into an immutable request without
// dispatching it. Resolution order: path-parameter substitution, query
// string, body serialization, header assembly.
func (b *Builder) Resolve(method, endpoint string) (*resthttp.Request, error) {
	target := endpoint
	if len(b.pathParams) > 0 || template.HasPlaceholders(endpoint) {
		rendered, err := template.Render(endpoint, b.pathParams)
		if err != nil {
			return nil, err
		}
		target = rendered
	}

	target, err := appendQuery(target, b.queryParams)
	if err != nil {
		return nil, err
	}

	body, err := serializeBody(b.body)
	if err != nil {
		return nil, err
	}

	req := resthttp.NewRequest(method, target)
	for key, values := range b.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Body = body
	req.ContentType = b.finalContentType()
	return req, nil
}

func (b *Builder) finalContentType() string {
	ct := b.contentType
	if ct == "" {
		return ""
	}
	if b.encodingSet && !strings.Contains(strings.ToLower(ct), "charset=") {
		ct += "; charset=" + b.contentEncoding
	}
	return ct
}

func appendQuery(target string, params map[string]string) (string, error) {
	if len(params) == 0 {
		return target, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return "", &InvalidRequestError{URL: target, Reason: "malformed URL", Err: err}
	}

	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func serializeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case nil:
		// absent body is an empty body, never the JSON "null" literal
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
		return data, nil
	}
}

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}
