package expect

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"

	resthttp "github.com/abdul-hamid-achik/restspec/packages/http"
)

// Reporter receives assertion failures. *testing.T satisfies it.
type Reporter interface {
	Errorf(format string, args ...any)
}

// Expectation holds a response under verification.
type Expectation struct {
	r        Reporter
	resp     *resthttp.Response
	bodyJSON gjson.Result
}

func New(r Reporter, resp *resthttp.Response) *Expectation {
	e := &Expectation{
		r:    r,
		resp: resp,
	}
	if resp.IsJSON() {
		e.bodyJSON = gjson.ParseBytes(resp.Body)
	}
	return e
}

func (e *Expectation) fail(subject, format string, args ...any) {
	e.r.Errorf("%s: %s", subject, fmt.Sprintf(format, args...))
}

func (e *Expectation) Status(code int) *Expectation {
	if e.resp.StatusCode != code {
		e.fail("status", "expected %d, got %d (%s)", code, e.resp.StatusCode, e.resp.Status)
	}
	return e
}

func (e *Expectation) StatusSuccess() *Expectation {
	if !e.resp.IsSuccess() {
		e.fail("status", "expected 2xx, got %d (%s)", e.resp.StatusCode, e.resp.Status)
	}
	return e
}

func (e *Expectation) HeaderEquals(key, want string) *Expectation {
	if got := e.resp.Header(key); got != want {
		e.fail("header "+key, "expected %q, got %q", want, got)
	}
	return e
}

func (e *Expectation) HeaderContains(key, want string) *Expectation {
	if got := e.resp.Header(key); !strings.Contains(got, want) {
		e.fail("header "+key, "expected %q to contain %q", got, want)
	}
	return e
}

func (e *Expectation) HeaderMatches(key, pattern string) *Expectation {
	re, err := regexp.Compile(pattern)
	if err != nil {
		e.fail("header "+key, "invalid pattern /%s/: %v", pattern, err)
		return e
	}
	if got := e.resp.Header(key); !re.MatchString(got) {
		e.fail("header "+key, "expected %q to match /%s/", got, pattern)
	}
	return e
}

func (e *Expectation) BodyEquals(want string) *Expectation {
	if got := e.resp.BodyString(); got != want {
		e.fail("body", "expected %q, got %q", want, got)
	}
	return e
}

func (e *Expectation) BodyContains(want string) *Expectation {
	if got := e.resp.BodyString(); !strings.Contains(got, want) {
		e.fail("body", "expected body to contain %q", want)
	}
	return e
}

func (e *Expectation) BodyMatches(pattern string) *Expectation {
	re, err := regexp.Compile(pattern)
	if err != nil {
		e.fail("body", "invalid pattern /%s/: %v", pattern, err)
		return e
	}
	if got := e.resp.BodyString(); !re.MatchString(got) {
		e.fail("body", "expected body to match /%s/", pattern)
	}
	return e
}

// JSON starts a check on the value at a gjson path. An empty path selects
// the whole body.
func (e *Expectation) JSON(path string) *JSONExpectation {
	result := e.bodyJSON
	if path != "" {
		result = e.bodyJSON.Get(path)
	}
	return &JSONExpectation{
		parent:  e,
		subject: "json " + path,
		result:  result,
	}
}

// Schema validates the response body against a JSON Schema document.
func (e *Expectation) Schema(schema []byte) *Expectation {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(e.resp.Body)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		e.fail("schema", "validation error: %v", err)
		return e
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		e.fail("schema", "validation failed: %s", strings.Join(problems, "; "))
	}
	return e
}

func (e *Expectation) DurationUnder(limit time.Duration) *Expectation {
	if e.resp.Duration >= limit {
		e.fail("duration", "expected under %s, took %s", limit, e.resp.Duration)
	}
	return e
}

// JSONExpectation verifies a single JSON path value and returns to the
// parent chain.
type JSONExpectation struct {
	parent  *Expectation
	subject string
	result  gjson.Result
}

func (j *JSONExpectation) Exists() *Expectation {
	if !j.result.Exists() {
		j.parent.fail(j.subject, "expected value to exist")
	}
	return j.parent
}

func (j *JSONExpectation) NotExists() *Expectation {
	if j.result.Exists() {
		j.parent.fail(j.subject, "expected value not to exist, got %v", j.result.Value())
	}
	return j.parent
}

func (j *JSONExpectation) Equals(want any) *Expectation {
	if !j.result.Exists() {
		j.parent.fail(j.subject, "expected %v, value does not exist", want)
		return j.parent
	}
	if got := j.result.Value(); !looseEquals(got, want) {
		j.parent.fail(j.subject, "expected %v, got %v", want, got)
	}
	return j.parent
}

func (j *JSONExpectation) Contains(want string) *Expectation {
	if got := j.result.String(); !strings.Contains(got, want) {
		j.parent.fail(j.subject, "expected %q to contain %q", got, want)
	}
	return j.parent
}

func (j *JSONExpectation) Matches(pattern string) *Expectation {
	re, err := regexp.Compile(pattern)
	if err != nil {
		j.parent.fail(j.subject, "invalid pattern /%s/: %v", pattern, err)
		return j.parent
	}
	if got := j.result.String(); !re.MatchString(got) {
		j.parent.fail(j.subject, "expected %q to match /%s/", got, pattern)
	}
	return j.parent
}

// Type checks against JSON type names: null, boolean, number, string,
// array, object.
func (j *JSONExpectation) Type(want string) *Expectation {
	if !j.result.Exists() {
		j.parent.fail(j.subject, "expected type %s, value does not exist", want)
		return j.parent
	}
	if got := jsonTypeName(j.result.Value()); got != want {
		j.parent.fail(j.subject, "expected type %s, got %s", want, got)
	}
	return j.parent
}

func (j *JSONExpectation) Length(want int) *Expectation {
	got := valueLength(j.result.Value())
	if got == -1 {
		j.parent.fail(j.subject, "cannot get length of %s", jsonTypeName(j.result.Value()))
		return j.parent
	}
	if got != want {
		j.parent.fail(j.subject, "expected length %d, got %d", want, got)
	}
	return j.parent
}

// Includes checks that an array value contains an element equal to want.
func (j *JSONExpectation) Includes(want any) *Expectation {
	arr, ok := j.result.Value().([]any)
	if !ok {
		j.parent.fail(j.subject, "expected array, got %s", jsonTypeName(j.result.Value()))
		return j.parent
	}
	for _, item := range arr {
		if looseEquals(item, want) {
			return j.parent
		}
	}
	j.parent.fail(j.subject, "expected array to include %v", want)
	return j.parent
}

func (j *JSONExpectation) GreaterThan(want float64) *Expectation {
	return j.compareNumeric(want, ">", func(got float64) bool { return got > want })
}

func (j *JSONExpectation) LessThan(want float64) *Expectation {
	return j.compareNumeric(want, "<", func(got float64) bool { return got < want })
}

func (j *JSONExpectation) compareNumeric(want float64, op string, cmp func(float64) bool) *Expectation {
	got, ok := toFloat64(j.result.Value())
	if !ok {
		j.parent.fail(j.subject, "cannot compare non-numeric value %v", j.result.Value())
		return j.parent
	}
	if !cmp(got) {
		j.parent.fail(j.subject, "expected %v %s %v", got, op, want)
	}
	return j.parent
}

// Value returns the decoded value at the path for custom checks.
func (j *JSONExpectation) Value() any {
	return j.result.Value()
}

// Raw returns the raw JSON text at the path.
func (j *JSONExpectation) Raw() json.RawMessage {
	return json.RawMessage(j.result.Raw)
}
