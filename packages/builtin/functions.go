package builtin

import (
	"encoding/base64"
	"math/rand"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Func generates a value from string arguments. Functions are invoked from
// endpoint templates via the {{name(args)}} syntax.
type Func func(args []string) any

type Registry struct {
	funcs map[string]Func
}

func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]Func),
	}
	r.funcs["uuid"] = funcUUID
	r.funcs["now"] = funcNow
	r.funcs["timestamp"] = funcTimestamp
	r.funcs["randomString"] = funcRandomString
	r.funcs["randomInt"] = funcRandomInt
	r.funcs["base64"] = funcBase64
	r.funcs["urlEncode"] = funcURLEncode
	return r
}

// Register adds or replaces a function under the given name.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

var callPattern = regexp.MustCompile(`^(\w+)\((.*)\)$`)

// Call evaluates a function expression like "randomString(8)". The second
// return value is false when the expression is not a call or the function
// is unknown.
func (r *Registry) Call(expr string) (any, bool) {
	matches := callPattern.FindStringSubmatch(strings.TrimSpace(expr))
	if matches == nil {
		return nil, false
	}

	fn, ok := r.funcs[matches[1]]
	if !ok {
		return nil, false
	}

	var args []string
	if matches[2] != "" {
		args = splitArgs(matches[2])
	}
	return fn(args), true
}

func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := byte(0)

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case !inQuote && (ch == '"' || ch == '\''):
			inQuote = true
			quoteChar = ch
		case inQuote && ch == quoteChar:
			inQuote = false
		case !inQuote && ch == ',':
			args = append(args, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	args = append(args, strings.TrimSpace(current.String()))
	return args
}

func funcUUID(_ []string) any {
	return uuid.NewString()
}

func funcNow(args []string) any {
	layout := time.RFC3339
	if len(args) > 0 && args[0] != "" {
		layout = args[0]
	}
	return time.Now().Format(layout)
}

func funcTimestamp(_ []string) any {
	return time.Now().Unix()
}

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func funcRandomString(args []string) any {
	length := 16
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			length = n
		}
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[rand.Intn(len(alphanumeric))]
	}
	return string(b)
}

func funcRandomInt(args []string) any {
	minVal, maxVal := 0, 100
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			minVal = n
		}
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			maxVal = n
		}
	}
	if maxVal <= minVal {
		return minVal
	}
	return minVal + rand.Intn(maxVal-minVal)
}

func funcBase64(args []string) any {
	if len(args) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString([]byte(args[0]))
}

func funcURLEncode(args []string) any {
	if len(args) == 0 {
		return ""
	}
	return url.QueryEscape(args[0])
}
