// Package template substitutes {{name}} placeholders in endpoint templates.
//
// Substitution is strict: a placeholder with no matching variable fails the
// whole render, listing every missing name. Variables that are supplied but
// never referenced are ignored. Expressions of the form {{fn(args)}} are
// evaluated through the builtin function registry.
package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/abdul-hamid-achik/restspec/packages/builtin"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// UnresolvedError reports placeholders that had no matching variable.
type UnresolvedError struct {
	Template string
	Names    []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved placeholders in %q: %s", e.Template, strings.Join(e.Names, ", "))
}

var defaultFuncs = builtin.NewRegistry()

// Render replaces every {{name}} placeholder in tmpl with its value from
// vars, evaluating {{fn(args)}} expressions through the default builtin
// registry.
func Render(tmpl string, vars map[string]string) (string, error) {
	return RenderWith(tmpl, vars, defaultFuncs)
}

// RenderWith is Render with an explicit function registry.
func RenderWith(tmpl string, vars map[string]string, funcs *builtin.Registry) (string, error) {
	var missing []string

	result := placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := strings.TrimSpace(match[2 : len(match)-2])

		if val, ok := vars[name]; ok {
			return val
		}

		if funcs != nil && strings.Contains(name, "(") {
			if val, ok := funcs.Call(name); ok {
				return fmt.Sprintf("%v", val)
			}
		}

		missing = append(missing, name)
		return match
	})

	if len(missing) > 0 {
		sort.Strings(missing)
		return "", &UnresolvedError{Template: tmpl, Names: dedupe(missing)}
	}
	return result, nil
}

// HasPlaceholders reports whether tmpl contains any {{...}} expression.
func HasPlaceholders(tmpl string) bool {
	return placeholderPattern.MatchString(tmpl)
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
