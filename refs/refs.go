// Package refs evaluates reference expressions against a set of
// already-resolved configuration values.
//
// A reference expression like "a.b + 1" or "model.layers:width" is
// first scanned for path tokens. Each token is demanded from the
// resolution context, bound to a synthetic variable, and the
// rewritten expression is evaluated with a restricted evaluator:
// literals, collection construction, name lookup, attribute access,
// subscripting, arithmetic and comparison operators, and boolean
// and/or. Function calls are not available.
package refs

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/confweave/confweave/debug"
	"github.com/confweave/confweave/ir/loc"
)

// Context demands the resolved value at a location, resolving it on
// the fly when it has not been visited yet. A location that does not
// exist returns an error wrapping ErrMissing.
type Context func(l loc.Loc) (any, error)

// pathPat matches dotted identifier runs with an optional trailing
// ":" that switches to attribute-style access on the resolved value.
var pathPat = regexp.MustCompile(`((?:[A-Za-z_][0-9A-Za-z_]*\.)*[A-Za-z_][0-9A-Za-z_]*):?`)

// reserved words are never treated as path tokens. null and None
// rewrite to the evaluator's nil spelling, True and False to their
// lowercase forms.
var reserved = map[string]string{
	"true":  "true",
	"false": "false",
	"True":  "true",
	"False": "false",
	"null":  "nil",
	"None":  "nil",
	"nil":   "nil",
	"not":   "not",
	"and":   "and",
	"or":    "or",
	"in":    "in",
}

// SinglePath reports whether raw is exactly one path token with no
// operators and no attribute access, and returns its location.
// Engines use this to short-circuit evaluation and hand back the
// referenced value itself, preserving identity.
func SinglePath(raw string) (loc.Loc, bool) {
	trimmed := strings.TrimSpace(raw)
	m := pathPat.FindString(trimmed)
	if m != trimmed || strings.HasSuffix(m, ":") {
		return nil, false
	}
	if _, ok := reserved[trimmed]; ok {
		return nil, false
	}
	l, err := loc.Parse(trimmed)
	if err != nil {
		return nil, false
	}
	return l, true
}

// Eval evaluates a reference expression. Path tokens whose location
// cannot be demanded are left verbatim; if evaluation then fails the
// result is a *MissingError naming them. Demand errors that do not
// wrap ErrMissing propagate unchanged.
func Eval(raw string, demand Context) (any, error) {
	env := map[string]any{}
	bound := map[string]string{}
	var missing []string
	var fatal error

	rewritten := pathPat.ReplaceAllStringFunc(raw, func(m string) string {
		attr := strings.HasSuffix(m, ":")
		path := strings.TrimSuffix(m, ":")
		suffix := ""
		if attr {
			suffix = "."
		}
		if r, ok := reserved[path]; ok {
			return r + suffix
		}
		if name, ok := bound[path]; ok {
			return name + suffix
		}
		if fatal != nil {
			return m
		}
		l, err := loc.Parse(path)
		if err != nil {
			return m
		}
		v, err := demand(l)
		if err != nil {
			if errors.Is(err, ErrMissing) {
				missing = append(missing, path)
				return m
			}
			fatal = err
			return m
		}
		name := fmt.Sprintf("var_%d", len(env))
		bound[path] = name
		env[name] = v
		return name + suffix
	})
	if fatal != nil {
		return nil, fatal
	}
	if debug.Refs() {
		debug.Logf("refs: %q -> %q env %v\n", raw, rewritten, env)
	}
	res, err := run(rewritten, env)
	if err != nil {
		if len(missing) > 0 {
			return nil, &MissingError{Refs: dedup(missing)}
		}
		return nil, &MissingError{Refs: []string{raw}}
	}
	return res, nil
}

func run(code string, env map[string]any) (any, error) {
	prg, err := expr.Compile(code, expr.DisableAllBuiltins())
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}

func dedup(refs []string) []string {
	seen := map[string]bool{}
	res := refs[:0]
	for _, r := range refs {
		if seen[r] {
			continue
		}
		seen[r] = true
		res = append(res, r)
	}
	return res
}
