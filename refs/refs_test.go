package refs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/confweave/confweave/ir/loc"
)

func mapContext(vals map[string]any) Context {
	return func(l loc.Loc) (any, error) {
		v, ok := vals[l.String()]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissing, l)
		}
		return v, nil
	}
}

func TestSinglePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "a", want: "a", ok: true},
		{in: "a.b.c", want: "a.b.c", ok: true},
		{in: " a.b ", want: "a.b", ok: true},
		{in: "a + b", ok: false},
		{in: "a.b:width", ok: false},
		{in: "true", ok: false},
		{in: "null", ok: false},
		{in: "2", ok: false},
		{in: "a.b.", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			l, ok := SinglePath(tt.in)
			if ok != tt.ok {
				t.Fatalf("SinglePath(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && l.String() != tt.want {
				t.Fatalf("SinglePath(%q) = %q, want %q", tt.in, l, tt.want)
			}
		})
	}
}

func TestEval(t *testing.T) {
	ctx := mapContext(map[string]any{
		"a":          int64(4),
		"b.width":    int64(10),
		"name":       "proto",
		"flags.on":   true,
		"vals.items": []any{int64(1), int64(2), int64(3)},
	})
	tests := []struct {
		name string
		in   string
		want any
	}{
		{name: "value", in: "a", want: int64(4)},
		{name: "add", in: "a + 1", want: int64(5)},
		{name: "two paths", in: "a * b.width", want: int64(40)},
		{name: "repeat path", in: "a + a", want: int64(8)},
		{name: "compare", in: "b.width > a", want: true},
		{name: "and", in: "flags.on and a == 4", want: true},
		{name: "string concat", in: `name + "-v2"`, want: "proto-v2"},
		{name: "index", in: "vals.items[1]", want: int64(2)},
		{name: "literal only", in: "1 + 2", want: int64(3)},
		{name: "null literal", in: "None", want: nil},
		{name: "quoted dots", in: `name + "." + name`, want: "proto.proto"},
		{name: "ternary-ish or", in: "false or a == 4", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.in, ctx)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.in, err)
			}
			var diff string
			switch w := tt.want.(type) {
			case int64:
				g, ok := asInt64(got)
				if !ok || g != w {
					diff = fmt.Sprintf("got %v (%T), want %v", got, got, w)
				}
			default:
				diff = cmp.Diff(tt.want, got)
			}
			if diff != "" {
				t.Fatalf("Eval(%q): %s", tt.in, diff)
			}
		})
	}
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	}
	return 0, false
}

func TestEvalMissing(t *testing.T) {
	ctx := mapContext(map[string]any{"a": int64(1)})
	_, err := Eval("a + missing.thing", ctx)
	var me *MissingError
	if !errors.As(err, &me) {
		t.Fatalf("err = %v, want MissingError", err)
	}
	if len(me.Refs) != 1 || me.Refs[0] != "missing.thing" {
		t.Fatalf("refs = %v", me.Refs)
	}
	if !errors.Is(err, ErrMissing) {
		t.Fatal("err does not wrap ErrMissing")
	}
}

func TestEvalFatal(t *testing.T) {
	boom := errors.New("boom")
	ctx := func(l loc.Loc) (any, error) {
		return nil, boom
	}
	_, err := Eval("a + 1", ctx)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestMissingErrorMessage(t *testing.T) {
	err := NewMissingError([]string{"a.b", "c", "a.b"})
	want := "could not interpolate the following references: ${a.b}, ${c}"
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}
