package confweave

import (
	"errors"
	"testing"

	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/ir/loc"
)

func TestSerializeBasic(t *testing.T) {
	tree := mustParse(t, `
[script]
steps = 100
name = "run"

[script.env]
debug = false
`)
	got, err := Serialize(tree)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := `[script]
steps = 100
name = "run"

[script.env]
debug = false

`
	if got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	in := `[model]
size = 10
layers = [1, (2, 3)]
ref = ${script.steps}

[script]
steps = ${model.size * 10}

`
	tree := mustParse(t, in)
	out, err := Serialize(tree)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if out != in {
		t.Fatalf("round trip changed document:\n%q\n%q", in, out)
	}
}

func TestSerializeObjectProvenance(t *testing.T) {
	tree := mustParse(t, `
[model]
@factory = "model"
size = 7
name = "net"

[script]
m = ${model}
`)
	res, err := Resolve(tree, testRegistry())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := Serialize(res)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := `[model]
@factory = "model"
size = 7
name = "net"

[script]
m = ${model}

`
	if got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}

	// and the dump resolves again to the same values
	back, err := FromStr(got)
	if err != nil {
		t.Fatalf("FromStr: %v", err)
	}
	res2, err := Resolve(back, testRegistry())
	if err != nil {
		t.Fatalf("re-resolve: %v", err)
	}
	m1 := ir.Get(res, "model").Object.(*testModel)
	m2 := ir.Get(res2, "model").Object.(*testModel)
	if *m1 != *m2 {
		t.Errorf("round trip changed object: %+v vs %+v", m1, m2)
	}
	if ir.Get(res2, "model") != ir.Get(ir.Get(res2, "script"), "m") {
		t.Errorf("shared identity lost in round trip")
	}
}

func TestSerializeAbsolutePath(t *testing.T) {
	moved := ir.FromKeyVals(ir.KeyVal{Key: "test", Val: ir.FromString("ok")})
	abs, err := loc.Parse("my.deep.path")
	if err != nil {
		t.Fatal(err)
	}
	moved.AbsPath = abs
	tree := ir.FromKeyVals(
		ir.KeyVal{
			Key: "value",
			Val: ir.FromKeyVals(ir.KeyVal{Key: "moved", Val: moved}),
		},
	)
	got, err := Serialize(tree)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := `[value]
moved = ${my.deep.path}

[my]

[my.deep]

[my.deep.path]
test = "ok"

`
	if got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeObjectNoProvenance(t *testing.T) {
	tree := ir.FromKeyVals(
		ir.KeyVal{
			Key: "a",
			Val: ir.FromKeyVals(ir.KeyVal{
				Key: "obj",
				Val: ir.FromObject(struct{ x int }{1}, nil),
			}),
		},
	)
	_, err := Serialize(tree)
	var se *SerializationError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want SerializationError", err)
	}
	if se.Loc.String() != "a.obj" {
		t.Errorf("loc = %q", se.Loc)
	}
}

type provModel struct {
	size int64
}

func (m *provModel) Provenance() *ir.Node {
	return ir.FromKeyVals(
		ir.KeyVal{Key: "@factory", Val: ir.FromString("prov")},
		ir.KeyVal{Key: "size", Val: ir.FromInt(m.size)},
	)
}

func TestSerializeProvenancer(t *testing.T) {
	reg := MapRegistry{
		"prov": func(params map[string]any) (any, error) {
			return &provModel{size: params["size"].(int64)}, nil
		},
	}
	tree := mustParse(t, `
[model]
@factory = "prov"
size = 3
`)
	res, err := Resolve(tree, reg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ir.Get(res, "model").Provenance != nil {
		t.Errorf("engine recorded provenance for a Provenancer")
	}
	got, err := Serialize(res)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := `[model]
@factory = "prov"
size = 3

`
	if got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}

// a factory returning a plain value serializes as that value, not
// as its provenance
func TestSerializePrimitiveObject(t *testing.T) {
	tree := mustParse(t, `
[outer.func]
@factory = "double"
x = 2
`)
	res, err := Resolve(tree, testRegistry())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got, err := Serialize(res)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := `[outer]
func = 4

`
	if got != want {
		t.Fatalf("Serialize = %q, want %q", got, want)
	}
}
