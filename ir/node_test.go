package ir

import (
	"math"
	"testing"
)

func TestMappingOps(t *testing.T) {
	m := FromKeyVals(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "b", Val: FromInt(2)},
	)
	if got := Get(m, "a"); *got.Int64 != 1 {
		t.Errorf("Get a = %+v", got)
	}
	if got := Get(m, "nope"); got != nil {
		t.Errorf("Get nope = %+v", got)
	}
	m.Set("b", FromInt(3))
	if *Get(m, "b").Int64 != 3 {
		t.Errorf("Set did not replace")
	}
	m.Set("c", FromInt(4))
	if len(m.Keys) != 3 || m.Keys[2] != "c" {
		t.Errorf("Set did not append in order: %v", m.Keys)
	}
	m.Delete("b")
	if m.Has("b") || len(m.Keys) != 2 {
		t.Errorf("Delete: %v", m.Keys)
	}
	if m.Keys[0] != "a" || m.Keys[1] != "c" {
		t.Errorf("Delete broke order: %v", m.Keys)
	}
}

func TestEqual(t *testing.T) {
	obj := &struct{ n int }{1}
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{name: "null", a: Null(), b: Null(), want: true},
		{name: "bool", a: FromBool(true), b: FromBool(false), want: false},
		{name: "int", a: FromInt(3), b: FromInt(3), want: true},
		{name: "int float", a: FromInt(3), b: FromFloat(3), want: false},
		{name: "nan", a: FromFloat(math.NaN()), b: FromFloat(math.NaN()), want: true},
		{name: "string ref", a: FromString("a"), b: FromRef("a"), want: false},
		{name: "same object", a: FromObject(obj, nil), b: FromObject(obj, nil), want: true},
		{
			name: "different object",
			a:    FromObject(&struct{ n int }{1}, nil),
			b:    FromObject(&struct{ n int }{1}, nil),
			want: false,
		},
		{
			name: "list tuple",
			a:    FromSlice([]*Node{FromInt(1)}),
			b:    FromTuple([]*Node{FromInt(1)}),
			want: false,
		},
		{
			name: "mapping order matters",
			a: FromKeyVals(
				KeyVal{Key: "a", Val: FromInt(1)},
				KeyVal{Key: "b", Val: FromInt(2)},
			),
			b: FromKeyVals(
				KeyVal{Key: "b", Val: FromInt(2)},
				KeyVal{Key: "a", Val: FromInt(1)},
			),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneDeep(t *testing.T) {
	m := FromKeyVals(
		KeyVal{Key: "a", Val: FromSlice([]*Node{FromInt(1)})},
	)
	c := m.Clone()
	c.Set("a", FromInt(9))
	if Get(m, "a").Type != SequenceType {
		t.Errorf("clone shares structure with original")
	}
	if !m.Equal(FromKeyVals(
		KeyVal{Key: "a", Val: FromSlice([]*Node{FromInt(1)})},
	)) {
		t.Errorf("original changed: %+v", m)
	}
}

func TestInterfaceRoundTrip(t *testing.T) {
	n := FromKeyVals(
		KeyVal{Key: "a", Val: FromInt(1)},
		KeyVal{Key: "b", Val: FromTuple([]*Node{FromString("x"), Null()})},
		KeyVal{Key: "c", Val: FromSlice([]*Node{FromFloat(0.5)})},
		KeyVal{Key: "r", Val: FromRef("a")},
	)
	back, err := FromInterface(n.Interface())
	if err != nil {
		t.Fatalf("FromInterface: %v", err)
	}
	// FromInterface sorts map keys; compare via Get
	for _, key := range n.Keys {
		if !Get(back, key).Equal(Get(n, key)) {
			t.Errorf("key %s: %+v vs %+v", key, Get(back, key), Get(n, key))
		}
	}
}

func TestFromInterfaceNotEncodable(t *testing.T) {
	if _, err := FromInterface(make(chan int)); err == nil {
		t.Fatal("expected error")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	n := FromKeyVals(
		KeyVal{Key: "b", Val: FromInt(2)},
		KeyVal{Key: "a", Val: FromSlice([]*Node{FromBool(true), Null()})},
		KeyVal{Key: "r", Val: FromRef("b + 1")},
		KeyVal{Key: "s", Val: FromString("hi")},
	)
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"b":2,"a":[true,null],"r":"${b + 1}","s":"hi"}`
	if string(d) != want {
		t.Fatalf("json = %s, want %s", d, want)
	}
	back := &Node{}
	if err := back.UnmarshalJSON(d); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !back.Equal(n) {
		t.Fatalf("round trip: %+v", back)
	}
}

func TestMarshalJSONErrs(t *testing.T) {
	for _, n := range []*Node{
		FromObject(struct{}{}, nil),
		FromFloat(math.Inf(1)),
		FromKeyVals(KeyVal{Key: "x", Val: FromFloat(math.NaN())}),
	} {
		if _, err := n.MarshalJSON(); err == nil {
			t.Fatalf("expected error for %+v", n)
		}
	}
}
