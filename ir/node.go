package ir

import (
	"math"

	"github.com/confweave/confweave/ir/loc"
)

// Node is one position in a configuration tree.
//
// MappingType nodes keep Keys and Values as parallel slices so that
// insertion order survives a parse/serialize round trip. Sequence
// and Tuple nodes use Values only. ReferenceType nodes carry the
// reference expression verbatim in Ref. ObjectType nodes hold an
// opaque resolved value together with the provenance mapping that
// produced it, when one was recorded.
type Node struct {
	Type   Type
	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64

	Ref string

	Object     any
	Provenance *Node

	// AbsPath, when set on a mapping, asks the serializer to hoist
	// the mapping to a section at that absolute location and leave a
	// reference at the use site.
	AbsPath loc.Loc
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromRef(expr string) *Node {
	return &Node{Type: ReferenceType, Ref: expr}
}

func FromObject(v any, provenance *Node) *Node {
	return &Node{Type: ObjectType, Object: v, Provenance: provenance}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs ...KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Keys = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: SequenceType, Values: vs}
}

func FromTuple(vs []*Node) *Node {
	return &Node{Type: TupleType, Values: vs}
}

// Get returns the value at key in a mapping, or nil.
func Get(y *Node, key string) *Node {
	for i := range y.Keys {
		if y.Keys[i] == key {
			return y.Values[i]
		}
	}
	return nil
}

// Set replaces the value at key, appending the key if absent.
func (y *Node) Set(key string, v *Node) {
	for i := range y.Keys {
		if y.Keys[i] == key {
			y.Values[i] = v
			return
		}
	}
	y.Keys = append(y.Keys, key)
	y.Values = append(y.Values, v)
}

// Delete removes key from a mapping, preserving order of the rest.
func (y *Node) Delete(key string) {
	for i := range y.Keys {
		if y.Keys[i] == key {
			y.Keys = append(y.Keys[:i], y.Keys[i+1:]...)
			y.Values = append(y.Values[:i], y.Values[i+1:]...)
			return
		}
	}
}

// Has reports whether key is present in a mapping.
func (y *Node) Has(key string) bool {
	for i := range y.Keys {
		if y.Keys[i] == key {
			return true
		}
	}
	return false
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Ref = y.Ref
	dst.Object = y.Object
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Keys != nil {
		dst.Keys = make([]string, len(y.Keys))
		copy(dst.Keys, y.Keys)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	if y.Provenance != nil {
		dst.Provenance = y.Provenance.Clone()
	}
	if y.AbsPath != nil {
		dst.AbsPath = make(loc.Loc, len(y.AbsPath))
		copy(dst.AbsPath, y.AbsPath)
	}
	return dst
}

// Visit walks the tree pre- and post-order. The pre-order call's
// first return controls whether children are visited.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Equal compares trees structurally. Object nodes compare by their
// opaque value's interface identity.
func (y *Node) Equal(o *Node) bool {
	if y == nil || o == nil {
		return y == o
	}
	if y.Type != o.Type {
		if y.Type != NumberType || o.Type != NumberType {
			return false
		}
	}
	switch y.Type {
	case NullType:
		return true
	case BoolType:
		return y.Bool == o.Bool
	case NumberType:
		return numEqual(y, o)
	case StringType:
		return y.String == o.String
	case ReferenceType:
		return y.Ref == o.Ref
	case ObjectType:
		return y.Object == o.Object
	case MappingType:
		if len(y.Keys) != len(o.Keys) {
			return false
		}
		for i := range y.Keys {
			if y.Keys[i] != o.Keys[i] || !y.Values[i].Equal(o.Values[i]) {
				return false
			}
		}
		return true
	default: // Sequence, Tuple
		if len(y.Values) != len(o.Values) {
			return false
		}
		for i := range y.Values {
			if !y.Values[i].Equal(o.Values[i]) {
				return false
			}
		}
		return true
	}
}

func numEqual(y, o *Node) bool {
	yf, yok := y.Num()
	of, ook := o.Num()
	if yok != ook {
		return false
	}
	if math.IsNaN(yf) && math.IsNaN(of) {
		return true
	}
	return yf == of && (y.Int64 == nil) == (o.Int64 == nil)
}

// Num returns the numeric payload as a float64 and whether one is set.
func (y *Node) Num() (float64, bool) {
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	return 0, false
}
