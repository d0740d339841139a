package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Tuple is the Go value of a TupleType node, distinguished from a
// plain slice so that tuples survive a resolve or encode round trip.
type Tuple []any

// Ref is the Go value of an unresolved ReferenceType node.
type Ref string

// Interface converts a node to its Go value. Mappings become
// map[string]any, sequences []any, tuples Tuple, objects their
// opaque value, references Ref carrying the raw expression.
func (y *Node) Interface() any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return nil
	case StringType:
		return y.String
	case ReferenceType:
		return Ref(y.Ref)
	case ObjectType:
		return y.Object
	case MappingType:
		res := make(map[string]any, len(y.Keys))
		for i := range y.Keys {
			res[y.Keys[i]] = y.Values[i].Interface()
		}
		return res
	case TupleType:
		res := make(Tuple, len(y.Values))
		for i := range y.Values {
			res[i] = y.Values[i].Interface()
		}
		return res
	default:
		res := make([]any, len(y.Values))
		for i := range y.Values {
			res[i] = y.Values[i].Interface()
		}
		return res
	}
}

// FromInterface converts a Go value to a node. Map keys are emitted
// in sorted order. Values with no literal encoding return
// ErrNotEncodable.
func FromInterface(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case Ref:
		return FromRef(string(x)), nil
	case Tuple:
		vs, err := fromSlice(x)
		if err != nil {
			return nil, err
		}
		return FromTuple(vs), nil
	case []any:
		vs, err := fromSlice(x)
		if err != nil {
			return nil, err
		}
		return FromSlice(vs), nil
	case map[string]any:
		res := &Node{Type: MappingType}
		for _, key := range slices.Sorted(maps.Keys(x)) {
			val, err := FromInterface(x[key])
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotEncodable, v)
	}
}

func fromSlice(vs []any) ([]*Node, error) {
	res := make([]*Node, len(vs))
	for i := range vs {
		n, err := FromInterface(vs[i])
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}
