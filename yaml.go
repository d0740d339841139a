package confweave

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/confweave/confweave/ir"
)

// FromYAML parses a YAML document into an unresolved tree. Mapping
// order is preserved, and strings shaped like ${...} become
// references. Tuples have no YAML form; sequences always load as
// lists.
func FromYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAMLValue(v)
}

func fromYAMLValue(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		res := ir.FromKeyVals()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("mapping key %v is not a string", item.Key)
			}
			val, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(key, val)
		}
		return res, nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, e := range t {
			n, err := fromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case string:
		if strings.HasPrefix(t, "${") && strings.HasSuffix(t, "}") {
			return ir.FromRef(t[2 : len(t)-1]), nil
		}
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case int64:
		return ir.FromInt(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case uint64:
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("cannot load yaml value of type %T", v)
	}
}

// ToYAML renders a tree as YAML. References render as ${...} strings
// and tuples degrade to sequences; objects are not representable and
// must be serialized with Dump instead.
func ToYAML(tree *ir.Node) ([]byte, error) {
	v, err := toYAMLValue(tree)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}

func toYAMLValue(y *ir.Node) (any, error) {
	switch y.Type {
	case ir.MappingType:
		res := make(yaml.MapSlice, len(y.Keys))
		for i, k := range y.Keys {
			v, err := toYAMLValue(y.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: k, Value: v}
		}
		return res, nil
	case ir.SequenceType, ir.TupleType:
		res := make([]any, len(y.Values))
		for i, e := range y.Values {
			v, err := toYAMLValue(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ReferenceType:
		return "${" + y.Ref + "}", nil
	case ir.ObjectType:
		return nil, fmt.Errorf("cannot render object as yaml")
	case ir.NumberType:
		if y.Int64 != nil {
			return *y.Int64, nil
		}
		return *y.Float64, nil
	case ir.StringType:
		return y.String, nil
	case ir.BoolType:
		return y.Bool, nil
	case ir.NullType:
		return nil, nil
	}
	return nil, fmt.Errorf("cannot render %s as yaml", y.Type)
}
