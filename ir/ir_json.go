package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// MarshalJSON encodes the document a node denotes as JSON. Mappings
// keep their insertion order, references encode as their "${...}"
// spelling and tuples flatten to arrays. Opaque objects and
// non-finite floats have no JSON form and error.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(y, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(y *Node, buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		if y.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case NumberType:
		f, ok := y.Num()
		if !ok {
			buf.WriteString("null")
			return nil
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: non-finite number", ErrNotEncodable)
		}
		d, err := json.Marshal(y.Interface())
		if err != nil {
			return err
		}
		buf.Write(d)
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ReferenceType:
		d, err := json.Marshal("${" + y.Ref + "}")
		if err != nil {
			return err
		}
		buf.Write(d)
	case ObjectType:
		return fmt.Errorf("%w: %T", ErrNotEncodable, y.Object)
	case MappingType:
		buf.WriteByte('{')
		for i := range y.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(y.Keys[i])
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(y.Values[i], buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default: // Sequence, Tuple
		buf.WriteByte('[')
		for i := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(y.Values[i], buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	}
	return nil
}

// UnmarshalJSON decodes JSON into a node, keeping object key order
// and recovering "${...}" strings as references.
func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	n, err := readJSON(dec)
	if err != nil {
		return err
	}
	*y = *n
	return nil
}

func readJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return readJSONToken(dec, tok)
}

func readJSONToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch x := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		if strings.HasPrefix(x, "${") && strings.HasSuffix(x, "}") {
			return FromRef(x[2 : len(x)-1]), nil
		}
		return FromString(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return FromFloat(f), nil
	case json.Delim:
		switch x {
		case '{':
			res := &Node{Type: MappingType}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", keyTok)
				}
				val, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, val)
			}
			// consume '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := &Node{Type: SequenceType}
			for dec.More() {
				val, err := readJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Values = append(res.Values, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}
