// Package encode renders configuration trees back to extended
// literal text. It is the structural inverse of package parse.
package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/token"
)

// Literal renders a node as extended literal text. Lists are
// bracketed and tuples parenthesized so the two survive a round
// trip; floats use the Infinity and NaN spellings. Object nodes have
// no literal form and return ir.ErrNotEncodable.
func Literal(y *ir.Node) (string, error) {
	sb := &strings.Builder{}
	if err := literal(y, sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func literal(y *ir.Node, sb *strings.Builder) error {
	switch y.Type {
	case ir.NullType:
		sb.WriteString("null")
	case ir.BoolType:
		sb.WriteString(strconv.FormatBool(y.Bool))
	case ir.NumberType:
		sb.WriteString(Number(y))
	case ir.StringType:
		sb.WriteString(token.Quote(y.String, false))
	case ir.ReferenceType:
		sb.WriteString("${")
		sb.WriteString(y.Ref)
		sb.WriteString("}")
	case ir.MappingType:
		sb.WriteString("{")
		for i := range y.Keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(token.Quote(y.Keys[i], false))
			sb.WriteString(": ")
			if err := literal(y.Values[i], sb); err != nil {
				return err
			}
		}
		sb.WriteString("}")
	case ir.SequenceType, ir.TupleType:
		open, close := "[", "]"
		if y.Type == ir.TupleType {
			open, close = "(", ")"
		}
		sb.WriteString(open)
		for i := range y.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := literal(y.Values[i], sb); err != nil {
				return err
			}
		}
		sb.WriteString(close)
	default:
		return ir.ErrNotEncodable
	}
	return nil
}

// Number renders a numeric node. Integral floats keep a trailing
// ".0" so they parse back as floats.
func Number(y *ir.Node) string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 == nil {
		return "null"
	}
	f := *y.Float64
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
