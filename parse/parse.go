// Package parse parses extended literal text into configuration
// trees.
package parse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/token"
)

// reserved is the grammar punctuation that promotes a parse failure
// to a malformed-value error instead of a bareword string fallback.
const reserved = `,'"{}[]$`

// Literal parses one extended literal: null, booleans, numbers with
// Infinity and NaN spellings, quoted strings, [lists], (tuples),
// {mappings} and ${references}. Text the grammar rejects falls back
// to a plain string unless it contains reserved punctuation, in
// which case a *MalformedValueError is returned.
func Literal(text string) (*ir.Node, error) {
	trimmed := strings.TrimSpace(text)
	toks, err := token.Tokenize(nil, []byte(trimmed))
	if err != nil {
		return fallback(trimmed)
	}
	if len(toks) == 0 {
		return fallback(trimmed)
	}
	off := 0
	res, err := value(toks, &off)
	if err != nil || off != len(toks) {
		return fallback(trimmed)
	}
	return res, nil
}

func fallback(text string) (*ir.Node, error) {
	if strings.ContainsAny(text, reserved) {
		return nil, &MalformedValueError{Value: text}
	}
	return ir.FromString(text), nil
}

func value(toks []token.Token, pi *int) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrValue)
	}
	t := &toks[*pi]
	*pi++
	switch t.Type {
	case token.TNull:
		return ir.Null(), nil
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TInt:
		i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			// out of int64 range, keep the magnitude
			f, ferr := strconv.ParseFloat(string(t.Bytes), 64)
			if ferr != nil {
				return nil, fmt.Errorf("%w: %s", ErrValue, t.Bytes)
			}
			return ir.FromFloat(f), nil
		}
		return ir.FromInt(i), nil
	case token.TFloat:
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrValue, t.Bytes)
		}
		return ir.FromFloat(f), nil
	case token.TInf:
		return ir.FromFloat(math.Inf(1)), nil
	case token.TNegInf:
		return ir.FromFloat(math.Inf(-1)), nil
	case token.TNaN:
		return ir.FromFloat(math.NaN()), nil
	case token.TString:
		return ir.FromString(t.String()), nil
	case token.TRef:
		return ir.FromRef(t.String()), nil
	case token.TLSquare:
		vs, err := elements(toks, pi, token.TRSquare)
		if err != nil {
			return nil, err
		}
		return ir.FromSlice(vs), nil
	case token.TLParen:
		vs, err := elements(toks, pi, token.TRParen)
		if err != nil {
			return nil, err
		}
		return ir.FromTuple(vs), nil
	case token.TLCurl:
		return mapping(toks, pi)
	default:
		return nil, fmt.Errorf("%w: unexpected %s", ErrValue, t.Type)
	}
}

func elements(toks []token.Token, pi *int, end token.TokenType) ([]*ir.Node, error) {
	vs := []*ir.Node{}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated collection", ErrValue)
		}
		if toks[*pi].Type == end {
			*pi++
			return vs, nil
		}
		v, err := value(toks, pi)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
		if *pi < len(toks) && toks[*pi].Type == token.TComma {
			*pi++
		} else if *pi >= len(toks) || toks[*pi].Type != end {
			return nil, fmt.Errorf("%w: expected %s", ErrValue, end)
		}
	}
}

func mapping(toks []token.Token, pi *int) (*ir.Node, error) {
	res := &ir.Node{Type: ir.MappingType}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unterminated mapping", ErrValue)
		}
		if toks[*pi].Type == token.TRCurl {
			*pi++
			return res, nil
		}
		if toks[*pi].Type != token.TString {
			return nil, fmt.Errorf("%w: mapping key must be a quoted string", ErrValue)
		}
		key := toks[*pi].String()
		*pi++
		if *pi >= len(toks) || toks[*pi].Type != token.TColon {
			return nil, fmt.Errorf("%w: expected ':' after mapping key", ErrValue)
		}
		*pi++
		v, err := value(toks, pi)
		if err != nil {
			return nil, err
		}
		res.Set(key, v)
		if *pi < len(toks) && toks[*pi].Type == token.TComma {
			*pi++
		} else if *pi >= len(toks) || toks[*pi].Type != token.TRCurl {
			return nil, fmt.Errorf("%w: expected %s", ErrValue, token.TRCurl)
		}
	}
}
