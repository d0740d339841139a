// Package loc implements the location path language used to address
// positions in a configuration tree.
//
// A location is an ordered sequence of segments separated by ".".
// Each segment is either a string field or an integer index into a
// sequence. Field segments whose text would not round-trip bare, for
// example those containing a "." or a quote, are quoted with single
// or double quotes:
//
//	a.b.c
//	a.'b.c'
//	layers.0.size
//
// Parse and String form an exact pair: Parse(l.String()) yields l
// for any location built from syntactically valid segments.
package loc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/confweave/confweave/token"
)

type Seg struct {
	Field *string
	Index *int
}

// Key makes a field segment.
func Key(f string) Seg {
	return Seg{Field: &f}
}

// Index makes an integer index segment.
func Index(i int) Seg {
	return Seg{Index: &i}
}

func (s Seg) String() string {
	if s.Index != nil {
		return strconv.Itoa(*s.Index)
	}
	f := *s.Field
	if token.NeedsQuote(f) {
		return token.Quote(f, true)
	}
	return f
}

func (s Seg) Equal(o Seg) bool {
	if (s.Field == nil) != (o.Field == nil) {
		return false
	}
	if s.Field != nil {
		return *s.Field == *o.Field
	}
	return *s.Index == *o.Index
}

// Loc is an ordered path of segments identifying a tree position.
// The nil Loc addresses the root.
type Loc []Seg

// Parse parses a dotted location. It fails with ErrMalformedPath
// when consumed text does not exactly cover the input, for example
// when a quoted segment is followed by anything but "." or the end.
func Parse(s string) (Loc, error) {
	if s == "" {
		return nil, nil
	}
	d := []byte(s)
	var res Loc
	i := 0
	for {
		switch {
		case i < len(d) && (d[i] == '\'' || d[i] == '"'):
			m, err := token.QuotedLen(d[i:])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedPath, s)
			}
			res = append(res, Key(token.QuotedToString(d[i:i+m])))
			i += m
		default:
			j := i
			for j < len(d) && d[j] != '.' && d[j] != '\'' && d[j] != '"' {
				j++
			}
			comp := string(d[i:j])
			if n, err := strconv.Atoi(comp); err == nil && comp[0] != '+' && comp[0] != '-' {
				res = append(res, Index(n))
			} else {
				res = append(res, Key(comp))
			}
			i = j
		}
		if i == len(d) {
			return res, nil
		}
		if d[i] != '.' {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPath, s)
		}
		i++
		if i == len(d) {
			// trailing separator denotes an empty last segment
			return append(res, Key("")), nil
		}
	}
}

// String joins the location with ".", quoting segments that would
// not round-trip bare.
func (l Loc) String() string {
	if len(l) == 0 {
		return ""
	}
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// With returns a copy of l extended by seg; l is not modified.
func (l Loc) With(seg Seg) Loc {
	res := make(Loc, len(l), len(l)+1)
	copy(res, l)
	return append(res, seg)
}

// Child returns a copy of l extended by a field segment.
func (l Loc) Child(f string) Loc {
	return l.With(Key(f))
}

// At returns a copy of l extended by an index segment.
func (l Loc) At(i int) Loc {
	return l.With(Index(i))
}

func (l Loc) Equal(o Loc) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
