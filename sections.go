package confweave

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/ir/loc"
	"github.com/confweave/confweave/parse"
)

// Item is one entry of a sectioned document: a raw literal at a key
// inside the section named by Loc. An Item with an empty Key only
// asserts that the section exists.
type Item struct {
	Loc loc.Loc
	Key string
	Raw string
}

// FromStr parses the sectioned text form into an unresolved tree.
// Section headers are dotted paths in square brackets; each following
// "key = value" line binds a literal under that section. Every
// malformed value in the document is reported, not just the first.
func FromStr(text string) (*ir.Node, error) {
	var items []Item
	var cur loc.Loc
	seen := false
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || line[0] == '#' || line[0] == ';':
			continue
		case line[0] == '[':
			if line[len(line)-1] != ']' {
				return nil, fmt.Errorf("line %d: malformed section header %q", lineno, line)
			}
			l, err := loc.Parse(line[1 : len(line)-1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineno, err)
			}
			cur = l
			seen = true
			items = append(items, Item{Loc: cur})
		default:
			if !seen {
				return nil, fmt.Errorf("line %d: key before any section header", lineno)
			}
			key, raw, ok := strings.Cut(line, "=")
			if !ok {
				return nil, fmt.Errorf("line %d: expected key = value, got %q", lineno, line)
			}
			items = append(items, Item{
				Loc: cur,
				Key: strings.TrimSpace(key),
				Raw: strings.TrimSpace(raw),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromItems(items)
}

// FromItems assembles an unresolved tree from pre-split section
// items, parsing each raw value with the literal grammar. Sections
// repeat freely; later items merge into earlier ones.
func FromItems(items []Item) (*ir.Node, error) {
	root := ir.FromKeyVals()
	var errs []error
	for _, it := range items {
		sect, err := ensure(root, it.Loc)
		if err != nil {
			return nil, err
		}
		if it.Key == "" {
			continue
		}
		v, err := parse.Literal(it.Raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", it.Loc.Child(it.Key), err))
			continue
		}
		sect.Set(it.Key, v)
	}
	if len(errs) > 0 {
		return nil, &ParseError{Errs: errs}
	}
	return root, nil
}

// ensure walks to the mapping at l, creating empty mappings along the
// way.
func ensure(root *ir.Node, l loc.Loc) (*ir.Node, error) {
	cur := root
	for i, seg := range l {
		if seg.Field == nil {
			return nil, fmt.Errorf("section %s: numeric segments not allowed", l)
		}
		next := ir.Get(cur, *seg.Field)
		if next == nil {
			next = ir.FromKeyVals()
			cur.Set(*seg.Field, next)
		} else if next.Type != ir.MappingType {
			return nil, fmt.Errorf("section %s: %s is not a section", l, l[:i+1])
		}
		cur = next
	}
	return cur, nil
}

// IsMalformed reports whether err stems from a literal that violates
// the value grammar, as opposed to a structural document error.
func IsMalformed(err error) bool {
	return errors.Is(err, parse.ErrValue)
}
