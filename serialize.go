package confweave

import (
	"fmt"
	"io"
	"strings"

	"github.com/confweave/confweave/debug"
	"github.com/confweave/confweave/encode"
	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/ir/loc"
)

// Serialize renders a tree, resolved or not, in the sectioned text
// form. Constructed objects are written back as their provenance
// mappings; an object reached more than once is written once and
// referenced everywhere else, so shared identity survives a
// serialize/parse/resolve round trip. Mappings carrying an absolute
// path are hoisted to a section of that name and referenced from
// where they appeared.
func Serialize(tree *ir.Node) (string, error) {
	var sb strings.Builder
	if err := Dump(tree, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Dump is Serialize writing to w.
func Dump(tree *ir.Node, w io.Writer) error {
	if tree.Type != ir.MappingType {
		return fmt.Errorf("can only serialize a mapping, got %s", tree.Type)
	}
	s := &serializer{
		refs:       map[*ir.Node]string{},
		additional: ir.FromKeyVals(),
	}
	prepared, err := s.prepare(tree, nil)
	if err != nil {
		return err
	}
	var sections []*section
	byName := map[string]int{}
	flatten(prepared, nil, &sections, byName)

	var hoisted []*section
	flatten(s.additional, nil, &hoisted, map[string]int{})
	for _, h := range hoisted {
		if i, ok := byName[h.name]; ok {
			sections[i] = h
			continue
		}
		byName[h.name] = len(sections)
		sections = append(sections, h)
	}

	for _, sec := range sections {
		if _, err := fmt.Fprintf(w, "[%s]\n", sec.name); err != nil {
			return err
		}
		for i, k := range sec.keys {
			if _, err := fmt.Fprintf(w, "%s = %s\n", k, sec.vals[i]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

type serializer struct {
	// refs records the section a constructed object was first
	// written under, keyed by node identity.
	refs map[*ir.Node]string

	// additional collects mappings hoisted by absolute path.
	additional *ir.Node
}

// prepare rewrites a subtree so every remaining leaf has a literal
// encoding: objects become provenance mappings or back-references,
// path-carrying mappings move to additional.
func (s *serializer) prepare(o *ir.Node, at loc.Loc) (*ir.Node, error) {
	switch o.Type {
	case ir.ObjectType:
		if target, ok := s.refs[o]; ok {
			return ir.FromRef(target), nil
		}
		if n, err := ir.FromInterface(o.Object); err == nil {
			return s.prepare(n, at)
		}
		prov := o.Provenance
		if prov == nil {
			if p, ok := o.Object.(Provenancer); ok {
				prov = p.Provenance()
			}
		}
		if prov == nil {
			return nil, &SerializationError{Loc: at}
		}
		s.refs[o] = at.String()
		if debug.Serialize() {
			debug.Logf("serialize: object at %s written via provenance\n", at)
		}
		return s.prepare(prov, at)
	case ir.MappingType:
		base := at
		if o.AbsPath != nil {
			base = o.AbsPath
		}
		res := &ir.Node{
			Type: ir.MappingType,
			Keys: append([]string(nil), o.Keys...),
		}
		res.Values = make([]*ir.Node, len(o.Values))
		for i, v := range o.Values {
			p, err := s.prepare(v, base.Child(o.Keys[i]))
			if err != nil {
				return nil, err
			}
			res.Values[i] = p
		}
		if o.AbsPath != nil && at != nil {
			if err := s.hoist(o.AbsPath, res); err != nil {
				return nil, err
			}
			return ir.FromRef(o.AbsPath.String()), nil
		}
		return res, nil
	case ir.SequenceType, ir.TupleType:
		res := &ir.Node{Type: o.Type, Values: make([]*ir.Node, len(o.Values))}
		for i, v := range o.Values {
			p, err := s.prepare(v, at.At(i))
			if err != nil {
				return nil, err
			}
			res.Values[i] = p
		}
		return res, nil
	default:
		return o, nil
	}
}

func (s *serializer) hoist(at loc.Loc, v *ir.Node) error {
	if len(at) == 0 {
		return fmt.Errorf("hoisted mapping has an empty path")
	}
	parent, err := ensure(s.additional, at[:len(at)-1])
	if err != nil {
		return err
	}
	if at[len(at)-1].Field == nil {
		return fmt.Errorf("hoisted path %s: numeric segments not allowed", at)
	}
	parent.Set(*at[len(at)-1].Field, v)
	return nil
}

type section struct {
	name string
	keys []string
	vals []string
}

// flatten turns nested mappings into a flat ordered section list:
// each mapping becomes a section holding its non-mapping values, with
// sub-mappings recursed after, in key order. Non-mapping values at
// the root, which no section can hold, are dropped.
func flatten(d *ir.Node, at loc.Loc, out *[]*section, byName map[string]int) {
	if len(at) > 0 {
		sec := &section{name: at.String()}
		byName[sec.name] = len(*out)
		*out = append(*out, sec)
		for i, k := range d.Keys {
			v := d.Values[i]
			if v.Type == ir.MappingType {
				continue
			}
			enc, err := encode.Literal(v)
			if err != nil {
				// prepare already rewrote anything
				// unencodable
				continue
			}
			sec.keys = append(sec.keys, k)
			sec.vals = append(sec.vals, enc)
		}
	}
	for i, k := range d.Keys {
		if v := d.Values[i]; v.Type == ir.MappingType {
			flatten(v, at.Child(k), out, byName)
		}
	}
}
