package confweave

import (
	"strconv"
	"strings"

	"github.com/confweave/confweave/debug"
	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/ir/loc"
)

// MergeOption adjusts merge behavior.
type MergeOption func(*merger)

// WithRemoveExtra drops update keys with no counterpart in the base,
// so an update can only override what the base already declares.
func WithRemoveExtra() MergeOption {
	return func(m *merger) {
		m.removeExtra = true
	}
}

// Merge layers updates over base left to right and returns a new
// tree; neither input is modified. Mappings merge recursively, every
// other type replaces wholesale. Two factory-marked mappings whose
// markers disagree also replace wholesale: parameters of one factory
// must not leak into another. Dotted keys in an update address nested
// values directly.
func Merge(base *ir.Node, updates []*ir.Node, opts ...MergeOption) (*ir.Node, error) {
	m := &merger{}
	for _, opt := range opts {
		opt(m)
	}
	res := base.Clone()
	for _, u := range updates {
		if err := m.rec(res, u); err != nil {
			return nil, err
		}
	}
	return res, nil
}

type merger struct {
	removeExtra bool
}

func (m *merger) rec(old, update *ir.Node) error {
	for i, key := range update.Keys {
		uv := update.Values[i]
		if strings.Contains(key, ".") {
			if err := m.deepSet(old, key, uv); err != nil {
				return err
			}
			continue
		}
		ov := ir.Get(old, key)
		switch {
		case ov == nil:
			if m.removeExtra {
				if debug.Merge() {
					debug.Logf("merge: dropping extra key %q\n", key)
				}
				continue
			}
			old.Set(key, uv.Clone())
		case ov.Type == ir.MappingType && uv.Type == ir.MappingType &&
			!factoryConflict(ov, uv):
			if err := m.rec(ov, uv); err != nil {
				return err
			}
		default:
			old.Set(key, uv.Clone())
		}
	}
	return nil
}

// factoryConflict reports whether two mappings request different
// constructions, either by marker key or by factory name.
func factoryConflict(old, update *ir.Node) bool {
	om, ov := factoryMarker(old)
	um, uv := factoryMarker(update)
	if om == "" || um == "" {
		return false
	}
	return om != um || !ov.Equal(uv)
}

func factoryMarker(y *ir.Node) (string, *ir.Node) {
	for i, k := range y.Keys {
		if strings.HasPrefix(k, FactorySigil) {
			return k, y.Values[i]
		}
	}
	return "", nil
}

// deepSet applies a dotted update key, walking intermediate mappings.
// Without WithRemoveExtra missing intermediates are created; with it
// the update is dropped as soon as the path leaves the base.
func (m *merger) deepSet(old *ir.Node, key string, v *ir.Node) error {
	l, err := loc.Parse(key)
	if err != nil {
		return err
	}
	cur := old
	for _, seg := range l[:len(l)-1] {
		f := segKey(seg)
		next := ir.Get(cur, f)
		if next == nil || next.Type != ir.MappingType {
			if m.removeExtra {
				return nil
			}
			next = ir.FromKeyVals()
			cur.Set(f, next)
		}
		cur = next
	}
	last := segKey(l[len(l)-1])
	if m.removeExtra && !cur.Has(last) {
		return nil
	}
	cur.Set(last, v.Clone())
	return nil
}

// segKey yields the mapping key a path segment addresses, without
// the quoting Seg.String applies.
func segKey(seg loc.Seg) string {
	if seg.Field != nil {
		return *seg.Field
	}
	return strconv.Itoa(*seg.Index)
}
