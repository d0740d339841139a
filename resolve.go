package confweave

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/confweave/confweave/debug"
	"github.com/confweave/confweave/ir"
	"github.com/confweave/confweave/ir/loc"
	"github.com/confweave/confweave/refs"
)

// FactorySigil prefixes mapping keys that request object construction.
const FactorySigil = "@"

// draftSuffix on a factory name defers construction, yielding a
// *Draft instead of the constructed object.
const draftSuffix = "!draft"

// ResolveOption adjusts engine behavior.
type ResolveOption func(*resolver)

// WithoutFactories interpolates references but leaves factory-marked
// mappings as mappings, so a tree can be normalized without any
// registry lookups.
func WithoutFactories() ResolveOption {
	return func(r *resolver) {
		r.noFactories = true
	}
}

// Resolve interpolates every reference in tree and invokes registered
// constructors for factory-marked mappings, returning a new tree. The
// input tree is not modified. Nodes referenced from multiple places
// resolve exactly once and resolve to the same node, so shared
// subtrees stay shared in the result.
func Resolve(tree *ir.Node, reg Registry, opts ...ResolveOption) (*ir.Node, error) {
	r := &resolver{
		root:     tree,
		reg:      reg,
		resolved: map[*ir.Node]*ir.Node{},
		active:   map[*ir.Node]bool{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r.rec(tree, nil)
}

type resolver struct {
	root        *ir.Node
	reg         Registry
	noFactories bool

	// resolved memoizes by input node pointer so diamond-shaped
	// sharing in the input survives into the output.
	resolved map[*ir.Node]*ir.Node

	// active holds the recursion stack, not a visited set: entries
	// are removed on unwind so a retry after a missing reference
	// does not misreport a cycle.
	active map[*ir.Node]bool
}

func (r *resolver) rec(node *ir.Node, at loc.Loc) (*ir.Node, error) {
	if res, ok := r.resolved[node]; ok {
		return res, nil
	}
	if r.active[node] {
		return nil, &CyclicReferenceError{Loc: at}
	}
	r.active[node] = true
	defer delete(r.active, node)

	var res *ir.Node
	var err error
	switch node.Type {
	case ir.MappingType:
		res, err = r.mapping(node, at)
	case ir.SequenceType, ir.TupleType:
		res, err = r.sequence(node, at)
	case ir.ReferenceType:
		res, err = r.reference(node, at)
	default:
		res = node
	}
	if err != nil {
		return nil, err
	}
	r.resolved[node] = res
	return res, nil
}

func (r *resolver) sequence(node *ir.Node, at loc.Loc) (*ir.Node, error) {
	res := &ir.Node{
		Type:    node.Type,
		Values:  make([]*ir.Node, len(node.Values)),
		AbsPath: node.AbsPath,
	}
	for i, v := range node.Values {
		rv, err := r.rec(v, at.At(i))
		if err != nil {
			return nil, err
		}
		res.Values[i] = rv
	}
	return res, nil
}

// mapping resolves values in key order, deferring any that fail on a
// missing reference and retrying them while other resolutions make
// progress. Order-independence of forward references falls out of the
// retry loop rather than any dependency analysis.
func (r *resolver) mapping(node *ir.Node, at loc.Loc) (*ir.Node, error) {
	res := &ir.Node{
		Type:    ir.MappingType,
		Keys:    append([]string(nil), node.Keys...),
		Values:  make([]*ir.Node, len(node.Values)),
		AbsPath: node.AbsPath,
	}
	todo := make([]int, len(node.Values))
	for i := range todo {
		todo[i] = i
	}
	last := len(r.resolved)
	for len(todo) > 0 {
		var missing []string
		var retry []int
		for _, i := range todo {
			v, err := r.rec(node.Values[i], at.Child(node.Keys[i]))
			if err != nil {
				var me *refs.MissingError
				if errors.As(err, &me) {
					missing = append(missing, me.Refs...)
					retry = append(retry, i)
					continue
				}
				return nil, err
			}
			res.Values[i] = v
		}
		if len(retry) > 0 && len(r.resolved) <= last {
			return nil, refs.NewMissingError(missing)
		}
		todo = retry
		last = len(r.resolved)
	}
	if r.noFactories {
		return res, nil
	}
	return r.construct(res, at)
}

// construct applies a factory marker, if any, to a fully resolved
// mapping.
func (r *resolver) construct(res *ir.Node, at loc.Loc) (*ir.Node, error) {
	var markers []string
	for _, k := range res.Keys {
		if strings.HasPrefix(k, FactorySigil) {
			markers = append(markers, k)
		}
	}
	switch len(markers) {
	case 0:
		return res, nil
	case 1:
	default:
		return nil, &MultipleFactoryMarkersError{Loc: at, Keys: markers}
	}

	marker := markers[0]
	nameNode := ir.Get(res, marker)
	if nameNode.Type != ir.StringType {
		return nil, fmt.Errorf("factory marker %q at %s: name must be a string, got %s",
			marker, at, nameNode.Type)
	}
	name := nameNode.String
	draft := false
	if strings.HasSuffix(name, draftSuffix) {
		name = strings.TrimSpace(strings.TrimSuffix(name, draftSuffix))
		draft = true
	}
	ctor, err := r.lookup(marker[len(FactorySigil):], name)
	if err != nil {
		return nil, fmt.Errorf("at %s: %w", at, err)
	}

	params := map[string]any{}
	for i, k := range res.Keys {
		if k == marker {
			continue
		}
		params[k] = res.Values[i].Interface()
	}

	var obj any
	if draft {
		obj = &Draft{Factory: name, Constructor: ctor, Params: params}
	} else {
		obj, err = ctor(params)
		if err != nil {
			return nil, &ConstructorError{Loc: at, Factory: name, Err: err}
		}
	}
	if debug.Resolve() {
		debug.Logf("resolve: constructed %q at %s (draft=%v)\n", name, at, draft)
	}
	if _, ok := obj.(Provenancer); ok {
		return ir.FromObject(obj, nil), nil
	}
	return ir.FromObject(obj, res), nil
}

func (r *resolver) lookup(marker, name string) (Constructor, error) {
	if mr, ok := r.reg.(MarkerRegistry); ok {
		return mr.GetFor(marker, name)
	}
	return r.reg.Get(name)
}

// reference resolves a reference node. A bare dotted path resolves to
// the target node itself, preserving identity; anything else is an
// expression whose result is re-encoded as a fresh node.
func (r *resolver) reference(node *ir.Node, at loc.Loc) (*ir.Node, error) {
	if target, ok := refs.SinglePath(node.Ref); ok {
		res, err := r.demandNode(target)
		if err != nil {
			if errors.Is(err, refs.ErrMissing) {
				return nil, refs.NewMissingError([]string{node.Ref})
			}
			return nil, err
		}
		return res, nil
	}
	v, err := refs.Eval(node.Ref, r.demand)
	if err != nil {
		return nil, err
	}
	res, err := ir.FromInterface(v)
	if err != nil {
		// Expressions can surface opaque values, e.g. a field
		// of a constructed object.
		return ir.FromObject(v, nil), nil
	}
	return res, nil
}

// demand resolves a dotted path on behalf of an expression, yielding
// a plain Go value for the expression environment.
func (r *resolver) demand(target loc.Loc) (any, error) {
	n, err := r.demandNode(target)
	if err != nil {
		return nil, err
	}
	return n.Interface(), nil
}

// demandNode navigates the unresolved tree from the root and resolves
// whatever it finds there, resolving targets on demand regardless of
// document order.
func (r *resolver) demandNode(target loc.Loc) (*ir.Node, error) {
	cur := r.root
	for _, seg := range target {
		var next *ir.Node
		switch {
		case seg.Field != nil && cur.Type == ir.MappingType:
			next = ir.Get(cur, *seg.Field)
		case seg.Index != nil && cur.Type == ir.MappingType:
			next = ir.Get(cur, strconv.Itoa(*seg.Index))
		case seg.Index != nil &&
			(cur.Type == ir.SequenceType || cur.Type == ir.TupleType):
			if *seg.Index >= 0 && *seg.Index < len(cur.Values) {
				next = cur.Values[*seg.Index]
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %s", refs.ErrMissing, target)
		}
		cur = next
	}
	if debug.Resolve() {
		debug.Logf("resolve: demand %s\n", target)
	}
	return r.rec(cur, target)
}
