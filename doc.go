// Package confweave resolves configuration trees: sectioned text
// documents parse into an order-preserving tree, references between
// locations interpolate regardless of document order, and mappings
// carrying a factory marker construct domain objects through a
// caller-supplied Registry. Resolved trees serialize back to text
// with shared objects written once and referenced elsewhere, so a
// dump/parse/resolve round trip preserves identity.
//
// The typical pipeline is
//
//	tree, err := confweave.FromStr(text)
//	tree, err = confweave.Merge(tree, overrides)
//	resolved, err := confweave.Resolve(tree, registry)
//	text, err = confweave.Serialize(resolved)
//
// Subpackages hold the layers: ir is the tree representation, ir/loc
// the path language, token and parse the literal value grammar,
// encode its inverse, and refs the reference expression evaluator.
package confweave
