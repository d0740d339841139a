package confweave

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/confweave/confweave/ir"
)

// ApplyPatch applies an RFC 6902 JSON patch to a tree by round
// tripping through the JSON form. References survive as ${...}
// strings; objects have no JSON form and must be patched before
// resolution.
func ApplyPatch(tree *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(tree)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(out); err != nil {
		return nil, err
	}
	return res, nil
}
