package confweave

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/confweave/confweave/ir"
)

// Diff computes a line-based diff between the serialized forms of two
// trees. Both trees must be serializable; with identical inputs the
// result is a single equal diff.
func Diff(a, b *ir.Node) ([]diffmatchpatch.Diff, error) {
	as, err := Serialize(a)
	if err != nil {
		return nil, err
	}
	bs, err := Serialize(b)
	if err != nil {
		return nil, err
	}
	return DiffText(as, bs), nil
}

// DiffText computes a line-based diff between two serialized
// documents.
func DiffText(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines)
}
