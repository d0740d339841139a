package confweave

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestDiffEqual(t *testing.T) {
	a := mustParse(t, "[m]\nx = 1\n")
	b := mustParse(t, "[m]\nx = 1\n")
	diffs, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			t.Fatalf("unexpected %v diff: %q", d.Type, d.Text)
		}
	}
}

func TestDiffChange(t *testing.T) {
	a := mustParse(t, "[m]\nx = 1\ny = 2\n")
	b := mustParse(t, "[m]\nx = 1\ny = 3\n")
	diffs, err := Diff(a, b)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	var ins, del bool
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			ins = true
		case diffmatchpatch.DiffDelete:
			del = true
		}
	}
	if !ins || !del {
		t.Fatalf("expected insert and delete, got %v", diffs)
	}
}
