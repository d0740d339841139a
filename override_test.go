package confweave

import (
	"testing"

	"github.com/confweave/confweave/ir"
)

func TestParseOverrides(t *testing.T) {
	res, err := ParseOverrides([]string{
		"--model.size=20",
		"--model.name=renamed",
		"--script.rate=0.5",
		"--debug",
		"--tags=[1, 2]",
		"--white-list", "true",
	})
	if err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	if *ir.Get(res, "model.size").Int64 != 20 {
		t.Errorf("model.size")
	}
	if ir.Get(res, "model.name").String != "renamed" {
		t.Errorf("model.name = %+v", ir.Get(res, "model.name"))
	}
	if *ir.Get(res, "script.rate").Float64 != 0.5 {
		t.Errorf("script.rate")
	}
	if ir.Get(res, "debug").Bool != true {
		t.Errorf("bare flag not true")
	}
	tags := ir.Get(res, "tags")
	if tags.Type != ir.SequenceType || len(tags.Values) != 2 {
		t.Errorf("tags = %+v", tags)
	}
	if ir.Get(res, "white_list").Bool != true {
		t.Errorf("dash not mapped to underscore")
	}
}

func TestParseOverridesBadArg(t *testing.T) {
	_, err := ParseOverrides([]string{"model.size=20"})
	if err == nil {
		t.Fatal("expected error for missing -- prefix")
	}
}

func TestParseOverridesMerge(t *testing.T) {
	base := mustParse(t, `
[model]
size = 10
`)
	ov, err := ParseOverrides([]string{"--model.size=30"})
	if err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	res, err := Merge(base, []*ir.Node{ov})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if *ir.Get(ir.Get(res, "model"), "size").Int64 != 30 {
		t.Errorf("override not applied")
	}
}
