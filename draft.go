package confweave

import "fmt"

// Draft is a deferred construction: the factory name and constructor
// were looked up during resolution, but invocation waits until the
// caller supplies the remaining parameters via Instantiate.
type Draft struct {
	Factory     string
	Constructor Constructor
	Params      map[string]any
}

// Instantiate invokes the constructor with extra merged under the
// draft's own parameters. On a key collision the draft's value wins.
func (d *Draft) Instantiate(extra map[string]any) (any, error) {
	params := make(map[string]any, len(d.Params)+len(extra))
	for k, v := range extra {
		params[k] = v
	}
	for k, v := range d.Params {
		params[k] = v
	}
	return d.Constructor(params)
}

func (d *Draft) String() string {
	return fmt.Sprintf("Draft[%s]", d.Factory)
}
