// Package debug provides env-gated diagnostic logging for the
// resolution pipeline. Set CONFWEAVE_DEBUG_RESOLVE, _REFS, _MERGE or
// _SERIALIZE to a truthy value to trace the corresponding stage on
// stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve   bool
	Refs      bool
	Merge     bool
	Serialize bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("CONFWEAVE_DEBUG_RESOLVE")
	d.Refs = boolEnv("CONFWEAVE_DEBUG_REFS")
	d.Merge = boolEnv("CONFWEAVE_DEBUG_MERGE")
	d.Serialize = boolEnv("CONFWEAVE_DEBUG_SERIALIZE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Refs() bool {
	return d.Refs
}
func Merge() bool {
	return d.Merge
}
func Serialize() bool {
	return d.Serialize
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
