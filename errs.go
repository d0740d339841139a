package confweave

import (
	"fmt"
	"strings"

	"github.com/confweave/confweave/ir/loc"
	"github.com/confweave/confweave/refs"
)

// MissingReferenceError reports reference expressions that stayed
// unresolved after the engine exhausted forward-progress retries.
type MissingReferenceError = refs.MissingError

// CyclicReferenceError reports a location whose resolution
// transitively depends on itself.
type CyclicReferenceError struct {
	Loc loc.Loc
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic reference detected at %s", e.Loc)
}

// MultipleFactoryMarkersError reports more than one factory-sigil
// key at the same mapping level.
type MultipleFactoryMarkersError struct {
	Loc  loc.Loc
	Keys []string
}

func (e *MultipleFactoryMarkersError) Error() string {
	return fmt.Sprintf("multiple factory markers at %s: %s",
		e.Loc, strings.Join(e.Keys, ", "))
}

// ConstructorError reports a failed factory invocation, carrying the
// dotted location of the mapping whose construction failed.
type ConstructorError struct {
	Loc     loc.Loc
	Factory string
	Err     error
}

func (e *ConstructorError) Error() string {
	return fmt.Sprintf("constructor %q failed at %s: %v", e.Factory, e.Loc, e.Err)
}

func (e *ConstructorError) Unwrap() error {
	return e.Err
}

// SerializationError reports an object with no recoverable literal
// or provenance encoding.
type SerializationError struct {
	Loc loc.Loc
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot serialize object at %s", e.Loc)
}

// ParseError aggregates per-key parse failures across a whole parse,
// so one pass reports every offending key.
type ParseError struct {
	Errs []error
}

func (e *ParseError) Error() string {
	if len(e.Errs) == 1 {
		return e.Errs[0].Error()
	}
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d parse errors:\n%s", len(e.Errs), strings.Join(msgs, "\n"))
}

func (e *ParseError) Unwrap() []error {
	return e.Errs
}
