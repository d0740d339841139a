package confweave

import (
	"fmt"
	"sort"
	"strings"

	"github.com/confweave/confweave/ir"
)

// Constructor builds a domain object from resolved parameter values.
type Constructor func(params map[string]any) (any, error)

// Registry maps factory names to constructors. The resolution engine
// consults it whenever a mapping carries a factory marker; the engine
// itself never constructs anything.
type Registry interface {
	Get(name string) (Constructor, error)
}

// MarkerRegistry is an optional upgrade of Registry for callers that
// dispatch on the marker key as well as the factory name, so "@model"
// and "@optimizer" can draw from distinct catalogues.
type MarkerRegistry interface {
	GetFor(marker, name string) (Constructor, error)
}

// Provenancer is implemented by constructed objects that report the
// factory mapping which produced them, replacing the resolution
// engine's own provenance record.
type Provenancer interface {
	Provenance() *ir.Node
}

// NotFoundError reports a factory name with no registered
// constructor, listing what is available.
type NotFoundError struct {
	Marker    string
	Name      string
	Available []string
}

func (e *NotFoundError) Error() string {
	avail := "none"
	if len(e.Available) > 0 {
		avail = strings.Join(e.Available, ", ")
	}
	if e.Marker != "" {
		return fmt.Sprintf("no %q factory registered under %q (available: %s)",
			e.Marker, e.Name, avail)
	}
	return fmt.Sprintf("no factory registered under %q (available: %s)", e.Name, avail)
}

// MapRegistry is the plain map-backed Registry.
type MapRegistry map[string]Constructor

func (m MapRegistry) Get(name string) (Constructor, error) {
	if c, ok := m[name]; ok {
		return c, nil
	}
	return nil, &NotFoundError{Name: name, Available: m.names()}
}

func (m MapRegistry) names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegistrySet keys catalogues by marker, "factory" or "model" or
// whatever markers the configs use. It satisfies both Registry and
// MarkerRegistry; plain Get searches markers in sorted order.
type RegistrySet map[string]MapRegistry

func (s RegistrySet) GetFor(marker, name string) (Constructor, error) {
	cat, ok := s[marker]
	if !ok {
		return nil, &NotFoundError{Marker: marker, Name: name, Available: s.markers()}
	}
	if c, ok := cat[name]; ok {
		return c, nil
	}
	return nil, &NotFoundError{Marker: marker, Name: name, Available: cat.names()}
}

func (s RegistrySet) Get(name string) (Constructor, error) {
	for _, marker := range s.markers() {
		if c, ok := s[marker][name]; ok {
			return c, nil
		}
	}
	var all []string
	for _, cat := range s {
		all = append(all, cat.names()...)
	}
	sort.Strings(all)
	return nil, &NotFoundError{Name: name, Available: all}
}

func (s RegistrySet) markers() []string {
	markers := make([]string, 0, len(s))
	for m := range s {
		markers = append(markers, m)
	}
	sort.Strings(markers)
	return markers
}
