package hypertext

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ValueRenderer renders a single value of a registered type through the
// escape boundary.
type ValueRenderer func(w *EscapeWriter, value any) error

// Registry stores custom value renderers keyed by concrete type, one set
// for content positions and one for attribute positions. Renderers are
// resolved once per value type during rendering and take precedence over
// the built-in handling. An empty registry never resolves.
type Registry struct {
	mu        sync.RWMutex
	content   map[reflect.Type]ValueRenderer
	attribute map[reflect.Type]ValueRenderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		content:   make(map[reflect.Type]ValueRenderer),
		attribute: make(map[reflect.Type]ValueRenderer),
	}
}

// RegisterContent adds a content-position renderer for sample's concrete
// type. Duplicate registrations return an error.
func (r *Registry) RegisterContent(sample any, renderer ValueRenderer) error {
	return r.register(r.content, "content", sample, renderer)
}

// MustRegisterContent panics on registration failure. Useful for init-time
// wiring.
func (r *Registry) MustRegisterContent(sample any, renderer ValueRenderer) {
	if err := r.RegisterContent(sample, renderer); err != nil {
		panic(err)
	}
}

// RegisterAttribute adds an attribute-position renderer for sample's
// concrete type. Duplicate registrations return an error.
func (r *Registry) RegisterAttribute(sample any, renderer ValueRenderer) error {
	return r.register(r.attribute, "attribute", sample, renderer)
}

// MustRegisterAttribute panics on registration failure.
func (r *Registry) MustRegisterAttribute(sample any, renderer ValueRenderer) {
	if err := r.RegisterAttribute(sample, renderer); err != nil {
		panic(err)
	}
}

func (r *Registry) register(table map[reflect.Type]ValueRenderer, surface string, sample any, renderer ValueRenderer) error {
	if renderer == nil {
		return fmt.Errorf("hypertext: %s renderer is required", surface)
	}
	if sample == nil {
		return fmt.Errorf("hypertext: %s renderer sample value is required", surface)
	}
	typ := reflect.TypeOf(sample)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := table[typ]; exists {
		return fmt.Errorf("hypertext: %s renderer for %s already registered", surface, typ)
	}
	table[typ] = renderer
	return nil
}

// ContentTypes returns the sorted type names with content renderers.
func (r *Registry) ContentTypes() []string {
	return r.typeNames(r.content)
}

// AttributeTypes returns the sorted type names with attribute renderers.
func (r *Registry) AttributeTypes() []string {
	return r.typeNames(r.attribute)
}

func (r *Registry) typeNames(table map[reflect.Type]ValueRenderer) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(table))
	for typ := range table {
		names = append(names, typ.String())
	}
	sort.Strings(names)
	return names
}

func (r *Registry) contentFor(typ reflect.Type) (ValueRenderer, bool) {
	if r == nil || typ == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.content[typ]
	return renderer, ok
}

func (r *Registry) attributeFor(typ reflect.Type) (ValueRenderer, bool) {
	if r == nil || typ == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.attribute[typ]
	return renderer, ok
}
