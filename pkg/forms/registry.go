package forms

import (
	"fmt"
	"slices"
	"sync"
)

// Category names the kind of component being resolved.
type Category string

const (
	CategoryField  Category = "Field"
	CategoryEditor Category = "Editor"
)

// Built-in component names registered by NewRegistry.
const (
	KindString     = "string"
	KindBoolean    = "boolean"
	EditorText     = "text"
	EditorCheckbox = "checkbox"
)

// Registry maps component names to factories, one table per category.
// Registration is expected at boot; lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	fields  map[string]FieldFactory
	editors map[string]EditorFactory
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide registry used when a component is
// built without an explicit one. Plugins register against it during init.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// EmptyRegistry creates a registry with nothing registered.
func EmptyRegistry() *Registry {
	return &Registry{
		fields:  make(map[string]FieldFactory),
		editors: make(map[string]EditorFactory),
	}
}

// NewRegistry creates a registry pre-populated with the built-in string and
// boolean field kinds and the text and checkbox editors.
func NewRegistry() *Registry {
	reg := EmptyRegistry()
	reg.registerBuiltins()
	return reg
}

// Clone returns a copy that can be mutated without affecting the receiver.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := EmptyRegistry()
	for name, factory := range r.fields {
		cloned.fields[name] = factory
	}
	for name, factory := range r.editors {
		cloned.editors[name] = factory
	}
	return cloned
}

// RegisterField associates a field factory with name. Existing entries are
// replaced.
func (r *Registry) RegisterField(name string, factory FieldFactory) error {
	key := normalizeName(CategoryField, name)
	if key == "" {
		return fmt.Errorf("forms: field kind name is required")
	}
	if factory == nil {
		return fmt.Errorf("forms: factory for field kind %q is nil", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields[key] = factory
	return nil
}

// RegisterEditor associates an editor factory with name. Existing entries are
// replaced.
func (r *Registry) RegisterEditor(name string, factory EditorFactory) error {
	key := normalizeName(CategoryEditor, name)
	if key == "" {
		return fmt.Errorf("forms: editor name is required")
	}
	if factory == nil {
		return fmt.Errorf("forms: factory for editor %q is nil", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.editors[key] = factory
	return nil
}

// MustRegisterField mirrors RegisterField but panics on error.
func (r *Registry) MustRegisterField(name string, factory FieldFactory) {
	if err := r.RegisterField(name, factory); err != nil {
		panic(err)
	}
}

// MustRegisterEditor mirrors RegisterEditor but panics on error.
func (r *Registry) MustRegisterEditor(name string, factory EditorFactory) {
	if err := r.RegisterEditor(name, factory); err != nil {
		panic(err)
	}
}

// FieldFactory looks up a field kind by name.
func (r *Registry) FieldFactory(name string) (FieldFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.fields[normalizeName(CategoryField, name)]
	return factory, ok
}

// EditorFactory looks up an editor by name.
func (r *Registry) EditorFactory(name string) (EditorFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.editors[normalizeName(CategoryEditor, name)]
	return factory, ok
}

// FieldNames returns the sorted field kind names.
func (r *Registry) FieldNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EditorNames returns the sorted editor names.
func (r *Registry) EditorNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.editors))
	for name := range r.editors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) registerBuiltins() {
	r.MustRegisterField(KindString, NewStringField)
	r.MustRegisterField(KindBoolean, NewBooleanField)
	r.MustRegisterEditor(EditorText, NewTextEditor)
	r.MustRegisterEditor(EditorCheckbox, NewCheckboxEditor)
}
