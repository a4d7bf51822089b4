package forms

import (
	"fmt"
	"reflect"
)

// Spec is the outcome of resolving a component configuration. Handle is a
// FieldFactory or EditorFactory matching the requested category, or nil when
// the configuration was absent and the caller should apply its own default.
type Spec struct {
	Name    string
	Handle  any
	Options Options
}

// Resolve normalises config for category. Accepted shapes, in order:
//
//   - nil: empty Spec, the caller falls back to its default
//   - string: a registered kind name
//   - FieldFactory / EditorFactory (or the matching func literal): used as-is
//   - Component, or a map with exactly one entry: the kind is resolved as
//     above and the value becomes the options
//
// Anything else fails with an *InvalidComponentError.
func (r *Registry) Resolve(category Category, config any) (Spec, error) {
	switch typed := config.(type) {
	case nil:
		return Spec{Options: Options{}}, nil
	case Component:
		if typed.Kind == nil {
			return Spec{}, invalidComponent(category, config, "component kind is missing")
		}
		return r.resolveWithOptions(category, config, typed.Kind, typed.Options)
	case *Component:
		if typed == nil || typed.Kind == nil {
			return Spec{}, invalidComponent(category, config, "component kind is missing")
		}
		return r.resolveWithOptions(category, config, typed.Kind, typed.Options)
	}

	if entries, ok := config.(map[string]any); ok {
		return r.resolveEntry(category, config, entries)
	}
	if entries, ok := config.(Options); ok {
		return r.resolveEntry(category, config, entries)
	}
	if entries, ok := config.(map[string]Options); ok {
		if len(entries) != 1 {
			return Spec{}, invalidComponent(category, config, fmt.Sprintf("expected a single entry, got %d", len(entries)))
		}
		for kind, options := range entries {
			return r.resolveWithOptions(category, config, kind, options)
		}
	}

	spec, err := r.resolveKind(category, config)
	if err != nil {
		return Spec{}, err
	}
	spec.Options = Options{}
	return spec, nil
}

func (r *Registry) resolveEntry(category Category, config any, entries map[string]any) (Spec, error) {
	if len(entries) != 1 {
		return Spec{}, invalidComponent(category, config, fmt.Sprintf("expected a single entry, got %d", len(entries)))
	}
	for kind, raw := range entries {
		if raw == nil {
			return r.resolveWithOptions(category, config, kind, nil)
		}
		options, ok := asMap(raw)
		if !ok {
			return Spec{}, invalidComponent(category, config, fmt.Sprintf("options for %q must be a map, got %T", kind, raw))
		}
		return r.resolveWithOptions(category, config, kind, Options(options))
	}
	return Spec{}, invalidComponent(category, config, "")
}

func (r *Registry) resolveWithOptions(category Category, config, kind any, options Options) (Spec, error) {
	spec, err := r.resolveKind(category, kind)
	if err != nil {
		if invalid, ok := err.(*InvalidComponentError); ok {
			invalid.Config = config
		}
		return Spec{}, err
	}
	spec.Options = options.Clone()
	return spec, nil
}

// resolveKind handles the bare name and handle shapes.
func (r *Registry) resolveKind(category Category, kind any) (Spec, error) {
	switch typed := kind.(type) {
	case string:
		return r.lookup(category, typed)
	case FieldFactory:
		return handleSpec(category, kind, typed, nil)
	case func(Init) (Field, error):
		return handleSpec(category, kind, FieldFactory(typed), nil)
	case EditorFactory:
		return handleSpec(category, kind, nil, typed)
	case func(Init) (Editor, error):
		return handleSpec(category, kind, nil, EditorFactory(typed))
	default:
		return Spec{}, invalidComponent(category, kind, fmt.Sprintf("unsupported configuration type %s", describeType(kind)))
	}
}

func (r *Registry) lookup(category Category, name string) (Spec, error) {
	key := normalizeName(category, name)
	if key == "" {
		return Spec{}, invalidComponent(category, name, "kind name is empty")
	}
	switch category {
	case CategoryField:
		if factory, ok := r.FieldFactory(key); ok && factory != nil {
			return Spec{Name: key, Handle: factory}, nil
		}
	case CategoryEditor:
		if factory, ok := r.EditorFactory(key); ok && factory != nil {
			return Spec{Name: key, Handle: factory}, nil
		}
	}
	return Spec{}, invalidComponent(category, name, fmt.Sprintf("no %s registered as %q", category, key))
}

func handleSpec(category Category, config any, field FieldFactory, editor EditorFactory) (Spec, error) {
	switch category {
	case CategoryField:
		if field == nil {
			return Spec{}, invalidComponent(category, config, "handle does not construct a Field")
		}
		return Spec{Handle: field}, nil
	case CategoryEditor:
		if editor == nil {
			return Spec{}, invalidComponent(category, config, "handle does not construct an Editor")
		}
		return Spec{Handle: editor}, nil
	default:
		return Spec{}, invalidComponent(category, config, "unknown category")
	}
}

// resolveField resolves config to a FieldFactory; a nil factory means the
// configuration was absent.
func (r *Registry) resolveField(config any) (FieldFactory, Options, error) {
	spec, err := r.Resolve(CategoryField, config)
	if err != nil {
		return nil, nil, err
	}
	factory, _ := spec.Handle.(FieldFactory)
	return factory, spec.Options, nil
}

func (r *Registry) resolveEditor(config any) (EditorFactory, Options, error) {
	spec, err := r.Resolve(CategoryEditor, config)
	if err != nil {
		return nil, nil, err
	}
	factory, _ := spec.Handle.(EditorFactory)
	return factory, spec.Options, nil
}

func describeType(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
