package forms

import (
	"net/url"

	"github.com/goliatone/go-forms/pkg/namespace"
)

// Option keys understood by the built-in components.
const (
	OptionEditor = "editor"
	OptionLabel  = "label"
	OptionHint   = "hint"
	OptionClass  = "class"
)

// Options is the free-form configuration handed to a component factory.
type Options map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for key, value := range o {
		out[key] = value
	}
	return out
}

// String returns the option as a string when it holds one.
func (o Options) String(key string) string {
	if o == nil {
		return ""
	}
	value, _ := o[key].(string)
	return value
}

// Component pairs a kind (name or factory handle) with its options. It is the
// typed equivalent of the single-entry map configuration shape.
type Component struct {
	Kind    any
	Options Options
}

// With builds a Component.
func With(kind any, options Options) Component {
	return Component{Kind: kind, Options: options}
}

// Init carries the inputs of a component factory: the namespace the component
// lives at, the options extracted during resolution and the registry used to
// resolve any children.
type Init struct {
	Namespace namespace.Namespace
	Options   Options
	Registry  *Registry
}

func (i Init) registry() *Registry {
	if i.Registry != nil {
		return i.Registry
	}
	return DefaultRegistry()
}

// EditorFactory constructs an Editor.
type EditorFactory func(init Init) (Editor, error)

// FieldFactory constructs a Field.
type FieldFactory func(init Init) (Field, error)

func asMap(value any) (map[string]any, bool) {
	switch typed := value.(type) {
	case map[string]any:
		return typed, true
	case Options:
		return map[string]any(typed), true
	case map[string]string:
		out := make(map[string]any, len(typed))
		for key, val := range typed {
			out[key] = val
		}
		return out, true
	case url.Values:
		out := make(map[string]any, len(typed))
		for key, vals := range typed {
			if len(vals) == 0 {
				continue
			}
			out[key] = vals[len(vals)-1]
		}
		return out, true
	default:
		return nil, false
	}
}
