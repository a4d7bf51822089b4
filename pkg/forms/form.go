package forms

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-forms/pkg/namespace"
)

// Option customises Form construction.
type Option func(*Form)

// WithNamespace overrides the schema's default namespace.
func WithNamespace(ns namespace.Namespace) Option {
	return func(f *Form) {
		if !ns.IsZero() {
			f.namespace = ns
		}
	}
}

// WithRegistry resolves kinds against reg instead of DefaultRegistry.
func WithRegistry(reg *Registry) Option {
	return func(f *Form) {
		if reg != nil {
			f.registry = reg
		}
	}
}

// Form is a composite node: one Field per schema intent, each at the form's
// namespace extended by the field name. Fields keep declaration order.
type Form struct {
	schema    *Schema
	namespace namespace.Namespace
	registry  *Registry
	names     []string
	fields    map[string]Field
}

var _ Field = (*Form)(nil)

// New resolves every intent of schema into a live Field. Resolution is eager:
// any unresolvable kind fails here and no Form is returned.
func New(schema *Schema, options ...Option) (*Form, error) {
	if schema == nil {
		return nil, fmt.Errorf("forms: schema is required")
	}

	form := &Form{
		schema:   schema,
		registry: DefaultRegistry(),
		fields:   make(map[string]Field, schema.Len()),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(form)
	}
	if form.namespace.IsZero() {
		form.namespace = schema.DefaultNamespace()
	}

	for _, intent := range schema.intents {
		field, err := form.buildField(intent)
		if err != nil {
			return nil, fmt.Errorf("forms: build field %q of %s: %w", intent.Name, form.namespace, err)
		}
		// A repeated name replaces the earlier field but keeps its position.
		if _, exists := form.fields[intent.Name]; !exists {
			form.names = append(form.names, intent.Name)
		}
		form.fields[intent.Name] = field
	}
	return form, nil
}

// MustNew mirrors New but panics on error.
func MustNew(schema *Schema, options ...Option) *Form {
	form, err := New(schema, options...)
	if err != nil {
		panic(err)
	}
	return form
}

func (f *Form) buildField(intent Intent) (Field, error) {
	factory, extracted, err := f.registry.resolveField(intent.Kind)
	if err != nil {
		return nil, err
	}
	if factory == nil {
		if factory, extracted, err = f.registry.resolveField(KindString); err != nil {
			return nil, err
		}
		if factory == nil {
			return nil, invalidComponent(CategoryField, intent.Kind, "no default field kind registered")
		}
	}

	field, err := factory(Init{
		Namespace: f.namespace.Extended(intent.Name),
		Options:   extracted,
		Registry:  f.registry,
	})
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, invalidComponent(CategoryField, intent.Kind, "factory returned no field")
	}
	return field, nil
}

// Name is the last namespace segment.
func (f *Form) Name() string { return f.namespace.Last() }

func (f *Form) Namespace() namespace.Namespace { return f.namespace }

// Schema returns the descriptor the form was built from.
func (f *Form) Schema() *Schema { return f.schema }

// Names returns the field names in declaration order.
func (f *Form) Names() []string {
	return append([]string(nil), f.names...)
}

// Field returns the named field.
func (f *Form) Field(name string) (Field, bool) {
	field, ok := f.fields[name]
	return field, ok
}

// Fields returns the fields in declaration order.
func (f *Form) Fields() []Field {
	out := make([]Field, 0, len(f.names))
	for _, name := range f.names {
		out = append(out, f.fields[name])
	}
	return out
}

// Parse distributes params to the fields. When params holds a map under the
// form's own name it is narrowed to that map first, so both a bare payload
// and one nested under the form name are accepted. Fields whose key is
// absent are left untouched.
func (f *Form) Parse(raw any) error {
	if raw == nil {
		return nil
	}
	params, ok := asMap(raw)
	if !ok {
		return fmt.Errorf("forms: %s expects a parameter map, got %T", f.namespace, raw)
	}
	if nested, ok := params[f.namespace.Last()]; ok {
		if narrowed, ok := asMap(nested); ok {
			params = narrowed
		}
	}

	for _, name := range f.names {
		value, ok := params[name]
		if !ok || value == nil {
			continue
		}
		if err := f.fields[name].Parse(value); err != nil {
			return fmt.Errorf("forms: parse %s: %w", f.fields[name].Namespace(), err)
		}
	}
	return nil
}

// SetValue assigns each field the entry stored under its name. Missing names
// are skipped.
func (f *Form) SetValue(value any) error {
	if value == nil {
		return nil
	}
	values, ok := asMap(value)
	if !ok {
		return fmt.Errorf("forms: %s expects a value map, got %T", f.namespace, value)
	}

	for _, name := range f.names {
		fieldValue, ok := values[name]
		if !ok {
			continue
		}
		if err := f.fields[name].SetValue(fieldValue); err != nil {
			return fmt.Errorf("forms: set %s: %w", f.fields[name].Namespace(), err)
		}
	}
	return nil
}

// Value returns Values as an any so Form satisfies Field.
func (f *Form) Value() any { return f.Values() }

// Values collects every field's value keyed by field name.
func (f *Form) Values() map[string]any {
	out := make(map[string]any, len(f.names))
	for _, name := range f.names {
		out[name] = f.fields[name].Value()
	}
	return out
}

// Render concatenates the fields' markup in declaration order without a
// wrapping element.
func (f *Form) Render() (string, error) {
	var builder strings.Builder
	for _, name := range f.names {
		markup, err := f.fields[name].Render()
		if err != nil {
			return "", fmt.Errorf("forms: render %s: %w", f.fields[name].Namespace(), err)
		}
		builder.WriteString(markup)
	}
	return builder.String(), nil
}
