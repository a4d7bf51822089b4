package forms

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-forms/pkg/namespace"
)

// defaultRootSegment is used when a schema carries no name.
const defaultRootSegment = "form"

// Intent is a declared, unresolved schema entry. Kind accepts every shape
// Registry.Resolve understands; nil means the string kind.
type Intent struct {
	Name string
	Kind any
}

// Schema is an immutable, ordered list of field intents shared by every Form
// built from it.
type Schema struct {
	name      string
	namespace namespace.Namespace
	intents   []Intent
}

// Name returns the schema name the default namespace is derived from.
func (s *Schema) Name() string { return s.name }

// Intents returns a copy of the declared intents in declaration order.
func (s *Schema) Intents() []Intent {
	return append([]Intent(nil), s.intents...)
}

// Len reports the number of declared intents.
func (s *Schema) Len() int { return len(s.intents) }

// DefaultNamespace is the namespace a Form uses when none is supplied: the
// builder override if any, otherwise the snake-cased schema name as a single
// segment.
func (s *Schema) DefaultNamespace() namespace.Namespace {
	if !s.namespace.IsZero() {
		return s.namespace
	}
	if segment := SnakeName(s.name); segment != "" {
		return namespace.New(segment)
	}
	return namespace.New(defaultRootSegment)
}

// AsField returns a FieldFactory that nests this schema as a Form.
func (s *Schema) AsField() FieldFactory {
	return func(init Init) (Field, error) {
		form, err := New(s, WithNamespace(init.Namespace), WithRegistry(init.Registry))
		if err != nil {
			return nil, err
		}
		return form, nil
	}
}

// SchemaBuilder accumulates intents before freezing them into a Schema.
type SchemaBuilder struct {
	name      string
	namespace namespace.Namespace
	intents   []Intent
	err       error
}

// NewSchemaBuilder starts a schema with the given name.
func NewSchemaBuilder(name string) *SchemaBuilder {
	return &SchemaBuilder{name: strings.TrimSpace(name)}
}

// SchemaFor starts a schema named after v's Go type, so a form declared as
// type MyCustomForm in package scoped defaults to "scoped_my_custom_form".
func SchemaFor(v any) *SchemaBuilder {
	return NewSchemaBuilder(TypeName(v))
}

// Field declares an intent. kind is optional and defaults to "string"; at
// most one kind may be given.
func (b *SchemaBuilder) Field(name string, kind ...any) *SchemaBuilder {
	if b.err != nil {
		return b
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		b.err = fmt.Errorf("forms: schema %q declares a field without a name", b.name)
		return b
	}
	if len(kind) > 1 {
		b.err = fmt.Errorf("forms: schema %q field %q declares %d kinds", b.name, trimmed, len(kind))
		return b
	}

	intent := Intent{Name: trimmed, Kind: KindString}
	if len(kind) == 1 && kind[0] != nil {
		intent.Kind = kind[0]
	}
	b.intents = append(b.intents, intent)
	return b
}

// Namespace overrides the default root namespace of forms built from the
// schema.
func (b *SchemaBuilder) Namespace(segments ...string) *SchemaBuilder {
	b.namespace = namespace.New(segments...)
	return b
}

// Build freezes the declared intents.
func (b *SchemaBuilder) Build() (*Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Schema{
		name:      b.name,
		namespace: b.namespace,
		intents:   append([]Intent(nil), b.intents...),
	}, nil
}

// MustBuild mirrors Build but panics on error, for package-level schemas.
func (b *SchemaBuilder) MustBuild() *Schema {
	schema, err := b.Build()
	if err != nil {
		panic(err)
	}
	return schema
}
