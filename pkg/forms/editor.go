package forms

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-forms/pkg/namespace"
)

// Editor is a leaf node owning a single scalar value. Render must be a pure
// function of the current state so it can be called any number of times.
type Editor interface {
	Namespace() namespace.Namespace
	Value() any
	SetValue(value any)
	Parse(raw any) error
	Render() (string, error)
	// PrimaryID identifies the element a label should point at.
	PrimaryID() string
}

// BaseEditor holds the namespace and value shared by every editor. Concrete
// editors embed it and provide Parse and Render.
type BaseEditor struct {
	namespace namespace.Namespace
	value     any
}

var _ Editor = (*BaseEditor)(nil)

// NewBaseEditor validates init and returns the embeddable base.
func NewBaseEditor(init Init) (*BaseEditor, error) {
	if init.Namespace.IsZero() {
		return nil, fmt.Errorf("%w: editor constructed without a namespace", ErrEmptyNamespace)
	}
	return &BaseEditor{namespace: init.Namespace}, nil
}

func (e *BaseEditor) Namespace() namespace.Namespace { return e.namespace }

func (e *BaseEditor) Value() any { return e.value }

func (e *BaseEditor) SetValue(value any) { e.value = value }

// Parse must be provided by the concrete editor.
func (e *BaseEditor) Parse(any) error {
	return fmt.Errorf("%w: Parse must be implemented by the concrete editor (%s)", ErrNotImplemented, e.namespace)
}

// Render must be provided by the concrete editor.
func (e *BaseEditor) Render() (string, error) {
	return "", fmt.Errorf("%w: Render must be implemented by the concrete editor (%s)", ErrNotImplemented, e.namespace)
}

// PrimaryID defaults to the namespace flat id.
func (e *BaseEditor) PrimaryID() string {
	return e.namespace.FlatID()
}

// InputName is the submission name for the editor's controls.
func (e *BaseEditor) InputName() string {
	return e.namespace.CompoundKey()
}

func stringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

// writeAttr appends ` name="value"` with the value escaped.
func writeAttr(builder *strings.Builder, name, value string) {
	builder.WriteByte(' ')
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteByte('"')
}
