package forms

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-forms/pkg/namespace"
)

// Field is a schema node. Leaf fields own exactly one Editor; a nested Form
// is also a Field.
type Field interface {
	Name() string
	Namespace() namespace.Namespace
	Value() any
	SetValue(value any) error
	Parse(raw any) error
	Render() (string, error)
}

// BaseField wraps a single Editor and renders it with a label. Field kinds
// embed it and choose the default editor.
type BaseField struct {
	namespace namespace.Namespace
	editor    Editor
	label     string
	hint      string
	class     string
}

var _ Field = (*BaseField)(nil)

// NewBaseField resolves the editor from the "editor" option, falling back to
// defaultEditor, and instantiates it at the field's namespace.
func NewBaseField(init Init, defaultEditor EditorFactory) (*BaseField, error) {
	if init.Namespace.IsZero() {
		return nil, fmt.Errorf("%w: field constructed without a namespace", ErrEmptyNamespace)
	}

	factory, options, err := init.registry().resolveEditor(init.Options[OptionEditor])
	if err != nil {
		return nil, err
	}
	if factory == nil {
		factory = defaultEditor
	}
	if factory == nil {
		return nil, invalidComponent(CategoryEditor, init.Options[OptionEditor], "field kind declares no default editor")
	}

	editor, err := factory(Init{
		Namespace: init.Namespace,
		Options:   options,
		Registry:  init.Registry,
	})
	if err != nil {
		return nil, err
	}
	if editor == nil {
		return nil, invalidComponent(CategoryEditor, init.Options[OptionEditor], "factory returned no editor")
	}

	return &BaseField{
		namespace: init.Namespace,
		editor:    editor,
		label:     init.Options.String(OptionLabel),
		hint:      init.Options.String(OptionHint),
		class:     sanitizeClassList(init.Options.String(OptionClass)),
	}, nil
}

// Name is the last namespace segment.
func (f *BaseField) Name() string { return f.namespace.Last() }

func (f *BaseField) Namespace() namespace.Namespace { return f.namespace }

// Editor returns the owned editor.
func (f *BaseField) Editor() Editor { return f.editor }

func (f *BaseField) Value() any { return f.editor.Value() }

func (f *BaseField) SetValue(value any) error {
	f.editor.SetValue(value)
	return nil
}

func (f *BaseField) Parse(raw any) error { return f.editor.Parse(raw) }

// Label returns the label text: the "label" option when set, otherwise the
// humanized field name.
func (f *BaseField) Label() string {
	if label := strings.TrimSpace(f.label); label != "" {
		return label
	}
	return Humanize(f.Name())
}

// Hint returns the raw hint option. Render sanitizes it.
func (f *BaseField) Hint() string { return f.hint }

// Render produces <div><label for="id">Label</label>editor</div>.
func (f *BaseField) Render() (string, error) {
	control, err := f.editor.Render()
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(`<div`)
	if f.class != "" {
		writeAttr(&builder, "class", f.class)
	}
	builder.WriteString(`><label`)
	writeAttr(&builder, "for", f.editor.PrimaryID())
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(f.Label()))
	builder.WriteString(`</label>`)
	builder.WriteString(control)
	if hint := SanitizeHint(f.hint); hint != "" {
		builder.WriteString(`<p class="hint">`)
		builder.WriteString(hint)
		builder.WriteString(`</p>`)
	}
	builder.WriteString(`</div>`)
	return builder.String(), nil
}

func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.ContainsAny(token, `"'<>&`) {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
