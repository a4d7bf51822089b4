package forms_test

import (
	"github.com/goliatone/go-forms/pkg/forms"
	"github.com/goliatone/go-forms/pkg/namespace"
)

// recordingEditor captures Parse calls and renders a fixed fragment.
type recordingEditor struct {
	*forms.BaseEditor
	init     forms.Init
	parsed   []any
	rendered string
	id       string
}

func (e *recordingEditor) Parse(raw any) error {
	e.parsed = append(e.parsed, raw)
	e.SetValue(raw)
	return nil
}

func (e *recordingEditor) Render() (string, error) { return e.rendered, nil }

func (e *recordingEditor) PrimaryID() string {
	if e.id != "" {
		return e.id
	}
	return e.BaseEditor.PrimaryID()
}

// editorRecorder hands out recordingEditors and remembers each one built.
type editorRecorder struct {
	built    []*recordingEditor
	rendered string
	id       string
}

func (r *editorRecorder) factory(init forms.Init) (forms.Editor, error) {
	base, err := forms.NewBaseEditor(init)
	if err != nil {
		return nil, err
	}
	editor := &recordingEditor{BaseEditor: base, init: init, rendered: r.rendered, id: r.id}
	r.built = append(r.built, editor)
	return editor, nil
}

func (r *editorRecorder) last() *recordingEditor {
	if len(r.built) == 0 {
		return nil
	}
	return r.built[len(r.built)-1]
}

// recordingField captures every call made by a Form.
type recordingField struct {
	init     forms.Init
	parsed   []any
	assigned []any
	value    any
	rendered string
}

func (f *recordingField) Name() string { return f.init.Namespace.Last() }

func (f *recordingField) Namespace() namespace.Namespace { return f.init.Namespace }

func (f *recordingField) Value() any { return f.value }

func (f *recordingField) SetValue(value any) error {
	f.assigned = append(f.assigned, value)
	f.value = value
	return nil
}

func (f *recordingField) Parse(raw any) error {
	f.parsed = append(f.parsed, raw)
	return nil
}

func (f *recordingField) Render() (string, error) { return f.rendered, nil }

// fieldRecorder hands out recordingFields keyed by field name.
type fieldRecorder struct {
	built map[string]*recordingField
	calls int
}

func newFieldRecorder() *fieldRecorder {
	return &fieldRecorder{built: make(map[string]*recordingField)}
}

func (r *fieldRecorder) factory(init forms.Init) (forms.Field, error) {
	r.calls++
	field := &recordingField{init: init, rendered: init.Namespace.Last() + " field render"}
	r.built[init.Namespace.Last()] = field
	return field, nil
}

func newTestRegistry() *forms.Registry {
	return forms.NewRegistry().Clone()
}
