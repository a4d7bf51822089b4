package forms

import "strings"

// TextEditor renders a single-line text input.
type TextEditor struct {
	*BaseEditor
}

// NewTextEditor is the EditorFactory for the "text" editor.
func NewTextEditor(init Init) (Editor, error) {
	base, err := NewBaseEditor(init)
	if err != nil {
		return nil, err
	}
	return &TextEditor{BaseEditor: base}, nil
}

// Parse stores raw as the value.
func (e *TextEditor) Parse(raw any) error {
	e.SetValue(raw)
	return nil
}

// Render emits <input type="text" value=".." name="a[b]" id="a_b">.
func (e *TextEditor) Render() (string, error) {
	var builder strings.Builder
	builder.WriteString(`<input`)
	writeAttr(&builder, "type", "text")
	writeAttr(&builder, "value", stringValue(e.Value()))
	writeAttr(&builder, "name", e.InputName())
	writeAttr(&builder, "id", e.PrimaryID())
	builder.WriteString(`>`)
	return builder.String(), nil
}
