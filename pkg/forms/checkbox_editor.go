package forms

import "strings"

// Canonical checkbox values.
const (
	CheckboxChecked   = "1"
	CheckboxUnchecked = "0"
)

// CheckboxEditor renders a hidden "0" input followed by a "1" checkbox under
// the same name. Browsers only submit checked boxes and the last same-named
// value wins, so an unchecked box still submits "0".
type CheckboxEditor struct {
	*BaseEditor
}

// NewCheckboxEditor is the EditorFactory for the "checkbox" editor.
func NewCheckboxEditor(init Init) (Editor, error) {
	base, err := NewBaseEditor(init)
	if err != nil {
		return nil, err
	}
	return &CheckboxEditor{BaseEditor: base}, nil
}

// Parse stores raw verbatim; callers pass the resolved "1" or "0".
func (e *CheckboxEditor) Parse(raw any) error {
	e.SetValue(raw)
	return nil
}

// Checked reports whether the value is exactly "1".
func (e *CheckboxEditor) Checked() bool {
	value, ok := e.Value().(string)
	return ok && value == CheckboxChecked
}

func (e *CheckboxEditor) Render() (string, error) {
	name := e.InputName()

	var builder strings.Builder
	builder.WriteString(`<input`)
	writeAttr(&builder, "type", "hidden")
	writeAttr(&builder, "value", CheckboxUnchecked)
	writeAttr(&builder, "name", name)
	builder.WriteString(`>`)

	builder.WriteString(`<input`)
	writeAttr(&builder, "type", "checkbox")
	writeAttr(&builder, "value", CheckboxChecked)
	writeAttr(&builder, "name", name)
	writeAttr(&builder, "id", e.PrimaryID())
	if e.Checked() {
		writeAttr(&builder, "checked", "checked")
	}
	builder.WriteString(`>`)
	return builder.String(), nil
}
