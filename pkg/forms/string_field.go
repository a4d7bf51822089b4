package forms

// StringField is the default field kind; it edits its value with a TextEditor
// unless configured otherwise.
type StringField struct {
	*BaseField
}

// NewStringField is the FieldFactory for the "string" kind.
func NewStringField(init Init) (Field, error) {
	base, err := NewBaseField(init, NewTextEditor)
	if err != nil {
		return nil, err
	}
	return &StringField{BaseField: base}, nil
}
