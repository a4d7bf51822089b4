package forms

// BooleanField edits a bool through a CheckboxEditor. It is the one kind that
// transforms values: SetValue(true) stores "1", any other value stores "0",
// and Value reports true only when the editor holds "1".
type BooleanField struct {
	*BaseField
}

// NewBooleanField is the FieldFactory for the "boolean" kind.
func NewBooleanField(init Init) (Field, error) {
	base, err := NewBaseField(init, NewCheckboxEditor)
	if err != nil {
		return nil, err
	}
	return &BooleanField{BaseField: base}, nil
}

func (f *BooleanField) SetValue(value any) error {
	if checked, ok := value.(bool); ok && checked {
		f.editor.SetValue(CheckboxChecked)
		return nil
	}
	f.editor.SetValue(CheckboxUnchecked)
	return nil
}

func (f *BooleanField) Value() any {
	raw, ok := f.editor.Value().(string)
	return ok && raw == CheckboxChecked
}
