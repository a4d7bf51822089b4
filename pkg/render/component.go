package render

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-forms/pkg/forms"
)

// Component renders the form's fields, without the layout, as a templ
// component.
func Component(form *forms.Form) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if form == nil {
			return errors.New("render: form is nil")
		}
		markup, err := form.Render()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, markup)
		return err
	})
}

// Component renders the complete form through the layout as a templ
// component.
func (r *Renderer) Component(form *forms.Form, options RenderOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := r.Render(ctx, form, options)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}
