package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-forms/pkg/forms"
	"github.com/goliatone/go-forms/pkg/state"
)

// Renderer produces complete HTML forms.
type Renderer struct {
	layoutSource string
	templates    fs.FS
	theme        *theme.RendererConfig
	state        *state.Encoder
	sensitive    bool

	layout *pongo2.Template
}

// New compiles the layout. A theme layout partial takes precedence over
// WithLayout, which takes precedence over the built-in layout.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{layoutSource: defaultLayout}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	var loaders []pongo2.TemplateLoader
	if r.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(r.templates))
	}
	set := pongo2.NewSet("forms", loaders...)

	var err error
	if partial := themeLayout(r.theme); partial != "" {
		if r.templates == nil {
			return nil, fmt.Errorf("render: theme layout %q requires WithTemplatesFS", partial)
		}
		r.layout, err = set.FromFile(partial)
	} else {
		r.layout, err = set.FromString(r.layoutSource)
	}
	if err != nil {
		return nil, fmt.Errorf("render: compile layout: %w", err)
	}
	return r, nil
}

// ContentType returns the MIME type of rendered documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render applies options to form and renders it inside the layout.
func (r *Renderer) Render(ctx context.Context, form *forms.Form, options RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.New("render: form is nil")
	}

	if options.Values != nil {
		if err := form.SetValue(options.Values); err != nil {
			return nil, fmt.Errorf("render: apply values: %w", err)
		}
	}
	if options.Params != nil {
		if err := form.Parse(options.Params); err != nil {
			return nil, fmt.Errorf("render: apply params: %w", err)
		}
	}

	body, err := form.Render()
	if err != nil {
		return nil, fmt.Errorf("render: form %q: %w", form.Name(), err)
	}

	method, override := resolveMethod(options.Method)
	hidden := append([]HiddenField(nil), options.Hidden...)
	if override != nil {
		hidden = append(hidden, *override)
	}
	if r.state != nil {
		token, err := r.state.Snapshot(form, r.sensitive)
		if err != nil {
			return nil, fmt.Errorf("render: snapshot: %w", err)
		}
		hidden = append(hidden, Hidden(StateField, token))
	}

	data := pongo2.Context{
		"body":       body,
		"action":     options.action(),
		"method":     method,
		"id":         form.Namespace().FlatID(),
		"hidden":     sortHidden(hidden),
		"theme":      themeContext(r.theme),
		"stylesheet": themeStylesheet(r.theme),
	}

	var buf bytes.Buffer
	if err := r.layout.ExecuteWriter(data, &buf); err != nil {
		return nil, fmt.Errorf("render: execute layout: %w", err)
	}
	return buf.Bytes(), nil
}
