package render

import (
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-forms/pkg/state"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLayout replaces the default layout with pongo2 source. The layout
// receives body (field markup, mark it |safe), action, method, id, hidden,
// theme and stylesheet.
func WithLayout(source string) Option {
	return func(r *Renderer) {
		r.layoutSource = source
	}
}

// WithTemplatesFS sets the filesystem theme partials are loaded from.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(r *Renderer) {
		r.templates = fsys
	}
}

// WithTheme applies a go-theme renderer config. Partials["forms.layout"]
// names a layout inside the templates filesystem, CSSVars become a :root
// style block and AssetURL("forms.stylesheet") links a stylesheet.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.theme = cfg
	}
}

// WithStateEncoder embeds a snapshot of the form's values in every render
// under StateField.
func WithStateEncoder(encoder *state.Encoder, sensitive bool) Option {
	return func(r *Renderer) {
		r.state = encoder
		r.sensitive = sensitive
	}
}

// RenderOptions describe per-request data.
type RenderOptions struct {
	// Action is the form's submission URL.
	Action string
	// Method is the intended HTTP verb. PUT, PATCH and DELETE submit as POST
	// with a hidden _method input.
	Method string
	// Values are assigned with Form.SetValue before rendering.
	Values map[string]any
	// Params are applied with Form.Parse after Values, so a resubmitted
	// request wins over stored values.
	Params map[string]any
	// Hidden adds hidden inputs. Later entries win on name collisions.
	Hidden []HiddenField
}

func (o RenderOptions) action() string {
	return strings.TrimSpace(o.Action)
}
