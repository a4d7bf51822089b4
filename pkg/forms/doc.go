// Package forms binds a declarative schema of named fields to three views of
// the same data: submitted parameters, an in-memory value tree and rendered
// HTML fragments. Every node is addressed by a namespace.Namespace.
//
// A Schema is an immutable list of field intents. forms.New resolves each
// intent through a Registry into a live Field, and each Field resolves the
// Editor that owns its scalar value:
//
//	signup := forms.NewSchemaBuilder("signup").
//		Field("full_name").
//		Field("subscribe", "boolean").
//		MustBuild()
//
//	form, err := forms.New(signup)
//	if err != nil {
//		return err // unresolvable kinds fail here, never later
//	}
//	_ = form.Parse(map[string]any{"full_name": "Ada", "subscribe": "1"})
//	html, _ := form.Render()
//
// Component configuration accepts a bare kind name ("boolean"), a factory
// handle (forms.FieldFactory / forms.EditorFactory), a single-entry map of
// name or handle to options, or a forms.Component pair.
//
// Form instances are meant to be built per request and are not safe for
// concurrent mutation. Schemas and a Registry that is no longer written to
// can be shared freely.
package forms
