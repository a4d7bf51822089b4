package forms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forms/pkg/forms"
)

func TestSchemaBuilderStoresIntents(t *testing.T) {
	options := map[string]any{"string": map[string]any{"editor": "text"}}
	schema := forms.NewSchemaBuilder("signup").
		Field("name", options).
		Field("email").
		MustBuild()

	want := []forms.Intent{
		{Name: "name", Kind: options},
		{Name: "email", Kind: "string"},
	}
	if diff := cmp.Diff(want, schema.Intents()); diff != "" {
		t.Fatalf("intents mismatch (-want +got):\n%s", diff)
	}
	if schema.Len() != 2 {
		t.Fatalf("expected 2 intents, got %d", schema.Len())
	}
}

func TestSchemaDefaultsToStringKind(t *testing.T) {
	schema := forms.NewSchemaBuilder("signup").Field("name").Field("nick", nil).MustBuild()
	for _, intent := range schema.Intents() {
		if intent.Kind != forms.KindString {
			t.Fatalf("intent %q: got kind %v", intent.Name, intent.Kind)
		}
	}
}

func TestSchemaIsImmutable(t *testing.T) {
	builder := forms.NewSchemaBuilder("signup").Field("name")
	schema := builder.MustBuild()

	builder.Field("late")
	intents := schema.Intents()
	intents[0].Name = "mutated"

	if diff := cmp.Diff([]forms.Intent{{Name: "name", Kind: "string"}}, schema.Intents()); diff != "" {
		t.Fatalf("schema mutated (-want +got):\n%s", diff)
	}
}

func TestSchemaBuilderErrors(t *testing.T) {
	if _, err := forms.NewSchemaBuilder("signup").Field(" ").Build(); err == nil {
		t.Fatalf("expected error for blank field name")
	}
	if _, err := forms.NewSchemaBuilder("signup").Field("a", "string", "boolean").Build(); err == nil {
		t.Fatalf("expected error for multiple kinds")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustBuild to panic")
		}
	}()
	forms.NewSchemaBuilder("signup").Field("").MustBuild()
}

func TestSchemaDefaultNamespace(t *testing.T) {
	cases := []struct {
		schema *forms.Schema
		want   []string
	}{
		{forms.NewSchemaBuilder("SignupForm").MustBuild(), []string{"signup_form"}},
		{forms.NewSchemaBuilder("").MustBuild(), []string{"form"}},
		{forms.NewSchemaBuilder("SignupForm").Namespace("account", "signup").MustBuild(), []string{"account", "signup"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, tc.schema.DefaultNamespace().Segments()); diff != "" {
			t.Fatalf("namespace mismatch for %q (-want +got):\n%s", tc.schema.Name(), diff)
		}
	}
}
