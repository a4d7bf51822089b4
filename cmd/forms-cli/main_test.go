package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forms/pkg/forms"
)

const signupDoc = `
forms:
  signup:
    fields:
      - name: name
      - name: terms
        kind: boolean
`

type scriptedFiller struct {
	values map[string]any
	err    error
}

func (f scriptedFiller) Fill(_ context.Context, form *forms.Form) error {
	if f.err != nil {
		return f.err
	}
	return form.SetValue(f.values)
}

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forms.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return path
}

func TestRunJSONWithParams(t *testing.T) {
	cfg := config{
		schemaPath: writeSchema(t, signupDoc),
		query:      "signup[name]=Ada&signup[terms]=0&signup[terms]=1",
		format:     "json",
	}
	out, err := run(context.Background(), cfg, scriptedFiller{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "{\n  \"name\": \"Ada\",\n  \"terms\": true\n}\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunHTMLInteractive(t *testing.T) {
	cfg := config{
		schemaPath:  writeSchema(t, signupDoc),
		interactive: true,
		method:      "put",
		action:      "/signup",
		stateKey:    "secret",
	}
	out, err := run(context.Background(), cfg, scriptedFiller{values: map[string]any{"name": "Grace"}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	html := string(out)
	for _, fragment := range []string{
		`action="/signup" method="post"`,
		`name="_method" value="PUT"`,
		`name="_state"`,
		`value="Grace"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, html)
		}
	}
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	two := signupDoc + "  other:\n    fields:\n      - name: x\n"

	cases := map[string]config{
		"missing file":   {schemaPath: filepath.Join(t.TempDir(), "none.yaml")},
		"ambiguous form": {schemaPath: writeSchema(t, two)},
		"bad format":     {schemaPath: writeSchema(t, signupDoc), format: "xml"},
		"bad params":     {schemaPath: writeSchema(t, signupDoc), query: "a=1&a[b]=2"},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := run(ctx, cfg, scriptedFiller{}); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	aborted := errors.New("aborted")
	cfg := config{schemaPath: writeSchema(t, two), formName: "other", interactive: true}
	if _, err := run(ctx, cfg, scriptedFiller{err: aborted}); !errors.Is(err, aborted) {
		t.Fatalf("expected filler error, got %v", err)
	}
}
