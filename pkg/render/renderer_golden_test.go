package render_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-forms/pkg/render"
	"github.com/goliatone/go-forms/pkg/testsupport"
)

func TestRenderMatchesGolden(t *testing.T) {
	store := testsupport.MustLoadStore(t, filepath.Join("testdata", "signup.yaml"))
	form, err := store.New("signup")
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(testsupport.Context(), form, render.RenderOptions{
		Action: "/signup",
		Method: "PATCH",
		Values: map[string]any{
			"full_name": "Ada & Co",
			"terms":     true,
			"address":   map[string]any{"city": "London"},
		},
		Hidden: []render.HiddenField{render.CSRFToken("_csrf", "tok")},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "signup.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}
	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
