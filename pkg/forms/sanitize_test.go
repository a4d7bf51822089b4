package forms_test

import (
	"testing"

	"github.com/goliatone/go-forms/pkg/forms"
)

func TestSanitizeHintKeepsInlineMarkup(t *testing.T) {
	got := forms.SanitizeHint(`See <a href="https://example.com/terms" onclick="x()">terms</a><script>alert(1)</script>`)
	want := `See <a href="https://example.com/terms" rel="nofollow">terms</a>`
	if got != want {
		t.Fatalf("SanitizeHint = %q, want %q", got, want)
	}
}

func TestHintLosesMarkup(t *testing.T) {
	cases := map[string]bool{
		"":                                                  false,
		"Use <b>bold</b> only":                              false,
		"Don't share":                                       false,
		"Tom & Jerry":                                       false,
		`See <a href="https://example.com/terms">terms</a>`: false,
		"<script>alert(1)</script>Street":                   true,
		`<a href="https://example.com" onclick="x()">x</a>`: true,
		`<div>block</div>`:                                  true,
	}
	for input, want := range cases {
		if got := forms.HintLosesMarkup(input); got != want {
			t.Fatalf("HintLosesMarkup(%q) = %v, want %v", input, got, want)
		}
	}
}
