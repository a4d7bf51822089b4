package forms

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	hintPolicyOnce sync.Once
	hintPolicy     *bluemonday.Policy

	hintCheckOnce   sync.Once
	hintCheckPolicy *bluemonday.Policy
)

// SanitizeHint strips everything but inline formatting and links from hint
// markup.
func SanitizeHint(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	hintPolicyOnce.Do(func() {
		hintPolicy = newHintPolicy(true)
	})
	return strings.TrimSpace(hintPolicy.Sanitize(trimmed))
}

// HintLosesMarkup reports whether SanitizeHint would drop elements,
// attributes or text from raw. Entity escaping and the rel attribute added
// to links do not count.
func HintLosesMarkup(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	hintCheckOnce.Do(func() {
		hintCheckPolicy = newHintPolicy(false)
	})
	cleaned := strings.TrimSpace(hintCheckPolicy.Sanitize(trimmed))
	return html.UnescapeString(cleaned) != html.UnescapeString(trimmed)
}

func newHintPolicy(noFollow bool) *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements("b", "strong", "i", "em", "code", "small", "br")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowStandardURLs()
	policy.RequireNoFollowOnLinks(noFollow)
	return policy
}
