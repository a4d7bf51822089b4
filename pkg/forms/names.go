package forms

import (
	"reflect"
	"regexp"
	"strings"
)

var (
	splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)
	humanWordsPattern = regexp.MustCompile(`[_\s]+`)
	typePathPattern   = regexp.MustCompile(`::|[./]`)
)

// Humanize turns a field name into label text: underscores become spaces, a
// trailing "_id" is dropped and only the first letter is upper-cased
// ("first_name" -> "First name"). Dashes are kept.
func Humanize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if trimmed := strings.TrimSuffix(name, "_id"); trimmed != "" {
		name = trimmed
	}

	words := humanWordsPattern.Split(name, -1)
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, strings.ToLower(word))
	}
	phrase := strings.Join(segments, " ")
	if phrase == "" {
		return ""
	}
	return strings.ToUpper(phrase[:1]) + phrase[1:]
}

// SnakeName derives the default root namespace segment from a type name.
// Path separators ("::", ".", "/") become underscores and CamelCase is split,
// so "Scoped::MyCustomForm" and "scoped.MyCustomForm" both give
// "scoped_my_custom_form".
func SnakeName(typeName string) string {
	typeName = strings.TrimLeft(strings.TrimSpace(typeName), "*")
	parts := typePathPattern.Split(typeName, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if snake := snakeCase(part); snake != "" {
			out = append(out, snake)
		}
	}
	return strings.Join(out, "_")
}

// TypeName returns the package-qualified name of v's type, dereferencing
// pointers ("pkg.Type").
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	typ := reflect.TypeOf(v)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.String()
}

// normalizeName folds a component name to its registry key: snake_case with
// any trailing category suffix removed ("BooleanField" -> "boolean").
func normalizeName(category Category, name string) string {
	key := snakeCase(name)
	suffix := "_" + strings.ToLower(string(category))
	if trimmed := strings.TrimSuffix(key, suffix); trimmed != "" {
		key = trimmed
	}
	return key
}

func snakeCase(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	var out strings.Builder
	runes := []rune(input)
	for i, r := range runes {
		if i > 0 && isBoundary(runes, i) {
			out.WriteByte('_')
		}
		out.WriteRune(r)
	}
	words := splitWordsPattern.Split(strings.ToLower(out.String()), -1)
	keep := words[:0]
	for _, word := range words {
		if word != "" {
			keep = append(keep, word)
		}
	}
	return strings.Join(keep, "_")
}

func isBoundary(runes []rune, index int) bool {
	prev, r := runes[index-1], runes[index]
	if isLower(prev) && isUpper(r) {
		return true
	}
	if isDigit(prev) && isUpper(r) {
		return true
	}
	// "HTMLInput" splits before the last capital of an acronym.
	if isUpper(prev) && isUpper(r) && index+1 < len(runes) && isLower(runes[index+1]) {
		return true
	}
	return false
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
