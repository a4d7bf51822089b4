package render

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

const (
	// MethodField carries the intended verb when the browser submits POST.
	MethodField = "_method"
	// StateField carries the encoded value snapshot.
	StateField = "_state"
)

// HiddenField is a hidden input emitted before the form's fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// CSRFToken carries a CSRF token under the name the backend expects
// ("_csrf", "csrf_token", ...).
func CSRFToken(name, token string) HiddenField { return Hidden(name, token) }

// AuthToken carries an authentication token or session hint.
func AuthToken(name, token string) HiddenField { return Hidden(name, token) }

// VersionField carries a version for optimistic locking.
func VersionField(name string, version any) HiddenField { return Hidden(name, version) }

// resolveMethod maps an HTTP verb onto what a browser form can submit.
// GET and POST pass through; other verbs submit as POST with an override.
func resolveMethod(method string) (string, *HiddenField) {
	verb := strings.ToUpper(strings.TrimSpace(method))
	switch verb {
	case "", http.MethodPost:
		return "post", nil
	case http.MethodGet:
		return "get", nil
	default:
		override := Hidden(MethodField, verb)
		return "post", &override
	}
}

// sortHidden drops unnamed fields, keeps the last value per name and orders
// the result by name.
func sortHidden(fields []HiddenField) []HiddenField {
	byName := make(map[string]string, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		byName[name] = field.Value
	}
	if len(byName) == 0 {
		return nil
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: name, Value: byName[name]})
	}
	return out
}
