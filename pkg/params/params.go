// Package params decodes flat form submissions ("user[address][zip]=1") into
// the nested maps forms.Form.Parse consumes.
package params

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-forms/pkg/namespace"
)

// Decode nests values by their bracketed names. When a name repeats, the
// last value wins, matching how a checkbox's hidden "0" is overridden by the
// checked "1". Names ending in "[]" collect every value into a slice.
func Decode(values url.Values) (map[string]any, error) {
	out := make(map[string]any)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		vals := values[key]
		if len(vals) == 0 {
			continue
		}
		segments, collect, err := splitKey(key)
		if err != nil {
			return nil, err
		}
		var value any = vals[len(vals)-1]
		if collect {
			value = append([]string(nil), vals...)
		}
		if err := assign(out, segments, value, key); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// FromRequest parses the request body and query and decodes the result.
func FromRequest(r *http.Request) (map[string]any, error) {
	if r == nil {
		return nil, fmt.Errorf("params: request is nil")
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("params: parse form: %w", err)
	}
	return Decode(r.Form)
}

// ParseQuery decodes a raw query string such as "a[b]=1&c=2".
func ParseQuery(raw string) (map[string]any, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(strings.TrimSpace(raw), "?"))
	if err != nil {
		return nil, fmt.Errorf("params: parse query: %w", err)
	}
	return Decode(values)
}

// Lookup walks params along the namespace segments.
func Lookup(params map[string]any, ns namespace.Namespace) (any, bool) {
	if ns.IsZero() {
		return nil, false
	}
	var current any = params
	for _, segment := range ns.Segments() {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = node[segment]; !ok {
			return nil, false
		}
	}
	return current, true
}

func splitKey(key string) ([]string, bool, error) {
	collect := false
	trimmed := strings.TrimSpace(key)
	if strings.HasSuffix(trimmed, "[]") {
		collect = true
		trimmed = strings.TrimSuffix(trimmed, "[]")
	}
	ns, err := namespace.Parse(trimmed)
	if err != nil {
		return nil, false, fmt.Errorf("params: key %q: %w", key, err)
	}
	return ns.Segments(), collect, nil
}

func assign(target map[string]any, segments []string, value any, key string) error {
	node := target
	for _, segment := range segments[:len(segments)-1] {
		existing, ok := node[segment]
		if !ok {
			child := make(map[string]any)
			node[segment] = child
			node = child
			continue
		}
		child, ok := existing.(map[string]any)
		if !ok {
			return fmt.Errorf("params: key %q conflicts with scalar %q", key, segment)
		}
		node = child
	}

	leaf := segments[len(segments)-1]
	if existing, ok := node[leaf]; ok {
		if _, nested := existing.(map[string]any); nested {
			return fmt.Errorf("params: key %q conflicts with nested %q", key, leaf)
		}
	}
	node[leaf] = value
	return nil
}
