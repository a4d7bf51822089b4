// Package namespace models the hierarchical path that addresses a node inside
// a form tree. The same path drives element ids, submission names and lookups
// into parameter and value maps.
package namespace

import (
	"fmt"
	"strings"
)

// Separator joins segments when building a flat id.
const Separator = "_"

// Namespace is an immutable, ordered sequence of path segments.
type Namespace struct {
	segments []string
}

// New builds a namespace from the provided segments. Blank segments are
// dropped after trimming.
func New(segments ...string) Namespace {
	clean := make([]string, 0, len(segments))
	for _, segment := range segments {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			clean = append(clean, trimmed)
		}
	}
	return Namespace{segments: clean}
}

// Parse converts a compound key such as "address[zip]" back into a namespace.
func Parse(compound string) (Namespace, error) {
	trimmed := strings.TrimSpace(compound)
	if trimmed == "" {
		return Namespace{}, fmt.Errorf("namespace: compound key is empty")
	}

	open := strings.IndexByte(trimmed, '[')
	if open == -1 {
		if strings.ContainsRune(trimmed, ']') {
			return Namespace{}, fmt.Errorf("namespace: unbalanced brackets in %q", compound)
		}
		return New(trimmed), nil
	}
	if open == 0 {
		return Namespace{}, fmt.Errorf("namespace: missing root segment in %q", compound)
	}

	segments := []string{trimmed[:open]}
	rest := trimmed[open:]
	for rest != "" {
		if rest[0] != '[' {
			return Namespace{}, fmt.Errorf("namespace: unexpected %q in %q", rest[0], compound)
		}
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			return Namespace{}, fmt.Errorf("namespace: unbalanced brackets in %q", compound)
		}
		segment := rest[1:end]
		if strings.TrimSpace(segment) == "" {
			return Namespace{}, fmt.Errorf("namespace: empty segment in %q", compound)
		}
		segments = append(segments, segment)
		rest = rest[end+1:]
	}
	return New(segments...), nil
}

// Extended returns a new namespace with segment appended. The receiver is
// left untouched.
func (n Namespace) Extended(segment string) Namespace {
	out := make([]string, 0, len(n.segments)+1)
	out = append(out, n.segments...)
	return New(append(out, segment)...)
}

// Segments returns a copy of the underlying segments.
func (n Namespace) Segments() []string {
	return append([]string(nil), n.segments...)
}

// Len reports the number of segments.
func (n Namespace) Len() int {
	return len(n.segments)
}

// IsZero reports whether the namespace has no segments.
func (n Namespace) IsZero() bool {
	return len(n.segments) == 0
}

// Last returns the final segment, or "" for an empty namespace.
func (n Namespace) Last() string {
	if len(n.segments) == 0 {
		return ""
	}
	return n.segments[len(n.segments)-1]
}

// FlatID joins the segments with Separator ("a_b_c"), suitable for element ids.
func (n Namespace) FlatID() string {
	return strings.Join(n.segments, Separator)
}

// CompoundKey renders the first segment bare and every following one in
// brackets ("a[b][c]"), matching the names browsers submit.
func (n Namespace) CompoundKey() string {
	if len(n.segments) == 0 {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(n.segments[0])
	for _, segment := range n.segments[1:] {
		builder.WriteByte('[')
		builder.WriteString(segment)
		builder.WriteByte(']')
	}
	return builder.String()
}

// Path joins the segments with dots ("a.b.c").
func (n Namespace) Path() string {
	return strings.Join(n.segments, ".")
}

// Equal reports whether both namespaces hold the same segments.
func (n Namespace) Equal(other Namespace) bool {
	if len(n.segments) != len(other.segments) {
		return false
	}
	for i := range n.segments {
		if n.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

func (n Namespace) String() string {
	return n.CompoundKey()
}
