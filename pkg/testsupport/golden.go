// Package testsupport holds fixture and golden-file helpers shared by tests.
// Set UPDATE_GOLDENS=1 to rewrite golden files from current output.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forms/pkg/schema"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustLoadStore parses a schema document fixture.
func MustLoadStore(t *testing.T, path string, options ...schema.Option) *schema.Store {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	store, err := schema.Parse(data, path, options...)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return store
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set and
// reports whether it did, in which case the test should return early.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the outputs differ.
func CompareGolden(want, got string) string {
	return cmp.Diff(want, got)
}
