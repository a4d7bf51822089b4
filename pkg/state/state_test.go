package state_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forms/pkg/forms"
	"github.com/goliatone/go-forms/pkg/state"
)

func newEncoder(t *testing.T, key string) *state.Encoder {
	t.Helper()
	enc, err := state.NewEncoder([]byte(key))
	if err != nil {
		t.Fatalf("new encoder: %v", err)
	}
	return enc
}

func signupForm(t *testing.T) *forms.Form {
	t.Helper()
	address := forms.NewSchemaBuilder("address").Field("street").MustBuild()
	schema := forms.NewSchemaBuilder("signup").
		Field("name").
		Field("terms", forms.KindBoolean).
		Field("address", address.AsField()).
		MustBuild()
	return forms.MustNew(schema)
}

func TestNewEncoderKeys(t *testing.T) {
	for _, key := range []string{"short", strings.Repeat("k", 32), strings.Repeat("k", 48)} {
		if _, err := state.NewEncoder([]byte(key)); err != nil {
			t.Fatalf("key of length %d: %v", len(key), err)
		}
	}
	if _, err := state.NewEncoder(nil); !errors.Is(err, state.ErrEmptyKey) {
		t.Fatalf("expected empty key error, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	enc := newEncoder(t, "secret")
	values := map[string]any{
		"name":    "Ada",
		"terms":   true,
		"address": map[string]any{"street": "Main"},
	}

	for _, sensitive := range []bool{false, true} {
		token, err := enc.Encode(values, sensitive)
		if err != nil {
			t.Fatalf("encode (sensitive=%v): %v", sensitive, err)
		}
		if got := strings.Contains(token, "."); got == sensitive {
			t.Fatalf("unexpected token shape (sensitive=%v): %q", sensitive, token)
		}
		decoded, err := enc.Decode(token, sensitive)
		if err != nil {
			t.Fatalf("decode (sensitive=%v): %v", sensitive, err)
		}
		if diff := cmp.Diff(values, decoded); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDecodeRejectsTampering(t *testing.T) {
	enc := newEncoder(t, "secret")
	token, err := enc.Encode(map[string]any{"name": "Ada"}, false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	other := newEncoder(t, "other")
	if _, err := other.Decode(token, false); !errors.Is(err, state.ErrSignatureInvalid) {
		t.Fatalf("expected signature error, got %v", err)
	}
	if _, err := enc.Decode("no-signature", false); !errors.Is(err, state.ErrInvalidFormat) {
		t.Fatalf("expected format error, got %v", err)
	}

	sealed, err := enc.Encode(map[string]any{"name": "Ada"}, true)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := other.Decode(sealed, true); !errors.Is(err, state.ErrDecryptFailed) {
		t.Fatalf("expected decrypt error, got %v", err)
	}
	if _, err := enc.Decode("AA", true); !errors.Is(err, state.ErrInvalidFormat) {
		t.Fatalf("expected short ciphertext error, got %v", err)
	}
}

func TestSnapshotAndRestore(t *testing.T) {
	enc := newEncoder(t, "secret")

	source := signupForm(t)
	if err := source.Parse(map[string]any{"signup": map[string]any{
		"name":    "Ada",
		"terms":   "1",
		"address": map[string]any{"street": "Main"},
	}}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	token, err := enc.Snapshot(source, true)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	target := signupForm(t)
	if err := enc.Restore(target, token, true); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if diff := cmp.Diff(source.Values(), target.Values()); diff != "" {
		t.Fatalf("restored values mismatch (-want +got):\n%s", diff)
	}

	if err := enc.Restore(nil, token, true); err == nil {
		t.Fatalf("expected error for nil form")
	}
}
