package openapi_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forms/pkg/forms"
	"github.com/goliatone/go-forms/pkg/openapi"
)

const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Accounts", "version": "1.0.0" },
  "paths": {
    "/accounts": {
      "post": {
        "operationId": "createAccount",
        "summary": "Create an account",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/Account" }
            }
          }
        },
        "responses": { "201": { "description": "created" } }
      },
      "get": {
        "operationId": "listAccounts",
        "responses": { "200": { "description": "ok" } }
      }
    },
    "/accounts/{id}/flags": {
      "patch": {
        "parameters": [
          { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } }
        ],
        "requestBody": {
          "content": {
            "application/x-www-form-urlencoded": {
              "schema": {
                "type": "object",
                "properties": { "beta": { "type": "boolean" } }
              }
            }
          }
        },
        "responses": { "204": { "description": "updated" } }
      }
    }
  },
  "components": {
    "schemas": {
      "Account": {
        "type": "object",
        "properties": {
          "name": { "type": "string", "title": "Full name" },
          "newsletter": { "type": "boolean", "description": "Send <b>monthly</b> updates" },
          "age": { "type": "integer" },
          "address": { "$ref": "#/components/schemas/Address" }
        }
      },
      "Address": {
        "type": "object",
        "properties": {
          "street": { "type": "string" },
          "owner": { "$ref": "#/components/schemas/Account" }
        }
      }
    }
  }
}`

func TestOperationsListsRequestBodies(t *testing.T) {
	operations, err := openapi.Operations(context.Background(), []byte(document))
	if err != nil {
		t.Fatalf("operations: %v", err)
	}

	type summary struct{ ID, Method, Path string }
	var got []summary
	for _, op := range operations {
		got = append(got, summary{op.ID, op.Method, op.Path})
	}
	want := []summary{
		{"createAccount", "POST", "/accounts"},
		{"patch:/accounts/{id}/flags", "PATCH", "/accounts/{id}/flags"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaFromOperationBuildsForm(t *testing.T) {
	schema, err := openapi.SchemaFromOperation(context.Background(), []byte(document), "createAccount")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	form, err := forms.New(schema)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	if got := form.Namespace().String(); got != "create_account" {
		t.Fatalf("unexpected namespace %q", got)
	}
	if diff := cmp.Diff([]string{"address", "age", "name", "newsletter"}, form.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	address, ok := form.Field("address")
	if !ok {
		t.Fatalf("expected address field")
	}
	nested, ok := address.(*forms.Form)
	if !ok {
		t.Fatalf("expected nested form, got %T", address)
	}
	if diff := cmp.Diff([]string{"street"}, nested.Names()); diff != "" {
		t.Fatalf("nested fields mismatch (-want +got):\n%s", diff)
	}

	if err := form.Parse(map[string]any{"create_account": map[string]any{
		"name":       "Ada",
		"newsletter": "1",
		"age":        "36",
		"address":    map[string]any{"street": "Main"},
	}}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := map[string]any{
		"address":    map[string]any{"street": "Main"},
		"age":        "36",
		"name":       "Ada",
		"newsletter": true,
	}
	if diff := cmp.Diff(want, form.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	html, err := form.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{
		`<label for="create_account_name">Full name</label>`,
		`<p class="hint">Send <b>monthly</b> updates</p>`,
		`name="create_account[address][street]"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestOperationWithoutIDUsesCleanNamespace(t *testing.T) {
	schema, err := openapi.SchemaFromOperation(context.Background(), []byte(document), "patch:/accounts/{id}/flags")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	form, err := forms.New(schema)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	if got := form.Namespace().String(); got != "patch_accounts_id_flags" {
		t.Fatalf("unexpected namespace %q", got)
	}

	html, err := form.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{
		`id="patch_accounts_id_flags_beta"`,
		`name="patch_accounts_id_flags[beta]"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, html)
		}
	}
}

func TestSchemaFromOperationErrors(t *testing.T) {
	ctx := context.Background()

	if _, err := openapi.SchemaFromOperation(ctx, []byte(document), "listAccounts"); !errors.Is(err, openapi.ErrOperationNotFound) {
		t.Fatalf("expected not found for body-less operation, got %v", err)
	}
	if _, err := openapi.SchemaFromOperation(ctx, nil, "x"); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := openapi.SchemaFromOperation(ctx, []byte("{not json"), "x"); err == nil {
		t.Fatalf("expected error for invalid document")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := openapi.Operations(cancelled, []byte(document)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
