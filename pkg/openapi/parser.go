package openapi

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-forms/pkg/forms"
)

// ErrOperationNotFound is returned when the requested operationId is absent.
var ErrOperationNotFound = errors.New("openapi: operation not found")

// Operation describes an endpoint whose request body produced a schema.
type Operation struct {
	ID      string
	Method  string
	Path    string
	Summary string
	Schema  *forms.Schema
}

var nonWordPattern = regexp.MustCompile(`[^A-Za-z0-9]+`)

var requestMediaTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// Operations loads an OpenAPI document and returns every operation whose
// request body is an object, sorted by operation id. Operations without an
// operationId are keyed as "method:path" and their schema is named from the
// method and path with punctuation folded to underscores.
func Operations(ctx context.Context, data []byte) ([]Operation, error) {
	spec, err := load(ctx, data)
	if err != nil {
		return nil, err
	}

	var operations []Operation
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, operation := range item.Operations() {
			op, ok, err := convertOperation(method, path, operation)
			if err != nil {
				return nil, err
			}
			if ok {
				operations = append(operations, op)
			}
		}
	}

	slices.SortFunc(operations, func(a, b Operation) int {
		return strings.Compare(a.ID, b.ID)
	})
	return operations, nil
}

// SchemaFromOperation returns the schema derived from the request body of
// operationID.
func SchemaFromOperation(ctx context.Context, data []byte, operationID string) (*forms.Schema, error) {
	operations, err := Operations(ctx, data)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSpace(operationID)
	for _, op := range operations {
		if op.ID == id {
			return op.Schema, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
}

func load(ctx context.Context, data []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	return spec, nil
}

func convertOperation(method, path string, operation *openapi3.Operation) (Operation, bool, error) {
	if operation == nil || operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return Operation{}, false, nil
	}
	body := requestSchema(operation.RequestBody.Value.Content)
	if body == nil || !isObject(body.Value) {
		return Operation{}, false, nil
	}

	id := strings.TrimSpace(operation.OperationID)
	name := id
	if id == "" {
		id = strings.ToLower(method) + ":" + path
		name = schemaName(method, path)
	}

	schema, err := convertObject(name, body.Value, map[*openapi3.Schema]bool{})
	if err != nil {
		return Operation{}, false, fmt.Errorf("openapi: operation %q: %w", id, err)
	}
	return Operation{
		ID:      id,
		Method:  strings.ToUpper(method),
		Path:    path,
		Summary: operation.Summary,
		Schema:  schema,
	}, true, nil
}

// schemaName turns a method and path into a namespace-safe form name
// ("PATCH /accounts/{id}/flags" -> "patch_accounts_id_flags").
func schemaName(method, path string) string {
	words := nonWordPattern.ReplaceAllString(strings.ToLower(method+" "+path), "_")
	return strings.Trim(words, "_")
}

func requestSchema(content openapi3.Content) *openapi3.SchemaRef {
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema
		}
	}
	return nil
}

// convertObject maps properties in name order. A property whose schema is
// already being converted higher up is skipped to break reference cycles.
func convertObject(name string, src *openapi3.Schema, visiting map[*openapi3.Schema]bool) (*forms.Schema, error) {
	visiting[src] = true
	defer delete(visiting, src)

	names := make([]string, 0, len(src.Properties))
	for property := range src.Properties {
		names = append(names, property)
	}
	slices.Sort(names)

	builder := forms.NewSchemaBuilder(name)
	for _, property := range names {
		ref := src.Properties[property]
		if ref == nil || ref.Value == nil || visiting[ref.Value] {
			continue
		}
		kind, err := propertyKind(property, ref.Value, visiting)
		if err != nil {
			return nil, err
		}
		builder.Field(property, kind)
	}
	return builder.Build()
}

func propertyKind(name string, prop *openapi3.Schema, visiting map[*openapi3.Schema]bool) (any, error) {
	var kind any = forms.KindString
	switch {
	case isObject(prop):
		nested, err := convertObject(name, prop, visiting)
		if err != nil {
			return nil, err
		}
		return nested.AsField(), nil
	case hasType(prop, openapi3.TypeBoolean):
		kind = forms.KindBoolean
	}

	options := forms.Options{}
	if title := strings.TrimSpace(prop.Title); title != "" {
		options[forms.OptionLabel] = title
	}
	if description := strings.TrimSpace(prop.Description); description != "" {
		options[forms.OptionHint] = description
	}
	if len(options) == 0 {
		return kind, nil
	}
	return forms.With(kind, options), nil
}

func isObject(schema *openapi3.Schema) bool {
	if schema == nil {
		return false
	}
	if hasType(schema, openapi3.TypeObject) {
		return true
	}
	return schema.Type == nil && len(schema.Properties) > 0
}

func hasType(schema *openapi3.Schema, typ string) bool {
	if schema == nil || schema.Type == nil {
		return false
	}
	return slices.Contains(schema.Type.Slice(), typ)
}
