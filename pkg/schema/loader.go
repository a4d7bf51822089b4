package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-forms/pkg/forms"
)

type pendingForm struct {
	name   string
	source string
	file   formFile
}

// LoadFS walks fsys and loads every .json/.yaml/.yml document. Form names
// must be unique across files. Every schema is instantiated once against the
// store's registry so unresolvable kinds fail at load time.
func LoadFS(fsys fs.FS, options ...Option) (*Store, error) {
	store := newStore(options...)
	if fsys == nil {
		return store, nil
	}

	pending := make(map[string]pendingForm)
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		return collect(pending, data, path)
	})
	if err != nil {
		return nil, err
	}

	if err := store.build(pending); err != nil {
		return nil, err
	}
	return store, nil
}

// Parse loads a single document held in memory. source names it in errors.
func Parse(data []byte, source string, options ...Option) (*Store, error) {
	store := newStore(options...)
	pending := make(map[string]pendingForm)
	if err := collect(pending, data, source); err != nil {
		return nil, err
	}
	if err := store.build(pending); err != nil {
		return nil, err
	}
	return store, nil
}

// Schema returns the named schema.
func (s *Store) Schema(name string) (*forms.Schema, bool) {
	if s == nil {
		return nil, false
	}
	schema, ok := s.schemas[strings.TrimSpace(name)]
	return schema, ok
}

// Names returns the sorted schema names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Source reports which file declared the named schema.
func (s *Store) Source(name string) string {
	if s == nil {
		return ""
	}
	return s.sources[strings.TrimSpace(name)]
}

// New builds a Form from the named schema using the store's registry.
// Caller options are applied after the registry option.
func (s *Store) New(name string, options ...forms.Option) (*forms.Form, error) {
	schema, ok := s.Schema(name)
	if !ok {
		return nil, fmt.Errorf("schema: form %q not found", name)
	}
	opts := append([]forms.Option{forms.WithRegistry(s.registry)}, options...)
	return forms.New(schema, opts...)
}

func newStore(options ...Option) *Store {
	store := &Store{
		schemas:  make(map[string]*forms.Schema),
		sources:  make(map[string]string),
		registry: forms.DefaultRegistry(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(store)
		}
	}
	return store
}

func collect(pending map[string]pendingForm, data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for rawName, file := range doc.Forms {
		name := strings.TrimSpace(rawName)
		if name == "" {
			return fmt.Errorf("schema: file %s defines a form without a name", source)
		}
		if existing, exists := pending[name]; exists {
			return fmt.Errorf("schema: duplicate form %q (files %s and %s)", name, existing.source, source)
		}
		pending[name] = pendingForm{name: name, source: source, file: file}
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("schema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

func (s *Store) build(pending map[string]pendingForm) error {
	building := make(map[string]bool)

	var resolve func(name, from string) (*forms.Schema, error)
	resolve = func(name, from string) (*forms.Schema, error) {
		if schema, ok := s.schemas[name]; ok {
			return schema, nil
		}
		entry, ok := pending[name]
		if !ok {
			return nil, fmt.Errorf("schema: form %q referenced by %q is not defined", name, from)
		}
		if building[name] {
			return nil, fmt.Errorf("schema: form %q nests itself through %q", name, from)
		}
		building[name] = true
		defer delete(building, name)

		schema, err := buildSchema(entry, resolve)
		if err != nil {
			return nil, err
		}
		s.schemas[name] = schema
		s.sources[name] = entry.source
		return schema, nil
	}

	names := make([]string, 0, len(pending))
	for name := range pending {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if _, err := resolve(name, name); err != nil {
			return err
		}
	}
	for _, name := range names {
		if _, err := s.New(name); err != nil {
			return fmt.Errorf("schema: form %q (%s): %w", name, s.sources[name], err)
		}
	}
	return nil
}

func buildSchema(entry pendingForm, resolve func(name, from string) (*forms.Schema, error)) (*forms.Schema, error) {
	builder := forms.NewSchemaBuilder(entry.name)
	if len(entry.file.Namespace) > 0 {
		builder.Namespace(entry.file.Namespace...)
	}

	for idx, field := range entry.file.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, fmt.Errorf("schema: form %q field #%d has no name (%s)", entry.name, idx, entry.source)
		}
		kind, err := fieldKind(entry, field, resolve)
		if err != nil {
			return nil, err
		}
		builder.Field(name, kind)
	}

	schema, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %w", entry.source, err)
	}
	return schema, nil
}

func fieldKind(entry pendingForm, field fieldFile, resolve func(name, from string) (*forms.Schema, error)) (any, error) {
	kind := field.Kind
	if ref := strings.TrimSpace(field.Form); ref != "" {
		if kind != nil {
			return nil, fmt.Errorf("schema: form %q field %q sets both kind and form", entry.name, field.Name)
		}
		nested, err := resolve(ref, entry.name)
		if err != nil {
			return nil, err
		}
		kind = nested.AsField()
	}

	if len(field.Options) == 0 {
		return kind, nil
	}
	if _, isMap := kind.(map[string]any); isMap {
		return nil, fmt.Errorf("schema: form %q field %q sets options twice", entry.name, field.Name)
	}
	if kind == nil {
		kind = forms.KindString
	}
	return forms.With(kind, forms.Options(field.Options)), nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
