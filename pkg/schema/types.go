package schema

import "github.com/goliatone/go-forms/pkg/forms"

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Namespace []string    `json:"namespace" yaml:"namespace"`
	Fields    []fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Name    string         `json:"name" yaml:"name"`
	Kind    any            `json:"kind" yaml:"kind"`
	Options map[string]any `json:"options" yaml:"options"`
	Form    string         `json:"form" yaml:"form"`
}

// Option configures a Store.
type Option func(*Store)

// WithRegistry sets the registry used to validate schemas at load time and
// to build forms through Store.New.
func WithRegistry(reg *forms.Registry) Option {
	return func(s *Store) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// Store holds the schemas declared by one or more documents.
type Store struct {
	schemas  map[string]*forms.Schema
	sources  map[string]string
	registry *forms.Registry
}
