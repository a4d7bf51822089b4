package forms

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidComponent marks configuration that cannot be resolved into a
	// Field or Editor. It is a programmer error surfaced at construction time.
	ErrInvalidComponent = errors.New("forms: invalid component")
	// ErrNotImplemented is returned by BaseEditor operations that concrete
	// editors must provide.
	ErrNotImplemented = errors.New("forms: operation not implemented")
	// ErrEmptyNamespace is returned when a component is constructed without a
	// namespace.
	ErrEmptyNamespace = errors.New("forms: namespace is required")
)

// InvalidComponentError describes a configuration value that could not be
// resolved for the given category.
type InvalidComponentError struct {
	Category Category
	Config   any
	Reason   string
}

func (e *InvalidComponentError) Error() string {
	msg := fmt.Sprintf("forms: could not resolve `%s` from configuration: `%v`", e.Category, e.Config)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Is lets errors.Is(err, ErrInvalidComponent) match.
func (e *InvalidComponentError) Is(target error) bool {
	return target == ErrInvalidComponent
}

// IsInvalidComponent reports whether err stems from unresolvable configuration.
func IsInvalidComponent(err error) bool {
	return errors.Is(err, ErrInvalidComponent)
}

func invalidComponent(category Category, config any, reason string) error {
	return &InvalidComponentError{Category: category, Config: config, Reason: reason}
}
