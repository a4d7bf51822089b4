// Package tui fills a Form interactively from the terminal. Answers are
// collected into the same nested shape a request would carry and applied
// with Form.Parse, so terminal input and HTTP submissions share one path.
package tui

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-forms/pkg/forms"
)

// Filler prompts for each field of a form.
type Filler struct {
	driver        PromptDriver
	sectionPrefix string
}

// New constructs a Filler backed by survey unless a driver is supplied.
func New(options ...Option) *Filler {
	f := &Filler{
		driver:        newSurveyDriver(),
		sectionPrefix: "==",
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

type editorField interface {
	Editor() forms.Editor
}

type labeledField interface {
	Label() string
}

type hintedField interface {
	Hint() string
}

// Fill prompts for every field in declaration order, recursing into nested
// forms, and parses the answers into form. Current values become defaults.
func (f *Filler) Fill(ctx context.Context, form *forms.Form) error {
	if form == nil {
		return errors.New("tui: form is nil")
	}
	answers, err := f.collect(ctx, form)
	if err != nil {
		return err
	}
	if err := form.Parse(map[string]any{form.Name(): answers}); err != nil {
		return fmt.Errorf("tui: parse answers: %w", err)
	}
	return nil
}

func (f *Filler) collect(ctx context.Context, form *forms.Form) (map[string]any, error) {
	answers := make(map[string]any, len(form.Names()))
	for _, field := range form.Fields() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if nested, ok := field.(*forms.Form); ok {
			heading := strings.TrimSpace(f.sectionPrefix + " " + forms.Humanize(nested.Name()))
			if err := f.driver.Info(ctx, heading); err != nil {
				return nil, err
			}
			values, err := f.collect(ctx, nested)
			if err != nil {
				return nil, err
			}
			answers[field.Name()] = values
			continue
		}

		answer, err := f.prompt(ctx, field)
		if err != nil {
			return nil, fmt.Errorf("tui: field %q: %w", field.Namespace().Path(), err)
		}
		answers[field.Name()] = answer
	}
	return answers, nil
}

func (f *Filler) prompt(ctx context.Context, field forms.Field) (string, error) {
	message := forms.Humanize(field.Name())
	if labeled, ok := field.(labeledField); ok {
		message = labeled.Label()
	}
	var help string
	if hinted, ok := field.(hintedField); ok {
		help = plainText(hinted.Hint())
	}

	var editor forms.Editor
	if withEditor, ok := field.(editorField); ok {
		editor = withEditor.Editor()
	}

	if checkbox, ok := editor.(*forms.CheckboxEditor); ok {
		checked, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: checkbox.Checked(),
			Help:    help,
		})
		if err != nil {
			return "", err
		}
		if checked {
			return forms.CheckboxChecked, nil
		}
		return forms.CheckboxUnchecked, nil
	}

	var current any
	if editor != nil {
		current = editor.Value()
	} else {
		current = field.Value()
	}
	return f.driver.Input(ctx, InputConfig{
		Message: message,
		Default: defaultText(current),
		Help:    help,
	})
}

func defaultText(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

var (
	stripOnce   sync.Once
	stripPolicy *bluemonday.Policy
)

// plainText drops markup from hints, which are written for HTML output, and
// decodes the entities the policy emits.
func plainText(hint string) string {
	if strings.TrimSpace(hint) == "" {
		return ""
	}
	stripOnce.Do(func() {
		stripPolicy = bluemonday.StripTagsPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(hint)))
}
