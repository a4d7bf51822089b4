package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/goliatone/go-forms/pkg/forms"
	"github.com/goliatone/go-forms/pkg/schema"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint form schema documents (files or directories).\n")
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var violations []violation
	for _, path := range paths {
		linted, err := lintPath(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) == 0 {
		fmt.Println(color.GreenString("ok"))
		return
	}
	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", color.RedString(v.file), v.location, v.message)
	}
	os.Exit(1)
}

func lintPath(path string) ([]violation, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var (
		store *schema.Store
		file  = path
	)
	if info.IsDir() {
		store, err = schema.LoadFS(os.DirFS(path))
	} else {
		var raw []byte
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		store, err = schema.Parse(raw, path)
	}
	if err != nil {
		return []violation{{file: file, location: "document", message: err.Error()}}, nil
	}
	return lintStore(store, path, info.IsDir()), nil
}

func lintStore(store *schema.Store, root string, dir bool) []violation {
	var result []violation
	for _, name := range store.Names() {
		file := root
		if dir {
			file = filepath.Join(root, filepath.FromSlash(store.Source(name)))
		}
		form, err := store.New(name)
		if err != nil {
			result = append(result, violation{file: file, location: "form " + name, message: err.Error()})
			continue
		}
		result = append(result, lintForm(file, []string{"form " + name}, form)...)
	}

	slices.SortFunc(result, func(a, b violation) int {
		if c := strings.Compare(a.file, b.file); c != 0 {
			return c
		}
		if c := strings.Compare(a.location, b.location); c != 0 {
			return c
		}
		return strings.Compare(a.message, b.message)
	})
	return result
}

type hintedField interface {
	Hint() string
}

func lintForm(file string, path []string, form *forms.Form) []violation {
	var result []violation
	if _, err := form.Render(); err != nil {
		result = append(result, violation{file: file, location: formatLocation(path), message: "render: " + err.Error()})
	}

	for _, field := range form.Fields() {
		next := appendPath(path, field.Name())
		if nested, ok := field.(*forms.Form); ok {
			result = append(result, lintForm(file, next, nested)...)
			continue
		}
		hinted, ok := field.(hintedField)
		if !ok {
			continue
		}
		raw := strings.TrimSpace(hinted.Hint())
		if forms.HintLosesMarkup(raw) {
			result = append(result, violation{
				file:     file,
				location: formatLocation(next),
				message:  fmt.Sprintf("hint markup is stripped by the sanitizer: %q", raw),
			})
		}
	}
	return result
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
