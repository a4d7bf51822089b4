package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/goliatone/go-forms/pkg/forms"
	"github.com/goliatone/go-forms/pkg/openapi"
	"github.com/goliatone/go-forms/pkg/params"
	"github.com/goliatone/go-forms/pkg/render"
	"github.com/goliatone/go-forms/pkg/renderers/tui"
	"github.com/goliatone/go-forms/pkg/schema"
	"github.com/goliatone/go-forms/pkg/state"
)

type config struct {
	schemaPath  string
	formName    string
	operation   string
	query       string
	interactive bool
	format      string
	method      string
	action      string
	stateKey    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.schemaPath, "schema", "", "schema document (YAML/JSON) or OpenAPI document with -operation")
	flag.StringVar(&cfg.formName, "form", "", "form name inside the schema document (optional when it declares one form)")
	flag.StringVar(&cfg.operation, "operation", "", "OpenAPI operationId to derive the form from")
	flag.StringVar(&cfg.query, "params", "", "query string parsed into the form, e.g. 'signup[name]=Ada'")
	flag.BoolVar(&cfg.interactive, "interactive", false, "fill the form from the terminal")
	flag.StringVar(&cfg.format, "format", "html", "output format: html or json")
	flag.StringVar(&cfg.method, "method", "post", "HTTP method of the rendered form")
	flag.StringVar(&cfg.action, "action", "", "action URL of the rendered form")
	flag.StringVar(&cfg.stateKey, "state-key", "", "embed a signed value snapshot using this key")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if strings.TrimSpace(cfg.schemaPath) == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	out, err := run(ctx, cfg, tui.New())
	if errors.Is(err, tui.ErrAborted) {
		fmt.Fprintln(os.Stderr, color.YellowString("Aborted"))
		os.Exit(130)
	}
	if err != nil {
		log.Fatalf("Failed to process form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Println(color.GreenString("Form written to %s", *output))
		return
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

type filler interface {
	Fill(ctx context.Context, form *forms.Form) error
}

func run(ctx context.Context, cfg config, fill filler) ([]byte, error) {
	data, err := os.ReadFile(cfg.schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	form, err := loadForm(ctx, cfg, data)
	if err != nil {
		return nil, err
	}

	if cfg.query != "" {
		submitted, err := params.ParseQuery(cfg.query)
		if err != nil {
			return nil, err
		}
		if err := form.Parse(submitted); err != nil {
			return nil, err
		}
	}

	if cfg.interactive {
		if err := fill.Fill(ctx, form); err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.format)) {
	case "json":
		payload, err := json.MarshalIndent(form.Values(), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(payload, '\n'), nil
	case "", "html":
		return renderHTML(ctx, cfg, form)
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}
}

func loadForm(ctx context.Context, cfg config, data []byte) (*forms.Form, error) {
	if cfg.operation != "" {
		s, err := openapi.SchemaFromOperation(ctx, data, cfg.operation)
		if err != nil {
			return nil, err
		}
		return forms.New(s)
	}

	store, err := schema.Parse(data, cfg.schemaPath)
	if err != nil {
		return nil, err
	}
	name := cfg.formName
	if name == "" {
		names := store.Names()
		if len(names) != 1 {
			return nil, fmt.Errorf("-form is required, %s declares %d forms: %s", cfg.schemaPath, len(names), strings.Join(names, ", "))
		}
		name = names[0]
	}
	return store.New(name)
}

func renderHTML(ctx context.Context, cfg config, form *forms.Form) ([]byte, error) {
	var options []render.Option
	if cfg.stateKey != "" {
		encoder, err := state.NewEncoder([]byte(cfg.stateKey))
		if err != nil {
			return nil, err
		}
		options = append(options, render.WithStateEncoder(encoder, false))
	}

	renderer, err := render.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, render.RenderOptions{
		Action: cfg.action,
		Method: cfg.method,
	})
}
