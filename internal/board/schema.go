package board

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema only checks the two top-level keys. Task shape is left to
// the typed decode.
const documentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["boards", "currentBoard"],
	"properties": {
		"boards": {"type": "object"},
		"currentBoard": {"type": "string", "minLength": 1}
	}
}`

// storedSchema accepts a missing or empty currentBoard, which Load repairs.
const storedSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["boards"],
	"properties": {
		"boards": {"type": "object"},
		"currentBoard": {"type": "string"}
	}
}`

const (
	documentSchemaURL = "kanban-document.json"
	storedSchemaURL   = "kanban-stored.json"
)

var (
	compileOnce sync.Once
	schemas     map[string]*jsonschema.Schema
	compileErr  error
)

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		sources := map[string]string{
			documentSchemaURL: documentSchema,
			storedSchemaURL:   storedSchema,
		}
		for url, src := range sources {
			if err := compiler.AddResource(url, strings.NewReader(src)); err != nil {
				compileErr = fmt.Errorf("add schema %s: %w", url, err)
				return
			}
		}
		compiled := make(map[string]*jsonschema.Schema, len(sources))
		for url := range sources {
			schema, err := compiler.Compile(url)
			if err != nil {
				compileErr = err
				return
			}
			compiled[url] = schema
		}
		schemas = compiled
	})
	return schemas, compileErr
}

// validateShape checks a generic JSON value against the schema at url
func validateShape(url string, v any) error {
	compiled, err := compileSchemas()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := compiled[url].Validate(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, schemaMessage(err))
	}
	return nil
}

// schemaMessage reduces a validation error to its first leaf cause
func schemaMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return strings.TrimPrefix(ve.InstanceLocation, "/") + ": " + ve.Message
}
