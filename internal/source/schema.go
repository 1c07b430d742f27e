package source

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema describes a single question record. Answer-key fields accept
// the shapes seen in the wild: numbers, numeric strings, delimited strings
// and arrays. Normalization happens after validation.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string"},
		"question":    map[string]any{"type": "string"},
		"topic":       map[string]any{"type": "string"},
		"explanation": map[string]any{"type": "string"},
		"difficulty":  map[string]any{"type": "string"},
		"source_type": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 1,
		},
		"correct_index": map[string]any{"type": []any{"integer", "string"}},
		"correct_indices": map[string]any{"anyOf": []any{
			map[string]any{"type": "array"},
			map[string]any{"type": "string"},
		}},
		"tags": map[string]any{"anyOf": []any{
			map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			map[string]any{"type": "string"},
		}},
	},
	"required": []any{"question", "options"},
}

// fileSchema is the JSON Schema for a questions file: either a topic-keyed
// mapping of record lists, or a flat record array where each record carries
// its own topic.
var fileSchema = map[string]any{
	"anyOf": []any{
		map[string]any{
			"type":  "array",
			"items": recordSchema,
		},
		map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "array", "items": recordSchema},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateQuestionsJSON checks a parsed JSON document against fileSchema.
func validateQuestionsJSON(parsed any) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileFileSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile questions schema: %w", compileErr)
	}
	return compiledSchema.Validate(parsed)
}

func compileFileSchema() (*jsonschema.Schema, error) {
	// The compiler wants a parsed JSON value; round-trip the Go literal.
	defBytes, err := json.Marshal(fileSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://questions.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
