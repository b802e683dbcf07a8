package problemgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const recordSchemaURL = "schema://exercise-record.json"

// RecordSchema is the JSON schema of a serialized ExerciseRecord.
var RecordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Subject tag of the generator",
		},
		"difficulty": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Template key the exercise was generated for",
		},
		"question": map[string]any{
			"type":        "string",
			"minLength":   1,
			"maxLength":   500,
			"description": "The exercise in its original, unsimplified form",
		},
		"questionLatex": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"solution": map[string]any{
			"type":        "string",
			"pattern":     `^-?(\d+(/\d+)?|\d*√\d+( [+-] \d*√\d+)*( [+-] \d+)?)$`,
			"description": "Canonical solution: integer, fraction or radical sum",
		},
		"solutionLatex": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"hints": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
	},
	"required":             []any{"type", "difficulty", "question", "questionLatex", "solution", "solutionLatex", "hints"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidateJSON validates a serialized record against RecordSchema.
func ValidateJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := recordSchema()
	if err != nil {
		return err
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// ValidateRecord serializes r and validates it against RecordSchema.
func ValidateRecord(r *ExerciseRecord) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	return ValidateJSON(raw)
}

// SchemaValidator checks the serialized form of a record against
// RecordSchema.
type SchemaValidator struct{}

func (v *SchemaValidator) Name() string { return "schema" }

func (v *SchemaValidator) Validate(r *ExerciseRecord) *ValidationError {
	if err := ValidateRecord(r); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	return nil
}

// recordSchema compiles RecordSchema once.
func recordSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not Go
		// maps with typed slices. Round-trip to get a clean representation.
		defBytes, err := json.Marshal(RecordSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(recordSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(recordSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}
