package interview

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// evalSchemaDef constrains the evaluation object recovered by the
// defensive parser: the score must be a number within the grading scale.
var evalSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"score": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 10,
		},
		"analysis": map[string]any{
			"type": "string",
		},
	},
	"required": []any{"score"},
}

var (
	evalSchemaOnce sync.Once
	evalSchema     *jsonschema.Schema
	evalSchemaErr  error
)

func compiledEvalSchema() (*jsonschema.Schema, error) {
	evalSchemaOnce.Do(func() {
		// The compiler expects a parsed JSON value, not a Go map with
		// typed numbers. Round-trip through encoding/json first.
		raw, err := json.Marshal(evalSchemaDef)
		if err != nil {
			evalSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			evalSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://evaluation.json"
		if err := c.AddResource(url, parsed); err != nil {
			evalSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		evalSchema, evalSchemaErr = c.Compile(url)
	})
	return evalSchema, evalSchemaErr
}

// validateEval checks an extracted evaluation object against the schema.
// The fields map must already hold JSON-typed values (float64, string).
func validateEval(fields map[string]any) error {
	schema, err := compiledEvalSchema()
	if err != nil {
		return err
	}
	// Round-trip so validation sees canonical JSON values.
	raw, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return err
	}
	return schema.Validate(parsed)
}
