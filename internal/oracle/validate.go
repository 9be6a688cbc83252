package oracle

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce     sync.Once
	compiledVerdict *jsonschema.Schema
	compileErr      error
)

// validateVerdict validates raw JSON against the verdict schema.
// Returns *ErrInvalidVerdict on failure.
func validateVerdict(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidVerdict{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := compiledVerdictSchema()
	if err != nil {
		return &ErrInvalidVerdict{
			Content: raw,
			Err:     fmt.Errorf("compile verdict schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidVerdict{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// compiledVerdictSchema compiles the verdict schema once and caches it.
func compiledVerdictSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(verdictSchema)
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
		schemaURL := fmt.Sprintf("schema://%s.json", verdictSchemaName)
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledVerdict, compileErr = c.Compile(schemaURL)
	})
	return compiledVerdict, compileErr
}

func fmtMarkBoundError(got, max int) error {
	return fmt.Errorf("marks_awarded %d outside [0, %d]", got, max)
}
