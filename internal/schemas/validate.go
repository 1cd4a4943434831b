// Package schemas provides JSON Schema validation for external parser responses.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed parsed_profile.schema.json
var parsedProfileSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateParserResponse validates a raw parser response against the parsed
// profile schema. The schema is permissive: the upstream parser adds fields
// over time and unknown properties must pass through.
func ValidateParserResponse(doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(parsedProfileSchema)
	docLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to validate parser response: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, e := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: e.Field(), Message: e.Description()})
	}
	return ve
}
