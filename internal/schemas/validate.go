// Package schemas provides JSON Schema validation for the records produced by the profiler.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jonathan/company-profiler/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbsPath)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + jsonAbsPath)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaAbsPath,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	return resultError(result)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	return resultError(result)
}

var (
	profileSchemaOnce sync.Once
	profileSchema     *gojsonschema.Schema
	profileSchemaErr  error
)

func companyProfileSchema() (*gojsonschema.Schema, error) {
	profileSchemaOnce.Do(func() {
		profileSchema, profileSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemas.CompanyProfile))
	})
	return profileSchema, profileSchemaErr
}

// ValidateCompanyProfile validates a serialized company profile against the
// embedded company_profile schema.
func ValidateCompanyProfile(data []byte) error {
	schema, err := companyProfileSchema()
	if err != nil {
		return &SchemaLoadError{
			Path:    "company_profile.schema.json",
			Message: "failed to compile embedded schema",
			Cause:   err,
		}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to load company profile document: %w", err)
	}

	return resultError(result)
}

func resultError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
