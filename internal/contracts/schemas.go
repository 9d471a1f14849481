// Package contracts holds the JSON schemas that gate every write into the
// catalog, compiled once at startup from the embedded filesystem.
package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"estate-service/internal/core/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemasFS embed.FS

const propertySchemaPath = "schemas/property/v1.json"

var propertySchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	file, err := schemasFS.Open(propertySchemaPath)
	if err != nil {
		log.Fatalf("failed to open embedded schema %s: %v", propertySchemaPath, err)
	}
	defer file.Close()

	if err := compiler.AddResource(propertySchemaPath, file); err != nil {
		log.Fatalf("failed to add schema resource %s: %v", propertySchemaPath, err)
	}
	propertySchema, err = compiler.Compile(propertySchemaPath)
	if err != nil {
		log.Fatalf("failed to compile schema %s: %v", propertySchemaPath, err)
	}
}

// PropertyValidator implements port.PropertyValidatorPort on top of the
// embedded property schema.
type PropertyValidator struct{}

func NewPropertyValidator() *PropertyValidator {
	return &PropertyValidator{}
}

// ValidateDraft checks a draft against the property schema and reports
// every violation at once, addressed per field.
func (v *PropertyValidator) ValidateDraft(draft domain.PropertyDraft) error {
	// Round-trip through JSON so the schema sees exactly the wire shape.
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft for validation: %w", err)
	}
	var instance interface{}
	if err := json.Unmarshal(raw, &instance); err != nil {
		return fmt.Errorf("unmarshal draft for validation: %w", err)
	}

	err = propertySchema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("schema validation: %w", err)
	}
	return &domain.ValidationError{Fields: collectFieldErrors(ve)}
}

// collectFieldErrors flattens the validator's error tree into per-field
// entries, skipping the aggregate "doesn't validate with" nodes.
func collectFieldErrors(ve *jsonschema.ValidationError) []domain.FieldError {
	var fields []domain.FieldError

	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			fields = append(fields, toFieldErrors(e)...)
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)

	if len(fields) == 0 {
		fields = append(fields, domain.FieldError{Field: "(root)", Message: ve.Message})
	}
	return fields
}

func toFieldErrors(e *jsonschema.ValidationError) []domain.FieldError {
	// "missing properties" violations point at the parent object; split
	// them so each missing field gets its own entry.
	if names, ok := missingProperties(e.Message); ok {
		out := make([]domain.FieldError, len(names))
		for i, name := range names {
			out[i] = domain.FieldError{
				Field:   joinFieldPath(e.InstanceLocation, name),
				Message: "is required",
			}
		}
		return out
	}

	field := fieldFromLocation(e.InstanceLocation)
	return []domain.FieldError{{Field: field, Message: e.Message}}
}

func missingProperties(msg string) ([]string, bool) {
	const prefix = "missing properties: "
	if !strings.HasPrefix(msg, prefix) {
		return nil, false
	}
	rest := strings.TrimPrefix(msg, prefix)
	parts := strings.Split(rest, ", ")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.Trim(p, "'"))
	}
	return names, true
}

func fieldFromLocation(instanceLocation string) string {
	trimmed := strings.TrimPrefix(instanceLocation, "/")
	if trimmed == "" {
		return "(root)"
	}
	return strings.ReplaceAll(trimmed, "/", ".")
}

func joinFieldPath(instanceLocation, name string) string {
	parent := fieldFromLocation(instanceLocation)
	if parent == "(root)" {
		return name
	}
	return parent + "." + name
}
