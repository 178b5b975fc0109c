package infrastructure

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrSchemaViolation возвращается, если документ не соответствует схеме списка
var ErrSchemaViolation = errors.New("документ не соответствует схеме")

// rosterSchema описывает сохранённый JSON-документ со списком студентов
const rosterSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["fullName", "age", "address", "rollNumber", "courses"],
    "properties": {
      "fullName":   {"type": "string", "minLength": 1},
      "age":        {"type": "integer"},
      "address":    {"type": "string", "minLength": 1},
      "rollNumber": {"type": "integer"},
      "courses": {
        "type": "array",
        "minItems": 4,
        "maxItems": 4,
        "items": {"type": "string", "enum": ["A", "B", "C", "D", "E", "F"]}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(rosterSchema))
	})
	return compiledSchema, schemaErr
}

// ValidateRosterDocument проверяет JSON-документ по схеме списка студентов
func ValidateRosterDocument(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("некорректная схема: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("не удалось проверить документ: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("%w:\n- %s", ErrSchemaViolation, strings.Join(errs, "\n- "))
}
