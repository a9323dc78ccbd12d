package trim

import (
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// schemaDescriber is implemented by the trimming types to replace the
// schema openapi3gen derives from their Go representation.
type schemaDescriber interface {
	describeSchema(schema *openapi3.Schema)
}

func appendDescription(schema *openapi3.Schema, desc string) {
	if schema.Description != "" && !strings.HasSuffix(schema.Description, " ") {
		schema.Description += " "
	}
	schema.Description += desc
}

// schemaDoc returns a SchemaCustomizer that documents the trimming types.
func schemaDoc() openapi3gen.SchemaCustomizerFn {
	return func(_ string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
		if d, ok := reflect.New(t).Interface().(schemaDescriber); ok {
			d.describeSchema(schema)
		}
		return nil
	}
}

// NewSchemaRefForValue generates an OpenAPI schema for value. [String] and
// [Strings] keep their string and array shapes, [Optional] becomes a
// nullable string and [Set] an array with uniqueItems; all of them are
// described as trimmed. Only fields with a json tag are included.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(schemaDoc()))
	return g.NewSchemaRefForValue(value, nil)
}
