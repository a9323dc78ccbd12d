package trim

import (
	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

const trimmedDesc = "leading and trailing whitespace is trimmed"

// String is a string that is trimmed when decoded.
// JSON null leaves it empty.
type String string

// UnmarshalJSON implements [json.Unmarshaler] using [DecodeString].
func (s *String) UnmarshalJSON(data []byte) error {
	v, err := DecodeString(JSON(data))
	if err != nil {
		return err
	}
	*s = String(v)
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] using [DecodeString].
func (s *String) UnmarshalYAML(node *yaml.Node) error {
	v, err := DecodeString(YAML(node))
	if err != nil {
		return err
	}
	*s = String(v)
	return nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] so env, flag and map
// key decoders trim as well.
func (s *String) UnmarshalText(text []byte) error {
	v := string(text)
	*s = String(Space(&v))
	return nil
}

func (String) describeSchema(schema *openapi3.Schema) {
	schema.Type = &openapi3.Types{openapi3.TypeString}
	appendDescription(schema, trimmedDesc)
}

// Strings is a list of strings whose elements are trimmed when decoded.
type Strings []string

// UnmarshalJSON implements [json.Unmarshaler] using [DecodeStrings].
func (s *Strings) UnmarshalJSON(data []byte) error {
	v, err := DecodeStrings(JSON(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] using [DecodeStrings].
func (s *Strings) UnmarshalYAML(node *yaml.Node) error {
	v, err := DecodeStrings(YAML(node))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (Strings) describeSchema(schema *openapi3.Schema) {
	schema.Type = &openapi3.Types{openapi3.TypeArray}
	schema.Items = openapi3.NewStringSchema().NewRef()
	appendDescription(schema, trimmedDesc)
}
