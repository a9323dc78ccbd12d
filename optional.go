package trim

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Optional is a string that may be absent. The zero value is absent, so a
// field missing from the input stays absent. Decoded values are trimmed and
// a value that is blank after trimming becomes absent.
type Optional struct {
	value string
	set   bool
}

// Some returns an Optional holding v trimmed, or an absent Optional when v
// is blank.
func Some(v string) Optional {
	return OptionalFrom(&v)
}

// None returns an absent Optional.
func None() Optional {
	return Optional{}
}

// OptionalFrom converts a pointer result of [DecodeOptional] into an
// Optional. The pointed-to string is trimmed in place.
func OptionalFrom(p *string) Optional {
	if p == nil || Space(p) == "" {
		return Optional{}
	}
	return Optional{value: *p, set: true}
}

// Get returns the value and whether it is present.
func (o Optional) Get() (string, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional) IsSet() bool {
	return o.set
}

// Or returns the value when present, otherwise def.
func (o Optional) Or(def string) string {
	if o.set {
		return o.value
	}
	return def
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Optional) Ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// String returns the value, or "<unset>" when absent.
func (o Optional) String() string {
	if !o.set {
		return "<unset>"
	}
	return o.value
}

// Value implements [driver.Valuer]. Absent is reported as nil, which makes
// ozzo-validation treat it as empty.
func (o Optional) Value() (driver.Value, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

// MarshalJSON writes null when absent.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// MarshalYAML writes null when absent.
func (o Optional) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalJSON implements [json.Unmarshaler] using [DecodeOptional].
func (o *Optional) UnmarshalJSON(data []byte) error {
	p, err := DecodeOptional(JSON(data))
	if err != nil {
		return err
	}
	*o = OptionalFrom(p)
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] using [DecodeOptional].
func (o *Optional) UnmarshalYAML(node *yaml.Node) error {
	p, err := DecodeOptional(YAML(node))
	if err != nil {
		return err
	}
	*o = OptionalFrom(p)
	return nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Blank text is absent.
func (o *Optional) UnmarshalText(text []byte) error {
	*o = Some(string(text))
	return nil
}

func (Optional) describeSchema(schema *openapi3.Schema) {
	schema.Type = &openapi3.Types{openapi3.TypeString}
	schema.Properties = nil
	schema.Nullable = true
	appendDescription(schema, trimmedDesc+", blank is treated as null")
}
