package trim

import (
	"encoding/json"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Decoder decodes one raw field value into v, which is always a pointer.
// Errors belong to the host decoder and are returned by the hooks unchanged.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc adapts a function to a [Decoder].
type DecoderFunc func(v any) error

// Decode calls f(v).
func (f DecoderFunc) Decode(v any) error {
	return f(v)
}

// JSON returns a [Decoder] reading the JSON value in data.
func JSON(data []byte) Decoder {
	return DecoderFunc(func(v any) error {
		return json.Unmarshal(data, v)
	})
}

// YAML returns a [Decoder] reading node. A nil node decodes as null.
func YAML(node *yaml.Node) Decoder {
	return DecoderFunc(func(v any) error {
		if node == nil {
			return nil
		}
		return node.Decode(v)
	})
}

// Raw returns a [Decoder] for an already parsed value such as a
// map[string]any entry, converted with mapstructure.
func Raw(data any) Decoder {
	return DecoderFunc(func(v any) error {
		return mapstructure.Decode(data, v)
	})
}
