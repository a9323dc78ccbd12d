package trim

import (
	"cmp"
	"encoding/json"
	"iter"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hashicorp/go-set/v3"
	"gopkg.in/yaml.v3"
)

// Set is an ordered set of trimmed strings. Elements are kept unique and
// sorted lexicographically. The zero value is an empty set.
//
// A Set is not safe for concurrent modification; decoding replaces it.
type Set struct {
	items *set.TreeSet[string]
}

// NewSet returns a Set holding every item trimmed. The items slice is not
// modified.
func NewSet(items ...string) Set {
	s := set.NewTreeSet[string](cmp.Compare[string])
	for _, item := range items {
		s.Insert(Space(&item))
	}
	return Set{items: s}
}

// Len returns the number of elements.
func (s Set) Len() int {
	if s.items == nil {
		return 0
	}
	return s.items.Size()
}

// Contains reports whether item is in the set. item is compared as given,
// without trimming.
func (s Set) Contains(item string) bool {
	return s.items != nil && s.items.Contains(item)
}

// Slice returns the elements in order. It never returns nil.
func (s Set) Slice() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items.Slice()
}

// All iterates the elements in order.
func (s Set) All() iter.Seq[string] {
	if s.items == nil {
		return func(func(string) bool) {}
	}
	return s.items.Items()
}

// Equal reports whether s and o hold the same elements.
func (s Set) Equal(o Set) bool {
	return slices.Equal(s.Slice(), o.Slice())
}

// String formats the set like a slice, e.g. [a b].
func (s Set) String() string {
	if s.items == nil {
		return "[]"
	}
	return s.items.String()
}

// MarshalJSON writes the elements as an ordered array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// MarshalYAML writes the elements as an ordered sequence.
func (s Set) MarshalYAML() (any, error) {
	return s.Slice(), nil
}

// UnmarshalJSON implements [json.Unmarshaler] using [DecodeSet].
func (s *Set) UnmarshalJSON(data []byte) error {
	v, err := DecodeSet(JSON(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] using [DecodeSet].
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	v, err := DecodeSet(YAML(node))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (Set) describeSchema(schema *openapi3.Schema) {
	schema.Type = &openapi3.Types{openapi3.TypeArray}
	schema.Properties = nil
	schema.Items = openapi3.NewStringSchema().NewRef()
	schema.UniqueItems = true
	appendDescription(schema, trimmedDesc)
}
