package trim_test

import (
	"encoding/json"
	"testing"

	"github.com/Gobd/trim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type optionFoo struct {
	Name trim.Optional `json:"name" yaml:"name"`
}

type optionBar struct {
	Name trim.Optional `json:"name" yaml:"name"`
	Addr string        `json:"addr" yaml:"addr"`
}

func TestOptionalJSON(t *testing.T) {
	var foo optionFoo
	require.NoError(t, json.Unmarshal([]byte(`{"name":" "}`), &foo))
	assert.False(t, foo.Name.IsSet())

	require.NoError(t, json.Unmarshal([]byte(`{"name":" Ada "}`), &foo))
	v, ok := foo.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "Ada", v)

	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &foo))
	assert.False(t, foo.Name.IsSet())

	var typeErr *json.UnmarshalTypeError
	err := json.Unmarshal([]byte(`{"name":1}`), &foo)
	require.ErrorAs(t, err, &typeErr)
}

func TestOptionalMissingField(t *testing.T) {
	var bar optionBar
	require.NoError(t, json.Unmarshal([]byte(`{"addr":"ABC"}`), &bar))
	assert.False(t, bar.Name.IsSet())
	assert.Equal(t, "ABC", bar.Addr)

	bar = optionBar{}
	require.NoError(t, yaml.Unmarshal([]byte(`addr: ABC`), &bar))
	assert.False(t, bar.Name.IsSet())
	assert.Equal(t, "ABC", bar.Addr)
}

func TestOptionalYAML(t *testing.T) {
	var foo optionFoo
	require.NoError(t, yaml.Unmarshal([]byte(`name: " "`), &foo))
	assert.False(t, foo.Name.IsSet())

	require.NoError(t, yaml.Unmarshal([]byte(`name: "  Ada "`), &foo))
	assert.Equal(t, "Ada", foo.Name.Or(""))

	foo = optionFoo{}
	require.NoError(t, yaml.Unmarshal([]byte(`name: ~`), &foo))
	assert.False(t, foo.Name.IsSet())
}

func TestOptionalText(t *testing.T) {
	var o trim.Optional
	require.NoError(t, o.UnmarshalText([]byte("  ")))
	assert.False(t, o.IsSet())
	require.NoError(t, o.UnmarshalText([]byte(" x ")))
	assert.Equal(t, "x", o.Or("def"))
}

func TestOptionalAccessors(t *testing.T) {
	none := trim.None()
	assert.False(t, none.IsSet())
	assert.Equal(t, "def", none.Or("def"))
	assert.Nil(t, none.Ptr())
	assert.Equal(t, "<unset>", none.String())

	some := trim.Some("  v ")
	assert.True(t, some.IsSet())
	assert.Equal(t, "v", some.Or("def"))
	assert.Equal(t, "v", some.String())
	p := some.Ptr()
	require.NotNil(t, p)
	*p = "changed"
	assert.Equal(t, "v", some.Or(""), "Ptr returns a copy")

	assert.False(t, trim.Some("\t").IsSet())

	raw := "  r "
	o := trim.OptionalFrom(&raw)
	assert.Equal(t, "r", o.Or(""))
	assert.Equal(t, "r", raw, "trimmed in place")
	assert.False(t, trim.OptionalFrom(nil).IsSet())
}

func TestOptionalValue(t *testing.T) {
	v, err := trim.None().Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = trim.Some("x").Value()
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestOptionalMarshal(t *testing.T) {
	b, err := json.Marshal(optionBar{Addr: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null,"addr":"a"}`, string(b))

	b, err = json.Marshal(optionBar{Name: trim.Some("n"), Addr: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"n","addr":"a"}`, string(b))

	out, err := yaml.Marshal(optionBar{Name: trim.Some("n"), Addr: "a"})
	require.NoError(t, err)
	var back optionBar
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "n", back.Name.Or(""))
}
