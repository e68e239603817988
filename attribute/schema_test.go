package attribute_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"embedded-value/attribute"
)

func TestJSONSchema(t *testing.T) {
	s, err := attribute.Define(reflect.TypeFor[User]())
	require.NoError(t, err)

	schema := s.JSONSchema()
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"name"}, schema.Required)
	assert.Nil(t, schema.AdditionalProperties)

	for _, name := range []string{"name", "age", "role", "address", "phones", "location", "tags"} {
		_, ok := schema.Properties.Get(name)
		assert.True(t, ok, name)
	}

	role, ok := schema.Properties.Get("role")
	require.True(t, ok)
	assert.Equal(t, "member", role.Default)

	addr, ok := schema.Properties.Get("address")
	require.True(t, ok)
	assert.Equal(t, "object", addr.Type)

	_, ok = addr.Properties.Get("zipcode")
	assert.True(t, ok)

	phones, ok := schema.Properties.Get("phones")
	require.True(t, ok)
	assert.Equal(t, "array", phones.Type)
}

func TestJSONSchemaStrict(t *testing.T) {
	s, err := attribute.Define(reflect.TypeFor[Address](), attribute.WithStrict(true))
	require.NoError(t, err)

	schema := s.JSONSchema()
	assert.Empty(t, schema.Required)
	assert.NotNil(t, schema.AdditionalProperties)
	assert.Equal(t, 3, schema.Properties.Len())
}
