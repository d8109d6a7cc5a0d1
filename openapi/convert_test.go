package openapi

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"

	"github.com/siegeai/jtdinfer/jtdschema"
)

func TestFromJTDPrimitives(t *testing.T) {
	s := FromJTD(&jtdschema.Schema{Type: jtdschema.TypeBoolean})
	assert.Equal(t, openapi3.TypeBoolean, s.Type)

	s = FromJTD(&jtdschema.Schema{Type: jtdschema.TypeUint16})
	assert.Equal(t, openapi3.TypeInteger, s.Type)
	assert.Equal(t, "uint16", s.Format)

	s = FromJTD(&jtdschema.Schema{Type: jtdschema.TypeFloat64})
	assert.Equal(t, openapi3.TypeNumber, s.Type)
	assert.Equal(t, "double", s.Format)
}

func TestFromJTDTimestamp(t *testing.T) {
	s := FromJTD(&jtdschema.Schema{Type: jtdschema.TypeTimestamp, Nullable: true})
	assert.Equal(t, openapi3.TypeString, s.Type)
	assert.Equal(t, "date-time", s.Format)
	assert.True(t, s.Nullable)
}

func TestFromJTDEnum(t *testing.T) {
	s := FromJTD(&jtdschema.Schema{Enum: []string{"blue", "red"}})
	assert.Equal(t, openapi3.TypeString, s.Type)
	assert.Equal(t, []interface{}{"blue", "red"}, s.Enum)
}

func TestFromJTDObject(t *testing.T) {
	s := FromJTD(&jtdschema.Schema{
		Properties: map[string]*jtdschema.Schema{
			"foo": {Type: jtdschema.TypeBoolean},
		},
		OptionalProperties: map[string]*jtdschema.Schema{
			"baz": {Type: jtdschema.TypeUint8},
		},
	})
	assert.Equal(t, openapi3.TypeObject, s.Type)
	assert.Equal(t, []string{"foo"}, s.Required)
	assert.Contains(t, s.Properties, "foo")
	assert.Contains(t, s.Properties, "baz")
}

func TestFromJTDValues(t *testing.T) {
	s := FromJTD(&jtdschema.Schema{Values: &jtdschema.Schema{Type: jtdschema.TypeString}})
	assert.Equal(t, openapi3.TypeObject, s.Type)
	assert.NotNil(t, s.AdditionalProperties.Schema)
	assert.Equal(t, openapi3.TypeString, s.AdditionalProperties.Schema.Value.Type)
}

func TestFromJTDDiscriminator(t *testing.T) {
	s := FromJTD(&jtdschema.Schema{
		Discriminator: "kind",
		Mapping: map[string]*jtdschema.Schema{
			"b": {Properties: map[string]*jtdschema.Schema{"y": {Type: jtdschema.TypeBoolean}}},
			"a": {Properties: map[string]*jtdschema.Schema{"x": {Type: jtdschema.TypeUint8}}},
		},
	})

	assert.NotNil(t, s.Discriminator)
	assert.Equal(t, "kind", s.Discriminator.PropertyName)
	assert.Equal(t, 2, len(s.OneOf))

	// variants come out sorted by tag and regain the tag property
	va := s.OneOf[0].Value
	assert.Contains(t, va.Properties, "kind")
	assert.Equal(t, []interface{}{"a"}, va.Properties["kind"].Value.Enum)
	assert.Contains(t, va.Required, "kind")
}

func TestFromJTDEmptyForm(t *testing.T) {
	s := FromJTD(&jtdschema.Schema{})
	assert.Equal(t, "", s.Type)
	assert.Nil(t, s.Properties)
}
