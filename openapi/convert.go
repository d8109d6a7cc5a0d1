// Package openapi exports inferred JTD schemas as OpenAPI 3 schemas,
// for feeding inference results into OpenAPI tooling.
package openapi

import (
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/siegeai/jtdinfer/jtdschema"
)

// FromJTD converts a JTD schema document into an equivalent OpenAPI 3
// schema. The conversion is total: every JTD form has an OpenAPI
// rendering, with the empty form mapping to the unconstrained schema.
func FromJTD(s *jtdschema.Schema) *openapi3.Schema {
	out := &openapi3.Schema{Nullable: s.Nullable}

	switch {
	case s.Type != "":
		applyType(out, s.Type)

	case len(s.Enum) > 0:
		out.Type = openapi3.TypeString
		out.Enum = make([]interface{}, len(s.Enum))
		for i, v := range s.Enum {
			out.Enum[i] = v
		}

	case s.Elements != nil:
		out.Type = openapi3.TypeArray
		out.Items = FromJTD(s.Elements).NewRef()

	case len(s.Properties) > 0 || len(s.OptionalProperties) > 0:
		applyObject(out, s)

	case s.Values != nil:
		out.Type = openapi3.TypeObject
		out.AdditionalProperties = openapi3.AdditionalProperties{
			Schema: FromJTD(s.Values).NewRef(),
		}

	case s.Discriminator != "":
		applyDiscriminator(out, s)
	}

	return out
}

func applyType(out *openapi3.Schema, t jtdschema.Type) {
	switch t {
	case jtdschema.TypeBoolean:
		out.Type = openapi3.TypeBoolean
	case jtdschema.TypeString:
		out.Type = openapi3.TypeString
	case jtdschema.TypeTimestamp:
		out.Type = openapi3.TypeString
		out.Format = "date-time"
	case jtdschema.TypeFloat32:
		out.Type = openapi3.TypeNumber
		out.Format = "float"
	case jtdschema.TypeFloat64:
		out.Type = openapi3.TypeNumber
		out.Format = "double"
	default:
		// the integer kinds keep their JTD name as the format
		out.Type = openapi3.TypeInteger
		out.Format = string(t)
	}
}

func applyObject(out *openapi3.Schema, s *jtdschema.Schema) {
	out.Type = openapi3.TypeObject
	out.Properties = make(openapi3.Schemas, len(s.Properties)+len(s.OptionalProperties))

	required := make([]string, 0, len(s.Properties))
	for k, v := range s.Properties {
		out.Properties[k] = FromJTD(v).NewRef()
		required = append(required, k)
	}
	for k, v := range s.OptionalProperties {
		out.Properties[k] = FromJTD(v).NewRef()
	}

	sort.Strings(required)
	out.Required = required
}

// applyDiscriminator renders a JTD tagged union as oneOf over the
// variant object schemas. Each variant regains the tag property as a
// required single-value enum so instances remain distinguishable.
func applyDiscriminator(out *openapi3.Schema, s *jtdschema.Schema) {
	tags := make([]string, 0, len(s.Mapping))
	for tag := range s.Mapping {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	out.OneOf = make(openapi3.SchemaRefs, 0, len(tags))
	for _, tag := range tags {
		variant := FromJTD(s.Mapping[tag])
		if variant.Properties == nil {
			variant.Properties = make(openapi3.Schemas, 1)
		}
		variant.Type = openapi3.TypeObject
		variant.Properties[s.Discriminator] = (&openapi3.Schema{
			Type: openapi3.TypeString,
			Enum: []interface{}{tag},
		}).NewRef()
		variant.Required = append(variant.Required, s.Discriminator)
		out.OneOf = append(out.OneOf, variant.NewRef())
	}

	out.Discriminator = &openapi3.Discriminator{PropertyName: s.Discriminator}
}
