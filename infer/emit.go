package infer

import (
	"sort"

	"github.com/siegeai/jtdinfer/jtdschema"
)

// intoSchema materializes the inference as a JTD schema node. It is a
// pure structural fold: the inference tree is left untouched and no
// example data is consulted. Enum members are emitted in lexicographic
// order so output is deterministic. The default numeric kind is applied
// here, at a number position, when it covers every number observed
// there; deciding this at emission keeps folding order-independent.
func (s *inference) intoSchema(def NumType) *jtdschema.Schema {
	out := &jtdschema.Schema{Nullable: s.nullable}

	switch s.kind {
	case kindBoolean:
		out.Type = jtdschema.TypeBoolean

	case kindNumber:
		if s.numRange.coveredBy(def) {
			out.Type = def.SchemaType()
		} else {
			out.Type = s.num.SchemaType()
		}

	case kindString:
		out.Type = jtdschema.TypeString

	case kindTimestamp:
		out.Type = jtdschema.TypeTimestamp

	case kindEnum:
		out.Enum = make([]string, 0, len(s.members))
		for m := range s.members {
			out.Enum = append(out.Enum, m)
		}
		sort.Strings(out.Enum)

	case kindElements:
		out.Elements = s.elems.intoSchema(def)

	case kindProperties:
		out.Properties, out.OptionalProperties = s.splitProperties(def)

	case kindValues:
		out.Values = s.values.intoSchema(def)

	case kindDiscriminator:
		out.Discriminator = s.tag
		out.Mapping = make(map[string]*jtdschema.Schema, len(s.mapping))
		for tag, variant := range s.mapping {
			out.Mapping[tag] = variant.intoSchema(def)
		}

	case kindUnknown, kindAny:
		// empty form, accepts anything
	}

	return out
}

func (s *inference) splitProperties(def NumType) (req, opt map[string]*jtdschema.Schema) {
	for k, c := range s.props {
		if _, in := s.required[k]; in {
			if req == nil {
				req = make(map[string]*jtdschema.Schema)
			}
			req[k] = c.intoSchema(def)
		} else {
			if opt == nil {
				opt = make(map[string]*jtdschema.Schema)
			}
			opt[k] = c.intoSchema(def)
		}
	}
	return req, opt
}
