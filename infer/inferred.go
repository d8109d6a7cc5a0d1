package infer

import (
	"time"

	"github.com/valyala/fastjson"
)

type inferenceKind int

const (
	kindUnknown inferenceKind = iota
	kindBoolean
	kindNumber
	kindString
	kindTimestamp
	kindEnum
	kindElements
	kindProperties
	kindValues
	kindDiscriminator
	kindAny
)

// inference is the partial schema inferred for one document position.
// It only ever widens: nullable flips false to true, number kinds grow
// per Join, enum members accumulate, required keys shrink, and
// genuinely conflicting shapes collapse to kindAny.
type inference struct {
	kind     inferenceKind
	nullable bool

	num      NumType                 // kindNumber, join of natural classifications
	numRange observedRange           // kindNumber
	members  map[string]struct{}     // kindEnum
	elems    *inference              // kindElements
	props    map[string]*inference   // kindProperties
	required map[string]struct{}     // kindProperties
	values   *inference              // kindValues
	tag      string                  // kindDiscriminator
	mapping  map[string]*inference   // kindDiscriminator, values are kindProperties
}

func newInference() *inference {
	return &inference{kind: kindUnknown}
}

// observe folds one example value into the inference and returns the
// node to store in its place. It is total; shapes that cannot share any
// single JTD form degrade to kindAny rather than failing.
func (s *inference) observe(v *fastjson.Value, path []string, h *Hints) *inference {
	if v.Type() == fastjson.TypeNull {
		s.nullable = true
		return s
	}
	if s.kind == kindUnknown {
		return s.reify(v, path, h)
	}
	if s.kind == kindAny {
		return s
	}

	switch {
	case s.kind == kindBoolean && isBool(v):
		return s

	case s.kind == kindNumber && v.Type() == fastjson.TypeNumber:
		isInt, i, f := numericParts(v)
		s.num = Join(s.num, classify(isInt, i, f))
		s.numRange.extend(isInt, f)
		return s

	case s.kind == kindString && v.Type() == fastjson.TypeString:
		return s

	case s.kind == kindTimestamp && v.Type() == fastjson.TypeString:
		// timestamp-ness must hold for every example
		if !isTimestamp(stringValue(v)) {
			s.kind = kindString
		}
		return s

	case s.kind == kindEnum && v.Type() == fastjson.TypeString:
		s.members[stringValue(v)] = struct{}{}
		return s

	case s.kind == kindElements && v.Type() == fastjson.TypeArray:
		elems, _ := v.Array()
		for _, e := range elems {
			s.elems = s.elems.observe(e, path, h)
		}
		return s

	case s.kind == kindProperties && v.Type() == fastjson.TypeObject:
		o, _ := v.Object()
		s.observeProperties(o, "", path, h)
		return s

	case s.kind == kindValues && v.Type() == fastjson.TypeObject:
		o, _ := v.Object()
		o.Visit(func(_ []byte, mv *fastjson.Value) {
			s.values = s.values.observe(mv, path, h)
		})
		return s

	case s.kind == kindDiscriminator && v.Type() == fastjson.TypeObject:
		o, _ := v.Object()
		return s.observeDiscriminator(o, path, h)
	}

	// shapes genuinely conflict, give up on structure but keep nullability
	return &inference{kind: kindAny, nullable: s.nullable}
}

// reify classifies the first non-null value seen at this position,
// consulting the hints to decide between the default structural forms
// and enum/values/discriminator interpretation. The hint decision is
// made exactly once per position and never revisited.
func (s *inference) reify(v *fastjson.Value, path []string, h *Hints) *inference {
	switch v.Type() {
	case fastjson.TypeTrue, fastjson.TypeFalse:
		s.kind = kindBoolean

	case fastjson.TypeNumber:
		isInt, i, f := numericParts(v)
		s.kind = kindNumber
		s.num = classify(isInt, i, f)
		s.numRange = newObservedRange(isInt, f)

	case fastjson.TypeString:
		str := stringValue(v)
		switch {
		case h.Enums.Matches(path):
			s.kind = kindEnum
			s.members = map[string]struct{}{str: {}}
		case isTimestamp(str):
			s.kind = kindTimestamp
		default:
			s.kind = kindString
		}

	case fastjson.TypeArray:
		s.kind = kindElements
		s.elems = newInference()
		elems, _ := v.Array()
		for _, e := range elems {
			s.elems = s.elems.observe(e, path, h)
		}

	case fastjson.TypeObject:
		o, _ := v.Object()
		if tag, ok := h.DiscriminatorTag(path); ok {
			s.kind = kindDiscriminator
			s.tag = tag
			s.mapping = make(map[string]*inference)
			return s.observeDiscriminator(o, path, h)
		}
		if h.Values.Matches(path) {
			s.kind = kindValues
			s.values = newInference()
			o.Visit(func(_ []byte, mv *fastjson.Value) {
				s.values = s.values.observe(mv, path, h)
			})
			return s
		}
		s.kind = kindProperties
		s.props = make(map[string]*inference, o.Len())
		s.required = make(map[string]struct{}, o.Len())
		s.populateProperties(o, "", path, h)
	}
	return s
}

// populateProperties records the very first object seen at a position:
// every key starts out required.
func (s *inference) populateProperties(o *fastjson.Object, skip string, path []string, h *Hints) {
	o.Visit(func(key []byte, mv *fastjson.Value) {
		k := string(key)
		if k == skip {
			return
		}
		s.props[k] = newInference().observe(mv, append(path, k), h)
		s.required[k] = struct{}{}
	})
}

// observeProperties merges a later object example: keys absent from
// this example are demoted to optional, keys never seen before join as
// optional since they were absent from every earlier example.
func (s *inference) observeProperties(o *fastjson.Object, skip string, path []string, h *Hints) {
	seen := make(map[string]struct{}, o.Len())
	o.Visit(func(key []byte, mv *fastjson.Value) {
		k := string(key)
		if k == skip {
			return
		}
		seen[k] = struct{}{}
		child, ok := s.props[k]
		if !ok {
			child = newInference()
		}
		s.props[k] = child.observe(mv, append(path, k), h)
	})
	for k := range s.required {
		if _, in := seen[k]; !in {
			delete(s.required, k)
		}
	}
}

// observeDiscriminator merges an object into the variant selected by
// its tag value. The tag property itself is excluded from the variant's
// sub-schema. An example without a string-valued tag cannot be accepted
// by any mapping form, so the position collapses to kindAny.
func (s *inference) observeDiscriminator(o *fastjson.Object, path []string, h *Hints) *inference {
	tv := o.Get(s.tag)
	if tv == nil || tv.Type() != fastjson.TypeString {
		return &inference{kind: kindAny, nullable: s.nullable}
	}
	tag := stringValue(tv)

	variant, ok := s.mapping[tag]
	if !ok {
		variant = &inference{
			kind:     kindProperties,
			props:    make(map[string]*inference, o.Len()),
			required: make(map[string]struct{}, o.Len()),
		}
		variant.populateProperties(o, s.tag, path, h)
		s.mapping[tag] = variant
		return s
	}
	variant.observeProperties(o, s.tag, path, h)
	return s
}

func isBool(v *fastjson.Value) bool {
	return v.Type() == fastjson.TypeTrue || v.Type() == fastjson.TypeFalse
}

func stringValue(v *fastjson.Value) string {
	sb, _ := v.StringBytes()
	return string(sb)
}

// numericParts splits a JSON number into its integer or floating
// reading. Integer detection is syntactic: a literal with a fraction or
// exponent part reads as a float even when its value is whole.
func numericParts(v *fastjson.Value) (isInt bool, i int64, f float64) {
	if n, err := v.Int64(); err == nil {
		return true, n, float64(n)
	}
	f, _ = v.Float64()
	return false, 0, f
}

func isTimestamp(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
